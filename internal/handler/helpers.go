package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/onimix/artist-platform/internal/beat"
	"github.com/onimix/artist-platform/internal/catalog"
	"github.com/onimix/artist-platform/internal/order"
	"github.com/onimix/artist-platform/internal/verse"
)

func respondWithJSON(w http.ResponseWriter, code int, payload any) {
	response, err := json.Marshal(payload)
	if err != nil {
		log.Error().Err(err).Msg("handler: failed to marshal response")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"failed to marshal response"}`))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if _, err := w.Write(response); err != nil {
		log.Error().Err(err).Msg("handler: failed to write response")
	}
}

func respondWithError(w http.ResponseWriter, code int, message string) {
	respondWithJSON(w, code, map[string]string{"error": message})
}

// respondWithServiceError maps the domain error taxonomy onto HTTP codes:
// not-found lookups to 404, rejected input and transitions to 400, anything
// else (store failures included) to 500.
func respondWithServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, verse.ErrNotFound),
		errors.Is(err, beat.ErrNotFound),
		errors.Is(err, catalog.ErrProductNotFound),
		errors.Is(err, order.ErrNotFound):
		respondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, verse.ErrValidation),
		errors.Is(err, beat.ErrValidation),
		errors.Is(err, catalog.ErrValidation),
		errors.Is(err, order.ErrValidation),
		errors.Is(err, order.ErrInvalidTransition):
		respondWithError(w, http.StatusBadRequest, err.Error())
	default:
		log.Error().Err(err).Msg("handler: internal error")
		respondWithError(w, http.StatusInternalServerError, "internal server error")
	}
}
