package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/onimix/artist-platform/internal/beat"
)

// BeatHandler handles HTTP requests for beats.
type BeatHandler struct {
	svc beat.Service
}

func NewBeatHandler(svc beat.Service) *BeatHandler {
	return &BeatHandler{svc: svc}
}

func (h *BeatHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in beat.CreateInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	created, err := h.svc.Create(r.Context(), in)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, created)
}

func (h *BeatHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := beat.ListFilter{
		Genre:    q.Get("genre"),
		Search:   q.Get("search"),
		FreeOnly: q.Get("free_only") == "true",
	}

	beats, err := h.svc.List(r.Context(), filter)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, beats)
}

func (h *BeatHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	b, err := h.svc.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, b)
}

func (h *BeatHandler) Update(w http.ResponseWriter, r *http.Request) {
	var in beat.UpdateInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	updated, err := h.svc.Update(r.Context(), chi.URLParam(r, "id"), in)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, updated)
}

func (h *BeatHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]string{"message": "beat deleted successfully"})
}

func (h *BeatHandler) RecordDownload(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.RecordDownload(r.Context(), chi.URLParam(r, "id")); err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]string{"message": "download recorded"})
}
