package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/onimix/artist-platform/internal/verse"
)

// VerseHandler handles HTTP requests for verses.
type VerseHandler struct {
	svc verse.Service
}

func NewVerseHandler(svc verse.Service) *VerseHandler {
	return &VerseHandler{svc: svc}
}

func (h *VerseHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in verse.CreateInput
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

func (h *VerseHandler) List(w http.ResponseWriter, r *http.Request) {
	filter := verse.ListFilter{
		Category: verse.Category(r.URL.Query().Get("category")),
		Search:   r.URL.Query().Get("search"),
	}

	verses, err := h.svc.List(r.Context(), filter)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, verses)
}

func (h *VerseHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	v, err := h.svc.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, v)
}

func (h *VerseHandler) Update(w http.ResponseWriter, r *http.Request) {
	var in verse.UpdateInput
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

func (h *VerseHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]string{"message": "verse deleted successfully"})
}

func (h *VerseHandler) RecordPlay(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.RecordPlay(r.Context(), chi.URLParam(r, "id")); err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]string{"message": "play recorded"})
}

func (h *VerseHandler) RecordLike(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.RecordLike(r.Context(), chi.URLParam(r, "id")); err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]string{"message": "like recorded"})
}
