package handler

import (
	"net/http"

	"github.com/onimix/artist-platform/internal/analytics"
)

// AnalyticsHandler exposes the aggregated dashboards.
type AnalyticsHandler struct {
	svc analytics.Service
}

func NewAnalyticsHandler(svc analytics.Service) *AnalyticsHandler {
	return &AnalyticsHandler{svc: svc}
}

func (h *AnalyticsHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	d, err := h.svc.Dashboard(r.Context())
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, d)
}

func (h *AnalyticsHandler) VerseStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.svc.VerseStats(r.Context())
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, stats)
}

// Stats is the legacy flat counters endpoint kept for older dashboard
// clients.
func (h *AnalyticsHandler) Stats(w http.ResponseWriter, r *http.Request) {
	d, err := h.svc.Dashboard(r.Context())
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]any{
		"total_verses":      d.TotalVerses,
		"total_products":    d.TotalProducts,
		"total_orders":      d.TotalOrders,
		"verse_by_category": d.VersesByCategory,
	})
}
