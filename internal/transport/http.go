package transport

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/onimix/artist-platform/internal/analytics"
	"github.com/onimix/artist-platform/internal/beat"
	"github.com/onimix/artist-platform/internal/catalog"
	"github.com/onimix/artist-platform/internal/handler"
	"github.com/onimix/artist-platform/internal/order"
	"github.com/onimix/artist-platform/internal/verse"
)

// Services bundles the constructed domain services for router wiring.
type Services struct {
	Verses    verse.Service
	Beats     beat.Service
	Catalog   catalog.Service
	Orders    order.Service
	Analytics analytics.Service
}

func NewRouter(svcs Services) *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(requestLogger)
	r.Use(middleware.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	verses := handler.NewVerseHandler(svcs.Verses)
	beats := handler.NewBeatHandler(svcs.Beats)
	products := handler.NewProductHandler(svcs.Catalog)
	orders := handler.NewOrderHandler(svcs.Orders)
	stats := handler.NewAnalyticsHandler(svcs.Analytics)

	r.Route("/api", func(r chi.Router) {
		r.Route("/verses", func(r chi.Router) {
			r.Post("/", verses.Create)
			r.Get("/", verses.List)
			r.Get("/{id}", verses.GetByID)
			r.Put("/{id}", verses.Update)
			r.Delete("/{id}", verses.Delete)
			r.Post("/{id}/play", verses.RecordPlay)
			r.Post("/{id}/like", verses.RecordLike)
		})

		r.Route("/beats", func(r chi.Router) {
			r.Post("/", beats.Create)
			r.Get("/", beats.List)
			r.Get("/{id}", beats.GetByID)
			r.Put("/{id}", beats.Update)
			r.Delete("/{id}", beats.Delete)
			r.Post("/{id}/download", beats.RecordDownload)
		})

		r.Route("/products", func(r chi.Router) {
			r.Post("/", products.Create)
			r.Get("/", products.List)
			r.Get("/{id}", products.GetByID)
			r.Put("/{id}", products.Update)
			r.Delete("/{id}", products.Delete)
			r.Post("/{id}/reviews", products.CreateReview)
			r.Get("/{id}/reviews", products.ListReviews)
		})

		r.Route("/orders", func(r chi.Router) {
			r.Post("/", orders.Create)
			r.Get("/", orders.List)
			r.Get("/{id}", orders.GetByID)
			r.Get("/number/{orderNumber}", orders.GetByOrderNumber)
			r.Patch("/{id}/status", orders.UpdateStatus)
		})

		r.Get("/analytics/dashboard", stats.Dashboard)
		r.Get("/analytics/verses", stats.VerseStats)
		r.Get("/stats", stats.Stats)
	})

	return r
}

func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		log.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Dur("duration", time.Since(start)).
			Str("request_id", middleware.GetReqID(r.Context())).
			Msg("request handled")
	})
}
