package handlers

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Routes builds the HTTP surface over the pipeline.
func (h *Handler) Routes(allowedOrigins []string) chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	r.Get("/healthz", h.Health)
	r.Get("/readyz", h.Ready)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/analysis/{player}", func(r chi.Router) {
			r.Get("/metrics", h.GetPerformanceMetrics)
			r.Get("/prediction", h.PredictPerformance)
			r.Post("/convert-data", h.ConvertPlayerData)
			r.Get("/comparison", h.GetComparison)
		})
		r.Get("/players", h.SearchPlayers)
		r.Get("/teams", h.SearchTeams)
	})

	return r
}
