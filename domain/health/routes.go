package health

import (
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// RegisterRoutes registers health check routes
func RegisterRoutes(r chi.Router, h *Handler) {
	r.Get("/health", h.Health)
	r.Get("/healthz", h.Healthz)
	r.Get("/ready", h.Ready)
	r.Get("/debug", h.Debug)
	r.Get("/api/health", h.Health)

	r.Handle("/metrics", promhttp.Handler())
}
