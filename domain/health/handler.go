// Package health serves liveness, readiness and diagnostics endpoints.
package health

import (
	"errors"
	"net/http"
	"runtime"
	"strconv"
	"time"

	"github.com/ahbiggie/Bigeen-web/domain/contact"
	"github.com/ahbiggie/Bigeen-web/domain/scheduler"
	"github.com/ahbiggie/Bigeen-web/domain/session"
	"github.com/ahbiggie/Bigeen-web/internal/config"
	"github.com/ahbiggie/Bigeen-web/internal/version"
	"github.com/ahbiggie/Bigeen-web/pkg/apperror"
)

const (
	statusHealthy  = "healthy"
	statusDegraded = "degraded"
)

// Handler handles health check requests
type Handler struct {
	sink      contact.Sink
	sessions  *session.Manager
	scheduler *scheduler.Scheduler
	cfg       *config.Config
	startAt   time.Time
}

func NewHandler(sink contact.Sink, sessions *session.Manager, sched *scheduler.Scheduler, cfg *config.Config) *Handler {
	return &Handler{
		sink:      sink,
		sessions:  sessions,
		scheduler: sched,
		cfg:       cfg,
		startAt:   time.Now(),
	}
}

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status    string           `json:"status"`
	Timestamp string           `json:"timestamp"`
	Uptime    string           `json:"uptime"`
	Version   string           `json:"version"`
	Checks    map[string]Check `json:"checks"`
}

// Check is one named probe result.
type Check struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// Health reports the contact sink and session registry. A misconfigured sink
// degrades the site without taking it down, so the status code stays 200.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	sinkCheck := Check{Status: statusHealthy, Message: h.sink.Name()}
	if err := h.sink.Ready(); err != nil {
		sinkCheck = Check{Status: statusDegraded, Message: err.Error()}
	}

	overall := statusHealthy
	if sinkCheck.Status != statusHealthy {
		overall = statusDegraded
	}

	apperror.WriteJSON(w, http.StatusOK, HealthResponse{
		Status:    overall,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Uptime:    time.Since(h.startAt).Round(time.Second).String(),
		Version:   version.Version,
		Checks: map[string]Check{
			"contact_sink": sinkCheck,
			"sessions":     {Status: statusHealthy, Message: sessionsMessage(h.sessions.Len())},
		},
	})
}

// Healthz is the liveness probe.
func (h *Handler) Healthz(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}

// Ready is the readiness probe. Pages render without a sink, so readiness
// does not depend on it.
func (h *Handler) Ready(w http.ResponseWriter, _ *http.Request) {
	apperror.WriteJSON(w, http.StatusOK, map[string]any{"status": "ready"})
}

// Debug returns runtime stats outside production.
func (h *Handler) Debug(w http.ResponseWriter, r *http.Request) {
	if h.cfg.IsProduction() {
		apperror.Write(w, r, nil, apperror.ErrNotFound)
		return
	}

	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)

	sinkErr := h.sink.Ready()
	apperror.WriteJSON(w, http.StatusOK, map[string]any{
		"environment": h.cfg.Environment,
		"debug":       h.cfg.Debug,
		"version":     version.Get(),
		"goroutines":  runtime.NumGoroutine(),
		"memory": map[string]any{
			"alloc_mb":       mem.Alloc / 1024 / 1024,
			"total_alloc_mb": mem.TotalAlloc / 1024 / 1024,
			"sys_mb":         mem.Sys / 1024 / 1024,
			"num_gc":         mem.NumGC,
		},
		"contact": map[string]any{
			"sink":       h.sink.Name(),
			"configured": !errors.Is(sinkErr, contact.ErrSinkNotConfigured),
			"timeout":    h.cfg.Contact.SubmitTimeout.String(),
		},
		"sessions":  h.sessions.Len(),
		"scheduler": h.scheduler.Tasks(),
	})
}

func sessionsMessage(n int) string {
	if n == 1 {
		return "1 active session"
	}
	return strconv.Itoa(n) + " active sessions"
}
