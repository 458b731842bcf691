// Package handlers serves the site's pages and form posts.
package handlers

import (
	"log/slog"
	"net/http"

	"github.com/ahbiggie/Bigeen-web/domain/contact"
	"github.com/ahbiggie/Bigeen-web/domain/content"
	"github.com/ahbiggie/Bigeen-web/domain/session"
	"github.com/ahbiggie/Bigeen-web/internal/components"
	"github.com/ahbiggie/Bigeen-web/pkg/apperror"
	"github.com/ahbiggie/Bigeen-web/pkg/logger"

	g "maragu.dev/gomponents"
)

type Handler struct {
	content  *content.Provider
	sessions *session.Manager
	limiter  *contact.ClientLimiter
	log      *slog.Logger
}

func NewHandler(p *content.Provider, sessions *session.Manager, limiter *contact.ClientLimiter, log *slog.Logger) *Handler {
	return &Handler{
		content:  p,
		sessions: sessions,
		limiter:  limiter,
		log:      log.With(logger.Scope("handlers")),
	}
}

func (h *Handler) pageData(r *http.Request, s *session.Session) components.PageData {
	return components.PageData{
		Site:    h.content.Site(),
		Mode:    s.Mode(),
		Section: s.ActiveSection(),
		Path:    r.URL.Path,
	}
}

// setField writes one submitted value; unknown fields are logged and skipped.
func (h *Handler) setField(s *session.Session, field contact.Field, value string) {
	if err := s.Contact.SetField(field, value); err != nil {
		h.log.Debug("ignoring form field", slog.String("field", string(field)), logger.Error(err))
	}
}

func (h *Handler) render(w http.ResponseWriter, r *http.Request, page g.Node) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	if err := page.Render(w); err != nil {
		h.log.Error("render page", slog.String("path", r.URL.Path), logger.Error(err))
	}
}

func (h *Handler) fail(w http.ResponseWriter, r *http.Request, err error) {
	apperror.Write(w, r, h.log, err)
}

func (h *Handler) rateLimited(w http.ResponseWriter, r *http.Request) {
	h.log.Warn("contact rate limit exceeded", slog.String("remote", r.RemoteAddr), slog.String("path", r.URL.Path))
	w.Header().Set("Retry-After", "60")
	h.fail(w, r, apperror.ErrTooManyRequests)
}

// RateLimit guards the contact endpoints.
func (h *Handler) RateLimit(next http.Handler) http.Handler {
	return h.limiter.Middleware(h.rateLimited)(next)
}
