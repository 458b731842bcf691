package handlers

import (
	"github.com/go-chi/chi/v5"
)

// RegisterRoutes mounts the pages, form posts and JSON API.
func RegisterRoutes(r chi.Router, h *Handler) {
	r.Get("/", h.Home)
	r.Get("/about", h.About)
	r.Get("/contact", h.Contact)
	r.Get("/roadmap", h.Roadmap)

	r.Post("/mode", h.SwitchMode)
	r.Post("/faq/{index}", h.ToggleFAQ)

	r.Group(func(r chi.Router) {
		r.Use(h.RateLimit)
		r.Post("/contact", h.SubmitContact)
		r.Post("/api/contact", h.SubmitContactAPI)
	})
	r.Post("/contact/dismiss", h.DismissNotice)
	r.Get("/api/contact", h.GetContact)

	r.NotFound(h.NotFound)
}
