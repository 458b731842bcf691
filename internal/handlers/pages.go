package handlers

import (
	"net/http"

	"github.com/ahbiggie/Bigeen-web/internal/components"
	"github.com/ahbiggie/Bigeen-web/pkg/apperror"
)

func (h *Handler) Home(w http.ResponseWriter, r *http.Request) {
	s := h.sessions.Load(w, r)
	s.SetActiveSection("home")
	h.render(w, r, components.HomePage(h.pageData(r, s)))
}

func (h *Handler) About(w http.ResponseWriter, r *http.Request) {
	s := h.sessions.Load(w, r)
	s.SetActiveSection("about")
	h.render(w, r, components.AboutPage(h.pageData(r, s)))
}

func (h *Handler) Roadmap(w http.ResponseWriter, r *http.Request) {
	s := h.sessions.Load(w, r)
	s.SetActiveSection("roadmap")
	h.render(w, r, components.RoadmapPage(h.pageData(r, s)))
}

func (h *Handler) Contact(w http.ResponseWriter, r *http.Request) {
	s := h.sessions.Load(w, r)
	s.SetActiveSection("contact")

	s.Contact.Store().EnsureTopic()
	expanded, open := s.ExpandedFAQ()

	h.render(w, r, components.ContactPage(h.pageData(r, s), components.ContactState{
		Form:        s.Contact.View(),
		ExpandedFAQ: expanded,
		FAQOpen:     open,
	}))
}

func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	h.fail(w, r, apperror.ErrNotFound.WithMessage("Page not found"))
}
