package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/ahbiggie/Bigeen-web/domain/contact"
	"github.com/ahbiggie/Bigeen-web/domain/content"
	"github.com/ahbiggie/Bigeen-web/pkg/apperror"
)

const contactFormAnchor = "/contact#contact-form"

// SwitchMode handles POST /mode.
func (h *Handler) SwitchMode(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.fail(w, r, apperror.NewBadRequest("invalid form"))
		return
	}
	mode, err := content.ParseMode(r.PostForm.Get("mode"))
	if err != nil {
		h.fail(w, r, apperror.NewBadRequest(err.Error()))
		return
	}

	s := h.sessions.Load(w, r)
	s.SetMode(mode)
	http.Redirect(w, r, localPath(r.PostForm.Get("next")), http.StatusSeeOther)
}

// ToggleFAQ handles POST /faq/{index}.
func (h *Handler) ToggleFAQ(w http.ResponseWriter, r *http.Request) {
	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil || index < 0 || index >= len(h.content.Site().FAQs) {
		h.fail(w, r, apperror.NewNotFound("faq", chi.URLParam(r, "index")))
		return
	}
	h.sessions.Load(w, r).ToggleFAQ(index)
	http.Redirect(w, r, "/contact#faq", http.StatusSeeOther)
}

// SubmitContact handles the form post and redirects back to the form.
func (h *Handler) SubmitContact(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.fail(w, r, apperror.NewBadRequest("invalid form"))
		return
	}
	s := h.sessions.Load(w, r)

	// a post while the previous one is in flight must not touch the fields
	if s.Contact.Status() != contact.StatusSubmitting {
		for _, field := range contact.AllFields {
			if values, ok := r.PostForm[string(field)]; ok && len(values) > 0 {
				h.setField(s, field, values[0])
			}
		}
		s.Contact.Store().EnsureTopic()
	}

	if _, err := s.Contact.Submit(r.Context()); err != nil && !errors.Is(err, contact.ErrSubmitInProgress) {
		h.fail(w, r, apperror.NewInternal("submission failed", err))
		return
	}
	http.Redirect(w, r, contactFormAnchor, http.StatusSeeOther)
}

// DismissNotice handles POST /contact/dismiss.
func (h *Handler) DismissNotice(w http.ResponseWriter, r *http.Request) {
	h.sessions.Load(w, r).Contact.Dismiss()
	http.Redirect(w, r, contactFormAnchor, http.StatusSeeOther)
}

// localPath keeps redirects on this site.
func localPath(next string) string {
	if next == "" || !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") || strings.HasPrefix(next, "/\\") {
		return "/"
	}
	return next
}
