package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/ahbiggie/Bigeen-web/domain/contact"
	"github.com/ahbiggie/Bigeen-web/domain/content"
	"github.com/ahbiggie/Bigeen-web/pkg/apperror"
)

// maxJSONBody caps the POST /api/contact body.
const maxJSONBody = 64 << 10

// SubmitRequest is the JSON body of POST /api/contact. Absent fields keep
// their current value.
type SubmitRequest struct {
	FullName    *string `json:"fullName"`
	WorkEmail   *string `json:"workEmail"`
	CompanyName *string `json:"companyName"`
	Topic       *string `json:"topic"`
	Message     *string `json:"message"`
	Mode        string  `json:"mode"`
}

func (req SubmitRequest) values() map[contact.Field]*string {
	return map[contact.Field]*string{
		contact.FieldFullName:    req.FullName,
		contact.FieldWorkEmail:   req.WorkEmail,
		contact.FieldCompanyName: req.CompanyName,
		contact.FieldTopic:       req.Topic,
		contact.FieldMessage:     req.Message,
	}
}

// GetContact handles GET /api/contact.
func (h *Handler) GetContact(w http.ResponseWriter, r *http.Request) {
	s := h.sessions.Load(w, r)
	s.Contact.Store().EnsureTopic()
	apperror.WriteJSON(w, http.StatusOK, s.Contact.View())
}

// SubmitContactAPI handles POST /api/contact.
func (h *Handler) SubmitContactAPI(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxJSONBody)
	var req SubmitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.fail(w, r, apperror.NewBadRequest("invalid JSON body"))
		return
	}

	var mode content.Mode
	if req.Mode != "" {
		m, err := content.ParseMode(req.Mode)
		if err != nil {
			h.fail(w, r, apperror.NewBadRequest(err.Error()))
			return
		}
		mode = m
	}

	s := h.sessions.Load(w, r)
	if s.Contact.Status() == contact.StatusSubmitting {
		h.fail(w, r, apperror.ErrConflict.WithMessage(contact.ErrSubmitInProgress.Error()))
		return
	}
	if mode != "" {
		s.SetMode(mode)
	}
	for field, value := range req.values() {
		if value != nil {
			h.setField(s, field, *value)
		}
	}
	s.Contact.Store().EnsureTopic()

	view, err := s.Contact.Submit(r.Context())
	if errors.Is(err, contact.ErrSubmitInProgress) {
		h.fail(w, r, apperror.ErrConflict.WithMessage(err.Error()))
		return
	}
	if err != nil {
		h.fail(w, r, apperror.NewInternal("submission failed", err))
		return
	}

	if appErr := submitError(view); appErr != nil {
		h.fail(w, r, appErr)
		return
	}
	apperror.WriteJSON(w, http.StatusOK, view)
}

// submitError maps a finished submission to its API error, or nil on success.
func submitError(view contact.View) *apperror.Error {
	if view.Notice == nil {
		return nil
	}
	details := map[string]any{"notice": view.Notice}

	var base *apperror.Error
	switch view.Notice.Kind {
	case contact.NoticeSent:
		return nil
	case contact.NoticeFixFields:
		base = apperror.ErrValidation
		details["errors"] = view.Errors
	case contact.NoticeRejected:
		base = apperror.ErrBadGateway
	case contact.NoticeNetwork, contact.NoticeTimeout:
		base = apperror.ErrUnavailable
	case contact.NoticeConfiguration:
		base = apperror.ErrMisconfiguration
	default:
		return nil
	}
	return base.WithMessage(view.Notice.Message).WithDetails(details)
}
