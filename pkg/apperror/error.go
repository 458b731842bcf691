// Package apperror maps failures to HTTP responses with a stable JSON shape:
//
//	{"error": {"code": "...", "message": "...", "details": {...}}}
package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// Error is a failure with the status and code clients see.
type Error struct {
	HTTPStatus int
	Code       string
	Message    string
	Internal   error
	Details    map[string]any
}

func (e *Error) Error() string {
	msg := e.Code + ": " + e.Message
	if e.Internal == nil {
		return msg
	}
	return fmt.Sprintf("%s (%v)", msg, e.Internal)
}

func (e *Error) Unwrap() error { return e.Internal }

// Is matches any *Error with the same code, so derived copies still match
// their sentinel.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Code == e.Code
}

// The With* methods return modified copies; sentinels are never mutated.

func (e *Error) WithInternal(err error) *Error {
	c := *e
	c.Internal = err
	return &c
}

func (e *Error) WithMessage(message string) *Error {
	c := *e
	c.Message = message
	return &c
}

func (e *Error) WithDetails(details map[string]any) *Error {
	c := *e
	c.Details = details
	return &c
}

func New(status int, code, message string) *Error {
	return &Error{HTTPStatus: status, Code: code, Message: message}
}

var (
	ErrNotFound         = New(http.StatusNotFound, "not_found", "Resource not found")
	ErrBadRequest       = New(http.StatusBadRequest, "bad_request", "Invalid request")
	ErrValidation       = New(http.StatusUnprocessableEntity, "validation_error", "Validation failed")
	ErrConflict         = New(http.StatusConflict, "conflict", "Request conflicts with the current state")
	ErrTooManyRequests  = New(http.StatusTooManyRequests, "rate_limited", "Too many requests")
	ErrBadGateway       = New(http.StatusBadGateway, "upstream_rejected", "Upstream service rejected the request")
	ErrUnavailable      = New(http.StatusServiceUnavailable, "upstream_unavailable", "Upstream service unavailable")
	ErrInternal         = New(http.StatusInternalServerError, "internal_error", "An internal error occurred")
	ErrMisconfiguration = New(http.StatusInternalServerError, "configuration_error", "Service is misconfigured")
)

// ToHTTPError returns the status and response body for err. Errors that are
// not *Error become a generic 500 so internals never leak.
func ToHTTPError(err error) (int, map[string]any) {
	var appErr *Error
	if !errors.As(err, &appErr) {
		appErr = ErrInternal
	}

	body := map[string]any{
		"code":    appErr.Code,
		"message": appErr.Message,
	}
	if len(appErr.Details) > 0 {
		body["details"] = appErr.Details
	}
	return appErr.HTTPStatus, map[string]any{"error": body}
}

func NewBadRequest(message string) *Error {
	return ErrBadRequest.WithMessage(message)
}

// NewNotFound reports a missing resource, e.g. "faq '7' not found".
func NewNotFound(resourceType, id string) *Error {
	return ErrNotFound.WithMessage(fmt.Sprintf("%s '%s' not found", resourceType, id))
}

func NewInternal(message string, err error) *Error {
	return ErrInternal.WithMessage(message).WithInternal(err)
}
