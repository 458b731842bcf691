package contact

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// MinMessageLength is the minimum trimmed message length in characters.
const MinMessageLength = 20

// Error codes reported per field.
const (
	CodeRequired      = "required"
	CodeInvalidFormat = "invalid_format"
	CodeTooShort      = "too_short"
)

// emailPattern rejects ASCII whitespace, Unicode separators (Zs, Zl, Zp) and
// the byte order mark in any part of the address.
var emailPattern = regexp.MustCompile(`^[^\s\v\p{Z}\x{FEFF}@]+@[^\s\v\p{Z}\x{FEFF}@]+\.[^\s\v\p{Z}\x{FEFF}@]+$`)

// FieldError describes why one field is invalid.
type FieldError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ValidationErrors holds an entry for every invalid field and nothing else.
type ValidationErrors map[Field]FieldError

// Valid reports whether the form may be submitted.
func (e ValidationErrors) Valid() bool {
	return len(e) == 0
}

// Has reports whether field is invalid.
func (e ValidationErrors) Has(field Field) bool {
	_, ok := e[field]
	return ok
}

// Message returns the message for field, or "".
func (e ValidationErrors) Message(field Field) string {
	return e[field].Message
}

func (e ValidationErrors) clone() ValidationErrors {
	if len(e) == 0 {
		return ValidationErrors{}
	}
	out := make(ValidationErrors, len(e))
	for k, v := range e {
		out[k] = v
	}
	return out
}

// Validate checks every rule and returns the complete error set.
// Company and topic are never required.
func Validate(f Fields) ValidationErrors {
	errs := ValidationErrors{}

	if strings.TrimSpace(f.FullName) == "" {
		errs[FieldFullName] = FieldError{Code: CodeRequired, Message: "Full name is required"}
	}

	switch {
	case strings.TrimSpace(f.WorkEmail) == "":
		errs[FieldWorkEmail] = FieldError{Code: CodeRequired, Message: "Email is required"}
	case !ValidEmail(f.WorkEmail):
		errs[FieldWorkEmail] = FieldError{Code: CodeInvalidFormat, Message: "Please enter a valid email"}
	}

	msg := strings.TrimSpace(f.Message)
	switch {
	case msg == "":
		errs[FieldMessage] = FieldError{Code: CodeRequired, Message: "Please tell us about your project"}
	case utf8.RuneCountInString(msg) < MinMessageLength:
		errs[FieldMessage] = FieldError{Code: CodeTooShort, Message: "Please provide more details (min 20 characters)"}
	}

	return errs
}

// ValidEmail reports whether s looks like local@domain.tld with no whitespace.
func ValidEmail(s string) bool {
	return emailPattern.MatchString(s)
}
