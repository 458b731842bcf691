// Package contact implements the contact form pipeline: the per-visitor field
// store, validation, and the submission state machine that delivers a form to
// an external sink exactly once per attempt.
package contact

import (
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/ahbiggie/Bigeen-web/domain/content"
)

// Field names a form input. The values match the form post and JSON keys.
type Field string

const (
	FieldFullName    Field = "fullName"
	FieldWorkEmail   Field = "workEmail"
	FieldCompanyName Field = "companyName"
	FieldTopic       Field = "topic"
	FieldMessage     Field = "message"
)

// AllFields lists every form field in display order.
var AllFields = []Field{FieldFullName, FieldWorkEmail, FieldCompanyName, FieldTopic, FieldMessage}

var ErrUnknownField = errors.New("unknown form field")

// Fields is a snapshot of the form values.
type Fields struct {
	FullName    string `json:"fullName"`
	WorkEmail   string `json:"workEmail"`
	CompanyName string `json:"companyName"`
	Topic       string `json:"topic"`
	Message     string `json:"message"`
}

// Get returns the value of field, or "" for unknown names.
func (f Fields) Get(field Field) string {
	switch field {
	case FieldFullName:
		return f.FullName
	case FieldWorkEmail:
		return f.WorkEmail
	case FieldCompanyName:
		return f.CompanyName
	case FieldTopic:
		return f.Topic
	case FieldMessage:
		return f.Message
	}
	return ""
}

func (f *Fields) set(field Field, value string) error {
	switch field {
	case FieldFullName:
		f.FullName = value
	case FieldWorkEmail:
		f.WorkEmail = value
	case FieldCompanyName:
		f.CompanyName = value
	case FieldTopic:
		f.Topic = value
	case FieldMessage:
		f.Message = value
	default:
		return fmt.Errorf("%w: %q", ErrUnknownField, field)
	}
	return nil
}

// TopicSource maps a mode to its ordered topic options.
type TopicSource func(mode content.Mode) []string

// Store holds one visitor's form values and the active display mode.
type Store struct {
	mu     sync.RWMutex
	fields Fields
	mode   content.Mode
	topics TopicSource
}

// NewStore creates an empty store. Topic stays empty until the first
// EnsureTopic or SetMode call.
func NewStore(mode content.Mode, topics TopicSource) *Store {
	if topics == nil {
		topics = content.TopicOptions
	}
	return &Store{mode: mode, topics: topics}
}

// SetField overwrites exactly one field.
func (s *Store) SetField(field Field, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.fields.set(field, value)
}

// Reset clears every field.
func (s *Store) Reset() {
	s.mu.Lock()
	s.fields = Fields{}
	s.mu.Unlock()
}

// Snapshot returns a copy of the current values.
func (s *Store) Snapshot() Fields {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.fields
}

// Mode returns the active display mode.
func (s *Store) Mode() content.Mode {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.mode
}

// TopicOptions returns the topics valid for the active mode.
func (s *Store) TopicOptions() []string {
	return s.topics(s.Mode())
}

// SetMode switches mode and re-derives the topic.
func (s *Store) SetMode(mode content.Mode) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mode = mode
	s.ensureTopicLocked()
}

// EnsureTopic reassigns the topic to the first option of the active mode when
// the current value is not one of its options.
func (s *Store) EnsureTopic() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureTopicLocked()
}

func (s *Store) ensureTopicLocked() {
	options := s.topics(s.mode)
	if len(options) == 0 {
		return
	}
	if !slices.Contains(options, s.fields.Topic) {
		s.fields.Topic = options[0]
	}
}
