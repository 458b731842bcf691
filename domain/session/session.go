// Package session keeps per-visitor UI state in memory: the contact form
// controller, the expanded FAQ entry and the active page section.
package session

import (
	"sync"
	"time"

	"github.com/ahbiggie/Bigeen-web/domain/contact"
	"github.com/ahbiggie/Bigeen-web/domain/content"
)

// noFAQ marks a collapsed accordion.
const noFAQ = -1

// Session is one visitor's state.
type Session struct {
	ID      string
	Contact *contact.Controller

	mu            sync.Mutex
	expandedFAQ   int
	activeSection string
	lastSeen      time.Time
}

func newSession(id string, ctrl *contact.Controller, now time.Time) *Session {
	return &Session{
		ID:          id,
		Contact:     ctrl,
		expandedFAQ: noFAQ,
		lastSeen:    now,
	}
}

// Mode returns the visitor's display mode.
func (s *Session) Mode() content.Mode {
	return s.Contact.Store().Mode()
}

// SetMode switches the display mode, re-deriving the form topic.
func (s *Session) SetMode(mode content.Mode) {
	s.Contact.SetMode(mode)
}

// ToggleFAQ expands index, or collapses it when it is already expanded.
func (s *Session) ToggleFAQ(index int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.expandedFAQ == index {
		s.expandedFAQ = noFAQ
		return
	}
	s.expandedFAQ = index
}

// ExpandedFAQ returns the expanded entry, if any.
func (s *Session) ExpandedFAQ() (int, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.expandedFAQ, s.expandedFAQ != noFAQ
}

// ActiveSection is the last page the visitor navigated to.
func (s *Session) ActiveSection() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.activeSection
}

func (s *Session) SetActiveSection(section string) {
	s.mu.Lock()
	s.activeSection = section
	s.mu.Unlock()
}

func (s *Session) touch(now time.Time) {
	s.mu.Lock()
	s.lastSeen = now
	s.mu.Unlock()
}

func (s *Session) idleSince(now time.Time) time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return now.Sub(s.lastSeen)
}
