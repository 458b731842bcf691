package session

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/securecookie"

	"github.com/ahbiggie/Bigeen-web/domain/contact"
	"github.com/ahbiggie/Bigeen-web/domain/content"
	"github.com/ahbiggie/Bigeen-web/internal/config"
	"github.com/ahbiggie/Bigeen-web/pkg/logger"
)

// ControllerFactory creates the contact controller for a new session.
type ControllerFactory interface {
	New(mode content.Mode) *contact.Controller
}

// Manager is the in-memory session registry.
type Manager struct {
	cfg     config.SessionConfig
	codec   *securecookie.SecureCookie
	factory ControllerFactory
	log     *slog.Logger
	now     func() time.Time

	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewManager builds a registry. An empty hash key is replaced by a random one,
// which invalidates cookies on restart.
func NewManager(cfg config.SessionConfig, factory ControllerFactory, log *slog.Logger) (*Manager, error) {
	log = log.With(logger.Scope("session"))

	hashKey := []byte(cfg.HashKey)
	if len(hashKey) == 0 {
		hashKey = securecookie.GenerateRandomKey(32)
		if hashKey == nil {
			return nil, errors.New("generate session hash key")
		}
		log.Warn("SESSION_HASH_KEY not set, using a random key")
	} else if len(hashKey) < 32 {
		return nil, fmt.Errorf("SESSION_HASH_KEY must be at least 32 bytes, got %d", len(hashKey))
	}

	codec := securecookie.New(hashKey, nil)
	if cfg.TTL > 0 {
		codec.MaxAge(int(cfg.TTL / time.Second))
	}

	return &Manager{
		cfg:      cfg,
		codec:    codec,
		factory:  factory,
		log:      log,
		now:      time.Now,
		sessions: make(map[string]*Session),
	}, nil
}

// Load returns the visitor's session, starting a new one and setting the
// cookie when the request carries no valid session.
func (m *Manager) Load(w http.ResponseWriter, r *http.Request) *Session {
	if id, ok := m.idFromRequest(r); ok {
		if s, ok := m.Get(id); ok {
			return s
		}
	}

	s := m.create()
	m.writeCookie(w, s.ID)
	return s
}

// Get returns a live session by id and marks it as seen.
func (m *Manager) Get(id string) (*Session, bool) {
	m.mu.RLock()
	s, ok := m.sessions[id]
	m.mu.RUnlock()
	if !ok {
		return nil, false
	}
	s.touch(m.now())
	return s, true
}

func (m *Manager) create() *Session {
	id := uuid.NewString()
	s := newSession(id, m.factory.New(content.DefaultMode), m.now())

	m.mu.Lock()
	m.sessions[id] = s
	m.mu.Unlock()

	m.log.Debug("session created", slog.String("session_id", id))
	return s
}

func (m *Manager) idFromRequest(r *http.Request) (string, bool) {
	c, err := r.Cookie(m.cfg.CookieName)
	if err != nil {
		return "", false
	}
	var id string
	if err := m.codec.Decode(m.cfg.CookieName, c.Value, &id); err != nil {
		m.log.Debug("discarding invalid session cookie", logger.Error(err))
		return "", false
	}
	if _, err := uuid.Parse(id); err != nil {
		return "", false
	}
	return id, true
}

func (m *Manager) writeCookie(w http.ResponseWriter, id string) {
	encoded, err := m.codec.Encode(m.cfg.CookieName, id)
	if err != nil {
		// the visitor still gets a working page, just a new session next time
		m.log.Error("encode session cookie", logger.Error(err))
		return
	}
	cookie := &http.Cookie{
		Name:     m.cfg.CookieName,
		Value:    encoded,
		Path:     "/",
		HttpOnly: true,
		Secure:   m.cfg.Secure,
		SameSite: http.SameSiteLaxMode,
	}
	if m.cfg.TTL > 0 {
		cookie.MaxAge = int(m.cfg.TTL / time.Second)
	}
	http.SetCookie(w, cookie)
}

// Sweep drops sessions idle for longer than the TTL. Sessions with a
// submission in flight are kept.
func (m *Manager) Sweep() int {
	if m.cfg.TTL <= 0 {
		return 0
	}
	now := m.now()

	m.mu.Lock()
	defer m.mu.Unlock()

	removed := 0
	for id, s := range m.sessions {
		if s.idleSince(now) <= m.cfg.TTL {
			continue
		}
		if s.Contact.Status() == contact.StatusSubmitting {
			continue
		}
		s.Contact.Dismiss()
		delete(m.sessions, id)
		removed++
	}
	if removed > 0 {
		m.log.Debug("expired sessions", slog.Int("removed", removed), slog.Int("remaining", len(m.sessions)))
	}
	return removed
}

// Len returns the number of live sessions.
func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}
