package handlers

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ahbiggie/Bigeen-web/domain/contact"
	"github.com/ahbiggie/Bigeen-web/domain/content"
	"github.com/ahbiggie/Bigeen-web/domain/session"
	"github.com/ahbiggie/Bigeen-web/internal/config"
)

func TestSetFieldLogsUnknownField(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	cfg := &config.Config{
		Contact: config.ContactConfig{Sink: "relay", RelayEndpoint: "https://formspree.io/f/abc", SubmitTimeout: time.Second},
		Session: config.SessionConfig{CookieName: "bigeen_session", TTL: time.Hour},
	}
	factory := contact.NewFactory(cfg, contact.NewRelaySink(cfg.Contact.RelayEndpoint, nil), log, nil)
	sessions, err := session.NewManager(cfg.Session, factory, log)
	require.NoError(t, err)
	h := NewHandler(content.NewStaticProvider(content.Default()), sessions, contact.NewClientLimiterFromConfig(cfg), log)

	s := sessions.Load(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	h.setField(s, contact.Field("phone"), "555-0100")
	h.setField(s, contact.FieldFullName, "Jane Doe")

	assert.Contains(t, buf.String(), "ignoring form field")
	assert.Contains(t, buf.String(), "field=phone")
	assert.Equal(t, "Jane Doe", s.Contact.Store().Snapshot().FullName)
}
