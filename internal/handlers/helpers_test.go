package handlers

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/ahbiggie/Bigeen-web/domain/contact"
	"github.com/ahbiggie/Bigeen-web/domain/content"
	"github.com/ahbiggie/Bigeen-web/domain/session"
	"github.com/ahbiggie/Bigeen-web/internal/config"
)

const validMessage = "We need a customer portal built by the end of the quarter."

// fakeRelay records every delivery and answers with status.
type fakeRelay struct {
	srv      *httptest.Server
	status   atomic.Int32
	calls    atomic.Int32
	block    chan struct{}
	received chan struct{}

	mu   sync.Mutex
	last contact.Payload
}

func newFakeRelay(t *testing.T) *fakeRelay {
	t.Helper()
	f := &fakeRelay{received: make(chan struct{}, 8)}
	f.status.Store(http.StatusOK)
	f.srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var p contact.Payload
		_ = json.NewDecoder(r.Body).Decode(&p)
		f.mu.Lock()
		f.last = p
		f.mu.Unlock()
		f.calls.Add(1)
		f.received <- struct{}{}
		if f.block != nil {
			<-f.block
		}
		w.WriteHeader(int(f.status.Load()))
	}))
	t.Cleanup(f.srv.Close)
	return f
}

func (f *fakeRelay) payload() contact.Payload {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.last
}

type testEnv struct {
	t       *testing.T
	router  chi.Router
	cookies []*http.Cookie
}

type envOption func(*config.Config)

func withRateLimit(rpm, burst int) envOption {
	return func(c *config.Config) {
		c.Contact.RequestsPerMinute = rpm
		c.Contact.Burst = burst
	}
}

func newTestEnv(t *testing.T, endpoint string, opts ...envOption) *testEnv {
	t.Helper()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{
		Contact: config.ContactConfig{
			Sink:              "relay",
			RelayEndpoint:     endpoint,
			SubmitTimeout:     2 * time.Second,
			RequestsPerMinute: 600,
			Burst:             100,
		},
		Session: config.SessionConfig{CookieName: "bigeen_session", TTL: time.Hour},
	}
	for _, opt := range opts {
		opt(cfg)
	}

	factory := contact.NewFactory(cfg, contact.NewRelaySink(endpoint, nil), log, nil)
	sessions, err := session.NewManager(cfg.Session, factory, log)
	require.NoError(t, err)

	h := NewHandler(content.NewStaticProvider(content.Default()), sessions, contact.NewClientLimiterFromConfig(cfg), log)
	r := chi.NewRouter()
	RegisterRoutes(r, h)
	return &testEnv{t: t, router: r}
}

func (e *testEnv) do(req *http.Request) *httptest.ResponseRecorder {
	e.t.Helper()
	for _, c := range e.cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	if set := w.Result().Cookies(); len(set) > 0 {
		e.cookies = set
	}
	return w
}

func (e *testEnv) get(path string) *httptest.ResponseRecorder {
	return e.do(httptest.NewRequest(http.MethodGet, path, nil))
}

func (e *testEnv) postForm(path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return e.do(req)
}

func (e *testEnv) postJSON(path string, body any) *httptest.ResponseRecorder {
	e.t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, jsonBody(e.t, body))
	req.Header.Set("Content-Type", "application/json")
	return e.do(req)
}

func jsonBody(t *testing.T, v any) io.Reader {
	t.Helper()
	raw, err := json.Marshal(v)
	require.NoError(t, err)
	return strings.NewReader(string(raw))
}

func validForm() url.Values {
	return url.Values{
		"fullName":    {"Jane Doe"},
		"workEmail":   {"jane@acme.io"},
		"companyName": {"Acme"},
		"message":     {validMessage},
	}
}

func validJSON() map[string]any {
	return map[string]any{
		"fullName":  "Jane Doe",
		"workEmail": "jane@acme.io",
		"message":   validMessage,
	}
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body struct {
		Error map[string]any `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body.Error
}
