package contact

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ahbiggie/Bigeen-web/domain/content"
)

func testPayload() Payload {
	return NewPayload(validFields(), content.ModeConsult, time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC))
}

func TestRelaySinkReady(t *testing.T) {
	tests := []struct {
		endpoint string
		ready    bool
	}{
		{"https://formspree.io/f/abc", true},
		{"http://localhost:8080/hook", true},
		{"", false},
		{"formspree.io/f/abc", false},
		{"/relative/path", false},
		{"ftp://example.com/x", false},
		{"https://", false},
		{"://bad", false},
	}
	for _, tt := range tests {
		t.Run(tt.endpoint, func(t *testing.T) {
			err := NewRelaySink(tt.endpoint, nil).Ready()
			if tt.ready {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrSinkNotConfigured)
			}
		})
	}
}

func TestRelaySinkDelivered(t *testing.T) {
	var got map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	out := NewRelaySink(srv.URL, nil).Deliver(context.Background(), testPayload())

	assert.Equal(t, OutcomeDelivered, out.Kind)
	assert.Equal(t, http.StatusOK, out.StatusCode)
	assert.Equal(t, map[string]string{
		"name":        "Jane Doe",
		"email":       "jane@acme.com",
		"company":     "Acme",
		"projectType": "Technical Audit",
		"message":     "We need help with a large migration project.",
		"mode":        "consult",
		"submittedAt": "2024-01-02T03:04:05.000Z",
	}, got)
}

func TestRelaySinkStatusMapping(t *testing.T) {
	tests := []struct {
		status int
		kind   OutcomeKind
	}{
		{http.StatusCreated, OutcomeDelivered},
		{http.StatusNoContent, OutcomeDelivered},
		{http.StatusBadRequest, OutcomeRejected},
		{http.StatusUnprocessableEntity, OutcomeRejected},
		{http.StatusInternalServerError, OutcomeRejected},
	}
	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			}))
			defer srv.Close()

			out := NewRelaySink(srv.URL, nil).Deliver(context.Background(), testPayload())
			assert.Equal(t, tt.kind, out.Kind)
		})
	}
}

func TestRelaySinkUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	endpoint := srv.URL
	srv.Close()

	out := NewRelaySink(endpoint, nil).Deliver(context.Background(), testPayload())
	assert.Equal(t, OutcomeTransportError, out.Kind)
	assert.Error(t, out.Err)
	assert.Zero(t, out.StatusCode)
}

func TestRelaySinkTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 25*time.Millisecond)
	defer cancel()

	out := NewRelaySink(srv.URL, nil).Deliver(ctx, testPayload())
	assert.Equal(t, OutcomeTimeout, out.Kind)
}

func TestRelaySinkThroughController(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := newTestController(t, NewRelaySink(srv.URL, nil), holdless)
	fill(t, c, validFields())

	view, err := c.Submit(context.Background())
	require.NoError(t, err)
	assert.Equal(t, StatusFailed, view.Status)
	assert.Equal(t, NoticeRejected, view.Notice.Kind)
	assert.Equal(t, validFields(), view.Fields)
}
