package server

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ahbiggie/Bigeen-web/internal/config"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	r := NewRouter(RouterParams{
		Config: &config.Config{},
		Log:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	r.Get("/boom", func(http.ResponseWriter, *http.Request) { panic("boom") })
	r.Get("/about", func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusNoContent) })
	return r
}

func TestStaticAssets(t *testing.T) {
	r := newTestRouter(t)

	for _, path := range []string{"/static/styles.css", "/static/js/theme.js"} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusOK, w.Code, path)
		assert.Equal(t, "public, max-age=3600", w.Header().Get("Cache-Control"))
		assert.NotEmpty(t, w.Body.String())
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/static/missing.css", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRecoverer(t *testing.T) {
	w := httptest.NewRecorder()
	newTestRouter(t).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":{"code":"internal_error","message":"An internal error occurred"}}`, w.Body.String())
}

func TestTrailingSlash(t *testing.T) {
	w := httptest.NewRecorder()
	newTestRouter(t).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/about/", nil))
	assert.Equal(t, http.StatusNoContent, w.Code)
}
