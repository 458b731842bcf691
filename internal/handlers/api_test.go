package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ahbiggie/Bigeen-web/domain/contact"
	"github.com/ahbiggie/Bigeen-web/domain/content"
)

func TestGetContact(t *testing.T) {
	env := newTestEnv(t, "https://formspree.io/f/abc")

	w := env.get("/api/contact")
	require.Equal(t, http.StatusOK, w.Code)

	var view contact.View
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &view))
	assert.Equal(t, content.ModeTech, view.Mode)
	assert.Equal(t, contact.StatusIdle, view.Status)
	assert.Equal(t, content.TopicOptions(content.ModeTech), view.TopicOptions)
	assert.Equal(t, view.TopicOptions[0], view.Fields.Topic)
	assert.Nil(t, view.Notice)
}

func TestSubmitContactAPI(t *testing.T) {
	relay := newFakeRelay(t)
	env := newTestEnv(t, relay.srv.URL)

	body := validJSON()
	body["mode"] = "consult"
	w := env.postJSON("/api/contact", body)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var view contact.View
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &view))
	assert.Equal(t, contact.StatusSucceeded, view.Status)
	require.NotNil(t, view.Notice)
	assert.Equal(t, contact.NoticeSent, view.Notice.Kind)

	p := relay.payload()
	assert.Equal(t, content.ModeConsult, p.Mode)
	assert.Equal(t, "Technical Audit", p.ProjectType)
	assert.Equal(t, "jane@acme.io", p.Email)
}

func TestSubmitContactAPIErrors(t *testing.T) {
	tests := []struct {
		name     string
		endpoint func(t *testing.T) string
		body     map[string]any
		status   int
		code     string
		notice   contact.NoticeKind
	}{
		{
			name:     "validation",
			endpoint: func(t *testing.T) string { return newFakeRelay(t).srv.URL },
			body:     map[string]any{"fullName": "  ", "workEmail": "jane@acme.io", "message": validMessage},
			status:   http.StatusUnprocessableEntity,
			code:     "validation_error",
			notice:   contact.NoticeFixFields,
		},
		{
			name: "rejected by relay",
			endpoint: func(t *testing.T) string {
				r := newFakeRelay(t)
				r.status.Store(http.StatusInternalServerError)
				return r.srv.URL
			},
			body:   validJSON(),
			status: http.StatusBadGateway,
			code:   "upstream_rejected",
			notice: contact.NoticeRejected,
		},
		{
			name: "relay unreachable",
			endpoint: func(t *testing.T) string {
				srv := httptest.NewServer(http.NotFoundHandler())
				srv.Close()
				return srv.URL
			},
			body:   validJSON(),
			status: http.StatusServiceUnavailable,
			code:   "upstream_unavailable",
			notice: contact.NoticeNetwork,
		},
		{
			name:     "no endpoint configured",
			endpoint: func(*testing.T) string { return "" },
			body:     validJSON(),
			status:   http.StatusInternalServerError,
			code:     "configuration_error",
			notice:   contact.NoticeConfiguration,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t, tt.endpoint(t))

			w := env.postJSON("/api/contact", tt.body)
			require.Equal(t, tt.status, w.Code, w.Body.String())

			apiErr := decodeError(t, w)
			assert.Equal(t, tt.code, apiErr["code"])
			details, ok := apiErr["details"].(map[string]any)
			require.True(t, ok)
			notice, ok := details["notice"].(map[string]any)
			require.True(t, ok)
			assert.Equal(t, string(tt.notice), notice["kind"])
			assert.Equal(t, notice["message"], apiErr["message"])
		})
	}
}

func TestSubmitContactAPIValidationDetails(t *testing.T) {
	env := newTestEnv(t, newFakeRelay(t).srv.URL)

	w := env.postJSON("/api/contact", map[string]any{"workEmail": "nope", "message": "short"})
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)

	errs := decodeError(t, w)["details"].(map[string]any)["errors"].(map[string]any)
	assert.Contains(t, errs, "fullName")
	assert.Contains(t, errs, "workEmail")
	assert.Contains(t, errs, "message")
	assert.NotContains(t, errs, "companyName")
}

func TestSubmitContactAPIInProgress(t *testing.T) {
	relay := newFakeRelay(t)
	relay.block = make(chan struct{})
	env := newTestEnv(t, relay.srv.URL)
	env.get("/api/contact")

	first := make(chan *httptest.ResponseRecorder, 1)
	cookies := env.cookies
	body := jsonBody(t, validJSON())
	go func() {
		req := httptest.NewRequest(http.MethodPost, "/api/contact", body)
		for _, c := range cookies {
			req.AddCookie(c)
		}
		w := httptest.NewRecorder()
		env.router.ServeHTTP(w, req)
		first <- w
	}()
	<-relay.received

	w := env.postJSON("/api/contact", validJSON())
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "conflict", decodeError(t, w)["code"])

	close(relay.block)
	assert.Equal(t, http.StatusOK, (<-first).Code)
	assert.EqualValues(t, 1, relay.calls.Load())
}

func TestSubmitContactAPIBadBody(t *testing.T) {
	env := newTestEnv(t, "https://formspree.io/f/abc")

	w := env.do(httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader("{")))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = env.postJSON("/api/contact", map[string]any{"mode": "retro"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSubmitContactAPIBodyTooLarge(t *testing.T) {
	relay := newFakeRelay(t)
	env := newTestEnv(t, relay.srv.URL)

	body := validJSON()
	body["message"] = strings.Repeat("x", maxJSONBody+1)
	w := env.postJSON("/api/contact", body)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "bad_request", decodeError(t, w)["code"])
	assert.Zero(t, relay.calls.Load())
}
