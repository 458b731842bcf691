package handlers

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ahbiggie/Bigeen-web/domain/content"
)

func TestPagesRender(t *testing.T) {
	env := newTestEnv(t, "https://formspree.io/f/abc")
	site := content.Default()

	w := env.get("/")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/html; charset=utf-8", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Body.String(), site.ForMode(content.ModeTech).Hero.Headline)
	require.Len(t, env.cookies, 1, "first visit starts a session")

	for _, path := range []string{"/about", "/roadmap", "/contact"} {
		w := env.get(path)
		assert.Equal(t, http.StatusOK, w.Code, path)
		assert.Contains(t, w.Body.String(), `href="`+path+`" aria-current="page"`, path)
	}
}

func TestContactPageDerivesTopic(t *testing.T) {
	env := newTestEnv(t, "https://formspree.io/f/abc")

	body := env.get("/contact").Body.String()
	first := content.TopicOptions(content.ModeTech)[0]
	assert.Contains(t, body, `<option value="`+first+`" selected>`)
}

func TestSwitchMode(t *testing.T) {
	env := newTestEnv(t, "https://formspree.io/f/abc")
	site := content.Default()

	w := env.postForm("/mode", url.Values{"mode": {"consult"}, "next": {"/about"}})
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/about", w.Header().Get("Location"))

	body := env.get("/").Body.String()
	assert.Contains(t, body, site.ForMode(content.ModeConsult).Hero.Headline)
	assert.Contains(t, body, `data-mode="consult"`)

	contactPage := env.get("/contact").Body.String()
	assert.Contains(t, contactPage, `<option value="`+content.TopicOptions(content.ModeConsult)[0]+`" selected>`)
}

func TestSwitchModeRejectsUnknownMode(t *testing.T) {
	env := newTestEnv(t, "https://formspree.io/f/abc")

	w := env.postForm("/mode", url.Values{"mode": {"retro"}})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "bad_request", decodeError(t, w)["code"])
}

func TestLocalPath(t *testing.T) {
	tests := map[string]string{
		"":                     "/",
		"/contact":             "/contact",
		"/contact#faq":         "/contact#faq",
		"//evil.example":       "/",
		"/\\evil.example":      "/",
		"https://evil.example": "/",
		"about":                "/",
	}
	for in, want := range tests {
		assert.Equal(t, want, localPath(in), in)
	}
}

func TestToggleFAQ(t *testing.T) {
	env := newTestEnv(t, "https://formspree.io/f/abc")
	site := content.Default()
	require.NotEmpty(t, site.FAQs)

	w := env.postForm("/faq/0", nil)
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/contact#faq", w.Header().Get("Location"))
	assert.Contains(t, env.get("/contact").Body.String(), `class="faq-item open"`)

	env.postForm("/faq/0", nil)
	assert.NotContains(t, env.get("/contact").Body.String(), `class="faq-item open"`)
}

func TestToggleFAQOutOfRange(t *testing.T) {
	env := newTestEnv(t, "https://formspree.io/f/abc")

	for _, index := range []string{"99", "-1", "abc"} {
		w := env.postForm("/faq/"+index, nil)
		assert.Equal(t, http.StatusNotFound, w.Code, index)
	}
}

func TestNotFound(t *testing.T) {
	env := newTestEnv(t, "https://formspree.io/f/abc")

	w := env.get("/pricing")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "not_found", decodeError(t, w)["code"])
}

func TestNavbarKeepsSessionSection(t *testing.T) {
	env := newTestEnv(t, "https://formspree.io/f/abc")

	env.get("/roadmap")
	w := env.get("/about")
	assert.Contains(t, w.Body.String(), `href="/about" aria-current="page"`)
	assert.NotContains(t, w.Body.String(), `href="/roadmap" aria-current="page"`)
}
