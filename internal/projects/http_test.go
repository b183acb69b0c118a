package projects

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	authmw "github.com/trekfolio/brochure-backend/internal/auth/middleware"
	"github.com/trekfolio/brochure-backend/internal/projects/domain"
)

func newTestRouter(t *testing.T, repo Repository) (*gin.Engine, *Manager) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	m := newTestManager(t, repo)

	r := gin.New()
	api := r.Group("/api/v1")
	api.Use(authmw.RequireUser(nil, nil))
	Register(api.Group("/projects"), m)
	RegisterSignout(api.Group("/auth"), m)
	return r, m
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-User-Id", "u-1")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func TestProjectsList(t *testing.T) {
	r, _ := newTestRouter(t, newMemRepo(
		seedRecord(t, "p-1", "Trek One"),
		domain.Record{"id": "corrupt"},
	))

	w := doJSON(t, r, http.MethodGet, "/api/v1/projects", nil)
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, true, body["ok"])
	list := body["projects"].([]any)
	require.Len(t, list, 1)
	assert.Equal(t, "p-1", list[0].(map[string]any)["id"])
	assert.NotContains(t, body, "error")
}

func TestProjectsGet(t *testing.T) {
	r, _ := newTestRouter(t, newMemRepo(seedRecord(t, "p-1", "Trek")))

	t.Run("found", func(t *testing.T) {
		w := doJSON(t, r, http.MethodGet, "/api/v1/projects/p-1", nil)
		require.Equal(t, http.StatusOK, w.Code)
		body := decodeBody(t, w)
		p := body["project"].(map[string]any)
		assert.Equal(t, "p-1", p["id"])
	})

	t.Run("missing", func(t *testing.T) {
		w := doJSON(t, r, http.MethodGet, "/api/v1/projects/ghost", nil)
		require.Equal(t, http.StatusNotFound, w.Code)
		body := decodeBody(t, w)
		assert.Equal(t, false, body["ok"])
	})
}

func TestProjectsCreate(t *testing.T) {
	r, _ := newTestRouter(t, newMemRepo())

	w := doJSON(t, r, http.MethodPost, "/api/v1/projects", domain.ProjectCreate{
		Hero: domain.Hero{Title: "New Trek"},
	})
	require.Equal(t, http.StatusCreated, w.Code)

	body := decodeBody(t, w)
	p := body["project"].(map[string]any)
	assert.NotEmpty(t, p["id"])
	assert.NotEmpty(t, p["createdAt"])

	hero := p["hero"].(map[string]any)
	assert.Equal(t, "New Trek", hero["title"])
}

func TestProjectsCreateDefault(t *testing.T) {
	r, _ := newTestRouter(t, newMemRepo())

	w := doJSON(t, r, http.MethodPost, "/api/v1/projects/default", nil)
	require.Equal(t, http.StatusCreated, w.Code)

	body := decodeBody(t, w)
	p := body["project"].(map[string]any)
	hero := p["hero"].(map[string]any)
	assert.NotEmpty(t, hero["title"])
	assert.NotEmpty(t, p["itinerary"])
}

func TestProjectsUpdateAndDelete(t *testing.T) {
	r, m := newTestRouter(t, newMemRepo(seedRecord(t, "p-1", "Trek")))

	w := doJSON(t, r, http.MethodPatch, "/api/v1/projects/p-1", domain.ProjectUpdate{
		"hero": map[string]any{"title": "Patched"},
	})
	require.Equal(t, http.StatusOK, w.Code)

	sess, err := m.Acquire(t.Context(), "u-1")
	require.NoError(t, err)
	p, ok := sess.Store.Get("p-1")
	require.True(t, ok)
	assert.Equal(t, "Patched", p.Hero.Title)

	w = doJSON(t, r, http.MethodDelete, "/api/v1/projects/p-1", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/v1/projects/p-1", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestProjectsDraftFlow(t *testing.T) {
	repo := newMemRepo(seedRecord(t, "p-1", "Trek"))
	r, m := newTestRouter(t, repo)

	w := doJSON(t, r, http.MethodPut, "/api/v1/projects/p-1/draft", domain.ProjectUpdate{
		"hero": map[string]any{"title": "Draft Title"},
	})
	require.Equal(t, http.StatusAccepted, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, true, body["pending"])

	w = doJSON(t, r, http.MethodGet, "/api/v1/projects/drafts", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body = decodeBody(t, w)
	assert.Equal(t, []any{"p-1"}, body["drafts"])

	w = doJSON(t, r, http.MethodGet, "/api/v1/projects/p-1/draft", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body = decodeBody(t, w)
	draft := body["draft"].(map[string]any)
	assert.Equal(t, map[string]any{"title": "Draft Title"}, draft["hero"])

	// The debounced flush eventually lands in the project itself.
	sess, err := m.Acquire(t.Context(), "u-1")
	require.NoError(t, err)
	require.Eventually(t, func() bool {
		p, ok := sess.Store.Get("p-1")
		return ok && p.Hero.Title == "Draft Title"
	}, 2*time.Second, 10*time.Millisecond)

	require.Eventually(t, func() bool {
		w := doJSON(t, r, http.MethodGet, "/api/v1/projects/p-1/draft", nil)
		return w.Code == http.StatusNotFound
	}, 2*time.Second, 10*time.Millisecond)
}

func TestProjectsDraftDiscard(t *testing.T) {
	repo := newMemRepo(seedRecord(t, "p-1", "Trek"))
	r, m := newTestRouter(t, repo)

	w := doJSON(t, r, http.MethodPut, "/api/v1/projects/p-1/draft", domain.ProjectUpdate{
		"hero": map[string]any{"title": "Abandoned"},
	})
	require.Equal(t, http.StatusAccepted, w.Code)

	w = doJSON(t, r, http.MethodDelete, "/api/v1/projects/p-1/draft", nil)
	require.Equal(t, http.StatusOK, w.Code)

	time.Sleep(100 * time.Millisecond)

	sess, err := m.Acquire(t.Context(), "u-1")
	require.NoError(t, err)
	p, ok := sess.Store.Get("p-1")
	require.True(t, ok)
	assert.Equal(t, "Trek", p.Hero.Title)

	w = doJSON(t, r, http.MethodGet, "/api/v1/projects/p-1/draft", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSignoutDropsSession(t *testing.T) {
	r, m := newTestRouter(t, newMemRepo(seedRecord(t, "p-1", "Trek")))

	sess, err := m.Acquire(t.Context(), "u-1")
	require.NoError(t, err)

	w := doJSON(t, r, http.MethodPost, "/api/v1/auth/signout", nil)
	require.Equal(t, http.StatusOK, w.Code)

	fresh, err := m.Acquire(t.Context(), "u-1")
	require.NoError(t, err)
	assert.NotSame(t, sess, fresh)
}
