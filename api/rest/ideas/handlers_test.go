package ideas

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"codeberg.org/tubespark/server/tubespark/ideas"
)

func setup(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := ideas.NewStore(ideas.NewMemoryRepository())

	router := gin.New()
	group := router.Group("/api/v1", func(c *gin.Context) {
		c.Set("user_id", c.GetHeader("X-Test-User"))
		c.Next()
	})
	RegisterRoutes(group, store)

	return router
}

func do(router *gin.Engine, method, path, userID string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		payload, _ := json.Marshal(body)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Test-User", userID)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	return w
}

func save(t *testing.T, router *gin.Engine, userID string, idea map[string]any) ideas.Idea {
	t.Helper()

	w := do(router, http.MethodPost, "/api/v1/ideas/save", userID, map[string]any{"idea": idea})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp IdeaResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.Idea)

	return *resp.Idea
}

func TestSave_TitleOnlyGetsDefaults(t *testing.T) {
	router := setup(t)

	idea := save(t, router, "user-1", map[string]any{"title": "X"})

	assert.NotEmpty(t, idea.ID)
	assert.Equal(t, "X", idea.Title)
	assert.Equal(t, 50, idea.TrendScore)
	assert.Equal(t, ideas.Views(10000), idea.EstimatedViews)
	assert.Equal(t, ideas.DifficultyMedium, idea.Difficulty)
	assert.Equal(t, "5-10 min", idea.Duration)
	assert.Equal(t, "Thumbnail needed", idea.ThumbnailIdea)
	assert.Equal(t, ideas.StatusSaved, idea.Status)
}

func TestSave_MissingIdea(t *testing.T) {
	router := setup(t)

	w := do(router, http.MethodPost, "/api/v1/ideas/save", "user-1", map[string]any{})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), `"success":false`)
}

func TestList_NewestFirstAndScopedToUser(t *testing.T) {
	router := setup(t)

	save(t, router, "user-1", map[string]any{"title": "first"})
	save(t, router, "user-1", map[string]any{"title": "second"})
	save(t, router, "user-2", map[string]any{"title": "other"})

	w := do(router, http.MethodGet, "/api/v1/ideas", "user-1", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp ListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	require.Len(t, resp.Ideas, 2)
	assert.Equal(t, "second", resp.Ideas[0].Title)
	assert.Equal(t, "first", resp.Ideas[1].Title)
}

func TestList_EmptyIsArray(t *testing.T) {
	router := setup(t)

	w := do(router, http.MethodGet, "/api/v1/ideas", "user-1", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"ideas":[]`)
}

func TestGetUpdateDelete(t *testing.T) {
	router := setup(t)
	idea := save(t, router, "user-1", map[string]any{"title": "draft me"})
	path := "/api/v1/ideas/" + idea.ID

	w := do(router, http.MethodGet, path, "user-1", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = do(router, http.MethodPatch, path, "user-1", map[string]any{"status": "planned", "title": "renamed"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp IdeaResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, ideas.StatusPlanned, resp.Idea.Status)
	assert.Equal(t, "renamed", resp.Idea.Title)

	w = do(router, http.MethodPatch, path, "user-1", map[string]any{"status": "archived"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(router, http.MethodDelete, path, "user-1", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = do(router, http.MethodGet, path, "user-1", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestForeignIdeaIsNotFound(t *testing.T) {
	router := setup(t)
	idea := save(t, router, "user-1", map[string]any{"title": "mine"})
	path := "/api/v1/ideas/" + idea.ID

	for _, method := range []string{http.MethodGet, http.MethodDelete} {
		w := do(router, method, path, "user-2", nil)
		assert.Equal(t, http.StatusNotFound, w.Code, method)
		assert.Contains(t, w.Body.String(), `"code":"not_found"`)
	}

	w := do(router, http.MethodGet, path, "user-1", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestMalformedAndUnknownIDs(t *testing.T) {
	router := setup(t)

	w := do(router, http.MethodGet, "/api/v1/ideas/not-a-uuid", "user-1", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = do(router, http.MethodDelete, "/api/v1/ideas/"+uuid.NewString(), "user-1", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUnauthenticated(t *testing.T) {
	router := setup(t)

	w := do(router, http.MethodGet, "/api/v1/ideas", "", nil)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
