package logger

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelInfo, parseLevel("production", ""))
	assert.Equal(t, slog.LevelDebug, parseLevel("development", ""))
	assert.Equal(t, slog.LevelWarn, parseLevel("production", "WARN"))
	assert.Equal(t, slog.LevelError, parseLevel("", "error"))
}

func TestMiddleware_LogsRequest(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var buf bytes.Buffer
	previous := defaultLogger
	SetDefault(slog.New(slog.NewTextHandler(&buf, nil)))
	defer SetDefault(previous)

	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set("user_id", "user-1")
		c.Next()
	})
	router.Use(Middleware())
	router.GET("/missing", func(c *gin.Context) {
		c.Status(http.StatusNotFound)
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/missing", nil))

	line := buf.String()
	assert.Contains(t, line, "level=WARN")
	assert.Contains(t, line, "status=404")
	assert.Contains(t, line, "path=/missing")
	assert.Contains(t, line, "user_id=user-1")
}
