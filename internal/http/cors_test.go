package http

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestCreateCORSMiddleware(t *testing.T) {
	logger := slog.Default()

	t.Run("DisabledReturnsNil", func(t *testing.T) {
		assert.Nil(t, createCORSMiddleware(false, "https://example.com", logger))
	})

	t.Run("EnabledWithoutOriginsReturnsNil", func(t *testing.T) {
		assert.Nil(t, createCORSMiddleware(true, "", logger))
	})

	t.Run("EnabledWithOriginsReturnsMiddleware", func(t *testing.T) {
		middleware := createCORSMiddleware(true, "https://app.example.com,https://admin.example.com", logger)
		assert.NotNil(t, middleware)
	})

	t.Run("WhitespaceOnlyOriginsReturnsNil", func(t *testing.T) {
		assert.Nil(t, createCORSMiddleware(true, " , ", logger))
	})
}

func TestParseOrigins(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{
			name:     "CommaSeparated",
			input:    "https://app.example.com,https://admin.example.com",
			expected: []string{"https://app.example.com", "https://admin.example.com"},
		},
		{
			name:     "TrimsWhitespace",
			input:    " https://app.example.com , https://admin.example.com ",
			expected: []string{"https://app.example.com", "https://admin.example.com"},
		},
		{
			name:     "SkipsEmptyEntries",
			input:    "https://app.example.com,,",
			expected: []string{"https://app.example.com"},
		},
		{
			name:     "EmptyString",
			input:    "",
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, parseOrigins(tt.input))
		})
	}
}

func TestCORSIntegration(t *testing.T) {
	gin.SetMode(gin.TestMode)
	logger := slog.Default()

	newRouterWith := func(middleware gin.HandlerFunc) *gin.Engine {
		router := gin.New()
		if middleware != nil {
			router.Use(middleware)
		}
		router.GET("/test", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})
		return router
	}

	t.Run("HeadersAddedWhenEnabled", func(t *testing.T) {
		router := newRouterWith(createCORSMiddleware(true, "https://app.example.com", logger))

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		req.Header.Set("Origin", "https://app.example.com")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "https://app.example.com", w.Header().Get("Access-Control-Allow-Origin"))
		assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))
	})

	t.Run("NoHeadersWhenDisabled", func(t *testing.T) {
		router := newRouterWith(createCORSMiddleware(false, "https://app.example.com", logger))

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		req.Header.Set("Origin", "https://app.example.com")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
	})
}
