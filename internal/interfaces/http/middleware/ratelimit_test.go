package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestRateLimiter_Allow(t *testing.T) {
	limiter := NewRateLimiter(2, time.Minute)

	assert.True(t, limiter.Allow("10.0.0.1"))
	assert.True(t, limiter.Allow("10.0.0.1"))
	assert.False(t, limiter.Allow("10.0.0.1"))

	// Other clients have their own budget.
	assert.True(t, limiter.Allow("10.0.0.2"))
}

func TestRateLimiter_WindowReset(t *testing.T) {
	limiter := NewRateLimiter(1, time.Nanosecond)

	assert.True(t, limiter.Allow("10.0.0.1"))
	time.Sleep(time.Millisecond)
	assert.True(t, limiter.Allow("10.0.0.1"))
}

func TestRateLimitMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.Use(RateLimit(NewRateLimiter(1, time.Minute)))
	engine.GET("/recurso", func(c *gin.Context) { c.Status(http.StatusOK) })

	first := httptest.NewRecorder()
	engine.ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/recurso", nil))
	assert.Equal(t, http.StatusOK, first.Code)

	second := httptest.NewRecorder()
	engine.ServeHTTP(second, httptest.NewRequest(http.MethodGet, "/recurso", nil))
	assert.Equal(t, http.StatusTooManyRequests, second.Code)
	assert.Contains(t, second.Body.String(), "RATE_LIMIT_EXCEEDED")
}

func TestRateLimitPrefix(t *testing.T) {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.Use(RateLimitPrefix(NewRateLimiter(1, time.Minute), "/api/v1/auth/"))
	engine.POST("/api/v1/auth/login", func(c *gin.Context) { c.Status(http.StatusOK) })
	engine.GET("/api/v1/personal/dashboard", func(c *gin.Context) { c.Status(http.StatusOK) })

	// Auth budget exhausts after one request.
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", nil))
	assert.Equal(t, http.StatusTooManyRequests, w.Code)

	// Other routes stay unlimited.
	for i := 0; i < 3; i++ {
		w = httptest.NewRecorder()
		engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/personal/dashboard", nil))
		assert.Equal(t, http.StatusOK, w.Code)
	}
}

func TestBodyLimit(t *testing.T) {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.Use(BodyLimit(8))
	engine.POST("/recurso", func(c *gin.Context) { c.Status(http.StatusOK) })

	small := httptest.NewRequest(http.MethodPost, "/recurso", nil)
	small.Header.Set("Content-Length", "4")
	small.ContentLength = 4
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, small)
	assert.Equal(t, http.StatusOK, w.Code)

	big := httptest.NewRequest(http.MethodPost, "/recurso", nil)
	big.ContentLength = 1024
	w = httptest.NewRecorder()
	engine.ServeHTTP(w, big)
	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
	assert.Contains(t, w.Body.String(), "REQUEST_TOO_LARGE")
}
