package middleware

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"jobboard-backend/internal/config"
)

func TestRateLimiterMiddleware(t *testing.T) {
	r := gin.New()
	r.GET("/limited", RateLimiterMiddleware(2), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	codes := []int{}
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/limited", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)
		codes = append(codes, rec.Code)
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)

	// other clients have their own budget
	req := httptest.NewRequest(http.MethodGet, "/limited", nil)
	req.RemoteAddr = "10.0.0.2:1234"
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestNewRateLimiter_InMemory(t *testing.T) {
	mw, client := NewRateLimiter(config.RateLimitConfig{})
	assert.NotNil(t, mw)
	assert.Nil(t, client)
}

func TestNewRateLimiter_Redis(t *testing.T) {
	mw, client := NewRateLimiter(config.RateLimitConfig{RequestsPerSecond: 3, RedisAddr: "127.0.0.1:6399"})
	require.NotNil(t, client)
	defer client.Close()
	assert.NotNil(t, mw)
	assert.Equal(t, "127.0.0.1:6399", client.Options().Addr)
}

func TestSizeLimit(t *testing.T) {
	r := gin.New()
	r.POST("/upload", SizeLimit(16), func(c *gin.Context) {
		if _, err := io.ReadAll(c.Request.Body); err != nil {
			c.Status(http.StatusRequestEntityTooLarge)
			return
		}
		c.Status(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/upload", strings.NewReader(`{"a":1}`)))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/upload", strings.NewReader(strings.Repeat("x", 64))))
	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)

	// unknown length is caught while reading
	req := httptest.NewRequest(http.MethodPost, "/upload", io.NopCloser(strings.NewReader(strings.Repeat("x", 64))))
	req.ContentLength = -1
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}

func TestSafeHeader(t *testing.T) {
	testCases := []struct {
		name      string
		hsts      bool
		path      string
		wantCSP   bool
		wantCache string
	}{
		{"api route", false, "/api/v1/job/get", true, "no-store"},
		{"api route behind tls", true, "/api/v1/job/get", true, "no-store"},
		{"swagger ui", false, "/swagger/index.html", false, ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r := gin.New()
			r.Use(SafeHeader(tc.hsts))
			r.GET("/*any", func(c *gin.Context) { c.Status(http.StatusOK) })

			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tc.path, nil))

			assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
			assert.Equal(t, "DENY", rec.Header().Get("X-Frame-Options"))
			assert.Equal(t, tc.wantCache, rec.Header().Get("Cache-Control"))
			if tc.wantCSP {
				assert.Equal(t, apiContentPolicy, rec.Header().Get("Content-Security-Policy"))
			} else {
				assert.Empty(t, rec.Header().Get("Content-Security-Policy"))
			}
			assert.Equal(t, tc.hsts, rec.Header().Get("Strict-Transport-Security") != "")
		})
	}
}

func TestRequestIDAndLogging(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	r := gin.New()
	r.Use(RequestIDMiddleware(), LoggingMiddleware(zap.New(core)))
	r.GET("/ok", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/missing", func(c *gin.Context) { c.Status(http.StatusNotFound) })

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ok", nil))
	generated := rec.Header().Get("X-Request-ID")
	assert.NotEmpty(t, generated)

	req := httptest.NewRequest(http.MethodGet, "/missing", nil)
	req.Header.Set("X-Request-ID", "given-id")
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, "given-id", rec.Header().Get("X-Request-ID"))

	entries := logs.AllUntimed()
	require.Len(t, entries, 2)
	assert.Equal(t, "HTTP Request", entries[0].Message)
	assert.Equal(t, generated, entries[0].ContextMap()["request_id"])
	assert.Equal(t, "HTTP Request - Client Error", entries[1].Message)
	assert.Equal(t, int64(http.StatusNotFound), entries[1].ContextMap()["status"])
}

func TestTimeout(t *testing.T) {
	r := gin.New()
	r.GET("/slow", Timeout(10*time.Millisecond), func(c *gin.Context) {
		select {
		case <-c.Request.Context().Done():
			assert.ErrorIs(t, c.Request.Context().Err(), context.DeadlineExceeded)
			c.Status(http.StatusGatewayTimeout)
		case <-time.After(time.Second):
			c.Status(http.StatusOK)
		}
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/slow", nil))
	assert.Equal(t, http.StatusGatewayTimeout, rec.Code)
}
