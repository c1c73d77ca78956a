package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/gummy1803-ai/assessment-system/config"
	"github.com/gummy1803-ai/assessment-system/pkg/jwt"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func okHandler(c *gin.Context) { c.String(http.StatusOK, "ok") }

func perform(r http.Handler, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// ── CORS ──

func TestCORS_Wildcard(t *testing.T) {
	r := gin.New()
	r.Use(CORS([]string{"*"}))
	r.GET("/x", okHandler)

	req := httptest.NewRequest("GET", "/x", nil)
	req.Header.Set("Origin", "http://client.local")
	w := perform(r, req)

	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Credentials"))
}

func TestCORS_AllowList(t *testing.T) {
	r := gin.New()
	r.Use(CORS([]string{"http://allowed.local/"}))
	r.GET("/x", okHandler)

	req := httptest.NewRequest("GET", "/x", nil)
	req.Header.Set("Origin", "http://allowed.local")
	w := perform(r, req)
	assert.Equal(t, "http://allowed.local", w.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest("GET", "/x", nil)
	req.Header.Set("Origin", "http://evil.local")
	w = perform(r, req)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORS_Preflight(t *testing.T) {
	r := gin.New()
	r.Use(CORS([]string{"*"}))
	r.POST("/x", okHandler)

	w := perform(r, httptest.NewRequest("OPTIONS", "/x", nil))
	assert.Equal(t, http.StatusNoContent, w.Code)
}

// ── BodyLimit ──

func TestBodyLimit_RejectsDeclaredLength(t *testing.T) {
	r := gin.New()
	r.Use(BodyLimit(8))
	r.POST("/x", okHandler)

	w := perform(r, httptest.NewRequest("POST", "/x", strings.NewReader(`{"cadres":[]}`)))
	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
}

func TestBodyLimit_AllowsSmallBody(t *testing.T) {
	r := gin.New()
	r.Use(BodyLimit(1024))
	r.POST("/x", okHandler)

	w := perform(r, httptest.NewRequest("POST", "/x", strings.NewReader(`{}`)))
	assert.Equal(t, http.StatusOK, w.Code)
}

// ── RequestID ──

func TestRequestID(t *testing.T) {
	r := gin.New()
	r.Use(RequestID())
	var seen string
	r.GET("/x", func(c *gin.Context) {
		seen = GetRequestID(c)
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest("GET", "/x", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	w := perform(r, req)
	assert.Equal(t, "abc-123", w.Header().Get("X-Request-ID"))
	assert.Equal(t, "abc-123", seen)

	req = httptest.NewRequest("GET", "/x", nil)
	req.Header.Set("X-Request-ID", strings.Repeat("a", 100))
	w = perform(r, req)
	assert.Len(t, w.Header().Get("X-Request-ID"), 36, "过长的 ID 应替换为 UUID")
}

// ── RateLimit ──

type fakeLimiter struct {
	calls int
	max   int
	err   error
}

func (f *fakeLimiter) CheckRateLimit(_ context.Context, _ string, _ int, _ time.Duration) (bool, error) {
	f.calls++
	if f.err != nil {
		return false, f.err
	}
	return f.calls <= f.max, nil
}

func TestRateLimit_BlocksAfterLimit(t *testing.T) {
	r := gin.New()
	r.Use(RateLimit(&fakeLimiter{max: 2}, 2, time.Minute, zap.NewNop()))
	r.POST("/login", okHandler)

	for i := 0; i < 2; i++ {
		w := perform(r, httptest.NewRequest("POST", "/login", nil))
		assert.Equal(t, http.StatusOK, w.Code)
	}
	w := perform(r, httptest.NewRequest("POST", "/login", nil))
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "60", w.Header().Get("Retry-After"))
}

func TestRateLimit_DegradesOpen(t *testing.T) {
	r := gin.New()
	r.Use(RateLimit(&fakeLimiter{err: errors.New("connection refused")}, 1, time.Minute, zap.NewNop()))
	r.POST("/login", okHandler)

	w := perform(r, httptest.NewRequest("POST", "/login", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	r = gin.New()
	r.Use(RateLimit(nil, 1, time.Minute, zap.NewNop()))
	r.POST("/login", okHandler)
	w = perform(r, httptest.NewRequest("POST", "/login", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

// ── AdminAuth ──

func TestAdminAuth(t *testing.T) {
	mgr := jwt.NewManager(&config.AuthConfig{
		JWTSecret:      "test-secret-key-for-unit-testing-2026",
		AccessTokenTTL: time.Minute,
	})
	token, err := mgr.GenerateAdminToken()
	assert.NoError(t, err)

	tests := []struct {
		name     string
		required bool
		header   string
		wantCode int
	}{
		{"disabled", false, "", http.StatusOK},
		{"missing header", true, "", http.StatusUnauthorized},
		{"bad scheme", true, "Basic abc", http.StatusUnauthorized},
		{"bad token", true, "Bearer not-a-token", http.StatusUnauthorized},
		{"valid", true, "Bearer " + token, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := gin.New()
			r.Use(AdminAuth(mgr, tt.required))
			r.DELETE("/clear", okHandler)

			req := httptest.NewRequest("DELETE", "/clear", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := perform(r, req)
			assert.Equal(t, tt.wantCode, w.Code)
		})
	}
}

func TestLogger_RecordsTokenJTI(t *testing.T) {
	mgr := jwt.NewManager(&config.AuthConfig{
		JWTSecret:      "test-secret-key-for-unit-testing-2026",
		AccessTokenTTL: time.Minute,
	})
	token, err := mgr.GenerateAdminToken()
	assert.NoError(t, err)
	claims, err := mgr.ParseToken(token)
	assert.NoError(t, err)

	core, logs := observer.New(zapcore.InfoLevel)
	r := gin.New()
	r.Use(RequestID(), Logger(zap.New(core)))
	r.DELETE("/clear", AdminAuth(mgr, true), okHandler)
	r.GET("/open", okHandler)

	req := httptest.NewRequest("DELETE", "/clear", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	perform(r, req)
	perform(r, httptest.NewRequest("GET", "/open", nil))

	entries := logs.All()
	if assert.Len(t, entries, 2) {
		assert.Equal(t, claims.ID, entries[0].ContextMap()["token_jti"])
		_, ok := entries[1].ContextMap()["token_jti"]
		assert.False(t, ok, "未认证请求不应记录 token_jti")
	}
}

func TestSecurityHeaders(t *testing.T) {
	r := gin.New()
	r.Use(SecurityHeaders())
	r.GET("/x", okHandler)

	w := perform(r, httptest.NewRequest("GET", "/x", nil))
	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "DENY", w.Header().Get("X-Frame-Options"))
	assert.Empty(t, w.Header().Get("Cache-Control"))

	r.GET("/api/sync/all", okHandler)
	w = perform(r, httptest.NewRequest("GET", "/api/sync/all", nil))
	assert.Equal(t, "no-store", w.Header().Get("Cache-Control"))
}
