package security

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryLimiter_WindowAndRefill(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

	l := NewMemoryLimiter(3, time.Minute)
	l.now = func() time.Time { return now }

	for i := 0; i < 3; i++ {
		ok, err := l.Allow(ctx, "10.0.0.1")
		require.NoError(t, err)
		assert.True(t, ok, "request %d", i+1)
	}
	ok, _ := l.Allow(ctx, "10.0.0.1")
	assert.False(t, ok)

	// other clients have their own budget
	ok, _ = l.Allow(ctx, "10.0.0.2")
	assert.True(t, ok)

	now = now.Add(time.Minute)
	for i := 0; i < 3; i++ {
		ok, _ := l.Allow(ctx, "10.0.0.1")
		assert.True(t, ok, "request %d after refill", i+1)
	}
}

func TestMemoryLimiter_SweepsIdleKeys(t *testing.T) {
	ctx := context.Background()
	now := time.Now()

	l := NewMemoryLimiter(5, time.Minute)
	l.now = func() time.Time { return now }

	l.Allow(ctx, "idle")
	now = now.Add(10 * time.Minute)
	l.Allow(ctx, "active")

	l.mu.Lock()
	defer l.mu.Unlock()
	assert.NotContains(t, l.visitors, "idle")
	assert.Contains(t, l.visitors, "active")
}

type stubLimiter struct {
	allowed bool
	err     error
}

func (s stubLimiter) Allow(context.Context, string) (bool, error) {
	return s.allowed, s.err
}

func TestRateLimiterMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name     string
		limiter  Limiter
		wantCode int
	}{
		{"admitted", stubLimiter{allowed: true}, http.StatusOK},
		{"over limit", stubLimiter{allowed: false}, http.StatusTooManyRequests},
		{"backend down", stubLimiter{err: errors.New("redis: connection refused")}, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := gin.New()
			r.Use(RateLimiter(tt.limiter))
			r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

			assert.Equal(t, tt.wantCode, w.Code)
			if tt.wantCode == http.StatusTooManyRequests {
				assert.JSONEq(t, `{"message":"Too many requests, please try again later."}`, w.Body.String())
			}
		})
	}
}

func TestOriginAllowList(t *testing.T) {
	l := NewOriginAllowList([]string{"http://localhost:3000"})
	assert.True(t, l.Allowed("http://localhost:3000"))
	assert.False(t, l.Allowed("http://evil.example"))

	l.Set([]string{"*"})
	assert.True(t, l.Allowed("http://evil.example"))
}

func TestCORSFollowsAllowList(t *testing.T) {
	gin.SetMode(gin.TestMode)
	l := NewOriginAllowList([]string{"http://localhost:3000"})

	r := gin.New()
	r.Use(CORS(l), Secure())
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	request := func(origin string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Origin", origin)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	w := request("http://localhost:3000")
	assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))

	w = request("http://other.example")
	assert.Equal(t, http.StatusForbidden, w.Code)

	l.Set([]string{"http://other.example"})
	w = request("http://other.example")
	assert.Equal(t, "http://other.example", w.Header().Get("Access-Control-Allow-Origin"))
}
