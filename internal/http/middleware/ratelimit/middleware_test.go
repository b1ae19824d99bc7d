package ratelimit

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	testlog "laundry-service/internal/testutil"
)

// recordingLimiter allows keys listed in allow and remembers what it was asked.
type recordingLimiter struct {
	allow map[string]bool
	seen  []string
}

func (l *recordingLimiter) Allow(key string) bool {
	l.seen = append(l.seen, key)
	return l.allow[key]
}

func TestMiddleware(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		remoteAddr  string
		allow       map[string]bool
		wantCode    int
		wantKey     string
		wantBlocked bool
	}{
		{name: "allowed client", remoteAddr: "1.2.3.4:5678", allow: map[string]bool{"1.2.3.4": true}, wantCode: http.StatusOK, wantKey: "1.2.3.4"},
		{name: "blocked client", remoteAddr: "5.6.7.8:1", wantCode: http.StatusTooManyRequests, wantKey: "5.6.7.8", wantBlocked: true},
		{name: "remote addr without port", remoteAddr: "not-a-hostport", allow: map[string]bool{"not-a-hostport": true}, wantCode: http.StatusOK, wantKey: "not-a-hostport"},
		{name: "empty remote addr", remoteAddr: "", wantCode: http.StatusTooManyRequests, wantKey: "unknown", wantBlocked: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			counter := prometheus.NewCounter(prometheus.CounterOpts{Name: "rate_limit_exceeded_total", Help: "test"})
			limiter := &recordingLimiter{allow: tc.allow}
			rec := testlog.New()

			nextCalled := 0
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled++
				w.WriteHeader(http.StatusOK)
			})
			h := New(rec.Logger(), counter, limiter).Handler()(next)

			r := httptest.NewRequest(http.MethodGet, "http://example/orders", nil)
			r.RemoteAddr = tc.remoteAddr
			w := httptest.NewRecorder()
			h.ServeHTTP(w, r)

			require.Equal(t, tc.wantCode, w.Code)
			require.Equal(t, []string{tc.wantKey}, limiter.seen)

			if !tc.wantBlocked {
				assert.Equal(t, 1, nextCalled)
				assert.Zero(t, testutil.ToFloat64(counter))
				return
			}

			assert.Zero(t, nextCalled)
			assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
			assert.Equal(t, "1", w.Header().Get("Retry-After"))
			assert.JSONEq(t, `{"success":false,"error":"too many requests"}`, w.Body.String())
			assert.Equal(t, float64(1), testutil.ToFloat64(counter))

			e, ok := rec.Find("rate limit exceeded")
			require.True(t, ok)
			ip, _ := e.Field("ip")
			assert.Equal(t, tc.wantKey, ip)
		})
	}
}

func TestNew_Defaults(t *testing.T) {
	t.Parallel()

	m := New(nil, nil, nil)
	require.NotNil(t, m.logger)
	_, ok := m.limiter.(NopLimiter)
	require.True(t, ok)

	// no counter configured: a block must not panic
	blocked := New(nil, nil, &recordingLimiter{})
	w := httptest.NewRecorder()
	blocked.Handler()(http.NotFoundHandler()).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusTooManyRequests, w.Code)
}
