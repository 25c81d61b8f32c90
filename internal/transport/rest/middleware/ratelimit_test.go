package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

type stubRateLimitCache struct {
	counts map[string]int
	err    error
	scopes []string
}

func (c *stubRateLimitCache) Hit(_ context.Context, scope, clientKey string, limit int) (bool, error) {
	if c.err != nil {
		return false, c.err
	}
	if c.counts == nil {
		c.counts = map[string]int{}
	}
	c.scopes = append(c.scopes, scope)
	key := scope + "|" + clientKey
	c.counts[key]++
	return c.counts[key] <= limit, nil
}

func hitLimited(t *testing.T, handler http.HandlerFunc, ip string) int {
	t.Helper()
	req := httptest.NewRequest("POST", "/v1/leads/contact", nil)
	req.RemoteAddr = ip + ":51234"
	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec.Code
}

func okHandler(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func TestLimitRejectsOverLimit(t *testing.T) {
	rl := &stubRateLimitCache{}
	limited := NewRateLimitMiddleware(rl).Limit("lead-contact", 2, okHandler)

	for i := 1; i <= 2; i++ {
		if code := hitLimited(t, limited, "203.0.113.7"); code != http.StatusOK {
			t.Fatalf("request %d: status = %d, want 200", i, code)
		}
	}
	for i := 3; i <= 4; i++ {
		if code := hitLimited(t, limited, "203.0.113.7"); code != http.StatusTooManyRequests {
			t.Errorf("request %d: status = %d, want 429", i, code)
		}
	}

	// Another client gets its own window
	if code := hitLimited(t, limited, "203.0.113.8"); code != http.StatusOK {
		t.Errorf("second client status = %d, want 200", code)
	}
}

func TestLimitScopesAreIndependent(t *testing.T) {
	rl := &stubRateLimitCache{}
	mw := NewRateLimitMiddleware(rl)
	leads := mw.Limit("lead-contact", 1, okHandler)
	beacon := mw.Limit("beacon", 1, okHandler)

	if code := hitLimited(t, leads, "203.0.113.7"); code != http.StatusOK {
		t.Fatalf("lead status = %d", code)
	}
	if code := hitLimited(t, leads, "203.0.113.7"); code != http.StatusTooManyRequests {
		t.Fatalf("lead over-limit status = %d, want 429", code)
	}
	// Exhausting the lead scope must not touch the beacon scope
	if code := hitLimited(t, beacon, "203.0.113.7"); code != http.StatusOK {
		t.Errorf("beacon status = %d, want 200", code)
	}
}

func TestLimitFailsOpenOnCacheError(t *testing.T) {
	rl := &stubRateLimitCache{err: errors.New("redis down")}
	limited := NewRateLimitMiddleware(rl).Limit("lead-contact", 1, okHandler)

	for i := 1; i <= 3; i++ {
		if code := hitLimited(t, limited, "203.0.113.7"); code != http.StatusOK {
			t.Errorf("request %d: cache errors must fail open, status = %d", i, code)
		}
	}
}

func TestLimitNilCachePassesThrough(t *testing.T) {
	limited := NewRateLimitMiddleware(nil).Limit("lead-contact", 1, okHandler)
	for i := 1; i <= 3; i++ {
		if code := hitLimited(t, limited, "203.0.113.7"); code != http.StatusOK {
			t.Errorf("request %d: status = %d, want 200", i, code)
		}
	}
}

func TestClientIPPrefersForwardedFor(t *testing.T) {
	req := httptest.NewRequest("POST", "/", nil)
	req.RemoteAddr = "10.0.0.1:40000"
	if got := clientIP(req); got != "10.0.0.1" {
		t.Errorf("clientIP = %q, want remote host", got)
	}

	req.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.1")
	if got := clientIP(req); got != "203.0.113.7" {
		t.Errorf("clientIP = %q, want first forwarded hop", got)
	}
}
