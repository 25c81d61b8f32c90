package middleware

import (
	"log"
	"net"
	"net/http"
	"strings"

	"envrt-site/internal/cache"
)

// RateLimitMiddleware applies a per-client fixed-window limit to the public
// write endpoints. Redis failures fail open: a broken cache must not take
// lead capture down with it.
type RateLimitMiddleware struct {
	rlCache cache.RateLimitCache
}

// NewRateLimitMiddleware creates a new rate limit middleware
func NewRateLimitMiddleware(rlCache cache.RateLimitCache) *RateLimitMiddleware {
	return &RateLimitMiddleware{rlCache: rlCache}
}

// Limit wraps a handler with the named rate-limit scope. Each scope carries
// its own per-window limit; lead routes run much tighter than the beacon.
func (m *RateLimitMiddleware) Limit(scope string, limit int, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if m.rlCache == nil {
			next(w, r)
			return
		}

		allowed, err := m.rlCache.Hit(r.Context(), scope, clientIP(r), limit)
		if err != nil {
			log.Printf("[ratelimit] %s check failed: %v", scope, err)
			next(w, r)
			return
		}
		if !allowed {
			http.Error(w, `{"error":"too many requests"}`, http.StatusTooManyRequests)
			return
		}
		next(w, r)
	}
}

// clientIP trusts the first X-Forwarded-For hop; the service runs behind a
// single reverse proxy.
func clientIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		if idx := strings.Index(fwd, ","); idx >= 0 {
			return strings.TrimSpace(fwd[:idx])
		}
		return strings.TrimSpace(fwd)
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
