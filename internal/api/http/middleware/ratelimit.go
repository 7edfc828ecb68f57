package middleware

import (
	"net"
	"net/http"
)

// Limiter decides whether a request for key may proceed.
type Limiter interface {
	Allow(key string) bool
}

// RateLimit rejects clients that exceed their request budget with 429.
// Clients are keyed by remote IP; run it after chi's RealIP middleware.
func RateLimit(limiter Limiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow(clientKey(r)) {
				rateLimitRejects.Inc()
				w.Header().Set("Retry-After", "1")
				writeDetails(w, http.StatusTooManyRequests, "too many requests")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func clientKey(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
