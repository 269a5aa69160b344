package api

import (
	"crypto/subtle"
	"fmt"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/guesstherank/gtr-data/internal/api/respond"
)

// --------------------------------------------------------------------------
// Request timing middleware
// --------------------------------------------------------------------------

// TimingMiddleware adds X-Process-Time header to all responses.
func TimingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		elapsed := time.Since(start)
		w.Header().Set("X-Process-Time", fmt.Sprintf("%.2fms", float64(elapsed.Microseconds())/1000.0))
	})
}

// --------------------------------------------------------------------------
// Admin authorization
// --------------------------------------------------------------------------

// RequireAdmin guards the scrape and write endpoints with a shared admin
// token, accepted as "Authorization: Bearer <token>" or "X-Scrape-Secret".
// An empty configured token disables the endpoints rather than opening them.
// Full identity management lives outside this service.
func RequireAdmin(token string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if token == "" {
				respond.WriteFailure(w, http.StatusForbidden, "admin endpoints are not configured")
				return
			}

			supplied := r.Header.Get("X-Scrape-Secret")
			if supplied == "" {
				auth := r.Header.Get("Authorization")
				supplied = strings.TrimPrefix(auth, "Bearer ")
			}

			if subtle.ConstantTimeCompare([]byte(supplied), []byte(token)) != 1 {
				respond.WriteFailure(w, http.StatusUnauthorized, "unauthorized")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// --------------------------------------------------------------------------
// Rate limiting middleware (IP-based token bucket)
// --------------------------------------------------------------------------

type ipLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	rate     rate.Limit
	burst    int
}

func newIPLimiter(requestsPerWindow int, window time.Duration) *ipLimiter {
	rps := float64(requestsPerWindow) / window.Seconds()
	burst := requestsPerWindow
	if burst < 1 {
		burst = 1
	}
	return &ipLimiter{
		limiters: make(map[string]*rate.Limiter),
		rate:     rate.Limit(rps),
		burst:    burst,
	}
}

func (l *ipLimiter) getLimiter(ip string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()
	if limiter, exists := l.limiters[ip]; exists {
		return limiter
	}
	limiter := rate.NewLimiter(l.rate, l.burst)
	l.limiters[ip] = limiter
	return limiter
}

// RateLimitMiddleware returns middleware that rate-limits by client IP. This
// bounds how often an admin can trigger scrapes; the outbound throttle
// toward Liquipedia is separate and lives in the provider client.
func RateLimitMiddleware(requestsPerWindow int, window time.Duration) func(http.Handler) http.Handler {
	limiter := newIPLimiter(requestsPerWindow, window)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip, _, _ := net.SplitHostPort(r.RemoteAddr)
			if ip == "" {
				ip = r.RemoteAddr
			}

			if !limiter.getLimiter(ip).Allow() {
				w.Header().Set("Retry-After", "60")
				respond.WriteFailure(w, http.StatusTooManyRequests, "rate limit reached, please wait a minute")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
