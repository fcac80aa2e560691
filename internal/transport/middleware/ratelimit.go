package middleware

import (
	"math"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/heartmarshall/flashcards-backend/pkg/ctxutil"
)

type keyedLimiter interface {
	Allow(key string) bool
	RetryAfter() time.Duration
}

// RateLimit returns middleware that limits requests per authenticated user,
// falling back to the client IP for anonymous requests. It must run after Auth.
func RateLimit(limiter keyedLimiter) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow(rateLimitKey(r)) {
				secs := int(math.Ceil(limiter.RetryAfter().Seconds()))
				w.Header().Set("Retry-After", strconv.Itoa(max(secs, 1)))
				writeJSONError(w, http.StatusTooManyRequests, "rate_limited", "rate limit exceeded", ctxutil.RequestIDFromCtx(r.Context()))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func rateLimitKey(r *http.Request) string {
	if userID, ok := ctxutil.UserIDFromCtx(r.Context()); ok {
		return "user:" + userID.String()
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		host = r.RemoteAddr
	}
	return "ip:" + host
}
