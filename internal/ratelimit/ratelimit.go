package ratelimit

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/go-redis/redis/v8"

	"gameopolis-api/internal/utils"
)

// Client is the slice of redis commands the limiter needs; *redis.Client
// satisfies it and tests substitute a mock.
type Client interface {
	Incr(ctx context.Context, key string) *redis.IntCmd
	Expire(ctx context.Context, key string, expiration time.Duration) *redis.BoolCmd
}

// Limiter is a fixed-window counter keyed by client IP and route tag.
// Public write endpoints (booking submissions, event registrations) go
// through it; admin routes do not.
type Limiter struct {
	Client Client
	Limit  int
	Window time.Duration
}

func NewLimiter(client Client, limit int, window time.Duration) *Limiter {
	return &Limiter{Client: client, Limit: limit, Window: window}
}

// Allow counts one hit for ip under tag and reports whether it is within
// the window limit. The first hit of a window sets the key expiry.
func (l *Limiter) Allow(ctx context.Context, tag, ip string) (bool, error) {
	key := fmt.Sprintf("rl:%s:%s", tag, ip)

	n, err := l.Client.Incr(ctx, key).Result()
	if err != nil {
		return false, err
	}
	if n == 1 {
		if err := l.Client.Expire(ctx, key, l.Window).Err(); err != nil {
			return false, err
		}
	}
	return n <= int64(l.Limit), nil
}

// Middleware enforces the limit on one route. A nil limiter disables
// enforcement so the server runs without Redis.
func (l *Limiter) Middleware(tag string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if l == nil || l.Client == nil {
				next.ServeHTTP(w, r)
				return
			}

			ip := clientIP(r)
			ok, err := l.Allow(r.Context(), tag, ip)
			if err != nil {
				// Redis being down should not take public endpoints with it.
				next.ServeHTTP(w, r)
				return
			}
			if !ok {
				utils.WriteError(w, http.StatusTooManyRequests, "Too many requests, please try again later", "")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func clientIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		return fwd
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
