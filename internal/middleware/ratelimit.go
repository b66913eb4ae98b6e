package middleware

import (
	"math"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"
)

// windowLimiter counts requests per key in fixed windows.
type windowLimiter struct {
	limit  int
	window time.Duration
	now    func() time.Time

	mu        sync.Mutex
	counts    map[string]*window
	lastSweep time.Time
}

type window struct {
	hits    int
	resetAt time.Time
}

func newWindowLimiter(limit int, per time.Duration) *windowLimiter {
	return &windowLimiter{limit: limit, window: per, now: time.Now, counts: make(map[string]*window)}
}

// allow records a hit for key. When the key is over its limit it returns
// false and the time left until the window resets.
func (l *windowLimiter) allow(key string) (bool, time.Duration) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	if now.Sub(l.lastSweep) > l.window {
		for k, w := range l.counts {
			if !now.Before(w.resetAt) {
				delete(l.counts, k)
			}
		}
		l.lastSweep = now
	}

	w, ok := l.counts[key]
	if !ok || !now.Before(w.resetAt) {
		w = &window{resetAt: now.Add(l.window)}
		l.counts[key] = w
	}
	if w.hits >= l.limit {
		return false, w.resetAt.Sub(now)
	}
	w.hits++
	return true, 0
}

// RateLimit allows limit requests per client IP in each window of per.
// A non-positive limit disables the check.
func RateLimit(limit int, per time.Duration) func(http.Handler) http.Handler {
	if limit <= 0 {
		return func(next http.Handler) http.Handler { return next }
	}
	l := newWindowLimiter(limit, per)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ok, wait := l.allow(rateLimitKey(r))
			if !ok {
				w.Header().Set("Retry-After", strconv.Itoa(int(math.Ceil(wait.Seconds()))))
				writeError(w, http.StatusTooManyRequests, "rate_limited", "too many requests, try again shortly")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// rateLimitKey is the peer host. Forwarding headers are resolved once,
// upstream, by chi's RealIP.
func rateLimitKey(r *http.Request) string {
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return host
	}
	return r.RemoteAddr
}
