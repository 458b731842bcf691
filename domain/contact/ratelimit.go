package contact

import (
	"net"
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// ClientLimiter keeps one token bucket per client key (usually the remote IP).
type ClientLimiter struct {
	mu       sync.RWMutex
	limiters map[string]*clientBucket
	limit    rate.Limit
	burst    int
	now      func() time.Time
}

type clientBucket struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// NewClientLimiter allows requestsPerMinute per key with the given burst.
func NewClientLimiter(requestsPerMinute, burst int) *ClientLimiter {
	if requestsPerMinute <= 0 {
		requestsPerMinute = 10
	}
	if burst <= 0 {
		burst = 1
	}
	return &ClientLimiter{
		limiters: make(map[string]*clientBucket),
		limit:    rate.Every(time.Minute / time.Duration(requestsPerMinute)),
		burst:    burst,
		now:      time.Now,
	}
}

// Allow reports whether key may make another request now.
func (l *ClientLimiter) Allow(key string) bool {
	return l.bucket(key).Allow()
}

func (l *ClientLimiter) bucket(key string) *rate.Limiter {
	now := l.now()

	l.mu.RLock()
	b, ok := l.limiters[key]
	l.mu.RUnlock()
	if ok {
		l.mu.Lock()
		b.lastSeen = now
		l.mu.Unlock()
		return b.limiter
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	// another request may have created it meanwhile
	if b, ok = l.limiters[key]; ok {
		b.lastSeen = now
		return b.limiter
	}
	b = &clientBucket{limiter: rate.NewLimiter(l.limit, l.burst), lastSeen: now}
	l.limiters[key] = b
	return b.limiter
}

// Prune drops buckets idle for longer than maxIdle and returns how many were removed.
func (l *ClientLimiter) Prune(maxIdle time.Duration) int {
	cutoff := l.now().Add(-maxIdle)
	l.mu.Lock()
	defer l.mu.Unlock()
	removed := 0
	for key, b := range l.limiters {
		if b.lastSeen.Before(cutoff) {
			delete(l.limiters, key)
			removed++
		}
	}
	return removed
}

// Len returns the number of tracked clients.
func (l *ClientLimiter) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.limiters)
}

// Middleware rejects requests over the limit with onLimit.
// The key is r.RemoteAddr, so chi's RealIP middleware should run first.
func (l *ClientLimiter) Middleware(onLimit http.HandlerFunc) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !l.Allow(clientKey(r)) {
				onLimit(w, r)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func clientKey(r *http.Request) string {
	host := r.RemoteAddr
	if h, _, err := net.SplitHostPort(host); err == nil {
		host = h
	}
	return host
}
