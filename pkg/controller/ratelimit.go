package controller

import (
	"net/http"
	"referral/pkg/logger"
	"strconv"
	"sync"
	"time"

	"go.uber.org/zap"
)

// RateLimitMessage is the body returned with 429 responses.
const RateLimitMessage = "Too many requests, please try again later."

// RateLimiter grants each client a budget of max requests per fixed window.
//
// A client's window starts with its first request and its budget is restored
// in full once the window has elapsed. Clients whose window has expired are
// pruned lazily.
type RateLimiter struct {
	max    int
	window time.Duration
	now    func() time.Time
	key    func(r *http.Request) string

	mu        sync.Mutex
	clients   map[string]*client
	lastPrune time.Time
}

type client struct {
	hits  int
	start time.Time
}

// NewRateLimiter creates a limiter keyed by the connection's remote IP.
func NewRateLimiter(maxRequests int, window time.Duration) *RateLimiter {
	return &RateLimiter{
		max:     maxRequests,
		window:  window,
		now:     time.Now,
		key:     RemoteIP,
		clients: make(map[string]*client),
	}
}

// Allow counts one request against key's budget and reports whether it fit.
func (l *RateLimiter) Allow(key string) bool {
	_, ok := l.take(key)

	return ok
}

// take counts one request and returns the time left in key's window.
func (l *RateLimiter) take(key string) (time.Duration, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	l.pruneLocked(now)

	c, ok := l.clients[key]
	if !ok || now.Sub(c.start) >= l.window {
		c = &client{start: now}
		l.clients[key] = c
	}

	remaining := l.window - now.Sub(c.start)
	if c.hits >= l.max {
		return remaining, false
	}
	c.hits++

	return remaining, true
}

// Clients returns the number of tracked clients.
func (l *RateLimiter) Clients() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	return len(l.clients)
}

func (l *RateLimiter) pruneLocked(now time.Time) {
	if now.Sub(l.lastPrune) < l.window {
		return
	}
	for k, c := range l.clients {
		if now.Sub(c.start) >= l.window {
			delete(l.clients, k)
		}
	}
	l.lastPrune = now
}

// Middleware rejects requests over budget with 429 and a JSON error body.
func (l *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := l.key(r)
		remaining, ok := l.take(key)
		if !ok {
			logger.Warn(r.Context(), "rate limit exceeded", zap.String("client", key))
			w.Header().Set("Retry-After", strconv.Itoa(retryAfterSeconds(remaining)))
			WriteError(w, http.StatusTooManyRequests, RateLimitMessage)

			return
		}

		next.ServeHTTP(w, r)
	})
}

func retryAfterSeconds(d time.Duration) int {
	secs := int((d + time.Second - 1) / time.Second)
	if secs < 1 {
		return 1
	}

	return secs
}
