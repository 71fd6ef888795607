// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package server

import (
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// clientLimiter hands out one token bucket per client address. The bucket
// refills at requests/window and allows a burst of the full request budget.
type clientLimiter struct {
	mu      sync.Mutex
	buckets map[string]*rate.Limiter
	limit   rate.Limit
	burst   int
}

// TODO: evict idle buckets once this runs in front of untrusted traffic;
// the map currently grows with the number of distinct client addresses.
func newClientLimiter(requests int, window time.Duration) *clientLimiter {
	return &clientLimiter{
		buckets: make(map[string]*rate.Limiter),
		limit:   rate.Limit(float64(requests) / window.Seconds()),
		burst:   requests,
	}
}

func (l *clientLimiter) allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	bucket, ok := l.buckets[key]
	if !ok {
		bucket = rate.NewLimiter(l.limit, l.burst)
		l.buckets[key] = bucket
	}
	return bucket.Allow()
}

// rateLimit rejects clients that exceed the configured policy. The key is
// the client IP, the remote-address strategy existing deployments expect.
func (s *Server) rateLimit(next http.Handler) http.Handler {
	limiter := newClientLimiter(s.cfg.RateLimit.Requests, s.cfg.RateLimit.Window)
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		host, _, err := net.SplitHostPort(r.RemoteAddr)
		if err != nil {
			host = r.RemoteAddr
		}
		if !limiter.allow(host) {
			s.writeError(w, http.StatusTooManyRequests,
				fmt.Sprintf("Rate limit exceeded: %s", s.cfg.RateLimit.Limit))
			return
		}
		next.ServeHTTP(w, r)
	})
}
