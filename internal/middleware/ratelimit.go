// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package middleware

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"net/netip"
	"strconv"
	"strings"
	"sync"
	"time"
)

// Decision is the outcome of one rate limit check.
type Decision struct {
	Allowed    bool
	Limit      int
	Remaining  int
	RetryAfter time.Duration // set when not allowed
}

// Limiter decides whether a client key may make another request.
type Limiter interface {
	Allow(ctx context.Context, key string) (Decision, error)
}

// RateLimit returns middleware that limits requests per client IP. It sets
// the X-RateLimit-Limit and X-RateLimit-Remaining headers, and Retry-After
// on rejection. A limiter error lets the request through. Forwarding
// headers are read only from peers inside trustedProxies.
func RateLimit(l Limiter, trustedProxies ...netip.Prefix) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			d, err := l.Allow(r.Context(), clientIP(r, trustedProxies))
			if err != nil {
				slog.Warn("rate limiter unavailable", "error", err, "request_id", RequestIDFromCtx(r.Context()))
				next.ServeHTTP(w, r)
				return
			}

			h := w.Header()
			h.Set("X-RateLimit-Limit", strconv.Itoa(d.Limit))
			h.Set("X-RateLimit-Remaining", strconv.Itoa(d.Remaining))

			if !d.Allowed {
				secs := int((d.RetryAfter + time.Second - 1) / time.Second)
				h.Set("Retry-After", strconv.Itoa(max(secs, 1)))
				http.Error(w, "Too Many Requests", http.StatusTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// limiterEntry tracks request timestamps for a single client.
type limiterEntry struct {
	mu         sync.Mutex
	timestamps []time.Time
}

// MemoryLimiter is an in-process sliding window limiter. Each instance
// counts on its own; use ValkeyLimiter to share limits across instances.
type MemoryLimiter struct {
	mu      sync.RWMutex
	clients map[string]*limiterEntry
	limit   int
	window  time.Duration
	now     func() time.Time
	stopCh  chan struct{}
}

// NewMemoryLimiter allows limit requests per window and client. It starts
// a background goroutine that drops idle clients; call Stop to end it.
func NewMemoryLimiter(limit int, window time.Duration) *MemoryLimiter {
	ml := &MemoryLimiter{
		clients: make(map[string]*limiterEntry),
		limit:   limit,
		window:  window,
		now:     time.Now,
		stopCh:  make(chan struct{}),
	}

	go func() {
		ticker := time.NewTicker(5 * time.Minute)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				ml.cleanup()
			case <-ml.stopCh:
				return
			}
		}
	}()

	return ml
}

// Stop terminates the background cleanup goroutine.
func (ml *MemoryLimiter) Stop() {
	close(ml.stopCh)
}

// Allow records a request for key if it is within the limit.
func (ml *MemoryLimiter) Allow(_ context.Context, key string) (Decision, error) {
	entry := ml.entry(key)

	now := ml.now()
	cutoff := now.Add(-ml.window)

	entry.mu.Lock()
	defer entry.mu.Unlock()

	valid := entry.timestamps[:0]
	for _, ts := range entry.timestamps {
		if ts.After(cutoff) {
			valid = append(valid, ts)
		}
	}
	entry.timestamps = valid

	d := Decision{Limit: ml.limit}
	if len(entry.timestamps) >= ml.limit {
		d.RetryAfter = entry.timestamps[0].Add(ml.window).Sub(now)
		return d, nil
	}

	entry.timestamps = append(entry.timestamps, now)
	d.Allowed = true
	d.Remaining = ml.limit - len(entry.timestamps)
	return d, nil
}

func (ml *MemoryLimiter) entry(key string) *limiterEntry {
	ml.mu.RLock()
	entry, ok := ml.clients[key]
	ml.mu.RUnlock()
	if ok {
		return entry
	}

	ml.mu.Lock()
	defer ml.mu.Unlock()
	if entry, ok = ml.clients[key]; !ok {
		entry = &limiterEntry{}
		ml.clients[key] = entry
	}
	return entry
}

// cleanup removes clients with no request inside the window.
func (ml *MemoryLimiter) cleanup() {
	cutoff := ml.now().Add(-ml.window)

	ml.mu.Lock()
	defer ml.mu.Unlock()

	for key, entry := range ml.clients {
		entry.mu.Lock()
		n := len(entry.timestamps)
		recent := n > 0 && entry.timestamps[n-1].After(cutoff)
		entry.mu.Unlock()

		if !recent {
			delete(ml.clients, key)
		}
	}
}

// clientIP returns the address a request is rate limited under. Forwarding
// headers are honored only when the direct peer is one of trusted: the
// X-Forwarded-For chain is walked from the right, skipping trusted hops,
// and the first other address wins. Requests from anyone else are keyed by
// their peer address, whatever headers they send.
func clientIP(r *http.Request, trusted []netip.Prefix) string {
	peer := r.RemoteAddr
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		peer = host
	}
	if !isTrusted(peer, trusted) {
		return peer
	}

	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		hops := strings.Split(xff, ",")
		for i := len(hops) - 1; i >= 0; i-- {
			hop := strings.TrimSpace(hops[i])
			if _, err := netip.ParseAddr(hop); err != nil {
				break
			}
			if !isTrusted(hop, trusted) {
				return hop
			}
		}
	}

	if xri := strings.TrimSpace(r.Header.Get("X-Real-IP")); xri != "" {
		return xri
	}
	return peer
}

func isTrusted(ip string, trusted []netip.Prefix) bool {
	addr, err := netip.ParseAddr(ip)
	if err != nil {
		return false
	}
	addr = addr.Unmap()
	for _, p := range trusted {
		if p.Contains(addr) {
			return true
		}
	}
	return false
}
