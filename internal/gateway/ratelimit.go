package gateway

import (
	"sync"
	"time"
)

// rateLimitTracker records endpoints that returned repeated 429s, with an
// expiry, so later calls can short-circuit without hitting the network.
type rateLimitTracker struct {
	mu    sync.Mutex
	until map[string]time.Time
}

func newRateLimitTracker() *rateLimitTracker {
	return &rateLimitTracker{until: make(map[string]time.Time)}
}

func (t *rateLimitTracker) limited(endpoint string, now time.Time) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	expiry, ok := t.until[endpoint]
	if !ok {
		return false
	}
	if now.After(expiry) {
		delete(t.until, endpoint)
		return false
	}
	return true
}

func (t *rateLimitTracker) mark(endpoint string, until time.Time) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.until[endpoint] = until
}

func (t *rateLimitTracker) snapshot(now time.Time) map[string]time.Time {
	t.mu.Lock()
	defer t.mu.Unlock()

	out := make(map[string]time.Time, len(t.until))
	for endpoint, expiry := range t.until {
		if now.After(expiry) {
			delete(t.until, endpoint)
			continue
		}
		out[endpoint] = expiry
	}
	return out
}

// RateLimitEvent tells the UI layer an endpoint went into cooldown and
// responses are being synthesized until the expiry.
type RateLimitEvent struct {
	Endpoint string    `json:"endpoint"`
	Until    time.Time `json:"until"`
}

// RateLimitListener receives rate-limit events. Registration replaces the
// ambient browser events of the original design with explicit observers.
type RateLimitListener func(RateLimitEvent)

type rateLimitNotifier struct {
	mu        sync.Mutex
	listeners []RateLimitListener
}

func (n *rateLimitNotifier) register(l RateLimitListener) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.listeners = append(n.listeners, l)
}

func (n *rateLimitNotifier) notify(ev RateLimitEvent) {
	n.mu.Lock()
	listeners := make([]RateLimitListener, len(n.listeners))
	copy(listeners, n.listeners)
	n.mu.Unlock()

	for _, l := range listeners {
		l(ev)
	}
}
