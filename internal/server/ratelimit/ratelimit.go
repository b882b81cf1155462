// Package ratelimit provides per-client request rate limiting for the HTTP API.
package ratelimit

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// Info contains information about rate limit status.
type Info struct {
	Allowed    bool
	Limit      int
	Remaining  int
	ResetTime  time.Time
	RetryAfter time.Duration
}

type client struct {
	limiter    *rate.Limiter
	lastAccess time.Time
}

// Limiter tracks one token bucket per client.
type Limiter struct {
	config  *Config
	every   rate.Limit
	burst   int
	mu      sync.Mutex
	clients map[string]*client
	stop    chan struct{}
	once    sync.Once
}

// NewLimiter creates a new rate limiter with the given configuration.
// A background goroutine evicts idle clients until Stop is called.
func NewLimiter(config *Config) *Limiter {
	if config == nil {
		config = DefaultConfig()
	}

	l := &Limiter{
		config:  config,
		clients: make(map[string]*client),
		stop:    make(chan struct{}),
	}

	if config.Enabled && config.Limit > 0 && config.Window > 0 {
		l.every = rate.Limit(float64(config.Limit) / config.Window.Seconds())
		l.burst = config.Burst
		if l.burst <= 0 {
			l.burst = config.Limit
		}
	}

	if config.Enabled && config.CleanupInterval > 0 {
		go l.cleanupLoop(config.CleanupInterval)
	}

	return l
}

// Allow reports whether a request from clientID to path may proceed now.
func (l *Limiter) Allow(clientID, path string) (bool, Info) {
	return l.allowAt(clientID, path, time.Now())
}

func (l *Limiter) allowAt(clientID, path string, now time.Time) (bool, Info) {
	if !l.config.Enabled || l.config.ExemptPaths[path] || l.config.Whitelist[clientID] {
		return true, Info{Allowed: true}
	}
	if l.config.Blacklist[clientID] {
		return false, Info{Allowed: false}
	}
	if l.every == 0 {
		return true, Info{Allowed: true}
	}

	lim := l.clientLimiter(clientID, now)

	allowed := lim.AllowN(now, 1)
	info := Info{
		Allowed:   allowed,
		Limit:     l.config.Limit,
		Remaining: max(0, int(lim.TokensAt(now))),
	}

	missing := float64(l.burst) - lim.TokensAt(now)
	info.ResetTime = now.Add(time.Duration(missing / float64(l.every) * float64(time.Second)))

	if !allowed {
		r := lim.ReserveN(now, 1)
		info.RetryAfter = r.DelayFrom(now)
		r.CancelAt(now)
	}

	return allowed, info
}

// clientLimiter gets or creates the limiter for clientID
func (l *Limiter) clientLimiter(clientID string, now time.Time) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	c, ok := l.clients[clientID]
	if !ok {
		c = &client{limiter: rate.NewLimiter(l.every, l.burst)}
		l.clients[clientID] = c
	}
	c.lastAccess = now
	return c.limiter
}

func (l *Limiter) cleanupLoop(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case now := <-ticker.C:
			l.evictIdle(now)
		case <-l.stop:
			return
		}
	}
}

// evictIdle removes clients not seen within IdleTTL of now.
func (l *Limiter) evictIdle(now time.Time) {
	ttl := l.config.IdleTTL
	if ttl <= 0 {
		ttl = time.Hour
	}
	cutoff := now.Add(-ttl)

	l.mu.Lock()
	defer l.mu.Unlock()
	for id, c := range l.clients {
		if c.lastAccess.Before(cutoff) {
			delete(l.clients, id)
		}
	}
}

// clientCount returns the number of tracked clients
func (l *Limiter) clientCount() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.clients)
}

// Stop stops the cleanup goroutine. It is safe to call more than once.
func (l *Limiter) Stop() {
	l.once.Do(func() {
		close(l.stop)
	})
}
