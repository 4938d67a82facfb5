package tui

import (
	"net"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// RateLimitConfig configures per-IP connection throttling.
type RateLimitConfig struct {
	PerSecond  float64       // New connections allowed per second per IP
	Burst      int           // Maximum burst size
	StaleAfter time.Duration // Idle limiters older than this are dropped
}

// DefaultRateLimitConfig allows a reconnect every couple of seconds.
var DefaultRateLimitConfig = RateLimitConfig{
	PerSecond:  0.5,
	Burst:      3,
	StaleAfter: 10 * time.Minute,
}

type limiterEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// ConnLimiter throttles new sessions per remote IP.
type ConnLimiter struct {
	mu       sync.Mutex
	cfg      RateLimitConfig
	limiters map[string]*limiterEntry
}

// NewConnLimiter creates a limiter. Non-positive values take the defaults.
func NewConnLimiter(cfg RateLimitConfig) *ConnLimiter {
	if cfg.PerSecond <= 0 {
		cfg.PerSecond = DefaultRateLimitConfig.PerSecond
	}
	if cfg.Burst <= 0 {
		cfg.Burst = DefaultRateLimitConfig.Burst
	}
	if cfg.StaleAfter <= 0 {
		cfg.StaleAfter = DefaultRateLimitConfig.StaleAfter
	}
	return &ConnLimiter{
		cfg:      cfg,
		limiters: make(map[string]*limiterEntry),
	}
}

// Allow reports whether a new session from addr may start at now.
func (cl *ConnLimiter) Allow(addr net.Addr, now time.Time) bool {
	ip := remoteIP(addr)

	cl.mu.Lock()
	defer cl.mu.Unlock()

	cl.prune(now)

	e, ok := cl.limiters[ip]
	if !ok {
		e = &limiterEntry{limiter: rate.NewLimiter(rate.Limit(cl.cfg.PerSecond), cl.cfg.Burst)}
		cl.limiters[ip] = e
	}
	e.lastSeen = now
	return e.limiter.AllowN(now, 1)
}

// Len returns the number of tracked IPs.
func (cl *ConnLimiter) Len() int {
	cl.mu.Lock()
	defer cl.mu.Unlock()
	return len(cl.limiters)
}

// prune drops limiters not seen recently. Caller holds mu.
func (cl *ConnLimiter) prune(now time.Time) {
	cutoff := now.Add(-cl.cfg.StaleAfter)
	for ip, e := range cl.limiters {
		if e.lastSeen.Before(cutoff) {
			delete(cl.limiters, ip)
		}
	}
}

func remoteIP(addr net.Addr) string {
	if addr == nil {
		return ""
	}
	host, _, err := net.SplitHostPort(addr.String())
	if err != nil {
		return addr.String()
	}
	return host
}
