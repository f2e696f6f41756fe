package contact

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

const (
	// DefaultRateLimit allows one submission every 20 seconds per client.
	DefaultRateLimit = rate.Limit(1.0 / 20.0)
	// DefaultRateBurst is the number of back-to-back submissions allowed.
	DefaultRateBurst = 3

	limiterIdleTTL = 10 * time.Minute
)

// Limiter rate limits submissions per client key.
type Limiter struct {
	limit rate.Limit
	burst int
	now   func() time.Time

	mu      sync.Mutex
	clients map[string]*clientLimiter
	swept   time.Time
}

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// NewLimiter returns a per-client limiter. Non-positive values select the
// defaults.
func NewLimiter(limit rate.Limit, burst int) *Limiter {
	if limit <= 0 {
		limit = DefaultRateLimit
	}
	if burst <= 0 {
		burst = DefaultRateBurst
	}
	return &Limiter{
		limit:   limit,
		burst:   burst,
		now:     time.Now,
		clients: make(map[string]*clientLimiter),
	}
}

// Allow reports whether key may submit now, consuming a token when it may.
func (l *Limiter) Allow(key string) bool {
	if l == nil {
		return true
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	l.sweep(now)
	client, ok := l.clients[key]
	if !ok {
		client = &clientLimiter{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.clients[key] = client
	}
	client.lastSeen = now
	return client.limiter.AllowN(now, 1)
}

func (l *Limiter) sweep(now time.Time) {
	if now.Sub(l.swept) < limiterIdleTTL {
		return
	}
	l.swept = now
	for key, client := range l.clients {
		if now.Sub(client.lastSeen) > limiterIdleTTL {
			delete(l.clients, key)
		}
	}
}
