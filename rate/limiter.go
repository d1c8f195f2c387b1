package rate

import (
	"context"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// Limiter hands out one token bucket per client key. Buckets idle for
// longer than Expiry are forgotten.
type Limiter struct {
	Burst  int
	Limit  rate.Limit
	Expiry time.Duration

	mu      sync.Mutex
	clients map[string]*clientLimiter
}

type clientLimiter struct {
	limiter    *rate.Limiter
	lastAccess time.Time
}

// NewLimiter allows burst requests at once per client, refilled one token
// every interval.
func NewLimiter(burst int, interval time.Duration, expiry time.Duration) *Limiter {
	return &Limiter{
		Burst:   burst,
		Limit:   rate.Every(interval),
		Expiry:  expiry,
		clients: make(map[string]*clientLimiter),
	}
}

func (l *Limiter) Allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	cl, ok := l.clients[key]
	if !ok {
		cl = &clientLimiter{limiter: rate.NewLimiter(l.Limit, l.Burst)}
		l.clients[key] = cl
	}
	cl.lastAccess = now
	return cl.limiter.AllowN(now, 1)
}

// Run drops expired clients every period until ctx is done.
func (l *Limiter) Run(ctx context.Context, period time.Duration) {
	t := time.NewTicker(period)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-t.C:
			l.prune(now)
		}
	}
}

func (l *Limiter) prune(now time.Time) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for key, cl := range l.clients {
		if now.Sub(cl.lastAccess) > l.Expiry {
			delete(l.clients, key)
		}
	}
}

func (l *Limiter) clientCount() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.clients)
}
