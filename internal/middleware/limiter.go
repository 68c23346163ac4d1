package middleware

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"storefront/internal/logger"
	"storefront/internal/session"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// Rate limit tiers.
const (
	// checkout and sign-in
	limitStrict = rate.Limit(2)
	burstStrict = 5

	limitGeneral = rate.Limit(10)
	burstGeneral = 20
)

const visitorTTL = 3 * time.Minute

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// Limiter keeps one token bucket per client and tier.
type Limiter struct {
	mu       sync.Mutex
	visitors map[string]*visitor
	now      func() time.Time
}

func NewLimiter() *Limiter {
	return &Limiter{visitors: make(map[string]*visitor), now: time.Now}
}

func (l *Limiter) get(key string, r rate.Limit, b int) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	v, ok := l.visitors[key]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(r, b)}
		l.visitors[key] = v
	}
	v.lastSeen = l.now()
	return v.limiter
}

// Sweep drops buckets idle for longer than the visitor TTL.
func (l *Limiter) Sweep() {
	l.mu.Lock()
	defer l.mu.Unlock()

	for key, v := range l.visitors {
		if l.now().Sub(v.lastSeen) > visitorTTL {
			delete(l.visitors, key)
		}
	}
}

// Run sweeps every interval until ctx ends.
func (l *Limiter) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			l.Sweep()
		case <-ctx.Done():
			return
		}
	}
}

func (l *Limiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		limit, burst, tier := resolveRateTier(r)
		key := fmt.Sprintf("%s:%s", clientIdentity(r), tier)

		if !l.get(key, limit, burst).Allow() {
			logger.FromCtx(r.Context()).Warn("rate limited", zap.String("bucket", key))
			http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func clientIdentity(r *http.Request) string {
	if id, ok := session.FromContext(r.Context()); ok {
		return fmt.Sprintf("user:%d", id.ID)
	}
	if deviceID := r.Header.Get("X-Device-ID"); deviceID != "" {
		return "device:" + deviceID
	}
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		ip = r.RemoteAddr
	}
	return "ip:" + ip
}

func resolveRateTier(r *http.Request) (rate.Limit, int, string) {
	if r.Method == http.MethodPost {
		switch r.URL.Path {
		case "/orders", "/session", "/session/register":
			return limitStrict, burstStrict, "strict"
		}
	}
	return limitGeneral, burstGeneral, "general"
}
