package middleware

import (
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/dayflow-hr/hrms-backend-go/internal/domain/auth"
	"github.com/dayflow-hr/hrms-backend-go/internal/handler/http/response"
	"golang.org/x/time/rate"
)

type ipLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// IPRateLimiter hands out one token bucket per client IP. Buckets of clients
// that stopped calling are dropped by Sweep.
type IPRateLimiter struct {
	ips map[string]*ipLimiter
	mu  sync.Mutex
	r   rate.Limit
	b   int
	now func() time.Time
}

func NewIPRateLimiter(r rate.Limit, b int) *IPRateLimiter {
	return &IPRateLimiter{
		ips: make(map[string]*ipLimiter),
		r:   r,
		b:   b,
		now: time.Now,
	}
}

func (i *IPRateLimiter) GetLimiter(key string) *rate.Limiter {
	i.mu.Lock()
	defer i.mu.Unlock()

	entry, exists := i.ips[key]
	if !exists {
		entry = &ipLimiter{limiter: rate.NewLimiter(i.r, i.b)}
		i.ips[key] = entry
	}
	entry.lastSeen = i.now()

	return entry.limiter
}

// Sweep removes buckets not used for longer than idle and returns how many
// were removed.
func (i *IPRateLimiter) Sweep(idle time.Duration) int {
	i.mu.Lock()
	defer i.mu.Unlock()

	cutoff := i.now().Add(-idle)
	removed := 0
	for key, entry := range i.ips {
		if entry.lastSeen.Before(cutoff) {
			delete(i.ips, key)
			removed++
		}
	}
	return removed
}

// Len returns the number of tracked clients.
func (i *IPRateLimiter) Len() int {
	i.mu.Lock()
	defer i.mu.Unlock()
	return len(i.ips)
}

// RateLimit throttles requests per client IP. Mount chi's RealIP first when
// running behind a proxy.
func RateLimit(limiter *IPRateLimiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			if !limiter.GetLimiter(clientIP(req)).Allow() {
				response.HandleError(w, auth.ErrTooManyRequests)
				return
			}
			next.ServeHTTP(w, req)
		})
	}
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
