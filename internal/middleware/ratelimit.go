package middleware

import (
	"context"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/AnshRaj112/wave-backend/pkg/clientip"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"
)

const (
	// RateLimitWindow is the fixed window used by the Redis limiter
	RateLimitWindow = 120 * time.Second
	// RateLimitMaxRequests is the number of requests allowed per window
	RateLimitMaxRequests = 120
	// RateLimitKeyPrefix is the Redis key prefix for rate limiting
	RateLimitKeyPrefix = "wave:ratelimit:"

	memoryRateLimitRPS   = 2
	memoryRateLimitBurst = 20
	memoryCleanupEvery   = 5 * time.Minute
	memoryLimiterTTL     = 30 * time.Minute
)

// Limiter decides whether one more request from key may proceed.
type Limiter interface {
	Allow(ctx context.Context, key string) (allowed bool, remaining int, err error)
	Limit() int
}

// RedisLimiter is a fixed-window counter shared by every instance.
type RedisLimiter struct {
	client *redis.Client
	window time.Duration
	max    int
}

func NewRedisLimiter(client *redis.Client) *RedisLimiter {
	return &RedisLimiter{client: client, window: RateLimitWindow, max: RateLimitMaxRequests}
}

func (l *RedisLimiter) Limit() int { return l.max }

func (l *RedisLimiter) Allow(ctx context.Context, key string) (bool, int, error) {
	redisKey := RateLimitKeyPrefix + key
	count, err := l.client.Incr(ctx, redisKey).Result()
	if err != nil {
		return false, 0, err
	}
	if count == 1 {
		if err := l.client.Expire(ctx, redisKey, l.window).Err(); err != nil {
			return false, 0, err
		}
	}
	remaining := l.max - int(count)
	if remaining < 0 {
		return false, 0, nil
	}
	return true, remaining, nil
}

type limiterEntry struct {
	limiter *rate.Limiter
	lastUse time.Time
}

// MemoryLimiter keeps a token bucket per key in process memory. Idle
// buckets are swept on access.
type MemoryLimiter struct {
	mu        sync.Mutex
	entries   map[string]*limiterEntry
	rps       rate.Limit
	burst     int
	lastSweep time.Time
	now       func() time.Time
}

func NewMemoryLimiter(rps float64, burst int) *MemoryLimiter {
	return &MemoryLimiter{
		entries:   make(map[string]*limiterEntry),
		rps:       rate.Limit(rps),
		burst:     burst,
		lastSweep: time.Now(),
		now:       time.Now,
	}
}

// DefaultMemoryLimiter allows 2 req/s per client with a burst of 20.
func DefaultMemoryLimiter() *MemoryLimiter {
	return NewMemoryLimiter(memoryRateLimitRPS, memoryRateLimitBurst)
}

func (l *MemoryLimiter) Limit() int { return l.burst }

func (l *MemoryLimiter) Allow(_ context.Context, key string) (bool, int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	if now.Sub(l.lastSweep) > memoryCleanupEvery {
		for k, e := range l.entries {
			if now.Sub(e.lastUse) > memoryLimiterTTL {
				delete(l.entries, k)
			}
		}
		l.lastSweep = now
	}

	e, ok := l.entries[key]
	if !ok {
		e = &limiterEntry{limiter: rate.NewLimiter(l.rps, l.burst)}
		l.entries[key] = e
	}
	e.lastUse = now

	if !e.limiter.AllowN(now, 1) {
		return false, 0, nil
	}
	return true, int(e.limiter.TokensAt(now)), nil
}

// RateLimit rejects clients over the limiter's budget with 429. Limiter
// errors fail open.
func RateLimit(l Limiter, trustProxy bool, log zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := clientip.RealClientIP(r, trustProxy)
			allowed, remaining, err := l.Allow(r.Context(), ip)
			if err != nil {
				log.Warn().Err(err).Str("ip", ip).Msg("rate limiter unavailable, allowing request")
				next.ServeHTTP(w, r)
				return
			}

			w.Header().Set("X-RateLimit-Limit", strconv.Itoa(l.Limit()))
			w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(remaining))
			if !allowed {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusTooManyRequests)
				w.Write([]byte(`{"success":false,"message":"Too many requests. Please slow down."}`))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
