package security

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"cyber_academy_backend/pkg/logger"
	"cyber_academy_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const tooManyRequests = "Too many requests, please try again later."

// Limiter decides whether one more request from key is admitted.
type Limiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

// visitor pairs a limiter with the last time its key was seen.
type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// MemoryLimiter is a per-key token bucket that holds maxRequests tokens and
// refills them over window. Idle keys are swept lazily.
type MemoryLimiter struct {
	mu        sync.Mutex
	visitors  map[string]*visitor
	limit     rate.Limit
	burst     int
	expiry    time.Duration
	lastSweep time.Time
	now       func() time.Time
}

func NewMemoryLimiter(maxRequests int, window time.Duration) *MemoryLimiter {
	expiry := window * 3
	if expiry < time.Minute {
		expiry = time.Minute
	}
	return &MemoryLimiter{
		visitors:  make(map[string]*visitor),
		limit:     rate.Every(window / time.Duration(maxRequests)),
		burst:     maxRequests,
		expiry:    expiry,
		lastSweep: time.Now(),
		now:       time.Now,
	}
}

func (l *MemoryLimiter) Allow(_ context.Context, key string) (bool, error) {
	now := l.now()

	l.mu.Lock()
	if now.Sub(l.lastSweep) > l.expiry {
		for k, v := range l.visitors {
			if now.Sub(v.lastSeen) > l.expiry {
				delete(l.visitors, k)
			}
		}
		l.lastSweep = now
	}
	v, exists := l.visitors[key]
	if !exists {
		v = &visitor{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.visitors[key] = v
	}
	v.lastSeen = now
	l.mu.Unlock()

	return v.limiter.AllowN(now, 1), nil
}

// RedisLimiter is a fixed-window counter shared by every instance.
type RedisLimiter struct {
	rdb         *redis.Client
	maxRequests int64
	window      time.Duration
	prefix      string
	now         func() time.Time
}

func NewRedisLimiter(rdb *redis.Client, maxRequests int, window time.Duration) *RedisLimiter {
	return &RedisLimiter{
		rdb:         rdb,
		maxRequests: int64(maxRequests),
		window:      window,
		prefix:      "ratelimit",
		now:         time.Now,
	}
}

func (l *RedisLimiter) Allow(ctx context.Context, key string) (bool, error) {
	bucket := l.now().UnixNano() / int64(l.window)
	redisKey := fmt.Sprintf("%s:%s:%d", l.prefix, key, bucket)

	pipe := l.rdb.TxPipeline()
	incr := pipe.Incr(ctx, redisKey)
	pipe.Expire(ctx, redisKey, l.window)
	if _, err := pipe.Exec(ctx); err != nil {
		return false, err
	}
	return incr.Val() <= l.maxRequests, nil
}

// RateLimiter limits requests per client IP. A limiter backend failure admits the
// request rather than taking the API down with it.
func RateLimiter(limiter Limiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		allowed, err := limiter.Allow(c.Request.Context(), c.ClientIP())
		if err != nil {
			logger.Log.Warn("rate limiter unavailable", zap.Error(err))
			c.Next()
			return
		}
		if !allowed {
			monitoring.RateLimited.Inc()
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"message": tooManyRequests})
			return
		}

		c.Next()
	}
}
