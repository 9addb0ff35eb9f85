package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"github.com/pieclinic/clinic-api/internal/handler"
)

// RedisRateLimiter is a fixed-window per-IP limiter backed by Redis, so
// the limit holds across replicas. On Redis failure the request is let
// through: availability over strictness.
type RedisRateLimiter struct {
	client *redis.Client
	limit  int
	window time.Duration
}

type RedisRateLimiterConfig struct {
	URL    string
	Limit  int
	Window time.Duration
}

func NewRedisRateLimiter(cfg RedisRateLimiterConfig) (*RedisRateLimiter, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}
	return &RedisRateLimiter{
		client: redis.NewClient(opts),
		limit:  cfg.Limit,
		window: cfg.Window,
	}, nil
}

func (rl *RedisRateLimiter) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		key := fmt.Sprintf("ratelimit:%s:%d", c.ClientIP(), time.Now().Unix()/int64(rl.window.Seconds()))

		count, err := rl.client.Incr(ctx, key).Result()
		if err != nil {
			log.Warn().Err(err).Msg("rate limiter unavailable, allowing request")
			c.Next()
			return
		}
		if count == 1 {
			rl.client.Expire(ctx, key, rl.window)
		}

		if count > int64(rl.limit) {
			c.JSON(http.StatusTooManyRequests, handler.NewErrorResponse("rate limit exceeded"))
			c.Abort()
			return
		}
		c.Next()
	}
}

func (rl *RedisRateLimiter) Close() error {
	return rl.client.Close()
}
