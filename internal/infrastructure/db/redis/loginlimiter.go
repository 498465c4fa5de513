package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

const (
	limiterWindow      = 15 * time.Minute
	defaultMaxAttempts = 10
)

// LoginLimiter throttles failed login attempts per account using a fixed
// window counter. Key format: login_attempts:<email>
//
// The limiter fails open: any Redis error is logged and the attempt is
// allowed, so authentication never depends on Redis availability.
type LoginLimiter struct {
	client      *redis.Client
	maxAttempts int64
	logger      zerolog.Logger
}

// NewLoginLimiter creates a LoginLimiter wrapping the given Redis client.
// maxAttempts <= 0 falls back to the default.
func NewLoginLimiter(client *redis.Client, maxAttempts int, logger zerolog.Logger) *LoginLimiter {
	if maxAttempts <= 0 {
		maxAttempts = defaultMaxAttempts
	}
	return &LoginLimiter{client: client, maxAttempts: int64(maxAttempts), logger: logger}
}

func (l *LoginLimiter) Allow(ctx context.Context, email string) bool {
	n, err := l.client.Get(ctx, l.key(email)).Int64()
	if err != nil {
		if err != redis.Nil {
			l.logger.Warn().Err(err).Msg("login limiter check failed, allowing attempt")
		}
		return true
	}
	return n < l.maxAttempts
}

func (l *LoginLimiter) RecordFailure(ctx context.Context, email string) {
	key := l.key(email)
	pipe := l.client.TxPipeline()
	incr := pipe.Incr(ctx, key)
	pipe.Expire(ctx, key, limiterWindow)
	if _, err := pipe.Exec(ctx); err != nil {
		l.logger.Warn().Err(err).Msg("login limiter record failed")
		return
	}
	if incr.Val() == l.maxAttempts {
		l.logger.Warn().Str("email", email).Int64("attempts", incr.Val()).Msg("login attempt limit reached")
	}
}

func (l *LoginLimiter) Reset(ctx context.Context, email string) {
	if err := l.client.Del(ctx, l.key(email)).Err(); err != nil {
		l.logger.Warn().Err(err).Msg("login limiter reset failed")
	}
}

func (l *LoginLimiter) key(email string) string {
	return fmt.Sprintf("login_attempts:%s", email)
}
