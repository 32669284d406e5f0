package lock

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	apperrors "guard-deployment-backend/internal/errors"
	"guard-deployment-backend/internal/logger"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
)

const (
	defaultKeyPrefix = "guard:lock:"
	retryInterval    = 25 * time.Millisecond
)

// releaseScript deletes the key only if it still holds our token, so an
// expired lock re-acquired by someone else is never released by us
var releaseScript = goredis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// RedisConfig holds the connection settings for NewRedisClient
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// NewRedisClient connects and pings Redis
func NewRedisClient(cfg RedisConfig) (*goredis.Client, error) {
	if cfg.Addr == "" {
		return nil, apperrors.ErrRedisNotConfigured
	}

	rdb := goredis.NewClient(&goredis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", cfg.Addr, err)
	}

	logger.New().WithField("addr", cfg.Addr).Info("Connected to Redis")
	return rdb, nil
}

// RedisLocker is a Locker backed by SET NX PX. The TTL bounds how long a
// crashed holder can block others; it must exceed the longest transition.
type RedisLocker struct {
	client goredis.UniversalClient
	ttl    time.Duration
	prefix string
}

// NewRedisLocker creates a RedisLocker
func NewRedisLocker(client goredis.UniversalClient, ttl time.Duration) *RedisLocker {
	if ttl <= 0 {
		ttl = 10 * time.Second
	}
	return &RedisLocker{client: client, ttl: ttl, prefix: defaultKeyPrefix}
}

// Acquire implements Locker
func (r *RedisLocker) Acquire(ctx context.Context, key string) (Release, error) {
	fullKey := r.prefix + key
	token := uuid.NewString()

	ticker := time.NewTicker(retryInterval)
	defer ticker.Stop()

	for {
		ok, err := r.client.SetNX(ctx, fullKey, token, r.ttl).Result()
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return nil, fmt.Errorf("%w: %s: %v", apperrors.ErrLockNotAcquired, key, ctxErr)
			}
			return nil, fmt.Errorf("%w: %v", apperrors.ErrLockBackendFailed, err)
		}
		if ok {
			break
		}

		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("%w: %s: %v", apperrors.ErrLockNotAcquired, key, ctx.Err())
		case <-ticker.C:
		}
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			releaseCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			err := releaseScript.Run(releaseCtx, r.client, []string{fullKey}, token).Err()
			if err != nil && !errors.Is(err, goredis.Nil) {
				logger.New().WithField("key", fullKey).WithError(err).Warn("failed to release redis lock, it will expire")
			}
		})
	}, nil
}
