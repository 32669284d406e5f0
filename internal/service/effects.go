package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"guard-deployment-backend/internal/lock"
	"guard-deployment-backend/internal/logger"

	goredis "github.com/redis/go-redis/v9"
)

// DefaultEffectsChannel is the Redis channel effects are published on
const DefaultEffectsChannel = "guard-deployment:effects"

// EffectPublisher delivers transition effects that are not persistence,
// such as audit entries and notifications
type EffectPublisher interface {
	Publish(ctx context.Context, effects Effects) error
}

// LogEffectPublisher writes effects to the structured log
type LogEffectPublisher struct{}

// Publish implements EffectPublisher
func (LogEffectPublisher) Publish(ctx context.Context, effects Effects) error {
	log := logger.WithContext(ctx)
	for _, e := range effects {
		if e.Kind == EffectPersistAssignment || e.Kind == EffectPersistApproval {
			continue
		}
		log.WithFields(map[string]interface{}{
			"effect":     e.Kind,
			"subject":    e.Subject,
			"attributes": e.Attributes,
		}).Info("effect")
	}
	return nil
}

// RedisEffectPublisher publishes notification and audit effects on a Redis
// channel, one JSON message per effect, for other instances and consumers
type RedisEffectPublisher struct {
	client  goredis.UniversalClient
	channel string
}

// NewRedisEffectPublisher creates a publisher on channel, or on
// DefaultEffectsChannel when channel is empty
func NewRedisEffectPublisher(client goredis.UniversalClient, channel string) *RedisEffectPublisher {
	if channel == "" {
		channel = DefaultEffectsChannel
	}
	return &RedisEffectPublisher{client: client, channel: channel}
}

// Publish implements EffectPublisher
func (r *RedisEffectPublisher) Publish(ctx context.Context, effects Effects) error {
	for _, e := range effects {
		if e.Kind == EffectPersistAssignment || e.Kind == EffectPersistApproval {
			continue
		}
		payload, err := json.Marshal(e)
		if err != nil {
			return fmt.Errorf("failed to encode effect %s: %w", e.Kind, err)
		}
		if err := r.client.Publish(ctx, r.channel, payload).Err(); err != nil {
			return fmt.Errorf("failed to publish effect %s: %w", e.Kind, err)
		}
	}
	return nil
}

// EffectPublishers fans effects out to every publisher and joins their errors
type EffectPublishers []EffectPublisher

// Publish implements EffectPublisher
func (ps EffectPublishers) Publish(ctx context.Context, effects Effects) error {
	var errs []error
	for _, p := range ps {
		if err := p.Publish(ctx, effects); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// publish hands effects to the publisher. Failures are only logged.
func publish(ctx context.Context, p EffectPublisher, effects Effects) {
	if p == nil || len(effects) == 0 {
		return
	}
	if err := p.Publish(ctx, effects); err != nil {
		logger.WithContext(ctx).WithError(err).Warn("failed to publish effects")
	}
}

// withLock runs fn while holding the record lock for key
func withLock(ctx context.Context, locker lock.Locker, key string, fn func() error) error {
	release, err := locker.Acquire(ctx, key)
	if err != nil {
		return err
	}
	defer release()
	return fn()
}
