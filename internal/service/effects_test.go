package service_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"guard-deployment-backend/internal/service"
	"guard-deployment-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingPublisher struct{ err error }

func (f failingPublisher) Publish(context.Context, service.Effects) error { return f.err }

func TestEffectPublishersFanOut(t *testing.T) {
	first, second := &recordingPublisher{}, &recordingPublisher{}
	boom := errors.New("broker down")
	fan := service.EffectPublishers{first, failingPublisher{err: boom}, second}

	err := fan.Publish(context.Background(), service.Effects{
		{Kind: service.EffectNotifySupervisor, Subject: uuid.New()},
	})

	assert.ErrorIs(t, err, boom)
	assert.True(t, first.Has(service.EffectNotifySupervisor))
	assert.True(t, second.Has(service.EffectNotifySupervisor), "a failing publisher must not starve later ones")
}

func TestLogEffectPublisher(t *testing.T) {
	err := service.LogEffectPublisher{}.Publish(context.Background(), service.Effects{
		{Kind: service.EffectPersistAssignment, Subject: uuid.New()},
		{Kind: service.EffectAuditTrail, Subject: uuid.New(), Attributes: map[string]interface{}{"action": "check_in"}},
	})
	assert.NoError(t, err)
}

func TestRedisEffectPublisher(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping redis integration test in short mode")
	}
	client := testutils.SetupRedis(t)
	channel := "effects-test-" + uuid.NewString()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	sub := client.Subscribe(ctx, channel)
	defer sub.Close()
	_, err := sub.Receive(ctx)
	require.NoError(t, err)

	subject := uuid.New()
	publisher := service.NewRedisEffectPublisher(client, channel)
	err = publisher.Publish(ctx, service.Effects{
		{Kind: service.EffectPersistApproval, Subject: subject},
		{Kind: service.EffectNotifyReviewers, Subject: subject, Attributes: map[string]interface{}{"priority": "URGENT"}},
	})
	require.NoError(t, err)

	msg, err := sub.ReceiveMessage(ctx)
	require.NoError(t, err)

	var got service.Effect
	require.NoError(t, json.Unmarshal([]byte(msg.Payload), &got))
	assert.Equal(t, service.EffectNotifyReviewers, got.Kind)
	assert.Equal(t, subject, got.Subject)
	assert.Equal(t, "URGENT", got.Attributes["priority"])
}
