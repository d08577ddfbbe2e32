package queue_test

import (
	"context"
	"testing"
	"time"

	"go-gin-calendar/internal/model"
	"go-gin-calendar/internal/queue"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisStreamCleanupQueue_PublishAndAck(t *testing.T) {
	rdb := getTestRdb(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	q, err := queue.NewRedisStreamCleanupQueue(ctx, rdb, "test", &queue.RedisStreamConfig{
		ReadGroupBlockTime: 100 * time.Millisecond,
	})
	require.NoError(t, err)

	ch, err := q.SubscribeOrphans(ctx)
	require.NoError(t, err)

	require.NoError(t, q.PublishOrphan(ctx, &model.OrphanedUpload{Ref: "/uploads/42.jpg", Reason: "store failed"}))

	d := receive(t, ch)
	assert.Equal(t, "/uploads/42.jpg", d.Data.Ref)
	assert.Equal(t, "store failed", d.Data.Reason)
	d.Ack()

	pending, err := rdb.XPending(ctx, queue.StreamKey, queue.ConsumerGroupName).Result()
	require.NoError(t, err)
	assert.Equal(t, int64(0), pending.Count)
}

func TestRedisStreamCleanupQueue_NackRequeueIsReclaimed(t *testing.T) {
	rdb := getTestRdb(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	q, err := queue.NewRedisStreamCleanupQueue(ctx, rdb, "test", &queue.RedisStreamConfig{
		ClaimMinIdleTime:   200 * time.Millisecond,
		ReadGroupBlockTime: 100 * time.Millisecond,
	})
	require.NoError(t, err)

	ch, err := q.SubscribeOrphans(ctx)
	require.NoError(t, err)
	require.NoError(t, q.PublishOrphan(ctx, &model.OrphanedUpload{Ref: "/uploads/retry.png"}))

	receive(t, ch).Nack(true)

	again := receive(t, ch)
	assert.Equal(t, "/uploads/retry.png", again.Data.Ref)
	again.Ack()
}

func TestRedisStreamCleanupQueue_ExistingGroupIsReused(t *testing.T) {
	rdb := getTestRdb(t)
	ctx := context.Background()

	_, err := queue.NewRedisStreamCleanupQueue(ctx, rdb, "a", nil)
	require.NoError(t, err)
	_, err = queue.NewRedisStreamCleanupQueue(ctx, rdb, "b", nil)
	assert.NoError(t, err)
}
