package queue

import (
	"context"
	"errors"
	"time"

	"go-gin-calendar/internal/model"
	"go-gin-calendar/pkg/logger"

	"go.uber.org/zap"
)

const (
	// 記憶體版最多重試次數，超過即丟棄
	DefaultMaxAttempts = 5
	// 第 n 次重試前等待 n 倍的 DefaultRetryDelay
	DefaultRetryDelay = 10 * time.Second
)

// ErrQueueFull 佇列已滿，呼叫端不等待，檔案留給定期掃描
var ErrQueueFull = errors.New("cleanup queue is full")

type Delivery struct {
	Data *model.OrphanedUpload
	Ack  func()
	Nack func(requeue bool)
}

// CleanupQueue 傳遞刪除失敗、需要重試的上傳檔案
type CleanupQueue interface {
	PublishOrphan(ctx context.Context, orphan *model.OrphanedUpload) error
	SubscribeOrphans(ctx context.Context) (<-chan Delivery, error)
}

type memoryJob struct {
	orphan   *model.OrphanedUpload
	attempts int
}

type MemoryCleanupQueueImpl struct {
	ch          chan memoryJob
	maxAttempts int
	retryDelay  time.Duration
}

// NewMemoryCleanupQueue 未啟用 Redis 時使用，程序重啟後佇列內容會遺失（由定期掃描補上）
func NewMemoryCleanupQueue(bufferSize int, retryDelay time.Duration) CleanupQueue {
	return &MemoryCleanupQueueImpl{
		ch:          make(chan memoryJob, bufferSize),
		maxAttempts: DefaultMaxAttempts,
		retryDelay:  retryDelay,
	}
}

// PublishOrphan 不阻塞：關閉中沒有消費者時也不能卡住請求
func (q *MemoryCleanupQueueImpl) PublishOrphan(ctx context.Context, orphan *model.OrphanedUpload) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	select {
	case q.ch <- memoryJob{orphan: orphan}:
		return nil
	default:
		return ErrQueueFull
	}
}

func (q *MemoryCleanupQueueImpl) SubscribeOrphans(ctx context.Context) (<-chan Delivery, error) {
	out := make(chan Delivery)

	go func() {
		defer close(out)
		for {
			select {
			case <-ctx.Done():
				return
			case job := <-q.ch:
				d := Delivery{
					Data: job.orphan,
					Ack:  func() {},
					Nack: func(requeue bool) { q.requeue(job, requeue) },
				}
				select {
				case out <- d:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return out, nil
}

func (q *MemoryCleanupQueueImpl) requeue(job memoryJob, requeue bool) {
	if !requeue {
		return
	}
	job.attempts++
	if job.attempts >= q.maxAttempts {
		logger.WithComponent("mq").Warn("discard orphan after max attempts",
			zap.String("ref", job.orphan.Ref), zap.Int("attempts", job.attempts))
		return
	}
	delay := q.retryDelay * time.Duration(job.attempts)
	time.AfterFunc(delay, func() {
		// 佇列滿時不阻塞，交給定期掃描處理
		select {
		case q.ch <- job:
		default:
			logger.WithComponent("mq").Warn("cleanup queue full, dropping orphan", zap.String("ref", job.orphan.Ref))
		}
	})
}
