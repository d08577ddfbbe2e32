package worker

import (
	"context"
	"go-gin-calendar/internal/metrics"
	"go-gin-calendar/internal/queue"
	"go-gin-calendar/internal/storage"
	"go-gin-calendar/pkg/logger"

	"go.uber.org/zap"
)

type CleanupWorker interface {
	// Start 訂閱清理佇列，ctx 結束時停止
	Start(ctx context.Context) error
}

type CleanupWorkerImpl struct {
	images  storage.ImageStore
	queue   queue.CleanupQueue
	metrics *metrics.Metrics
	done    chan struct{}
}

func NewCleanupWorker(images storage.ImageStore, q queue.CleanupQueue, m *metrics.Metrics) *CleanupWorkerImpl {
	return &CleanupWorkerImpl{
		images:  images,
		queue:   q,
		metrics: m,
		done:    make(chan struct{}),
	}
}

func (w *CleanupWorkerImpl) Start(ctx context.Context) error {
	msgs, err := w.queue.SubscribeOrphans(ctx)
	if err != nil {
		close(w.done)
		return err
	}

	go func() {
		defer close(w.done)
		for msg := range msgs {
			w.handle(ctx, msg)
		}
	}()
	return nil
}

// Done 佇列關閉、最後一筆處理完後關閉
func (w *CleanupWorkerImpl) Done() <-chan struct{} {
	return w.done
}

func (w *CleanupWorkerImpl) handle(ctx context.Context, msg queue.Delivery) {
	log := logger.WithComponent("worker").With(zap.String("ref", msg.Data.Ref))

	if err := w.images.Remove(ctx, msg.Data.Ref); err != nil {
		log.Warn("remove orphaned upload failed, will retry", zap.Error(err))
		msg.Nack(true)
		return
	}
	log.Info("orphaned upload removed", zap.String("reason", msg.Data.Reason))
	w.metrics.UploadRemoved("retry")
	msg.Ack()
}
