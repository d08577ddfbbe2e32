package worker

import (
	"context"
	"fmt"
	"go-gin-calendar/internal/metrics"
	"go-gin-calendar/internal/repository"
	"go-gin-calendar/internal/storage"
	"go-gin-calendar/pkg/logger"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// UploadSweeper 定期刪除沒有任何事件引用、且超過寬限期的上傳檔
type UploadSweeper struct {
	events  repository.EventRepository
	images  storage.ImageStore
	metrics *metrics.Metrics
	grace   time.Duration
	now     func() time.Time
}

func NewUploadSweeper(events repository.EventRepository, images storage.ImageStore, grace time.Duration, m *metrics.Metrics) *UploadSweeper {
	return &UploadSweeper{
		events:  events,
		images:  images,
		metrics: m,
		grace:   grace,
		now:     time.Now,
	}
}

// Start 依 cron 排程執行 Sweep；ctx 結束時停止排程並等待執行中的掃描完成
func (s *UploadSweeper) Start(ctx context.Context, schedule string) error {
	c := cron.New()
	_, err := c.AddFunc(schedule, func() {
		if _, err := s.Sweep(ctx); err != nil {
			logger.WithComponent("worker").Error("upload sweep failed", zap.Error(err))
		}
	})
	if err != nil {
		return fmt.Errorf("invalid sweep schedule %q: %w", schedule, err)
	}
	c.Start()

	go func() {
		<-ctx.Done()
		<-c.Stop().Done()
	}()
	return nil
}

// Sweep 回傳刪除的檔案數；讀不到事件清單時不刪除任何東西
func (s *UploadSweeper) Sweep(ctx context.Context) (int, error) {
	events, err := s.events.List(ctx)
	if err != nil {
		return 0, fmt.Errorf("list events: %w", err)
	}
	referenced := make(map[string]struct{}, len(events))
	for _, e := range events {
		if e.HasImage() {
			referenced[*e.Image] = struct{}{}
		}
	}

	files, err := s.images.List(ctx)
	if err != nil {
		return 0, fmt.Errorf("list uploads: %w", err)
	}

	// 寬限期保護仍在等待圖片辨識、尚未寫入事件的上傳
	cutoff := s.now().Add(-s.grace)
	removed := 0
	for _, f := range files {
		if _, ok := referenced[f.Ref]; ok || f.ModTime.After(cutoff) {
			continue
		}
		if err := s.images.Remove(ctx, f.Ref); err != nil {
			logger.WithComponent("worker").Warn("sweep remove failed", zap.String("ref", f.Ref), zap.Error(err))
			continue
		}
		removed++
		s.metrics.UploadRemoved("sweep")
	}

	if removed > 0 {
		logger.WithComponent("worker").Info("upload sweep finished", zap.Int("removed", removed), zap.Int("scanned", len(files)))
	}
	return removed, nil
}
