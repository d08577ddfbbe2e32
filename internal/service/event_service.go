package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go-gin-calendar/internal/classifier"
	"go-gin-calendar/internal/metrics"
	"go-gin-calendar/internal/model"
	"go-gin-calendar/internal/queue"
	"go-gin-calendar/internal/repository"
	"go-gin-calendar/internal/storage"
	apperrors "go-gin-calendar/pkg/app_errors"
	"go-gin-calendar/pkg/logger"

	"go.uber.org/zap"
)

type EventService interface {
	List(ctx context.Context) ([]*model.Event, error)
	// Create 有圖片時以辨識結果為主，表單的 title/date 只作為缺值時的備援
	Create(ctx context.Context, input model.CreateEventInput) (*model.Event, error)
	Delete(ctx context.Context, id string) error
}

type EventServiceImpl struct {
	repo       repository.EventRepository
	images     storage.ImageStore
	classifier classifier.ImageClassifier
	cleanup    queue.CleanupQueue
	metrics    *metrics.Metrics
	now        func() time.Time
}

func NewEventService(
	repo repository.EventRepository,
	images storage.ImageStore,
	imageClassifier classifier.ImageClassifier,
	cleanup queue.CleanupQueue,
	m *metrics.Metrics,
) EventService {
	return &EventServiceImpl{
		repo:       repo,
		images:     images,
		classifier: imageClassifier,
		cleanup:    cleanup,
		metrics:    m,
		now:        time.Now,
	}
}

func (s *EventServiceImpl) List(ctx context.Context) ([]*model.Event, error) {
	return s.repo.List(ctx)
}

func (s *EventServiceImpl) Create(ctx context.Context, input model.CreateEventInput) (*model.Event, error) {
	if input.Image != nil {
		return s.createFromImage(ctx, input)
	}

	// 標題原樣保存，只檢查是否空白
	if strings.TrimSpace(input.Title) == "" || strings.TrimSpace(input.Date) == "" {
		return nil, fmt.Errorf("%w: title and date are required when no image is provided", apperrors.ErrInvalidInput)
	}
	date, err := model.NormalizeDate(input.Date)
	if err != nil {
		return nil, err
	}

	event, err := s.repo.Create(ctx, &model.Event{Title: input.Title, Date: date})
	if err != nil {
		return nil, err
	}
	s.metrics.EventCreated(metrics.SourceForm)
	return event, nil
}

func (s *EventServiceImpl) createFromImage(ctx context.Context, input model.CreateEventInput) (*model.Event, error) {
	img := input.Image
	if len(img.Data) == 0 {
		return nil, fmt.Errorf("%w: image is empty", apperrors.ErrInvalidInput)
	}
	if !classifier.IsSupportedMediaType(img.MediaType) {
		return nil, fmt.Errorf("%w: unsupported image type %q", apperrors.ErrInvalidInput, img.MediaType)
	}

	ref, err := s.images.Save(ctx, img.Filename, img.Data)
	if err != nil {
		return nil, fmt.Errorf("save upload: %w", err)
	}

	start := s.now()
	raw, err := s.classifier.Analyze(ctx, img.Data, img.MediaType)
	s.metrics.ObserveClassifier(s.now().Sub(start))
	if err != nil {
		s.metrics.ExtractionFailed("api")
		s.removeUpload(ctx, ref, "classifier call failed")
		if !errors.Is(err, apperrors.ErrExtractionFailed) {
			err = fmt.Errorf("%w: %w", apperrors.ErrExtractionFailed, err)
		}
		return nil, err
	}

	extraction, err := classifier.ParseExtraction(raw)
	if err != nil {
		s.metrics.ExtractionFailed("parse")
		s.removeUpload(ctx, ref, "unreadable classifier response")
		return nil, err
	}

	title := extraction.Title
	if strings.TrimSpace(title) == "" {
		title = input.Title
	}
	date, dateFromImage := extraction.Date, true
	if strings.TrimSpace(date) == "" {
		date, dateFromImage = input.Date, false
	}
	if strings.TrimSpace(title) == "" || strings.TrimSpace(date) == "" {
		s.removeUpload(ctx, ref, "missing title or date")
		return nil, fmt.Errorf("%w: could not determine title and date from image", apperrors.ErrInvalidInput)
	}

	normalized, err := model.NormalizeDate(date)
	if err != nil {
		s.removeUpload(ctx, ref, "invalid date")
		if dateFromImage {
			s.metrics.ExtractionFailed("date")
			// 不保留 ErrInvalidDate：這是辨識結果的問題，不是使用者輸入錯誤
			return nil, fmt.Errorf("%w: unreadable date %q", apperrors.ErrExtractionFailed, date)
		}
		return nil, err
	}

	event, err := s.repo.Create(ctx, &model.Event{
		Title:         title,
		Date:          normalized,
		Image:         &ref,
		ImageAnalysis: model.StringPtr(raw),
	})
	if err != nil {
		s.removeUpload(ctx, ref, "event store failed")
		return nil, err
	}
	s.metrics.EventCreated(metrics.SourceImage)
	return event, nil
}

func (s *EventServiceImpl) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.metrics.EventDeleted()
	return nil
}

// removeUpload 建立失敗時刪除已存的上傳檔；刪不掉就丟進清理佇列讓 worker 重試
// 使用 WithoutCancel：使用者中斷請求也要清掉檔案
func (s *EventServiceImpl) removeUpload(ctx context.Context, ref, reason string) {
	ctx = context.WithoutCancel(ctx)
	log := logger.WithComponent("service").With(zap.String("ref", ref), zap.String("reason", reason))

	err := s.images.Remove(ctx, ref)
	if err == nil {
		return
	}
	log.Warn("remove upload failed, scheduling retry", zap.Error(err))

	if s.cleanup == nil {
		return
	}
	orphan := &model.OrphanedUpload{Ref: ref, Reason: reason, FailedAt: s.now().UTC()}
	if err := s.cleanup.PublishOrphan(ctx, orphan); err != nil {
		// 最後由定期掃描刪除
		log.Error("publish orphaned upload failed", zap.Error(err))
	}
}
