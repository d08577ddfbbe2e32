package repository

import (
	"context"
	"fmt"
	"strings"

	"go-gin-calendar/internal/model"
	apperrors "go-gin-calendar/pkg/app_errors"
)

// EventRepository 事件儲存：只有列出、建立、刪除三種操作
type EventRepository interface {
	Create(ctx context.Context, event *model.Event) (*model.Event, error)
	List(ctx context.Context) ([]*model.Event, error)
	Delete(ctx context.Context, id string) error
}

func validateForCreate(event *model.Event) error {
	if event == nil {
		return fmt.Errorf("%w: event is nil", apperrors.ErrInvalidInput)
	}
	if strings.TrimSpace(event.Title) == "" {
		return fmt.Errorf("%w: title is required", apperrors.ErrInvalidInput)
	}
	if strings.TrimSpace(event.Date) == "" {
		return fmt.Errorf("%w: date is required", apperrors.ErrInvalidInput)
	}
	return nil
}

// storageError 將驅動程式錯誤包成 ErrStorageUnavailable，保留原始錯誤供 log 使用
func storageError(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, apperrors.ErrStorageUnavailable, err)
}
