package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"go-gin-calendar/internal/model"
	apperrors "go-gin-calendar/pkg/app_errors"

	"github.com/google/uuid"
)

// MemoryEventRepositoryImpl 本機開發與測試用，重啟後資料消失
type MemoryEventRepositoryImpl struct {
	mu     sync.RWMutex
	events map[string]*model.Event
}

func NewMemoryEventRepository() EventRepository {
	return &MemoryEventRepositoryImpl{
		events: make(map[string]*model.Event),
	}
}

func (r *MemoryEventRepositoryImpl) Create(ctx context.Context, event *model.Event) (*model.Event, error) {
	if err := validateForCreate(event); err != nil {
		return nil, err
	}

	stored := *event
	stored.ID = uuid.New().String()
	stored.CreatedAt = time.Now().UTC()

	r.mu.Lock()
	r.events[stored.ID] = &stored
	r.mu.Unlock()

	out := stored
	return &out, nil
}

func (r *MemoryEventRepositoryImpl) List(ctx context.Context) ([]*model.Event, error) {
	r.mu.RLock()
	events := make([]*model.Event, 0, len(r.events))
	for _, e := range r.events {
		cp := *e
		events = append(events, &cp)
	}
	r.mu.RUnlock()

	sort.Slice(events, func(i, j int) bool {
		return events[i].CreatedAt.After(events[j].CreatedAt)
	})
	return events, nil
}

func (r *MemoryEventRepositoryImpl) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.events[id]; !ok {
		return apperrors.ErrEventNotFound
	}
	delete(r.events, id)
	return nil
}
