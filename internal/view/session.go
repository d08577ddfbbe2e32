package view

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go-gin-calendar/internal/model"
	apperrors "go-gin-calendar/pkg/app_errors"

	"github.com/gabriel-vasile/mimetype"
)

// EventsAPI 事件服務的遠端介面，由 client.Client 實作
type EventsAPI interface {
	List(ctx context.Context) ([]*model.Event, error)
	Create(ctx context.Context, input model.CreateEventInput) (*model.Event, error)
	Delete(ctx context.Context, id string) error
}

// EventsOn 回傳日期等於 day 所在日曆日的事件，保留原順序
func EventsOn(events []*model.Event, day time.Time) []*model.Event {
	key := model.DateKey(day)
	out := make([]*model.Event, 0)
	for _, e := range events {
		if e.Date == key {
			out = append(out, e)
		}
	}
	return out
}

// Draft 新增事件的輸入；title 與圖片至少要有一個，日期固定為目前選取的那天
type Draft struct {
	Title     string
	ImagePath string
}

func (d Draft) Validate() error {
	if strings.TrimSpace(d.Title) == "" && d.ImagePath == "" {
		return fmt.Errorf("%w: enter a title or choose an image", apperrors.ErrInvalidInput)
	}
	return nil
}

// Input 讀取圖片檔並組成送往伺服器的請求
func (d Draft) Input(day time.Time) (model.CreateEventInput, error) {
	if err := d.Validate(); err != nil {
		return model.CreateEventInput{}, err
	}
	input := model.CreateEventInput{
		Title: strings.TrimSpace(d.Title),
		Date:  model.DateKey(day),
	}
	if d.ImagePath == "" {
		return input, nil
	}

	data, err := os.ReadFile(d.ImagePath)
	if err != nil {
		return model.CreateEventInput{}, fmt.Errorf("%w: read image: %w", apperrors.ErrInvalidInput, err)
	}
	input.Image = &model.ImageUpload{
		Filename:  filepath.Base(d.ImagePath),
		MediaType: mimetype.Detect(data).String(),
		Data:      data,
	}
	return input, nil
}

// Session 用戶端持有的事件集合與選取日期；畫面上的清單一律由兩者推導
type Session struct {
	api      EventsAPI
	events   []*model.Event
	selected time.Time
	loaded   bool
}

func NewSession(api EventsAPI, today time.Time) *Session {
	return &Session{api: api, selected: today}
}

// Load 只在第一次呼叫時向伺服器取得全部事件
func (s *Session) Load(ctx context.Context) error {
	if s.loaded {
		return nil
	}
	events, err := s.api.List(ctx)
	if err != nil {
		return err
	}
	s.events = events
	s.loaded = true
	return nil
}

func (s *Session) Select(day time.Time) {
	s.selected = day
}

func (s *Session) Selected() time.Time {
	return s.selected
}

func (s *Session) Events() []*model.Event {
	out := make([]*model.Event, len(s.events))
	copy(out, s.events)
	return out
}

func (s *Session) Visible() []*model.Event {
	return EventsOn(s.events, s.selected)
}

// Create 伺服器建立成功後才加入本地集合
func (s *Session) Create(ctx context.Context, d Draft) (*model.Event, error) {
	input, err := d.Input(s.selected)
	if err != nil {
		return nil, err
	}
	event, err := s.api.Create(ctx, input)
	if err != nil {
		return nil, err
	}
	s.events = append(s.events, event)
	return event, nil
}

// Delete 伺服器確認刪除後才從本地集合移除
func (s *Session) Delete(ctx context.Context, id string) error {
	if err := s.api.Delete(ctx, id); err != nil {
		return err
	}
	kept := s.events[:0]
	for _, e := range s.events {
		if e.ID != id {
			kept = append(kept, e)
		}
	}
	s.events = kept
	return nil
}
