package repository

import (
	"context"
	"time"

	"go-gin-calendar/internal/database"
	"go-gin-calendar/internal/model"
	apperrors "go-gin-calendar/pkg/app_errors"

	"github.com/google/uuid"
)

type PostgresEventRepositoryImpl struct {
	pool database.PgxPool
}

func NewPostgresEventRepository(pool database.PgxPool) EventRepository {
	return &PostgresEventRepositoryImpl{
		pool: pool,
	}
}

func (r *PostgresEventRepositoryImpl) Create(ctx context.Context, event *model.Event) (*model.Event, error) {
	if err := validateForCreate(event); err != nil {
		return nil, err
	}

	query := `
		INSERT INTO events (id, title, date, image, image_analysis)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at
	`
	id := uuid.New().String()
	var createdAt time.Time
	err := r.pool.QueryRow(ctx, query,
		id, event.Title, event.Date, event.Image, event.ImageAnalysis,
	).Scan(&createdAt)
	if err != nil {
		return nil, storageError("insert event", err)
	}

	return &model.Event{
		ID:            id,
		Title:         event.Title,
		Date:          event.Date,
		Image:         event.Image,
		ImageAnalysis: event.ImageAnalysis,
		CreatedAt:     createdAt,
	}, nil
}

func (r *PostgresEventRepositoryImpl) List(ctx context.Context) ([]*model.Event, error) {
	query := `
		SELECT id::text, title, date, image, image_analysis, created_at
		FROM events
		ORDER BY created_at DESC
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, storageError("query events", err)
	}
	defer rows.Close()

	events := make([]*model.Event, 0)
	for rows.Next() {
		var event model.Event
		// image、image_analysis 為 NULL 時保持 nil
		err := rows.Scan(
			&event.ID,
			&event.Title,
			&event.Date,
			&event.Image,
			&event.ImageAnalysis,
			&event.CreatedAt,
		)
		if err != nil {
			return nil, storageError("scan event", err)
		}
		events = append(events, &event)
	}
	if err := rows.Err(); err != nil {
		return nil, storageError("iterate events", err)
	}
	return events, nil
}

func (r *PostgresEventRepositoryImpl) Delete(ctx context.Context, id string) error {
	eventID, err := uuid.Parse(id)
	if err != nil {
		return apperrors.ErrEventNotFound
	}

	tag, err := r.pool.Exec(ctx, `DELETE FROM events WHERE id = $1`, eventID.String())
	if err != nil {
		return storageError("delete event", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrEventNotFound
	}
	return nil
}
