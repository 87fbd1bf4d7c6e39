package postgres

import (
	"context"
	"database/sql"
	"errors"

	"aurapoll/internal/domain"
)

type eventRepository struct {
	DB *sql.DB
}

func NewEventRepository(db *sql.DB) domain.EventRepository {
	return &eventRepository{
		DB: db,
	}
}

func (r *eventRepository) Create(ctx context.Context, e *domain.Event) error {
	query := `
		INSERT INTO events (id, title, description, location, duration_minutes, backdrop, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err := r.DB.ExecContext(ctx, query,
		e.ID, e.Title, e.Description, e.Location, e.DurationMinutes, e.Backdrop, string(e.Status), e.CreatedAt, e.UpdatedAt,
	)
	return err
}

func (r *eventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	query := `
		SELECT id, title, description, location, duration_minutes, backdrop, status, created_at, updated_at
		FROM events
		WHERE id = $1
	`
	e := &domain.Event{}
	var status string
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&e.ID, &e.Title, &e.Description, &e.Location, &e.DurationMinutes, &e.Backdrop, &status, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	e.Status = domain.EventStatus(status)
	return e, nil
}

func (r *eventRepository) UpdateStatus(ctx context.Context, id string, status domain.EventStatus) error {
	query := `UPDATE events SET status = $1, updated_at = NOW() WHERE id = $2`
	result, err := r.DB.ExecContext(ctx, query, string(status), id)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
