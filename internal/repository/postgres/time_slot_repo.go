package postgres

import (
	"context"
	"database/sql"
	"errors"

	"aurapoll/internal/domain"
)

type timeSlotRepository struct {
	DB *sql.DB
}

func NewTimeSlotRepository(db *sql.DB) domain.TimeSlotRepository {
	return &timeSlotRepository{
		DB: db,
	}
}

const insertTimeSlotQuery = `
	INSERT INTO time_slots (id, event_id, date, start_time, end_time, position)
	VALUES ($1, $2, $3, $4, $5, $6)
`

func (r *timeSlotRepository) Create(ctx context.Context, s *domain.TimeSlot) error {
	_, err := r.DB.ExecContext(ctx, insertTimeSlotQuery,
		s.ID, s.EventID, s.Date, s.StartTime, s.EndTime, s.Position,
	)
	return err
}

func (r *timeSlotRepository) CreateBatch(ctx context.Context, slots []*domain.TimeSlot) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	for _, s := range slots {
		if _, err := tx.ExecContext(ctx, insertTimeSlotQuery,
			s.ID, s.EventID, s.Date, s.StartTime, s.EndTime, s.Position,
		); err != nil {
			tx.Rollback()
			return err
		}
	}
	return tx.Commit()
}

func (r *timeSlotRepository) GetByID(ctx context.Context, id string) (*domain.TimeSlot, error) {
	query := `
		SELECT id, event_id, date, start_time, end_time, position
		FROM time_slots
		WHERE id = $1
	`
	s := &domain.TimeSlot{}
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&s.ID, &s.EventID, &s.Date, &s.StartTime, &s.EndTime, &s.Position,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return s, nil
}

func (r *timeSlotRepository) ListByEventID(ctx context.Context, eventID string) ([]*domain.TimeSlot, error) {
	query := `
		SELECT id, event_id, date, start_time, end_time, position
		FROM time_slots
		WHERE event_id = $1
		ORDER BY position ASC
	`
	rows, err := r.DB.QueryContext(ctx, query, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	slots := make([]*domain.TimeSlot, 0)
	for rows.Next() {
		s := &domain.TimeSlot{}
		if err := rows.Scan(&s.ID, &s.EventID, &s.Date, &s.StartTime, &s.EndTime, &s.Position); err != nil {
			return nil, err
		}
		slots = append(slots, s)
	}
	return slots, rows.Err()
}

func (r *timeSlotRepository) Delete(ctx context.Context, id string) error {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM time_slots WHERE id = $1`, id)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
