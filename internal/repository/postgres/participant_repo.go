package postgres

import (
	"context"
	"database/sql"
	"errors"

	"aurapoll/internal/domain"
)

type participantRepository struct {
	DB *sql.DB
}

func NewParticipantRepository(db *sql.DB) domain.ParticipantRepository {
	return &participantRepository{
		DB: db,
	}
}

const insertParticipantQuery = `
	INSERT INTO participants (id, event_id, name, email, position)
	VALUES ($1, $2, $3, $4, $5)
`

// emailArg maps an empty email to NULL.
func emailArg(email string) any {
	if email == "" {
		return nil
	}
	return email
}

func (r *participantRepository) Create(ctx context.Context, p *domain.Participant) error {
	_, err := r.DB.ExecContext(ctx, insertParticipantQuery,
		p.ID, p.EventID, p.Name, emailArg(p.Email), p.Position,
	)
	return err
}

func (r *participantRepository) CreateBatch(ctx context.Context, participants []*domain.Participant) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	for _, p := range participants {
		if _, err := tx.ExecContext(ctx, insertParticipantQuery,
			p.ID, p.EventID, p.Name, emailArg(p.Email), p.Position,
		); err != nil {
			tx.Rollback()
			return err
		}
	}
	return tx.Commit()
}

func (r *participantRepository) GetByID(ctx context.Context, id string) (*domain.Participant, error) {
	query := `
		SELECT id, event_id, name, email, position
		FROM participants
		WHERE id = $1
	`
	p := &domain.Participant{}
	var emailNull sql.NullString
	err := r.DB.QueryRowContext(ctx, query, id).Scan(&p.ID, &p.EventID, &p.Name, &emailNull, &p.Position)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	if emailNull.Valid {
		p.Email = emailNull.String
	}
	return p, nil
}

func (r *participantRepository) ListByEventID(ctx context.Context, eventID string) ([]*domain.Participant, error) {
	query := `
		SELECT id, event_id, name, email, position
		FROM participants
		WHERE event_id = $1
		ORDER BY position ASC
	`
	rows, err := r.DB.QueryContext(ctx, query, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	participants := make([]*domain.Participant, 0)
	for rows.Next() {
		p := &domain.Participant{}
		var emailNull sql.NullString
		if err := rows.Scan(&p.ID, &p.EventID, &p.Name, &emailNull, &p.Position); err != nil {
			return nil, err
		}
		if emailNull.Valid {
			p.Email = emailNull.String
		}
		participants = append(participants, p)
	}
	return participants, rows.Err()
}

func (r *participantRepository) Delete(ctx context.Context, id string) error {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM participants WHERE id = $1`, id)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
