package postgres

import (
	"context"
	"database/sql"

	"aurapoll/internal/domain"
)

type voteRepository struct {
	DB *sql.DB
}

func NewVoteRepository(db *sql.DB) domain.VoteRepository {
	return &voteRepository{
		DB: db,
	}
}

// AppendBatch inserts all votes of one submission in a single transaction,
// so a batch is either fully recorded or not at all. The bigserial id
// assigned by Postgres defines ledger order.
func (r *voteRepository) AppendBatch(ctx context.Context, votes []*domain.Vote) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	query := `
		INSERT INTO votes (event_id, slot_id, participant_name, available, recorded_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	for _, v := range votes {
		if err := tx.QueryRowContext(ctx, query,
			v.EventID, v.SlotID, v.ParticipantName, v.Available, v.RecordedAt,
		).Scan(&v.ID); err != nil {
			tx.Rollback()
			return err
		}
	}
	return tx.Commit()
}

func (r *voteRepository) ListByEventID(ctx context.Context, eventID string) ([]*domain.Vote, error) {
	query := `
		SELECT id, event_id, slot_id, participant_name, available, recorded_at
		FROM votes
		WHERE event_id = $1
		ORDER BY id ASC
	`
	rows, err := r.DB.QueryContext(ctx, query, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	votes := make([]*domain.Vote, 0)
	for rows.Next() {
		v := &domain.Vote{}
		if err := rows.Scan(&v.ID, &v.EventID, &v.SlotID, &v.ParticipantName, &v.Available, &v.RecordedAt); err != nil {
			return nil, err
		}
		votes = append(votes, v)
	}
	return votes, rows.Err()
}

func (r *voteRepository) HasVotesForSlot(ctx context.Context, slotID string) (bool, error) {
	var exists bool
	err := r.DB.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM votes WHERE slot_id = $1)`, slotID,
	).Scan(&exists)
	return exists, err
}

func (r *voteRepository) HasVotesByName(ctx context.Context, eventID, participantName string) (bool, error) {
	var exists bool
	err := r.DB.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM votes WHERE event_id = $1 AND participant_name = $2)`,
		eventID, participantName,
	).Scan(&exists)
	return exists, err
}
