package postgres

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"

	"aurapoll/internal/domain"
)

func TestParticipantRepository_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("with email", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectExec(`INSERT INTO participants`).
			WithArgs("p1", "ev-1", "Alice", "alice@example.com", 0).
			WillReturnResult(sqlmock.NewResult(0, 1))

		repo := NewParticipantRepository(db)
		err = repo.Create(ctx, domain.NewParticipant("p1", "ev-1", "Alice", "alice@example.com", 0))

		require.NoError(t, err)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("empty email stored as NULL", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectExec(`INSERT INTO participants`).
			WithArgs("p1", "ev-1", "Bob", nil, 0).
			WillReturnResult(sqlmock.NewResult(0, 1))

		repo := NewParticipantRepository(db)
		err = repo.Create(ctx, domain.NewParticipant("p1", "ev-1", "Bob", "", 0))

		require.NoError(t, err)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestParticipantRepository_GetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("NULL email reads as empty string", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		rows := sqlmock.NewRows([]string{"id", "event_id", "name", "email", "position"}).
			AddRow("p1", "ev-1", "Bob", nil, 0)
		mock.ExpectQuery(`SELECT id, event_id, name, email, position`).
			WithArgs("p1").
			WillReturnRows(rows)

		repo := NewParticipantRepository(db)
		p, err := repo.GetByID(ctx, "p1")

		require.NoError(t, err)
		require.Equal(t, "Bob", p.Name)
		require.Empty(t, p.Email)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`SELECT id, event_id, name, email, position`).
			WithArgs("missing").
			WillReturnRows(sqlmock.NewRows([]string{"id", "event_id", "name", "email", "position"}))

		repo := NewParticipantRepository(db)
		_, err = repo.GetByID(ctx, "missing")

		require.ErrorIs(t, err, domain.ErrNotFound)
	})
}
