package postgres

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"

	"aurapoll/internal/domain"
)

func TestTimeSlotRepository_CreateBatch(t *testing.T) {
	ctx := context.Background()

	t.Run("all slots in one transaction", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectBegin()
		mock.ExpectExec(`INSERT INTO time_slots`).
			WithArgs("s1", "ev-1", "2026-09-01", "09:00", "10:00", 0).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(`INSERT INTO time_slots`).
			WithArgs("s2", "ev-1", "2026-09-02", "14:00", "15:00", 1).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		repo := NewTimeSlotRepository(db)
		err = repo.CreateBatch(ctx, []*domain.TimeSlot{
			domain.NewTimeSlot("s1", "ev-1", "2026-09-01", "09:00", "10:00", 0),
			domain.NewTimeSlot("s2", "ev-1", "2026-09-02", "14:00", "15:00", 1),
		})

		require.NoError(t, err)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rolls back on failure", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectBegin()
		mock.ExpectExec(`INSERT INTO time_slots`).
			WillReturnError(sql.ErrConnDone)
		mock.ExpectRollback()

		repo := NewTimeSlotRepository(db)
		err = repo.CreateBatch(ctx, []*domain.TimeSlot{
			domain.NewTimeSlot("s1", "ev-1", "2026-09-01", "09:00", "10:00", 0),
		})

		require.Error(t, err)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestTimeSlotRepository_ListByEventID(t *testing.T) {
	ctx := context.Background()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"id", "event_id", "date", "start_time", "end_time", "position"}).
		AddRow("s1", "ev-1", "2026-09-01", "09:00", "10:00", 0).
		AddRow("s2", "ev-1", "2026-09-02", "14:00", "15:00", 1)
	mock.ExpectQuery(`SELECT id, event_id, date, start_time, end_time, position`).
		WithArgs("ev-1").
		WillReturnRows(rows)

	repo := NewTimeSlotRepository(db)
	slots, err := repo.ListByEventID(ctx, "ev-1")

	require.NoError(t, err)
	require.Len(t, slots, 2)
	require.Equal(t, "s1", slots[0].ID)
	require.Equal(t, 1, slots[1].Position)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestTimeSlotRepository_Delete(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		rows    int64
		wantErr error
	}{
		{name: "success", rows: 1},
		{name: "not found", rows: 0, wantErr: domain.ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			mock.ExpectExec(`DELETE FROM time_slots`).
				WithArgs("s1").
				WillReturnResult(sqlmock.NewResult(0, tt.rows))

			repo := NewTimeSlotRepository(db)
			err = repo.Delete(ctx, "s1")
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
