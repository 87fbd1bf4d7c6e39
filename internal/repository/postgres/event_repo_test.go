package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"

	"aurapoll/internal/domain"
)

func TestEventRepository_Create(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		event   *domain.Event
		mock    func(mock sqlmock.Sqlmock)
		wantErr bool
	}{
		{
			name:  "success",
			event: domain.NewEvent("ev-uuid-1", "Team Sync", "weekly", "Room 4", 30, "backdrop-business", now, now),
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`INSERT INTO events`).
					WithArgs("ev-uuid-1", "Team Sync", "weekly", "Room 4", 30, "backdrop-business", "draft", now, now).
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
			wantErr: false,
		},
		{
			name:  "db error",
			event: domain.NewEvent("ev-uuid-2", "Team Sync", "", "", 30, "", now, now),
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`INSERT INTO events`).
					WillReturnError(sql.ErrConnDone)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.mock(mock)
			repo := NewEventRepository(db)
			err = repo.Create(ctx, tt.event)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestEventRepository_GetByID(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		id         string
		mock       func(mock sqlmock.Sqlmock)
		wantStatus domain.EventStatus
		wantErr    error
	}{
		{
			name: "success",
			id:   "ev-uuid-1",
			mock: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows([]string{"id", "title", "description", "location", "duration_minutes", "backdrop", "status", "created_at", "updated_at"}).
					AddRow("ev-uuid-1", "Team Sync", "", "", 30, "backdrop-business", "published", now, now)
				mock.ExpectQuery(`SELECT id, title, description, location, duration_minutes, backdrop, status, created_at, updated_at`).
					WithArgs("ev-uuid-1").
					WillReturnRows(rows)
			},
			wantStatus: domain.StatusPublished,
		},
		{
			name: "not found",
			id:   "missing",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT id, title, description, location, duration_minutes, backdrop, status, created_at, updated_at`).
					WithArgs("missing").
					WillReturnError(sql.ErrNoRows)
			},
			wantErr: domain.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.mock(mock)
			repo := NewEventRepository(db)
			event, err := repo.GetByID(ctx, tt.id)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.id, event.ID)
			require.Equal(t, tt.wantStatus, event.Status)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestEventRepository_UpdateStatus(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		mock    func(mock sqlmock.Sqlmock)
		wantErr error
	}{
		{
			name: "success",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`UPDATE events SET status`).
					WithArgs("published", "ev-uuid-1").
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
		},
		{
			name: "not found",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`UPDATE events SET status`).
					WithArgs("published", "ev-uuid-1").
					WillReturnResult(sqlmock.NewResult(0, 0))
			},
			wantErr: domain.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.mock(mock)
			repo := NewEventRepository(db)
			err = repo.UpdateStatus(ctx, "ev-uuid-1", domain.StatusPublished)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
