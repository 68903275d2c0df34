package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"confscheduler/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/require"
)

func TestRoomRepository_Create(t *testing.T) {
	ctx := context.Background()
	createdAt := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	updatedAt := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		room    *domain.Room
		mock    func(mock sqlmock.Sqlmock)
		wantID  string
		wantErr error
	}{
		{
			name: "success",
			room: &domain.Room{Name: "Main Hall", Capacity: 120, CreatedAt: createdAt, UpdatedAt: updatedAt},
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`INSERT INTO rooms`).
					WithArgs("Main Hall", 120, createdAt, updatedAt).
					WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("room-uuid-1"))
			},
			wantID: "room-uuid-1",
		},
		{
			name: "duplicate name",
			room: &domain.Room{Name: "Main Hall", Capacity: 120, CreatedAt: createdAt, UpdatedAt: updatedAt},
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`INSERT INTO rooms`).
					WillReturnError(&pq.Error{Code: "23505"})
			},
			wantErr: domain.ErrDuplicateName,
		},
		{
			name: "db error",
			room: &domain.Room{Name: "Side Room", Capacity: 40, CreatedAt: createdAt, UpdatedAt: updatedAt},
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`INSERT INTO rooms`).
					WillReturnError(sql.ErrConnDone)
			},
			wantErr: sql.ErrConnDone,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.mock(mock)
			repo := NewRoomRepository(db)
			err = repo.Create(ctx, tt.room)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.wantID, tt.room.ID)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRoomRepository_GetByID(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	cols := []string{"id", "name", "capacity", "created_at", "updated_at"}
	mock.ExpectQuery(`SELECT id, name, capacity, created_at, updated_at\s+FROM rooms`).
		WithArgs("room-1").
		WillReturnRows(sqlmock.NewRows(cols).AddRow("room-1", "Main Hall", 120, now, now))

	repo := NewRoomRepository(db)
	room, err := repo.GetByID(ctx, "room-1")
	require.NoError(t, err)
	require.Equal(t, "Main Hall", room.Name)
	require.Equal(t, 120, room.Capacity)

	mock.ExpectQuery(`SELECT id, name, capacity, created_at, updated_at\s+FROM rooms`).
		WithArgs("room-404").
		WillReturnError(sql.ErrNoRows)

	_, err = repo.GetByID(ctx, "room-404")
	require.ErrorIs(t, err, domain.ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRoomRepository_ListAll(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	cols := []string{"id", "name", "capacity", "created_at", "updated_at"}
	mock.ExpectQuery(`SELECT id, name, capacity, created_at, updated_at\s+FROM rooms\s+ORDER BY id`).
		WillReturnRows(sqlmock.NewRows(cols).
			AddRow("room-1", "Main Hall", 120, now, now).
			AddRow("room-2", "Side Room", 40, now, now))

	repo := NewRoomRepository(db)
	rooms, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, rooms, 2)
	require.Equal(t, "room-1", rooms[0].ID)
	require.Equal(t, "room-2", rooms[1].ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRoomRepository_Delete(t *testing.T) {
	ctx := context.Background()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(`DELETE FROM rooms WHERE id`).
		WithArgs("room-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`DELETE FROM rooms WHERE id`).
		WithArgs("room-404").
		WillReturnResult(sqlmock.NewResult(0, 0))

	repo := NewRoomRepository(db)
	require.NoError(t, repo.Delete(ctx, "room-1"))
	require.ErrorIs(t, repo.Delete(ctx, "room-404"), domain.ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}
