package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"confscheduler/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
)

var presentationCols = []string{
	"id", "title", "description", "duration_minutes", "speaker_id",
	"room_id", "start_time", "end_time", "created_at", "updated_at",
}

func TestPresentationRepository_Create(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`INSERT INTO presentations`).
		WithArgs("Intro to Go", "A gentle introduction", 45, "spk-1", now, now).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("p-uuid-1"))

	repo := NewPresentationRepository(db)
	p := &domain.Presentation{
		Title:           "Intro to Go",
		Description:     "A gentle introduction",
		DurationMinutes: 45,
		SpeakerID:       "spk-1",
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	require.NoError(t, repo.Create(ctx, p))
	require.Equal(t, "p-uuid-1", p.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPresentationRepository_GetByID(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	start := time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC)

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewPresentationRepository(db)

	// Scheduled row: nullable columns populated.
	mock.ExpectQuery(`SELECT .+\s+FROM presentations`).
		WithArgs("p-1").
		WillReturnRows(sqlmock.NewRows(presentationCols).
			AddRow("p-1", "Intro to Go", "", 60, "spk-1", "room-1", start, start.Add(time.Hour), now, now))

	p, err := repo.GetByID(ctx, "p-1")
	require.NoError(t, err)
	require.True(t, p.Scheduled())
	require.Equal(t, "room-1", *p.RoomID)
	require.Equal(t, start, *p.StartTime)

	// Unscheduled row: nullable columns NULL.
	mock.ExpectQuery(`SELECT .+\s+FROM presentations`).
		WithArgs("p-2").
		WillReturnRows(sqlmock.NewRows(presentationCols).
			AddRow("p-2", "Advanced Go", "", 90, "spk-2", nil, nil, nil, now, now))

	p, err = repo.GetByID(ctx, "p-2")
	require.NoError(t, err)
	require.False(t, p.Scheduled())
	require.Nil(t, p.RoomID)

	mock.ExpectQuery(`SELECT .+\s+FROM presentations`).
		WithArgs("p-404").
		WillReturnError(sql.ErrNoRows)

	_, err = repo.GetByID(ctx, "p-404")
	require.ErrorIs(t, err, domain.ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPresentationRepository_ListUnscheduled(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT .+\s+FROM presentations\s+WHERE start_time IS NULL\s+ORDER BY id`).
		WillReturnRows(sqlmock.NewRows(presentationCols).
			AddRow("p-1", "Intro to Go", "", 60, "spk-1", nil, nil, nil, now, now).
			AddRow("p-2", "Advanced Go", "", 90, "spk-2", nil, nil, nil, now, now))

	repo := NewPresentationRepository(db)
	out, err := repo.ListUnscheduled(ctx)
	require.NoError(t, err)
	require.Len(t, out, 2)
	require.Equal(t, "p-1", out[0].ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPresentationRepository_Assign(t *testing.T) {
	ctx := context.Background()
	start := time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC)

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewPresentationRepository(db)

	mock.ExpectExec(`UPDATE presentations\s+SET room_id`).
		WithArgs("p-1", "room-1", start, start.Add(time.Hour), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	require.NoError(t, repo.Assign(ctx, "p-1", "room-1", start, start.Add(time.Hour)))

	mock.ExpectExec(`UPDATE presentations\s+SET room_id`).
		WithArgs("p-404", "room-1", start, start.Add(time.Hour), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 0))
	require.ErrorIs(t, repo.Assign(ctx, "p-404", "room-1", start, start.Add(time.Hour)), domain.ErrNotFound)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPresentationRepository_ClearAssignments(t *testing.T) {
	ctx := context.Background()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(`UPDATE presentations\s+SET room_id = NULL`).
		WithArgs(sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 3))

	repo := NewPresentationRepository(db)
	n, err := repo.ClearAssignments(ctx)
	require.NoError(t, err)
	require.Equal(t, int64(3), n)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPresentationRepository_FindRoomConflict(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	start := time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC)
	end := start.Add(time.Hour)

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewPresentationRepository(db)

	mock.ExpectQuery(`SELECT .+\s+FROM presentations\s+WHERE room_id`).
		WithArgs("room-1", start, end, "p-2").
		WillReturnRows(sqlmock.NewRows(presentationCols).
			AddRow("p-1", "Intro to Go", "", 60, "spk-1", "room-1", start, end, now, now))

	conflict, err := repo.FindRoomConflict(ctx, "room-1", start, end, "p-2")
	require.NoError(t, err)
	require.Equal(t, "p-1", conflict.ID)

	mock.ExpectQuery(`SELECT .+\s+FROM presentations\s+WHERE room_id`).
		WithArgs("room-1", start, end, "p-2").
		WillReturnError(sql.ErrNoRows)

	_, err = repo.FindRoomConflict(ctx, "room-1", start, end, "p-2")
	require.ErrorIs(t, err, domain.ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}
