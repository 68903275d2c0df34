package postgres

import (
	"context"
	"database/sql"
	"time"

	"confscheduler/internal/domain"
)

const presentationColumns = `id, title, description, duration_minutes, speaker_id, room_id, start_time, end_time, created_at, updated_at`

type PresentationRepository struct {
	DB *sql.DB
}

func NewPresentationRepository(db *sql.DB) domain.PresentationRepository {
	return &PresentationRepository{
		DB: db,
	}
}

func (r *PresentationRepository) Create(ctx context.Context, p *domain.Presentation) error {
	query := `
		INSERT INTO presentations (title, description, duration_minutes, speaker_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, query, p.Title, p.Description, p.DurationMinutes, p.SpeakerID, p.CreatedAt, p.UpdatedAt).Scan(&p.ID)
}

func (r *PresentationRepository) GetByID(ctx context.Context, id string) (*domain.Presentation, error) {
	query := `
		SELECT ` + presentationColumns + `
		FROM presentations
		WHERE id = $1
	`
	p, err := scanPresentation(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

func (r *PresentationRepository) List(ctx context.Context, params domain.PaginationParams) ([]*domain.Presentation, int, error) {
	var total int
	if err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM presentations`).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `
		SELECT ` + presentationColumns + `
		FROM presentations
		ORDER BY id
		LIMIT $1 OFFSET $2
	`
	rows, err := r.DB.QueryContext(ctx, query, params.PageSize, params.Offset())
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	presentations, err := scanPresentations(rows)
	if err != nil {
		return nil, 0, err
	}
	return presentations, total, nil
}

func (r *PresentationRepository) ListAll(ctx context.Context) ([]*domain.Presentation, error) {
	query := `
		SELECT ` + presentationColumns + `
		FROM presentations
		ORDER BY id
	`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanPresentations(rows)
}

func (r *PresentationRepository) ListUnscheduled(ctx context.Context) ([]*domain.Presentation, error) {
	query := `
		SELECT ` + presentationColumns + `
		FROM presentations
		WHERE start_time IS NULL
		ORDER BY id
	`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanPresentations(rows)
}

func (r *PresentationRepository) ListScheduled(ctx context.Context) ([]*domain.Presentation, error) {
	query := `
		SELECT ` + presentationColumns + `
		FROM presentations
		WHERE start_time IS NOT NULL
		ORDER BY room_id, start_time
	`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanPresentations(rows)
}

func (r *PresentationRepository) Update(ctx context.Context, p *domain.Presentation) error {
	query := `
		UPDATE presentations
		SET title = $2, description = $3, duration_minutes = $4, updated_at = $5
		WHERE id = $1
	`
	res, err := r.DB.ExecContext(ctx, query, p.ID, p.Title, p.Description, p.DurationMinutes, p.UpdatedAt)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *PresentationRepository) Delete(ctx context.Context, id string) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM presentations WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *PresentationRepository) Assign(ctx context.Context, id, roomID string, start, end time.Time) error {
	query := `
		UPDATE presentations
		SET room_id = $2, start_time = $3, end_time = $4, updated_at = $5
		WHERE id = $1
	`
	res, err := r.DB.ExecContext(ctx, query, id, roomID, start, end, time.Now())
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *PresentationRepository) ClearAssignments(ctx context.Context) (int64, error) {
	query := `
		UPDATE presentations
		SET room_id = NULL, start_time = NULL, end_time = NULL, updated_at = $1
		WHERE start_time IS NOT NULL
	`
	res, err := r.DB.ExecContext(ctx, query, time.Now())
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *PresentationRepository) FindRoomConflict(ctx context.Context, roomID string, start, end time.Time, excludeID string) (*domain.Presentation, error) {
	// Half-open interval overlap: existing.start < end AND existing.end > start.
	query := `
		SELECT ` + presentationColumns + `
		FROM presentations
		WHERE room_id = $1
		  AND start_time < $3
		  AND end_time > $2
		  AND id <> $4
		ORDER BY start_time
		LIMIT 1
	`
	p, err := scanPresentation(r.DB.QueryRowContext(ctx, query, roomID, start, end, excludeID))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

func requireRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPresentation(row rowScanner) (*domain.Presentation, error) {
	p := &domain.Presentation{}
	var roomID sql.NullString
	var startTime, endTime sql.NullTime
	err := row.Scan(&p.ID, &p.Title, &p.Description, &p.DurationMinutes, &p.SpeakerID, &roomID, &startTime, &endTime, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if roomID.Valid {
		p.RoomID = &roomID.String
	}
	if startTime.Valid {
		p.StartTime = &startTime.Time
	}
	if endTime.Valid {
		p.EndTime = &endTime.Time
	}
	return p, nil
}

func scanPresentations(rows *sql.Rows) ([]*domain.Presentation, error) {
	var presentations []*domain.Presentation
	for rows.Next() {
		p, err := scanPresentation(rows)
		if err != nil {
			return nil, err
		}
		presentations = append(presentations, p)
	}
	return presentations, rows.Err()
}
