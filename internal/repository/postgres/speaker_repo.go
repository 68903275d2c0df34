package postgres

import (
	"context"
	"database/sql"

	"confscheduler/internal/domain"

	"github.com/lib/pq"
)

type SpeakerRepository struct {
	DB *sql.DB
}

func NewSpeakerRepository(db *sql.DB) domain.SpeakerRepository {
	return &SpeakerRepository{
		DB: db,
	}
}

func (r *SpeakerRepository) Create(ctx context.Context, speaker *domain.Speaker) error {
	query := `
		INSERT INTO speakers (name, email, created_at, updated_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, query, speaker.Name, speaker.Email, speaker.CreatedAt, speaker.UpdatedAt).Scan(&speaker.ID)
}

func (r *SpeakerRepository) GetByID(ctx context.Context, id string) (*domain.Speaker, error) {
	query := `
		SELECT id, name, email, created_at, updated_at
		FROM speakers
		WHERE id = $1
	`
	speaker := &domain.Speaker{}
	err := r.DB.QueryRowContext(ctx, query, id).Scan(&speaker.ID, &speaker.Name, &speaker.Email, &speaker.CreatedAt, &speaker.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return speaker, nil
}

func (r *SpeakerRepository) ListByIDs(ctx context.Context, ids []string) ([]*domain.Speaker, error) {
	query := `
		SELECT id, name, email, created_at, updated_at
		FROM speakers
		WHERE id = ANY($1)
		ORDER BY id
	`
	rows, err := r.DB.QueryContext(ctx, query, pq.Array(ids))
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanSpeakers(rows)
}

func (r *SpeakerRepository) List(ctx context.Context, params domain.PaginationParams) ([]*domain.Speaker, int, error) {
	var total int
	if err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM speakers`).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `
		SELECT id, name, email, created_at, updated_at
		FROM speakers
		ORDER BY id
		LIMIT $1 OFFSET $2
	`
	rows, err := r.DB.QueryContext(ctx, query, params.PageSize, params.Offset())
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	speakers, err := scanSpeakers(rows)
	if err != nil {
		return nil, 0, err
	}
	return speakers, total, nil
}

func scanSpeakers(rows *sql.Rows) ([]*domain.Speaker, error) {
	var speakers []*domain.Speaker
	for rows.Next() {
		speaker := &domain.Speaker{}
		if err := rows.Scan(&speaker.ID, &speaker.Name, &speaker.Email, &speaker.CreatedAt, &speaker.UpdatedAt); err != nil {
			return nil, err
		}
		speakers = append(speakers, speaker)
	}
	return speakers, rows.Err()
}
