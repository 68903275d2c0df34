package domain

import (
	"context"
	"time"
)

// Speaker represents a person giving one or more presentations. The
// scheduling engine only ever sees the speaker's ID; the rest of the record
// exists for listings and for notification emails.
// swagger:model Speaker
type Speaker struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewSpeaker returns a new Speaker with the given fields. ID is typically set by the repository on create.
func NewSpeaker(name, email string, createdAt, updatedAt time.Time) *Speaker {
	return &Speaker{
		Name:      name,
		Email:     email,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}
}

// SpeakerRepository defines the interface for speaker storage
type SpeakerRepository interface {
	Create(ctx context.Context, speaker *Speaker) error
	GetByID(ctx context.Context, id string) (*Speaker, error)
	ListByIDs(ctx context.Context, ids []string) ([]*Speaker, error)
	List(ctx context.Context, params PaginationParams) ([]*Speaker, int, error)
}

// SpeakerService defines the business logic for speaker management
type SpeakerService interface {
	Create(ctx context.Context, speaker *Speaker) error
	GetByID(ctx context.Context, id string) (*Speaker, error)
	List(ctx context.Context, params PaginationParams) ([]*Speaker, int, error)
}
