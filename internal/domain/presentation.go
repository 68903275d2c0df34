package domain

import (
	"context"
	"time"
)

// Presentation represents a submitted conference talk. RoomID, StartTime and
// EndTime are nil until the presentation has been placed on the schedule,
// either by the optimizer or manually.
// swagger:model Presentation
type Presentation struct {
	ID              string     `json:"id"`
	Title           string     `json:"title"`
	Description     string     `json:"description"`
	DurationMinutes int        `json:"duration_minutes"`
	SpeakerID       string     `json:"speaker_id"`
	RoomID          *string    `json:"room_id,omitempty"`
	StartTime       *time.Time `json:"start_time,omitempty"`
	EndTime         *time.Time `json:"end_time,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

// NewPresentation returns a new unscheduled Presentation. ID is typically set by the repository on create.
func NewPresentation(title, description string, durationMinutes int, speakerID string, createdAt, updatedAt time.Time) *Presentation {
	return &Presentation{
		Title:           title,
		Description:     description,
		DurationMinutes: durationMinutes,
		SpeakerID:       speakerID,
		CreatedAt:       createdAt,
		UpdatedAt:       updatedAt,
	}
}

// Scheduled reports whether the presentation has been placed on the schedule.
func (p *Presentation) Scheduled() bool {
	return p.RoomID != nil && p.StartTime != nil && p.EndTime != nil
}

// PresentationRepository defines the interface for presentation storage
type PresentationRepository interface {
	Create(ctx context.Context, p *Presentation) error
	GetByID(ctx context.Context, id string) (*Presentation, error)
	List(ctx context.Context, params PaginationParams) ([]*Presentation, int, error)
	ListAll(ctx context.Context) ([]*Presentation, error)
	// ListUnscheduled returns presentations without an assignment, ordered by ID.
	ListUnscheduled(ctx context.Context) ([]*Presentation, error)
	// ListScheduled returns assigned presentations ordered by room then start time.
	ListScheduled(ctx context.Context) ([]*Presentation, error)
	Update(ctx context.Context, p *Presentation) error
	Delete(ctx context.Context, id string) error
	// Assign records a placement (room and time window) on the presentation row.
	Assign(ctx context.Context, id, roomID string, start, end time.Time) error
	// ClearAssignments removes all placements and returns how many were cleared.
	ClearAssignments(ctx context.Context) (int64, error)
	// FindRoomConflict returns a presentation already occupying the room during
	// [start, end), excluding excludeID, or ErrNotFound when the slot is free.
	FindRoomConflict(ctx context.Context, roomID string, start, end time.Time, excludeID string) (*Presentation, error)
}

// PresentationService defines the business logic for presentation management
type PresentationService interface {
	Create(ctx context.Context, p *Presentation) error
	GetByID(ctx context.Context, id string) (*Presentation, error)
	List(ctx context.Context, params PaginationParams) ([]*Presentation, int, error)
	Update(ctx context.Context, p *Presentation) error
	Delete(ctx context.Context, id string) error
}
