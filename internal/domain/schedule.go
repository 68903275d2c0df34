package domain

import (
	"context"
	"time"

	"confscheduler/internal/scheduling"
)

// ScheduledSession is one placed presentation in a materialized schedule.
// swagger:model ScheduledSession
type ScheduledSession struct {
	PresentationID  string    `json:"presentation_id"`
	Title           string    `json:"title"`
	SpeakerID       string    `json:"speaker_id"`
	RoomID          string    `json:"room_id"`
	StartTime       time.Time `json:"start_time"`
	EndTime         time.Time `json:"end_time"`
	DurationMinutes int       `json:"duration_minutes"`
}

// UnplacedPresentation records a presentation the optimizer could not place
// and the reason why.
// swagger:model UnplacedPresentation
type UnplacedPresentation struct {
	PresentationID string `json:"presentation_id"`
	Reason         string `json:"reason"`
}

// RoomSchedule groups a room's sessions in start-time order.
// swagger:model RoomSchedule
type RoomSchedule struct {
	Room     *Room              `json:"room"`
	Sessions []ScheduledSession `json:"sessions"`
}

// ScheduleResult is the outcome of an optimization run or a schedule read:
// sessions grouped per room plus the presentations that could not be placed.
// swagger:model ScheduleResult
type ScheduleResult struct {
	Rooms    []RoomSchedule         `json:"rooms"`
	Unplaced []UnplacedPresentation `json:"unplaced"`
}

// OptimizeRequest carries the scheduling parameters for an optimization run.
// Day and break semantics are defined by scheduling.Config; StartDate is the
// calendar date of conference day 0 and defaults to tomorrow when nil.
type OptimizeRequest struct {
	ConferenceDays int
	DayStartTime   string
	DayEndTime     string
	BreakDuration  int
	StartDate      *time.Time
}

// SessionPlacement is one row of an externally supplied schedule submitted
// for validation. Times are wall-clock "HH:MM" within the given day.
type SessionPlacement struct {
	PresentationID string
	RoomID         string
	Day            int
	StartTime      string
	EndTime        string
}

// ValidateScheduleRequest is an arbitrary (possibly hand-edited) schedule plus
// the config it claims to satisfy.
type ValidateScheduleRequest struct {
	ConferenceDays int
	DayStartTime   string
	DayEndTime     string
	BreakDuration  int
	Sessions       []SessionPlacement
}

// ScheduleService defines the business logic for building, reading, editing
// and validating the conference schedule.
type ScheduleService interface {
	// Optimize snapshots rooms and unscheduled presentations, runs the
	// scheduling engine, persists the resulting assignments and returns the
	// full schedule. When nothing is unscheduled it returns the existing
	// schedule unchanged.
	Optimize(ctx context.Context, req OptimizeRequest) (*ScheduleResult, error)
	// GetSchedule returns the currently persisted schedule grouped by room.
	GetSchedule(ctx context.Context) (*ScheduleResult, error)
	// PlacePresentation manually books a presentation into a room at a start
	// time, rejecting with ErrSlotTaken when the room is occupied.
	PlacePresentation(ctx context.Context, presentationID, roomID string, start time.Time) (*Presentation, error)
	// Reset clears every assignment and returns how many were cleared.
	Reset(ctx context.Context) (int64, error)
	// ValidatePlacements checks an arbitrary schedule against the stored
	// presentation snapshot and returns every conflict found.
	ValidatePlacements(ctx context.Context, req ValidateScheduleRequest) ([]scheduling.Conflict, error)
}
