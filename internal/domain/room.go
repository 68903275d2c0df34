package domain

import (
	"context"
	"time"
)

// Room represents a physical room presentations can be scheduled into.
// Capacity is informational; it plays no part in conflict detection.
// swagger:model Room
type Room struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Capacity  int       `json:"capacity"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewRoom returns a new Room with the given fields. ID is typically set by the repository on create.
func NewRoom(name string, capacity int, createdAt, updatedAt time.Time) *Room {
	return &Room{
		Name:      name,
		Capacity:  capacity,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}
}

// RoomRepository defines the interface for room storage
type RoomRepository interface {
	Create(ctx context.Context, room *Room) error
	GetByID(ctx context.Context, id string) (*Room, error)
	List(ctx context.Context, params PaginationParams) ([]*Room, int, error)
	ListAll(ctx context.Context) ([]*Room, error)
	Delete(ctx context.Context, id string) error
}

// RoomService defines the business logic for room management
type RoomService interface {
	Create(ctx context.Context, room *Room) error
	GetByID(ctx context.Context, id string) (*Room, error)
	List(ctx context.Context, params PaginationParams) ([]*Room, int, error)
	Delete(ctx context.Context, id string) error
}
