package services

import (
	"context"
	"fmt"
	"time"

	"confscheduler/internal/domain"
)

type roomService struct {
	rooms          domain.RoomRepository
	contextTimeout time.Duration
}

// NewRoomService returns the RoomService backed by the given repository.
func NewRoomService(rooms domain.RoomRepository, timeout time.Duration) domain.RoomService {
	return &roomService{
		rooms:          rooms,
		contextTimeout: timeout,
	}
}

func (s *roomService) Create(ctx context.Context, room *domain.Room) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if room.Name == "" {
		return fmt.Errorf("room name is required")
	}
	if room.Capacity < 0 {
		return fmt.Errorf("room capacity must be >= 0")
	}

	room.CreatedAt = time.Now()
	room.UpdatedAt = time.Now()

	return s.rooms.Create(ctx, room)
}

func (s *roomService) GetByID(ctx context.Context, id string) (*domain.Room, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	return s.rooms.GetByID(ctx, id)
}

func (s *roomService) List(ctx context.Context, params domain.PaginationParams) ([]*domain.Room, int, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	rooms, total, err := s.rooms.List(ctx, params)
	if err != nil {
		return nil, 0, fmt.Errorf("list rooms: %w", err)
	}
	if rooms == nil {
		rooms = []*domain.Room{}
	}
	return rooms, total, nil
}

func (s *roomService) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	return s.rooms.Delete(ctx, id)
}
