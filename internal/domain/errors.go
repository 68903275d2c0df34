package domain

import "errors"

// Sentinel errors shared across services and repositories.
var (
	// ErrNotFound is returned when a requested entity does not exist.
	ErrNotFound = errors.New("not found")
	// ErrDuplicateName is returned when a unique name constraint is violated.
	ErrDuplicateName = errors.New("name already in use")
	// ErrNoRoomsAvailable is returned when optimization is requested but no rooms exist.
	ErrNoRoomsAvailable = errors.New("no rooms available")
	// ErrSlotTaken is returned when a manual placement collides with an existing booking.
	ErrSlotTaken = errors.New("room is already booked for the selected time")
	// ErrValidationFailed is returned when a produced schedule fails conflict validation.
	ErrValidationFailed = errors.New("schedule validation failed")
	// ErrInvalidInput is returned when a request payload is well-formed JSON but semantically invalid.
	ErrInvalidInput = errors.New("invalid input")
)
