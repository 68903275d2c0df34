package scheduling

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is returned when a Config fails validation. It is fatal to
// the whole run: no placement is attempted against an invalid config.
var ErrInvalidConfig = errors.New("invalid schedule config")

// Config describes the conference time grid: how many days, the daily working
// window, and the mandatory break between consecutive sessions in a room.
type Config struct {
	Days         int
	DayStart     TimeOfDay
	DayEnd       TimeOfDay
	BreakMinutes int
}

// Validate checks the config invariants and returns ErrInvalidConfig
// (wrapped with detail) on the first violation.
func (c Config) Validate() error {
	if c.Days < 1 {
		return fmt.Errorf("%w: conference days must be >= 1, got %d", ErrInvalidConfig, c.Days)
	}
	if c.DayStart >= c.DayEnd {
		return fmt.Errorf("%w: day start %s must be before day end %s", ErrInvalidConfig, c.DayStart, c.DayEnd)
	}
	if c.BreakMinutes < 0 {
		return fmt.Errorf("%w: break duration must be >= 0, got %d", ErrInvalidConfig, c.BreakMinutes)
	}
	return nil
}

// WindowMinutes returns the length of the daily working window.
func (c Config) WindowMinutes() int {
	return int(c.DayEnd - c.DayStart)
}
