// Package scheduling implements the conference schedule optimizer: a
// deterministic greedy assignment of presentations to rooms and time slots
// that never double-books a room or a speaker, plus an independent conflict
// validator for schedules produced elsewhere.
//
// The package is self-contained and side-effect free: callers hand it plain
// in-memory snapshots and keep ownership of persistence.
package scheduling

import (
	"fmt"
	"time"
)

// TimeOfDay is a wall-clock time expressed as minutes since midnight.
// All interval arithmetic in this package is done on TimeOfDay values using
// half-open [start, end) intervals, so back-to-back sessions at a shared
// boundary do not overlap.
type TimeOfDay int

// ParseTimeOfDay parses a "HH:MM" wall-clock string.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, fmt.Errorf("invalid time of day %q: %w", s, err)
	}
	return TimeOfDay(t.Hour()*60 + t.Minute()), nil
}

// Minutes returns the value as plain minutes since midnight.
func (t TimeOfDay) Minutes() int { return int(t) }

// String formats the value back as "HH:MM".
func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", int(t)/60, int(t)%60)
}
