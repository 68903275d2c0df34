package scheduling

import "sort"

// Reasons a presentation ends up unplaced. DurationExceedsWindow is detected
// before the search even starts; NoFeasibleSlot means the whole room/day grid
// was scanned without finding a fit.
const (
	ReasonDurationExceedsWindow = "duration_exceeds_window"
	ReasonNoFeasibleSlot        = "no_feasible_slot"
)

// Presentation is the engine's view of a talk: an opaque ID, the speaker who
// must not be double-booked, and how long it runs.
type Presentation struct {
	ID              string
	SpeakerID       string
	DurationMinutes int
}

// Room is the engine's view of a room. Capacity and the like are the caller's
// business; only identity matters here.
type Room struct {
	ID string
}

// Session is one committed placement in a Result.
type Session struct {
	PresentationID string
	RoomID         string
	Day            int
	Start          TimeOfDay
	End            TimeOfDay
}

// Unplaced names a presentation the engine could not place and why.
type Unplaced struct {
	PresentationID string
	Reason         string
}

// Result is a produced schedule: sessions in commit order plus the unplaced
// list. A Result is immutable once returned; re-running with different input
// produces a fresh Result rather than patching this one.
type Result struct {
	Sessions []Session
	Unplaced []Unplaced
}

// Engine assigns presentations to (room, day, time) slots using a
// deterministic greedy first-fit walk. The presentation and room orderings
// are policy parameters; the defaults are longest-duration-first (ties by
// ascending ID) and ascending room ID.
type Engine struct {
	cfg              Config
	lessPresentation func(a, b Presentation) bool
	lessRoom         func(a, b Room) bool
}

// Option customizes an Engine's scan policy.
type Option func(*Engine)

// WithPresentationOrder replaces the default longest-first presentation
// ordering. The ordering must be total for output to stay deterministic.
func WithPresentationOrder(less func(a, b Presentation) bool) Option {
	return func(e *Engine) { e.lessPresentation = less }
}

// WithRoomOrder replaces the default ascending-ID room scan order, e.g. to
// prefer larger rooms first.
func WithRoomOrder(less func(a, b Room) bool) Option {
	return func(e *Engine) { e.lessRoom = less }
}

// NewEngine validates cfg and returns an Engine. A config failure here is
// fatal: no partial schedule is ever produced from an invalid config.
func NewEngine(cfg Config, opts ...Option) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	e := &Engine{
		cfg: cfg,
		lessPresentation: func(a, b Presentation) bool {
			if a.DurationMinutes != b.DurationMinutes {
				return a.DurationMinutes > b.DurationMinutes
			}
			return a.ID < b.ID
		},
		lessRoom: func(a, b Room) bool { return a.ID < b.ID },
	}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// Schedule places as many presentations as possible. Placement is
// all-or-nothing per presentation and a failed placement never aborts the
// run. The walk is single-threaded on purpose: each commit narrows the
// feasible slots for everything after it.
func (e *Engine) Schedule(presentations []Presentation, rooms []Room) *Result {
	ordered := make([]Presentation, len(presentations))
	copy(ordered, presentations)
	sort.SliceStable(ordered, func(i, j int) bool { return e.lessPresentation(ordered[i], ordered[j]) })

	scanRooms := make([]Room, len(rooms))
	copy(scanRooms, rooms)
	sort.SliceStable(scanRooms, func(i, j int) bool { return e.lessRoom(scanRooms[i], scanRooms[j]) })

	tracker := NewTracker(e.cfg)

	// Per (room, day) cursor: the next candidate start time. Advanced past
	// each committed session's end plus the break.
	cursor := make(map[ledgerKey]TimeOfDay, len(scanRooms)*e.cfg.Days)
	for _, room := range scanRooms {
		for day := 0; day < e.cfg.Days; day++ {
			cursor[ledgerKey{room.ID, day}] = e.cfg.DayStart
		}
	}

	result := &Result{}
	window := e.cfg.WindowMinutes()

	for _, p := range ordered {
		if p.DurationMinutes > window {
			result.Unplaced = append(result.Unplaced, Unplaced{
				PresentationID: p.ID,
				Reason:         ReasonDurationExceedsWindow,
			})
			continue
		}

		placed := false
	scan:
		for _, room := range scanRooms {
			for day := 0; day < e.cfg.Days; day++ {
				key := ledgerKey{room.ID, day}
				start := cursor[key]
				end := start + TimeOfDay(p.DurationMinutes)
				if end > e.cfg.DayEnd {
					continue
				}
				if !tracker.RoomFree(room.ID, day, start, end) {
					continue
				}
				if !tracker.SpeakerFree(p.SpeakerID, day, start, end) {
					continue
				}
				tracker.Commit(room.ID, p.SpeakerID, p.ID, day, start, end)
				cursor[key] = end + TimeOfDay(e.cfg.BreakMinutes)
				result.Sessions = append(result.Sessions, Session{
					PresentationID: p.ID,
					RoomID:         room.ID,
					Day:            day,
					Start:          start,
					End:            end,
				})
				placed = true
				break scan
			}
		}
		if !placed {
			result.Unplaced = append(result.Unplaced, Unplaced{
				PresentationID: p.ID,
				Reason:         ReasonNoFeasibleSlot,
			})
		}
	}

	return result
}
