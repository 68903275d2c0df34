package scheduling

import "sort"

// interval is a committed booking on one day's ledger.
type interval struct {
	start, end     TimeOfDay
	presentationID string
}

// ledgerKey addresses one resource's bookings on one day.
type ledgerKey struct {
	id  string
	day int
}

// Tracker maintains the committed busy intervals per room and per speaker,
// keyed by day. Ledgers are kept in start-time order so the neighbour lookups
// behind the break-gap rule stay cheap.
//
// A Tracker belongs to a single optimization run and is not safe for
// concurrent use; concurrent runs must each own their own instance.
type Tracker struct {
	cfg      Config
	rooms    map[ledgerKey][]interval
	speakers map[ledgerKey][]interval
}

// NewTracker returns an empty Tracker for one optimization run.
func NewTracker(cfg Config) *Tracker {
	return &Tracker{
		cfg:      cfg,
		rooms:    make(map[ledgerKey][]interval),
		speakers: make(map[ledgerKey][]interval),
	}
}

// RoomFree reports whether [start, end) can be booked into the room on the
// given day: inside the working window, overlapping no committed interval,
// and separated from its neighbours by at least the configured break.
func (t *Tracker) RoomFree(roomID string, day int, start, end TimeOfDay) bool {
	if start < t.cfg.DayStart || end > t.cfg.DayEnd || start >= end {
		return false
	}
	gap := TimeOfDay(t.cfg.BreakMinutes)
	for _, iv := range t.rooms[ledgerKey{roomID, day}] {
		if start < iv.end && iv.start < end {
			return false
		}
		// The break rule applies on both sides of the candidate.
		if iv.end <= start && start-iv.end < gap {
			return false
		}
		if end <= iv.start && iv.start-end < gap {
			return false
		}
	}
	return true
}

// SpeakerFree reports whether the speaker has no committed interval
// overlapping [start, end) on the given day, in any room. Breaks are a
// per-room rule and do not apply here: a speaker may finish in one room at
// the exact minute they start in another.
func (t *Tracker) SpeakerFree(speakerID string, day int, start, end TimeOfDay) bool {
	for _, iv := range t.speakers[ledgerKey{speakerID, day}] {
		if start < iv.end && iv.start < end {
			return false
		}
	}
	return true
}

// Commit records [start, end) against both the room's and the speaker's
// ledgers. Callers must have verified RoomFree and SpeakerFree first; Commit
// itself performs no checks and there is no rollback.
func (t *Tracker) Commit(roomID, speakerID, presentationID string, day int, start, end TimeOfDay) {
	iv := interval{start: start, end: end, presentationID: presentationID}
	rk := ledgerKey{roomID, day}
	sk := ledgerKey{speakerID, day}
	t.rooms[rk] = insertOrdered(t.rooms[rk], iv)
	t.speakers[sk] = insertOrdered(t.speakers[sk], iv)
}

// insertOrdered inserts iv keeping the ledger sorted by start time.
func insertOrdered(ledger []interval, iv interval) []interval {
	i := sort.Search(len(ledger), func(j int) bool {
		return ledger[j].start >= iv.start
	})
	ledger = append(ledger, interval{})
	copy(ledger[i+1:], ledger[i:])
	ledger[i] = iv
	return ledger
}
