package scheduling

import (
	"fmt"
	"sort"
)

// ConflictKind enumerates the invariant a Conflict violates.
type ConflictKind string

const (
	// ConflictRoomOverlap covers both overlapping sessions in one room and
	// consecutive sessions closer together than the configured break.
	ConflictRoomOverlap ConflictKind = "room_overlap"
	// ConflictSpeakerOverlap marks a speaker booked in two places at once.
	ConflictSpeakerOverlap ConflictKind = "speaker_overlap"
	// ConflictWindowViolation marks a session outside the daily window.
	ConflictWindowViolation ConflictKind = "window_violation"
	// ConflictDuplicatePresentation marks a presentation placed more than once.
	ConflictDuplicatePresentation ConflictKind = "duplicate_presentation"
	// ConflictDayOutOfRange marks a session on a nonexistent conference day.
	ConflictDayOutOfRange ConflictKind = "day_out_of_range"
	// ConflictUnknownPresentation marks a session naming a presentation that
	// is not part of the snapshot the schedule was supposedly built from.
	ConflictUnknownPresentation ConflictKind = "unknown_presentation"
)

// Conflict is one validation finding. PresentationIDs names the offending
// session(s): one entry for per-session violations, two for pairwise ones.
type Conflict struct {
	Kind            ConflictKind `json:"kind"`
	PresentationIDs []string     `json:"presentation_ids"`
	RoomID          string       `json:"room_id,omitempty"`
	Day             int          `json:"day"`
	Detail          string       `json:"detail"`
}

// ValidateResult re-derives every scheduling invariant from scratch for an
// arbitrary Result, engine-produced or hand-edited. It shares no bookkeeping
// with the Engine, tolerates sessions in any order, and always returns the
// complete conflict list rather than stopping at the first finding. A nil
// return means the schedule is valid.
func ValidateResult(res *Result, presentations []Presentation, cfg Config) []Conflict {
	byID := make(map[string]Presentation, len(presentations))
	for _, p := range presentations {
		byID[p.ID] = p
	}

	var conflicts []Conflict

	// Per-session checks, in submitted order: duplicates, unknown
	// presentations, day range, window containment.
	seen := make(map[string]bool, len(res.Sessions))
	for _, s := range res.Sessions {
		if seen[s.PresentationID] {
			conflicts = append(conflicts, Conflict{
				Kind:            ConflictDuplicatePresentation,
				PresentationIDs: []string{s.PresentationID},
				RoomID:          s.RoomID,
				Day:             s.Day,
				Detail:          fmt.Sprintf("presentation %s is placed more than once", s.PresentationID),
			})
		}
		seen[s.PresentationID] = true

		if _, ok := byID[s.PresentationID]; !ok {
			conflicts = append(conflicts, Conflict{
				Kind:            ConflictUnknownPresentation,
				PresentationIDs: []string{s.PresentationID},
				RoomID:          s.RoomID,
				Day:             s.Day,
				Detail:          fmt.Sprintf("presentation %s is not in the snapshot", s.PresentationID),
			})
		}
		if s.Day < 0 || s.Day >= cfg.Days {
			conflicts = append(conflicts, Conflict{
				Kind:            ConflictDayOutOfRange,
				PresentationIDs: []string{s.PresentationID},
				RoomID:          s.RoomID,
				Day:             s.Day,
				Detail:          fmt.Sprintf("day %d is outside [0, %d)", s.Day, cfg.Days),
			})
		}
		if s.Start < cfg.DayStart || s.End > cfg.DayEnd || s.Start >= s.End {
			conflicts = append(conflicts, Conflict{
				Kind:            ConflictWindowViolation,
				PresentationIDs: []string{s.PresentationID},
				RoomID:          s.RoomID,
				Day:             s.Day,
				Detail:          fmt.Sprintf("session %s-%s is outside the %s-%s window", s.Start, s.End, cfg.DayStart, cfg.DayEnd),
			})
		}
	}

	conflicts = append(conflicts, roomConflicts(res.Sessions, cfg)...)
	conflicts = append(conflicts, speakerConflicts(res.Sessions, byID)...)
	return conflicts
}

// roomConflicts rebuilds each room/day ledger and checks pairwise overlap
// plus the break gap between consecutive sessions.
func roomConflicts(sessions []Session, cfg Config) []Conflict {
	type roomDay struct {
		roomID string
		day    int
	}
	ledgers := make(map[roomDay][]Session)
	for _, s := range sessions {
		k := roomDay{s.RoomID, s.Day}
		ledgers[k] = append(ledgers[k], s)
	}

	keys := make([]roomDay, 0, len(ledgers))
	for k := range ledgers {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].roomID != keys[j].roomID {
			return keys[i].roomID < keys[j].roomID
		}
		return keys[i].day < keys[j].day
	})

	var conflicts []Conflict
	for _, k := range keys {
		ledger := ledgers[k]
		sort.SliceStable(ledger, func(i, j int) bool { return ledger[i].Start < ledger[j].Start })
		for i := 0; i < len(ledger); i++ {
			for j := i + 1; j < len(ledger); j++ {
				a, b := ledger[i], ledger[j]
				if a.Start < b.End && b.Start < a.End {
					conflicts = append(conflicts, Conflict{
						Kind:            ConflictRoomOverlap,
						PresentationIDs: []string{a.PresentationID, b.PresentationID},
						RoomID:          k.roomID,
						Day:             k.day,
						Detail:          fmt.Sprintf("sessions %s-%s and %s-%s overlap", a.Start, a.End, b.Start, b.End),
					})
				}
			}
			// Gap rule only binds consecutive sessions; with no overlaps the
			// sorted order is the room's running order.
			if i+1 < len(ledger) {
				a, b := ledger[i], ledger[i+1]
				if b.Start >= a.End && int(b.Start-a.End) < cfg.BreakMinutes {
					conflicts = append(conflicts, Conflict{
						Kind:            ConflictRoomOverlap,
						PresentationIDs: []string{a.PresentationID, b.PresentationID},
						RoomID:          k.roomID,
						Day:             k.day,
						Detail:          fmt.Sprintf("gap of %d min between sessions is shorter than the %d min break", int(b.Start-a.End), cfg.BreakMinutes),
					})
				}
			}
		}
	}
	return conflicts
}

// speakerConflicts rebuilds each speaker/day ledger across all rooms and
// checks pairwise overlap. Sessions whose presentation is unknown were
// already reported and cannot be attributed to a speaker.
func speakerConflicts(sessions []Session, byID map[string]Presentation) []Conflict {
	type speakerDay struct {
		speakerID string
		day       int
	}
	ledgers := make(map[speakerDay][]Session)
	for _, s := range sessions {
		p, ok := byID[s.PresentationID]
		if !ok {
			continue
		}
		k := speakerDay{p.SpeakerID, s.Day}
		ledgers[k] = append(ledgers[k], s)
	}

	keys := make([]speakerDay, 0, len(ledgers))
	for k := range ledgers {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].speakerID != keys[j].speakerID {
			return keys[i].speakerID < keys[j].speakerID
		}
		return keys[i].day < keys[j].day
	})

	var conflicts []Conflict
	for _, k := range keys {
		ledger := ledgers[k]
		sort.SliceStable(ledger, func(i, j int) bool { return ledger[i].Start < ledger[j].Start })
		for i := 0; i < len(ledger); i++ {
			for j := i + 1; j < len(ledger); j++ {
				a, b := ledger[i], ledger[j]
				if a.Start < b.End && b.Start < a.End {
					conflicts = append(conflicts, Conflict{
						Kind:            ConflictSpeakerOverlap,
						PresentationIDs: []string{a.PresentationID, b.PresentationID},
						Day:             k.day,
						Detail:          fmt.Sprintf("speaker %s is booked %s-%s in room %s and %s-%s in room %s", k.speakerID, a.Start, a.End, a.RoomID, b.Start, b.End, b.RoomID),
					})
				}
			}
		}
	}
	return conflicts
}
