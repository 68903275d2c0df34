package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"confscheduler/internal/domain"
	"confscheduler/internal/scheduling"
)

type scheduleService struct {
	presentations  domain.PresentationRepository
	rooms          domain.RoomRepository
	speakers       domain.SpeakerRepository
	mailer         domain.Mailer
	logger         *slog.Logger
	contextTimeout time.Duration
}

// NewScheduleService returns the ScheduleService. The mailer is used for
// best-effort speaker notifications after a successful optimization run and
// may be a noop implementation.
func NewScheduleService(
	presentations domain.PresentationRepository,
	rooms domain.RoomRepository,
	speakers domain.SpeakerRepository,
	mailer domain.Mailer,
	logger *slog.Logger,
	timeout time.Duration,
) domain.ScheduleService {
	return &scheduleService{
		presentations:  presentations,
		rooms:          rooms,
		speakers:       speakers,
		mailer:         mailer,
		logger:         logger,
		contextTimeout: timeout,
	}
}

// buildConfig parses wall-clock strings into a scheduling.Config. Parse
// failures surface as ErrInvalidConfig so the caller maps them like any other
// configuration error.
func buildConfig(days int, dayStart, dayEnd string, breakMinutes int) (scheduling.Config, error) {
	start, err := scheduling.ParseTimeOfDay(dayStart)
	if err != nil {
		return scheduling.Config{}, fmt.Errorf("%w: day start: %v", scheduling.ErrInvalidConfig, err)
	}
	end, err := scheduling.ParseTimeOfDay(dayEnd)
	if err != nil {
		return scheduling.Config{}, fmt.Errorf("%w: day end: %v", scheduling.ErrInvalidConfig, err)
	}
	return scheduling.Config{
		Days:         days,
		DayStart:     start,
		DayEnd:       end,
		BreakMinutes: breakMinutes,
	}, nil
}

func (s *scheduleService) Optimize(ctx context.Context, req domain.OptimizeRequest) (*domain.ScheduleResult, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	cfg, err := buildConfig(req.ConferenceDays, req.DayStartTime, req.DayEndTime, req.BreakDuration)
	if err != nil {
		return nil, err
	}
	engine, err := scheduling.NewEngine(cfg)
	if err != nil {
		return nil, err
	}

	rooms, err := s.rooms.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list rooms: %w", err)
	}
	if len(rooms) == 0 {
		return nil, domain.ErrNoRoomsAvailable
	}

	unscheduled, err := s.presentations.ListUnscheduled(ctx)
	if err != nil {
		return nil, fmt.Errorf("list unscheduled presentations: %w", err)
	}
	if len(unscheduled) == 0 {
		return s.currentSchedule(ctx, rooms)
	}

	engPres := make([]scheduling.Presentation, 0, len(unscheduled))
	byID := make(map[string]*domain.Presentation, len(unscheduled))
	for _, p := range unscheduled {
		engPres = append(engPres, scheduling.Presentation{
			ID:              p.ID,
			SpeakerID:       p.SpeakerID,
			DurationMinutes: p.DurationMinutes,
		})
		byID[p.ID] = p
	}
	engRooms := make([]scheduling.Room, 0, len(rooms))
	for _, r := range rooms {
		engRooms = append(engRooms, scheduling.Room{ID: r.ID})
	}

	result := engine.Schedule(engPres, engRooms)

	// Post-condition: the engine's own output must pass the independent
	// validator before anything is persisted.
	if conflicts := scheduling.ValidateResult(result, engPres, cfg); len(conflicts) > 0 {
		return nil, fmt.Errorf("%w: %d conflicts in engine output", domain.ErrValidationFailed, len(conflicts))
	}

	base := dayZero(req.StartDate)
	sessions := make([]domain.ScheduledSession, 0, len(result.Sessions))
	for _, es := range result.Sessions {
		p := byID[es.PresentationID]
		start := wallClock(base, es.Day, es.Start)
		end := wallClock(base, es.Day, es.End)
		if err := s.presentations.Assign(ctx, es.PresentationID, es.RoomID, start, end); err != nil {
			return nil, fmt.Errorf("assign presentation %s: %w", es.PresentationID, err)
		}
		sessions = append(sessions, domain.ScheduledSession{
			PresentationID:  p.ID,
			Title:           p.Title,
			SpeakerID:       p.SpeakerID,
			RoomID:          es.RoomID,
			StartTime:       start,
			EndTime:         end,
			DurationMinutes: p.DurationMinutes,
		})
	}

	s.notifySpeakers(ctx, sessions)

	out := groupByRoom(rooms, sessions)
	for _, u := range result.Unplaced {
		out.Unplaced = append(out.Unplaced, domain.UnplacedPresentation{
			PresentationID: u.PresentationID,
			Reason:         u.Reason,
		})
	}
	return out, nil
}

func (s *scheduleService) GetSchedule(ctx context.Context) (*domain.ScheduleResult, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	rooms, err := s.rooms.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list rooms: %w", err)
	}
	return s.currentSchedule(ctx, rooms)
}

// currentSchedule materializes the persisted assignments grouped by room.
func (s *scheduleService) currentSchedule(ctx context.Context, rooms []*domain.Room) (*domain.ScheduleResult, error) {
	scheduled, err := s.presentations.ListScheduled(ctx)
	if err != nil {
		return nil, fmt.Errorf("list scheduled presentations: %w", err)
	}
	sessions := make([]domain.ScheduledSession, 0, len(scheduled))
	for _, p := range scheduled {
		if !p.Scheduled() {
			continue
		}
		sessions = append(sessions, domain.ScheduledSession{
			PresentationID:  p.ID,
			Title:           p.Title,
			SpeakerID:       p.SpeakerID,
			RoomID:          *p.RoomID,
			StartTime:       *p.StartTime,
			EndTime:         *p.EndTime,
			DurationMinutes: p.DurationMinutes,
		})
	}
	return groupByRoom(rooms, sessions), nil
}

func (s *scheduleService) PlacePresentation(ctx context.Context, presentationID, roomID string, start time.Time) (*domain.Presentation, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	p, err := s.presentations.GetByID(ctx, presentationID)
	if err != nil {
		return nil, err
	}
	if _, err := s.rooms.GetByID(ctx, roomID); err != nil {
		return nil, fmt.Errorf("room %s: %w", roomID, err)
	}

	end := start.Add(time.Duration(p.DurationMinutes) * time.Minute)
	conflicting, err := s.presentations.FindRoomConflict(ctx, roomID, start, end, presentationID)
	if err == nil {
		return nil, fmt.Errorf("%w (occupied by %q)", domain.ErrSlotTaken, conflicting.Title)
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("check room conflict: %w", err)
	}

	if err := s.presentations.Assign(ctx, presentationID, roomID, start, end); err != nil {
		return nil, fmt.Errorf("assign presentation %s: %w", presentationID, err)
	}
	p.RoomID = &roomID
	p.StartTime = &start
	p.EndTime = &end
	return p, nil
}

func (s *scheduleService) Reset(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	return s.presentations.ClearAssignments(ctx)
}

func (s *scheduleService) ValidatePlacements(ctx context.Context, req domain.ValidateScheduleRequest) ([]scheduling.Conflict, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	cfg, err := buildConfig(req.ConferenceDays, req.DayStartTime, req.DayEndTime, req.BreakDuration)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	all, err := s.presentations.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list presentations: %w", err)
	}
	snapshot := make([]scheduling.Presentation, 0, len(all))
	for _, p := range all {
		snapshot = append(snapshot, scheduling.Presentation{
			ID:              p.ID,
			SpeakerID:       p.SpeakerID,
			DurationMinutes: p.DurationMinutes,
		})
	}

	result := &scheduling.Result{}
	for _, sp := range req.Sessions {
		start, err := scheduling.ParseTimeOfDay(sp.StartTime)
		if err != nil {
			return nil, fmt.Errorf("%w: session %s: %v", domain.ErrInvalidInput, sp.PresentationID, err)
		}
		end, err := scheduling.ParseTimeOfDay(sp.EndTime)
		if err != nil {
			return nil, fmt.Errorf("%w: session %s: %v", domain.ErrInvalidInput, sp.PresentationID, err)
		}
		result.Sessions = append(result.Sessions, scheduling.Session{
			PresentationID: sp.PresentationID,
			RoomID:         sp.RoomID,
			Day:            sp.Day,
			Start:          start,
			End:            end,
		})
	}

	return scheduling.ValidateResult(result, snapshot, cfg), nil
}

// notifySpeakers emails each speaker their assigned slots. Failures are
// logged and never fail the optimization run.
func (s *scheduleService) notifySpeakers(ctx context.Context, sessions []domain.ScheduledSession) {
	bySpeaker := make(map[string][]domain.ScheduledSession)
	ids := make([]string, 0)
	for _, sess := range sessions {
		if _, ok := bySpeaker[sess.SpeakerID]; !ok {
			ids = append(ids, sess.SpeakerID)
		}
		bySpeaker[sess.SpeakerID] = append(bySpeaker[sess.SpeakerID], sess)
	}
	if len(ids) == 0 {
		return
	}

	speakers, err := s.speakers.ListByIDs(ctx, ids)
	if err != nil {
		s.logger.WarnContext(ctx, "speaker notification skipped", "err", err)
		return
	}
	for _, speaker := range speakers {
		var text string
		for _, sess := range bySpeaker[speaker.ID] {
			text += fmt.Sprintf("%s: %s - %s (room %s)\n",
				sess.Title,
				sess.StartTime.Format("Mon Jan 2 15:04"),
				sess.EndTime.Format("15:04"),
				sess.RoomID,
			)
		}
		subject := "Your conference schedule"
		if err := s.mailer.Send(speaker.Email, subject, "", text); err != nil {
			s.logger.WarnContext(ctx, "speaker notification failed", "speaker_id", speaker.ID, "err", err)
		}
	}
}

// dayZero returns the calendar date of conference day 0: the caller-supplied
// start date, or tomorrow when none was given.
func dayZero(startDate *time.Time) time.Time {
	if startDate != nil {
		d := startDate.UTC()
		return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
	}
	now := time.Now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC).AddDate(0, 0, 1)
}

// wallClock converts (day index, time of day) into an absolute timestamp.
func wallClock(base time.Time, day int, t scheduling.TimeOfDay) time.Time {
	return base.AddDate(0, 0, day).Add(time.Duration(t.Minutes()) * time.Minute)
}

// groupByRoom buckets sessions per room in the rooms' listing order, each
// room's sessions ordered by start time.
func groupByRoom(rooms []*domain.Room, sessions []domain.ScheduledSession) *domain.ScheduleResult {
	byRoom := make(map[string][]domain.ScheduledSession)
	for _, sess := range sessions {
		byRoom[sess.RoomID] = append(byRoom[sess.RoomID], sess)
	}
	out := &domain.ScheduleResult{Rooms: make([]domain.RoomSchedule, 0, len(rooms))}
	for _, room := range rooms {
		rs := byRoom[room.ID]
		sort.SliceStable(rs, func(i, j int) bool { return rs[i].StartTime.Before(rs[j].StartTime) })
		if rs == nil {
			rs = []domain.ScheduledSession{}
		}
		out.Rooms = append(out.Rooms, domain.RoomSchedule{Room: room, Sessions: rs})
	}
	return out
}
