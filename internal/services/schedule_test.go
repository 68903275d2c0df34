package services

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"testing"
	"time"

	"confscheduler/internal/domain"
	"confscheduler/internal/scheduling"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testLogger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))

// fakeRoomRepo is an in-memory RoomRepository for tests.
type fakeRoomRepo struct {
	byID   map[string]*domain.Room
	nextID int
	err    error // if set, every call returns this error
}

func newFakeRoomRepo() *fakeRoomRepo {
	return &fakeRoomRepo{byID: make(map[string]*domain.Room), nextID: 1}
}

func (f *fakeRoomRepo) Create(ctx context.Context, r *domain.Room) error {
	if f.err != nil {
		return f.err
	}
	for _, existing := range f.byID {
		if existing.Name == r.Name {
			return domain.ErrDuplicateName
		}
	}
	r.ID = fmt.Sprintf("room-%d", f.nextID)
	f.nextID++
	f.byID[r.ID] = r
	return nil
}

func (f *fakeRoomRepo) GetByID(ctx context.Context, id string) (*domain.Room, error) {
	if f.err != nil {
		return nil, f.err
	}
	if r, ok := f.byID[id]; ok {
		return r, nil
	}
	return nil, domain.ErrNotFound
}

func (f *fakeRoomRepo) ListAll(ctx context.Context) ([]*domain.Room, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([]*domain.Room, 0, len(f.byID))
	for _, r := range f.byID {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeRoomRepo) List(ctx context.Context, params domain.PaginationParams) ([]*domain.Room, int, error) {
	all, err := f.ListAll(ctx)
	if err != nil {
		return nil, 0, err
	}
	return all, len(all), nil
}

func (f *fakeRoomRepo) Delete(ctx context.Context, id string) error {
	if _, ok := f.byID[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.byID, id)
	return nil
}

// fakeSpeakerRepo is an in-memory SpeakerRepository for tests.
type fakeSpeakerRepo struct {
	byID   map[string]*domain.Speaker
	nextID int
}

func newFakeSpeakerRepo() *fakeSpeakerRepo {
	return &fakeSpeakerRepo{byID: make(map[string]*domain.Speaker), nextID: 1}
}

func (f *fakeSpeakerRepo) Create(ctx context.Context, s *domain.Speaker) error {
	s.ID = fmt.Sprintf("spk-%d", f.nextID)
	f.nextID++
	f.byID[s.ID] = s
	return nil
}

func (f *fakeSpeakerRepo) GetByID(ctx context.Context, id string) (*domain.Speaker, error) {
	if s, ok := f.byID[id]; ok {
		return s, nil
	}
	return nil, domain.ErrNotFound
}

func (f *fakeSpeakerRepo) ListByIDs(ctx context.Context, ids []string) ([]*domain.Speaker, error) {
	var out []*domain.Speaker
	for _, id := range ids {
		if s, ok := f.byID[id]; ok {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeSpeakerRepo) List(ctx context.Context, params domain.PaginationParams) ([]*domain.Speaker, int, error) {
	out := make([]*domain.Speaker, 0, len(f.byID))
	for _, s := range f.byID {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, len(out), nil
}

// fakePresentationRepo is an in-memory PresentationRepository for tests.
type fakePresentationRepo struct {
	byID      map[string]*domain.Presentation
	nextID    int
	assignErr error
}

func newFakePresentationRepo() *fakePresentationRepo {
	return &fakePresentationRepo{byID: make(map[string]*domain.Presentation), nextID: 1}
}

func (f *fakePresentationRepo) Create(ctx context.Context, p *domain.Presentation) error {
	p.ID = fmt.Sprintf("p-%d", f.nextID)
	f.nextID++
	f.byID[p.ID] = p
	return nil
}

func (f *fakePresentationRepo) GetByID(ctx context.Context, id string) (*domain.Presentation, error) {
	if p, ok := f.byID[id]; ok {
		return p, nil
	}
	return nil, domain.ErrNotFound
}

func (f *fakePresentationRepo) ListAll(ctx context.Context) ([]*domain.Presentation, error) {
	out := make([]*domain.Presentation, 0, len(f.byID))
	for _, p := range f.byID {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakePresentationRepo) List(ctx context.Context, params domain.PaginationParams) ([]*domain.Presentation, int, error) {
	all, _ := f.ListAll(ctx)
	return all, len(all), nil
}

func (f *fakePresentationRepo) ListUnscheduled(ctx context.Context) ([]*domain.Presentation, error) {
	all, _ := f.ListAll(ctx)
	var out []*domain.Presentation
	for _, p := range all {
		if !p.Scheduled() {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakePresentationRepo) ListScheduled(ctx context.Context) ([]*domain.Presentation, error) {
	all, _ := f.ListAll(ctx)
	var out []*domain.Presentation
	for _, p := range all {
		if p.Scheduled() {
			out = append(out, p)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if *out[i].RoomID != *out[j].RoomID {
			return *out[i].RoomID < *out[j].RoomID
		}
		return out[i].StartTime.Before(*out[j].StartTime)
	})
	return out, nil
}

func (f *fakePresentationRepo) Update(ctx context.Context, p *domain.Presentation) error {
	if _, ok := f.byID[p.ID]; !ok {
		return domain.ErrNotFound
	}
	f.byID[p.ID] = p
	return nil
}

func (f *fakePresentationRepo) Delete(ctx context.Context, id string) error {
	if _, ok := f.byID[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.byID, id)
	return nil
}

func (f *fakePresentationRepo) Assign(ctx context.Context, id, roomID string, start, end time.Time) error {
	if f.assignErr != nil {
		return f.assignErr
	}
	p, ok := f.byID[id]
	if !ok {
		return domain.ErrNotFound
	}
	p.RoomID = &roomID
	p.StartTime = &start
	p.EndTime = &end
	return nil
}

func (f *fakePresentationRepo) ClearAssignments(ctx context.Context) (int64, error) {
	var n int64
	for _, p := range f.byID {
		if p.Scheduled() {
			p.RoomID = nil
			p.StartTime = nil
			p.EndTime = nil
			n++
		}
	}
	return n, nil
}

func (f *fakePresentationRepo) FindRoomConflict(ctx context.Context, roomID string, start, end time.Time, excludeID string) (*domain.Presentation, error) {
	for _, p := range f.byID {
		if p.ID == excludeID || !p.Scheduled() || *p.RoomID != roomID {
			continue
		}
		if p.StartTime.Before(end) && start.Before(*p.EndTime) {
			return p, nil
		}
	}
	return nil, domain.ErrNotFound
}

// fakeMailer records sent messages.
type fakeMailer struct {
	sent []string // recipient addresses
	err  error
}

func (f *fakeMailer) Send(to, subject, html, text string) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, to)
	return nil
}

type scheduleFixture struct {
	rooms    *fakeRoomRepo
	speakers *fakeSpeakerRepo
	pres     *fakePresentationRepo
	mailer   *fakeMailer
	svc      domain.ScheduleService
}

func newScheduleFixture() *scheduleFixture {
	f := &scheduleFixture{
		rooms:    newFakeRoomRepo(),
		speakers: newFakeSpeakerRepo(),
		pres:     newFakePresentationRepo(),
		mailer:   &fakeMailer{},
	}
	f.svc = NewScheduleService(f.pres, f.rooms, f.speakers, f.mailer, testLogger, 5*time.Second)
	return f
}

func (f *scheduleFixture) addRoom(t *testing.T, name string) *domain.Room {
	t.Helper()
	r := domain.NewRoom(name, 100, time.Now(), time.Now())
	require.NoError(t, f.rooms.Create(context.Background(), r))
	return r
}

func (f *scheduleFixture) addSpeaker(t *testing.T, name string) *domain.Speaker {
	t.Helper()
	s := domain.NewSpeaker(name, name+"@example.com", time.Now(), time.Now())
	require.NoError(t, f.speakers.Create(context.Background(), s))
	return s
}

func (f *scheduleFixture) addPresentation(t *testing.T, title, speakerID string, duration int) *domain.Presentation {
	t.Helper()
	p := domain.NewPresentation(title, "", duration, speakerID, time.Now(), time.Now())
	require.NoError(t, f.pres.Create(context.Background(), p))
	return p
}

func optimizeReq(days int, start, end string, breakMin int) domain.OptimizeRequest {
	d0 := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	return domain.OptimizeRequest{
		ConferenceDays: days,
		DayStartTime:   start,
		DayEndTime:     end,
		BreakDuration:  breakMin,
		StartDate:      &d0,
	}
}

func TestScheduleService_Optimize(t *testing.T) {
	ctx := context.Background()
	f := newScheduleFixture()
	f.addRoom(t, "Main Hall")
	spk := f.addSpeaker(t, "ada")
	f.addPresentation(t, "Talk A", spk.ID, 45)
	f.addPresentation(t, "Talk B", spk.ID, 45)

	res, err := f.svc.Optimize(ctx, optimizeReq(1, "09:00", "11:00", 15))
	require.NoError(t, err)

	require.Len(t, res.Rooms, 1)
	sessions := res.Rooms[0].Sessions
	require.Len(t, sessions, 2)
	assert.Empty(t, res.Unplaced)

	wantFirst := time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC)
	assert.Equal(t, wantFirst, sessions[0].StartTime)
	assert.Equal(t, wantFirst.Add(45*time.Minute), sessions[0].EndTime)
	// Second session starts after the 15-minute break.
	assert.Equal(t, wantFirst.Add(60*time.Minute), sessions[1].StartTime)

	// Assignments were persisted.
	unscheduled, err := f.pres.ListUnscheduled(ctx)
	require.NoError(t, err)
	assert.Empty(t, unscheduled)

	// The speaker was notified exactly once.
	assert.Equal(t, []string{"ada@example.com"}, f.mailer.sent)
}

func TestScheduleService_Optimize_InvalidConfig(t *testing.T) {
	f := newScheduleFixture()
	f.addRoom(t, "Main Hall")
	spk := f.addSpeaker(t, "ada")
	f.addPresentation(t, "Talk A", spk.ID, 30)

	tests := []struct {
		name string
		req  domain.OptimizeRequest
	}{
		{"start equals end", optimizeReq(1, "09:00", "09:00", 0)},
		{"zero days", optimizeReq(0, "09:00", "18:00", 0)},
		{"negative break", optimizeReq(1, "09:00", "18:00", -5)},
		{"unparseable time", optimizeReq(1, "9am", "18:00", 0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.svc.Optimize(context.Background(), tt.req)
			require.ErrorIs(t, err, scheduling.ErrInvalidConfig)
		})
	}

	// Config errors abort before any placement: nothing got assigned.
	unscheduled, err := f.pres.ListUnscheduled(context.Background())
	require.NoError(t, err)
	assert.Len(t, unscheduled, 1)
}

func TestScheduleService_Optimize_NoRooms(t *testing.T) {
	f := newScheduleFixture()
	spk := f.addSpeaker(t, "ada")
	f.addPresentation(t, "Talk A", spk.ID, 30)

	_, err := f.svc.Optimize(context.Background(), optimizeReq(1, "09:00", "18:00", 0))
	require.ErrorIs(t, err, domain.ErrNoRoomsAvailable)
}

func TestScheduleService_Optimize_DurationExceedsWindow(t *testing.T) {
	f := newScheduleFixture()
	f.addRoom(t, "Main Hall")
	spk := f.addSpeaker(t, "ada")
	long := f.addPresentation(t, "Marathon", spk.ID, 90)

	res, err := f.svc.Optimize(context.Background(), optimizeReq(1, "09:00", "10:00", 0))
	require.NoError(t, err)

	require.Len(t, res.Unplaced, 1)
	assert.Equal(t, long.ID, res.Unplaced[0].PresentationID)
	assert.Equal(t, scheduling.ReasonDurationExceedsWindow, res.Unplaced[0].Reason)
	assert.Empty(t, f.mailer.sent)
}

func TestScheduleService_Optimize_NothingUnscheduled(t *testing.T) {
	ctx := context.Background()
	f := newScheduleFixture()
	room := f.addRoom(t, "Main Hall")
	spk := f.addSpeaker(t, "ada")
	p := f.addPresentation(t, "Talk A", spk.ID, 60)

	start := time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC)
	require.NoError(t, f.pres.Assign(ctx, p.ID, room.ID, start, start.Add(time.Hour)))

	// With nothing left to place, Optimize returns the existing schedule.
	res, err := f.svc.Optimize(ctx, optimizeReq(1, "09:00", "18:00", 0))
	require.NoError(t, err)
	require.Len(t, res.Rooms, 1)
	require.Len(t, res.Rooms[0].Sessions, 1)
	assert.Equal(t, p.ID, res.Rooms[0].Sessions[0].PresentationID)
	assert.Empty(t, f.mailer.sent)
}

func TestScheduleService_Optimize_MailerFailureIsNonFatal(t *testing.T) {
	f := newScheduleFixture()
	f.addRoom(t, "Main Hall")
	spk := f.addSpeaker(t, "ada")
	f.addPresentation(t, "Talk A", spk.ID, 30)
	f.mailer.err = fmt.Errorf("ses unavailable")

	_, err := f.svc.Optimize(context.Background(), optimizeReq(1, "09:00", "18:00", 0))
	require.NoError(t, err)
}

func TestScheduleService_GetSchedule(t *testing.T) {
	ctx := context.Background()
	f := newScheduleFixture()
	room1 := f.addRoom(t, "Main Hall")
	room2 := f.addRoom(t, "Side Room")
	spk := f.addSpeaker(t, "ada")
	p1 := f.addPresentation(t, "Talk A", spk.ID, 60)
	p2 := f.addPresentation(t, "Talk B", spk.ID, 60)

	base := time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC)
	require.NoError(t, f.pres.Assign(ctx, p1.ID, room1.ID, base.Add(2*time.Hour), base.Add(3*time.Hour)))
	require.NoError(t, f.pres.Assign(ctx, p2.ID, room1.ID, base, base.Add(time.Hour)))

	res, err := f.svc.GetSchedule(ctx)
	require.NoError(t, err)

	require.Len(t, res.Rooms, 2)
	// Sessions come back in start-time order regardless of insert order.
	require.Len(t, res.Rooms[0].Sessions, 2)
	assert.Equal(t, p2.ID, res.Rooms[0].Sessions[0].PresentationID)
	assert.Equal(t, p1.ID, res.Rooms[0].Sessions[1].PresentationID)
	// Empty rooms still appear with an empty session list.
	assert.Equal(t, room2.ID, res.Rooms[1].Room.ID)
	assert.Empty(t, res.Rooms[1].Sessions)
}

func TestScheduleService_PlacePresentation(t *testing.T) {
	ctx := context.Background()
	f := newScheduleFixture()
	room := f.addRoom(t, "Main Hall")
	spk := f.addSpeaker(t, "ada")
	p1 := f.addPresentation(t, "Talk A", spk.ID, 60)
	p2 := f.addPresentation(t, "Talk B", spk.ID, 60)

	start := time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC)

	placed, err := f.svc.PlacePresentation(ctx, p1.ID, room.ID, start)
	require.NoError(t, err)
	require.True(t, placed.Scheduled())
	assert.Equal(t, start.Add(time.Hour), *placed.EndTime)

	// Overlapping manual placement in the same room is rejected.
	_, err = f.svc.PlacePresentation(ctx, p2.ID, room.ID, start.Add(30*time.Minute))
	require.ErrorIs(t, err, domain.ErrSlotTaken)

	// Back-to-back is fine under half-open intervals.
	_, err = f.svc.PlacePresentation(ctx, p2.ID, room.ID, start.Add(time.Hour))
	require.NoError(t, err)

	_, err = f.svc.PlacePresentation(ctx, "missing", room.ID, start)
	require.ErrorIs(t, err, domain.ErrNotFound)

	_, err = f.svc.PlacePresentation(ctx, p1.ID, "missing-room", start)
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestScheduleService_Reset(t *testing.T) {
	ctx := context.Background()
	f := newScheduleFixture()
	room := f.addRoom(t, "Main Hall")
	spk := f.addSpeaker(t, "ada")
	p := f.addPresentation(t, "Talk A", spk.ID, 60)

	start := time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC)
	require.NoError(t, f.pres.Assign(ctx, p.ID, room.ID, start, start.Add(time.Hour)))

	n, err := f.svc.Reset(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	unscheduled, err := f.pres.ListUnscheduled(ctx)
	require.NoError(t, err)
	assert.Len(t, unscheduled, 1)
}

func TestScheduleService_ValidatePlacements(t *testing.T) {
	ctx := context.Background()
	f := newScheduleFixture()
	spk := f.addSpeaker(t, "ada")
	p1 := f.addPresentation(t, "Talk A", spk.ID, 60)
	p2 := f.addPresentation(t, "Talk B", spk.ID, 60)

	req := domain.ValidateScheduleRequest{
		ConferenceDays: 1,
		DayStartTime:   "09:00",
		DayEndTime:     "18:00",
		BreakDuration:  0,
		Sessions: []domain.SessionPlacement{
			{PresentationID: p1.ID, RoomID: "room-1", Day: 0, StartTime: "09:00", EndTime: "10:00"},
			{PresentationID: p2.ID, RoomID: "room-2", Day: 0, StartTime: "09:30", EndTime: "10:30"},
		},
	}

	conflicts, err := f.svc.ValidatePlacements(ctx, req)
	require.NoError(t, err)
	require.Len(t, conflicts, 1)
	assert.Equal(t, scheduling.ConflictSpeakerOverlap, conflicts[0].Kind)

	// A clean hand-edited schedule validates to no conflicts.
	req.Sessions[1].RoomID = "room-1"
	req.Sessions[1].StartTime = "10:00"
	req.Sessions[1].EndTime = "11:00"
	conflicts, err = f.svc.ValidatePlacements(ctx, req)
	require.NoError(t, err)
	assert.Empty(t, conflicts)

	req.DayStartTime = "18:00"
	_, err = f.svc.ValidatePlacements(ctx, req)
	require.ErrorIs(t, err, scheduling.ErrInvalidConfig)
}
