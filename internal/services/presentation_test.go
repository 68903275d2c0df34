package services

import (
	"context"
	"testing"
	"time"

	"confscheduler/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPresentationService_Create(t *testing.T) {
	ctx := context.Background()
	speakers := newFakeSpeakerRepo()
	pres := newFakePresentationRepo()
	svc := NewPresentationService(pres, speakers, 5*time.Second)

	spk := domain.NewSpeaker("ada", "ada@example.com", time.Now(), time.Now())
	require.NoError(t, speakers.Create(ctx, spk))

	tests := []struct {
		name    string
		p       *domain.Presentation
		wantErr string
	}{
		{
			name: "success",
			p:    domain.NewPresentation("Intro to Go", "desc", 45, spk.ID, time.Time{}, time.Time{}),
		},
		{
			name:    "missing title",
			p:       domain.NewPresentation("", "desc", 45, spk.ID, time.Time{}, time.Time{}),
			wantErr: "title is required",
		},
		{
			name:    "zero duration",
			p:       domain.NewPresentation("Intro to Go", "desc", 0, spk.ID, time.Time{}, time.Time{}),
			wantErr: "duration must be > 0",
		},
		{
			name:    "unknown speaker",
			p:       domain.NewPresentation("Intro to Go", "desc", 45, "spk-404", time.Time{}, time.Time{}),
			wantErr: "not found",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := svc.Create(ctx, tt.p)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.NotEmpty(t, tt.p.ID)
			assert.False(t, tt.p.Scheduled())
		})
	}
}

func TestPresentationService_Update(t *testing.T) {
	ctx := context.Background()
	speakers := newFakeSpeakerRepo()
	pres := newFakePresentationRepo()
	svc := NewPresentationService(pres, speakers, 5*time.Second)

	spk := domain.NewSpeaker("ada", "ada@example.com", time.Now(), time.Now())
	require.NoError(t, speakers.Create(ctx, spk))

	p := domain.NewPresentation("Intro to Go", "desc", 45, spk.ID, time.Time{}, time.Time{})
	require.NoError(t, svc.Create(ctx, p))

	p.Title = "Advanced Go"
	p.DurationMinutes = 60
	require.NoError(t, svc.Update(ctx, p))

	got, err := svc.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Advanced Go", got.Title)
	assert.Equal(t, 60, got.DurationMinutes)

	missing := domain.NewPresentation("Ghost", "", 30, spk.ID, time.Time{}, time.Time{})
	missing.ID = "p-404"
	require.ErrorIs(t, svc.Update(ctx, missing), domain.ErrNotFound)
}

func TestRoomService_Create(t *testing.T) {
	ctx := context.Background()
	rooms := newFakeRoomRepo()
	svc := NewRoomService(rooms, 5*time.Second)

	r := domain.NewRoom("Main Hall", 120, time.Time{}, time.Time{})
	require.NoError(t, svc.Create(ctx, r))
	assert.NotEmpty(t, r.ID)

	dup := domain.NewRoom("Main Hall", 80, time.Time{}, time.Time{})
	require.ErrorIs(t, svc.Create(ctx, dup), domain.ErrDuplicateName)

	unnamed := domain.NewRoom("", 80, time.Time{}, time.Time{})
	require.Error(t, svc.Create(ctx, unnamed))
}

func TestSpeakerService_Create(t *testing.T) {
	ctx := context.Background()
	speakers := newFakeSpeakerRepo()
	svc := NewSpeakerService(speakers, 5*time.Second)

	s := domain.NewSpeaker("ada", "ada@example.com", time.Time{}, time.Time{})
	require.NoError(t, svc.Create(ctx, s))
	assert.NotEmpty(t, s.ID)

	bad := domain.NewSpeaker("bob", "not-an-email", time.Time{}, time.Time{})
	require.Error(t, svc.Create(ctx, bad))
}
