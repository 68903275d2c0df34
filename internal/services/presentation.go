package services

import (
	"context"
	"fmt"
	"time"

	"confscheduler/internal/domain"
)

type presentationService struct {
	presentations  domain.PresentationRepository
	speakers       domain.SpeakerRepository
	contextTimeout time.Duration
}

// NewPresentationService returns the PresentationService backed by the given repositories.
func NewPresentationService(presentations domain.PresentationRepository, speakers domain.SpeakerRepository, timeout time.Duration) domain.PresentationService {
	return &presentationService{
		presentations:  presentations,
		speakers:       speakers,
		contextTimeout: timeout,
	}
}

func (s *presentationService) Create(ctx context.Context, p *domain.Presentation) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if p.Title == "" {
		return fmt.Errorf("presentation title is required")
	}
	if p.DurationMinutes <= 0 {
		return fmt.Errorf("presentation duration must be > 0 minutes")
	}
	// The speaker must exist: placements and notifications key off it.
	if _, err := s.speakers.GetByID(ctx, p.SpeakerID); err != nil {
		return fmt.Errorf("speaker %s: %w", p.SpeakerID, err)
	}

	p.CreatedAt = time.Now()
	p.UpdatedAt = time.Now()

	return s.presentations.Create(ctx, p)
}

func (s *presentationService) GetByID(ctx context.Context, id string) (*domain.Presentation, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	return s.presentations.GetByID(ctx, id)
}

func (s *presentationService) List(ctx context.Context, params domain.PaginationParams) ([]*domain.Presentation, int, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	presentations, total, err := s.presentations.List(ctx, params)
	if err != nil {
		return nil, 0, fmt.Errorf("list presentations: %w", err)
	}
	if presentations == nil {
		presentations = []*domain.Presentation{}
	}
	return presentations, total, nil
}

func (s *presentationService) Update(ctx context.Context, p *domain.Presentation) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	existing, err := s.presentations.GetByID(ctx, p.ID)
	if err != nil {
		return err
	}
	if p.Title == "" {
		return fmt.Errorf("presentation title is required")
	}
	if p.DurationMinutes <= 0 {
		return fmt.Errorf("presentation duration must be > 0 minutes")
	}

	p.CreatedAt = existing.CreatedAt
	p.UpdatedAt = time.Now()

	return s.presentations.Update(ctx, p)
}

func (s *presentationService) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	return s.presentations.Delete(ctx, id)
}
