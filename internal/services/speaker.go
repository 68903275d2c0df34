package services

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"confscheduler/internal/domain"
)

// speakerEmailRegex matches a simple email format (local@domain with at least one dot in domain).
var speakerEmailRegex = regexp.MustCompile(`^[^@]+@[^@]+\.[^@]+$`)

type speakerService struct {
	speakers       domain.SpeakerRepository
	contextTimeout time.Duration
}

// NewSpeakerService returns the SpeakerService backed by the given repository.
func NewSpeakerService(speakers domain.SpeakerRepository, timeout time.Duration) domain.SpeakerService {
	return &speakerService{
		speakers:       speakers,
		contextTimeout: timeout,
	}
}

func (s *speakerService) Create(ctx context.Context, speaker *domain.Speaker) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if speaker.Name == "" {
		return fmt.Errorf("speaker name is required")
	}
	if !speakerEmailRegex.MatchString(speaker.Email) {
		return fmt.Errorf("invalid speaker email %q", speaker.Email)
	}

	speaker.CreatedAt = time.Now()
	speaker.UpdatedAt = time.Now()

	return s.speakers.Create(ctx, speaker)
}

func (s *speakerService) GetByID(ctx context.Context, id string) (*domain.Speaker, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	return s.speakers.GetByID(ctx, id)
}

func (s *speakerService) List(ctx context.Context, params domain.PaginationParams) ([]*domain.Speaker, int, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	speakers, total, err := s.speakers.List(ctx, params)
	if err != nil {
		return nil, 0, fmt.Errorf("list speakers: %w", err)
	}
	if speakers == nil {
		speakers = []*domain.Speaker{}
	}
	return speakers, total, nil
}
