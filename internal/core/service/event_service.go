package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/igiehon-foundation/tournament-portal/internal/core/domain"
	"github.com/igiehon-foundation/tournament-portal/internal/core/ports"
)

// EventService serves the public events listing.
type EventService struct {
	repo ports.EventRepository
}

func NewEventService(repo ports.EventRepository) *EventService {
	return &EventService{repo: repo}
}

func (s *EventService) ListEvents(ctx context.Context) ([]*domain.Event, error) {
	events, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	return events, nil
}

// ActiveEvent returns nil, nil when no event is flagged active.
func (s *EventService) ActiveEvent(ctx context.Context) (*domain.Event, error) {
	event, err := s.repo.FindActive(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrEventNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("active event: %w", err)
	}
	return event, nil
}
