package services

import (
	"context"
	"errors"
	"fmt"

	"eventcheckin/internal/domain"
)

type eventService struct {
	eventRepo domain.EventRepository
}

// NewEventService creates an EventService backed by the given repository.
func NewEventService(eventRepo domain.EventRepository) domain.EventService {
	return &eventService{eventRepo: eventRepo}
}

func (s *eventService) ListEvents(ctx context.Context) ([]*domain.EventSummary, error) {
	events, err := s.eventRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	out := make([]*domain.EventSummary, 0, len(events))
	for _, e := range events {
		out = append(out, domain.NewEventSummary(e))
	}
	return out, nil
}

func (s *eventService) GetEvent(ctx context.Context, id string) (*domain.EventSummary, error) {
	event, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}
	return domain.NewEventSummary(event), nil
}
