package services

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"eventcheckin/internal/clock"
	"eventcheckin/internal/domain"
	"eventcheckin/internal/textnorm"
)

type attendeeService struct {
	eventRepo domain.EventRepository
	clock     clock.Clock
	collator  textnorm.Collator
	observer  domain.CheckInObserver
}

// NewAttendeeService creates an AttendeeService. Search results are ordered
// with collator; observer may be nil.
func NewAttendeeService(
	eventRepo domain.EventRepository,
	clk clock.Clock,
	collator textnorm.Collator,
	observer domain.CheckInObserver,
) domain.AttendeeService {
	return &attendeeService{
		eventRepo: eventRepo,
		clock:     clk,
		collator:  collator,
		observer:  observer,
	}
}

// match is an attendee paired with its normalized name, the sort key.
type match struct {
	attendee *domain.Attendee
	key      string
}

func (s *attendeeService) SearchAttendees(ctx context.Context, eventID string, q domain.AttendeeQuery) (*domain.AttendeePage, error) {
	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}

	needle := strings.TrimSpace(textnorm.Normalize(q.Search))
	matches := make([]match, 0, len(event.Attendees))
	for _, a := range event.Attendees {
		name := textnorm.Normalize(a.Name)
		if needle != "" {
			haystack := name + " " + textnorm.Normalize(a.Email) + " " + textnorm.Normalize(a.Document)
			if !strings.Contains(haystack, needle) {
				continue
			}
		}
		matches = append(matches, match{attendee: a, key: name})
	}

	// ties fall back to the id so pages never overlap
	compare := s.collator.Comparer()
	slices.SortFunc(matches, func(a, b match) int {
		if c := compare(a.key, b.key); c != 0 {
			return c
		}
		return strings.Compare(a.attendee.ID, b.attendee.ID)
	})

	start, end := q.Bounds(len(matches))
	data := make([]*domain.Attendee, 0, end-start)
	for _, m := range matches[start:end] {
		data = append(data, m.attendee)
	}
	return &domain.AttendeePage{
		Data:  data,
		Page:  q.Page,
		Limit: q.PageSize,
		Total: len(matches),
	}, nil
}

func (s *attendeeService) CheckIn(ctx context.Context, eventID, attendeeID string) (*domain.CheckInResult, error) {
	if strings.TrimSpace(attendeeID) == "" {
		return nil, fmt.Errorf("%w: attendeeId is required", domain.ErrInvalidInput)
	}

	a, err := s.eventRepo.CheckIn(ctx, eventID, attendeeID, s.clock.Now())
	switch {
	case err == nil:
		s.observe(domain.CheckInCreated)
		return &domain.CheckInResult{AttendeeID: a.ID, CheckedInAt: *a.CheckedInAt}, nil
	case errors.Is(err, domain.ErrNotFound):
		s.observe(domain.CheckInUnknownEvent)
		return nil, domain.ErrNotFound
	case errors.Is(err, domain.ErrAttendeeNotInEvent):
		s.observe(domain.CheckInUnknownAttendee)
		return nil, err
	case errors.Is(err, domain.ErrAlreadyCheckedIn):
		s.observe(domain.CheckInConflict)
		return nil, err
	default:
		return nil, fmt.Errorf("check in: %w", err)
	}
}

func (s *attendeeService) observe(outcome string) {
	if s.observer != nil {
		s.observer.ObserveCheckIn(outcome)
	}
}
