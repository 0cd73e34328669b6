package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"eventcheckin/internal/domain"
)

// eventRepository keeps events in process memory for the lifetime of the
// process. A single RWMutex guards every event; check-in holds the write lock
// across its read-compare-set so concurrent calls cannot both succeed.
type eventRepository struct {
	mu        sync.RWMutex
	events    []*domain.Event
	byID      map[string]*domain.Event
	attendees map[string]map[string]*domain.Attendee
}

// NewEventRepository validates events and returns a repository holding a
// private copy of them, in the given order.
func NewEventRepository(events []*domain.Event) (domain.EventRepository, error) {
	if err := ValidateEvents(events); err != nil {
		return nil, err
	}
	r := &eventRepository{
		events:    make([]*domain.Event, 0, len(events)),
		byID:      make(map[string]*domain.Event, len(events)),
		attendees: make(map[string]map[string]*domain.Attendee, len(events)),
	}
	for _, e := range events {
		c := cloneEvent(e)
		r.events = append(r.events, c)
		r.byID[c.ID] = c
		idx := make(map[string]*domain.Attendee, len(c.Attendees))
		for _, a := range c.Attendees {
			idx[a.ID] = a
		}
		r.attendees[c.ID] = idx
	}
	return r, nil
}

func (r *eventRepository) List(ctx context.Context) ([]*domain.Event, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*domain.Event, 0, len(r.events))
	for _, e := range r.events {
		out = append(out, cloneEvent(e))
	}
	return out, nil
}

func (r *eventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return cloneEvent(e), nil
}

func (r *eventRepository) CheckIn(ctx context.Context, eventID, attendeeID string, at time.Time) (*domain.Attendee, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	idx, ok := r.attendees[eventID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	a, ok := idx[attendeeID]
	if !ok {
		return nil, fmt.Errorf("%w: %s not in %s", domain.ErrAttendeeNotInEvent, attendeeID, eventID)
	}
	if a.CheckedInAt != nil {
		return nil, &domain.AlreadyCheckedInError{AttendeeID: a.ID, CheckedInAt: *a.CheckedInAt}
	}
	a.CheckedInAt = &at
	return a.Clone(), nil
}

func cloneEvent(e *domain.Event) *domain.Event {
	c := *e
	c.Attendees = make([]*domain.Attendee, 0, len(e.Attendees))
	for _, a := range e.Attendees {
		c.Attendees = append(c.Attendees, a.Clone())
	}
	return &c
}
