package domain

import (
	"context"
	"time"
)

// Event represents a scheduled event and the attendees expected at it.
type Event struct {
	ID        string      `json:"id" yaml:"id"`
	Title     string      `json:"title" yaml:"title"`
	StartsAt  time.Time   `json:"startsAt" yaml:"startsAt"`
	EndsAt    time.Time   `json:"endsAt" yaml:"endsAt"`
	Location  string      `json:"location" yaml:"location"`
	Attendees []*Attendee `json:"-" yaml:"attendees"`
}

// Stats summarizes attendance for an event. It is always computed on read.
// swagger:model Stats
type Stats struct {
	Total     int `json:"total"`
	CheckedIn int `json:"checkedIn"`
	Absent    int `json:"absent"`
}

// ComputeStats counts the attendees of e that have a check-in timestamp.
func (e *Event) ComputeStats() Stats {
	checkedIn := 0
	for _, a := range e.Attendees {
		if a.IsCheckedIn() {
			checkedIn++
		}
	}
	return Stats{
		Total:     len(e.Attendees),
		CheckedIn: checkedIn,
		Absent:    len(e.Attendees) - checkedIn,
	}
}

// EventSummary is the public shape of an event: its fields plus computed stats.
// swagger:model EventSummary
type EventSummary struct {
	ID       string    `json:"id"`
	Title    string    `json:"title"`
	StartsAt time.Time `json:"startsAt"`
	EndsAt   time.Time `json:"endsAt"`
	Location string    `json:"location"`
	Stats    Stats     `json:"stats"`
}

// NewEventSummary builds the summary of e.
func NewEventSummary(e *Event) *EventSummary {
	return &EventSummary{
		ID:       e.ID,
		Title:    e.Title,
		StartsAt: e.StartsAt,
		EndsAt:   e.EndsAt,
		Location: e.Location,
		Stats:    e.ComputeStats(),
	}
}

// EventRepository defines the interface for event storage.
// Returned events are snapshots; mutating them does not affect the store.
type EventRepository interface {
	List(ctx context.Context) ([]*Event, error)
	GetByID(ctx context.Context, id string) (*Event, error)
	// CheckIn sets the attendee's check-in time to at, atomically with the
	// check that it was not already set.
	CheckIn(ctx context.Context, eventID, attendeeID string, at time.Time) (*Attendee, error)
}

// EventService defines read operations over events.
type EventService interface {
	ListEvents(ctx context.Context) ([]*EventSummary, error)
	GetEvent(ctx context.Context, id string) (*EventSummary, error)
}
