package domain

import (
	"context"
	"time"
)

// Attendee is a person expected at an event.
// swagger:model Attendee
type Attendee struct {
	ID          string     `json:"id" yaml:"id"`
	Name        string     `json:"name" yaml:"name"`
	Email       string     `json:"email" yaml:"email"`
	Document    string     `json:"document" yaml:"document"`
	CheckedInAt *time.Time `json:"checkedInAt" yaml:"checkedInAt,omitempty"`
}

// IsCheckedIn reports whether the attendee has a check-in timestamp.
func (a *Attendee) IsCheckedIn() bool {
	return a.CheckedInAt != nil
}

// Clone returns a deep copy of a.
func (a *Attendee) Clone() *Attendee {
	c := *a
	if a.CheckedInAt != nil {
		t := *a.CheckedInAt
		c.CheckedInAt = &t
	}
	return &c
}

// AttendeeQuery holds the search and pagination inputs for listing attendees.
type AttendeeQuery struct {
	Search string
	PaginationParams
}

// AttendeePage is one page of attendees matching a query.
// Total is the number of matches before pagination.
// swagger:model AttendeePage
type AttendeePage struct {
	Data  []*Attendee `json:"data"`
	Page  int         `json:"page"`
	Limit int         `json:"limit"`
	Total int         `json:"total"`
}

// CheckInResult is returned by a successful check-in.
// swagger:model CheckInResult
type CheckInResult struct {
	AttendeeID  string    `json:"attendeeId"`
	CheckedInAt time.Time `json:"checkedInAt"`
}

// CheckInObserver receives the outcome of every check-in attempt.
type CheckInObserver interface {
	ObserveCheckIn(outcome string)
}

// Check-in outcomes reported to a CheckInObserver.
const (
	CheckInCreated         = "created"
	CheckInConflict        = "conflict"
	CheckInUnknownAttendee = "unknown_attendee"
	CheckInUnknownEvent    = "unknown_event"
)

// AttendeeService defines attendee search and check-in.
type AttendeeService interface {
	SearchAttendees(ctx context.Context, eventID string, q AttendeeQuery) (*AttendeePage, error)
	// CheckIn marks the attendee present. A repeated call returns an
	// *AlreadyCheckedInError carrying the original timestamp.
	CheckIn(ctx context.Context, eventID, attendeeID string) (*CheckInResult, error)
}
