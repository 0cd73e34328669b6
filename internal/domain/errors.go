package domain

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrNotFound           = errors.New("not found")
	ErrInvalidInput       = errors.New("invalid input")
	ErrAttendeeNotInEvent = errors.New("attendee does not belong to event")
	ErrAlreadyCheckedIn   = errors.New("attendee already checked in")
	ErrInvalidSeed        = errors.New("invalid seed data")
)

// AlreadyCheckedInError reports a repeated check-in and carries the
// timestamp recorded by the first one.
type AlreadyCheckedInError struct {
	AttendeeID  string
	CheckedInAt time.Time
}

func (e *AlreadyCheckedInError) Error() string {
	return fmt.Sprintf("attendee %s already checked in at %s", e.AttendeeID, e.CheckedInAt.Format(time.RFC3339))
}

func (e *AlreadyCheckedInError) Is(target error) bool {
	return target == ErrAlreadyCheckedIn
}
