package memory

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"eventcheckin/internal/domain"
)

// seedFile is the on-disk layout of a seed file.
type seedFile struct {
	Events []*domain.Event `yaml:"events"`
}

// LoadSeedFile reads events from a YAML file and validates them.
func LoadSeedFile(path string) ([]*domain.Event, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}
	var f seedFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("%w: decode %s: %v", domain.ErrInvalidSeed, path, err)
	}
	if err := ValidateEvents(f.Events); err != nil {
		return nil, err
	}
	return f.Events, nil
}

// ValidateEvents checks the identity invariants of a seed: non-empty ids,
// event ids unique across the set, attendee ids unique within their event,
// and time windows that do not end before they start. All problems are
// reported together.
func ValidateEvents(events []*domain.Event) error {
	var errs []error
	seenEvents := make(map[string]struct{}, len(events))
	for i, e := range events {
		if e == nil {
			errs = append(errs, fmt.Errorf("event #%d is empty", i))
			continue
		}
		if e.ID == "" {
			errs = append(errs, fmt.Errorf("event #%d has no id", i))
		} else if _, dup := seenEvents[e.ID]; dup {
			errs = append(errs, fmt.Errorf("duplicate event id %q", e.ID))
		}
		seenEvents[e.ID] = struct{}{}
		if e.EndsAt.Before(e.StartsAt) {
			errs = append(errs, fmt.Errorf("event %q ends before it starts", e.ID))
		}

		seenAttendees := make(map[string]struct{}, len(e.Attendees))
		for j, a := range e.Attendees {
			if a == nil {
				errs = append(errs, fmt.Errorf("event %q: attendee #%d is empty", e.ID, j))
				continue
			}
			if a.ID == "" {
				errs = append(errs, fmt.Errorf("event %q: attendee #%d has no id", e.ID, j))
				continue
			}
			if _, dup := seenAttendees[a.ID]; dup {
				errs = append(errs, fmt.Errorf("event %q: duplicate attendee id %q", e.ID, a.ID))
			}
			seenAttendees[a.ID] = struct{}{}
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", domain.ErrInvalidSeed, errors.Join(errs...))
	}
	return nil
}

// DefaultEvents returns the built-in data set used when no seed file is
// configured. Each call returns fresh values.
func DefaultEvents() []*domain.Event {
	at := func(s string) *time.Time {
		t, err := time.Parse(time.RFC3339, s)
		if err != nil {
			panic(err)
		}
		return &t
	}
	return []*domain.Event{
		{
			ID:       "evt_123",
			Title:    "Tech Conference 2025",
			StartsAt: *at("2025-03-10T09:00:00Z"),
			EndsAt:   *at("2025-03-10T18:00:00Z"),
			Location: "São Paulo Convention Center",
			Attendees: []*domain.Attendee{
				{ID: "att_001", Name: "Ana Silva", Email: "ana.silva@example.com", Document: "123.456.789-00"},
				{ID: "att_002", Name: "Bruno Costa", Email: "bruno.costa@example.com", Document: "987.654.321-00", CheckedInAt: at("2025-03-10T09:15:00Z")},
				{ID: "att_003", Name: "Carla Souza", Email: "carla.souza@example.com", Document: "456.789.123-00"},
			},
		},
		{
			ID:       "evt_456",
			Title:    "Go Meetup",
			StartsAt: *at("2025-04-02T19:00:00Z"),
			EndsAt:   *at("2025-04-02T22:00:00Z"),
			Location: "Rio de Janeiro Hub",
			Attendees: []*domain.Attendee{
				{ID: "att_101", Name: "José Almeida", Email: "jose.almeida@example.com", Document: "111.222.333-44"},
				{ID: "att_102", Name: "Mariana Rocha", Email: "mariana.rocha@example.com", Document: "555.666.777-88"},
				{ID: "att_103", Name: "Élodie Martin", Email: "elodie.martin@example.com", Document: "999.888.777-66", CheckedInAt: at("2025-04-02T19:05:00Z")},
			},
		},
	}
}
