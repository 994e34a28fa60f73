package event

import (
	"errors"
	"strings"
	"time"
)

// DateLayout is the storage and form format for event dates.
const DateLayout = "2006-01-02"

// MaxTitleLength caps the user-editable title field.
const MaxTitleLength = 200

// Domain errors
var (
	ErrEmptyTitle   = errors.New("event title cannot be empty")
	ErrTitleTooLong = errors.New("event title cannot exceed 200 characters")
	ErrMissingDate  = errors.New("event date is required")
)

// Event is a club event with a calendar date and optional poster upload.
// Time is free text ("18:00", "6pm onwards") rather than a parsed value.
// Poster holds the stored filename of an uploaded poster, empty when none.
type Event struct {
	ID          int64
	Title       string
	Description string
	Date        time.Time
	Time        string
	Poster      string
	CreatedAt   time.Time
}

// Validate checks if the Event has valid data.
// PRE: Event struct is populated
// POST: Returns nil if valid, error otherwise
func (e *Event) Validate() error {
	if strings.TrimSpace(e.Title) == "" {
		return ErrEmptyTitle
	}
	if len(e.Title) > MaxTitleLength {
		return ErrTitleTooLong
	}
	if e.Date.IsZero() {
		return ErrMissingDate
	}
	return nil
}

// IsUpcoming reports whether the event's date is on or after the given day.
// PRE: now is the current time
// POST: true when Date >= start of now's day
func (e *Event) IsUpcoming(now time.Time) bool {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return !e.Date.Before(today)
}
