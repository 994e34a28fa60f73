package announcement

import (
	"errors"
	"strings"
	"time"
)

// MaxTitleLength caps the user-editable title field.
const MaxTitleLength = 200

// Domain errors
var (
	ErrEmptyTitle   = errors.New("announcement title cannot be empty")
	ErrTitleTooLong = errors.New("announcement title cannot exceed 200 characters")
	ErrEmptyContent = errors.New("announcement content cannot be empty")
)

// Announcement is a club-wide notice shown on the home and announcements
// pages. Content supports Markdown formatting.
type Announcement struct {
	ID        int64
	Title     string
	Content   string
	CreatedAt time.Time
}

// Validate checks if the Announcement has valid data.
// PRE: Announcement struct is populated
// POST: Returns nil if valid, error otherwise
func (a *Announcement) Validate() error {
	if strings.TrimSpace(a.Title) == "" {
		return ErrEmptyTitle
	}
	if len(a.Title) > MaxTitleLength {
		return ErrTitleTooLong
	}
	if strings.TrimSpace(a.Content) == "" {
		return ErrEmptyContent
	}
	return nil
}
