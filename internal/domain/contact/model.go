package contact

import (
	"errors"
	"net/mail"
	"strings"
	"time"
)

// Max length constants for user-editable fields.
const (
	MaxNameLength  = 120
	MaxEmailLength = 120
)

// Domain errors
var (
	ErrEmptyName    = errors.New("name is required")
	ErrNameTooLong  = errors.New("name cannot exceed 120 characters")
	ErrEmptyEmail   = errors.New("email is required")
	ErrInvalidEmail = errors.New("email address is not valid")
	ErrEmptyMessage = errors.New("message is required")
)

// Message is a visitor-submitted contact message. Messages are immutable
// once created: there are no edit or delete routes.
type Message struct {
	ID        int64
	Name      string
	Email     string
	Message   string
	CreatedAt time.Time
}

// Validate checks if the Message has valid data.
// PRE: Message struct is populated
// POST: Returns nil if valid, error otherwise
func (m *Message) Validate() error {
	if strings.TrimSpace(m.Name) == "" {
		return ErrEmptyName
	}
	if len(m.Name) > MaxNameLength {
		return ErrNameTooLong
	}
	if strings.TrimSpace(m.Email) == "" {
		return ErrEmptyEmail
	}
	if len(m.Email) > MaxEmailLength {
		return ErrInvalidEmail
	}
	if addr, err := mail.ParseAddress(m.Email); err != nil || addr.Address != m.Email {
		return ErrInvalidEmail
	}
	if strings.TrimSpace(m.Message) == "" {
		return ErrEmptyMessage
	}
	return nil
}
