package member

import (
	"errors"
	"strings"
	"time"
)

// Max length constants for user-editable fields.
const (
	MaxNameLength = 120
	MaxRoleLength = 120
)

// Domain errors
var (
	ErrEmptyName   = errors.New("member name cannot be empty")
	ErrNameTooLong = errors.New("member name cannot exceed 120 characters")
	ErrRoleTooLong = errors.New("member role cannot exceed 120 characters")
)

// Member is a club member shown on the About page.
// Photo holds the stored filename of an uploaded portrait, empty when none.
type Member struct {
	ID       int64
	Name     string
	Role     string
	Bio      string
	Photo    string
	JoinedAt time.Time
}

// Validate checks if the Member has valid data.
// PRE: Member struct is populated
// POST: Returns nil if valid, error otherwise
func (m *Member) Validate() error {
	if strings.TrimSpace(m.Name) == "" {
		return ErrEmptyName
	}
	if len(m.Name) > MaxNameLength {
		return ErrNameTooLong
	}
	if len(m.Role) > MaxRoleLength {
		return ErrRoleTooLong
	}
	return nil
}
