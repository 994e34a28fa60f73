package member

import (
	"strings"
	"testing"
)

// TestValidate_Valid tests a fully populated member passes validation.
func TestValidate_Valid(t *testing.T) {
	m := Member{Name: "Priya Raman", Role: "Secretary", Bio: "Founding member."}
	if err := m.Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

// TestValidate_OnlyNameRequired tests that role and bio are optional.
func TestValidate_OnlyNameRequired(t *testing.T) {
	m := Member{Name: "Arun"}
	if err := m.Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

// TestValidate_EmptyName tests that a blank name is rejected.
func TestValidate_EmptyName(t *testing.T) {
	m := Member{Name: "   "}
	if err := m.Validate(); err != ErrEmptyName {
		t.Errorf("expected ErrEmptyName, got %v", err)
	}
}

// TestValidate_NameTooLong tests the name length cap.
func TestValidate_NameTooLong(t *testing.T) {
	m := Member{Name: strings.Repeat("a", MaxNameLength+1)}
	if err := m.Validate(); err != ErrNameTooLong {
		t.Errorf("expected ErrNameTooLong, got %v", err)
	}
}

// TestValidate_RoleTooLong tests the role length cap.
func TestValidate_RoleTooLong(t *testing.T) {
	m := Member{Name: "Arun", Role: strings.Repeat("r", MaxRoleLength+1)}
	if err := m.Validate(); err != ErrRoleTooLong {
		t.Errorf("expected ErrRoleTooLong, got %v", err)
	}
}
