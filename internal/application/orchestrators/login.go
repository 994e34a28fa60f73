package orchestrators

import (
	"context"
	"errors"
	"log/slog"

	"golang.org/x/crypto/bcrypt"
)

// LoginInput carries input for the login orchestrator.
type LoginInput struct {
	Password string
}

// LoginDeps holds dependencies for Login.
type LoginDeps struct {
	// PasswordHash is the bcrypt hash of the shared admin password.
	PasswordHash []byte
}

var ErrInvalidPassword = errors.New("invalid password")

// ExecuteLogin checks the shared admin password against the stored hash.
// PRE: PasswordHash was produced by bcrypt at startup
// POST: Returns nil only when the password matches
func ExecuteLogin(ctx context.Context, input LoginInput, deps LoginDeps) error {
	if input.Password == "" {
		return ErrInvalidPassword
	}
	if err := bcrypt.CompareHashAndPassword(deps.PasswordHash, []byte(input.Password)); err != nil {
		slog.Info("auth_event", "event", "login_failed", "reason", "wrong_password")
		return ErrInvalidPassword
	}
	slog.Info("auth_event", "event", "login_success")
	return nil
}
