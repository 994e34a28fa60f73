package orchestrators

import (
	"context"
	"fmt"
	"html"
	"log/slog"
	"time"

	"clubsite/internal/adapters/email"
	"clubsite/internal/domain/contact"
)

// ContactStoreForWrite defines the store interface needed by SubmitContact.
type ContactStoreForWrite interface {
	Create(ctx context.Context, m contact.Message) (int64, error)
}

// SubmitContactInput carries input for the contact orchestrator.
type SubmitContactInput struct {
	Name    string
	Email   string
	Message string
}

// SubmitContactDeps holds dependencies for SubmitContact.
type SubmitContactDeps struct {
	ContactStore ContactStoreForWrite
	Now          func() time.Time

	// EmailSender, when set, notifies NotifyTo about the submission.
	// A send failure is logged and never surfaces to the visitor.
	EmailSender email.Sender
	FromAddress string
	NotifyTo    string
}

// ExecuteSubmitContact validates and persists a contact message, then
// notifies the club address best effort.
// POST: On success the message row exists regardless of email outcome
func ExecuteSubmitContact(ctx context.Context, input SubmitContactInput, deps SubmitContactDeps) (int64, error) {
	m := contact.Message{
		Name:      input.Name,
		Email:     input.Email,
		Message:   input.Message,
		CreatedAt: deps.Now(),
	}
	if err := m.Validate(); err != nil {
		return 0, err
	}

	id, err := deps.ContactStore.Create(ctx, m)
	if err != nil {
		return 0, err
	}
	slog.Info("contact_received", "id", id, "name", m.Name)

	if deps.EmailSender != nil && deps.NotifyTo != "" {
		req := email.SendRequest{
			To:      []string{deps.NotifyTo},
			From:    deps.FromAddress,
			Subject: fmt.Sprintf("New contact message from %s", m.Name),
			HTML: fmt.Sprintf("<p><strong>%s</strong> (%s) wrote:</p><p>%s</p>",
				html.EscapeString(m.Name), html.EscapeString(m.Email), html.EscapeString(m.Message)),
			ReplyTo: m.Email,
		}
		if _, err := deps.EmailSender.Send(ctx, req); err != nil {
			slog.Warn("contact_notify_failed", "id", id, "error", err.Error())
		}
	}

	return id, nil
}
