package orchestrators

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"time"

	"clubsite/internal/domain/event"
)

// EventStoreForWrite defines the store interface needed by the event orchestrators.
type EventStoreForWrite interface {
	Create(ctx context.Context, e event.Event) (int64, error)
	GetByID(ctx context.Context, id int64) (event.Event, error)
	Update(ctx context.Context, e event.Event) error
	Delete(ctx context.Context, id int64) error
}

// MediaStore defines the file storage interface needed by upload orchestrators.
type MediaStore interface {
	// Save stores the file under a generated unique name and returns it.
	Save(filename string, r io.Reader) (string, error)
	// Remove deletes a stored file. Removing the empty name is a no-op.
	Remove(filename string) error
}

// FileUpload is one submitted file, decoupled from multipart parsing.
type FileUpload struct {
	Filename string
	Reader   io.Reader
}

var ErrInvalidEventDate = errors.New("event date must be in YYYY-MM-DD format")

// AddEventInput carries input for the add-event orchestrator.
type AddEventInput struct {
	Title       string
	Description string
	Date        string // YYYY-MM-DD
	Time        string // free text, e.g. "6:00 PM"
	Poster      *FileUpload
}

// AddEventDeps holds dependencies for AddEvent.
type AddEventDeps struct {
	EventStore EventStoreForWrite
	Media      MediaStore
	Now        func() time.Time
}

// ExecuteAddEvent validates and persists a new event with an optional poster.
// PRE: Input fields come from a submitted form
// POST: On success the event row exists and any poster file is on disk
func ExecuteAddEvent(ctx context.Context, input AddEventInput, deps AddEventDeps) (int64, error) {
	date, err := time.Parse(event.DateLayout, input.Date)
	if err != nil {
		return 0, ErrInvalidEventDate
	}

	e := event.Event{
		Title:       input.Title,
		Description: input.Description,
		Date:        date,
		Time:        input.Time,
		CreatedAt:   deps.Now(),
	}
	if err := e.Validate(); err != nil {
		return 0, err
	}

	if input.Poster != nil {
		stored, err := deps.Media.Save(input.Poster.Filename, input.Poster.Reader)
		if err != nil {
			return 0, err
		}
		e.Poster = stored
	}

	id, err := deps.EventStore.Create(ctx, e)
	if err != nil {
		removeStoredFile(deps.Media, e.Poster)
		return 0, err
	}

	slog.Info("event_created", "id", id, "title", e.Title, "date", input.Date)
	return id, nil
}

// EditEventInput carries input for the edit-event orchestrator.
type EditEventInput struct {
	ID          int64
	Title       string
	Description string
	Date        string
	Time        string
	// Poster, when set, replaces the existing poster file.
	Poster *FileUpload
}

// EditEventDeps holds dependencies for EditEvent.
type EditEventDeps struct {
	EventStore EventStoreForWrite
	Media      MediaStore
}

// ExecuteEditEvent overwrites every editable field of an existing event.
// A replaced poster's old file stays on disk; rows reference files by name
// and nothing else garbage-collects them.
// POST: On success the row reflects the input
func ExecuteEditEvent(ctx context.Context, input EditEventInput, deps EditEventDeps) error {
	existing, err := deps.EventStore.GetByID(ctx, input.ID)
	if err != nil {
		return err
	}

	date, err := time.Parse(event.DateLayout, input.Date)
	if err != nil {
		return ErrInvalidEventDate
	}

	updated := existing
	updated.Title = input.Title
	updated.Description = input.Description
	updated.Date = date
	updated.Time = input.Time
	if err := updated.Validate(); err != nil {
		return err
	}

	if input.Poster != nil {
		stored, err := deps.Media.Save(input.Poster.Filename, input.Poster.Reader)
		if err != nil {
			return err
		}
		updated.Poster = stored
	}

	if err := deps.EventStore.Update(ctx, updated); err != nil {
		if input.Poster != nil {
			removeStoredFile(deps.Media, updated.Poster)
		}
		return err
	}

	slog.Info("event_updated", "id", input.ID, "title", updated.Title)
	return nil
}

// DeleteEventInput carries input for the delete-event orchestrator.
type DeleteEventInput struct {
	ID int64
}

// DeleteEventDeps holds dependencies for DeleteEvent.
type DeleteEventDeps struct {
	EventStore EventStoreForWrite
	Media      MediaStore
}

// ExecuteDeleteEvent removes an event and its poster file.
// POST: The row is gone; poster removal is best effort and never fails the
// operation
func ExecuteDeleteEvent(ctx context.Context, input DeleteEventInput, deps DeleteEventDeps) error {
	existing, err := deps.EventStore.GetByID(ctx, input.ID)
	if err != nil {
		return err
	}
	if err := deps.EventStore.Delete(ctx, input.ID); err != nil {
		return err
	}
	removeStoredFile(deps.Media, existing.Poster)
	slog.Info("event_deleted", "id", input.ID, "title", existing.Title)
	return nil
}

// removeStoredFile deletes a stored file, logging instead of failing.
// The database is the source of truth; an orphaned file is acceptable.
func removeStoredFile(media MediaStore, filename string) {
	if filename == "" {
		return
	}
	if err := media.Remove(filename); err != nil {
		slog.Warn("media_remove_failed", "filename", filename, "error", err.Error())
	}
}
