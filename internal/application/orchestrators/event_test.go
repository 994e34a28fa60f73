package orchestrators

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"clubsite/internal/domain/event"
)

// mockEventStore implements EventStoreForWrite in memory.
type mockEventStore struct {
	events    map[int64]event.Event
	nextID    int64
	createErr error
	updateErr error
}

func newMockEventStore() *mockEventStore {
	return &mockEventStore{events: make(map[int64]event.Event), nextID: 1}
}

func (m *mockEventStore) Create(_ context.Context, e event.Event) (int64, error) {
	if m.createErr != nil {
		return 0, m.createErr
	}
	id := m.nextID
	m.nextID++
	e.ID = id
	m.events[id] = e
	return id, nil
}

func (m *mockEventStore) GetByID(_ context.Context, id int64) (event.Event, error) {
	e, ok := m.events[id]
	if !ok {
		return event.Event{}, sql.ErrNoRows
	}
	return e, nil
}

func (m *mockEventStore) Update(_ context.Context, e event.Event) error {
	if m.updateErr != nil {
		return m.updateErr
	}
	m.events[e.ID] = e
	return nil
}

func (m *mockEventStore) Delete(_ context.Context, id int64) error {
	delete(m.events, id)
	return nil
}

// TestExecuteAddEvent_Valid tests creating an event with a poster.
func TestExecuteAddEvent_Valid(t *testing.T) {
	store := newMockEventStore()
	media := &mockMedia{}
	id, err := ExecuteAddEvent(context.Background(), AddEventInput{
		Title:       "Annual Day",
		Description: "Cultural programs and dinner.",
		Date:        "2026-04-18",
		Time:        "6:00 PM",
		Poster:      upload("poster.png", "png-bytes"),
	}, AddEventDeps{EventStore: store, Media: media, Now: fixedNow})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	e := store.events[id]
	if e.Title != "Annual Day" {
		t.Errorf("title = %q", e.Title)
	}
	if got := e.Date.Format(event.DateLayout); got != "2026-04-18" {
		t.Errorf("date = %s", got)
	}
	if e.Poster == "" {
		t.Error("expected a stored poster filename")
	}
	if !e.CreatedAt.Equal(fixedTime) {
		t.Errorf("created at = %v", e.CreatedAt)
	}
}

// TestExecuteAddEvent_NoPoster tests that the poster is optional.
func TestExecuteAddEvent_NoPoster(t *testing.T) {
	store := newMockEventStore()
	id, err := ExecuteAddEvent(context.Background(), AddEventInput{
		Title: "Picnic",
		Date:  "2026-05-02",
	}, AddEventDeps{EventStore: store, Media: &mockMedia{}, Now: fixedNow})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if store.events[id].Poster != "" {
		t.Errorf("poster = %q, want empty", store.events[id].Poster)
	}
}

// TestExecuteAddEvent_BadDate tests rejection of a malformed date.
func TestExecuteAddEvent_BadDate(t *testing.T) {
	_, err := ExecuteAddEvent(context.Background(), AddEventInput{
		Title: "Picnic",
		Date:  "18/04/2026",
	}, AddEventDeps{EventStore: newMockEventStore(), Media: &mockMedia{}, Now: fixedNow})
	if !errors.Is(err, ErrInvalidEventDate) {
		t.Errorf("expected ErrInvalidEventDate, got %v", err)
	}
}

// TestExecuteAddEvent_EmptyTitle tests that domain validation runs.
func TestExecuteAddEvent_EmptyTitle(t *testing.T) {
	_, err := ExecuteAddEvent(context.Background(), AddEventInput{
		Date: "2026-04-18",
	}, AddEventDeps{EventStore: newMockEventStore(), Media: &mockMedia{}, Now: fixedNow})
	if !errors.Is(err, event.ErrEmptyTitle) {
		t.Errorf("expected ErrEmptyTitle, got %v", err)
	}
}

// TestExecuteAddEvent_CreateFails tests that a saved poster is cleaned up.
func TestExecuteAddEvent_CreateFails(t *testing.T) {
	store := newMockEventStore()
	store.createErr = errors.New("disk full")
	media := &mockMedia{}
	_, err := ExecuteAddEvent(context.Background(), AddEventInput{
		Title:  "Picnic",
		Date:   "2026-05-02",
		Poster: upload("poster.png", "png-bytes"),
	}, AddEventDeps{EventStore: store, Media: media, Now: fixedNow})
	if err == nil {
		t.Fatal("expected an error")
	}
	if len(media.removed) != 1 {
		t.Errorf("expected the orphaned poster to be removed, got %v", media.removed)
	}
}

// TestExecuteEditEvent_ReplacesPoster tests that a new poster evicts the old file.
func TestExecuteEditEvent_ReplacesPoster(t *testing.T) {
	store := newMockEventStore()
	store.events[1] = event.Event{
		ID:     1,
		Title:  "Annual Day",
		Date:   time.Date(2026, 4, 18, 0, 0, 0, 0, time.UTC),
		Poster: "old_poster.png",
	}
	media := &mockMedia{}

	err := ExecuteEditEvent(context.Background(), EditEventInput{
		ID:     1,
		Title:  "Annual Day 2026",
		Date:   "2026-04-19",
		Time:   "5:30 PM",
		Poster: upload("new.png", "png-bytes"),
	}, EditEventDeps{EventStore: store, Media: media})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	e := store.events[1]
	if e.Title != "Annual Day 2026" || e.Time != "5:30 PM" {
		t.Errorf("fields not overwritten: %+v", e)
	}
	if e.Poster == "old_poster.png" {
		t.Error("poster should have been replaced")
	}
	if len(media.removed) != 0 {
		t.Errorf("old poster file should stay on disk, got removals %v", media.removed)
	}
}

// TestExecuteEditEvent_KeepsPoster tests that no upload keeps the old file.
func TestExecuteEditEvent_KeepsPoster(t *testing.T) {
	store := newMockEventStore()
	store.events[1] = event.Event{
		ID:     1,
		Title:  "Annual Day",
		Date:   time.Date(2026, 4, 18, 0, 0, 0, 0, time.UTC),
		Poster: "old_poster.png",
	}
	media := &mockMedia{}

	err := ExecuteEditEvent(context.Background(), EditEventInput{
		ID:    1,
		Title: "Annual Day",
		Date:  "2026-04-18",
	}, EditEventDeps{EventStore: store, Media: media})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if store.events[1].Poster != "old_poster.png" {
		t.Errorf("poster = %q, want old_poster.png", store.events[1].Poster)
	}
	if len(media.removed) != 0 {
		t.Errorf("nothing should be removed, got %v", media.removed)
	}
}

// TestExecuteEditEvent_Missing tests editing an unknown id.
func TestExecuteEditEvent_Missing(t *testing.T) {
	err := ExecuteEditEvent(context.Background(), EditEventInput{
		ID:    42,
		Title: "Ghost",
		Date:  "2026-04-18",
	}, EditEventDeps{EventStore: newMockEventStore(), Media: &mockMedia{}})
	if !errors.Is(err, sql.ErrNoRows) {
		t.Errorf("expected sql.ErrNoRows, got %v", err)
	}
}

// TestExecuteDeleteEvent tests deletion including the poster file.
func TestExecuteDeleteEvent(t *testing.T) {
	store := newMockEventStore()
	store.events[1] = event.Event{ID: 1, Title: "Annual Day", Poster: "poster.png"}
	media := &mockMedia{}

	if err := ExecuteDeleteEvent(context.Background(), DeleteEventInput{ID: 1}, DeleteEventDeps{EventStore: store, Media: media}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := store.events[1]; ok {
		t.Error("event row should be gone")
	}
	if len(media.removed) != 1 || media.removed[0] != "poster.png" {
		t.Errorf("poster not removed: %v", media.removed)
	}
}
