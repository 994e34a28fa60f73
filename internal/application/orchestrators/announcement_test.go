package orchestrators

import (
	"context"
	"errors"
	"testing"

	"clubsite/internal/domain/announcement"
)

// mockAnnouncementStore implements AnnouncementStoreForWrite in memory.
type mockAnnouncementStore struct {
	published []announcement.Announcement
}

func (m *mockAnnouncementStore) Create(_ context.Context, a announcement.Announcement) (int64, error) {
	m.published = append(m.published, a)
	return int64(len(m.published)), nil
}

// TestExecutePublishAnnouncement_Valid tests the happy path.
func TestExecutePublishAnnouncement_Valid(t *testing.T) {
	store := &mockAnnouncementStore{}
	id, err := ExecutePublishAnnouncement(context.Background(), PublishAnnouncementInput{
		Title:   "Diwali celebration",
		Content: "Join us on **November 8** at the community hall.",
	}, PublishAnnouncementDeps{AnnouncementStore: store, Now: fixedNow})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != 1 {
		t.Errorf("id = %d, want 1", id)
	}
	a := store.published[0]
	if a.Title != "Diwali celebration" {
		t.Errorf("title = %q", a.Title)
	}
	if !a.CreatedAt.Equal(fixedTime) {
		t.Errorf("created at = %v", a.CreatedAt)
	}
}

// TestExecutePublishAnnouncement_EmptyContent tests that validation runs.
func TestExecutePublishAnnouncement_EmptyContent(t *testing.T) {
	_, err := ExecutePublishAnnouncement(context.Background(), PublishAnnouncementInput{
		Title: "Diwali celebration",
	}, PublishAnnouncementDeps{AnnouncementStore: &mockAnnouncementStore{}, Now: fixedNow})
	if !errors.Is(err, announcement.ErrEmptyContent) {
		t.Errorf("expected ErrEmptyContent, got %v", err)
	}
}
