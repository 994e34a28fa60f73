package orchestrators

import (
	"context"
	"log/slog"
	"time"

	"clubsite/internal/domain/announcement"
)

// AnnouncementStoreForWrite defines the store interface needed by PublishAnnouncement.
type AnnouncementStoreForWrite interface {
	Create(ctx context.Context, a announcement.Announcement) (int64, error)
}

// PublishAnnouncementInput carries input for the publish orchestrator.
type PublishAnnouncementInput struct {
	Title   string
	Content string
}

// PublishAnnouncementDeps holds dependencies for PublishAnnouncement.
type PublishAnnouncementDeps struct {
	AnnouncementStore AnnouncementStoreForWrite
	Now               func() time.Time
}

// ExecutePublishAnnouncement validates and persists a new announcement.
// Announcements are append-only; there is no edit or delete.
func ExecutePublishAnnouncement(ctx context.Context, input PublishAnnouncementInput, deps PublishAnnouncementDeps) (int64, error) {
	a := announcement.Announcement{
		Title:     input.Title,
		Content:   input.Content,
		CreatedAt: deps.Now(),
	}
	if err := a.Validate(); err != nil {
		return 0, err
	}

	id, err := deps.AnnouncementStore.Create(ctx, a)
	if err != nil {
		return 0, err
	}

	slog.Info("announcement_published", "id", id, "title", a.Title)
	return id, nil
}
