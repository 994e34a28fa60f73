package announcement

import (
	"context"

	domain "clubsite/internal/domain/announcement"
)

// Store persists Announcement state.
type Store interface {
	Create(ctx context.Context, a domain.Announcement) (int64, error)
	// ListRecent returns announcements most recent first; limit <= 0 means all.
	ListRecent(ctx context.Context, limit int) ([]domain.Announcement, error)
	Count(ctx context.Context) (int, error)
}
