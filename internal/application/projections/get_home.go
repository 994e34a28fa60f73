package projections

import (
	"context"
	"time"

	"clubsite/internal/domain/announcement"
	"clubsite/internal/domain/event"
)

// HomeAnnouncementStore defines the announcement store interface needed by the home projection.
type HomeAnnouncementStore interface {
	ListRecent(ctx context.Context, limit int) ([]announcement.Announcement, error)
}

// HomeEventStore defines the event store interface needed by the home projection.
type HomeEventStore interface {
	ListUpcoming(ctx context.Context, from time.Time, limit int) ([]event.Event, error)
}

// Home page shows the newest announcements and the next few events.
const (
	HomeAnnouncementLimit = 3
	HomeEventLimit        = 5
)

// GetHomeDeps holds dependencies for the home projection.
type GetHomeDeps struct {
	AnnouncementStore HomeAnnouncementStore
	EventStore        HomeEventStore
	Now               func() time.Time
}

// HomeResult carries the output of the home projection.
type HomeResult struct {
	Announcements  []announcement.Announcement
	UpcomingEvents []event.Event
}

// GetHome collects the home page content.
// POST: Announcements are newest first; events are today or later, soonest
// first
func GetHome(ctx context.Context, deps GetHomeDeps) (HomeResult, error) {
	announcements, err := deps.AnnouncementStore.ListRecent(ctx, HomeAnnouncementLimit)
	if err != nil {
		return HomeResult{}, err
	}

	now := deps.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	events, err := deps.EventStore.ListUpcoming(ctx, today, HomeEventLimit)
	if err != nil {
		return HomeResult{}, err
	}

	return HomeResult{Announcements: announcements, UpcomingEvents: events}, nil
}
