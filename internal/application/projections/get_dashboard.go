package projections

import (
	"context"

	"clubsite/internal/domain/event"
)

// Counter is the count-only store view shared by the dashboard projection.
type Counter interface {
	Count(ctx context.Context) (int, error)
}

// DashboardEventStore defines the event store interface needed by the dashboard projection.
type DashboardEventStore interface {
	Counter
	ListByDate(ctx context.Context, descending bool) ([]event.Event, error)
}

// GetDashboardDeps holds dependencies for the dashboard projection.
type GetDashboardDeps struct {
	MemberStore       Counter
	EventStore        DashboardEventStore
	AnnouncementStore Counter
	GalleryStore      Counter
	ContactStore      Counter
}

// DashboardResult carries the output of the dashboard projection.
type DashboardResult struct {
	MemberCount       int
	EventCount        int
	AnnouncementCount int
	GalleryCount      int
	ContactCount      int

	// Events is the full list, soonest first, for the overview table.
	Events []event.Event
}

// GetDashboard collects the admin overview counts and event list.
func GetDashboard(ctx context.Context, deps GetDashboardDeps) (DashboardResult, error) {
	var result DashboardResult
	var err error

	if result.MemberCount, err = deps.MemberStore.Count(ctx); err != nil {
		return DashboardResult{}, err
	}
	if result.EventCount, err = deps.EventStore.Count(ctx); err != nil {
		return DashboardResult{}, err
	}
	if result.AnnouncementCount, err = deps.AnnouncementStore.Count(ctx); err != nil {
		return DashboardResult{}, err
	}
	if result.GalleryCount, err = deps.GalleryStore.Count(ctx); err != nil {
		return DashboardResult{}, err
	}
	if result.ContactCount, err = deps.ContactStore.Count(ctx); err != nil {
		return DashboardResult{}, err
	}

	if result.Events, err = deps.EventStore.ListByDate(ctx, false); err != nil {
		return DashboardResult{}, err
	}
	return result, nil
}
