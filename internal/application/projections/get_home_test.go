package projections

import (
	"context"
	"testing"
	"time"

	"clubsite/internal/domain/announcement"
	"clubsite/internal/domain/event"
)

type stubAnnouncements struct {
	items    []announcement.Announcement
	gotLimit int
}

func (s *stubAnnouncements) ListRecent(_ context.Context, limit int) ([]announcement.Announcement, error) {
	s.gotLimit = limit
	if limit > 0 && limit < len(s.items) {
		return s.items[:limit], nil
	}
	return s.items, nil
}

type stubEvents struct {
	items   []event.Event
	gotFrom time.Time
}

func (s *stubEvents) ListUpcoming(_ context.Context, from time.Time, limit int) ([]event.Event, error) {
	s.gotFrom = from
	if limit > 0 && limit < len(s.items) {
		return s.items[:limit], nil
	}
	return s.items, nil
}

// TestGetHome_Limits tests that the home page asks for 3 announcements and
// 5 events.
func TestGetHome_Limits(t *testing.T) {
	ann := &stubAnnouncements{items: make([]announcement.Announcement, 10)}
	ev := &stubEvents{items: make([]event.Event, 10)}
	now := func() time.Time { return time.Date(2026, 3, 1, 15, 30, 0, 0, time.UTC) }

	result, err := GetHome(context.Background(), GetHomeDeps{
		AnnouncementStore: ann,
		EventStore:        ev,
		Now:               now,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Announcements) != 3 {
		t.Errorf("announcements = %d, want 3", len(result.Announcements))
	}
	if len(result.UpcomingEvents) != 5 {
		t.Errorf("events = %d, want 5", len(result.UpcomingEvents))
	}
}

// TestGetHome_FromStartOfToday tests that a same-day event still counts as
// upcoming regardless of the current clock time.
func TestGetHome_FromStartOfToday(t *testing.T) {
	ev := &stubEvents{}
	now := func() time.Time { return time.Date(2026, 3, 1, 23, 45, 0, 0, time.UTC) }

	_, err := GetHome(context.Background(), GetHomeDeps{
		AnnouncementStore: &stubAnnouncements{},
		EventStore:        ev,
		Now:               now,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	if !ev.gotFrom.Equal(want) {
		t.Errorf("from = %v, want start of today %v", ev.gotFrom, want)
	}
}
