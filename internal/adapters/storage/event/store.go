package event

import (
	"context"
	"time"

	domain "clubsite/internal/domain/event"
)

// Store persists Event state.
type Store interface {
	Create(ctx context.Context, e domain.Event) (int64, error)
	GetByID(ctx context.Context, id int64) (domain.Event, error)
	Update(ctx context.Context, e domain.Event) error
	Delete(ctx context.Context, id int64) error
	ListByDate(ctx context.Context, descending bool) ([]domain.Event, error)
	ListUpcoming(ctx context.Context, from time.Time, limit int) ([]domain.Event, error)
	Count(ctx context.Context) (int, error)
}
