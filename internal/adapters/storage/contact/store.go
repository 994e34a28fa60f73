package contact

import (
	"context"

	domain "clubsite/internal/domain/contact"
)

// Store persists contact Message state. Messages are append-only: there are
// no update or delete operations.
type Store interface {
	Create(ctx context.Context, m domain.Message) (int64, error)
	List(ctx context.Context) ([]domain.Message, error)
	Count(ctx context.Context) (int, error)
}
