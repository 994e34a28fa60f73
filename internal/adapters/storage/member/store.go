package member

import (
	"context"

	domain "clubsite/internal/domain/member"
)

// Store persists Member state.
type Store interface {
	Create(ctx context.Context, m domain.Member) (int64, error)
	GetByID(ctx context.Context, id int64) (domain.Member, error)
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context) ([]domain.Member, error)
	Count(ctx context.Context) (int, error)
}
