package gallery

import (
	"context"

	domain "clubsite/internal/domain/gallery"
)

// Store persists gallery Image state.
type Store interface {
	Create(ctx context.Context, i domain.Image) (int64, error)
	GetByID(ctx context.Context, id int64) (domain.Image, error)
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context) ([]domain.Image, error)
	ListByCategory(ctx context.Context, category string) ([]domain.Image, error)
	Albums(ctx context.Context) ([]domain.Album, error)
	Count(ctx context.Context) (int, error)
}
