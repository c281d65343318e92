package product

import (
	"context"

	"shopfront/internal/domain"
)

// Repository exposes catalog lookups plus the upsert used by import
// tooling. The lookup methods filter on is_active; an inactive product
// behaves exactly like a missing one. The cart and checkout services
// consume only the read side through their own narrow interfaces.
type Repository interface {
	FindActiveByIDs(ctx context.Context, ids []int64) ([]domain.Product, error)
	GetActiveByID(ctx context.Context, id int64) (*domain.Product, error)
	Upsert(ctx context.Context, product domain.Product) (*domain.Product, error)
}
