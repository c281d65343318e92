package order

import (
	"context"

	"shopfront/internal/domain"
	"github.com/shopspring/decimal"
)

// CreateOrderInput carries everything needed to materialize an order and
// its frozen item snapshots in one transaction.
type CreateOrderInput struct {
	UserID     *int64
	FullName   string
	Email      string
	Address    string
	City       string
	PostalCode string
	Country    string
	Subtotal   decimal.Decimal
	Shipping   decimal.Decimal
	Tax        decimal.Decimal
	Total      decimal.Decimal
	Items      []CreateItemInput
}

// CreateItemInput is one frozen line snapshot.
type CreateItemInput struct {
	ProductID *int64
	Name      string
	UnitPrice decimal.Decimal
	Quantity  int
}

type Repository interface {
	Create(ctx context.Context, in CreateOrderInput) (*domain.Order, error)
	GetByID(ctx context.Context, id int64) (*domain.Order, error)
}
