package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is a read-only snapshot of a catalog item as seen by the cart
// and checkout core. The catalog owns the record; the core never writes it.
type Product struct {
	ID          int64           `json:"id"`
	Slug        string          `json:"slug"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Price       decimal.Decimal `json:"price"`
	IsActive    bool            `json:"isActive"`
	CreatedAt   time.Time       `json:"createdAt"`
}
