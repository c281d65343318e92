package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order status values. Transitions past pending belong to fulfillment.
const (
	OrderStatusPending    = "pending"
	OrderStatusProcessing = "processing"
	OrderStatusShipped    = "shipped"
	OrderStatusDelivered  = "delivered"
	OrderStatusCancelled  = "cancelled"
)

// Order is the durable record of a completed checkout. The monetary
// totals are immutable after creation; only the fulfillment status moves.
type Order struct {
	ID         int64           `json:"id"`
	UserID     *int64          `json:"userId,omitempty"`
	Status     string          `json:"status"`
	FullName   string          `json:"fullName"`
	Email      string          `json:"email"`
	Address    string          `json:"address"`
	City       string          `json:"city"`
	PostalCode string          `json:"postalCode"`
	Country    string          `json:"country"`
	Subtotal   decimal.Decimal `json:"subtotal"`
	Shipping   decimal.Decimal `json:"shipping"`
	Tax        decimal.Decimal `json:"tax"`
	Total      decimal.Decimal `json:"total"`
	CreatedAt  time.Time       `json:"createdAt"`
	Items      []OrderItem     `json:"items,omitempty"`
}

// OrderItem is an immutable snapshot of a purchased line, decoupled from
// future product edits. ProductID is nil once the product is deleted.
type OrderItem struct {
	ID        int64           `json:"id"`
	OrderID   int64           `json:"orderId"`
	ProductID *int64          `json:"productId,omitempty"`
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
	Quantity  int             `json:"quantity"`
}
