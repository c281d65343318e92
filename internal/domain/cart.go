package domain

import "github.com/shopspring/decimal"

// CartEntry holds the requested quantity for one product in a raw cart.
type CartEntry struct {
	Quantity int `json:"quantity"`
}

// RawCart is the session-held, pre-pricing cart: product id -> entry.
// JSON encoding renders the integer keys as strings and parses them back
// once at the boundary; downstream code only ever sees int64 keys.
type RawCart map[int64]CartEntry

// LineItem is one product's priced line within a priced cart. It is
// derived from the raw cart and the live catalog; it is never persisted
// before checkout freezes it into an OrderItem.
type LineItem struct {
	Product   Product         `json:"product"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
	LineTotal decimal.Decimal `json:"lineTotal"`
}

// PricedCart is a fully computed cart snapshot ready for display or
// checkout. All monetary fields are rounded half-up to two places.
type PricedCart struct {
	Items    []LineItem      `json:"items"`
	Subtotal decimal.Decimal `json:"subtotal"`
	Shipping decimal.Decimal `json:"shipping"`
	Tax      decimal.Decimal `json:"tax"`
	Total    decimal.Decimal `json:"total"`
}

// IsEmpty reports whether pricing produced no line items.
func (c PricedCart) IsEmpty() bool {
	return len(c.Items) == 0
}
