// Package pricing derives a priced cart snapshot from a raw session cart
// and the live catalog. It is a pure read: the raw cart is never
// rewritten, stale entries are simply priced around.
package pricing

import (
	"context"

	"shopfront/internal/domain"
	"shopfront/internal/money"
	"github.com/shopspring/decimal"
)

// Shipping and tax rules. A single free-shipping threshold on the
// subtotal and a flat tax rate; there are no tiers or per-category rules.
var (
	FreeShippingThreshold = decimal.NewFromInt(200)
	ShippingFee           = decimal.RequireFromString("9.00")
	TaxRate               = decimal.RequireFromString("0.09")
)

// ProductFinder is the catalog lookup capability pricing depends on.
// Implementations return only active products, in catalog order.
type ProductFinder interface {
	FindActiveByIDs(ctx context.Context, ids []int64) ([]domain.Product, error)
}

// Price computes the priced snapshot for a raw cart.
//
// Cart entries referencing missing or inactive products are silently
// excluded: a session cart may outlive the products in it. Entries whose
// stored quantity is not positive are excluded as well (they are
// reachable only through direct session writes, never through the
// mutation operations). Each aggregation step rounds half-up to two
// places before the next one.
func Price(ctx context.Context, cart domain.RawCart, catalog ProductFinder) (domain.PricedCart, error) {
	priced := domain.PricedCart{
		Subtotal: money.Zero(),
		Shipping: money.Zero(),
		Tax:      money.Zero(),
		Total:    money.Zero(),
	}
	if len(cart) == 0 {
		return priced, nil
	}

	ids := make([]int64, 0, len(cart))
	for id := range cart {
		ids = append(ids, id)
	}

	products, err := catalog.FindActiveByIDs(ctx, ids)
	if err != nil {
		return domain.PricedCart{}, err
	}

	subtotal := decimal.Zero
	for _, p := range products {
		qty := cart[p.ID].Quantity
		if qty <= 0 {
			continue
		}
		lineTotal := money.Round2(p.Price.Mul(decimal.NewFromInt(int64(qty))))
		subtotal = subtotal.Add(lineTotal)
		priced.Items = append(priced.Items, domain.LineItem{
			Product:   p,
			Quantity:  qty,
			UnitPrice: p.Price,
			LineTotal: lineTotal,
		})
	}

	priced.Subtotal = money.Round2(subtotal)
	if !priced.Subtotal.IsZero() {
		if priced.Subtotal.LessThan(FreeShippingThreshold) {
			priced.Shipping = ShippingFee
		}
		priced.Tax = money.Round2(priced.Subtotal.Mul(TaxRate))
	}
	priced.Total = money.Round2(priced.Subtotal.Add(priced.Shipping).Add(priced.Tax))

	return priced, nil
}
