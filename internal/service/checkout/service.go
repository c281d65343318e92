// Package checkout converts a session cart into a persisted order. The
// cart is always re-priced at checkout time; totals shown earlier in the
// session are never trusted.
package checkout

import (
	"context"
	"io"
	"log"

	"shopfront/internal/domain"
	orderrepo "shopfront/internal/repository/order"
	"shopfront/internal/service/pricing"
	"shopfront/internal/session"
)

type Service struct {
	store     session.Store
	catalog   pricing.ProductFinder
	orders    orderRepo
	validator *inputValidator
	logger    *log.Logger
}

type orderRepo interface {
	Create(ctx context.Context, in orderrepo.CreateOrderInput) (*domain.Order, error)
}

func New(store session.Store, catalog pricing.ProductFinder, orders orderRepo, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Service{
		store:     store,
		catalog:   catalog,
		orders:    orders,
		validator: newInputValidator(),
		logger:    logger,
	}
}

// Checkout re-prices the session cart and atomically materializes it
// into an order with frozen item snapshots. The order and every item are
// created in one transaction; on any failure nothing persists and the
// cart is preserved so the user can retry. The cart is cleared only
// after the order is durably committed.
func (s *Service) Checkout(ctx context.Context, sessionID string, in Input, userID *int64) (*domain.Order, error) {
	cart, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	priced, err := pricing.Price(ctx, cart, s.catalog)
	if err != nil {
		return nil, err
	}
	if priced.IsEmpty() {
		return nil, domain.ErrEmptyCart
	}

	in = in.normalized()
	if err := s.validator.validate(in); err != nil {
		return nil, err
	}

	create := orderrepo.CreateOrderInput{
		UserID:     userID,
		FullName:   in.FullName,
		Email:      in.Email,
		Address:    in.Address,
		City:       in.City,
		PostalCode: in.PostalCode,
		Country:    in.Country,
		Subtotal:   priced.Subtotal,
		Shipping:   priced.Shipping,
		Tax:        priced.Tax,
		Total:      priced.Total,
	}
	for _, item := range priced.Items {
		productID := item.Product.ID
		create.Items = append(create.Items, orderrepo.CreateItemInput{
			ProductID: &productID,
			Name:      item.Product.Name,
			UnitPrice: item.UnitPrice,
			Quantity:  item.Quantity,
		})
	}

	order, err := s.orders.Create(ctx, create)
	if err != nil {
		return nil, err
	}

	if err := s.store.Clear(ctx, sessionID); err != nil {
		// The order is already committed; a dangling cart is repriced
		// on next read, so log and move on.
		s.logger.Printf("checkout: session=%s order=%d cart clear failed: %v", sessionID, order.ID, err)
	}

	s.logger.Printf("checkout: session=%s created order=%d total=%s", sessionID, order.ID, order.Total.StringFixed(2))
	return order, nil
}
