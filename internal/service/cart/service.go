// Package cart implements the session-scoped cart mutation operations.
// Every operation loads the cart from the session store, applies one
// change, and writes the whole cart back in the same call; a mutated but
// unpersisted cart is never a valid intermediate state.
package cart

import (
	"context"
	"io"
	"log"

	"shopfront/internal/domain"
	"shopfront/internal/service/pricing"
	"shopfront/internal/session"
)

type Service struct {
	store   session.Store
	catalog catalogRepo
	logger  *log.Logger
}

type catalogRepo interface {
	GetActiveByID(ctx context.Context, id int64) (*domain.Product, error)
	FindActiveByIDs(ctx context.Context, ids []int64) ([]domain.Product, error)
}

func New(store session.Store, catalog catalogRepo, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Service{store: store, catalog: catalog, logger: logger}
}

// Priced loads the session's raw cart and runs it through the pricing
// engine. Stale entries are excluded from the result but left in the
// stored cart; pricing never writes the session.
func (s *Service) Priced(ctx context.Context, sessionID string) (domain.PricedCart, error) {
	cart, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return domain.PricedCart{}, err
	}
	return pricing.Price(ctx, cart, s.catalog)
}

// Add puts a product into the cart, incrementing the stored quantity by
// max(quantity, 1). The product must exist and be active; a missing or
// inactive product surfaces domain.ErrNotFound and leaves the cart
// untouched.
func (s *Service) Add(ctx context.Context, sessionID string, productID int64, quantity int) (domain.RawCart, error) {
	if _, err := s.catalog.GetActiveByID(ctx, productID); err != nil {
		return nil, err
	}

	cart, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if quantity < 1 {
		quantity = 1
	}
	entry := cart[productID]
	entry.Quantity += quantity
	cart[productID] = entry

	if err := s.store.Save(ctx, sessionID, cart); err != nil {
		return nil, err
	}
	s.logger.Printf("cart: session=%s add product=%d qty=%d", sessionID, productID, entry.Quantity)
	return cart, nil
}

// SetQuantity overwrites the stored quantity verbatim; zero or negative
// removes the entry. A product id not present in the cart is a no-op.
func (s *Service) SetQuantity(ctx context.Context, sessionID string, productID int64, quantity int) (domain.RawCart, error) {
	cart, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if _, ok := cart[productID]; !ok {
		return cart, nil
	}

	if quantity <= 0 {
		delete(cart, productID)
	} else {
		cart[productID] = domain.CartEntry{Quantity: quantity}
	}

	if err := s.store.Save(ctx, sessionID, cart); err != nil {
		return nil, err
	}
	s.logger.Printf("cart: session=%s set product=%d qty=%d", sessionID, productID, quantity)
	return cart, nil
}

// Remove drops the entry; absent entries are a no-op.
func (s *Service) Remove(ctx context.Context, sessionID string, productID int64) (domain.RawCart, error) {
	cart, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if _, ok := cart[productID]; !ok {
		return cart, nil
	}
	delete(cart, productID)

	if err := s.store.Save(ctx, sessionID, cart); err != nil {
		return nil, err
	}
	s.logger.Printf("cart: session=%s remove product=%d", sessionID, productID)
	return cart, nil
}
