// Package session persists the raw cart per user session. The cart is a
// plain value: every mutation loads it, changes it, and writes the whole
// thing back. Concurrent tabs race on last-write-wins; that is accepted.
package session

import (
	"context"

	"shopfront/internal/domain"
)

// Store is the per-session key-value persistence for raw carts.
type Store interface {
	// Get returns the session's cart. A session with no cart yet
	// yields an empty cart, not an error.
	Get(ctx context.Context, sessionID string) (domain.RawCart, error)
	Save(ctx context.Context, sessionID string, cart domain.RawCart) error
	Clear(ctx context.Context, sessionID string) error
}
