package session

import (
	"context"
	"sync"

	"shopfront/internal/domain"
)

// MemoryStore is an in-process Store used in tests and local runs
// without Redis.
type MemoryStore struct {
	mu    sync.RWMutex
	carts map[string]domain.RawCart
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{carts: make(map[string]domain.RawCart)}
}

func (s *MemoryStore) Get(_ context.Context, sessionID string) (domain.RawCart, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	cart, ok := s.carts[sessionID]
	if !ok {
		return domain.RawCart{}, nil
	}
	// Copy so callers never mutate the stored cart in place.
	out := make(domain.RawCart, len(cart))
	for id, entry := range cart {
		out[id] = entry
	}
	return out, nil
}

func (s *MemoryStore) Save(_ context.Context, sessionID string, cart domain.RawCart) error {
	stored := make(domain.RawCart, len(cart))
	for id, entry := range cart {
		stored[id] = entry
	}
	s.mu.Lock()
	s.carts[sessionID] = stored
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) Clear(_ context.Context, sessionID string) error {
	s.mu.Lock()
	delete(s.carts, sessionID)
	s.mu.Unlock()
	return nil
}
