package storage

import (
	"context"
	"sync"

	"cart-service/internal/models"
)

// MemoryStorage is an in-process CartStorage. Used in tests and as a
// fallback when Redis is unavailable at startup.
type MemoryStorage struct {
	mu       sync.Mutex
	snapshot models.CartState
	has      bool

	// Optional failure injection for tests.
	GetErr error
	SetErr error

	writes []models.CartState
}

// NewMemoryStorage creates an empty in-memory storage with no snapshot.
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{}
}

// Seed installs a snapshot as if it had been persisted earlier.
func (s *MemoryStorage) Seed(cart models.CartState) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshot = cart.Clone()
	s.has = true
}

func (s *MemoryStorage) GetCart(ctx context.Context) (models.CartState, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.GetErr != nil {
		return nil, false, s.GetErr
	}
	if !s.has || !validSnapshot(s.snapshot) {
		return nil, false, nil
	}
	return s.snapshot.Clone(), true, nil
}

func (s *MemoryStorage) SetCart(ctx context.Context, cart models.CartState) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.SetErr != nil {
		return s.SetErr
	}
	s.snapshot = cart.Clone()
	s.has = true
	s.writes = append(s.writes, cart.Clone())
	return nil
}

// Writes returns every SetCart payload in call order.
func (s *MemoryStorage) Writes() []models.CartState {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.CartState, len(s.writes))
	copy(out, s.writes)
	return out
}
