package storage

import (
	"context"
	"sync"

	"github.com/pennywise-app/pennywise/internal/model"
)

// MemoryStore implements Store entirely in memory. It backs the ledger in
// tests and in throwaway sessions run with --storage memory.
type MemoryStore struct {
	saveErr  error
	expenses []model.Expense
	mu       sync.Mutex
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// FailSaves makes every subsequent Save return err. Pass nil to heal the
// store. Used by tests exercising the no-rollback-on-save-failure path.
func (s *MemoryStore) FailSaves(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.saveErr = err
}

// Save stores a copy of the collection.
func (s *MemoryStore) Save(_ context.Context, expenses []model.Expense) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.saveErr != nil {
		return s.saveErr
	}
	s.expenses = make([]model.Expense, len(expenses))
	copy(s.expenses, expenses)
	return nil
}

// Load returns a copy of the stored collection.
func (s *MemoryStore) Load(_ context.Context) ([]model.Expense, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Expense, len(s.expenses))
	copy(out, s.expenses)
	return out, nil
}

// Clear drops the stored collection.
func (s *MemoryStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.expenses = nil
	return nil
}

// Close is a no-op.
func (s *MemoryStore) Close() error {
	return nil
}
