// Package storage provides the persistence collaborators for the expense
// collection. Every backend persists the collection as a whole snapshot:
// Save replaces the stored set, Load returns it in its saved order.
package storage

import (
	"context"

	"github.com/pennywise-app/pennywise/internal/model"
)

// Store is the persistence contract the ledger depends on. Implementations
// must preserve record order and every field across a Save/Load round trip.
// Load treats missing or corrupt prior data as an empty collection rather
// than an error; corruption is the store's problem to log, not the caller's.
type Store interface {
	Save(ctx context.Context, expenses []model.Expense) error
	Load(ctx context.Context) ([]model.Expense, error)
	Clear(ctx context.Context) error
	Close() error
}
