// Package ledger owns the authoritative in-memory expense collection. Every
// mutation is followed by a synchronous save through the injected store; all
// derived views delegate to the analytics package against the live collection
// and the active filter.
package ledger

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/pennywise-app/pennywise/internal/analytics"
	"github.com/pennywise-app/pennywise/internal/common"
	"github.com/pennywise-app/pennywise/internal/model"
	"github.com/pennywise-app/pennywise/internal/storage"
)

// Ledger is the collection manager. IDs are unique within the collection at
// all times; a mutex serializes mutations so a second caller cannot break
// that invariant.
type Ledger struct {
	store    storage.Store
	now      func() time.Time
	expenses []model.Expense
	filter   model.Filter
	mu       sync.Mutex
}

// Option configures a Ledger.
type Option func(*Ledger)

// WithClock overrides the time source. Tests use this to pin "now".
func WithClock(now func() time.Time) Option {
	return func(l *Ledger) {
		l.now = now
	}
}

// New creates a ledger backed by the given store and loads the persisted
// collection. A load failure degrades to an empty collection with a log; the
// user can keep working and the next successful save rewrites the store.
func New(ctx context.Context, store storage.Store, opts ...Option) *Ledger {
	l := &Ledger{
		store: store,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(l)
	}

	expenses, err := store.Load(ctx)
	if err != nil {
		common.LogError(err, "failed to load expenses, starting empty", nil)
		expenses = nil
	}
	l.expenses = expenses

	return l
}

// Add appends the expense and persists the collection. On a save failure the
// in-memory append is retained and the error returned; there is no rollback.
func (l *Ledger) Add(ctx context.Context, e model.Expense) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.expenses = append(l.expenses, e)
	if err := l.save(ctx); err != nil {
		return fmt.Errorf("expense kept in memory but not saved: %w", err)
	}
	return nil
}

// Update replaces the expense with the same ID in place, preserving the
// collection order. An unknown ID is a silent no-op and does not persist.
func (l *Ledger) Update(ctx context.Context, e model.Expense) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	for i := range l.expenses {
		if l.expenses[i].ID == e.ID {
			l.expenses[i] = e
			if err := l.save(ctx); err != nil {
				return fmt.Errorf("expense updated in memory but not saved: %w", err)
			}
			return nil
		}
	}
	return nil
}

// Delete removes every expense with the given ID. An absent ID is not an
// error; the collection is persisted either way.
func (l *Ledger) Delete(ctx context.Context, id string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	kept := l.expenses[:0]
	for _, e := range l.expenses {
		if e.ID != id {
			kept = append(kept, e)
		}
	}
	l.expenses = kept

	if err := l.save(ctx); err != nil {
		return fmt.Errorf("expense deleted in memory but not saved: %w", err)
	}
	return nil
}

// DeleteAll clears the collection and the persisted state together.
func (l *Ledger) DeleteAll(ctx context.Context) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.expenses = nil
	if err := l.store.Clear(ctx); err != nil {
		return fmt.Errorf("failed to clear store: %w", err)
	}
	return nil
}

func (l *Ledger) save(ctx context.Context) error {
	if err := l.store.Save(ctx, l.expenses); err != nil {
		common.LogError(err, "failed to save expenses", common.Fields{"count": len(l.expenses)})
		return err
	}
	return nil
}

// Expenses returns a copy of the full collection in insertion order.
func (l *Ledger) Expenses() []model.Expense {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]model.Expense, len(l.expenses))
	copy(out, l.expenses)
	return out
}

// SetFilter replaces the active filter.
func (l *Ledger) SetFilter(f model.Filter) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.filter = f
}

// Filter returns the active filter.
func (l *Ledger) Filter() model.Filter {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.filter
}

// ClearFilter resets the filter to the match-everything default.
func (l *Ledger) ClearFilter() {
	l.SetFilter(model.Filter{})
}

// SetDateFilter sets the filter's date bounds to the given period preset,
// leaving the search text and category criteria untouched.
func (l *Ledger) SetDateFilter(p model.Period) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.filter.StartDate, l.filter.EndDate = model.PeriodRange(p, l.now())
}

// FilteredExpenses returns the expenses matching the active filter, newest
// first.
func (l *Ledger) FilteredExpenses() []model.Expense {
	return analytics.FilteredSorted(l.Expenses(), l.Filter())
}

// TotalExpenses sums the filtered view.
func (l *Ledger) TotalExpenses() float64 {
	return analytics.Total(l.FilteredExpenses())
}

// MonthlyTotal sums the current calendar month over the full collection,
// regardless of the active filter.
func (l *Ledger) MonthlyTotal() float64 {
	return analytics.MonthlyTotal(l.Expenses(), l.now())
}

// CategoryBreakdown aggregates the filtered view per category.
func (l *Ledger) CategoryBreakdown() []analytics.CategoryTotal {
	return analytics.CategoryBreakdown(l.FilteredExpenses())
}

// TopCategory returns the largest breakdown entry, if any.
func (l *Ledger) TopCategory() (analytics.CategoryTotal, bool) {
	return analytics.TopCategory(l.FilteredExpenses())
}

// RecentExpenses returns the newest few filtered expenses.
func (l *Ledger) RecentExpenses() []model.Expense {
	return analytics.Recent(l.FilteredExpenses())
}

// DailyAverage returns the filtered total averaged over the filtered span.
func (l *Ledger) DailyAverage() float64 {
	return analytics.DailyAverage(l.FilteredExpenses())
}

// MonthlyExpensesByCategory returns the six-month per-category series over
// the full collection.
func (l *Ledger) MonthlyExpensesByCategory() map[model.Category][]float64 {
	return analytics.MonthlyByCategorySeries(l.Expenses(), l.now())
}
