package ledger

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pennywise-app/pennywise/internal/model"
	"github.com/pennywise-app/pennywise/internal/storage"
)

func newTestLedger(t *testing.T) (*Ledger, *storage.MemoryStore) {
	t.Helper()
	store := storage.NewMemoryStore()
	now := time.Date(2024, 1, 20, 10, 0, 0, 0, time.UTC)
	l := New(context.Background(), store, WithClock(func() time.Time { return now }))
	return l, store
}

func coffee(amount float64, day int) model.Expense {
	return model.NewExpense(amount, model.CategoryFood, "Coffee",
		time.Date(2024, 1, day, 9, 0, 0, 0, time.UTC))
}

func TestLedger_Add(t *testing.T) {
	ctx := context.Background()
	l, store := newTestLedger(t)

	e := coffee(4.50, 10)
	require.NoError(t, l.Add(ctx, e))

	require.Len(t, l.Expenses(), 1)
	assert.Equal(t, e.ID, l.Expenses()[0].ID)

	persisted, err := store.Load(ctx)
	require.NoError(t, err)
	require.Len(t, persisted, 1, "add must persist synchronously")
}

func TestLedger_Add_SaveFailureKeepsExpenseInMemory(t *testing.T) {
	ctx := context.Background()
	l, store := newTestLedger(t)

	saveErr := errors.New("disk full")
	store.FailSaves(saveErr)

	err := l.Add(ctx, coffee(4.50, 10))
	require.Error(t, err)
	assert.ErrorIs(t, err, saveErr)

	assert.Len(t, l.Expenses(), 1, "no rollback on save failure")
}

func TestLedger_Update(t *testing.T) {
	ctx := context.Background()
	l, _ := newTestLedger(t)

	first := coffee(4.50, 10)
	second := coffee(12.00, 11)
	require.NoError(t, l.Add(ctx, first))
	require.NoError(t, l.Add(ctx, second))

	updated := first
	updated.Amount = 6.75
	updated.Description = "Fancy coffee"
	require.NoError(t, l.Update(ctx, updated))

	got := l.Expenses()
	require.Len(t, got, 2)
	assert.Equal(t, first.ID, got[0].ID, "update preserves collection order")
	assert.InDelta(t, 6.75, got[0].Amount, 0.001)
	assert.Equal(t, "Fancy coffee", got[0].Description)
	assert.InDelta(t, 12.00, got[1].Amount, 0.001, "other records untouched")
}

func TestLedger_Update_UnknownIDIsSilentNoOp(t *testing.T) {
	ctx := context.Background()
	l, store := newTestLedger(t)

	require.NoError(t, l.Add(ctx, coffee(4.50, 10)))

	ghost := model.NewExpense(99, model.CategoryBills, "Ghost", time.Now())
	require.NoError(t, l.Update(ctx, ghost), "missing ID is not an error")

	require.Len(t, l.Expenses(), 1)

	persisted, err := store.Load(ctx)
	require.NoError(t, err)
	require.Len(t, persisted, 1)
	assert.InDelta(t, 4.50, persisted[0].Amount, 0.001, "no-op update does not rewrite the store")
}

func TestLedger_Delete(t *testing.T) {
	ctx := context.Background()
	l, store := newTestLedger(t)

	keep := coffee(4.50, 10)
	remove := coffee(9.00, 11)
	require.NoError(t, l.Add(ctx, keep))
	require.NoError(t, l.Add(ctx, remove))

	require.NoError(t, l.Delete(ctx, remove.ID))

	got := l.Expenses()
	require.Len(t, got, 1)
	assert.Equal(t, keep.ID, got[0].ID)

	require.NoError(t, l.Delete(ctx, "no-such-id"), "absent ID is not an error")

	persisted, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Len(t, persisted, 1)
}

func TestLedger_DeleteAll(t *testing.T) {
	ctx := context.Background()
	l, store := newTestLedger(t)

	require.NoError(t, l.Add(ctx, coffee(4.50, 10)))
	require.NoError(t, l.Add(ctx, coffee(9.00, 11)))

	require.NoError(t, l.DeleteAll(ctx))

	assert.Empty(t, l.Expenses())

	persisted, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, persisted, "store is cleared together with the collection")
}

func TestNew_LoadsPersistedCollection(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()

	e := coffee(4.50, 10)
	require.NoError(t, store.Save(ctx, []model.Expense{e}))

	l := New(ctx, store)
	require.Len(t, l.Expenses(), 1)
	assert.Equal(t, e.ID, l.Expenses()[0].ID)
}

func TestNew_LoadFailureDegradesToEmpty(t *testing.T) {
	l := New(context.Background(), failingLoadStore{})
	assert.Empty(t, l.Expenses())
}

// failingLoadStore errors on every Load to exercise the degrade path.
type failingLoadStore struct{}

func (failingLoadStore) Save(context.Context, []model.Expense) error { return nil }
func (failingLoadStore) Load(context.Context) ([]model.Expense, error) {
	return nil, errors.New("backend unavailable")
}
func (failingLoadStore) Clear(context.Context) error { return nil }
func (failingLoadStore) Close() error                { return nil }

func TestLedger_Filtering(t *testing.T) {
	ctx := context.Background()
	l, _ := newTestLedger(t)

	food1 := model.NewExpense(50, model.CategoryFood, "Groceries",
		time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC))
	food2 := model.NewExpense(30, model.CategoryFood, "Takeout",
		time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC))
	transit := model.NewExpense(20, model.CategoryTransportation, "Bus pass",
		time.Date(2024, 1, 12, 0, 0, 0, 0, time.UTC))
	for _, e := range []model.Expense{food1, food2, transit} {
		require.NoError(t, l.Add(ctx, e))
	}

	// Default filter: everything, newest first.
	assert.InDelta(t, 100.0, l.TotalExpenses(), 0.001)
	filtered := l.FilteredExpenses()
	require.Len(t, filtered, 3)
	assert.Equal(t, food2.ID, filtered[0].ID)

	// Category filter narrows the view.
	transportation := model.CategoryTransportation
	l.SetFilter(model.Filter{Category: &transportation})
	filtered = l.FilteredExpenses()
	require.Len(t, filtered, 1)
	assert.Equal(t, transit.ID, filtered[0].ID)
	assert.InDelta(t, 20.0, l.TotalExpenses(), 0.001)

	// Monthly total ignores the filter.
	assert.InDelta(t, 100.0, l.MonthlyTotal(), 0.001)

	// ClearFilter restores the identity filter.
	l.ClearFilter()
	assert.False(t, l.Filter().IsActive())
	assert.InDelta(t, 100.0, l.TotalExpenses(), 0.001)
}

func TestLedger_SetDateFilter(t *testing.T) {
	ctx := context.Background()
	l, _ := newTestLedger(t) // clock pinned to 2024-01-20

	inMonth := model.NewExpense(10, model.CategoryFood, "This month",
		time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC))
	lastMonth := model.NewExpense(99, model.CategoryFood, "Last month",
		time.Date(2023, 12, 28, 0, 0, 0, 0, time.UTC))
	require.NoError(t, l.Add(ctx, inMonth))
	require.NoError(t, l.Add(ctx, lastMonth))

	l.SetDateFilter(model.PeriodThisMonth)
	filtered := l.FilteredExpenses()
	require.Len(t, filtered, 1)
	assert.Equal(t, inMonth.ID, filtered[0].ID)

	l.SetDateFilter(model.PeriodLastMonth)
	filtered = l.FilteredExpenses()
	require.Len(t, filtered, 1)
	assert.Equal(t, lastMonth.ID, filtered[0].ID)

	l.SetDateFilter(model.PeriodAllTime)
	assert.Len(t, l.FilteredExpenses(), 2)
}

func TestLedger_SetDateFilter_KeepsOtherCriteria(t *testing.T) {
	l, _ := newTestLedger(t)

	food := model.CategoryFood
	l.SetFilter(model.Filter{SearchText: "coffee", Category: &food})
	l.SetDateFilter(model.PeriodToday)

	f := l.Filter()
	assert.Equal(t, "coffee", f.SearchText)
	require.NotNil(t, f.Category)
	assert.Equal(t, food, *f.Category)
	assert.NotNil(t, f.StartDate)
	assert.NotNil(t, f.EndDate)
}

func TestLedger_UniqueIDs(t *testing.T) {
	ctx := context.Background()
	l, _ := newTestLedger(t)

	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		e := coffee(1, 10)
		require.NoError(t, l.Add(ctx, e))
		assert.False(t, seen[e.ID], "IDs must be unique")
		seen[e.ID] = true
	}
}
