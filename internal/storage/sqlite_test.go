package storage

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pennywise-app/pennywise/internal/model"
)

func setupSQLiteStore(t *testing.T) *SQLiteStore {
	t.Helper()
	store, err := NewSQLiteStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func sampleCollection() []model.Expense {
	return []model.Expense{
		{
			ID:          "a1",
			Amount:      50.25,
			Category:    model.CategoryFood,
			Description: "Groceries, with a comma",
			Date:        time.Date(2024, 1, 10, 12, 30, 0, 0, time.UTC),
		},
		{
			ID:          "b2",
			Amount:      19.99,
			Category:    model.CategoryEntertainment,
			Description: "Movie night",
			Date:        time.Date(2024, 1, 15, 20, 0, 0, 0, time.UTC),
		},
		{
			ID:          "c3",
			Amount:      0.01,
			Category:    model.CategoryOther,
			Description: "Penny",
			Date:        time.Date(2023, 12, 31, 23, 59, 59, 0, time.UTC),
		},
	}
}

func TestSQLiteStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	store := setupSQLiteStore(t)

	want := sampleCollection()
	require.NoError(t, store.Save(ctx, want))

	got, err := store.Load(ctx)
	require.NoError(t, err)
	require.Len(t, got, len(want))

	for i := range want {
		assert.Equal(t, want[i].ID, got[i].ID, "order and identity preserved")
		assert.Equal(t, want[i].Category, got[i].Category)
		assert.Equal(t, want[i].Description, got[i].Description)
		assert.InDelta(t, want[i].Amount, got[i].Amount, 0.001)
		assert.True(t, want[i].Date.Equal(got[i].Date), "date %v != %v", want[i].Date, got[i].Date)
	}
}

func TestSQLiteStore_SaveReplacesPriorSnapshot(t *testing.T) {
	ctx := context.Background()
	store := setupSQLiteStore(t)

	require.NoError(t, store.Save(ctx, sampleCollection()))
	require.NoError(t, store.Save(ctx, sampleCollection()[:1]))

	got, err := store.Load(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1, "save is a whole-snapshot replace, not an append")
	assert.Equal(t, "a1", got[0].ID)
}

func TestSQLiteStore_LoadEmpty(t *testing.T) {
	store := setupSQLiteStore(t)

	got, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestSQLiteStore_Clear(t *testing.T) {
	ctx := context.Background()
	store := setupSQLiteStore(t)

	require.NoError(t, store.Save(ctx, sampleCollection()))
	require.NoError(t, store.Clear(ctx))

	got, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestSQLiteStore_PersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "pennywise.db")

	store, err := NewSQLiteStore(dbPath)
	require.NoError(t, err)
	require.NoError(t, store.Save(ctx, sampleCollection()))
	require.NoError(t, store.Close())

	reopened, err := NewSQLiteStore(dbPath)
	require.NoError(t, err)
	defer func() { _ = reopened.Close() }()

	got, err := reopened.Load(ctx)
	require.NoError(t, err)
	assert.Len(t, got, 3)
}

func TestNewSQLiteStore_EmptyPath(t *testing.T) {
	_, err := NewSQLiteStore("")
	assert.Error(t, err)
}
