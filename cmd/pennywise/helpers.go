package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pennywise-app/pennywise/internal/common"
	"github.com/pennywise-app/pennywise/internal/ledger"
	"github.com/pennywise-app/pennywise/internal/model"
	"github.com/pennywise-app/pennywise/internal/storage"
)

// dateLayout is the format the CLI accepts for --from / --to / --date flags.
const dateLayout = "2006-01-02"

// openStore builds the persistence backend selected by config.
func openStore() (storage.Store, error) {
	backend := viper.GetString("storage.backend")
	switch backend {
	case "sqlite":
		dbPath := viper.GetString("storage.db_path")
		if dbPath == "" {
			dir, err := dataDir()
			if err != nil {
				return nil, err
			}
			dbPath = filepath.Join(dir, "pennywise.db")
		}
		return storage.NewSQLiteStore(dbPath)
	case "file":
		dataFile := viper.GetString("storage.data_file")
		if dataFile == "" {
			dir, err := dataDir()
			if err != nil {
				return nil, err
			}
			dataFile = filepath.Join(dir, "expenses.json")
		}
		return storage.NewFileStore(dataFile)
	case "memory":
		return storage.NewMemoryStore(), nil
	}
	return nil, fmt.Errorf("%w: %q", common.ErrUnknownBackend, backend)
}

func dataDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".local", "share", "pennywise"), nil
}

// openLedger opens the configured store and loads the collection into a
// ledger. The caller must Close the returned store.
func openLedger(ctx context.Context) (*ledger.Ledger, storage.Store, error) {
	store, err := openStore()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open storage: %w", err)
	}
	return ledger.New(ctx, store), store, nil
}

// addFilterFlags registers the shared filtering flags on a command.
func addFilterFlags(cmd *cobra.Command) {
	cmd.Flags().String("search", "", "free-text search over description, category, and amount")
	cmd.Flags().String("category", "", "restrict to one category")
	cmd.Flags().String("from", "", "start date (YYYY-MM-DD, inclusive)")
	cmd.Flags().String("to", "", "end date (YYYY-MM-DD, inclusive of the whole day)")
	cmd.Flags().String("period", "", "date preset: today, this-week, this-month, last-month, this-year, all-time")
}

// filterFromFlags builds the active filter from the shared flags. The period
// preset sets the date bounds; explicit --from/--to override them.
func filterFromFlags(cmd *cobra.Command) (model.Filter, error) {
	var f model.Filter

	f.SearchText, _ = cmd.Flags().GetString("search")

	if name, _ := cmd.Flags().GetString("category"); name != "" {
		c, err := model.ParseCategory(name)
		if err != nil {
			return model.Filter{}, err
		}
		f.Category = &c
	}

	if name, _ := cmd.Flags().GetString("period"); name != "" {
		p, err := model.ParsePeriod(name)
		if err != nil {
			return model.Filter{}, err
		}
		f.StartDate, f.EndDate = model.PeriodRange(p, time.Now())
	}

	if raw, _ := cmd.Flags().GetString("from"); raw != "" {
		t, err := time.ParseInLocation(dateLayout, raw, time.Local)
		if err != nil {
			return model.Filter{}, fmt.Errorf("invalid --from date %q: %w", raw, err)
		}
		f.StartDate = &t
	}

	if raw, _ := cmd.Flags().GetString("to"); raw != "" {
		t, err := time.ParseInLocation(dateLayout, raw, time.Local)
		if err != nil {
			return model.Filter{}, fmt.Errorf("invalid --to date %q: %w", raw, err)
		}
		f.EndDate = &t
	}

	return f, nil
}
