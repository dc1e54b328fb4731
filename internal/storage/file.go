package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/pennywise-app/pennywise/internal/model"
)

// FileStore implements Store as a single pretty-printed JSON file. The file
// format matches the export schema: an array of records with id, amount,
// category, description, and an ISO-8601 date.
type FileStore struct {
	path string
}

// NewFileStore creates a file-backed store at path, creating the parent
// directory if needed. The file itself is created on first Save.
func NewFileStore(path string) (*FileStore, error) {
	if path == "" {
		return nil, fmt.Errorf("path cannot be empty")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}
	return &FileStore{path: path}, nil
}

// Save writes the collection to disk. The write goes through a temp file and
// rename so a crash mid-write cannot corrupt the previous data.
func (s *FileStore) Save(_ context.Context, expenses []model.Expense) error {
	data, err := json.MarshalIndent(expenses, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode expenses: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0600); err != nil {
		return fmt.Errorf("failed to write expenses file: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("failed to replace expenses file: %w", err)
	}

	return nil
}

// Load reads the collection from disk. A missing or corrupt file is not an
// error: it logs and yields an empty collection, per the store contract.
func (s *FileStore) Load(_ context.Context) ([]model.Expense, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read expenses file: %w", err)
	}

	var expenses []model.Expense
	if err := json.Unmarshal(data, &expenses); err != nil {
		slog.Error("expenses file is corrupt, starting empty", "path", s.path, "error", err)
		return nil, nil
	}

	return expenses, nil
}

// Clear removes the data file.
func (s *FileStore) Clear(_ context.Context) error {
	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to remove expenses file: %w", err)
	}
	return nil
}

// Close is a no-op; the file is not held open between operations.
func (s *FileStore) Close() error {
	return nil
}
