// Package store implements the append-only JSON persistence used for output
// records and retry entries: one pretty-printed JSON array per file,
// rewritten in full on every append.
package store

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"

	"github.com/veridata/factcrawl/models"
)

// Store is an append-only collection of T backed by a single JSON file.
// It assumes a single writer per file (one crawl process per output file);
// there is no update or delete.
type Store[T any] struct {
	path string
}

// New creates a store backed by the given file. The file is created lazily
// on the first append.
func New[T any](path string) *Store[T] {
	return &Store[T]{path: path}
}

// Path returns the backing file path.
func (s *Store[T]) Path() string { return s.path }

// Load reads the current document. A missing or corrupt file is treated as
// an empty list — an accepted repair, not an error.
func (s *Store[T]) Load() ([]T, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, models.NewCrawlError(models.ErrCodePersistence, "failed to read "+s.path, err)
	}

	var entries []T
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, nil
	}
	return entries, nil
}

// Append reads the current document, appends entry, and rewrites the whole
// document pretty-printed. Callers treat a returned error as
// logged-and-dropped: persistence is explicitly at-most-once-effort.
func (s *Store[T]) Append(entry T) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return models.NewCrawlError(models.ErrCodePersistence, "failed to create output directory", err)
	}

	entries, err := s.Load()
	if err != nil {
		return err
	}
	entries = append(entries, entry)

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return models.NewCrawlError(models.ErrCodePersistence, "failed to encode "+s.path, err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return models.NewCrawlError(models.ErrCodePersistence, "failed to write "+s.path, err)
	}
	return nil
}

// Len returns the number of entries currently persisted.
func (s *Store[T]) Len() (int, error) {
	entries, err := s.Load()
	if err != nil {
		return 0, err
	}
	return len(entries), nil
}
