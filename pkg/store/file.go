package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/matzehuels/udtree/pkg/cache"
	uderr "github.com/matzehuels/udtree/pkg/errors"
)

// FileStore is a file-based report store for CLI usage.
// Records are stored as JSON files in a base directory, one file per
// document id. File names are derived from the hash of the document id so
// arbitrary ids never touch path semantics.
type FileStore struct {
	mu      sync.RWMutex
	baseDir string
}

// NewFileStore creates a file-based report store.
// If baseDir is empty, defaults to ~/.config/udtree/reports/
func NewFileStore(baseDir string) (*FileStore, error) {
	if baseDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("get home dir: %w", err)
		}
		baseDir = filepath.Join(home, ".config", "udtree", "reports")
	}
	if err := os.MkdirAll(baseDir, 0700); err != nil {
		return nil, fmt.Errorf("create report dir: %w", err)
	}
	return &FileStore{baseDir: baseDir}, nil
}

func (s *FileStore) recordPath(docID string) string {
	return filepath.Join(s.baseDir, cache.Hash([]byte(docID))+".json")
}

// Put inserts or replaces the record for its document id.
func (s *FileStore) Put(ctx context.Context, rec *Record) error {
	if err := uderr.ValidateDocumentID(rec.DocID); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal record: %w", err)
	}
	if err := os.WriteFile(s.recordPath(rec.DocID), data, 0600); err != nil {
		return fmt.Errorf("write record file: %w", err)
	}
	return nil
}

// Get returns the record for a document id, or ErrNotFound.
func (s *FileStore) Get(ctx context.Context, docID string) (*Record, error) {
	if err := uderr.ValidateDocumentID(docID); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	data, err := os.ReadFile(s.recordPath(docID))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("read record file: %w", err)
	}

	var rec Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("parse record: %w", err)
	}
	return &rec, nil
}

// List returns all stored document ids.
func (s *FileStore) List(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		return nil, fmt.Errorf("read report dir: %w", err)
	}

	var ids []string
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".json" {
			continue
		}
		data, err := os.ReadFile(filepath.Join(s.baseDir, entry.Name()))
		if err != nil {
			continue
		}
		var rec Record
		if err := json.Unmarshal(data, &rec); err != nil {
			continue
		}
		ids = append(ids, rec.DocID)
	}
	return ids, nil
}

// Delete removes the record for a document id.
func (s *FileStore) Delete(ctx context.Context, docID string) error {
	if err := uderr.ValidateDocumentID(docID); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.recordPath(docID)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove record file: %w", err)
	}
	return nil
}

// Close is a no-op for file stores.
func (s *FileStore) Close(ctx context.Context) error {
	return nil
}
