// Package store persists validation reports keyed by document id.
//
// This package defines the Store interface with implementations for
// different backends:
//   - file: JSON files under a directory, for CLI usage
//   - mongo: MongoDB-backed storage for shared deployments
//
// A record couples the report with the content hash of the document it was
// computed from, so consumers can tell whether a stored report is stale
// relative to the current file on disk.
package store

import (
	"context"
	"errors"
	"time"

	"github.com/matzehuels/udtree/pkg/checks"
)

// Sentinel errors for store operations.
var (
	// ErrNotFound is returned when no report exists for a document id.
	ErrNotFound = errors.New("not found")
)

// Record is one stored validation result.
type Record struct {
	DocID       string         `json:"doc_id" bson:"doc_id"`
	ContentHash string         `json:"content_hash" bson:"content_hash"`
	CreatedAt   time.Time      `json:"created_at" bson:"created_at"`
	Report      *checks.Report `json:"report" bson:"report"`
}

// Store persists validation records.
type Store interface {
	// Put inserts or replaces the record for its document id.
	Put(ctx context.Context, rec *Record) error

	// Get returns the record for a document id, or ErrNotFound.
	Get(ctx context.Context, docID string) (*Record, error)

	// List returns all stored document ids.
	List(ctx context.Context) ([]string, error)

	// Delete removes the record for a document id.
	// Deleting a missing record is not an error.
	Delete(ctx context.Context, docID string) error

	// Close releases backend resources.
	Close(ctx context.Context) error
}
