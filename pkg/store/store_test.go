package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/matzehuels/udtree/pkg/checks"
)

func sampleRecord(docID string) *Record {
	rep := checks.NewReport()
	rep.Add(checks.Finding{Address: docID + "#3", Code: "cop-upos", Message: "cop child is VERB"})
	rep.Add(checks.Finding{Address: docID + "#5", Code: "no-PronType", Message: "PRON without PronType"})
	return &Record{
		DocID:       docID,
		ContentHash: "abc123",
		CreatedAt:   time.Now().UTC().Truncate(time.Second),
		Report:      rep,
	}
}

func TestFileStorePutGet(t *testing.T) {
	s, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore() error = %v", err)
	}
	ctx := context.Background()

	rec := sampleRecord("corpus/train.conllu")
	if err := s.Put(ctx, rec); err != nil {
		t.Fatalf("Put() error = %v", err)
	}

	got, err := s.Get(ctx, "corpus/train.conllu")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got.DocID != rec.DocID {
		t.Errorf("DocID = %q, want %q", got.DocID, rec.DocID)
	}
	if got.ContentHash != rec.ContentHash {
		t.Errorf("ContentHash = %q, want %q", got.ContentHash, rec.ContentHash)
	}
	if got.Report.Total() != 2 {
		t.Errorf("Report.Total() = %d, want 2", got.Report.Total())
	}
	if got.Report.Counts["cop-upos"] != 1 {
		t.Errorf("Counts[cop-upos] = %d, want 1", got.Report.Counts["cop-upos"])
	}
}

func TestFileStoreGetMissing(t *testing.T) {
	s, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore() error = %v", err)
	}

	_, err = s.Get(context.Background(), "nope.conllu")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Get() error = %v, want ErrNotFound", err)
	}
}

func TestFileStorePutReplaces(t *testing.T) {
	s, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore() error = %v", err)
	}
	ctx := context.Background()

	if err := s.Put(ctx, sampleRecord("doc")); err != nil {
		t.Fatalf("Put() error = %v", err)
	}

	updated := sampleRecord("doc")
	updated.ContentHash = "def456"
	if err := s.Put(ctx, updated); err != nil {
		t.Fatalf("Put() error = %v", err)
	}

	got, err := s.Get(ctx, "doc")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got.ContentHash != "def456" {
		t.Errorf("ContentHash = %q, want %q", got.ContentHash, "def456")
	}

	ids, err := s.List(ctx)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(ids) != 1 {
		t.Errorf("List() returned %d ids, want 1", len(ids))
	}
}

func TestFileStoreListAndDelete(t *testing.T) {
	s, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore() error = %v", err)
	}
	ctx := context.Background()

	for _, id := range []string{"a.conllu", "b.conllu", "c.conllu"} {
		if err := s.Put(ctx, sampleRecord(id)); err != nil {
			t.Fatalf("Put(%q) error = %v", id, err)
		}
	}

	ids, err := s.List(ctx)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(ids) != 3 {
		t.Fatalf("List() returned %d ids, want 3", len(ids))
	}

	if err := s.Delete(ctx, "b.conllu"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if _, err := s.Get(ctx, "b.conllu"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get() after Delete error = %v, want ErrNotFound", err)
	}

	// Deleting again is not an error.
	if err := s.Delete(ctx, "b.conllu"); err != nil {
		t.Errorf("Delete() of missing record error = %v", err)
	}
}

func TestFileStoreRejectsBadDocID(t *testing.T) {
	s, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore() error = %v", err)
	}
	ctx := context.Background()

	for _, id := range []string{"", "../escape", "a//b"} {
		if err := s.Put(ctx, &Record{DocID: id}); err == nil {
			t.Errorf("Put(%q) expected error, got nil", id)
		}
		if _, err := s.Get(ctx, id); err == nil {
			t.Errorf("Get(%q) expected error, got nil", id)
		}
	}
}
