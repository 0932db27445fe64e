// Package archive persists finished layouts for later retrieval.
//
// Unlike the pipeline cache, which is content-addressed and disposable,
// the archive keeps layouts under stable IDs so a layout produced once
// can be fetched again by reference. Storage is pluggable behind the
// Store interface:
//
//   - MemoryStore: in-process map for development and tests
//   - MongoStore: durable storage for deployments
//
// Records have no TTL; an archived layout stays until deleted.
package archive

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/neuradeck/slidekit/pkg/pipeline"
)

// ErrNotFound indicates no record exists with the given ID.
var ErrNotFound = errors.New("archive record not found")

// Record is an archived layout with its identifying metadata. The
// metadata duplicates a few layout fields so listings and lookups do
// not need to decode the full layout.
type Record struct {
	ID         string          `json:"id" bson:"_id"`
	DeckTitle  string          `json:"deck_title" bson:"deck_title"`
	ThemeID    string          `json:"theme_id" bson:"theme_id"`
	SlideCount int             `json:"slide_count" bson:"slide_count"`
	Layout     pipeline.Layout `json:"layout" bson:"layout"`
	CreatedAt  time.Time       `json:"created_at" bson:"created_at"`
}

// NewRecord wraps a finished layout in an archive record with a fresh ID.
func NewRecord(l pipeline.Layout) *Record {
	return &Record{
		ID:         uuid.NewString(),
		DeckTitle:  l.DeckTitle,
		ThemeID:    l.ThemeID,
		SlideCount: len(l.Slides),
		Layout:     l,
		CreatedAt:  time.Now(),
	}
}

// Store is the interface for archive storage backends.
type Store interface {
	// Get retrieves a record by ID. Returns ErrNotFound when absent.
	Get(ctx context.Context, id string) (*Record, error)

	// Save stores a record, replacing any previous one with the same ID.
	Save(ctx context.Context, rec *Record) error

	// Delete removes a record. Deleting a missing record is not an error.
	Delete(ctx context.Context, id string) error

	// Close releases backend resources.
	Close() error
}
