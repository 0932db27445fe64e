package archive

import (
	"context"
	"sync"
	"time"

	"github.com/neuradeck/slidekit/pkg/observability"
)

// storeMemory is the store name reported to observability hooks.
const storeMemory = "archive-memory"

// MemoryStore keeps archive records in an in-process map.
type MemoryStore struct {
	mu      sync.RWMutex
	records map[string]*Record
}

// NewMemoryStore creates an empty in-memory archive.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{records: make(map[string]*Record)}
}

// Get retrieves a record by ID.
func (s *MemoryStore) Get(ctx context.Context, id string) (*Record, error) {
	observability.Store().OnStoreGet(ctx, storeMemory, id)

	s.mu.RLock()
	rec, ok := s.records[id]
	s.mu.RUnlock()

	if !ok {
		return nil, ErrNotFound
	}
	return cloneRecord(rec), nil
}

// Save stores a record, replacing any previous one with the same ID.
func (s *MemoryStore) Save(ctx context.Context, rec *Record) error {
	start := time.Now()

	s.mu.Lock()
	s.records[rec.ID] = cloneRecord(rec)
	s.mu.Unlock()

	observability.Store().OnStorePut(ctx, storeMemory, rec.ID, time.Since(start))
	return nil
}

// Delete removes a record. Deleting a missing record is not an error.
func (s *MemoryStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	delete(s.records, id)
	s.mu.Unlock()
	return nil
}

// Close is a no-op for the in-memory archive.
func (s *MemoryStore) Close() error {
	return nil
}

// cloneRecord copies a record so callers cannot mutate stored state.
// Slices inside the layout are shared; layouts are read-only once built.
func cloneRecord(rec *Record) *Record {
	c := *rec
	return &c
}

// Ensure MemoryStore implements Store.
var _ Store = (*MemoryStore)(nil)
