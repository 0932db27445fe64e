package jobs

import (
	"context"
	"sync"
	"time"

	"github.com/neuradeck/slidekit/pkg/observability"
)

// storeMemory is the store name reported to observability hooks.
const storeMemory = "jobs-memory"

// cleanupInterval is how often the janitor sweeps expired jobs.
const cleanupInterval = time.Minute

// MemoryStore keeps jobs in an in-process map. A background janitor
// sweeps expired records so a long-running server does not grow without
// bound. Suitable for development and single-instance deployments.
type MemoryStore struct {
	mu        sync.RWMutex
	jobs      map[string]*Job
	stop      chan struct{}
	closeOnce sync.Once
}

// NewMemoryStore creates an empty in-memory job store and starts its
// janitor. Call Close to stop the janitor goroutine.
func NewMemoryStore() *MemoryStore {
	s := &MemoryStore{
		jobs: make(map[string]*Job),
		stop: make(chan struct{}),
	}
	go s.janitor()
	return s
}

// Get retrieves a job by ID. Expired jobs are removed on read.
func (s *MemoryStore) Get(ctx context.Context, id string) (*Job, error) {
	observability.Store().OnStoreGet(ctx, storeMemory, id)

	s.mu.RLock()
	j, ok := s.jobs[id]
	s.mu.RUnlock()

	if !ok {
		return nil, ErrNotFound
	}
	if j.IsExpired() {
		s.mu.Lock()
		delete(s.jobs, id)
		s.mu.Unlock()
		return nil, ErrExpired
	}
	return cloneJob(j), nil
}

// Put stores a job, replacing any previous record with the same ID.
func (s *MemoryStore) Put(ctx context.Context, j *Job) error {
	start := time.Now()

	s.mu.Lock()
	s.jobs[j.ID] = cloneJob(j)
	s.mu.Unlock()

	observability.Store().OnStorePut(ctx, storeMemory, j.ID, time.Since(start))
	return nil
}

// Delete removes a job. Deleting a missing job is not an error.
func (s *MemoryStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	delete(s.jobs, id)
	s.mu.Unlock()
	return nil
}

// Cleanup removes all expired jobs.
func (s *MemoryStore) Cleanup(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, j := range s.jobs {
		if j.IsExpired() {
			delete(s.jobs, id)
		}
	}
	return nil
}

// Close stops the janitor. Safe to call more than once.
func (s *MemoryStore) Close() error {
	s.closeOnce.Do(func() { close(s.stop) })
	return nil
}

func (s *MemoryStore) janitor() {
	ticker := time.NewTicker(cleanupInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			_ = s.Cleanup(context.Background())
		case <-s.stop:
			return
		}
	}
}

// cloneJob copies a job record so callers cannot mutate stored state.
// Slices inside the layout are shared; layouts are read-only once built.
func cloneJob(j *Job) *Job {
	c := *j
	if j.Layout != nil {
		l := *j.Layout
		c.Layout = &l
	}
	return &c
}

// Ensure MemoryStore implements Store.
var _ Store = (*MemoryStore)(nil)
