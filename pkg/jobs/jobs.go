// Package jobs tracks asynchronous layout runs for the HTTP service.
//
// # Architecture
//
// The service accepts a deck, records a pending job, and runs the pipeline
// in a background goroutine; clients poll the job by ID until it reaches a
// terminal status. Storage is pluggable behind the Store interface:
//
//   - MemoryStore: in-process map, suitable for a single server
//   - RedisStore: shared storage for multi-instance deployments
//
// A job moves through pending -> running -> completed or failed. While
// running, Stage names the pipeline stage in flight so pollers can show
// progress. Jobs expire after a TTL; expired jobs read as ErrExpired
// until cleanup removes them.
//
// # Usage
//
//	store := jobs.NewMemoryStore()
//	defer store.Close()
//
//	job := jobs.New("Q3 Review", 0)
//	if err := store.Put(ctx, job); err != nil {
//		return err
//	}
//
//	go func() {
//		job.MarkRunning(jobs.StageCompose)
//		_ = store.Put(ctx, job)
//		// ... run the pipeline, then MarkCompleted or MarkFailed ...
//	}()
package jobs

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	sliderrors "github.com/neuradeck/slidekit/pkg/errors"
	"github.com/neuradeck/slidekit/pkg/pipeline"
)

// Sentinel errors for job store operations.
var (
	// ErrNotFound indicates no job exists with the given ID.
	ErrNotFound = errors.New("job not found")

	// ErrExpired indicates the job exists but has outlived its TTL.
	ErrExpired = errors.New("job expired")
)

// Status is the lifecycle state of a job.
type Status string

// Job lifecycle states.
const (
	StatusPending   Status = "pending"
	StatusRunning   Status = "running"
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
)

// Stage names the pipeline stage a running job is executing.
type Stage string

// Stages a running job moves through, in pipeline order.
const (
	StageNormalize Stage = "normalize"
	StageCompose   Stage = "compose"
	StageRender    Stage = "render"
)

const (
	// DefaultTTL is how long a job record is kept after creation.
	// Long enough for clients to poll and fetch the result, short
	// enough that abandoned jobs do not pile up.
	DefaultTTL = 1 * time.Hour
)

// Job is the record of one asynchronous layout run.
type Job struct {
	ID        string           `json:"id"`
	Status    Status           `json:"status"`
	Stage     Stage            `json:"stage,omitempty"`
	DeckTitle string           `json:"deck_title,omitempty"`
	Layout    *pipeline.Layout `json:"layout,omitempty"`
	Error     string           `json:"error,omitempty"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
	ExpiresAt time.Time        `json:"expires_at"`
}

// New creates a pending job for a layout run. A non-positive ttl
// falls back to DefaultTTL.
func New(deckTitle string, ttl time.Duration) *Job {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	now := time.Now()
	return &Job{
		ID:        uuid.NewString(),
		Status:    StatusPending,
		DeckTitle: deckTitle,
		CreatedAt: now,
		UpdatedAt: now,
		ExpiresAt: now.Add(ttl),
	}
}

// IsExpired returns true if the job has outlived its TTL.
func (j *Job) IsExpired() bool {
	return time.Now().After(j.ExpiresAt)
}

// IsTerminal returns true once the job has finished, successfully or not.
func (j *Job) IsTerminal() bool {
	return j.Status == StatusCompleted || j.Status == StatusFailed
}

// MarkRunning transitions the job to running at the given stage.
func (j *Job) MarkRunning(stage Stage) {
	j.Status = StatusRunning
	j.Stage = stage
	j.UpdatedAt = time.Now()
}

// MarkCompleted records the finished layout and clears the stage.
func (j *Job) MarkCompleted(l *pipeline.Layout) {
	j.Status = StatusCompleted
	j.Stage = ""
	j.Layout = l
	j.UpdatedAt = time.Now()
}

// MarkFailed records why the run failed. Only the user-facing message
// is kept; internal error chains stay in the server logs.
func (j *Job) MarkFailed(err error) {
	j.Status = StatusFailed
	j.Stage = ""
	j.Error = sliderrors.UserMessage(err)
	j.UpdatedAt = time.Now()
}

// Store is the interface for job storage backends.
type Store interface {
	// Get retrieves a job by ID.
	// Returns ErrNotFound if no job has the ID and ErrExpired if the
	// job exists but has outlived its TTL.
	Get(ctx context.Context, id string) (*Job, error)

	// Put stores a job, replacing any previous record with the same ID.
	Put(ctx context.Context, j *Job) error

	// Delete removes a job. Deleting a missing job is not an error.
	Delete(ctx context.Context, id string) error

	// Cleanup removes expired jobs. May be a no-op for backends with
	// native expiry.
	Cleanup(ctx context.Context) error

	// Close releases backend resources.
	Close() error
}
