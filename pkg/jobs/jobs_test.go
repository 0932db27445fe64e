package jobs

import (
	"context"
	"errors"
	"testing"
	"time"

	sliderrors "github.com/neuradeck/slidekit/pkg/errors"
	"github.com/neuradeck/slidekit/pkg/pipeline"
)

func TestNewDefaults(t *testing.T) {
	j := New("Q3 Review", 0)

	if j.ID == "" {
		t.Fatal("expected generated ID")
	}
	if len(j.ID) != 36 {
		t.Errorf("expected UUID-shaped ID, got %q", j.ID)
	}
	if j.Status != StatusPending {
		t.Errorf("expected pending status, got %q", j.Status)
	}
	if j.DeckTitle != "Q3 Review" {
		t.Errorf("unexpected deck title %q", j.DeckTitle)
	}
	if j.IsTerminal() {
		t.Error("new job should not be terminal")
	}
	if j.IsExpired() {
		t.Error("new job should not be expired")
	}
	if got := j.ExpiresAt.Sub(j.CreatedAt); got != DefaultTTL {
		t.Errorf("expected default TTL %v, got %v", DefaultTTL, got)
	}
}

func TestNewCustomTTL(t *testing.T) {
	j := New("Q3 Review", 5*time.Minute)
	if got := j.ExpiresAt.Sub(j.CreatedAt); got != 5*time.Minute {
		t.Errorf("expected 5m TTL, got %v", got)
	}
}

func TestNewUniqueIDs(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		j := New("deck", 0)
		if seen[j.ID] {
			t.Fatalf("duplicate job ID %s", j.ID)
		}
		seen[j.ID] = true
	}
}

func TestJobLifecycle(t *testing.T) {
	j := New("Q3 Review", 0)

	j.MarkRunning(StageCompose)
	if j.Status != StatusRunning {
		t.Errorf("expected running status, got %q", j.Status)
	}
	if j.Stage != StageCompose {
		t.Errorf("expected compose stage, got %q", j.Stage)
	}
	if j.IsTerminal() {
		t.Error("running job should not be terminal")
	}

	j.MarkCompleted(&pipeline.Layout{DeckTitle: "Q3 Review", ThemeID: "corporate"})
	if j.Status != StatusCompleted {
		t.Errorf("expected completed status, got %q", j.Status)
	}
	if j.Stage != "" {
		t.Errorf("expected stage cleared, got %q", j.Stage)
	}
	if j.Layout == nil || j.Layout.ThemeID != "corporate" {
		t.Errorf("expected layout stored, got %+v", j.Layout)
	}
	if !j.IsTerminal() {
		t.Error("completed job should be terminal")
	}
}

func TestMarkFailed(t *testing.T) {
	j := New("Q3 Review", 0)
	j.MarkRunning(StageNormalize)

	j.MarkFailed(sliderrors.New(sliderrors.ErrCodeInvalidDeck, "deck has no slides"))
	if j.Status != StatusFailed {
		t.Errorf("expected failed status, got %q", j.Status)
	}
	if j.Stage != "" {
		t.Errorf("expected stage cleared, got %q", j.Stage)
	}
	if j.Error != "deck has no slides" {
		t.Errorf("expected user-facing message, got %q", j.Error)
	}
	if !j.IsTerminal() {
		t.Error("failed job should be terminal")
	}
}

func TestMemoryStoreRoundTrip(t *testing.T) {
	store := NewMemoryStore()
	defer store.Close()
	ctx := context.Background()

	j := New("Q3 Review", 0)
	j.MarkRunning(StageCompose)
	if err := store.Put(ctx, j); err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	got, err := store.Get(ctx, j.ID)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got.ID != j.ID {
		t.Errorf("expected ID %s, got %s", j.ID, got.ID)
	}
	if got.Status != StatusRunning || got.Stage != StageCompose {
		t.Errorf("round-trip lost state: %+v", got)
	}
	if got.DeckTitle != "Q3 Review" {
		t.Errorf("round-trip lost deck title: %q", got.DeckTitle)
	}
}

func TestMemoryStoreGetMissing(t *testing.T) {
	store := NewMemoryStore()
	defer store.Close()

	_, err := store.Get(context.Background(), "no-such-job")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestMemoryStoreExpiry(t *testing.T) {
	store := NewMemoryStore()
	defer store.Close()
	ctx := context.Background()

	j := New("stale", 0)
	j.ExpiresAt = time.Now().Add(-time.Minute)
	if err := store.Put(ctx, j); err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	if _, err := store.Get(ctx, j.ID); !errors.Is(err, ErrExpired) {
		t.Fatalf("expected ErrExpired, got %v", err)
	}
	// Expired jobs are removed on read.
	if _, err := store.Get(ctx, j.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after removal, got %v", err)
	}
}

func TestMemoryStoreDelete(t *testing.T) {
	store := NewMemoryStore()
	defer store.Close()
	ctx := context.Background()

	j := New("doomed", 0)
	if err := store.Put(ctx, j); err != nil {
		t.Fatalf("Put failed: %v", err)
	}
	if err := store.Delete(ctx, j.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, err := store.Get(ctx, j.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}

	if err := store.Delete(ctx, "no-such-job"); err != nil {
		t.Errorf("deleting a missing job should not error: %v", err)
	}
}

func TestMemoryStoreCleanup(t *testing.T) {
	store := NewMemoryStore()
	defer store.Close()
	ctx := context.Background()

	live := New("live", time.Hour)
	dead := New("dead", time.Hour)
	dead.ExpiresAt = time.Now().Add(-time.Second)
	for _, j := range []*Job{live, dead} {
		if err := store.Put(ctx, j); err != nil {
			t.Fatalf("Put failed: %v", err)
		}
	}

	if err := store.Cleanup(ctx); err != nil {
		t.Fatalf("Cleanup failed: %v", err)
	}

	if _, err := store.Get(ctx, live.ID); err != nil {
		t.Errorf("live job should survive cleanup: %v", err)
	}
	if _, err := store.Get(ctx, dead.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected expired job removed, got %v", err)
	}
}

func TestMemoryStoreCopies(t *testing.T) {
	store := NewMemoryStore()
	defer store.Close()
	ctx := context.Background()

	j := New("shared", 0)
	if err := store.Put(ctx, j); err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	// Mutating the caller's job must not leak into the store.
	j.Status = StatusFailed
	got, err := store.Get(ctx, j.ID)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got.Status != StatusPending {
		t.Errorf("caller mutation leaked into store: %q", got.Status)
	}

	// Mutating a fetched copy must not either.
	got.Status = StatusCompleted
	again, err := store.Get(ctx, j.ID)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if again.Status != StatusPending {
		t.Errorf("fetched copy mutation leaked into store: %q", again.Status)
	}
}

func TestMemoryStoreLayoutCopied(t *testing.T) {
	store := NewMemoryStore()
	defer store.Close()
	ctx := context.Background()

	j := New("deck", 0)
	j.MarkCompleted(&pipeline.Layout{DeckTitle: "deck", ThemeID: "pitch"})
	if err := store.Put(ctx, j); err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	got, err := store.Get(ctx, j.ID)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	got.Layout.ThemeID = "corporate"

	again, err := store.Get(ctx, j.ID)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if again.Layout.ThemeID != "pitch" {
		t.Errorf("layout mutation leaked into store: %q", again.Layout.ThemeID)
	}
}

func TestMemoryStoreCloseIdempotent(t *testing.T) {
	store := NewMemoryStore()
	if err := store.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("second Close failed: %v", err)
	}
}
