// Package cache provides content-addressed caching for pipeline results.
//
// Keys are derived from SHA-256 hashes of the inputs that determine an
// output: the deck JSON for normalization, the deck hash plus theme and
// geometry options for layouts, and the layout hash plus render options
// for artifacts. Because every key pins its full input, entries never
// serve stale data; TTLs exist only to bound cache growth.
//
// # Backends
//
//   - FileCache: entries as files under a directory, for CLI usage
//   - RedisCache: shared cache for multi-instance server deployments
//   - NullCache: no-op cache for tests or when caching is disabled
//
// # Keys
//
// A Keyer builds namespaced keys. The DefaultKeyer produces keys of the
// form
//
//	layout:3fe0a1...(64 hex chars)
//
// Wrap a Keyer in a ScopedKeyer when several workspaces share one
// backend and need separate namespaces.
package cache

import (
	"context"
	"time"
)

// Cache is the interface for caching backends.
type Cache interface {
	// Get retrieves a value. The second return reports whether the key
	// was present and unexpired.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value with a TTL. A non-positive TTL stores the
	// value without expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// TTLs per key kind. Content-addressed keys never go stale, so these
// bound disk and memory usage rather than freshness.
const (
	// TTLDeck applies to normalized deck entries.
	TTLDeck = 24 * time.Hour

	// TTLLayout applies to composed layout entries.
	TTLLayout = 7 * 24 * time.Hour

	// TTLArtifact applies to rendered artifact entries.
	TTLArtifact = 7 * 24 * time.Hour
)

// Keyer builds cache keys for the pipeline stages.
type Keyer interface {
	// DeckKey returns the key for a normalized deck.
	DeckKey(deckHash string) string

	// LayoutKey returns the key for a composed layout.
	LayoutKey(deckHash string, opts LayoutKeyOpts) string

	// ArtifactKey returns the key for a rendered artifact.
	ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string
}

// LayoutKeyOpts captures every option that changes composed geometry.
// Two runs with equal deck hashes and equal LayoutKeyOpts produce the
// same layout, so they may share one cache entry.
type LayoutKeyOpts struct {
	ThemeID      string  `json:"theme_id"`
	CanvasWidth  float64 `json:"canvas_width"`
	CanvasHeight float64 `json:"canvas_height"`
	Columns      int     `json:"columns"`
	Gutter       float64 `json:"gutter"`
	MarginLeft   float64 `json:"margin_left"`
	MarginRight  float64 `json:"margin_right"`
	MarginTop    float64 `json:"margin_top"`
	MarginBottom float64 `json:"margin_bottom"`
	Rows         int     `json:"rows"`
	SafeMargin   float64 `json:"safe_margin"`
	Normalize    bool    `json:"normalize"`
}

// ArtifactKeyOpts captures every option that changes rendered output.
type ArtifactKeyOpts struct {
	Format      string  `json:"format"`
	Scale       float64 `json:"scale"`
	GridOverlay bool    `json:"grid_overlay"`
	Annotations bool    `json:"annotations"`
}

// DefaultKeyer generates hash-based cache keys.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer {
	return &DefaultKeyer{}
}

// DeckKey generates a key for normalized deck caching.
// Key format: deck:hash(deckHash)
func (k *DefaultKeyer) DeckKey(deckHash string) string {
	return hashKey("deck", deckHash)
}

// LayoutKey generates a key for layout caching.
// Key format: layout:hash(deckHash + opts)
func (k *DefaultKeyer) LayoutKey(deckHash string, opts LayoutKeyOpts) string {
	return hashKey("layout", deckHash, opts)
}

// ArtifactKey generates a key for artifact caching.
// Key format: artifact:hash(layoutHash + opts)
func (k *DefaultKeyer) ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", layoutHash, opts)
}

// Ensure DefaultKeyer implements Keyer.
var _ Keyer = (*DefaultKeyer)(nil)
