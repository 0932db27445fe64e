package cache

// ScopedKeyer wraps a Keyer with a prefix so several workspaces can
// share one backend without key collisions.
//
// Example usage:
//
//	// Per-workspace keys on a shared Redis
//	wsKeyer := cache.NewScopedKeyer(cache.NewDefaultKeyer(), "ws:acme:")
//
//	// Global keys
//	globalKeyer := cache.NewDefaultKeyer()
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix.
// The prefix is prepended to all generated keys.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{
		inner:  inner,
		prefix: prefix,
	}
}

// DeckKey generates a prefixed key for normalized deck caching.
func (k *ScopedKeyer) DeckKey(deckHash string) string {
	return k.prefix + k.inner.DeckKey(deckHash)
}

// LayoutKey generates a prefixed key for layout caching.
func (k *ScopedKeyer) LayoutKey(deckHash string, opts LayoutKeyOpts) string {
	return k.prefix + k.inner.LayoutKey(deckHash, opts)
}

// ArtifactKey generates a prefixed key for artifact caching.
func (k *ScopedKeyer) ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string {
	return k.prefix + k.inner.ArtifactKey(layoutHash, opts)
}
