package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/neuradeck/slidekit/pkg/cache"
	"github.com/neuradeck/slidekit/pkg/deck"
	"github.com/neuradeck/slidekit/pkg/observability"
	"github.com/neuradeck/slidekit/pkg/report"
	"github.com/neuradeck/slidekit/pkg/validate"
)

// Runner encapsulates pipeline execution with caching.
// Both CLI and API can use this to avoid duplicating caching logic.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store pipeline results. Multiple goroutines can safely use the same
// Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// normalized is the cached value of the normalize stage.
type normalized struct {
	Deck     deck.Deck           `json:"deck"`
	Findings [][]validate.Result `json:"findings"`
}

// composed is the cached value of the compose stage.
type composed struct {
	Slides   []SlideLayout       `json:"slides"`
	Findings [][]validate.Result `json:"findings"`
}

// Execute runs the complete normalize → compose → render pipeline with caching.
func (r *Runner) Execute(ctx context.Context, d deck.Deck, opts Options) (*Result, error) {
	return r.execute(ctx, d, opts, nil)
}

// ExecuteStaged runs the pipeline like Execute and reports each stage as it
// starts. Callers tracking long runs (the async API) use the callback to
// surface progress; a nil callback behaves exactly like Execute. The callback
// runs on the calling goroutine and must not block.
func (r *Runner) ExecuteStaged(ctx context.Context, d deck.Deck, opts Options, progress func(stage string)) (*Result, error) {
	return r.execute(ctx, d, opts, progress)
}

func (r *Runner) execute(ctx context.Context, d deck.Deck, opts Options, progress func(string)) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	r.applyLogger(&opts)

	step := func(stage string) {
		if progress != nil {
			progress(stage)
		}
	}

	result := &Result{
		Artifacts: make(map[string][]byte),
	}

	// Compute the input hash for cache keys and API responses
	if deckData, err := deck.MarshalDeck(d); err == nil {
		result.DeckHash = cache.Hash(deckData)
	}

	// Stage 1: Normalize
	step("normalize")
	normStart := time.Now()
	workDeck, normFindings, normHit, err := r.NormalizeWithCacheInfo(ctx, d, opts)
	if err != nil {
		return nil, fmt.Errorf("normalize: %w", err)
	}
	result.Deck = workDeck
	result.Stats.NormalizeTime = time.Since(normStart)
	result.Stats.SlideCount = len(workDeck.Slides)
	result.CacheInfo.NormalizeHit = normHit

	r.Logger.Info("normalized deck",
		"slides", len(workDeck.Slides),
		"findings", countFindings(normFindings),
		"duration", result.Stats.NormalizeTime)

	// Stage 2: Compose
	step("compose")
	composeStart := time.Now()
	slides, composeFindings, composeHit, err := r.ComposeWithCacheInfo(ctx, workDeck, opts)
	if err != nil {
		return nil, fmt.Errorf("compose: %w", err)
	}
	result.Stats.ComposeTime = time.Since(composeStart)
	result.CacheInfo.ComposeHit = composeHit
	for i := range slides {
		result.Stats.PlacementCount += len(slides[i].Placements)
	}

	r.Logger.Info("composed layout",
		"slides", len(slides),
		"placements", result.Stats.PlacementCount,
		"duration", result.Stats.ComposeTime)

	// Stage 3: Aggregate per-slide fragments into the report, in slide order
	theme := effectiveTheme(workDeck, opts)
	result.Layout = Layout{
		DeckTitle: workDeck.Title,
		ThemeID:   theme.ID,
		Slides:    slides,
		Report:    aggregateReport(normFindings, composeFindings).Snapshot(),
	}

	// Stage 4: Render
	step("render")
	renderStart := time.Now()
	artifacts, renderHit, err := r.RenderWithCacheInfo(ctx, result.Layout, opts)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)
	result.CacheInfo.RenderHit = renderHit

	r.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// NormalizeWithCacheInfo cleans deck content with caching and returns cache hit info.
// When normalization is disabled by options, the deck passes through untouched.
func (r *Runner) NormalizeWithCacheInfo(ctx context.Context, d deck.Deck, opts Options) (deck.Deck, [][]validate.Result, bool, error) {
	if err := d.Validate(); err != nil {
		return deck.Deck{}, nil, false, err
	}
	r.applyLogger(&opts)

	if !opts.ShouldNormalize() {
		return d, make([][]validate.Result, len(d.Slides)), false, nil
	}

	deckData, err := deck.MarshalDeck(d)
	if err != nil {
		return deck.Deck{}, nil, false, err
	}
	cacheKey := r.Keyer.DeckKey(cache.Hash(deckData))

	// Try cache first (unless refresh requested)
	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			var cached normalized
			if err := json.Unmarshal(data, &cached); err == nil {
				observability.Cache().OnCacheHit(ctx, "deck")
				return cached.Deck, cached.Findings, true, nil
			}
		}
		observability.Cache().OnCacheMiss(ctx, "deck")
	}

	// Normalize
	start := time.Now()
	observability.Pipeline().OnNormalizeStart(ctx, len(d.Slides))
	clean, findings := deck.Normalize(d)
	observability.Pipeline().OnNormalizeComplete(ctx, len(clean.Slides), time.Since(start), nil)

	// Cache the result
	if data, err := json.Marshal(normalized{Deck: clean, Findings: findings}); err == nil {
		_ = r.Cache.Set(ctx, cacheKey, data, cache.TTLDeck)
		observability.Cache().OnCacheSet(ctx, "deck", len(data))
	}

	return clean, findings, false, nil // Cache miss
}

// Normalize is a convenience wrapper that calls NormalizeWithCacheInfo and discards the cache hit info.
func (r *Runner) Normalize(ctx context.Context, d deck.Deck, opts Options) (deck.Deck, [][]validate.Result, error) {
	clean, findings, _, err := r.NormalizeWithCacheInfo(ctx, d, opts)
	return clean, findings, err
}

// ComposeWithCacheInfo places every slide with caching and returns cache hit info.
// The deck is composed as given; run Normalize first for content cleanup.
func (r *Runner) ComposeWithCacheInfo(ctx context.Context, d deck.Deck, opts Options) ([]SlideLayout, [][]validate.Result, bool, error) {
	if err := opts.ValidateForCompose(); err != nil {
		return nil, nil, false, err
	}
	r.applyLogger(&opts)

	// Compute cache key
	deckData, err := deck.MarshalDeck(d)
	if err != nil {
		return nil, nil, false, err
	}
	theme := effectiveTheme(d, opts)
	cacheKey := r.Keyer.LayoutKey(cache.Hash(deckData), opts.LayoutKeyOpts(theme.ID))

	// Try cache first
	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			var cached composed
			if err := json.Unmarshal(data, &cached); err == nil {
				observability.Cache().OnCacheHit(ctx, "layout")
				return cached.Slides, cached.Findings, true, nil
			}
			// If deserialization fails, fall through to recompute
		}
		observability.Cache().OnCacheMiss(ctx, "layout")
	}

	// Compose
	start := time.Now()
	observability.Pipeline().OnComposeStart(ctx, theme.ID, len(d.Slides))
	slides, findings, err := composeLayout(ctx, d, theme, opts)
	observability.Pipeline().OnComposeComplete(ctx, theme.ID, time.Since(start), err)
	if err != nil {
		return nil, nil, false, err
	}

	// Cache the result
	if data, err := json.Marshal(composed{Slides: slides, Findings: findings}); err == nil {
		_ = r.Cache.Set(ctx, cacheKey, data, cache.TTLLayout)
		observability.Cache().OnCacheSet(ctx, "layout", len(data))
	}

	return slides, findings, false, nil // Cache miss
}

// Compose is a convenience wrapper that calls ComposeWithCacheInfo and discards the cache hit info.
func (r *Runner) Compose(ctx context.Context, d deck.Deck, opts Options) ([]SlideLayout, [][]validate.Result, error) {
	slides, findings, _, err := r.ComposeWithCacheInfo(ctx, d, opts)
	return slides, findings, err
}

// RenderWithCacheInfo generates artifacts with caching and returns cache hit info.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, l Layout, opts Options) (map[string][]byte, bool, error) {
	if err := opts.ValidateForRender(); err != nil {
		return nil, false, err
	}
	r.applyLogger(&opts)

	// Compute cache key from layout data
	layoutData, err := MarshalLayout(l)
	if err != nil {
		return nil, false, fmt.Errorf("serialize layout for cache key: %w", err)
	}
	layoutHash := cache.Hash(layoutData)

	// Try to get all formats from cache
	allCached := true
	artifacts := make(map[string][]byte)

	if !opts.Refresh {
		for _, format := range opts.Formats {
			cacheKey := r.Keyer.ArtifactKey(layoutHash, opts.ArtifactKeyOpts(format))
			if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
				artifacts[format] = data
			} else {
				allCached = false
				break
			}
		}
		if allCached && len(artifacts) == len(opts.Formats) {
			observability.Cache().OnCacheHit(ctx, "artifact")
			return artifacts, true, nil // All artifacts from cache
		}
		observability.Cache().OnCacheMiss(ctx, "artifact")
	}

	// Render all formats
	start := time.Now()
	observability.Pipeline().OnRenderStart(ctx, opts.Formats)
	rendered, err := RenderLayout(l, opts)
	observability.Pipeline().OnRenderComplete(ctx, opts.Formats, time.Since(start), err)
	if err != nil {
		return nil, false, err
	}

	// Cache each format
	for format, data := range rendered {
		cacheKey := r.Keyer.ArtifactKey(layoutHash, opts.ArtifactKeyOpts(format))
		_ = r.Cache.Set(ctx, cacheKey, data, cache.TTLArtifact)
		observability.Cache().OnCacheSet(ctx, "artifact", len(data))
	}

	return rendered, false, nil // Cache miss
}

// Render is a convenience wrapper that calls RenderWithCacheInfo and discards the cache hit info.
func (r *Runner) Render(ctx context.Context, l Layout, opts Options) (map[string][]byte, error) {
	artifacts, _, err := r.RenderWithCacheInfo(ctx, l, opts)
	return artifacts, err
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}

// aggregateReport merges normalize and compose findings slide by slide.
// Fragments merge in slide-index order, so the report is identical whether
// composition ran sequentially or on a pool.
func aggregateReport(normFindings, composeFindings [][]validate.Result) *report.Report {
	n := len(composeFindings)
	fragments := make([]*report.Report, n)
	for i := 0; i < n; i++ {
		combined := make([]validate.Result, 0, len(pick(normFindings, i))+len(composeFindings[i]))
		combined = append(combined, pick(normFindings, i)...)
		combined = append(combined, composeFindings[i]...)

		frag := report.New()
		frag.RecordSlide(combined)
		fragments[i] = frag
	}
	return report.Merge(fragments...)
}

// pick returns findings[i] when present, nil otherwise.
func pick(findings [][]validate.Result, i int) []validate.Result {
	if i < len(findings) {
		return findings[i]
	}
	return nil
}

// countFindings sums findings across slides.
func countFindings(findings [][]validate.Result) int {
	total := 0
	for _, fs := range findings {
		total += len(fs)
	}
	return total
}
