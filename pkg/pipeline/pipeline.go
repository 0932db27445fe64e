// Package pipeline provides the core layout pipeline for Slidekit.
//
// This package implements the complete normalize → compose → render pipeline
// that can be used by CLI, API, and worker components. By centralizing this
// logic, we ensure consistent behavior across all entry points and avoid code
// duplication.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Normalize: Clean deck content (grammar, caps, duplicate detection)
//  2. Compose: Place every slide on the grid and validate the geometry
//  3. Render: Generate output in various formats (SVG, JSON)
//
// Composition runs the slides through a worker pool; per-slide findings are
// merged back in slide-index order, so the report is identical no matter how
// many workers run. Each stage can be run independently or as part of the
// complete pipeline.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	opts := pipeline.Options{
//	    ThemeID: "corporate",
//	    Formats: []string{"svg", "json"},
//	}
//	result, err := runner.Execute(ctx, dk, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
//
// Run individual stages:
//
//	// Normalize only
//	clean, findings, err := runner.Normalize(ctx, dk, opts)
//
//	// Compose with an already-normalized deck
//	slides, findings, err := runner.Compose(ctx, clean, opts)
//
//	// Render with an existing layout
//	artifacts, err := runner.Render(ctx, layout, opts)
package pipeline

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/neuradeck/slidekit/pkg/cache"
	"github.com/neuradeck/slidekit/pkg/deck"
	"github.com/neuradeck/slidekit/pkg/errors"
	"github.com/neuradeck/slidekit/pkg/grid"
	"github.com/neuradeck/slidekit/pkg/report"
	"github.com/neuradeck/slidekit/pkg/tokens"
	"github.com/neuradeck/slidekit/pkg/validate"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI, API, and Worker
// =============================================================================

const (
	// DefaultWorkers is the number of concurrent slide composers. Slides
	// compose independently and findings merge in slide order, so the
	// worker count never changes the output.
	DefaultWorkers = 4

	// DefaultScale is the wireframe render scale in pixels per canvas
	// inch (the CSS reference density).
	DefaultScale = 96.0
)

// Format constants for output formats.
const (
	FormatSVG  = "svg"
	FormatJSON = "json"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG:  true,
	FormatJSON: true,
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for the layout pipeline.
// This struct supports JSON serialization for API requests.
type Options struct {
	// Deck options
	ThemeID       string `json:"theme_id,omitempty"`       // Overrides the deck's own theme when set
	SkipNormalize bool   `json:"skip_normalize,omitempty"` // Skip content normalization (default: false = normalize)
	Refresh       bool   `json:"refresh,omitempty"`        // Recompute every stage, repopulating the cache

	// Compose options
	Canvas       tokens.CanvasDimensions `json:"canvas"`
	Grid         grid.Config             `json:"grid"`
	SafeMarginIn float64                 `json:"safe_margin_in,omitempty"` // Negative disables the edge check
	Workers      int                     `json:"workers,omitempty"`

	// Render options
	Formats     []string `json:"formats,omitempty"`
	Scale       float64  `json:"scale,omitempty"`
	GridOverlay bool     `json:"grid_overlay,omitempty"`
	Annotations bool     `json:"annotations,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-"`
}

// Layout is the serializable product of composition: everything a document
// writer needs to draw the deck, plus the validation report for the run.
type Layout struct {
	DeckTitle string          `json:"deck_title" bson:"deck_title"`
	ThemeID   string          `json:"theme_id" bson:"theme_id"`
	Slides    []SlideLayout   `json:"slides" bson:"slides"`
	Report    report.Snapshot `json:"report" bson:"report"`
}

// SlideLayout is one composed slide: its archetype and placements in
// z-order (background first).
type SlideLayout struct {
	Index      int              `json:"index" bson:"index"`
	Archetype  deck.Archetype   `json:"archetype" bson:"archetype"`
	Placements []deck.Placement `json:"placements" bson:"placements"`
}

// Gate returns an error when the layout's report contains error-level
// findings. Callers that must not ship broken geometry check Gate before
// using the layout.
func (l Layout) Gate() error {
	if l.Report.HasErrors {
		return errors.New(errors.ErrCodeInvalidDeck,
			"deck failed validation: %s", l.Report.Summary)
	}
	return nil
}

// MarshalLayout serializes a layout to indented JSON.
func MarshalLayout(l Layout) ([]byte, error) {
	return json.MarshalIndent(l, "", "  ")
}

// UnmarshalLayout deserializes a layout from JSON.
func UnmarshalLayout(data []byte) (Layout, error) {
	var l Layout
	if err := json.Unmarshal(data, &l); err != nil {
		return Layout{}, fmt.Errorf("decode layout: %w", err)
	}
	return l, nil
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Deck is the normalized deck that was composed.
	Deck deck.Deck

	// DeckHash is the content hash of the input deck.
	DeckHash string

	// Layout contains the composed slides and the validation report.
	Layout Layout

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	SlideCount     int
	PlacementCount int
	NormalizeTime  time.Duration
	ComposeTime    time.Duration
	RenderTime     time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	NormalizeHit bool // Whether the normalized deck came from cache
	ComposeHit   bool // Whether the composed slides came from cache
	RenderHit    bool // Whether all artifacts came from cache
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return fmt.Errorf("invalid format: %q (must be one of: svg, json)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks required fields and applies defaults for the full pipeline.
// This method is idempotent - calling it multiple times has the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := o.ValidateForCompose(); err != nil {
		return err
	}
	o.SetRenderDefaults()
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// SetComposeDefaults sets default values for slide composition.
func (o *Options) SetComposeDefaults() {
	if o.Canvas == (tokens.CanvasDimensions{}) {
		o.Canvas = tokens.DefaultCanvas()
	}
	if o.Grid == (grid.Config{}) {
		o.Grid = grid.DefaultConfig()
	}
	if o.SafeMarginIn == 0 {
		o.SafeMarginIn = validate.DefaultSafeMargin
	}
	if o.Workers == 0 {
		o.Workers = DefaultWorkers
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// ValidateForCompose validates and sets defaults for slide composition.
func (o *Options) ValidateForCompose() error {
	o.SetComposeDefaults()
	if err := o.Canvas.Validate(); err != nil {
		return err
	}
	if err := o.Grid.Validate(); err != nil {
		return err
	}
	if o.Workers < 1 {
		return fmt.Errorf("workers must be positive, got %d", o.Workers)
	}
	return nil
}

// SetRenderDefaults sets default values for rendering.
func (o *Options) SetRenderDefaults() {
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatJSON}
	}
	if o.Scale == 0 {
		o.Scale = DefaultScale
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// ValidateForRender validates and sets defaults for rendering.
func (o *Options) ValidateForRender() error {
	o.SetComposeDefaults()
	o.SetRenderDefaults()
	if o.Scale < 0 {
		return fmt.Errorf("scale must be positive, got %v", o.Scale)
	}
	return ValidateFormats(o.Formats)
}

// ShouldNormalize returns whether content normalization should run.
func (o *Options) ShouldNormalize() bool {
	return !o.SkipNormalize
}

// LayoutKeyOpts returns cache key options for slide composition.
func (o *Options) LayoutKeyOpts(themeID string) cache.LayoutKeyOpts {
	return cache.LayoutKeyOpts{
		ThemeID:      themeID,
		CanvasWidth:  o.Canvas.Width,
		CanvasHeight: o.Canvas.Height,
		Columns:      o.Grid.Columns,
		Gutter:       o.Grid.Gutter,
		MarginLeft:   o.Grid.MarginLeft,
		MarginRight:  o.Grid.MarginRight,
		MarginTop:    o.Grid.MarginTop,
		MarginBottom: o.Grid.MarginBottom,
		Rows:         o.Grid.Rows,
		SafeMargin:   o.SafeMarginIn,
		Normalize:    o.ShouldNormalize(),
	}
}

// ArtifactKeyOpts returns cache key options for artifact rendering.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	return cache.ArtifactKeyOpts{
		Format:      format,
		Scale:       o.Scale,
		GridOverlay: o.GridOverlay,
		Annotations: o.Annotations,
	}
}
