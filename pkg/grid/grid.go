// Package grid converts (column, span) requests into absolute horizontal
// positions inside the usable canvas area.
//
// The usable area is the canvas width minus the left and right margins,
// divided into equal-width columns separated by gutters:
//
//	column width = (usable - (columns-1) * gutter) / columns
//
// A span of n columns covers n column widths plus the n-1 interior gutters.
// All results are deterministic and side-effect free; configuration problems
// surface as [*ConfigError] at construction, impossible requests as
// [*SpanError] per call.
package grid

import (
	"github.com/neuradeck/slidekit/pkg/tokens"
)

// Config holds the grid parameters. Margins and gutter are in canvas inches.
// Rows sets the vertical granularity used for row-based placement.
type Config struct {
	Columns      int     `json:"columns" toml:"columns" bson:"columns"`
	Gutter       float64 `json:"gutter" toml:"gutter" bson:"gutter"`
	MarginLeft   float64 `json:"margin_left" toml:"margin_left" bson:"margin_left"`
	MarginRight  float64 `json:"margin_right" toml:"margin_right" bson:"margin_right"`
	MarginTop    float64 `json:"margin_top" toml:"margin_top" bson:"margin_top"`
	MarginBottom float64 `json:"margin_bottom" toml:"margin_bottom" bson:"margin_bottom"`
	Rows         int     `json:"rows" toml:"rows" bson:"rows"`
}

// DefaultConfig returns the standard 12-column grid.
func DefaultConfig() Config {
	return Config{
		Columns:      12,
		Gutter:       0.25,
		MarginLeft:   0.75,
		MarginRight:  0.75,
		MarginTop:    0.5,
		MarginBottom: 0.5,
		Rows:         12,
	}
}

// Validate checks field ranges. It does not check against a canvas; New does
// the width feasibility check.
func (c Config) Validate() error {
	if c.Columns < 1 {
		return &ConfigError{Reason: "column count must be at least 1"}
	}
	if c.Gutter < 0 {
		return &ConfigError{Reason: "gutter cannot be negative"}
	}
	if c.MarginLeft < 0 || c.MarginRight < 0 || c.MarginTop < 0 || c.MarginBottom < 0 {
		return &ConfigError{Reason: "margins cannot be negative"}
	}
	if c.Rows < 1 {
		return &ConfigError{Reason: "row count must be at least 1"}
	}
	return nil
}

// Grid computes horizontal placement for one canvas and configuration pair.
// Construct with New; the zero value is not usable.
type Grid struct {
	canvas   tokens.CanvasDimensions
	cfg      Config
	colWidth float64
}

// New validates the configuration against the canvas and returns a grid.
// It fails with [*ConfigError] when margins and gutters leave no positive
// column width.
func New(canvas tokens.CanvasDimensions, cfg Config) (*Grid, error) {
	if err := canvas.Validate(); err != nil {
		return nil, &ConfigError{Reason: err.Error()}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	usable := canvas.Width - cfg.MarginLeft - cfg.MarginRight
	colWidth := (usable - float64(cfg.Columns-1)*cfg.Gutter) / float64(cfg.Columns)
	if colWidth <= 0 {
		return nil, &ConfigError{Reason: "margins and gutters leave no usable column width"}
	}
	if canvas.Height-cfg.MarginTop-cfg.MarginBottom <= 0 {
		return nil, &ConfigError{Reason: "margins leave no usable height"}
	}

	return &Grid{canvas: canvas, cfg: cfg, colWidth: colWidth}, nil
}

// ColumnPosition returns the absolute x position and width of a region
// starting at 0-based column col and spanning span columns. It fails with
// [*SpanError] when the request does not fit the grid.
func (g *Grid) ColumnPosition(col, span int) (x, width float64, err error) {
	if col < 0 || span < 1 || col+span > g.cfg.Columns {
		return 0, 0, &SpanError{Col: col, Span: span, Columns: g.cfg.Columns}
	}

	x = g.cfg.MarginLeft + float64(col)*(g.colWidth+g.cfg.Gutter)
	width = float64(span)*g.colWidth + float64(span-1)*g.cfg.Gutter
	return x, width, nil
}

// UsableWidth returns the canvas width minus horizontal margins.
func (g *Grid) UsableWidth() float64 {
	return g.canvas.Width - g.cfg.MarginLeft - g.cfg.MarginRight
}

// ColumnWidth returns the width of a single column.
func (g *Grid) ColumnWidth() float64 { return g.colWidth }

// Columns returns the configured column count.
func (g *Grid) Columns() int { return g.cfg.Columns }

// Config returns a copy of the grid configuration.
func (g *Grid) Config() Config { return g.cfg }

// Canvas returns the canvas the grid was built for.
func (g *Grid) Canvas() tokens.CanvasDimensions { return g.canvas }
