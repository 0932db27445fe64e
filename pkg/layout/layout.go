// Package layout converts grid coordinates into concrete slide rectangles.
//
// A [Builder] binds canvas dimensions to a grid configuration and exposes
// the named region constructors slides are assembled from. Horizontal
// placement is delegated to [grid.Grid]; vertical placement divides the
// canvas height into Rows equal row units, with row 0 at the very top of
// the canvas. Offsets and heights are measured in row units and may be
// fractional.
//
// Every rectangle a Builder returns lies inside the canvas and ends above
// the bottom margin; requests that cannot satisfy that fail with
// [*OverflowError].
package layout

import (
	"fmt"

	"github.com/neuradeck/slidekit/pkg/grid"
	"github.com/neuradeck/slidekit/pkg/tokens"
)

// overflowEps absorbs float noise when a region ends exactly on the limit.
const overflowEps = 1e-9

// OverflowError reports a vertical extent that cannot be placed: a negative
// row offset, a non-positive height, or a region ending below the usable
// canvas height. RowOffset and Height are in row units; Bottom and Limit in
// inches.
type OverflowError struct {
	RowOffset float64
	Height    float64
	Bottom    float64
	Limit     float64
}

func (e *OverflowError) Error() string {
	switch {
	case e.RowOffset < 0:
		return fmt.Sprintf("region overflow: negative row offset %g", e.RowOffset)
	case e.Height <= 0:
		return fmt.Sprintf("region overflow: height %g rows is not positive", e.Height)
	default:
		return fmt.Sprintf("region overflow: bottom edge %g in exceeds usable height %g in", e.Bottom, e.Limit)
	}
}

// Builder places regions onto one canvas and grid pair. Construct with New;
// the zero value is not usable. Builders are immutable and safe for
// concurrent use.
type Builder struct {
	canvas  tokens.CanvasDimensions
	grid    *grid.Grid
	rowUnit float64
	limit   float64
}

// New validates the canvas and configuration and returns a Builder.
// Validation is the same as [grid.New]; row granularity comes from
// cfg.Rows.
func New(canvas tokens.CanvasDimensions, cfg grid.Config) (*Builder, error) {
	g, err := grid.New(canvas, cfg)
	if err != nil {
		return nil, err
	}
	return &Builder{
		canvas:  canvas,
		grid:    g,
		rowUnit: canvas.Height / float64(cfg.Rows),
		limit:   canvas.Height - cfg.MarginBottom,
	}, nil
}

// RowUnit returns the height of one row in inches.
func (b *Builder) RowUnit() float64 { return b.rowUnit }

// Grid returns the underlying column grid.
func (b *Builder) Grid() *grid.Grid { return b.grid }

// Canvas returns the canvas the builder places onto.
func (b *Builder) Canvas() tokens.CanvasDimensions { return b.canvas }

// Region places a rectangle spanning the given columns and rows. It is the
// general form behind the named constructors: x and width come from the
// grid, y is rowOffset row units down from the canvas top. The region must
// end above the bottom margin.
func (b *Builder) Region(col, span int, rowOffset, height float64) (Bounds, error) {
	x, width, err := b.grid.ColumnPosition(col, span)
	if err != nil {
		return Bounds{}, err
	}
	if rowOffset < 0 || height <= 0 {
		return Bounds{}, &OverflowError{RowOffset: rowOffset, Height: height, Limit: b.limit}
	}

	y := rowOffset * b.rowUnit
	h := height * b.rowUnit
	if y+h > b.limit+overflowEps {
		return Bounds{}, &OverflowError{RowOffset: rowOffset, Height: height, Bottom: y + h, Limit: b.limit}
	}
	return Bounds{X: x, Y: y, Width: width, Height: h}, nil
}

// TitleArea places a full-width region for a slide title.
func (b *Builder) TitleArea(rowOffset, height float64) (Bounds, error) {
	return b.Region(0, b.grid.Columns(), rowOffset, height)
}

// ContentArea places a full-width region for body content. It behaves like
// TitleArea; the separate name keeps call sites readable.
func (b *Builder) ContentArea(rowOffset, height float64) (Bounds, error) {
	return b.Region(0, b.grid.Columns(), rowOffset, height)
}

// ChartArea places a full-width region for an embedded chart.
func (b *Builder) ChartArea(rowOffset, height float64) (Bounds, error) {
	return b.Region(0, b.grid.Columns(), rowOffset, height)
}

// TwoColumn places two half-width regions with one gutter between them.
// Odd column counts give the extra column to the left side. Grids with a
// single column cannot host two regions and fail with [*grid.SpanError].
func (b *Builder) TwoColumn(rowOffset, height float64) (left, right Bounds, err error) {
	cols := b.grid.Columns()
	leftSpan := cols/2 + cols%2

	left, err = b.Region(0, leftSpan, rowOffset, height)
	if err != nil {
		return Bounds{}, Bounds{}, err
	}
	right, err = b.Region(leftSpan, cols-leftSpan, rowOffset, height)
	if err != nil {
		return Bounds{}, Bounds{}, err
	}
	return left, right, nil
}
