// Package wireframe renders composed slides as SVG wireframe pages.
//
// The output is a layout preview, not finished deck artwork: filled regions
// (backgrounds, accent bars, chart areas) render as solid rectangles, text
// regions render as dashed outlines with their wrapped lines, and options
// add a column-grid overlay and per-region annotations. Pages stack
// vertically so a whole deck reads as one scrollable document.
//
// Usage:
//
//	svg := wireframe.RenderSVG(canvas, pages,
//	    wireframe.WithScale(96),
//	    wireframe.WithGridOverlay(cfg),
//	    wireframe.WithAnnotations())
package wireframe

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/neuradeck/slidekit/pkg/deck"
	"github.com/neuradeck/slidekit/pkg/grid"
	"github.com/neuradeck/slidekit/pkg/tokens"
)

// DefaultScale is the pixel density in pixels per canvas inch used when no
// WithScale option is given.
const DefaultScale = 96.0

const (
	pageGap      = 24.0 // band around and between pages, in pixels
	lineAdvance  = 1.25 // vertical advance between text lines, as a multiple of font size
	chartLabelPt = 12.0 // font size for chart placeholder labels, in points
)

// Wireframe ink colors. Placement fills and text keep their theme colors;
// these cover the preview chrome around them.
const (
	pageStroke    = "#c8ccd2"
	textOutline   = "#b2b8c0"
	chartInk      = "#4a5058"
	overlayInk    = "#1f6feb"
	annotationInk = "#9a3412"
)

// Slide is one wireframe page: the placements of a composed slide plus a
// label shown above the page when annotations are enabled.
type Slide struct {
	Label      string
	Placements []deck.Placement
}

// Option configures the renderer.
type Option func(*renderer)

type renderer struct {
	scale       float64
	gridOverlay bool
	gridCfg     grid.Config
	annotations bool
}

// WithScale sets the render scale in pixels per canvas inch. Values that
// are not positive keep the default.
func WithScale(pixelsPerInch float64) Option {
	return func(r *renderer) {
		if pixelsPerInch > 0 {
			r.scale = pixelsPerInch
		}
	}
}

// WithGridOverlay draws the column grid and margin frame over every page.
func WithGridOverlay(cfg grid.Config) Option {
	return func(r *renderer) {
		r.gridOverlay = true
		r.gridCfg = cfg
	}
}

// WithAnnotations labels every page and tags each region with its role.
func WithAnnotations() Option { return func(r *renderer) { r.annotations = true } }

// RenderSVG renders the slides as vertically stacked wireframe pages.
// Placements draw in slice order, so composition paint order is preserved.
func RenderSVG(canvas tokens.CanvasDimensions, slides []Slide, opts ...Option) []byte {
	r := newRenderer(opts...)

	pageW := canvas.Width * r.scale
	pageH := canvas.Height * r.scale
	totalW := pageW + 2*pageGap
	totalH := float64(len(slides))*(pageH+pageGap) + pageGap

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		totalW, totalH, totalW, totalH)

	for i, s := range slides {
		y := pageGap + float64(i)*(pageH+pageGap)
		r.renderPage(&buf, canvas, s, pageGap, y)
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func newRenderer(opts ...Option) renderer {
	r := renderer{scale: DefaultScale}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

func (r *renderer) renderPage(buf *bytes.Buffer, canvas tokens.CanvasDimensions, s Slide, x, y float64) {
	pageW := canvas.Width * r.scale
	pageH := canvas.Height * r.scale

	fmt.Fprintf(buf, `  <g transform="translate(%.1f, %.1f)">`+"\n", x, y)
	fmt.Fprintf(buf, `    <rect class="wf-page" x="0" y="0" width="%.1f" height="%.1f" fill="#ffffff" stroke="%s"/>`+"\n",
		pageW, pageH, pageStroke)

	for _, p := range s.Placements {
		r.renderPlacement(buf, p)
	}
	if r.gridOverlay {
		r.renderGridOverlay(buf, canvas)
	}
	if r.annotations {
		r.renderAnnotations(buf, s)
	}

	buf.WriteString("  </g>\n")
}

// renderPlacement draws one region. Fill-only roles become solid rectangles,
// chart placeholders add a centered label, and text roles become dashed
// outlines with their wrapped lines in the placement color.
func (r *renderer) renderPlacement(buf *bytes.Buffer, p deck.Placement) {
	bx := p.Bounds.X * r.scale
	by := p.Bounds.Y * r.scale
	bw := p.Bounds.Width * r.scale
	bh := p.Bounds.Height * r.scale

	if p.IsText() {
		fmt.Fprintf(buf, `    <rect class="wf-%s" x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="none" stroke="%s" stroke-dasharray="4 3"/>`+"\n",
			p.Role, bx, by, bw, bh, textOutline)
		r.renderLines(buf, p, bx, by, bw)
		return
	}

	fmt.Fprintf(buf, `    <rect class="wf-%s" x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="%s"/>`+"\n",
		p.Role, bx, by, bw, bh, p.Color.Hex())

	if len(p.Lines) > 0 {
		labelPx := chartLabelPt / tokens.PointsPerInch * r.scale
		fmt.Fprintf(buf, `    <text x="%.1f" y="%.1f" text-anchor="middle" font-family="sans-serif" font-size="%.1f" fill="%s">%s</text>`+"\n",
			bx+bw/2, by+bh/2+labelPx/3, labelPx, chartInk, escapeXML(p.Text()))
	}
}

func (r *renderer) renderLines(buf *bytes.Buffer, p deck.Placement, bx, by, bw float64) {
	fontPx := p.FontSize / tokens.PointsPerInch * r.scale

	x := bx
	anchor := ""
	if p.Centered {
		x = bx + bw/2
		anchor = ` text-anchor="middle"`
	}
	weight := ""
	if p.Bold {
		weight = ` font-weight="bold"`
	}
	family := "sans-serif"
	if p.Font != "" {
		family = escapeXML(p.Font) + ", sans-serif"
	}

	for i, line := range p.Lines {
		baseline := by + fontPx + float64(i)*fontPx*lineAdvance
		fmt.Fprintf(buf, `    <text x="%.1f" y="%.1f"%s font-family="%s" font-size="%.1f"%s fill="%s">%s</text>`+"\n",
			x, baseline, anchor, family, fontPx, weight, p.Color.Hex(), escapeXML(line))
	}
}

// renderGridOverlay shades each column and frames the text margins. An
// overlay configuration the canvas cannot hold is skipped.
func (r *renderer) renderGridOverlay(buf *bytes.Buffer, canvas tokens.CanvasDimensions) {
	g, err := grid.New(canvas, r.gridCfg)
	if err != nil {
		return
	}

	cfg := g.Config()
	top := cfg.MarginTop * r.scale
	height := (canvas.Height - cfg.MarginTop - cfg.MarginBottom) * r.scale

	for col := 0; col < g.Columns(); col++ {
		x, width, err := g.ColumnPosition(col, 1)
		if err != nil {
			return
		}
		fmt.Fprintf(buf, `    <rect class="wf-grid-col" x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="%s" fill-opacity="0.08"/>`+"\n",
			x*r.scale, top, width*r.scale, height, overlayInk)
	}

	fmt.Fprintf(buf, `    <rect class="wf-grid-frame" x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="none" stroke="%s" stroke-opacity="0.4"/>`+"\n",
		cfg.MarginLeft*r.scale, top, g.UsableWidth()*r.scale, height, overlayInk)
}

// renderAnnotations writes the page label into the band above the page and
// tags each non-background region with its role.
func (r *renderer) renderAnnotations(buf *bytes.Buffer, s Slide) {
	if s.Label != "" {
		fmt.Fprintf(buf, `    <text class="wf-label" x="0" y="-7" font-family="sans-serif" font-size="12" fill="%s">%s</text>`+"\n",
			annotationInk, escapeXML(s.Label))
	}

	for _, p := range s.Placements {
		if p.Role == deck.RoleBackground {
			continue
		}
		fmt.Fprintf(buf, `    <text class="wf-tag" x="%.1f" y="%.1f" font-family="sans-serif" font-size="9" fill="%s">%s</text>`+"\n",
			p.Bounds.X*r.scale+3, p.Bounds.Y*r.scale+10, annotationInk, p.Role)
	}
}

var xmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&#34;",
	"'", "&#39;",
)

func escapeXML(s string) string { return xmlEscaper.Replace(s) }
