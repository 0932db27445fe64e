// Package textfit estimates rendered text width and fits text into bounded
// regions without access to real font metrics.
//
// The estimator is a per-family average-width heuristic: the width of a
// string is its display-cell count (wide CJK runes count double) times an
// average glyph width in em, times the font size. That makes every function
// here deterministic and monotonic, which keeps layout reproducible: the
// same text, size, and family always measure the same, and adding characters
// or points never shrinks the result.
//
// All widths and sizes are in typographic points. Callers working in canvas
// inches convert with tokens.PointsPerInch.
package textfit

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Ellipsis marks truncated output in wrapped lines.
const Ellipsis = "..."

// defaultWidthFactor is the average glyph width in em for unknown families.
const defaultWidthFactor = 0.55

// fontWidthFactors holds tuned average glyph widths in em per display cell,
// keyed by lowercase family name. Values were eyeballed against common
// renderings; exact numbers matter less than stability.
var fontWidthFactors = map[string]float64{
	"arial":              0.53,
	"calibri":            0.50,
	"georgia":            0.58,
	"montserrat":         0.58,
	"open sans":          0.55,
	"lato":               0.53,
	"roboto":             0.53,
	"oswald":             0.48,
	"playfair display":   0.57,
	"merriweather":       0.60,
	"inter":              0.54,
	"cormorant garamond": 0.52,
	"source sans pro":    0.52,
	"libre baskerville":  0.60,
	"nunito sans":        0.54,
	"dm serif display":   0.58,
	"dm sans":            0.54,
	"times new roman":    0.50,
	"courier new":        0.60,
}

// WidthFactor returns the average glyph width in em for a font family.
// Matching is case-insensitive; unknown families get the default factor.
func WidthFactor(fontName string) float64 {
	if f, ok := fontWidthFactors[strings.ToLower(strings.TrimSpace(fontName))]; ok {
		return f
	}
	return defaultWidthFactor
}

// EstimateWidth approximates the rendered width of text in points.
//
// The result is 0 for empty text, non-decreasing in both text length and
// font size, and identical across calls with identical inputs.
func EstimateWidth(text string, fontSizePt float64, fontName string) float64 {
	if text == "" || fontSizePt <= 0 {
		return 0
	}
	cells := runewidth.StringWidth(text)
	return fontSizePt * WidthFactor(fontName) * float64(cells)
}
