package textfit

import (
	"math"
	"strings"
)

// fitStep is the size decrement between fitting probes, in points.
const fitStep = 1.0

// fitEps absorbs float noise in line-count and loop-bound comparisons.
const fitEps = 1e-9

// Fit is the result of a font-size search.
type Fit struct {
	// Lines is the text wrapped at the chosen size.
	Lines []string
	// Size is the chosen font size in points, always within the requested
	// [min, max] range.
	Size float64
	// Truncated reports that no size in range fit and the text was cut to
	// the line budget at the minimum size. This is a recoverable
	// degradation, not a failure.
	Truncated bool
}

// MaxLinesForHeight returns how many lines of the given size and line-height
// multiplier fit into heightPt. Exact multiples count as fitting.
func MaxLinesForHeight(heightPt, fontSizePt, lineHeight float64) int {
	if heightPt <= 0 || fontSizePt <= 0 || lineHeight <= 0 {
		return 0
	}
	return int(math.Floor(heightPt/(fontSizePt*lineHeight) + fitEps))
}

// FitFontSize searches downward from startSize for the largest size at which
// text wraps into widthPt x heightPt given the line-height multiplier.
//
// startSize is clamped into [minSize, maxSize]; the search probes whole
// fitStep decrements and therefore terminates after at most
// maxSize-minSize+1 probes. When no size in range fits, the text is wrapped
// at minSize with the line budget enforced (truncating with [Ellipsis]) and
// the result is marked Truncated.
func FitFontSize(text string, widthPt, heightPt, minSize, maxSize, startSize float64, fontName string, lineHeight float64) Fit {
	if minSize <= 0 {
		minSize = 1
	}
	if maxSize < minSize {
		maxSize = minSize
	}
	if lineHeight <= 0 {
		lineHeight = 1.0
	}

	start := math.Min(math.Max(startSize, minSize), maxSize)
	if strings.TrimSpace(text) == "" {
		return Fit{Size: start}
	}

	for size := start; size >= minSize-fitEps; size -= fitStep {
		budget := MaxLinesForHeight(heightPt, size, lineHeight)
		if budget < 1 {
			continue
		}
		lines := wrapAll(text, widthPt, size, fontName)
		if len(lines) <= budget {
			return Fit{Lines: lines, Size: size}
		}
	}

	// Whole-step decrements from start can step past a fractional minSize,
	// so probe the floor itself before declaring defeat.
	budget := MaxLinesForHeight(heightPt, minSize, lineHeight)
	if budget >= 1 {
		lines := wrapAll(text, widthPt, minSize, fontName)
		if len(lines) <= budget {
			return Fit{Lines: lines, Size: minSize}
		}
	}

	if budget < 1 {
		budget = 1
	}
	return Fit{
		Lines:     WrapLines(text, widthPt, minSize, fontName, budget),
		Size:      minSize,
		Truncated: true,
	}
}
