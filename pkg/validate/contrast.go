package validate

import (
	"fmt"
	"math"

	"github.com/neuradeck/slidekit/pkg/tokens"
)

// WCAG 2.1 AA contrast thresholds.
const (
	AAContrastNormal = 4.5
	AAContrastLarge  = 3.0
)

// Contrast checks foreground-on-background readability against WCAG AA.
// Ratios below 3.0 for large text or 4.5 for normal text are errors;
// passing pairs produce an info record carrying the measured ratio.
func Contrast(fg, bg tokens.RGB, largeText bool, ref string) Result {
	ratio := ContrastRatio(fg, bg)

	threshold := AAContrastNormal
	kind := "normal text"
	if largeText {
		threshold = AAContrastLarge
		kind = "large text"
	}

	if ratio < threshold {
		return Result{
			Severity: SeverityError,
			Check:    CheckContrast,
			Ref:      ref,
			Message: fmt.Sprintf("contrast ratio %.2f of %s on %s is below the %.1f AA threshold for %s",
				ratio, fg.Hex(), bg.Hex(), threshold, kind),
		}
	}
	return Result{
		Severity: SeverityInfo,
		Check:    CheckContrast,
		Ref:      ref,
		Message:  fmt.Sprintf("contrast ratio %.2f meets AA for %s", ratio, kind),
	}
}

// ContrastRatio returns the WCAG contrast ratio between two colors, from
// 1.0 (identical) to 21.0 (black on white). Argument order does not matter.
func ContrastRatio(a, b tokens.RGB) float64 {
	la := RelativeLuminance(a)
	lb := RelativeLuminance(b)
	lighter := math.Max(la, lb)
	darker := math.Min(la, lb)
	return (lighter + 0.05) / (darker + 0.05)
}

// RelativeLuminance returns the WCAG relative luminance of a color: each
// sRGB channel is linearized, then the channels are combined with the
// standard perceptual weights.
func RelativeLuminance(c tokens.RGB) float64 {
	r := linearize(float64(c.R) / 255)
	g := linearize(float64(c.G) / 255)
	b := linearize(float64(c.B) / 255)
	return 0.2126*r + 0.7152*g + 0.0722*b
}

func linearize(channel float64) float64 {
	if channel <= 0.04045 {
		return channel / 12.92
	}
	return math.Pow((channel+0.055)/1.055, 2.4)
}
