// Package validate runs quality checks over placed slide elements.
//
// Checks never fail: each invocation returns exactly one [Result] whose
// severity classifies the finding. Errors mark output a caller should not
// ship (element outside the canvas, unreadable contrast, unwrappable text),
// warnings mark degradations (safe-margin violations, truncation), and info
// records a pass so reports stay complete. All checks are pure functions
// over their inputs and safe to call concurrently.
package validate

import (
	"fmt"

	"github.com/neuradeck/slidekit/pkg/layout"
	"github.com/neuradeck/slidekit/pkg/textfit"
	"github.com/neuradeck/slidekit/pkg/tokens"
)

// DefaultSafeMargin is the inset from the canvas edges, in inches, inside
// which placed content triggers a safe-margin warning.
const DefaultSafeMargin = 0.1

// boundsEps keeps regions that end exactly on a canvas edge from reading as
// outside it.
const boundsEps = 1e-9

// Severity classifies a validation finding.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

// Check names the validation that produced a finding. The content and
// duplicate checks are emitted by the normalization stage rather than by
// this package.
type Check string

const (
	CheckBounds    Check = "bounds"
	CheckContrast  Check = "contrast"
	CheckOverflow  Check = "text_overflow"
	CheckContent   Check = "content"
	CheckDuplicate Check = "duplicate"
)

// Result is one validation finding. Results are immutable values; Ref names
// the element checked (for example "slide 3: title") so findings stay
// readable after aggregation.
type Result struct {
	Severity Severity `json:"severity" bson:"severity"`
	Check    Check    `json:"check" bson:"check"`
	Ref      string   `json:"ref" bson:"ref"`
	Message  string   `json:"message" bson:"message"`
}

// Bounds checks that a region lies inside the canvas and clear of its
// edges. Outside the canvas is an error; inside but within safeMargin of an
// edge is a warning; otherwise an info pass. safeMargin <= 0 disables the
// margin warning.
func Bounds(b layout.Bounds, canvas tokens.CanvasDimensions, safeMargin float64, ref string) Result {
	if b.X < -boundsEps || b.Y < -boundsEps ||
		b.Right() > canvas.Width+boundsEps || b.Bottom() > canvas.Height+boundsEps {
		return Result{
			Severity: SeverityError,
			Check:    CheckBounds,
			Ref:      ref,
			Message: fmt.Sprintf("region [%.2f %.2f %.2f %.2f] extends outside the %g x %g canvas",
				b.X, b.Y, b.Width, b.Height, canvas.Width, canvas.Height),
		}
	}

	if safeMargin > 0 &&
		(b.X < safeMargin || b.Y < safeMargin ||
			b.Right() > canvas.Width-safeMargin || b.Bottom() > canvas.Height-safeMargin) {
		return Result{
			Severity: SeverityWarning,
			Check:    CheckBounds,
			Ref:      ref,
			Message:  fmt.Sprintf("region is within the %g in safe margin of a canvas edge", safeMargin),
		}
	}

	return Result{
		Severity: SeverityInfo,
		Check:    CheckBounds,
		Ref:      ref,
		Message:  "region inside the safe area",
	}
}

// TextOverflow checks whether text fits the region it was placed into. The
// region width is converted to points and the text wrapped exactly as the
// fitter wraps it, without a line limit. A first line wider than the region
// (a token that could not be broken down enough) is an error; needing more
// lines than the budget allows is a warning since the rendered text gets
// truncated; anything else is an info pass, an exact fill included.
// maxLines <= 0 means the region imposes no line budget.
func TextOverflow(text string, b layout.Bounds, fontSizePt float64, fontName string, maxLines int, ref string) Result {
	widthPt := b.Width * tokens.PointsPerInch
	lines := textfit.WrapLines(text, widthPt, fontSizePt, fontName, 0)

	if len(lines) == 0 {
		return Result{
			Severity: SeverityInfo,
			Check:    CheckOverflow,
			Ref:      ref,
			Message:  "no text to place",
		}
	}

	if textfit.EstimateWidth(lines[0], fontSizePt, fontName) > widthPt {
		return Result{
			Severity: SeverityError,
			Check:    CheckOverflow,
			Ref:      ref,
			Message:  fmt.Sprintf("text cannot wrap into %.2f in at %g pt", b.Width, fontSizePt),
		}
	}

	if maxLines > 0 && len(lines) > maxLines {
		return Result{
			Severity: SeverityWarning,
			Check:    CheckOverflow,
			Ref:      ref,
			Message:  fmt.Sprintf("text needs %d lines but only %d fit", len(lines), maxLines),
		}
	}

	if maxLines > 0 {
		return Result{
			Severity: SeverityInfo,
			Check:    CheckOverflow,
			Ref:      ref,
			Message:  fmt.Sprintf("text fits in %d of %d lines", len(lines), maxLines),
		}
	}
	return Result{
		Severity: SeverityInfo,
		Check:    CheckOverflow,
		Ref:      ref,
		Message:  fmt.Sprintf("text fits in %d lines", len(lines)),
	}
}
