package tokens

import (
	"fmt"
	"math"
)

// spacingEps absorbs float noise when comparing spacing values.
const spacingEps = 1e-9

// SpacingScale is the ordered ascending set of allowed spacing values in
// points. Layout code is expected to pick gaps and paddings from this set;
// the scale enforces that as a design convention, not a runtime invariant.
type SpacingScale []float64

// DefaultSpacing returns the standard multiples-of-four progression.
func DefaultSpacing() SpacingScale {
	return SpacingScale{0, 4, 8, 12, 16, 24, 32, 48}
}

// Contains reports whether v is one of the allowed spacing values.
func (s SpacingScale) Contains(v float64) bool {
	for _, allowed := range s {
		if math.Abs(allowed-v) < spacingEps {
			return true
		}
	}
	return false
}

// Nearest returns the allowed value closest to v; ties resolve toward the
// smaller value. An empty scale returns v unchanged.
func (s SpacingScale) Nearest(v float64) float64 {
	if len(s) == 0 {
		return v
	}

	best := s[0]
	bestDist := math.Abs(s[0] - v)
	for _, allowed := range s[1:] {
		if d := math.Abs(allowed - v); d < bestDist-spacingEps {
			best = allowed
			bestDist = d
		}
	}
	return best
}

// Validate checks that the scale is non-empty, non-negative, and strictly
// ascending.
func (s SpacingScale) Validate() error {
	if len(s) == 0 {
		return fmt.Errorf("spacing scale cannot be empty")
	}

	prev := math.Inf(-1)
	for i, v := range s {
		if v < 0 {
			return fmt.Errorf("spacing value at index %d is negative: %v", i, v)
		}
		if v <= prev {
			return fmt.Errorf("spacing scale must be strictly ascending at index %d: %v <= %v", i, v, prev)
		}
		prev = v
	}

	return nil
}
