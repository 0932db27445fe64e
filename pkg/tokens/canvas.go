package tokens

import "fmt"

// PointsPerInch converts between canvas inches and typographic points.
const PointsPerInch = 72.0

// CanvasDimensions is the fixed slide surface in inches.
type CanvasDimensions struct {
	Width  float64 `json:"width" toml:"width" bson:"width"`
	Height float64 `json:"height" toml:"height" bson:"height"`
}

// DefaultCanvas returns the standard 4:3 presentation surface.
func DefaultCanvas() CanvasDimensions {
	return CanvasDimensions{Width: 10, Height: 7.5}
}

// WidescreenCanvas returns the 16:9 presentation surface.
func WidescreenCanvas() CanvasDimensions {
	return CanvasDimensions{Width: 13.333, Height: 7.5}
}

// Validate checks that both dimensions are positive.
func (c CanvasDimensions) Validate() error {
	if c.Width <= 0 {
		return fmt.Errorf("canvas width must be positive, got %v", c.Width)
	}
	if c.Height <= 0 {
		return fmt.Errorf("canvas height must be positive, got %v", c.Height)
	}
	return nil
}

// AspectRatio returns width divided by height.
func (c CanvasDimensions) AspectRatio() float64 {
	return c.Width / c.Height
}
