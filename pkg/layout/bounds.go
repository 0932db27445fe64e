package layout

// Bounds is an axis-aligned rectangle on the slide canvas, in inches from
// the top-left corner. Y grows downward. Values are never mutated after
// creation; helpers return derived values or new rectangles.
type Bounds struct {
	X      float64 `json:"x" bson:"x"`
	Y      float64 `json:"y" bson:"y"`
	Width  float64 `json:"width" bson:"width"`
	Height float64 `json:"height" bson:"height"`
}

// Right returns the right edge X coordinate.
func (b Bounds) Right() float64 {
	return b.X + b.Width
}

// Bottom returns the bottom edge Y coordinate.
func (b Bounds) Bottom() float64 {
	return b.Y + b.Height
}

// ContainsPoint reports whether the point lies inside the rectangle.
// Points on an edge count as inside.
func (b Bounds) ContainsPoint(x, y float64) bool {
	return x >= b.X && x <= b.Right() &&
		y >= b.Y && y <= b.Bottom()
}

// Contains reports whether other lies entirely inside b. Shared edges count
// as contained.
func (b Bounds) Contains(other Bounds) bool {
	return other.X >= b.X && other.Right() <= b.Right() &&
		other.Y >= b.Y && other.Bottom() <= b.Bottom()
}

// Intersects reports whether the interiors of the two rectangles overlap.
// Rectangles that only touch along an edge do not intersect.
func (b Bounds) Intersects(other Bounds) bool {
	return b.X < other.Right() && other.X < b.Right() &&
		b.Y < other.Bottom() && other.Y < b.Bottom()
}

// InsetBy shrinks the rectangle by d on every side. An inset larger than
// half an extent collapses that extent to zero around the center.
func (b Bounds) InsetBy(d float64) Bounds {
	out := Bounds{
		X:      b.X + d,
		Y:      b.Y + d,
		Width:  b.Width - 2*d,
		Height: b.Height - 2*d,
	}
	if out.Width < 0 {
		out.X = b.X + b.Width/2
		out.Width = 0
	}
	if out.Height < 0 {
		out.Y = b.Y + b.Height/2
		out.Height = 0
	}
	return out
}
