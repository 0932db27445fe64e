package deck

import (
	"strings"

	"github.com/neuradeck/slidekit/pkg/layout"
	"github.com/neuradeck/slidekit/pkg/tokens"
)

// Role classifies what a placement holds. Text roles carry wrapped lines
// and a font size; background and decor are fills.
type Role string

const (
	RoleBackground Role = "background"
	RoleTitle      Role = "title"
	RoleSubtitle   Role = "subtitle"
	RoleHeading    Role = "heading"
	RoleBody       Role = "body"
	RoleChart      Role = "chart"
	RoleTable      Role = "table"
	RoleCaption    Role = "caption"
	RoleDecor      Role = "decor"
)

// Decorative chrome dimensions shared by the archetypes, in inches.
// Decor deliberately crosses the text margins, so it places raw bounds
// rather than grid regions.
const (
	AccentBarHeightIn    = 0.8
	AccentRailWidthIn    = 0.06
	BottomBorderHeightIn = 0.06
)

// Placement is one positioned region of a composed slide. Bounds are in
// canvas inches. FontSize is in points and zero for fill-only roles.
type Placement struct {
	Role     Role          `json:"role" bson:"role"`
	Bounds   layout.Bounds `json:"bounds" bson:"bounds"`
	Lines    []string      `json:"lines,omitempty" bson:"lines,omitempty"`
	FontSize float64       `json:"font_size,omitempty" bson:"font_size,omitempty"`
	Font     string        `json:"font,omitempty" bson:"font,omitempty"`
	Bold     bool          `json:"bold,omitempty" bson:"bold,omitempty"`
	Centered bool          `json:"centered,omitempty" bson:"centered,omitempty"`
	Color    tokens.RGB    `json:"color" bson:"color"`
}

// Text joins the wrapped lines back into a single string.
func (p Placement) Text() string {
	return strings.Join(p.Lines, "\n")
}

// IsText reports whether the placement carries renderable text.
func (p Placement) IsText() bool {
	return p.FontSize > 0 && len(p.Lines) > 0
}
