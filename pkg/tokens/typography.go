package tokens

import "fmt"

// Level identifies a semantic text role with a fixed size in the scale.
type Level string

// Semantic typography levels.
const (
	LevelTitle      Level = "title"
	LevelSubtitle   Level = "subtitle"
	LevelHeading    Level = "heading"
	LevelBody       Level = "body"
	LevelBodyLarge  Level = "body_large"
	LevelBullet     Level = "bullet"
	LevelChartTitle Level = "chart_title"
	LevelCaption    Level = "caption"
)

// TypographyScale maps semantic levels to point sizes and carries the two
// line-height multipliers used for vertical fitting. Values are fixed per
// theme and never mutated after construction.
type TypographyScale struct {
	Title      float64 `json:"title" toml:"title" bson:"title"`
	Subtitle   float64 `json:"subtitle" toml:"subtitle" bson:"subtitle"`
	Heading    float64 `json:"heading" toml:"heading" bson:"heading"`
	Body       float64 `json:"body" toml:"body" bson:"body"`
	BodyLarge  float64 `json:"body_large" toml:"body_large" bson:"body_large"`
	Bullet     float64 `json:"bullet" toml:"bullet" bson:"bullet"`
	ChartTitle float64 `json:"chart_title" toml:"chart_title" bson:"chart_title"`
	Caption    float64 `json:"caption" toml:"caption" bson:"caption"`

	// LineHeight is the normal line-height multiplier applied to body copy.
	LineHeight float64 `json:"line_height" toml:"line_height" bson:"line_height"`
	// LineHeightTight is used for headings and single-line regions.
	LineHeightTight float64 `json:"line_height_tight" toml:"line_height_tight" bson:"line_height_tight"`
}

// DefaultTypography returns the standard scale.
func DefaultTypography() TypographyScale {
	return TypographyScale{
		Title:           56,
		Subtitle:        28,
		Heading:         36,
		Body:            20,
		BodyLarge:       24,
		Bullet:          20,
		ChartTitle:      36,
		Caption:         14,
		LineHeight:      1.4,
		LineHeightTight: 1.1,
	}
}

// Size returns the point size for a semantic level.
// Unknown levels fall back to the body size.
func (s TypographyScale) Size(l Level) float64 {
	switch l {
	case LevelTitle:
		return s.Title
	case LevelSubtitle:
		return s.Subtitle
	case LevelHeading:
		return s.Heading
	case LevelBody:
		return s.Body
	case LevelBodyLarge:
		return s.BodyLarge
	case LevelBullet:
		return s.Bullet
	case LevelChartTitle:
		return s.ChartTitle
	case LevelCaption:
		return s.Caption
	default:
		return s.Body
	}
}

// Validate checks that every size and multiplier is positive.
func (s TypographyScale) Validate() error {
	sizes := map[string]float64{
		"title":       s.Title,
		"subtitle":    s.Subtitle,
		"heading":     s.Heading,
		"body":        s.Body,
		"body_large":  s.BodyLarge,
		"bullet":      s.Bullet,
		"chart_title": s.ChartTitle,
		"caption":     s.Caption,
	}
	for name, v := range sizes {
		if v <= 0 {
			return fmt.Errorf("typography size %q must be positive, got %v", name, v)
		}
	}

	if s.LineHeight <= 0 {
		return fmt.Errorf("line height must be positive, got %v", s.LineHeight)
	}
	if s.LineHeightTight <= 0 {
		return fmt.Errorf("tight line height must be positive, got %v", s.LineHeightTight)
	}

	return nil
}
