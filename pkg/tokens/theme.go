package tokens

import (
	"fmt"

	"github.com/neuradeck/slidekit/pkg/errors"
)

// Fallback font families used when a theme omits one.
const (
	FallbackTitleFont = "Calibri"
	FallbackBodyFont  = "Arial"
)

// FontPair names the title and body font families of a theme.
type FontPair struct {
	Title string `json:"title" toml:"title" bson:"title"`
	Body  string `json:"body" toml:"body" bson:"body"`
}

// Theme bundles the design tokens for one visual identity. Themes are
// immutable once constructed; catalog accessors hand out copies.
type Theme struct {
	ID         string          `json:"id" toml:"id" bson:"id"`
	Name       string          `json:"name" toml:"name" bson:"name"`
	Palette    ColorPalette    `json:"palette" toml:"colors" bson:"palette"`
	Fonts      FontPair        `json:"fonts" toml:"fonts" bson:"fonts"`
	Typography TypographyScale `json:"typography" toml:"typography" bson:"typography"`
	Spacing    SpacingScale    `json:"spacing" toml:"spacing" bson:"spacing"`
}

// Validate checks identifier, fonts, and scales.
func (t Theme) Validate() error {
	if err := errors.ValidateThemeID(t.ID); err != nil {
		return err
	}
	if t.Name == "" {
		return fmt.Errorf("theme %q: name cannot be empty", t.ID)
	}
	if err := errors.ValidateFontName(t.Fonts.Title); err != nil {
		return fmt.Errorf("theme %q: title font: %w", t.ID, err)
	}
	if err := errors.ValidateFontName(t.Fonts.Body); err != nil {
		return fmt.Errorf("theme %q: body font: %w", t.ID, err)
	}
	if err := t.Typography.Validate(); err != nil {
		return fmt.Errorf("theme %q: %w", t.ID, err)
	}
	if err := t.Spacing.Validate(); err != nil {
		return fmt.Errorf("theme %q: %w", t.ID, err)
	}
	return nil
}

// clone returns a deep copy so catalog lookups never share slice state.
func (t Theme) clone() Theme {
	out := t
	out.Spacing = append(SpacingScale(nil), t.Spacing...)
	return out
}
