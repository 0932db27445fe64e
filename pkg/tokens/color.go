package tokens

import (
	"fmt"
	"strings"
)

// RGB is a color with 8-bit channels.
//
// It marshals to and from hex text ("#1b3a5c") in JSON and TOML, and to a
// three-field document in BSON.
type RGB struct {
	R uint8 `bson:"r"`
	G uint8 `bson:"g"`
	B uint8 `bson:"b"`
}

// ParseHex parses a six-digit hex color literal, with or without a leading #.
func ParseHex(s string) (RGB, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(h) != 6 {
		return RGB{}, fmt.Errorf("invalid hex color %q: want 6 hex digits", s)
	}

	var r, g, b uint8
	if _, err := fmt.Sscanf(strings.ToLower(h), "%02x%02x%02x", &r, &g, &b); err != nil {
		return RGB{}, fmt.Errorf("invalid hex color %q: %w", s, err)
	}

	return RGB{R: r, G: g, B: b}, nil
}

// MustHex parses a hex color literal and panics on failure.
// Intended for package-level theme tables.
func MustHex(s string) RGB {
	c, err := ParseHex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Hex returns the lowercase "#rrggbb" form.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// String implements fmt.Stringer.
func (c RGB) String() string { return c.Hex() }

// MarshalText implements encoding.TextMarshaler, emitting the hex form.
func (c RGB) MarshalText() ([]byte, error) {
	return []byte(c.Hex()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler, accepting hex literals.
func (c *RGB) UnmarshalText(text []byte) error {
	parsed, err := ParseHex(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// ColorPalette holds the theme color roles used by slide archetypes.
type ColorPalette struct {
	Background          RGB `json:"background" toml:"background" bson:"background"`
	BackgroundSecondary RGB `json:"background_secondary" toml:"background_secondary" bson:"background_secondary"`
	Accent              RGB `json:"accent" toml:"accent" bson:"accent"`
	AccentSecondary     RGB `json:"accent_secondary" toml:"accent_secondary" bson:"accent_secondary"`
	TextPrimary         RGB `json:"text_primary" toml:"text_primary" bson:"text_primary"`
	TextSecondary       RGB `json:"text_secondary" toml:"text_secondary" bson:"text_secondary"`
}
