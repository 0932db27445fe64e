package tokens

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// themeDoc is the TOML wire form of one custom theme.
type themeDoc struct {
	ID         string            `toml:"id"`
	Name       string            `toml:"name"`
	Colors     map[string]string `toml:"colors"`
	Fonts      FontPair          `toml:"fonts"`
	Typography *TypographyScale  `toml:"typography"`
	Spacing    []float64         `toml:"spacing"`
}

type themeFile struct {
	Themes []themeDoc `toml:"theme"`
}

// Load parses custom themes from TOML data.
//
// Each [[theme]] table requires id, name, and the colors background, accent,
// and text_primary. background_secondary defaults to background,
// accent_secondary to accent, text_secondary to text_primary. Fonts default
// to [FallbackTitleFont]/[FallbackBodyFont]; an omitted typography table or
// spacing array falls back to the standard scales.
func Load(data []byte) ([]Theme, error) {
	var f themeFile
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse themes: %w", err)
	}

	themes := make([]Theme, 0, len(f.Themes))
	for i, doc := range f.Themes {
		t, err := doc.build()
		if err != nil {
			return nil, fmt.Errorf("theme %d (%q): %w", i, doc.ID, err)
		}
		themes = append(themes, t)
	}

	return themes, nil
}

// LoadFile reads and parses a TOML theme file.
func LoadFile(path string) ([]Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Load(data)
}

func (doc themeDoc) build() (Theme, error) {
	background, err := requiredColor(doc.Colors, "background")
	if err != nil {
		return Theme{}, err
	}
	accent, err := requiredColor(doc.Colors, "accent")
	if err != nil {
		return Theme{}, err
	}
	textPrimary, err := requiredColor(doc.Colors, "text_primary")
	if err != nil {
		return Theme{}, err
	}

	bgSecondary, err := optionalColor(doc.Colors, "background_secondary", background)
	if err != nil {
		return Theme{}, err
	}
	accentSecondary, err := optionalColor(doc.Colors, "accent_secondary", accent)
	if err != nil {
		return Theme{}, err
	}
	textSecondary, err := optionalColor(doc.Colors, "text_secondary", textPrimary)
	if err != nil {
		return Theme{}, err
	}

	t := Theme{
		ID:   doc.ID,
		Name: doc.Name,
		Palette: ColorPalette{
			Background:          background,
			BackgroundSecondary: bgSecondary,
			Accent:              accent,
			AccentSecondary:     accentSecondary,
			TextPrimary:         textPrimary,
			TextSecondary:       textSecondary,
		},
		Fonts:      doc.Fonts,
		Typography: DefaultTypography(),
		Spacing:    DefaultSpacing(),
	}

	if doc.Typography != nil {
		t.Typography = *doc.Typography
	}
	if len(doc.Spacing) > 0 {
		t.Spacing = SpacingScale(doc.Spacing)
	}
	if t.Fonts.Title == "" {
		t.Fonts.Title = FallbackTitleFont
	}
	if t.Fonts.Body == "" {
		t.Fonts.Body = FallbackBodyFont
	}

	if err := t.Validate(); err != nil {
		return Theme{}, err
	}
	return t, nil
}

func requiredColor(colors map[string]string, key string) (RGB, error) {
	raw, ok := colors[key]
	if !ok || raw == "" {
		return RGB{}, fmt.Errorf("missing required color %q", key)
	}
	c, err := ParseHex(raw)
	if err != nil {
		return RGB{}, fmt.Errorf("color %q: %w", key, err)
	}
	return c, nil
}

func optionalColor(colors map[string]string, key string, fallback RGB) (RGB, error) {
	raw, ok := colors[key]
	if !ok || raw == "" {
		return fallback, nil
	}
	c, err := ParseHex(raw)
	if err != nil {
		return RGB{}, fmt.Errorf("color %q: %w", key, err)
	}
	return c, nil
}
