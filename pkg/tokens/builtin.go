package tokens

import (
	"sort"
	"strings"

	"github.com/neuradeck/slidekit/pkg/errors"
)

// DefaultThemeID is the catalog entry unknown identifiers resolve to.
const DefaultThemeID = "builtin_1"

// =============================================================================
// Built-in Themes
// =============================================================================

// builtinThemes returns the fixed theme table. Each call builds fresh values
// so callers can never alias catalog state.
func builtinThemes() []Theme {
	typ := DefaultTypography()
	spc := DefaultSpacing()

	return []Theme{
		{
			ID:   "default",
			Name: "Midnight Gold",
			Palette: ColorPalette{
				Background:          MustHex("#0a0f1e"),
				BackgroundSecondary: MustHex("#1a233a"),
				Accent:              MustHex("#d4af37"),
				AccentSecondary:     MustHex("#d4af37"),
				TextPrimary:         MustHex("#ffffff"),
				TextSecondary:       MustHex("#b8c5d6"),
			},
			Fonts:      FontPair{Title: "Calibri", Body: "Calibri"},
			Typography: typ,
			Spacing:    spc,
		},
		{
			ID:   "corporate",
			Name: "Corporate Navy",
			Palette: ColorPalette{
				Background:          MustHex("#ffffff"),
				BackgroundSecondary: MustHex("#f0f4f8"),
				Accent:              MustHex("#1b3a5c"),
				AccentSecondary:     MustHex("#8b7355"),
				TextPrimary:         MustHex("#0d1b2a"),
				TextSecondary:       MustHex("#4a5568"),
			},
			Fonts:      FontPair{Title: "Georgia", Body: "Arial"},
			Typography: typ,
			Spacing:    spc,
		},
		{
			ID:   "pitch",
			Name: "Midnight Pitch",
			Palette: ColorPalette{
				Background:          MustHex("#1a1a1a"),
				BackgroundSecondary: MustHex("#2a2a2a"),
				Accent:              MustHex("#a63d2e"),
				AccentSecondary:     MustHex("#b8860b"),
				TextPrimary:         MustHex("#f0f0f0"),
				TextSecondary:       MustHex("#9e9e9e"),
			},
			Fonts:      FontPair{Title: "Montserrat", Body: "Open Sans"},
			Typography: typ,
			Spacing:    spc,
		},
		{
			ID:   "builtin_1",
			Name: "Warm Ivory",
			Palette: ColorPalette{
				Background:          MustHex("#faf6f0"),
				BackgroundSecondary: MustHex("#f0e8db"),
				Accent:              MustHex("#9c6b4a"),
				AccentSecondary:     MustHex("#6b5344"),
				TextPrimary:         MustHex("#2c1810"),
				TextSecondary:       MustHex("#5c4033"),
			},
			Fonts:      FontPair{Title: "Playfair Display", Body: "Lato"},
			Typography: typ,
			Spacing:    spc,
		},
		{
			ID:   "builtin_2",
			Name: "Forest",
			Palette: ColorPalette{
				Background:          MustHex("#1e2a1e"),
				BackgroundSecondary: MustHex("#2a362a"),
				Accent:              MustHex("#a89868"),
				AccentSecondary:     MustHex("#6b8e6b"),
				TextPrimary:         MustHex("#e8ebe4"),
				TextSecondary:       MustHex("#a0a89a"),
			},
			Fonts:      FontPair{Title: "Cormorant Garamond", Body: "Source Sans Pro"},
			Typography: typ,
			Spacing:    spc,
		},
		{
			ID:   "builtin_3",
			Name: "Concrete",
			Palette: ColorPalette{
				Background:          MustHex("#e8e6e1"),
				BackgroundSecondary: MustHex("#d4d0c8"),
				Accent:              MustHex("#8b4513"),
				AccentSecondary:     MustHex("#3d3d3d"),
				TextPrimary:         MustHex("#1a1a1a"),
				TextSecondary:       MustHex("#4a4a4a"),
			},
			Fonts:      FontPair{Title: "Oswald", Body: "Roboto"},
			Typography: typ,
			Spacing:    spc,
		},
		{
			ID:   "builtin_4",
			Name: "Indigo Classic",
			Palette: ColorPalette{
				Background:          MustHex("#1c2340"),
				BackgroundSecondary: MustHex("#252d50"),
				Accent:              MustHex("#b89850"),
				AccentSecondary:     MustHex("#6b7a9e"),
				TextPrimary:         MustHex("#e4e6ed"),
				TextSecondary:       MustHex("#8a92a8"),
			},
			Fonts:      FontPair{Title: "Merriweather", Body: "Inter"},
			Typography: typ,
			Spacing:    spc,
		},
		{
			ID:   "builtin_5",
			Name: "Sand & Stone",
			Palette: ColorPalette{
				Background:          MustHex("#f5f0e8"),
				BackgroundSecondary: MustHex("#e8e0d0"),
				Accent:              MustHex("#5c6b4a"),
				AccentSecondary:     MustHex("#7a6b5a"),
				TextPrimary:         MustHex("#2c2416"),
				TextSecondary:       MustHex("#5c4f3a"),
			},
			Fonts:      FontPair{Title: "Libre Baskerville", Body: "Nunito Sans"},
			Typography: typ,
			Spacing:    spc,
		},
		{
			ID:   "builtin_6",
			Name: "Slate Minimal",
			Palette: ColorPalette{
				Background:          MustHex("#f5f5f5"),
				BackgroundSecondary: MustHex("#e8e8e8"),
				Accent:              MustHex("#3d5a6c"),
				AccentSecondary:     MustHex("#6b8a9a"),
				TextPrimary:         MustHex("#111111"),
				TextSecondary:       MustHex("#555555"),
			},
			Fonts:      FontPair{Title: "DM Serif Display", Body: "DM Sans"},
			Typography: typ,
			Spacing:    spc,
		},
	}
}

// themeAliases maps shorthand identifiers accepted from deck requests onto
// catalog identifiers.
var themeAliases = map[string]string{
	"1": "builtin_1", "2": "builtin_2", "3": "builtin_3",
	"4": "builtin_4", "5": "builtin_5", "6": "builtin_6",
	"builtin 1": "builtin_1", "builtin 2": "builtin_2", "builtin 3": "builtin_3",
	"theme_1": "builtin_1", "theme_2": "builtin_2", "theme_3": "builtin_3",
	"theme1": "builtin_1", "theme2": "builtin_2", "theme3": "builtin_3",
}

// =============================================================================
// Catalog
// =============================================================================

// Catalog is an immutable lookup table of themes. Build one at process start
// and share it freely; all accessors return copies.
type Catalog struct {
	themes map[string]Theme
}

// Builtin returns a catalog holding only the built-in themes.
func Builtin() *Catalog {
	return NewCatalog()
}

// NewCatalog returns the built-in catalog merged with extra themes.
// An extra theme with a built-in ID replaces the built-in entry.
func NewCatalog(extra ...Theme) *Catalog {
	m := make(map[string]Theme)
	for _, t := range builtinThemes() {
		m[t.ID] = t
	}
	for _, t := range extra {
		m[t.ID] = t.clone()
	}
	return &Catalog{themes: m}
}

// Normalize resolves aliases and falls back to [DefaultThemeID] for unknown
// or empty identifiers. Matching is case-insensitive and ignores surrounding
// whitespace.
func (c *Catalog) Normalize(id string) string {
	tid := strings.ToLower(strings.TrimSpace(id))
	if tid == "" {
		return DefaultThemeID
	}
	if target, ok := themeAliases[tid]; ok {
		tid = target
	}
	if _, ok := c.themes[tid]; ok {
		return tid
	}
	return DefaultThemeID
}

// Lookup returns the theme for id after normalization. It is total: unknown
// identifiers resolve to the default entry.
func (c *Catalog) Lookup(id string) Theme {
	return c.themes[c.Normalize(id)].clone()
}

// Get returns the theme with exactly the given ID, without alias resolution
// or fallback.
func (c *Catalog) Get(id string) (Theme, error) {
	t, ok := c.themes[id]
	if !ok {
		return Theme{}, errors.New(errors.ErrCodeInvalidTheme, "unknown theme: %q", id)
	}
	return t.clone(), nil
}

// Themes returns all catalog entries sorted by ID.
func (c *Catalog) Themes() []Theme {
	out := make([]Theme, 0, len(c.themes))
	for _, t := range c.themes {
		out = append(out, t.clone())
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// IDs returns all catalog identifiers sorted.
func (c *Catalog) IDs() []string {
	out := make([]string, 0, len(c.themes))
	for id := range c.themes {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}
