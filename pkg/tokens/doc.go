// Package tokens defines the immutable design tokens every layout component
// consumes: canvas dimensions, typography scale, spacing scale, color
// palettes, and the theme catalog that bundles them.
//
// Tokens are loaded once at process start (built-ins, optionally merged with
// a TOML theme file) and passed explicitly into layout and validation code.
// Nothing in this package reads ambient global state, and every accessor
// returns copies, so a token value can be shared across concurrent slide
// workers without locking.
//
// # Units
//
// Canvas geometry is expressed in inches, font sizes and spacing in points,
// with [PointsPerInch] fixed at 72. All geometry is float64.
//
// # Core Types
//
//   - [CanvasDimensions]: the fixed slide surface (default 10 x 7.5 in)
//   - [TypographyScale]: semantic level -> point size, plus line heights
//   - [SpacingScale]: the ordered set of allowed spacing values
//   - [ColorPalette], [RGB]: theme colors
//   - [Theme]: one named bundle of palette, fonts, and scales
//   - [Catalog]: the lookup table of available themes
//
// # Theme Lookup
//
// Theme identifiers go through alias normalization first ("2" and "theme2"
// both resolve to "builtin_2"); unknown identifiers fall back to the default
// catalog entry rather than failing, mirroring how deck requests are expected
// to degrade:
//
//	cat := tokens.Builtin()
//	th := cat.Lookup("theme2") // builtin_2, "Forest"
//
// Custom themes come from TOML files:
//
//	extra, err := tokens.LoadFile("themes.toml")
//	cat := tokens.NewCatalog(extra...)
package tokens
