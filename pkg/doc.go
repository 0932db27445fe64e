// Package pkg provides the core libraries for Slidekit slide layout composition.
//
// # Overview
//
// Slidekit turns a declarative deck description into deterministic slide
// layouts: every text block, bullet list, and chart region is placed on a
// fixed grid, sized with estimated text metrics, and checked against
// readability rules. The pkg directory is organized into four main areas:
//
//  1. Content model ([deck], [tokens]) - deck input, themes, normalization
//  2. Geometry ([grid], [layout], [textfit]) - placement and type fitting
//  3. Quality ([validate], [report]) - contrast and overflow findings
//  4. Orchestration ([pipeline], [render/wireframe], [cache], [jobs], [archive])
//
// # Architecture
//
// The typical data flow through Slidekit:
//
//	Deck JSON
//	     ↓
//	[deck] package (normalize content, infer archetypes)
//	     ↓
//	[deck.Composer] ([layout] regions + [textfit] sizing + [validate] checks)
//	     ↓
//	[pipeline] package (cache stages, aggregate the [report])
//	     ↓
//	SVG/JSON output
//
// # Quick Start
//
// Compose a deck and render a wireframe:
//
//	import (
//	    "context"
//	    "github.com/neuradeck/slidekit/pkg/deck"
//	    "github.com/neuradeck/slidekit/pkg/pipeline"
//	)
//
//	// 1. Read the deck
//	d, _ := deck.ReadDeckFile("deck.json")
//
//	// 2. Run the pipeline (nil cache disables caching)
//	runner := pipeline.NewRunner(nil, nil, nil)
//	defer runner.Close()
//	res, _ := runner.Execute(context.Background(), d, pipeline.Options{
//	    Formats: []string{pipeline.FormatSVG},
//	})
//
//	// 3. Inspect the result
//	svg := res.Artifacts[pipeline.FormatSVG]
//	fmt.Println(res.Layout.Report.Summary)
//
// # Main Packages
//
// ## Content Model
//
// [deck] - Deck input model and composition. Reads deck JSON, normalizes
// content (whitespace, bullet budgets, near-duplicate detection), infers
// slide archetypes (title, section, content, two-column, chart, closing),
// and composes each slide into absolute-positioned placements.
//
// [tokens] - Design tokens: color palettes, font pairs, the typography
// scale, spacing, and canvas dimensions. Ships a builtin theme catalog and
// loads custom themes from TOML files.
//
// ## Geometry
//
// [grid] - Column grid geometry. Splits the canvas into columns and
// gutters inside a safe margin and resolves column spans to x-coordinates.
//
// [layout] - Region builder on top of the grid. Computes title, content,
// chart, and two-column areas in row units.
//
// [textfit] - Text measurement without font files. Estimates rendered
// width from per-font width factors, wraps text to a region, and searches
// for the largest font size that fits.
//
// ## Quality
//
// [validate] - Readability checks producing severity-graded results:
// WCAG 2.1 contrast ratios, canvas bounds, and text overflow.
//
// [report] - Aggregates per-slide findings into a deck-level report with
// counts, a gate flag, and a one-line summary.
//
// ## Orchestration
//
// [pipeline] - Complete layout pipeline (normalize → compose → render)
// used by CLI and API. Each stage is cached by content hash, so unchanged
// decks recompute nothing.
//
// [render/wireframe] - SVG wireframe sink: region outlines, wrapped text,
// optional grid overlay and placement annotations.
//
// [cache] - Content-addressed caching. FileCache for the CLI, RedisCache
// for the API, NullCache for tests. Keys derive from deck content, theme,
// and layout options.
//
// [jobs] - Asynchronous job store for the API with memory and Redis
// backends. Tracks job lifecycle (pending, running, completed, failed).
//
// [archive] - Durable layout archive backed by MongoDB. Stores finished
// layouts with their reports for later retrieval.
//
// [observability] - Stage timing and structured logging helpers shared by
// the pipeline and the API.
//
// [errors] - Coded errors (INVALID_INPUT, THEME_NOT_FOUND, ...) that map
// to HTTP statuses and CLI exit paths.
//
// # Common Workflows
//
// Compose a single slide by hand:
//
//	b, _ := layout.New(tokens.DefaultCanvas(), grid.DefaultConfig())
//	c := deck.NewComposer(theme, b)
//	placements, findings, _ := c.Compose(d, 0)
//
// Fit a heading into a region:
//
//	fit := textfit.FitFontSize(title, widthPt, heightPt, 18, 44, 36, "Inter", 1.2)
//	fmt.Printf("%.1fpt over %d lines\n", fit.Size, len(fit.Lines))
//
// Check a color pair:
//
//	res := validate.Contrast(theme.Palette.TextPrimary, theme.Palette.Background, false, "slide 1 body")
//	if res.Severity == validate.SeverityError {
//	    fmt.Println(res.Message)
//	}
//
// Load custom themes:
//
//	extra, _ := tokens.LoadFile("themes.toml")
//	catalog := tokens.NewCatalog(extra...)
//	theme, _ := catalog.Get("slate")
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...            # All tests
//	go test ./pkg/textfit/...    # Specific package
//	go test -run Contrast ./...  # Contrast checks only
//
// [deck]: https://pkg.go.dev/github.com/neuradeck/slidekit/pkg/deck
// [deck.Composer]: https://pkg.go.dev/github.com/neuradeck/slidekit/pkg/deck#Composer
// [tokens]: https://pkg.go.dev/github.com/neuradeck/slidekit/pkg/tokens
// [grid]: https://pkg.go.dev/github.com/neuradeck/slidekit/pkg/grid
// [layout]: https://pkg.go.dev/github.com/neuradeck/slidekit/pkg/layout
// [textfit]: https://pkg.go.dev/github.com/neuradeck/slidekit/pkg/textfit
// [validate]: https://pkg.go.dev/github.com/neuradeck/slidekit/pkg/validate
// [report]: https://pkg.go.dev/github.com/neuradeck/slidekit/pkg/report
// [pipeline]: https://pkg.go.dev/github.com/neuradeck/slidekit/pkg/pipeline
// [render/wireframe]: https://pkg.go.dev/github.com/neuradeck/slidekit/pkg/render/wireframe
// [cache]: https://pkg.go.dev/github.com/neuradeck/slidekit/pkg/cache
// [jobs]: https://pkg.go.dev/github.com/neuradeck/slidekit/pkg/jobs
// [archive]: https://pkg.go.dev/github.com/neuradeck/slidekit/pkg/archive
// [observability]: https://pkg.go.dev/github.com/neuradeck/slidekit/pkg/observability
// [errors]: https://pkg.go.dev/github.com/neuradeck/slidekit/pkg/errors
package pkg
