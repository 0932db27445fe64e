package pipeline

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/neuradeck/slidekit/pkg/deck"
	"github.com/neuradeck/slidekit/pkg/layout"
	"github.com/neuradeck/slidekit/pkg/tokens"
	"github.com/neuradeck/slidekit/pkg/validate"
)

// =============================================================================
// Slide Composition
// =============================================================================

// composeLayout places every slide of the deck on the grid.
//
// Slides compose on a worker pool bounded by opts.Workers. Composition is
// pure per slide, and results land in slots indexed by slide, so the output
// is byte-identical for any worker count. The first composition error
// cancels the remaining work.
func composeLayout(ctx context.Context, d deck.Deck, theme tokens.Theme, opts Options) ([]SlideLayout, [][]validate.Result, error) {
	builder, err := layout.New(opts.Canvas, opts.Grid)
	if err != nil {
		return nil, nil, err
	}

	composer := deck.NewComposer(theme, builder)
	composer.SetSafeMargin(opts.SafeMarginIn)

	n := len(d.Slides)
	slides := make([]SlideLayout, n)
	findings := make([][]validate.Result, n)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Workers)

	for i := 0; i < n; i++ {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			ps, fs, err := composer.Compose(d, i)
			if err != nil {
				return err
			}
			slides[i] = SlideLayout{
				Index:      i,
				Archetype:  deck.InferArchetype(d.Slides[i], i, n),
				Placements: ps,
			}
			findings[i] = fs
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return slides, findings, nil
}

// effectiveTheme resolves the theme for a run. An explicit option wins over
// the deck's own theme; unknown identifiers fall back to the default entry.
func effectiveTheme(d deck.Deck, opts Options) tokens.Theme {
	id := opts.ThemeID
	if id == "" {
		id = d.ThemeID
	}
	return tokens.Builtin().Lookup(id)
}
