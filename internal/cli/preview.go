package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/neuradeck/slidekit/pkg/deck"
	"github.com/neuradeck/slidekit/pkg/pipeline"
)

// previewCommand creates the preview command for wireframe renderings.
func (c *CLI) previewCommand() *cobra.Command {
	var (
		output  string
		noCache bool
	)
	opts := pipeline.Options{}

	cmd := &cobra.Command{
		Use:   "preview [deck.json]",
		Short: "Render a wireframe SVG preview of a deck",
		Long: `Render a wireframe SVG preview of a deck.

The preview command composes the deck and draws every slide as a wireframe:
region outlines, wrapped text, and decorative fills. Pass --grid to overlay
the column grid and --annotate to label each placement with its grid span.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Formats = []string{pipeline.FormatSVG}
			return c.runPreview(cmd.Context(), args[0], opts, output, noCache)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: <input>.preview.svg)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().StringVarP(&opts.ThemeID, "theme", "t", "", "override the deck theme")
	cmd.Flags().BoolVar(&opts.GridOverlay, "grid", false, "overlay the column grid")
	cmd.Flags().BoolVar(&opts.Annotations, "annotate", false, "label placements with their grid spans")
	cmd.Flags().Float64Var(&opts.Scale, "scale", 0, fmt.Sprintf("pixels per canvas inch (default %.0f)", pipeline.DefaultScale))

	return cmd
}

// runPreview composes the deck and writes the wireframe SVG.
func (c *CLI) runPreview(ctx context.Context, input string, opts pipeline.Options, output string, noCache bool) error {
	d, err := deck.ReadDeckFile(input)
	if err != nil {
		return fmt.Errorf("load deck %s: %w", input, err)
	}

	runner, err := c.newRunner(noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	opts.Logger = c.Logger

	spinner := newSpinnerWithContext(ctx, "Rendering preview...")
	spinner.Start()

	res, err := runner.Execute(ctx, d, opts)
	if err != nil {
		spinner.StopWithError("Preview failed")
		return fmt.Errorf("render preview: %w", err)
	}
	spinner.Stop()

	if ctx.Err() != nil {
		return ctx.Err()
	}

	path := output
	if path == "" {
		path = basePath("", input) + ".preview.svg"
	}

	if err := os.WriteFile(path, res.Artifacts[pipeline.FormatSVG], 0644); err != nil {
		return fmt.Errorf("write output %s: %w", path, err)
	}

	printSuccess("Preview complete")
	printFile(path)
	printStats(res.Stats.SlideCount, res.Stats.PlacementCount, res.CacheInfo.RenderHit)
	printNewline()
	printNextStep("Inspect findings", appName+" validate "+input)

	return nil
}
