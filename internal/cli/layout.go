package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/neuradeck/slidekit/pkg/deck"
	"github.com/neuradeck/slidekit/pkg/pipeline"
)

// layoutCommand creates the layout command for composing deck layouts.
func (c *CLI) layoutCommand() *cobra.Command {
	var (
		output     string
		formatsStr string
		noCache    bool
	)
	opts := pipeline.Options{}

	cmd := &cobra.Command{
		Use:   "layout [deck.json]",
		Short: "Compose slide layouts from a deck file",
		Long: `Compose slide layouts from a deck file.

The layout command reads a deck.json file, normalizes its content, places
every slide on the column grid, and writes the computed layout. The default
output is a layout JSON file; pass --format svg (or json,svg) to also get a
wireframe rendering.

Results are cached locally for faster subsequent runs.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Formats = parseFormats(formatsStr)
			if err := pipeline.ValidateFormats(opts.Formats); err != nil {
				return err
			}
			return c.runLayout(cmd.Context(), args[0], opts, output, noCache)
		},
	}

	// Common flags
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: <input>.layout.<format>)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")

	// Pipeline flags
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): json (default), svg (comma-separated)")
	cmd.Flags().StringVarP(&opts.ThemeID, "theme", "t", "", "override the deck theme")
	cmd.Flags().IntVar(&opts.Workers, "workers", pipeline.DefaultWorkers, "concurrent slide composers")
	cmd.Flags().BoolVar(&opts.SkipNormalize, "no-normalize", false, "skip content normalization")
	cmd.Flags().BoolVar(&opts.Refresh, "refresh", false, "recompute every stage, repopulating the cache")

	return cmd
}

// runLayout loads the deck, runs the pipeline, and writes the artifacts.
func (c *CLI) runLayout(ctx context.Context, input string, opts pipeline.Options, output string, noCache bool) error {
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

	spinner := newSpinnerWithContext(ctx, "Composing slides...")
	spinner.Start()

	res, err := runner.ExecuteStaged(ctx, d, opts, func(stage string) {
		spinner.SetMessage(stageMessage(stage))
	})
	if err != nil {
		spinner.StopWithError("Layout failed")
		return fmt.Errorf("compose layout: %w", err)
	}
	spinner.Stop()

	if ctx.Err() != nil {
		return ctx.Err()
	}

	base := basePath(output, input)
	paths := make([]string, 0, len(opts.Formats))
	for _, format := range opts.Formats {
		data, ok := res.Artifacts[format]
		if !ok {
			continue
		}
		path := artifactPath(base, output, format, len(opts.Formats))
		if err := os.WriteFile(path, data, 0644); err != nil {
			return fmt.Errorf("write output %s: %w", path, err)
		}
		paths = append(paths, path)
	}

	printSuccess("Layout complete")
	for _, p := range paths {
		printFile(p)
	}
	printStats(res.Stats.SlideCount, res.Stats.PlacementCount, res.CacheInfo.ComposeHit)

	if res.Layout.Report.HasErrors || res.Layout.Report.HasWarnings {
		printWarning("%s", res.Layout.Report.Summary)
	}

	printNewline()
	printNextStep("Inspect findings", appName+" validate "+input)

	return nil
}

// artifactPath names one output file. An explicit --output wins when a
// single format is requested; otherwise names derive from the base path.
func artifactPath(base, output, format string, formatCount int) string {
	if output != "" && formatCount == 1 {
		return output
	}
	return fmt.Sprintf("%s.layout.%s", base, format)
}

// stageMessage maps pipeline stage names to spinner text.
func stageMessage(stage string) string {
	switch stage {
	case "normalize":
		return "Normalizing content..."
	case "compose":
		return "Composing slides..."
	case "render":
		return "Rendering artifacts..."
	}
	return stage
}
