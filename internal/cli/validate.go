package cli

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/neuradeck/slidekit/pkg/deck"
	"github.com/neuradeck/slidekit/pkg/pipeline"
	"github.com/neuradeck/slidekit/pkg/report"
	"github.com/neuradeck/slidekit/pkg/validate"
)

// validateCommand creates the validate command for checking deck quality.
func (c *CLI) validateCommand() *cobra.Command {
	var (
		asJSON  bool
		noCache bool
	)
	opts := pipeline.Options{}

	cmd := &cobra.Command{
		Use:   "validate [deck.json]",
		Short: "Validate a deck and report findings",
		Long: `Validate a deck and report findings.

The validate command runs the layout pipeline and prints every finding:
contrast failures, region overflows, safe-margin violations, and the checks
that passed. The exit code is non-zero when the report contains errors, so
the command can gate CI pipelines.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runValidate(cmd.Context(), args[0], opts, asJSON, noCache)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print the report as JSON")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().StringVarP(&opts.ThemeID, "theme", "t", "", "override the deck theme")
	cmd.Flags().IntVar(&opts.Workers, "workers", pipeline.DefaultWorkers, "concurrent slide composers")
	cmd.Flags().BoolVar(&opts.SkipNormalize, "no-normalize", false, "skip content normalization")

	return cmd
}

// runValidate runs the pipeline and reports findings. It returns an error
// when the report contains errors so the process exits non-zero.
func (c *CLI) runValidate(ctx context.Context, input string, opts pipeline.Options, asJSON, noCache bool) error {
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
	opts.Formats = []string{pipeline.FormatJSON}

	res, err := runner.Execute(ctx, d, opts)
	if err != nil {
		return fmt.Errorf("validate deck: %w", err)
	}

	if ctx.Err() != nil {
		return ctx.Err()
	}

	snap := res.Layout.Report

	if asJSON {
		data, err := json.MarshalIndent(snap, "", "  ")
		if err != nil {
			return fmt.Errorf("encode report: %w", err)
		}
		fmt.Println(string(data))
	} else {
		printFindings(snap)
		printNewline()
		switch {
		case snap.HasErrors:
			printError("%d errors, %d warnings", snap.Errors, snap.Warnings)
		case snap.HasWarnings:
			printWarning("%d warnings", snap.Warnings)
		default:
			printSuccess("All checks passed")
		}
		printDetail("%s", snap.Summary)
	}

	if snap.HasErrors {
		return fmt.Errorf("validation failed: %s", snap.Summary)
	}
	return nil
}

// printFindings renders the report entries as a table, one row per finding.
func printFindings(snap report.Snapshot) {
	if len(snap.Entries) == 0 {
		printSuccess("No findings")
		return
	}

	rows := make([][]string, len(snap.Entries))
	for i, e := range snap.Entries {
		rows[i] = []string{
			fmt.Sprintf("%d", e.Slide),
			string(e.Result.Severity),
			string(e.Result.Check),
			e.Result.Ref,
			e.Result.Message,
		}
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Slide", "Severity", "Check", "Ref", "Message").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if row < 0 || row >= len(snap.Entries) {
				return lipgloss.NewStyle()
			}
			sev := snap.Entries[row].Result.Severity
			if col == 1 {
				return severityStyle(sev)
			}
			if sev == validate.SeverityInfo {
				return StyleDim
			}
			return StyleValue
		})

	fmt.Println(t.Render())
}

// severityStyle picks the display style for one severity.
func severityStyle(sev validate.Severity) lipgloss.Style {
	switch sev {
	case validate.SeverityError:
		return lipgloss.NewStyle().Foreground(colorRed)
	case validate.SeverityWarning:
		return StyleWarning
	}
	return StyleDim
}
