package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/neuradeck/slidekit/pkg/tokens"
)

// themesCommand creates the themes command for inspecting the catalog.
func (c *CLI) themesCommand() *cobra.Command {
	var (
		interactive bool
		file        string
	)

	cmd := &cobra.Command{
		Use:   "themes",
		Short: "List the available themes",
		Long: `List the available themes.

Themes bundle the design tokens a layout run needs: palette, fonts, type
scale, and spacing. The built-in catalog is always available; --file merges
custom themes from a TOML file on top of it.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, err := loadCatalog(file)
			if err != nil {
				return err
			}
			if interactive {
				return c.browseThemes(catalog.Themes())
			}
			printThemeTable(catalog.Themes())
			return nil
		},
	}

	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "browse themes interactively")
	cmd.Flags().StringVar(&file, "file", "", "merge custom themes from a TOML file")

	cmd.AddCommand(c.themesShowCommand())

	return cmd
}

// themesShowCommand creates the "themes show" subcommand.
func (c *CLI) themesShowCommand() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "show [id]",
		Short: "Show the design tokens of one theme",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, err := loadCatalog(file)
			if err != nil {
				return err
			}
			th, err := catalog.Get(args[0])
			if err != nil {
				return err
			}
			printThemeDetail(th)
			return nil
		},
	}

	cmd.Flags().StringVar(&file, "file", "", "merge custom themes from a TOML file")

	return cmd
}

// loadCatalog returns the builtin catalog, extended with themes from a TOML
// file when one is given.
func loadCatalog(file string) (*tokens.Catalog, error) {
	if file == "" {
		return tokens.Builtin(), nil
	}
	extra, err := tokens.LoadFile(file)
	if err != nil {
		return nil, fmt.Errorf("load themes %s: %w", file, err)
	}
	return tokens.NewCatalog(extra...), nil
}

// browseThemes runs the interactive browser and prints the selected theme.
func (c *CLI) browseThemes(themes []tokens.Theme) error {
	prog := tea.NewProgram(NewThemeListModel(themes))
	final, err := prog.Run()
	if err != nil {
		return fmt.Errorf("run theme browser: %w", err)
	}

	m, ok := final.(ThemeListModel)
	if !ok || m.Selected == nil {
		return nil
	}

	printNewline()
	printThemeDetail(*m.Selected)
	return nil
}

// printThemeTable renders the catalog as a table.
func printThemeTable(themes []tokens.Theme) {
	rows := make([][]string, len(themes))
	for i, th := range themes {
		rows[i] = []string{th.ID, th.Name, th.Fonts.Title, th.Fonts.Body, th.Palette.Accent.Hex()}
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("ID", "Name", "Title Font", "Body Font", "Accent").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if col == 0 {
				return StyleHighlight
			}
			return StyleValue
		})

	fmt.Println(t.Render())
}

// printThemeDetail prints the full token set of one theme.
func printThemeDetail(th tokens.Theme) {
	fmt.Println(StyleTitle.Render(th.Name) + " " + StyleDim.Render("("+th.ID+")"))
	printNewline()
	printKeyValue("title font", th.Fonts.Title)
	printKeyValue("body font", th.Fonts.Body)
	printKeyValue("background", paletteValue(th.Palette.Background))
	printKeyValue("bg alt", paletteValue(th.Palette.BackgroundSecondary))
	printKeyValue("accent", paletteValue(th.Palette.Accent))
	printKeyValue("accent alt", paletteValue(th.Palette.AccentSecondary))
	printKeyValue("text", paletteValue(th.Palette.TextPrimary))
	printKeyValue("text alt", paletteValue(th.Palette.TextSecondary))
	printKeyValue("title size", fmt.Sprintf("%.0fpt", th.Typography.Title))
	printKeyValue("body size", fmt.Sprintf("%.0fpt", th.Typography.Body))
}

// paletteValue renders a hex color next to a swatch in that color.
func paletteValue(c tokens.RGB) string {
	return swatch(c) + " " + c.Hex()
}
