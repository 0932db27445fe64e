package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/neuradeck/slidekit/pkg/tokens"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// =============================================================================
// ThemeListModel - Interactive theme browsing
// =============================================================================

// ThemeListModel is the bubbletea model for the interactive theme browser.
type ThemeListModel struct {
	Themes   []tokens.Theme
	Cursor   int
	Selected *tokens.Theme
	Height   int
	Offset   int
}

// NewThemeListModel creates a new theme list model.
func NewThemeListModel(themes []tokens.Theme) ThemeListModel {
	return ThemeListModel{
		Themes: themes,
		Cursor: 0,
		Height: 12,
		Offset: 0,
	}
}

func (m ThemeListModel) Init() tea.Cmd {
	return nil
}

func (m ThemeListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < len(m.Themes)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case "enter":
			theme := m.Themes[m.Cursor]
			m.Selected = &theme
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.Height = msg.Height - 6
		if m.Height < 5 {
			m.Height = 5
		}
	}
	return m, nil
}

func (m ThemeListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Browse Themes"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ select  q quit"))
	b.WriteString("\n\n")

	end := m.Offset + m.Height
	if end > len(m.Themes) {
		end = len(m.Themes)
	}

	rows := [][]string{}
	for i := m.Offset; i < end; i++ {
		th := m.Themes[i]

		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}

		palette := swatch(th.Palette.Background) + " " +
			swatch(th.Palette.Accent) + " " +
			swatch(th.Palette.TextPrimary)

		rows = append(rows, []string{cursor, th.ID, th.Name, th.Fonts.Title, th.Fonts.Body, palette})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "ID", "Name", "Title Font", "Body Font", "Palette").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if m.Offset+row == m.Cursor {
				return listSelectedStyle
			}
			return listNormalStyle
		})

	b.WriteString(t.Render())
	b.WriteString("\n\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Themes))))

	return b.String()
}

// =============================================================================
// Helpers
// =============================================================================

// swatch renders a small block in the given theme color.
func swatch(c tokens.RGB) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(c.Hex())).Render("██")
}
