package cli

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/neuradeck/slidekit/pkg/tokens"
)

func TestLoadCatalogBuiltin(t *testing.T) {
	catalog, err := loadCatalog("")
	if err != nil {
		t.Fatalf("loadCatalog() error: %v", err)
	}
	if len(catalog.Themes()) == 0 {
		t.Error("builtin catalog should not be empty")
	}
	if _, err := catalog.Get("corporate"); err != nil {
		t.Errorf("builtin catalog missing corporate: %v", err)
	}
}

func TestLoadCatalogFile(t *testing.T) {
	catalog, err := loadCatalog("testdata/themes.toml")
	if err != nil {
		t.Fatalf("loadCatalog(themes.toml) error: %v", err)
	}

	th, err := catalog.Get("slate")
	if err != nil {
		t.Fatalf("custom theme missing: %v", err)
	}
	if th.Name != "Slate Works" {
		t.Errorf("Name = %q, want %q", th.Name, "Slate Works")
	}
	if th.Fonts.Title != "Inter" {
		t.Errorf("Fonts.Title = %q, want %q", th.Fonts.Title, "Inter")
	}

	// Builtins survive the merge.
	if _, err := catalog.Get("pitch"); err != nil {
		t.Errorf("builtin theme lost after merge: %v", err)
	}
}

func TestLoadCatalogFileMissing(t *testing.T) {
	if _, err := loadCatalog("testdata/does-not-exist.toml"); err == nil {
		t.Fatal("expected error for missing theme file")
	}
}

func TestThemesCommand(t *testing.T) {
	if err := runCommand(t, "themes"); err != nil {
		t.Fatalf("themes command error: %v", err)
	}
}

func TestThemesShowCommand(t *testing.T) {
	if err := runCommand(t, "themes", "show", "pitch"); err != nil {
		t.Fatalf("themes show error: %v", err)
	}
}

func TestThemesShowUnknown(t *testing.T) {
	if err := runCommand(t, "themes", "show", "sparkle"); err == nil {
		t.Fatal("expected error for unknown theme")
	}
}

func TestThemeListModelNavigation(t *testing.T) {
	themes := tokens.Builtin().Themes()
	m := NewThemeListModel(themes)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}})
	m = next.(ThemeListModel)
	if m.Cursor != 1 {
		t.Errorf("Cursor after j = %d, want 1", m.Cursor)
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'k'}})
	m = next.(ThemeListModel)
	if m.Cursor != 0 {
		t.Errorf("Cursor after k = %d, want 0", m.Cursor)
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'k'}})
	m = next.(ThemeListModel)
	if m.Cursor != 0 {
		t.Errorf("Cursor should stay at 0, got %d", m.Cursor)
	}
}

func TestThemeListModelSelect(t *testing.T) {
	themes := tokens.Builtin().Themes()
	m := NewThemeListModel(themes)

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(ThemeListModel)

	if m.Selected == nil {
		t.Fatal("enter should select the theme under the cursor")
	}
	if m.Selected.ID != themes[0].ID {
		t.Errorf("Selected.ID = %q, want %q", m.Selected.ID, themes[0].ID)
	}
	if cmd == nil {
		t.Error("enter should quit the program")
	}
}

func TestThemeListModelQuit(t *testing.T) {
	m := NewThemeListModel(tokens.Builtin().Themes())

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	m = next.(ThemeListModel)

	if m.Selected != nil {
		t.Error("q should not select a theme")
	}
	if cmd == nil {
		t.Error("q should quit the program")
	}
}

func TestThemeListModelScrolls(t *testing.T) {
	themes := tokens.Builtin().Themes()
	if len(themes) < 3 {
		t.Skip("needs at least three themes")
	}

	m := NewThemeListModel(themes)
	m.Height = 2

	for i := 0; i < 2; i++ {
		next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}})
		m = next.(ThemeListModel)
	}

	if m.Cursor != 2 {
		t.Fatalf("Cursor = %d, want 2", m.Cursor)
	}
	if m.Offset != 1 {
		t.Errorf("Offset = %d, want 1 (window follows the cursor)", m.Offset)
	}
}

func TestThemeListModelView(t *testing.T) {
	m := NewThemeListModel(tokens.Builtin().Themes())

	view := m.View()
	if !strings.Contains(view, "corporate") {
		t.Error("view should list the corporate theme")
	}
	if !strings.Contains(view, "▸") {
		t.Error("view should mark the cursor row")
	}
}
