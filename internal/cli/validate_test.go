package cli

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/neuradeck/slidekit/pkg/validate"
)

func TestValidateCommandCleanDeck(t *testing.T) {
	if err := runCommand(t, "validate", "testdata/deck.json", "--no-cache"); err != nil {
		t.Fatalf("validate on a clean deck should pass: %v", err)
	}
}

func TestValidateCommandGatesErrors(t *testing.T) {
	// Midnight Pitch's rust accent cannot host readable caption text, so a
	// dated title slide produces an error finding and a non-zero exit.
	err := runCommand(t, "validate", "testdata/pitch.json", "--no-cache")
	if err == nil {
		t.Fatal("validate should fail when the report has errors")
	}
	if !strings.Contains(err.Error(), "validation failed") {
		t.Errorf("error = %q, want a validation failure", err)
	}
}

func TestValidateCommandJSONStillGates(t *testing.T) {
	err := runCommand(t, "validate", "testdata/pitch.json", "--no-cache", "--json")
	if err == nil {
		t.Fatal("--json output should not disable gating")
	}
}

func TestSeverityStyle(t *testing.T) {
	tests := []struct {
		sev  validate.Severity
		want lipgloss.Color
	}{
		{validate.SeverityError, colorRed},
		{validate.SeverityWarning, colorYellow},
		{validate.SeverityInfo, colorDim},
	}

	for _, tt := range tests {
		got := severityStyle(tt.sev).GetForeground()
		if got != tt.want {
			t.Errorf("severityStyle(%s) foreground = %v, want %v", tt.sev, got, tt.want)
		}
	}
}
