// Package cli implements the slidekit command-line interface.
//
// This package provides commands for composing deck layouts, validating
// typography and contrast, browsing the theme catalog, and serving the HTTP
// layout API. The CLI is built using cobra and supports verbose logging via
// the charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - layout: Compose slide layouts and write JSON/SVG artifacts
//   - validate: Run the layout pipeline and report every finding
//   - themes: List or interactively browse the theme catalog
//   - preview: Render a wireframe SVG preview of a deck
//   - serve: Run the HTTP layout service
//   - cache: Manage the local pipeline cache
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. The CLI owns
// a single logger that commands share; library packages receive it through
// their Options and never log on their own.
//
// # Example
//
//	import "github.com/neuradeck/slidekit/internal/cli"
//
//	func main() {
//	    c := cli.New(os.Stderr, cli.LogInfo)
//	    if err := c.RootCommand().Execute(); err != nil {
//	        os.Exit(1)
//	    }
//	}
package cli

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger creates a new logger with timestamp formatting.
// The logger writes to w and filters messages at the specified level.
// Timestamps are formatted as "HH:MM:SS.ms" (e.g., "14:32:01.45").
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress tracks the start time of an operation and logs completion with elapsed duration.
// It is safe for sequential use by a single goroutine; concurrent calls to done will race.
type progress struct {
	logger *log.Logger
	start  time.Time
}

// newProgress creates a progress tracker that captures the current time as start.
// The returned progress should call done when the operation completes.
func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg along with the elapsed time since progress was created.
// The duration is rounded to the nearest millisecond.
// Example output: "Connected to Redis at localhost:6379 (1.234s)"
func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}
