// Package report aggregates validation findings across the slides of a
// deck.
//
// A [Report] is accumulate-only: slides append findings through
// [Report.RecordSlide] and nothing ever removes or rewrites a past entry,
// so incremental aggregation stays safe. One report accepts one writer at a
// time; concurrent producers build one fragment per slide range and combine
// them with [Merge], which renumbers slides in argument order so the result
// is identical to sequential recording. [Report.Summary] is deterministic:
// the same entries always produce the same string.
package report

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/neuradeck/slidekit/pkg/validate"
)

// Entry is one validation finding tagged with the slide it belongs to.
type Entry struct {
	Slide  int             `json:"slide" bson:"slide"`
	Result validate.Result `json:"result" bson:"result"`
}

// Snapshot is an immutable copy of a report's state for serialization.
// Counts and flags are computed at capture time.
type Snapshot struct {
	Slides      int     `json:"slides" bson:"slides"`
	Entries     []Entry `json:"entries" bson:"entries"`
	Errors      int     `json:"errors" bson:"errors"`
	Warnings    int     `json:"warnings" bson:"warnings"`
	Infos       int     `json:"infos" bson:"infos"`
	HasErrors   bool    `json:"has_errors" bson:"has_errors"`
	HasWarnings bool    `json:"has_warnings" bson:"has_warnings"`
	Summary     string  `json:"summary" bson:"summary"`
}

// Report accumulates findings slide by slide. The zero value is not usable;
// construct with New.
type Report struct {
	mu      sync.Mutex
	slides  int
	entries []Entry
}

// New returns an empty report.
func New() *Report {
	return &Report{entries: []Entry{}}
}

// RecordSlide appends the findings of the next slide, tagging each with the
// current slide index, then advances the index. A slide with no findings
// still counts as checked.
func (r *Report) RecordSlide(results []validate.Result) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, res := range results {
		r.entries = append(r.entries, Entry{Slide: r.slides, Result: res})
	}
	r.slides++
}

// Merge combines fragments into a new report, renumbering slide indices in
// argument order. Merging fragments recorded per slide range yields exactly
// the report sequential recording would have produced.
func Merge(fragments ...*Report) *Report {
	merged := New()
	for _, f := range fragments {
		if f == nil {
			continue
		}
		f.mu.Lock()
		for _, e := range f.entries {
			merged.entries = append(merged.entries, Entry{Slide: merged.slides + e.Slide, Result: e.Result})
		}
		merged.slides += f.slides
		f.mu.Unlock()
	}
	return merged
}

// Slides returns how many slides have been recorded.
func (r *Report) Slides() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.slides
}

// Entries returns a copy of all findings in recording order.
func (r *Report) Entries() []Entry {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]Entry, len(r.entries))
	copy(out, r.entries)
	return out
}

// Counts tallies findings by severity.
func (r *Report) Counts() (errors, warnings, infos int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.countsLocked()
}

func (r *Report) countsLocked() (errors, warnings, infos int) {
	for _, e := range r.entries {
		switch e.Result.Severity {
		case validate.SeverityError:
			errors++
		case validate.SeverityWarning:
			warnings++
		case validate.SeverityInfo:
			infos++
		}
	}
	return errors, warnings, infos
}

// HasErrors reports whether any finding is an error. Callers gate on this
// to refuse emitting a broken deck.
func (r *Report) HasErrors() bool {
	errors, _, _ := r.Counts()
	return errors > 0
}

// HasWarnings reports whether any finding is a warning.
func (r *Report) HasWarnings() bool {
	_, warnings, _ := r.Counts()
	return warnings > 0
}

// Summary returns the deterministic one-line tally.
func (r *Report) Summary() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.summaryLocked()
}

func (r *Report) summaryLocked() string {
	errors, warnings, infos := r.countsLocked()
	return fmt.Sprintf("checked %d slides: %d errors, %d warnings, %d info",
		r.slides, errors, warnings, infos)
}

// Snapshot captures the current state for storage or transport.
func (r *Report) Snapshot() Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()

	entries := make([]Entry, len(r.entries))
	copy(entries, r.entries)
	errors, warnings, infos := r.countsLocked()

	return Snapshot{
		Slides:      r.slides,
		Entries:     entries,
		Errors:      errors,
		Warnings:    warnings,
		Infos:       infos,
		HasErrors:   errors > 0,
		HasWarnings: warnings > 0,
		Summary:     r.summaryLocked(),
	}
}

// MarshalJSON serializes the report as its snapshot.
func (r *Report) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.Snapshot())
}
