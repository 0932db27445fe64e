package deck

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/neuradeck/slidekit/pkg/errors"
)

// Slide is one unit of deck content. All fields are optional; the archetype
// is inferred from position and content when not set explicitly.
type Slide struct {
	Title    string   `json:"title,omitempty" bson:"title,omitempty"`
	Subtitle string   `json:"subtitle,omitempty" bson:"subtitle,omitempty"`
	Bullets  []string `json:"bullets,omitempty" bson:"bullets,omitempty"`

	// Left and Right hold the column content of two-column slides.
	Left  []string `json:"left,omitempty" bson:"left,omitempty"`
	Right []string `json:"right,omitempty" bson:"right,omitempty"`

	// Archetype pins the layout family. Empty means infer.
	Archetype Archetype `json:"archetype,omitempty" bson:"archetype,omitempty"`

	// Chart pins the chart placeholder. Empty means match the title
	// against the keyword table.
	Chart ChartSlot `json:"chart,omitempty" bson:"chart,omitempty"`

	// Table rows, header first. Empty tables fall back to the sample
	// series of the slide's chart slot.
	Table [][]string `json:"table,omitempty" bson:"table,omitempty"`

	Notes string `json:"notes,omitempty" bson:"notes,omitempty"`
}

// Empty reports whether the slide carries no renderable content.
func (s Slide) Empty() bool {
	return strings.TrimSpace(s.Title) == "" &&
		strings.TrimSpace(s.Subtitle) == "" &&
		len(s.Bullets) == 0 && len(s.Left) == 0 && len(s.Right) == 0 &&
		len(s.Table) == 0 && s.Chart == ""
}

func (s Slide) validate() error {
	if s.Archetype != "" && !s.Archetype.Valid() {
		return errors.New(errors.ErrCodeInvalidDeck, "unknown archetype %q", s.Archetype)
	}
	if s.Chart != "" && !s.Chart.Valid() {
		return errors.New(errors.ErrCodeInvalidDeck, "unknown chart slot %q", s.Chart)
	}
	if s.Empty() {
		return errors.New(errors.ErrCodeInvalidDeck, "slide has no content")
	}
	for i, row := range s.Table {
		if len(row) == 0 {
			return errors.New(errors.ErrCodeInvalidDeck, "table row %d is empty", i)
		}
		if len(row) != len(s.Table[0]) {
			return errors.New(errors.ErrCodeInvalidDeck,
				"table row %d has %d cells, header has %d", i, len(row), len(s.Table[0]))
		}
	}
	return nil
}

// Deck is a full presentation: metadata plus slides in order.
type Deck struct {
	Title    string  `json:"title" bson:"title"`
	Subtitle string  `json:"subtitle,omitempty" bson:"subtitle,omitempty"`
	ThemeID  string  `json:"theme,omitempty" bson:"theme,omitempty"`
	Date     string  `json:"date,omitempty" bson:"date,omitempty"`
	Slides   []Slide `json:"slides" bson:"slides"`
}

// Validate checks deck metadata and every slide. Theme identifiers are not
// checked here; the catalog resolves unknown ones to the default theme.
func (d Deck) Validate() error {
	if strings.TrimSpace(d.Title) == "" {
		return errors.New(errors.ErrCodeInvalidDeck, "deck title cannot be empty")
	}
	if err := errors.ValidateDeckSize(len(d.Slides)); err != nil {
		return err
	}
	for i, s := range d.Slides {
		if err := s.validate(); err != nil {
			return fmt.Errorf("slide %d: %w", i, err)
		}
	}
	return nil
}

// WordCount returns the number of whitespace-separated words across all
// bullet lists of the slide.
func (s Slide) WordCount() int {
	n := 0
	for _, list := range [][]string{s.Bullets, s.Left, s.Right} {
		for _, b := range list {
			n += len(strings.Fields(b))
		}
	}
	return n
}

// =============================================================================
// JSON Serialization
// =============================================================================

// MarshalDeck converts a deck to indented JSON bytes.
func MarshalDeck(d Deck) ([]byte, error) {
	var buf bytes.Buffer
	if err := writeDeckTo(&buf, d); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// UnmarshalDeck parses JSON bytes into a deck and validates it.
func UnmarshalDeck(data []byte) (Deck, error) {
	return readDeckFrom(bytes.NewReader(data))
}

// WriteDeckFile writes a deck as JSON to the given path. The file is
// created with 0644 permissions.
func WriteDeckFile(path string, d Deck) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return writeDeckTo(f, d)
}

// WriteDeck writes a deck as indented JSON to w.
func WriteDeck(w io.Writer, d Deck) error {
	return writeDeckTo(w, d)
}

// ReadDeckFile reads a JSON deck from the given path and validates it.
func ReadDeckFile(path string) (Deck, error) {
	f, err := os.Open(path)
	if err != nil {
		return Deck{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return readDeckFrom(f)
}

// ReadDeck reads a JSON deck from r and validates it.
func ReadDeck(r io.Reader) (Deck, error) {
	return readDeckFrom(r)
}

func writeDeckTo(w io.Writer, d Deck) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(d); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

func readDeckFrom(r io.Reader) (Deck, error) {
	var d Deck
	if err := json.NewDecoder(r).Decode(&d); err != nil {
		return Deck{}, fmt.Errorf("decode: %w", err)
	}
	if err := d.Validate(); err != nil {
		return Deck{}, err
	}
	return d, nil
}
