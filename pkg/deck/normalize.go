package deck

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/neuradeck/slidekit/pkg/textfit"
	"github.com/neuradeck/slidekit/pkg/validate"
)

// Content caps applied by Normalize. Column caps cover the half-width
// regions of two-column and content-chart slides.
const (
	MaxBullets           = 6
	MaxColumnBullets     = 5
	MaxBulletWords       = 18
	MaxBulletRunes       = 120
	MaxColumnBulletRunes = 90
)

// NearDuplicateThreshold is the similarity score at and above which two
// slides are flagged as duplicates.
const NearDuplicateThreshold = 0.95

// shortEchoRunes bounds the signature length for the title-echo check: only
// near-empty slides are compared against the title slide.
const shortEchoRunes = 20

// Normalize cleans deck content without changing its meaning: bullet
// grammar, word and rune caps, per-archetype bullet limits, and duplicate
// slide detection. It returns the cleaned deck plus one finding list per
// slide describing what changed. Slides are never removed; duplicates are
// reported as warnings and kept. The input deck is not modified.
func Normalize(d Deck) (Deck, [][]validate.Result) {
	out := d
	out.Title = strings.TrimSpace(d.Title)
	out.Subtitle = strings.TrimSpace(d.Subtitle)
	out.Date = strings.TrimSpace(d.Date)
	out.Slides = make([]Slide, len(d.Slides))

	findings := make([][]validate.Result, len(d.Slides))
	signatures := make([]string, len(d.Slides))
	for i, s := range d.Slides {
		ns, fs := normalizeSlide(s, i, len(d.Slides))
		out.Slides[i] = ns
		findings[i] = fs
		signatures[i] = slideSignature(ns)
	}
	for i := range out.Slides {
		if r, ok := duplicateOf(out.Slides, signatures, i); ok {
			findings[i] = append(findings[i], r)
		}
	}
	return out, findings
}

// duplicateOf checks slide i against the title slide and every earlier
// slide. Slides holding a chart or table are exempt as candidates since
// their visual payload is not in the text signature.
func duplicateOf(slides []Slide, signatures []string, i int) (validate.Result, bool) {
	if i == 0 || signatures[i] == "" {
		return validate.Result{}, false
	}
	s := slides[i]
	if effectiveChartSlot(s) != "" || len(s.Table) > 0 {
		return validate.Result{}, false
	}
	ref := fmt.Sprintf("slide %d", i)
	if utf8.RuneCountInString(signatures[i]) < shortEchoRunes {
		if sim := similarity(signatures[i], signatures[0]); sim >= NearDuplicateThreshold {
			return validate.Result{
				Severity: validate.SeverityWarning,
				Check:    validate.CheckDuplicate,
				Ref:      ref,
				Message:  "short slide repeats the title slide",
			}, true
		}
	}
	for j := 1; j < i; j++ {
		if signatures[j] == "" {
			continue
		}
		if sim := similarity(signatures[i], signatures[j]); sim >= NearDuplicateThreshold {
			return validate.Result{
				Severity: validate.SeverityWarning,
				Check:    validate.CheckDuplicate,
				Ref:      ref,
				Message:  fmt.Sprintf("content nearly duplicates slide %d (similarity %.2f)", j, sim),
			}, true
		}
	}
	return validate.Result{}, false
}

func normalizeSlide(s Slide, index, total int) (Slide, []validate.Result) {
	out := s
	out.Title = strings.TrimSpace(s.Title)
	out.Subtitle = strings.TrimSpace(s.Subtitle)
	out.Notes = strings.TrimSpace(s.Notes)

	var stats listStats
	switch InferArchetype(out, index, total) {
	case ArchetypeContent:
		out.Bullets, stats = normalizeList(s.Bullets, MaxBullets, MaxBulletRunes)
	case ArchetypeContentChart:
		out.Bullets, stats = normalizeList(s.Bullets, MaxColumnBullets, MaxColumnBulletRunes)
	case ArchetypeTwoColumn:
		var left, right listStats
		out.Left, left = normalizeList(s.Left, MaxColumnBullets, MaxColumnBulletRunes)
		out.Right, right = normalizeList(s.Right, MaxColumnBullets, MaxColumnBulletRunes)
		stats = left.add(right)
	}
	return out, contentFindings(index, stats)
}

type listStats struct {
	cleaned   int
	shortened int
	dropped   int
}

func (a listStats) add(b listStats) listStats {
	return listStats{a.cleaned + b.cleaned, a.shortened + b.shortened, a.dropped + b.dropped}
}

// normalizeList tidies one bullet list: grammar per bullet, word and rune
// caps, empties removed, and the item cap applied last.
func normalizeList(bullets []string, maxItems, maxRunes int) ([]string, listStats) {
	var st listStats
	out := make([]string, 0, len(bullets))
	for _, raw := range bullets {
		b, changed := tidyBullet(raw)
		if b == "" {
			continue
		}
		if changed {
			st.cleaned++
		}
		shortened := false
		if t, cut := truncateWords(b, MaxBulletWords); cut {
			b, shortened = t, true
		}
		if t, cut := truncateRunes(b, maxRunes); cut {
			b, shortened = t, true
		}
		if shortened {
			st.shortened++
		}
		out = append(out, b)
	}
	if len(out) > maxItems {
		st.dropped = len(out) - maxItems
		out = out[:maxItems]
	}
	if len(out) == 0 {
		return nil, st
	}
	return out, st
}

// tidyBullet applies the grammar pass one bullet gets: leading dash and a
// stray trailing punctuation mark removed, first rune capitalized, closing
// period added. The boolean reports whether the text changed.
func tidyBullet(raw string) (string, bool) {
	b := strings.TrimSpace(raw)
	b = strings.TrimSpace(strings.TrimPrefix(b, "-"))
	if r, size := utf8.DecodeLastRuneInString(b); size > 0 && strings.ContainsRune(".,;:", r) {
		b = strings.TrimRight(b[:len(b)-size], " ")
	}
	if b == "" {
		return "", false
	}
	r, size := utf8.DecodeRuneInString(b)
	b = string(unicode.ToUpper(r)) + b[size:] + "."
	return b, b != raw
}

// truncateWords caps text at max words, appending the ellipsis marker.
func truncateWords(s string, max int) (string, bool) {
	words := strings.Fields(s)
	if len(words) <= max {
		return s, false
	}
	return strings.Join(words[:max], " ") + textfit.Ellipsis, true
}

// truncateRunes caps text at max runes. Three runes make room for the
// ellipsis marker, matching the rendered bullet caps.
func truncateRunes(s string, max int) (string, bool) {
	runes := []rune(s)
	if len(runes) <= max {
		return s, false
	}
	return strings.TrimRight(string(runes[:max-3]), " ") + textfit.Ellipsis, true
}

func contentFindings(index int, st listStats) []validate.Result {
	ref := fmt.Sprintf("slide %d", index)
	var out []validate.Result
	if st.cleaned > 0 {
		out = append(out, validate.Result{
			Severity: validate.SeverityInfo,
			Check:    validate.CheckContent,
			Ref:      ref,
			Message:  fmt.Sprintf("tidied punctuation and casing on %d bullets", st.cleaned),
		})
	}
	if st.shortened > 0 {
		out = append(out, validate.Result{
			Severity: validate.SeverityInfo,
			Check:    validate.CheckContent,
			Ref:      ref,
			Message:  fmt.Sprintf("shortened %d overlong bullets", st.shortened),
		})
	}
	if st.dropped > 0 {
		out = append(out, validate.Result{
			Severity: validate.SeverityWarning,
			Check:    validate.CheckContent,
			Ref:      ref,
			Message:  fmt.Sprintf("dropped %d bullets over the per-slide limit", st.dropped),
		})
	}
	return out
}

// slideSignature flattens a slide's visible text for duplicate comparison:
// lowercased with whitespace runs collapsed.
func slideSignature(s Slide) string {
	parts := []string{s.Title, s.Subtitle}
	parts = append(parts, s.Bullets...)
	parts = append(parts, s.Left...)
	parts = append(parts, s.Right...)
	return strings.Join(strings.Fields(strings.ToLower(strings.Join(parts, " "))), " ")
}

// similarity scores two strings in 0..1 from the Levenshtein distance over
// runes. Identical strings score 1.
func similarity(a, b string) float64 {
	if a == b {
		return 1
	}
	ra, rb := []rune(a), []rune(b)
	if len(ra) == 0 || len(rb) == 0 {
		return 0
	}
	longer := max(len(ra), len(rb))
	return 1 - float64(levenshtein(ra, rb))/float64(longer)
}

// levenshtein is the classic two-row edit distance.
func levenshtein(a, b []rune) int {
	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}
