package textfit

import "strings"

// WrapLines breaks text into greedy word-wrapped lines no wider than
// maxWidthPt at the given size and family.
//
// Words are never split internally unless a single word alone exceeds
// maxWidthPt, in which case it is hard-broken at rune boundaries (at least
// one rune per line, so wrapping always makes progress). With maxLines > 0
// the result has at most maxLines entries; when input remains beyond that,
// the final line is shortened so that it still fits together with the
// [Ellipsis] suffix. maxLines <= 0 means unlimited.
//
// Empty or whitespace-only input yields nil; anything else yields at least
// one line. Re-wrapping any returned line with the same parameters returns
// that line unchanged.
func WrapLines(text string, maxWidthPt, fontSizePt float64, fontName string, maxLines int) []string {
	lines := wrapAll(text, maxWidthPt, fontSizePt, fontName)
	if maxLines <= 0 || len(lines) <= maxLines {
		return lines
	}

	lines = lines[:maxLines]
	lines[maxLines-1] = shortenForEllipsis(lines[maxLines-1], maxWidthPt, fontSizePt, fontName)
	return lines
}

// wrapAll wraps without a line budget.
func wrapAll(text string, maxWidthPt, fontSizePt float64, fontName string) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	var lines []string
	cur := ""

	for i := 0; i < len(words); {
		w := words[i]

		if cur == "" {
			if EstimateWidth(w, fontSizePt, fontName) <= maxWidthPt {
				cur = w
				i++
				continue
			}
			// Word alone is too wide: hard-break at rune boundaries.
			prefix, rest := breakWord(w, maxWidthPt, fontSizePt, fontName)
			lines = append(lines, prefix)
			if rest == "" {
				i++
			} else {
				words[i] = rest
			}
			continue
		}

		if EstimateWidth(cur+" "+w, fontSizePt, fontName) <= maxWidthPt {
			cur += " " + w
			i++
			continue
		}

		lines = append(lines, cur)
		cur = ""
	}

	if cur != "" {
		lines = append(lines, cur)
	}
	return lines
}

// breakWord splits off the longest prefix of word that fits maxWidthPt,
// taking at least one rune so the caller always progresses.
func breakWord(word string, maxWidthPt, fontSizePt float64, fontName string) (prefix, rest string) {
	runes := []rune(word)
	cut := 1
	for n := 2; n <= len(runes); n++ {
		if EstimateWidth(string(runes[:n]), fontSizePt, fontName) > maxWidthPt {
			break
		}
		cut = n
	}
	return string(runes[:cut]), string(runes[cut:])
}

// shortenForEllipsis trims runes off the end of line until line+Ellipsis
// fits maxWidthPt, then appends the marker. A width too narrow for the
// marker alone degrades to just the marker.
func shortenForEllipsis(line string, maxWidthPt, fontSizePt float64, fontName string) string {
	runes := []rune(line)
	for len(runes) > 0 && EstimateWidth(strings.TrimRight(string(runes), " ")+Ellipsis, fontSizePt, fontName) > maxWidthPt {
		runes = runes[:len(runes)-1]
	}
	return strings.TrimRight(string(runes), " ") + Ellipsis
}
