package deck

import (
	"strings"
	"testing"

	"github.com/neuradeck/slidekit/pkg/errors"
	"github.com/neuradeck/slidekit/pkg/grid"
	"github.com/neuradeck/slidekit/pkg/layout"
	"github.com/neuradeck/slidekit/pkg/tokens"
	"github.com/neuradeck/slidekit/pkg/validate"
)

func mustComposer(t *testing.T, themeID string) *Composer {
	t.Helper()
	b, err := layout.New(tokens.DefaultCanvas(), grid.DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	return NewComposer(tokens.Builtin().Lookup(themeID), b)
}

func mustCompose(t *testing.T, c *Composer, d Deck, index int) ([]Placement, []validate.Result) {
	t.Helper()
	ps, fs, err := c.Compose(d, index)
	if err != nil {
		t.Fatalf("Compose(%d): %v", index, err)
	}
	return ps, fs
}

func rolesOf(ps []Placement) []Role {
	roles := make([]Role, len(ps))
	for i, p := range ps {
		roles[i] = p.Role
	}
	return roles
}

func firstRole(t *testing.T, ps []Placement, role Role) Placement {
	t.Helper()
	for _, p := range ps {
		if p.Role == role {
			return p
		}
	}
	t.Fatalf("no placement with role %q in %v", role, rolesOf(ps))
	return Placement{}
}

func assertRoles(t *testing.T, ps []Placement, want ...Role) {
	t.Helper()
	got := rolesOf(ps)
	if len(got) != len(want) {
		t.Fatalf("roles = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("roles = %v, want %v", got, want)
		}
	}
}

func assertBounds(t *testing.T, name string, got layout.Bounds, x, y, w, h float64) {
	t.Helper()
	if !nearly(got.X, x) || !nearly(got.Y, y) || !nearly(got.Width, w) || !nearly(got.Height, h) {
		t.Errorf("%s bounds = [%g %g %g %g], want [%g %g %g %g]",
			name, got.X, got.Y, got.Width, got.Height, x, y, w, h)
	}
}

func hasErrorFinding(fs []validate.Result) bool {
	for _, f := range fs {
		if f.Severity == validate.SeverityError {
			return true
		}
	}
	return false
}

func hasFindingRef(fs []validate.Result, part string) bool {
	for _, f := range fs {
		if strings.Contains(f.Ref, part) {
			return true
		}
	}
	return false
}

func TestComposeTitleSlide(t *testing.T) {
	c := mustComposer(t, "corporate")
	pal := c.theme.Palette
	d := Deck{
		Title: "Deck",
		Date:  "March 2026",
		Slides: []Slide{
			{Title: "Annual Report 2026", Subtitle: "Growth across every segment"},
			{Title: "Later"},
		},
	}

	ps, fs := mustCompose(t, c, d, 0)

	assertRoles(t, ps, RoleBackground, RoleTitle, RoleSubtitle, RoleCaption, RoleDecor)

	bg := ps[0]
	assertBounds(t, "background", bg.Bounds, 0, 0, 10, 7.5)
	if bg.Color != pal.Accent {
		t.Errorf("background color = %v, want accent %v", bg.Color, pal.Accent)
	}

	title := ps[1]
	assertBounds(t, "title", title.Bounds, 0.75, 2.5, 8.5, 1.8)
	if title.FontSize != 56 || !title.Bold || !title.Centered {
		t.Errorf("title = %gpt bold=%v centered=%v, want 56pt bold centered",
			title.FontSize, title.Bold, title.Centered)
	}
	if title.Font != "Georgia" {
		t.Errorf("title font = %q, want Georgia", title.Font)
	}
	if title.Text() != "Annual Report 2026" {
		t.Errorf("title text = %q", title.Text())
	}
	// White on corporate navy clears the large-text threshold, so the
	// preferred color survives.
	if title.Color != white {
		t.Errorf("title color = %v, want white", title.Color)
	}

	subtitle := ps[2]
	assertBounds(t, "subtitle", subtitle.Bounds, 0.75, 4.4, 8.5, 1.0)
	if subtitle.FontSize != 28 {
		t.Errorf("subtitle size = %g, want 28", subtitle.FontSize)
	}
	// The theme's secondary text color is too dim on the accent, so it
	// switches to the theme background.
	if subtitle.Color != pal.Background {
		t.Errorf("subtitle color = %v, want %v", subtitle.Color, pal.Background)
	}
	if !hasFinding(fs, validate.SeverityInfo, "text color switched") {
		t.Errorf("missing remediation finding, got %v", fs)
	}

	date := ps[3]
	assertBounds(t, "date", date.Bounds, 0.75, 5.5, 8.5, 0.4)
	if date.FontSize != 14 {
		t.Errorf("date size = %g, want 14", date.FontSize)
	}

	border := ps[4]
	assertBounds(t, "border", border.Bounds, 0, 7.44, 10, 0.06)
	if border.Color != pal.AccentSecondary {
		t.Errorf("border color = %v, want %v", border.Color, pal.AccentSecondary)
	}

	if hasErrorFinding(fs) {
		t.Errorf("clean title slide produced errors: %v", fs)
	}
}

func TestComposeTitleSlideWithoutSubtitle(t *testing.T) {
	c := mustComposer(t, "corporate")
	d := Deck{Title: "Deck", Date: "March 2026", Slides: []Slide{{Title: "Deck"}}}

	ps, _ := mustCompose(t, c, d, 0)

	date := firstRole(t, ps, RoleCaption)
	// With no subtitle the date moves up to the subtitle drop.
	assertBounds(t, "date", date.Bounds, 0.75, 4.4, 8.5, 0.4)
	for _, p := range ps {
		if p.Role == RoleSubtitle {
			t.Error("unexpected subtitle placement")
		}
	}
}

func TestComposeTitleFallsBackToDeckMetadata(t *testing.T) {
	c := mustComposer(t, "corporate")

	d := Deck{Title: "Corp Overview", Subtitle: "Internal", Slides: []Slide{{Notes: "intro"}}}
	ps, _ := mustCompose(t, c, d, 0)
	if got := firstRole(t, ps, RoleTitle).Text(); got != "Corp Overview" {
		t.Errorf("title = %q, want deck title", got)
	}
	if got := firstRole(t, ps, RoleSubtitle).Text(); got != "Internal" {
		t.Errorf("subtitle = %q, want deck subtitle", got)
	}

	ps, _ = mustCompose(t, c, Deck{Slides: []Slide{{Notes: "x"}}}, 0)
	if got := firstRole(t, ps, RoleTitle).Text(); got != "NeuraDeck" {
		t.Errorf("title = %q, want the default", got)
	}
}

func TestComposeBannerTextFlipsOnLowContrastAccent(t *testing.T) {
	c := mustComposer(t, "default") // Midnight Gold: white on gold fails AA
	pal := c.theme.Palette
	d := Deck{Title: "Deck", Slides: []Slide{{Title: "Annual Report 2026"}}}

	ps, fs := mustCompose(t, c, d, 0)

	title := firstRole(t, ps, RoleTitle)
	if title.Color != pal.Background {
		t.Errorf("title color = %v, want theme background %v", title.Color, pal.Background)
	}
	if title.FontSize != 56 {
		t.Errorf("title size = %g, want 56", title.FontSize)
	}
	if !hasFinding(fs, validate.SeverityInfo, "text color switched to "+pal.Background.Hex()) {
		t.Errorf("missing switch finding, got %v", fs)
	}
	if hasErrorFinding(fs) {
		t.Errorf("remediated slide still has errors: %v", fs)
	}
}

func TestComposeSection(t *testing.T) {
	c := mustComposer(t, "corporate")
	d := Deck{Title: "Deck", Slides: []Slide{
		{Title: "Deck"},
		{Title: "The Problem", Subtitle: "Why decks rot"},
		{Title: "End", Bullets: []string{"One."}},
	}}

	ps, fs := mustCompose(t, c, d, 1)

	title := firstRole(t, ps, RoleTitle)
	assertBounds(t, "title", title.Bounds, 0.75, 2.5, 8.5, 1.8)

	summary := firstRole(t, ps, RoleCaption)
	assertBounds(t, "summary", summary.Bounds, 0.75, 4.4, 8.5, 0.6)
	if summary.Color != white {
		t.Errorf("summary color = %v, want white", summary.Color)
	}

	// Section dividers carry no bottom border.
	for _, p := range ps {
		if p.Role == RoleDecor {
			t.Errorf("unexpected decor placement %v", p.Bounds)
		}
	}
	if hasErrorFinding(fs) {
		t.Errorf("section slide produced errors: %v", fs)
	}
}

func TestComposeContent(t *testing.T) {
	c := mustComposer(t, "corporate")
	pal := c.theme.Palette
	d := Deck{Title: "Deck", Slides: []Slide{
		{Title: "Deck"},
		{Title: "Highlights", Bullets: []string{"Revenue grew 40%.", "Churn fell below 2%."}},
	}}

	ps, fs := mustCompose(t, c, d, 1)

	assertRoles(t, ps, RoleBackground, RoleDecor, RoleDecor, RoleHeading, RoleBody, RoleDecor)

	if ps[0].Color != pal.Background {
		t.Errorf("background = %v, want %v", ps[0].Color, pal.Background)
	}
	assertBounds(t, "rail", ps[1].Bounds, 0, 0, 0.06, 7.5)
	assertBounds(t, "bar", ps[2].Bounds, 0.06, 0, 9.94, 0.8)

	heading := ps[3]
	assertBounds(t, "heading", heading.Bounds, 0.75, 0.1, 8.5, 0.7)
	if heading.FontSize != 36 || !heading.Bold {
		t.Errorf("heading = %gpt bold=%v, want 36pt bold", heading.FontSize, heading.Bold)
	}
	// Dark primary text fails on the navy bar; the composer flips it to
	// the white theme background.
	if heading.Color != pal.Background {
		t.Errorf("heading color = %v, want %v", heading.Color, pal.Background)
	}
	if !hasFindingRef(fs, "heading") {
		t.Errorf("no finding references the heading: %v", fs)
	}

	body := ps[4]
	assertBounds(t, "body", body.Bounds, 0.75, 1.2, 8.5, 5.65)
	if body.FontSize != 20 {
		t.Errorf("body size = %g, want 20", body.FontSize)
	}
	if len(body.Lines) != 2 || !strings.HasPrefix(body.Lines[0], "• ") {
		t.Errorf("body lines = %q, want two glyph-prefixed lines", body.Lines)
	}
	if body.Color != pal.TextSecondary {
		t.Errorf("body color = %v, want %v", body.Color, pal.TextSecondary)
	}
	if !hasFinding(fs, validate.SeverityInfo, "text fits in 2 of 14 lines") {
		t.Errorf("missing line-budget finding, got %v", fs)
	}

	if hasErrorFinding(fs) {
		t.Errorf("clean content slide produced errors: %v", fs)
	}
}

func TestComposeContentCompactBody(t *testing.T) {
	c := mustComposer(t, "corporate")
	bullet := strings.Repeat("steady ", 17) + "done" // 18 words
	slide := Slide{Title: "Dense"}
	for i := 0; i < 7; i++ {
		slide.Bullets = append(slide.Bullets, bullet) // 126 words total
	}
	d := Deck{Title: "Deck", Slides: []Slide{{Title: "Deck"}, slide}}

	ps, fs := mustCompose(t, c, d, 1)

	body := firstRole(t, ps, RoleBody)
	if body.FontSize != CompactBodySize {
		t.Errorf("body size = %g, want %g", body.FontSize, CompactBodySize)
	}
	if !hasFinding(fs, validate.SeverityInfo, "body size reduced to 18pt for 126 words") {
		t.Errorf("missing size-reduction finding, got %v", fs)
	}
}

func TestComposeContentTruncatesOverflowingBullets(t *testing.T) {
	c := mustComposer(t, "corporate")
	slide := Slide{Title: "Too Much"}
	for i := 0; i < 20; i++ {
		slide.Bullets = append(slide.Bullets, "Point noted.")
	}
	d := Deck{Title: "Deck", Slides: []Slide{{Title: "Deck"}, slide}}

	ps, fs := mustCompose(t, c, d, 1)

	body := firstRole(t, ps, RoleBody)
	if len(body.Lines) != 14 {
		t.Errorf("body lines = %d, want the 14-line budget", len(body.Lines))
	}
	if !hasFinding(fs, validate.SeverityWarning, "bullets need more than 14 lines") {
		t.Errorf("missing truncation warning, got %v", fs)
	}
}

func TestComposeChart(t *testing.T) {
	c := mustComposer(t, "corporate")
	pal := c.theme.Palette
	d := Deck{Title: "Deck", Slides: []Slide{
		{Title: "Deck"},
		{Title: "Revenue Growth"},
	}}

	ps, fs := mustCompose(t, c, d, 1)

	chart := firstRole(t, ps, RoleChart)
	assertBounds(t, "chart", chart.Bounds, 0.75, 1.1, 8.5, 5.75)
	if len(chart.Lines) != 1 || chart.Lines[0] != "Revenue Growth" {
		t.Errorf("chart label = %q, want the slot label", chart.Lines)
	}
	if chart.Color != pal.BackgroundSecondary {
		t.Errorf("chart panel color = %v, want %v", chart.Color, pal.BackgroundSecondary)
	}

	heading := firstRole(t, ps, RoleHeading)
	if heading.FontSize != 36 {
		t.Errorf("heading size = %g, want 36", heading.FontSize)
	}
	if hasErrorFinding(fs) {
		t.Errorf("chart slide produced errors: %v", fs)
	}
}

func TestComposeChartUnknownSlotLabel(t *testing.T) {
	c := mustComposer(t, "corporate")
	d := Deck{Title: "Deck", Slides: []Slide{
		{Title: "Deck"},
		{Title: "Outlook", Archetype: ArchetypeChart},
	}}

	ps, _ := mustCompose(t, c, d, 1)
	chart := firstRole(t, ps, RoleChart)
	if len(chart.Lines) != 1 || chart.Lines[0] != "Chart" {
		t.Errorf("chart label = %q, want the generic label", chart.Lines)
	}
}

func TestComposeContentChart(t *testing.T) {
	c := mustComposer(t, "corporate")
	d := Deck{Title: "Deck", Slides: []Slide{
		{Title: "Deck"},
		{Title: "Sales Funnel", Bullets: []string{"Pipeline is healthy."}},
	}}

	ps, fs := mustCompose(t, c, d, 1)

	decors := 0
	for _, p := range ps {
		if p.Role == RoleDecor {
			decors++
		}
	}
	// Full-width bar and bottom border only; no left rail on split slides.
	if decors != 2 {
		t.Errorf("decor count = %d, want 2", decors)
	}
	bar := firstRole(t, ps, RoleDecor)
	assertBounds(t, "bar", bar.Bounds, 0, 0, 10, 0.8)

	body := firstRole(t, ps, RoleBody)
	assertBounds(t, "body", body.Bounds, 0.75, 1.2, 4.125, 5.65)

	chart := firstRole(t, ps, RoleChart)
	assertBounds(t, "chart", chart.Bounds, 5.125, 1.2, 4.125, 5.65)
	if chart.Lines[0] != "Sales Funnel" {
		t.Errorf("chart label = %q", chart.Lines)
	}
	if hasErrorFinding(fs) {
		t.Errorf("content chart slide produced errors: %v", fs)
	}
}

func TestComposeTwoColumn(t *testing.T) {
	c := mustComposer(t, "corporate")
	d := Deck{Title: "Deck", Slides: []Slide{
		{Title: "Deck"},
		{
			Title: "Build vs Buy",
			Left:  []string{"Two quarters of work."},
			Right: []string{"Ships this sprint."},
		},
	}}

	ps, fs := mustCompose(t, c, d, 1)

	var bodies []Placement
	for _, p := range ps {
		if p.Role == RoleBody {
			bodies = append(bodies, p)
		}
	}
	if len(bodies) != 2 {
		t.Fatalf("body placements = %d, want 2", len(bodies))
	}
	assertBounds(t, "left", bodies[0].Bounds, 0.75, 1.2, 4.125, 5.65)
	assertBounds(t, "right", bodies[1].Bounds, 5.125, 1.2, 4.125, 5.65)

	if !hasFindingRef(fs, "left column") || !hasFindingRef(fs, "right column") {
		t.Errorf("column findings missing refs: %v", fs)
	}
	if hasErrorFinding(fs) {
		t.Errorf("two column slide produced errors: %v", fs)
	}
}

func TestComposeTable(t *testing.T) {
	c := mustComposer(t, "corporate")
	pal := c.theme.Palette
	d := Deck{Title: "Deck", Slides: []Slide{
		{Title: "Deck"},
		{Title: "Quarterly Metrics", Table: [][]string{
			{"Quarter", "ARR", "NRR"},
			{"Q1 2026", "$4.2M", "118%"},
			{"Q2 2026", "$5.1M", "121%"},
		}},
	}}

	ps, fs := mustCompose(t, c, d, 1)

	var tables []Placement
	for _, p := range ps {
		if p.Role == RoleTable {
			tables = append(tables, p)
		}
	}
	if len(tables) != 2 {
		t.Fatalf("table placements = %d, want header and data", len(tables))
	}

	header := tables[0]
	assertBounds(t, "header", header.Bounds, 0.75, 1.2, 8.5, 0.5)
	if !header.Bold || header.Font != "Georgia" {
		t.Errorf("header = bold=%v font=%q, want bold title font", header.Bold, header.Font)
	}
	if header.Lines[0] != "Quarter | ARR | NRR" {
		t.Errorf("header row = %q", header.Lines[0])
	}
	if header.Color != pal.TextPrimary {
		t.Errorf("header color = %v, want %v", header.Color, pal.TextPrimary)
	}

	data := tables[1]
	assertBounds(t, "data", data.Bounds, 0.75, 1.7, 8.5, 1.0)
	if len(data.Lines) != 2 || data.Lines[0] != "Q1 2026 | $4.2M | 118%" {
		t.Errorf("data rows = %q", data.Lines)
	}

	// The header band behind the first row.
	band := false
	for _, p := range ps {
		if p.Role == RoleDecor && p.Color == pal.BackgroundSecondary {
			assertBounds(t, "band", p.Bounds, 0.75, 1.2, 8.5, 0.5)
			band = true
		}
	}
	if !band {
		t.Error("missing header band decor")
	}

	if hasErrorFinding(fs) {
		t.Errorf("table slide produced errors: %v", fs)
	}
	for _, f := range fs {
		if f.Severity == validate.SeverityWarning {
			t.Errorf("unexpected warning: %v", f)
		}
	}
}

func TestComposeTableSampleFallback(t *testing.T) {
	c := mustComposer(t, "corporate")
	d := Deck{Title: "Deck", Slides: []Slide{
		{Title: "Deck"},
		{Title: "Revenue by year", Archetype: ArchetypeTable},
	}}

	ps, _ := mustCompose(t, c, d, 1)

	var tables []Placement
	for _, p := range ps {
		if p.Role == RoleTable {
			tables = append(tables, p)
		}
	}
	if len(tables) != 2 {
		t.Fatalf("table placements = %d, want 2", len(tables))
	}
	if tables[0].Lines[0] != "Period | Revenue" {
		t.Errorf("header = %q, want the revenue sample", tables[0].Lines[0])
	}
	if len(tables[1].Lines) != 4 {
		t.Errorf("data rows = %d, want 4", len(tables[1].Lines))
	}
}

func TestComposeTableWarnings(t *testing.T) {
	c := mustComposer(t, "corporate")

	wide := Deck{Title: "Deck", Slides: []Slide{
		{Title: "Deck"},
		{Title: "Wide", Table: [][]string{
			{"Key", "Value"},
			{strings.Repeat("x", 80), strings.Repeat("y", 80)},
		}},
	}}
	_, fs := mustCompose(t, c, wide, 1)
	if !hasFinding(fs, validate.SeverityWarning, "wider than the table region") {
		t.Errorf("missing wide-row warning, got %v", fs)
	}

	rows := [][]string{{"N", "V"}}
	for i := 0; i < 19; i++ {
		rows = append(rows, []string{"n", "v"})
	}
	tall := Deck{Title: "Deck", Slides: []Slide{
		{Title: "Deck"},
		{Title: "Tall", Table: rows},
	}}
	_, fs = mustCompose(t, c, tall, 1)
	if !hasFinding(fs, validate.SeverityWarning, "shorter than") {
		t.Errorf("missing row-height warning, got %v", fs)
	}
}

func TestComposeClosing(t *testing.T) {
	c := mustComposer(t, "corporate")
	d := Deck{Title: "Deck", Slides: []Slide{
		{Title: "Deck"},
		{Title: "Thank You"},
	}}

	ps, fs := mustCompose(t, c, d, 1)

	title := firstRole(t, ps, RoleTitle)
	assertBounds(t, "closing", title.Bounds, 0.75, 2.5, 8.5, 2.0)
	if title.Text() != "Thank You" || !title.Centered {
		t.Errorf("closing = %q centered=%v", title.Text(), title.Centered)
	}

	border := false
	for _, p := range ps {
		if p.Role == RoleDecor {
			border = true
		}
	}
	if !border {
		t.Error("closing slide missing bottom border")
	}
	if hasErrorFinding(fs) {
		t.Errorf("closing slide produced errors: %v", fs)
	}
}

func TestComposeClosingFallbackTitle(t *testing.T) {
	c := mustComposer(t, "corporate")
	d := Deck{Title: "Deck", Slides: []Slide{
		{Title: "Deck"},
		{Archetype: ArchetypeClosing},
	}}

	ps, _ := mustCompose(t, c, d, 1)
	if got := firstRole(t, ps, RoleTitle).Text(); got != "Thank You" {
		t.Errorf("closing text = %q, want the default", got)
	}
}

func TestComposeContrastFailureIsAFindingNotAnError(t *testing.T) {
	// Midnight Pitch's rust accent cannot host readable caption text even
	// after the color switch; composition still succeeds and reports it.
	c := mustComposer(t, "pitch")
	d := Deck{Title: "Deck", Date: "June 2026", Slides: []Slide{{Title: "Deck"}}}

	_, fs, err := c.Compose(d, 0)
	if err != nil {
		t.Fatalf("Compose: %v", err)
	}

	found := false
	for _, f := range fs {
		if f.Severity == validate.SeverityError && f.Check == validate.CheckContrast {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a contrast error finding, got %v", fs)
	}
}

func TestComposeIndexOutOfRange(t *testing.T) {
	c := mustComposer(t, "corporate")
	d := Deck{Title: "Deck", Slides: []Slide{{Title: "Deck"}}}

	for _, index := range []int{-1, 1, 99} {
		_, _, err := c.Compose(d, index)
		if err == nil {
			t.Errorf("Compose(%d) succeeded, want error", index)
			continue
		}
		if !errors.Is(err, errors.ErrCodeInvalidInput) {
			t.Errorf("Compose(%d) code = %v, want %v", index, errors.GetCode(err), errors.ErrCodeInvalidInput)
		}
	}
}

func TestComposeUnknownArchetype(t *testing.T) {
	c := mustComposer(t, "corporate")
	d := Deck{Title: "Deck", Slides: []Slide{
		{Title: "Deck"},
		{Title: "Odd", Archetype: "hero"},
	}}

	_, _, err := c.Compose(d, 1)
	if err == nil {
		t.Fatal("expected error for unknown archetype")
	}
	if !errors.Is(err, errors.ErrCodeUnsupported) {
		t.Errorf("code = %v, want %v", errors.GetCode(err), errors.ErrCodeUnsupported)
	}
}

func TestComposeRegionOverflow(t *testing.T) {
	b, err := layout.New(tokens.CanvasDimensions{Width: 10, Height: 3}, grid.DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	c := NewComposer(tokens.Builtin().Lookup("corporate"), b)

	_, _, err = c.Compose(Deck{Title: "Deck", Slides: []Slide{{Title: "Deck"}}}, 0)
	if err == nil {
		t.Fatal("expected overflow error on a 3 inch canvas")
	}
	if !strings.Contains(err.Error(), "slide 0 (title)") {
		t.Errorf("error = %q, want it to name the slide and archetype", err)
	}
}

func TestComposeAllArchetypesClean(t *testing.T) {
	d := Deck{
		Title:    "NeuraDeck Series B",
		Subtitle: "Investor briefing",
		Date:     "June 2026",
		Slides: []Slide{
			{Title: "NeuraDeck Series B"},
			{Title: "The Problem"},
			{Title: "Product Highlights", Bullets: []string{"Deterministic layout.", "Typed findings."}},
			{Title: "Revenue Growth"},
			{Title: "Sales Funnel", Bullets: []string{"Converts at 12%."}},
			{Title: "Build vs Buy", Left: []string{"Slow."}, Right: []string{"Fast."}},
			{Title: "Quarterly Metrics", Table: [][]string{{"Q", "ARR"}, {"Q1", "$4.2M"}}},
			{Title: "Thank You"},
		},
	}

	for _, themeID := range []string{"default", "corporate"} {
		c := mustComposer(t, themeID)
		for i := range d.Slides {
			ps, fs, err := c.Compose(d, i)
			if err != nil {
				t.Fatalf("theme %s slide %d: %v", themeID, i, err)
			}
			if len(ps) == 0 || ps[0].Role != RoleBackground {
				t.Errorf("theme %s slide %d: first placement %v, want background", themeID, i, rolesOf(ps))
			}
			if hasErrorFinding(fs) {
				t.Errorf("theme %s slide %d has error findings: %v", themeID, i, fs)
			}
		}
	}
}
