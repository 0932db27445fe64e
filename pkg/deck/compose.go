package deck

import (
	"fmt"
	"math"
	"strings"

	"github.com/neuradeck/slidekit/pkg/errors"
	"github.com/neuradeck/slidekit/pkg/layout"
	"github.com/neuradeck/slidekit/pkg/textfit"
	"github.com/neuradeck/slidekit/pkg/tokens"
	"github.com/neuradeck/slidekit/pkg/validate"
)

// CompactBodySize replaces the theme body size on content slides whose
// bullets together exceed BodyWordBudget words.
const (
	CompactBodySize = 18.0
	BodyWordBudget  = 120
)

// Shrink floors for the fitted text roles, in points.
const (
	minBannerTitleSize = 28.0
	minHeadingSize     = 20.0
	minSubtitleSize    = 16.0
)

// Rune caps applied at placement time, matching the rendered boxes.
const (
	titleRuneCap      = 80
	subtitleRuneCap   = 100
	dateRuneCap       = 60
	summaryRuneCap    = 120
	tableTitleRuneCap = 70
)

// Vertical rhythm of the archetypes, in inches. Hero boxes sit a fixed
// drop below the top margin on banner slides; content regions hang off
// the accent bar.
const (
	heroDropIn       = 2.0
	heroHeightIn     = 1.8
	heroSubDropIn    = 3.9
	dateStepIn       = 1.1
	headingTopIn     = 0.1
	bodyGapIn        = 0.4
	chartGapIn       = 0.3
	bodyBottomPadIn  = 0.15
	tableBottomPadIn = 0.2
	maxTableRowIn    = 0.5
)

var white = tokens.RGB{R: 0xFF, G: 0xFF, B: 0xFF}

// Composer lays slides out against one theme and grid geometry. The zero
// value is not usable; construct with NewComposer.
type Composer struct {
	theme      tokens.Theme
	builder    *layout.Builder
	safeMargin float64
}

// NewComposer returns a composer for theme over the builder's canvas and
// grid. Bounds findings use the default safe margin.
func NewComposer(theme tokens.Theme, b *layout.Builder) *Composer {
	return &Composer{theme: theme, builder: b, safeMargin: validate.DefaultSafeMargin}
}

// SetSafeMargin overrides the inset used by bounds checks. Zero or
// negative disables the near-edge warning.
func (c *Composer) SetSafeMargin(in float64) { c.safeMargin = in }

// Compose lays out slide index of the deck. It returns the positioned
// placements plus every validation finding for the slide, remediation
// notes included. Content that does not fit degrades and is reported as a
// finding; the error covers geometry that cannot host the archetype.
func (c *Composer) Compose(d Deck, index int) ([]Placement, []validate.Result, error) {
	if index < 0 || index >= len(d.Slides) {
		return nil, nil, errors.New(errors.ErrCodeInvalidInput,
			"slide index %d out of range for %d slides", index, len(d.Slides))
	}
	s := d.Slides[index]
	arch := InferArchetype(s, index, len(d.Slides))

	st := &composeState{c: c, index: index}
	var err error
	switch arch {
	case ArchetypeTitle:
		err = c.composeTitle(st, d, s)
	case ArchetypeSection:
		err = c.composeSection(st, s)
	case ArchetypeContent:
		err = c.composeContent(st, s)
	case ArchetypeChart:
		err = c.composeChart(st, s)
	case ArchetypeContentChart:
		err = c.composeContentChart(st, s)
	case ArchetypeTwoColumn:
		err = c.composeTwoColumn(st, s)
	case ArchetypeTable:
		err = c.composeTable(st, s)
	case ArchetypeClosing:
		err = c.composeClosing(st, s)
	default:
		return nil, nil, errors.New(errors.ErrCodeUnsupported, "no composer for archetype %q", arch)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("slide %d (%s): %w", index, arch, err)
	}
	return st.placements, st.findings, nil
}

// =============================================================================
// Archetype Composers
// =============================================================================

func (c *Composer) composeTitle(st *composeState, d Deck, s Slide) error {
	pal := c.theme.Palette
	typ := c.theme.Typography
	st.background(pal.Accent)

	mt := c.builder.Grid().Config().MarginTop
	title, _ := truncateRunes(firstNonEmpty(s.Title, d.Title, "NeuraDeck"), titleRuneCap)
	tb, err := c.fullRegion(mt+heroDropIn, heroHeightIn)
	if err != nil {
		return fmt.Errorf("title region: %w", err)
	}
	lines, size, budget := c.fitText(title, tb, minBannerTitleSize, typ.Title, c.theme.Fonts.Title, typ.LineHeightTight)
	color := st.pickText(RoleTitle, white, pal.Accent, isLargeText(size, true))
	st.place(textRegion{
		role: RoleTitle, bounds: tb, text: title, lines: lines, size: size,
		maxLines: budget, font: c.theme.Fonts.Title, color: color, onBg: pal.Accent,
		bold: true, centered: true,
	})

	dateTop := mt + heroSubDropIn
	if subtitle := firstNonEmpty(s.Subtitle, d.Subtitle); subtitle != "" {
		subtitle, _ = truncateRunes(subtitle, subtitleRuneCap)
		sb, err := c.fullRegion(dateTop, 1.0)
		if err != nil {
			return fmt.Errorf("subtitle region: %w", err)
		}
		lines, size, budget := c.fitText(subtitle, sb, minSubtitleSize, typ.Subtitle, c.theme.Fonts.Body, typ.LineHeight)
		color := st.pickText(RoleSubtitle, pal.TextSecondary, pal.Accent, isLargeText(size, false))
		st.place(textRegion{
			role: RoleSubtitle, bounds: sb, text: subtitle, lines: lines, size: size,
			maxLines: budget, font: c.theme.Fonts.Body, color: color, onBg: pal.Accent,
			centered: true,
		})
		dateTop += dateStepIn
	}

	if d.Date != "" {
		date, _ := truncateRunes(d.Date, dateRuneCap)
		db, err := c.fullRegion(dateTop, 0.4)
		if err != nil {
			return fmt.Errorf("date region: %w", err)
		}
		lines, budget := c.wrapFixed(date, db, typ.Caption, c.theme.Fonts.Body, typ.LineHeightTight)
		color := st.pickText(RoleCaption, pal.TextSecondary, pal.Accent, false)
		st.place(textRegion{
			role: RoleCaption, bounds: db, text: date, lines: lines, size: typ.Caption,
			maxLines: budget, font: c.theme.Fonts.Body, color: color, onBg: pal.Accent,
			centered: true,
		})
	}

	st.bottomBorder()
	return nil
}

func (c *Composer) composeSection(st *composeState, s Slide) error {
	pal := c.theme.Palette
	typ := c.theme.Typography
	st.background(pal.Accent)

	mt := c.builder.Grid().Config().MarginTop
	title, _ := truncateRunes(firstNonEmpty(s.Title, "Section"), titleRuneCap)
	tb, err := c.fullRegion(mt+heroDropIn, heroHeightIn)
	if err != nil {
		return fmt.Errorf("title region: %w", err)
	}
	lines, size, budget := c.fitText(title, tb, minBannerTitleSize, typ.Title, c.theme.Fonts.Title, typ.LineHeightTight)
	color := st.pickText(RoleTitle, white, pal.Accent, isLargeText(size, true))
	st.place(textRegion{
		role: RoleTitle, bounds: tb, text: title, lines: lines, size: size,
		maxLines: budget, font: c.theme.Fonts.Title, color: color, onBg: pal.Accent,
		bold: true, centered: true,
	})

	if summary := strings.TrimSpace(s.Subtitle); summary != "" {
		summary, _ = truncateRunes(summary, summaryRuneCap)
		sb, err := c.fullRegion(mt+heroSubDropIn, 0.6)
		if err != nil {
			return fmt.Errorf("summary region: %w", err)
		}
		lines, budget := c.wrapFixed(summary, sb, typ.Caption, c.theme.Fonts.Body, typ.LineHeight)
		color := st.pickText(RoleCaption, white, pal.Accent, false)
		st.place(textRegion{
			role: RoleCaption, bounds: sb, text: summary, lines: lines, size: typ.Caption,
			maxLines: budget, font: c.theme.Fonts.Body, color: color, onBg: pal.Accent,
			centered: true,
		})
	}
	return nil
}

func (c *Composer) composeContent(st *composeState, s Slide) error {
	typ := c.theme.Typography
	st.background(c.theme.Palette.Background)
	st.chrome(true)
	if err := c.heading(st, firstNonEmpty(s.Title, "Slide"), typ.Heading); err != nil {
		return err
	}

	if len(s.Bullets) > 0 {
		size := typ.Body
		if s.WordCount() > BodyWordBudget && size > CompactBodySize {
			size = CompactBodySize
			st.findings = append(st.findings, validate.Result{
				Severity: validate.SeverityInfo,
				Check:    validate.CheckOverflow,
				Ref:      st.refFor(RoleBody),
				Message:  fmt.Sprintf("body size reduced to %gpt for %d words", size, s.WordCount()),
			})
		}
		body, err := c.bodyRegion()
		if err != nil {
			return err
		}
		c.bulletBlock(st, body, s.Bullets, size, "body")
	}
	st.bottomBorder()
	return nil
}

func (c *Composer) composeContentChart(st *composeState, s Slide) error {
	typ := c.theme.Typography
	st.background(c.theme.Palette.Background)
	st.chrome(false)
	if err := c.heading(st, firstNonEmpty(s.Title, "Slide"), typ.Heading); err != nil {
		return err
	}
	left, right, err := c.splitRegions()
	if err != nil {
		return err
	}
	if len(s.Bullets) > 0 {
		c.bulletBlock(st, left, s.Bullets, typ.Body, "body")
	}
	st.chart(right, effectiveChartSlot(s))
	st.bottomBorder()
	return nil
}

func (c *Composer) composeTwoColumn(st *composeState, s Slide) error {
	typ := c.theme.Typography
	st.background(c.theme.Palette.Background)
	st.chrome(false)
	if err := c.heading(st, firstNonEmpty(s.Title, "Slide"), typ.Heading); err != nil {
		return err
	}
	left, right, err := c.splitRegions()
	if err != nil {
		return err
	}
	if len(s.Left) > 0 {
		c.bulletBlock(st, left, s.Left, typ.Body, "left column")
	}
	if len(s.Right) > 0 {
		c.bulletBlock(st, right, s.Right, typ.Body, "right column")
	}
	st.bottomBorder()
	return nil
}

func (c *Composer) composeChart(st *composeState, s Slide) error {
	typ := c.theme.Typography
	st.background(c.theme.Palette.Background)
	st.chrome(true)
	if err := c.heading(st, firstNonEmpty(s.Title, "Chart"), typ.ChartTitle); err != nil {
		return err
	}

	canvas := c.builder.Canvas()
	cfg := c.builder.Grid().Config()
	top := AccentBarHeightIn + chartGapIn
	height := canvas.Height - top - cfg.MarginBottom - bodyBottomPadIn
	cb, err := c.fullRegion(top, height)
	if err != nil {
		return fmt.Errorf("chart region: %w", err)
	}
	st.chart(cb, effectiveChartSlot(s))
	st.bottomBorder()
	return nil
}

func (c *Composer) composeTable(st *composeState, s Slide) error {
	pal := c.theme.Palette
	typ := c.theme.Typography
	st.background(pal.Background)
	st.chrome(false)

	title, _ := truncateRunes(firstNonEmpty(s.Title, "Data"), tableTitleRuneCap)
	if err := c.heading(st, title, typ.Heading); err != nil {
		return err
	}

	rows := s.Table
	if len(rows) == 0 {
		rows = SampleTable(effectiveChartSlot(s))
	}

	canvas := c.builder.Canvas()
	cfg := c.builder.Grid().Config()
	top := AccentBarHeightIn + bodyGapIn
	avail := canvas.Height - top - cfg.MarginBottom - tableBottomPadIn
	rowH := math.Min(maxTableRowIn, avail/float64(len(rows)))
	tb, err := c.fullRegion(top, rowH*float64(len(rows)))
	if err != nil {
		return fmt.Errorf("table region: %w", err)
	}

	headerB := layout.Bounds{X: tb.X, Y: tb.Y, Width: tb.Width, Height: rowH}
	st.decor(headerB, pal.BackgroundSecondary)
	st.place(textRegion{
		role: RoleTable, bounds: headerB, text: joinRow(rows[0]),
		lines: []string{joinRow(rows[0])}, size: typ.Body, maxLines: 1,
		font: c.theme.Fonts.Title, color: pal.TextPrimary, onBg: pal.BackgroundSecondary,
		bold: true, noOverflowCheck: true,
	})

	if len(rows) > 1 {
		dataB := layout.Bounds{X: tb.X, Y: tb.Y + rowH, Width: tb.Width, Height: tb.Height - rowH}
		lines := make([]string, 0, len(rows)-1)
		for _, row := range rows[1:] {
			lines = append(lines, joinRow(row))
		}
		st.place(textRegion{
			role: RoleTable, bounds: dataB, text: strings.Join(lines, " "),
			lines: lines, size: typ.Body, maxLines: len(lines),
			font: c.theme.Fonts.Body, color: pal.TextSecondary, onBg: pal.Background,
			noOverflowCheck: true,
		})
	}

	widthPt := tb.Width * tokens.PointsPerInch
	for i, row := range rows {
		font := c.theme.Fonts.Body
		if i == 0 {
			font = c.theme.Fonts.Title
		}
		if textfit.EstimateWidth(joinRow(row), typ.Body, font) > widthPt {
			st.findings = append(st.findings, validate.Result{
				Severity: validate.SeverityWarning,
				Check:    validate.CheckOverflow,
				Ref:      st.refFor(RoleTable),
				Message:  fmt.Sprintf("table row %d is wider than the table region", i),
			})
		}
	}
	if rowH*tokens.PointsPerInch < typ.Body*typ.LineHeightTight {
		st.findings = append(st.findings, validate.Result{
			Severity: validate.SeverityWarning,
			Check:    validate.CheckOverflow,
			Ref:      st.refFor(RoleTable),
			Message:  fmt.Sprintf("table rows are shorter than %gpt cell text", typ.Body),
		})
	}

	st.bottomBorder()
	return nil
}

func (c *Composer) composeClosing(st *composeState, s Slide) error {
	pal := c.theme.Palette
	typ := c.theme.Typography
	st.background(pal.Accent)

	mt := c.builder.Grid().Config().MarginTop
	line, _ := truncateRunes(firstNonEmpty(s.Title, "Thank You"), titleRuneCap)
	cb, err := c.fullRegion(mt+heroDropIn, 2.0)
	if err != nil {
		return fmt.Errorf("closing region: %w", err)
	}
	lines, size, budget := c.fitText(line, cb, minBannerTitleSize, typ.Title, c.theme.Fonts.Title, typ.LineHeightTight)
	color := st.pickText(RoleTitle, white, pal.Accent, isLargeText(size, true))
	st.place(textRegion{
		role: RoleTitle, bounds: cb, text: line, lines: lines, size: size,
		maxLines: budget, font: c.theme.Fonts.Title, color: color, onBg: pal.Accent,
		bold: true, centered: true,
	})
	st.bottomBorder()
	return nil
}

// =============================================================================
// Shared Pieces
// =============================================================================

// heading places the slide title inside the accent bar.
func (c *Composer) heading(st *composeState, title string, startSize float64) error {
	pal := c.theme.Palette
	hb, err := c.fullRegion(headingTopIn, AccentBarHeightIn-headingTopIn)
	if err != nil {
		return fmt.Errorf("heading region: %w", err)
	}
	lines, size, budget := c.fitText(title, hb, minHeadingSize, startSize, c.theme.Fonts.Title, c.theme.Typography.LineHeightTight)
	color := st.pickText(RoleHeading, pal.TextPrimary, pal.Accent, isLargeText(size, true))
	st.place(textRegion{
		role: RoleHeading, bounds: hb, text: title, lines: lines, size: size,
		maxLines: budget, font: c.theme.Fonts.Title, color: color, onBg: pal.Accent,
		bold: true,
	})
	return nil
}

// bulletBlock wraps a bullet list into a region at a fixed size, one
// glyph-prefixed paragraph per bullet, consuming the line budget in order.
// label distinguishes the finding refs when a slide has several blocks.
func (c *Composer) bulletBlock(st *composeState, b layout.Bounds, bullets []string, size float64, label string) {
	typ := c.theme.Typography
	font := c.theme.Fonts.Body
	widthPt := b.Width * tokens.PointsPerInch
	budget := textfit.MaxLinesForHeight(b.Height*tokens.PointsPerInch, size, typ.LineHeight)

	remaining := budget
	truncated := false
	var lines []string
	for _, bl := range bullets {
		if remaining <= 0 {
			truncated = true
			break
		}
		text := "• " + bl
		wrapped := textfit.WrapLines(text, widthPt, size, font, 0)
		if len(wrapped) > remaining {
			truncated = true
			wrapped = textfit.WrapLines(text, widthPt, size, font, remaining)
		}
		lines = append(lines, wrapped...)
		remaining -= len(wrapped)
	}

	color := c.theme.Palette.TextSecondary
	st.placements = append(st.placements, Placement{
		Role: RoleBody, Bounds: b, Lines: lines, FontSize: size, Font: font, Color: color,
	})
	ref := fmt.Sprintf("slide %d: %s", st.index, label)
	st.findings = append(st.findings,
		validate.Bounds(b, c.builder.Canvas(), c.safeMargin, ref),
		validate.Contrast(color, st.bg, isLargeText(size, false), ref),
		bulletOverflow(len(lines), budget, truncated, ref),
	)
}

// bulletOverflow mirrors the overflow phrasing of the validate package for
// paragraph-wrapped bullet blocks.
func bulletOverflow(used, budget int, truncated bool, ref string) validate.Result {
	if truncated {
		return validate.Result{
			Severity: validate.SeverityWarning,
			Check:    validate.CheckOverflow,
			Ref:      ref,
			Message:  fmt.Sprintf("bullets need more than %d lines and were truncated", budget),
		}
	}
	return validate.Result{
		Severity: validate.SeverityInfo,
		Check:    validate.CheckOverflow,
		Ref:      ref,
		Message:  fmt.Sprintf("text fits in %d of %d lines", used, budget),
	}
}

// fitText shrinks text into a region, returning the wrapped lines, the
// chosen size, and the line budget at that size.
func (c *Composer) fitText(text string, b layout.Bounds, minSize, startSize float64, font string, lineHeight float64) ([]string, float64, int) {
	widthPt := b.Width * tokens.PointsPerInch
	heightPt := b.Height * tokens.PointsPerInch
	fit := textfit.FitFontSize(text, widthPt, heightPt, minSize, startSize, startSize, font, lineHeight)
	budget := textfit.MaxLinesForHeight(heightPt, fit.Size, lineHeight)
	return fit.Lines, fit.Size, budget
}

// wrapFixed wraps text at a fixed size into a region's line budget.
func (c *Composer) wrapFixed(text string, b layout.Bounds, size float64, font string, lineHeight float64) ([]string, int) {
	widthPt := b.Width * tokens.PointsPerInch
	budget := textfit.MaxLinesForHeight(b.Height*tokens.PointsPerInch, size, lineHeight)
	limit := budget
	if limit < 1 {
		limit = 1
	}
	return textfit.WrapLines(text, widthPt, size, font, limit), budget
}

func (c *Composer) rows(in float64) float64 { return in / c.builder.RowUnit() }

// fullRegion spans every grid column between two vertical anchors given in
// inches.
func (c *Composer) fullRegion(topIn, heightIn float64) (layout.Bounds, error) {
	return c.builder.Region(0, c.builder.Grid().Columns(), c.rows(topIn), c.rows(heightIn))
}

// bodyRegion is the text area below the accent bar shared by the content
// archetypes.
func (c *Composer) bodyRegion() (layout.Bounds, error) {
	canvas := c.builder.Canvas()
	cfg := c.builder.Grid().Config()
	top := AccentBarHeightIn + bodyGapIn
	height := canvas.Height - top - cfg.MarginBottom - bodyBottomPadIn
	b, err := c.fullRegion(top, height)
	if err != nil {
		return layout.Bounds{}, fmt.Errorf("body region: %w", err)
	}
	return b, nil
}

// splitRegions returns the two grid halves of the body area.
func (c *Composer) splitRegions() (left, right layout.Bounds, err error) {
	canvas := c.builder.Canvas()
	cfg := c.builder.Grid().Config()
	top := AccentBarHeightIn + bodyGapIn
	height := canvas.Height - top - cfg.MarginBottom - bodyBottomPadIn
	left, right, err = c.builder.TwoColumn(c.rows(top), c.rows(height))
	if err != nil {
		err = fmt.Errorf("column regions: %w", err)
	}
	return left, right, err
}

// isLargeText applies the WCAG large-text rule: 18 point and up, or bold
// at 14 point and up.
func isLargeText(sizePt float64, bold bool) bool {
	return sizePt >= 18 || (bold && sizePt >= 14)
}

func joinRow(row []string) string {
	return strings.Join(row, " | ")
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}

// =============================================================================
// Compose State
// =============================================================================

// composeState accumulates the placements and findings of one slide.
type composeState struct {
	c          *Composer
	index      int
	bg         tokens.RGB
	placements []Placement
	findings   []validate.Result
}

func (st *composeState) refFor(role Role) string {
	return fmt.Sprintf("slide %d: %s", st.index, role)
}

func (st *composeState) background(color tokens.RGB) {
	st.bg = color
	canvas := st.c.builder.Canvas()
	st.placements = append(st.placements, Placement{
		Role:   RoleBackground,
		Bounds: layout.Bounds{Width: canvas.Width, Height: canvas.Height},
		Color:  color,
	})
}

func (st *composeState) decor(b layout.Bounds, color tokens.RGB) {
	st.placements = append(st.placements, Placement{Role: RoleDecor, Bounds: b, Color: color})
}

// chrome draws the standard content chrome: the full-width accent bar,
// plus the left rail carried by the content and chart archetypes.
func (st *composeState) chrome(rail bool) {
	canvas := st.c.builder.Canvas()
	ac := st.c.theme.Palette.Accent
	if rail {
		st.decor(layout.Bounds{Width: AccentRailWidthIn, Height: canvas.Height}, ac)
		st.decor(layout.Bounds{X: AccentRailWidthIn, Width: canvas.Width - AccentRailWidthIn, Height: AccentBarHeightIn}, ac)
		return
	}
	st.decor(layout.Bounds{Width: canvas.Width, Height: AccentBarHeightIn}, ac)
}

func (st *composeState) bottomBorder() {
	canvas := st.c.builder.Canvas()
	st.decor(layout.Bounds{
		Y:      canvas.Height - BottomBorderHeightIn,
		Width:  canvas.Width,
		Height: BottomBorderHeightIn,
	}, st.c.theme.Palette.AccentSecondary)
}

// chart places the placeholder panel for a chart slot.
func (st *composeState) chart(b layout.Bounds, slot ChartSlot) {
	st.placements = append(st.placements, Placement{
		Role:   RoleChart,
		Bounds: b,
		Lines:  []string{slot.Label()},
		Color:  st.c.theme.Palette.BackgroundSecondary,
	})
	st.findings = append(st.findings,
		validate.Bounds(b, st.c.builder.Canvas(), st.c.safeMargin, st.refFor(RoleChart)))
}

// pickText chooses a readable text color for a filled region: preferred
// when it clears the AA threshold, otherwise whichever of preferred and the
// theme background rates better. Switches are recorded as info findings.
func (st *composeState) pickText(role Role, preferred, on tokens.RGB, large bool) tokens.RGB {
	threshold := validate.AAContrastNormal
	if large {
		threshold = validate.AAContrastLarge
	}
	if validate.ContrastRatio(preferred, on) >= threshold {
		return preferred
	}
	fallback := st.c.theme.Palette.Background
	if validate.ContrastRatio(fallback, on) <= validate.ContrastRatio(preferred, on) {
		return preferred
	}
	st.findings = append(st.findings, validate.Result{
		Severity: validate.SeverityInfo,
		Check:    validate.CheckContrast,
		Ref:      st.refFor(role),
		Message:  fmt.Sprintf("text color switched to %s for readability on %s", fallback.Hex(), on.Hex()),
	})
	return fallback
}

// textRegion describes one text placement before its checks run.
type textRegion struct {
	role            Role
	bounds          layout.Bounds
	text            string
	lines           []string
	size            float64
	maxLines        int
	font            string
	color           tokens.RGB
	onBg            tokens.RGB
	bold            bool
	centered        bool
	noOverflowCheck bool
}

// place records the placement plus its bounds, contrast, and overflow
// findings.
func (st *composeState) place(t textRegion) {
	st.placements = append(st.placements, Placement{
		Role: t.role, Bounds: t.bounds, Lines: t.lines, FontSize: t.size,
		Font: t.font, Bold: t.bold, Centered: t.centered, Color: t.color,
	})
	ref := st.refFor(t.role)
	st.findings = append(st.findings,
		validate.Bounds(t.bounds, st.c.builder.Canvas(), st.c.safeMargin, ref),
		validate.Contrast(t.color, t.onBg, isLargeText(t.size, t.bold), ref),
	)
	if !t.noOverflowCheck {
		st.findings = append(st.findings,
			validate.TextOverflow(t.text, t.bounds, t.size, t.font, t.maxLines, ref))
	}
}
