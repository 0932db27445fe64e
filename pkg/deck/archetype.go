package deck

import "strings"

// Archetype identifies the layout family of a slide. The set is closed;
// every slide composes through exactly one of these.
type Archetype string

const (
	ArchetypeTitle        Archetype = "title"
	ArchetypeSection      Archetype = "section"
	ArchetypeContent      Archetype = "content"
	ArchetypeChart        Archetype = "chart"
	ArchetypeContentChart Archetype = "content_chart"
	ArchetypeTwoColumn    Archetype = "two_column"
	ArchetypeTable        Archetype = "table"
	ArchetypeClosing      Archetype = "closing"
)

// Archetypes returns every archetype in presentation order.
func Archetypes() []Archetype {
	return []Archetype{
		ArchetypeTitle, ArchetypeSection, ArchetypeContent, ArchetypeChart,
		ArchetypeContentChart, ArchetypeTwoColumn, ArchetypeTable, ArchetypeClosing,
	}
}

// Valid reports whether a is a known archetype.
func (a Archetype) Valid() bool {
	switch a {
	case ArchetypeTitle, ArchetypeSection, ArchetypeContent, ArchetypeChart,
		ArchetypeContentChart, ArchetypeTwoColumn, ArchetypeTable, ArchetypeClosing:
		return true
	}
	return false
}

// closingTitles are the title phrases that mark a trailing slide as the
// closing slide. Matching is case-insensitive.
var closingTitles = map[string]bool{
	"thank you": true,
	"thanks":    true,
	"q&a":       true,
}

// InferArchetype picks the archetype for a slide with no explicit one.
// index is the slide's position and total the deck length. The first slide
// is always the title slide; after that content shape decides.
func InferArchetype(s Slide, index, total int) Archetype {
	if s.Archetype != "" {
		return s.Archetype
	}
	if index == 0 {
		return ArchetypeTitle
	}
	if len(s.Table) > 0 {
		return ArchetypeTable
	}
	if len(s.Left) > 0 || len(s.Right) > 0 {
		return ArchetypeTwoColumn
	}
	if effectiveChartSlot(s) != "" {
		if len(s.Bullets) > 0 {
			return ArchetypeContentChart
		}
		return ArchetypeChart
	}
	if len(s.Bullets) == 0 {
		if index == total-1 && closingTitles[strings.ToLower(strings.TrimSpace(s.Title))] {
			return ArchetypeClosing
		}
		return ArchetypeSection
	}
	return ArchetypeContent
}

// =============================================================================
// Chart Slots
// =============================================================================

// ChartSlot identifies which placeholder visualization a chart region
// shows. Slides carry a slot, not chart data; renderers decide how to fill
// the region.
type ChartSlot string

const (
	ChartRevenue ChartSlot = "revenue"
	ChartFunnel  ChartSlot = "funnel"
	ChartTeam    ChartSlot = "team"
	ChartMarket  ChartSlot = "market"
)

// ChartSlots returns every chart slot.
func ChartSlots() []ChartSlot {
	return []ChartSlot{ChartRevenue, ChartFunnel, ChartTeam, ChartMarket}
}

// Valid reports whether c is a known chart slot.
func (c ChartSlot) Valid() bool {
	switch c {
	case ChartRevenue, ChartFunnel, ChartTeam, ChartMarket:
		return true
	}
	return false
}

// Label returns the display caption for the slot's placeholder region.
func (c ChartSlot) Label() string {
	switch c {
	case ChartRevenue:
		return "Revenue Growth"
	case ChartFunnel:
		return "Sales Funnel"
	case ChartTeam:
		return "Team Growth"
	case ChartMarket:
		return "Market Opportunity"
	}
	return "Chart"
}

// chartKeywords is scanned in order, so multi-word phrases sit before
// their single-word fallbacks.
var chartKeywords = []struct {
	keyword string
	slot    ChartSlot
}{
	{"revenue", ChartRevenue},
	{"sales funnel", ChartFunnel},
	{"funnel", ChartFunnel},
	{"team growth", ChartTeam},
	{"team", ChartTeam},
	{"market opportunity", ChartMarket},
	{"market", ChartMarket},
}

// MatchChartSlot scans a slide title for chart keywords and returns the
// first matching slot, or "" when the title names none.
func MatchChartSlot(title string) ChartSlot {
	t := strings.ToLower(title)
	for _, k := range chartKeywords {
		if strings.Contains(t, k.keyword) {
			return k.slot
		}
	}
	return ""
}

// effectiveChartSlot resolves a slide's chart slot: explicit wins, then
// title keywords.
func effectiveChartSlot(s Slide) ChartSlot {
	if s.Chart != "" {
		return s.Chart
	}
	return MatchChartSlot(s.Title)
}

// SampleTable returns the built-in data series for a chart slot as table
// rows, header first. Table slides with no explicit rows fall back to it.
func SampleTable(slot ChartSlot) [][]string {
	switch slot {
	case ChartRevenue:
		return [][]string{
			{"Period", "Revenue"},
			{"2024", "$10M"}, {"2025", "$25M"}, {"2026", "$50M"}, {"2027", "$100M"},
		}
	case ChartFunnel:
		return [][]string{
			{"Stage", "Conversion %"},
			{"Leads", "100%"}, {"MQL", "50%"}, {"SQL", "20%"}, {"Deal", "10%"}, {"Closed", "5%"},
		}
	case ChartTeam:
		return [][]string{
			{"Month", "Headcount"},
			{"Jan 2025", "20"}, {"Feb 2025", "35"}, {"Mar 2025", "52"}, {"Apr 2025", "70"},
		}
	case ChartMarket:
		return [][]string{
			{"Segment", "Share %"},
			{"Enterprise", "45%"}, {"Mid-market", "35%"}, {"SMB", "20%"},
		}
	}
	return [][]string{{"Metric", "Value"}, {"No data available", "-"}}
}
