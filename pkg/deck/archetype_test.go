package deck

import "testing"

func TestInferArchetype(t *testing.T) {
	bullets := []string{"One point."}

	tests := []struct {
		name  string
		slide Slide
		index int
		total int
		want  Archetype
	}{
		{"explicit archetype wins", Slide{Title: "Intro", Archetype: ArchetypeSection}, 0, 5, ArchetypeSection},
		{"first slide is the title", Slide{Title: "Deck", Bullets: bullets}, 0, 5, ArchetypeTitle},
		{"table rows", Slide{Title: "Numbers", Table: [][]string{{"A", "B"}}}, 2, 5, ArchetypeTable},
		{"columns beat chart keywords", Slide{Title: "Market split", Left: bullets, Right: bullets}, 2, 5, ArchetypeTwoColumn},
		{"chart keyword with bullets", Slide{Title: "Revenue outlook", Bullets: bullets}, 2, 5, ArchetypeContentChart},
		{"chart keyword alone", Slide{Title: "Revenue outlook"}, 2, 5, ArchetypeChart},
		{"explicit chart slot", Slide{Title: "Numbers", Chart: ChartFunnel}, 2, 5, ArchetypeChart},
		{"closing phrase on the last slide", Slide{Title: "Thank You"}, 4, 5, ArchetypeClosing},
		{"closing phrase is case insensitive", Slide{Title: "Q&A"}, 4, 5, ArchetypeClosing},
		{"closing phrase mid-deck is a section", Slide{Title: "Thank You"}, 2, 5, ArchetypeSection},
		{"bare title is a section", Slide{Title: "Part Two"}, 2, 5, ArchetypeSection},
		{"bullets mean content", Slide{Title: "Highlights", Bullets: bullets}, 2, 5, ArchetypeContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := InferArchetype(tt.slide, tt.index, tt.total); got != tt.want {
				t.Errorf("InferArchetype() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestArchetypeValid(t *testing.T) {
	for _, a := range Archetypes() {
		if !a.Valid() {
			t.Errorf("Archetype %q not valid", a)
		}
	}
	for _, a := range []Archetype{"", "hero", "TITLE"} {
		if a.Valid() {
			t.Errorf("Archetype %q should not be valid", a)
		}
	}
}

func TestMatchChartSlot(t *testing.T) {
	tests := []struct {
		title string
		want  ChartSlot
	}{
		{"Revenue Growth", ChartRevenue},
		{"Our sales funnel in detail", ChartFunnel},
		{"FUNNEL METRICS", ChartFunnel},
		{"Team growth plan", ChartTeam},
		{"Growing the team", ChartTeam},
		{"Market opportunity ahead", ChartMarket},
		{"Go-to-market", ChartMarket},
		// Keywords are checked in a fixed order, so revenue wins here.
		{"Sales funnel for revenue", ChartRevenue},
		{"Roadmap", ""},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			if got := MatchChartSlot(tt.title); got != tt.want {
				t.Errorf("MatchChartSlot(%q) = %q, want %q", tt.title, got, tt.want)
			}
		})
	}
}

func TestChartSlotValid(t *testing.T) {
	for _, c := range ChartSlots() {
		if !c.Valid() {
			t.Errorf("ChartSlot %q not valid", c)
		}
	}
	if ChartSlot("sparkline").Valid() {
		t.Error("ChartSlot(\"sparkline\") should not be valid")
	}
}

func TestChartSlotLabel(t *testing.T) {
	tests := []struct {
		slot ChartSlot
		want string
	}{
		{ChartRevenue, "Revenue Growth"},
		{ChartFunnel, "Sales Funnel"},
		{ChartTeam, "Team Growth"},
		{ChartMarket, "Market Opportunity"},
		{"", "Chart"},
	}
	for _, tt := range tests {
		if got := tt.slot.Label(); got != tt.want {
			t.Errorf("Label(%q) = %q, want %q", tt.slot, got, tt.want)
		}
	}
}

func TestSampleTable(t *testing.T) {
	for _, slot := range ChartSlots() {
		rows := SampleTable(slot)
		if len(rows) < 2 {
			t.Errorf("SampleTable(%q) has %d rows, want header plus data", slot, len(rows))
			continue
		}
		for i, row := range rows {
			if len(row) != len(rows[0]) {
				t.Errorf("SampleTable(%q) row %d has %d cells, header has %d", slot, i, len(row), len(rows[0]))
			}
		}
	}

	fallback := SampleTable("")
	if len(fallback) != 2 || fallback[0][0] != "Metric" {
		t.Errorf("SampleTable(\"\") = %v, want the metric/value fallback", fallback)
	}
}
