package output

import (
	"strings"
	"testing"
	"time"

	"github.com/blackwell-systems/claudewrapped/internal/stats"
)

func sampleReport() *stats.Report {
	return &stats.Report{
		Year:               2025,
		TotalConversations: 42,
		TotalMessages:      120,
		TotalTokens:        15000,
		ActiveDays:         10,
		LongestStreak:      4,
		CurrentStreak:      2,
		ProjectCount:       3,
		MonthlyActivity: []stats.MonthlyActivity{
			{Month: "Jan", Conversations: 10, Messages: 30},
			{Month: "Feb", Conversations: 0},
			{Month: "Mar", Conversations: 32, Messages: 90},
		},
		TopTools: []stats.ToolUsage{
			{Name: "Edit", Count: 12, Icon: "✏️"},
		},
		TopProjects: []stats.ProjectUsage{
			{Name: "my-app", Conversations: 30, Percentage: 71},
		},
		ModelUsage: []stats.ModelUsage{
			{Name: "Sonnet", Count: 40, Percentage: 95, Color: "#3B82F6"},
		},
		FunStats: stats.FunStats{
			LateNightCount:    3,
			WeekendDays:       2,
			FavoriteTime:      "2 PM",
			MostProductiveDay: "Tuesday",
		},
		TimeAnalysis: stats.TimeAnalysis{
			HourlyActivity: []stats.HourlyActivity{{Hour: 14, Count: 20}},
			PeakHour:       14,
			PeakDay:        2,
		},
		Productivity: stats.ProductivityStats{
			MessagesPerConversation: 2.9,
			MostActiveMonth:         "Mar",
			MarathonSessions:        1,
			LongestBreakDays:        5,
			ComebackStreak:          3,
			AvgPerActiveDay:         4.2,
		},
		WorkPattern: stats.CodeWorkPattern{
			ExplorationRatio:  60,
			ModificationRatio: 40,
			WorkStyle:         stats.StyleBalanced,
		},
		FirstConversation: time.Date(2025, 1, 5, 9, 0, 0, 0, time.UTC),
		PeakDay: stats.PeakDay{
			Date:          time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
			Conversations: 9,
		},
	}
}

func TestRenderReport_Sections(t *testing.T) {
	SetNoColor(true)
	defer SetNoColor(false)

	out := RenderReport(sampleReport())

	for _, want := range []string{
		"Claude Code Wrapped · 2025",
		"Monthly Activity",
		"Top Tools",
		"Top Projects",
		"Model Usage",
		"When You Work",
		"Fun Stats",
		"Productivity",
		"Work Style",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("expected section %q in report output", want)
		}
	}
}

func TestRenderReport_Values(t *testing.T) {
	SetNoColor(true)
	defer SetNoColor(false)

	out := RenderReport(sampleReport())

	for _, want := range []string{
		"42",           // conversations
		"15.0k",        // tokens
		"my-app",       // project name
		"Sonnet",       // model name
		"Edit",         // tool name
		"2 PM",         // favorite time
		"Mar 10, 2025", // peak day
		"balanced",     // work style
	} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in report output", want)
		}
	}
}

func TestRenderHeatmap(t *testing.T) {
	SetNoColor(true)
	defer SetNoColor(false)

	r := sampleReport()
	r.Heatmap = []stats.HeatmapDay{
		{Date: "2025-01-01", Count: 0},
		{Date: "2025-01-02", Count: 3},
		{Date: "2025-02-01", Count: 1},
	}

	out := renderHeatmap(r)
	if !strings.Contains(out, "Daily Activity") {
		t.Error("expected heatmap section header")
	}
	if !strings.Contains(out, "·") {
		t.Error("expected empty-day glyph for zero-count day")
	}
	if !strings.Contains(out, "█") {
		t.Error("expected full glyph for the busiest day")
	}

	// Empty heatmap renders nothing.
	r.Heatmap = nil
	if renderHeatmap(r) != "" {
		t.Error("expected no output for empty heatmap")
	}
}

func TestHumanCount(t *testing.T) {
	tests := []struct {
		in   int
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1500, "1.5k"},
		{2_400_000, "2.4M"},
	}
	for _, tc := range tests {
		if got := humanCount(tc.in); got != tc.want {
			t.Errorf("humanCount(%d) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestBar_Proportional(t *testing.T) {
	SetNoColor(true)
	defer SetNoColor(false)

	full := Bar(10, 10, 10)
	if strings.Count(full, "█") != 10 {
		t.Errorf("expected full bar, got %q", full)
	}

	half := Bar(5, 10, 10)
	if strings.Count(half, "█") != 5 {
		t.Errorf("expected half bar, got %q", half)
	}

	// Nonzero values always show at least one cell.
	tiny := Bar(1, 1000, 10)
	if strings.Count(tiny, "█") != 1 {
		t.Errorf("expected minimum one filled cell, got %q", tiny)
	}

	empty := Bar(0, 10, 10)
	if strings.Count(empty, "█") != 0 {
		t.Errorf("expected empty bar, got %q", empty)
	}
}
