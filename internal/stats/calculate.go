package stats

import (
	"time"

	"github.com/blackwell-systems/claudewrapped/internal/ingest"
)

// Calculate turns the aggregates into the finished Report for the given
// target year. ref is the injected reference time ("now") used for
// current-streak computation; year 0 means ref's year.
//
// Calculate assumes at least one event was aggregated; the pipeline
// refuses to reach this point otherwise.
func Calculate(events []ingest.Event, agg Aggregates, ref time.Time, year int, thresholds Thresholds) *Report {
	if year == 0 {
		year = ref.Year()
	}

	dates := agg.ActiveDates()

	return &Report{
		Year:               year,
		TotalConversations: agg.TotalConversations,
		TotalMessages:      agg.TotalMessages,
		TotalTokens:        agg.TotalTokens,
		ActiveDays:         len(dates),
		LongestStreak:      LongestStreak(dates),
		CurrentStreak:      CurrentStreak(dates, ref),
		ProjectCount:       len(agg.Projects),
		MonthlyActivity:    MonthlyRollup(agg.Monthly),
		Heatmap:            YearHeatmap(agg.Daily, year),
		TopTools:           TopTools(agg.Tools, agg.TotalMessages),
		TopProjects:        TopProjects(agg.Projects, agg.TotalConversations),
		ModelUsage:         ModelBreakdown(agg.Models, agg.TotalConversations),
		FunStats:           ComputeFunStats(events, agg.Hours, agg.Days),
		TimeAnalysis:       ComputeTimeAnalysis(agg.Hours, agg.Days, agg.DayHour),
		Productivity:       ComputeProductivity(agg, thresholds),
		WorkPattern:        ComputeWorkPattern(agg.Tools),
		FirstConversation:  agg.First,
		PeakDay:            PeakDayOf(agg.Daily, ref),
	}
}
