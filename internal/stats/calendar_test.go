package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestYearHeatmap_ZeroFillComplete(t *testing.T) {
	daily := map[string]int{"2025-03-05": 4}

	days := YearHeatmap(daily, 2025)
	require.Len(t, days, 365)
	assert.Equal(t, "2025-01-01", days[0].Date)
	assert.Equal(t, "2025-12-31", days[len(days)-1].Date)

	// Dates are contiguous with no gaps.
	for i := 1; i < len(days); i++ {
		prev, _ := time.Parse(dayLayout, days[i-1].Date)
		curr, _ := time.Parse(dayLayout, days[i].Date)
		assert.Equal(t, 24*time.Hour, curr.Sub(prev), "gap at %s", days[i].Date)
	}

	byDate := make(map[string]int)
	for _, d := range days {
		byDate[d.Date] = d.Count
	}
	assert.Equal(t, 4, byDate["2025-03-05"])
	assert.Equal(t, 0, byDate["2025-03-06"])
}

func TestYearHeatmap_LeapYear(t *testing.T) {
	days := YearHeatmap(nil, 2024)
	require.Len(t, days, 366)

	byDate := make(map[string]int)
	for _, d := range days {
		byDate[d.Date]++
	}
	assert.Contains(t, byDate, "2024-02-29")
}

func TestMonthlyRollup_AlwaysTwelveEntries(t *testing.T) {
	var monthly [12]MonthTotals
	monthly[0] = MonthTotals{Conversations: 3, Messages: 7}

	rollup := MonthlyRollup(monthly)
	require.Len(t, rollup, 12)
	assert.Equal(t, MonthlyActivity{Month: "Jan", Conversations: 3, Messages: 7}, rollup[0])
	for i := 1; i < 12; i++ {
		assert.Zero(t, rollup[i].Conversations, "month %s", rollup[i].Month)
		assert.Zero(t, rollup[i].Messages, "month %s", rollup[i].Month)
	}
	assert.Equal(t, "Dec", rollup[11].Month)
}

func TestMostActiveMonth(t *testing.T) {
	var monthly [12]MonthTotals
	monthly[2] = MonthTotals{Conversations: 5}
	monthly[7] = MonthTotals{Conversations: 9}

	month, count := MostActiveMonth(monthly)
	assert.Equal(t, "Aug", month)
	assert.Equal(t, 9, count)
}

func TestPeakDayOf(t *testing.T) {
	fallback := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	peak := PeakDayOf(map[string]int{"2025-02-01": 2, "2025-02-03": 8, "2025-02-05": 3}, fallback)
	assert.Equal(t, 8, peak.Conversations)
	assert.Equal(t, "2025-02-03", peak.Date.Format(dayLayout))

	empty := PeakDayOf(nil, fallback)
	assert.Zero(t, empty.Conversations)
	assert.True(t, empty.Date.Equal(fallback))
}
