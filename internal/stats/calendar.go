package stats

import "time"

// monthLabels are the fixed month names used in rollups, January first.
var monthLabels = [12]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

// YearHeatmap emits one entry per calendar day of the target year,
// Jan 1 through Dec 31, taking counts from daily and zero-filling the
// rest. The result has 365 or 366 entries depending on leap year, with
// no gaps.
func YearHeatmap(daily map[string]int, year int) []HeatmapDay {
	start := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC)

	var days []HeatmapDay
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		date := d.Format(dayLayout)
		days = append(days, HeatmapDay{Date: date, Count: daily[date]})
	}
	return days
}

// MonthlyRollup converts the per-month totals into the fixed 12-entry
// list, zero-filled for months with no activity.
func MonthlyRollup(monthly [12]MonthTotals) []MonthlyActivity {
	out := make([]MonthlyActivity, 12)
	for i, m := range monthly {
		out[i] = MonthlyActivity{
			Month:         monthLabels[i],
			Conversations: m.Conversations,
			Messages:      m.Messages,
		}
	}
	return out
}

// MostActiveMonth returns the label and conversation count of the busiest
// month. With no activity at all it returns the first month with zero.
func MostActiveMonth(monthly [12]MonthTotals) (string, int) {
	best := 0
	for i := 1; i < 12; i++ {
		if monthly[i].Conversations > monthly[best].Conversations {
			best = i
		}
	}
	return monthLabels[best], monthly[best].Conversations
}

// PeakDayOf returns the busiest calendar day and its count. With an empty
// daily map it returns fallback with a zero count.
func PeakDayOf(daily map[string]int, fallback time.Time) PeakDay {
	peakDate := ""
	peakCount := 0
	for date, count := range daily {
		if count > peakCount || (count == peakCount && (peakDate == "" || date < peakDate)) {
			peakCount = count
			peakDate = date
		}
	}
	if peakDate == "" {
		return PeakDay{Date: fallback}
	}
	d, err := time.Parse(dayLayout, peakDate)
	if err != nil {
		return PeakDay{Date: fallback}
	}
	return PeakDay{Date: d, Conversations: peakCount}
}
