package stats

import (
	"fmt"

	"github.com/blackwell-systems/claudewrapped/internal/ingest"
)

// dayNames are weekday names indexed by time.Weekday order (Sunday = 0).
var dayNames = [7]string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}

// Fallback buckets reported when a distribution is empty: mid-afternoon
// and Tuesday, matching the presentation defaults.
const (
	defaultFavoriteHour  = 14
	defaultProductiveDay = 2
)

// ComputeFunStats derives the playful headline numbers from the event
// stream and the hour/day aggregates.
func ComputeFunStats(events []ingest.Event, hours, days map[int]int) FunStats {
	lateNight := 0
	earlyBird := 0
	weekendDays := make(map[string]bool)

	for _, ev := range events {
		if ev.Hour >= 0 && ev.Hour < 4 {
			lateNight++
		}
		if ev.Hour >= 5 && ev.Hour < 7 {
			earlyBird++
		}
		if ev.DayOfWeek == 0 || ev.DayOfWeek == 6 {
			weekendDays[ev.Timestamp.Format(dayLayout)] = true
		}
	}

	return FunStats{
		LateNightCount:    lateNight,
		WeekendDays:       len(weekendDays),
		EarlyBirdCount:    earlyBird,
		FavoriteTime:      FormatHour(argmaxBucket(hours, defaultFavoriteHour)),
		MostProductiveDay: dayNames[argmaxBucket(days, defaultProductiveDay)],
	}
}

// ComputeTimeAnalysis builds the complete, zero-filled hour and
// weekday-by-hour distributions plus their peaks.
func ComputeTimeAnalysis(hours, days map[int]int, dayHour map[DayHourKey]int) TimeAnalysis {
	hourly := make([]HourlyActivity, 24)
	for h := 0; h < 24; h++ {
		hourly[h] = HourlyActivity{Hour: h, Count: hours[h]}
	}

	matrix := make([]DayHourActivity, 0, 7*24)
	for d := 0; d < 7; d++ {
		for h := 0; h < 24; h++ {
			matrix = append(matrix, DayHourActivity{
				Day:   d,
				Hour:  h,
				Count: dayHour[DayHourKey{Day: d, Hour: h}],
			})
		}
	}

	return TimeAnalysis{
		HourlyActivity: hourly,
		DayHourMatrix:  matrix,
		PeakHour:       argmaxBucket(hours, defaultFavoriteHour),
		PeakDay:        argmaxBucket(days, defaultProductiveDay),
	}
}

// FormatHour renders an hour of day as a human label.
func FormatHour(h int) string {
	switch {
	case h == 0:
		return "Midnight"
	case h < 12:
		return fmt.Sprintf("%d AM", h)
	case h == 12:
		return "Noon"
	default:
		return fmt.Sprintf("%d PM", h-12)
	}
}

// DayName returns the weekday name for a 0-6 index, Sunday first.
func DayName(d int) string {
	if d < 0 || d > 6 {
		return ""
	}
	return dayNames[d]
}

// argmaxBucket returns the bucket with the highest count, or fallback
// when no bucket beats zero. Ties go to the lower bucket for stability.
func argmaxBucket(counts map[int]int, fallback int) int {
	best := fallback
	bestCount := 0
	for bucket := 0; bucket < 24; bucket++ {
		if count, ok := counts[bucket]; ok && count > bestCount {
			bestCount = count
			best = bucket
		}
	}
	return best
}
