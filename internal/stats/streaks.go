package stats

import "time"

const dayLayout = "2006-01-02"

// LongestStreak returns the longest run of consecutive calendar dates in
// the sorted active-date list. One active date yields 1; none yields 0.
func LongestStreak(dates []string) int {
	if len(dates) == 0 {
		return 0
	}

	longest := 1
	run := 1
	for i := 1; i < len(dates); i++ {
		if dayDiff(dates[i-1], dates[i]) == 1 {
			run++
			if run > longest {
				longest = run
			}
		} else {
			run = 1
		}
	}
	return longest
}

// CurrentStreak counts back from today through the most recent active
// dates. Activity today or yesterday starts a streak; each earlier date
// may extend it by being 0 or 1 days before the running reference.
func CurrentStreak(dates []string, today time.Time) int {
	ref := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)

	streak := 0
	for i := len(dates) - 1; i >= 0; i-- {
		d, err := time.Parse(dayLayout, dates[i])
		if err != nil {
			break
		}
		diff := int(ref.Sub(d).Hours() / 24)
		if diff == streak || diff == streak+1 {
			streak++
		} else {
			break
		}
	}
	return streak
}

// LongestBreak finds the largest gap of inactive days between two active
// dates, and the length of the consecutive-day streak that starts at the
// date ending that gap (the "comeback"). Fewer than two active dates
// yield no break.
func LongestBreak(dates []string) (breakDays, comeback int) {
	gapEnd := -1
	for i := 1; i < len(dates); i++ {
		if gap := dayDiff(dates[i-1], dates[i]) - 1; gap > breakDays {
			breakDays = gap
			gapEnd = i
		}
	}
	if gapEnd < 0 {
		return 0, 0
	}

	comeback = 1
	for i := gapEnd + 1; i < len(dates); i++ {
		if dayDiff(dates[i-1], dates[i]) != 1 {
			break
		}
		comeback++
	}
	return breakDays, comeback
}

// dayDiff returns the whole-day difference between two YYYY-MM-DD dates.
// Unparseable input counts as a huge gap so it never joins a streak.
func dayDiff(a, b string) int {
	ta, errA := time.Parse(dayLayout, a)
	tb, errB := time.Parse(dayLayout, b)
	if errA != nil || errB != nil {
		return 1 << 30
	}
	return int(tb.Sub(ta).Hours() / 24)
}
