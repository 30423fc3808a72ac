package stats

import (
	"math"
	"time"
)

// Thresholds tune the session-gap analysis. Zero values fall back to the
// defaults used by DefaultThresholds.
type Thresholds struct {
	// SessionGap is the largest pause between events that still counts
	// as the same working session.
	SessionGap time.Duration

	// MarathonLength is the minimum session span that counts as a
	// marathon session.
	MarathonLength time.Duration
}

// DefaultThresholds returns the standard session-gap tuning: events
// within 30 minutes of each other share a session, and a session spanning
// two hours or more is a marathon.
func DefaultThresholds() Thresholds {
	return Thresholds{
		SessionGap:     30 * time.Minute,
		MarathonLength: 2 * time.Hour,
	}
}

func (t Thresholds) withDefaults() Thresholds {
	def := DefaultThresholds()
	if t.SessionGap <= 0 {
		t.SessionGap = def.SessionGap
	}
	if t.MarathonLength <= 0 {
		t.MarathonLength = def.MarathonLength
	}
	return t
}

// ComputeProductivity derives the productivity indicators from the
// aggregates. All ratios guard division by zero.
func ComputeProductivity(agg Aggregates, thresholds Thresholds) ProductivityStats {
	dates := agg.ActiveDates()
	breakDays, comeback := LongestBreak(dates)
	month, monthCount := MostActiveMonth(agg.Monthly)

	return ProductivityStats{
		MessagesPerConversation: round1(ratio(agg.TotalMessages, agg.TotalConversations)),
		MostActiveMonth:         month,
		MostActiveMonthCount:    monthCount,
		MarathonSessions:        MarathonSessions(agg.Instants, thresholds),
		LongestBreakDays:        breakDays,
		ComebackStreak:          comeback,
		AvgPerActiveDay:         round1(ratio(agg.TotalConversations, len(dates))),
	}
}

// MarathonSessions groups the sorted event instants into sessions, split
// wherever the pause between consecutive events exceeds the session gap,
// and counts sessions whose first-to-last span reaches the marathon
// length.
func MarathonSessions(instants []time.Time, thresholds Thresholds) int {
	if len(instants) == 0 {
		return 0
	}
	th := thresholds.withDefaults()

	marathons := 0
	sessionStart := instants[0]
	prev := instants[0]
	for _, t := range instants[1:] {
		if t.Sub(prev) > th.SessionGap {
			if prev.Sub(sessionStart) >= th.MarathonLength {
				marathons++
			}
			sessionStart = t
		}
		prev = t
	}
	if prev.Sub(sessionStart) >= th.MarathonLength {
		marathons++
	}
	return marathons
}

func ratio(num, den int) float64 {
	if den == 0 {
		return 0
	}
	return float64(num) / float64(den)
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
