package stats

import (
	"sort"
	"time"

	"github.com/blackwell-systems/claudewrapped/internal/ingest"
)

// DayHourKey addresses one cell of the weekday-by-hour matrix.
type DayHourKey struct {
	Day  int
	Hour int
}

// MonthTotals accumulates one calendar month's counts.
type MonthTotals struct {
	Conversations int
	Messages      int
}

// Aggregates is the folded result of one pass over the event stream.
// It is produced once by Aggregate and treated as read-only afterwards;
// every run starts from a fresh value, so no state crosses runs.
type Aggregates struct {
	// Daily maps YYYY-MM-DD to event count.
	Daily map[string]int

	// Tools, Projects, and Models map names to event counts. An event
	// increments each distinct tool it mentions exactly once.
	Tools    map[string]int
	Projects map[string]int
	Models   map[string]int

	// Hours and Days bucket events by local hour (0-23) and weekday
	// (0=Sunday). DayHour is the combined matrix.
	Hours   map[int]int
	Days    map[int]int
	DayHour map[DayHourKey]int

	// Monthly holds per-month conversation and message totals,
	// January at index 0.
	Monthly [12]MonthTotals

	// Running totals.
	TotalConversations int
	TotalMessages      int
	TotalTokens        int

	// First is the earliest event timestamp observed.
	First time.Time

	// Instants holds every event timestamp in ascending order, for
	// session-gap analysis downstream.
	Instants []time.Time
}

// Aggregate folds the complete event stream into category and time-bucket
// counters. It performs no validation; events are already well-formed by
// the time they reach aggregation.
func Aggregate(events []ingest.Event) Aggregates {
	agg := Aggregates{
		Daily:    make(map[string]int),
		Tools:    make(map[string]int),
		Projects: make(map[string]int),
		Models:   make(map[string]int),
		Hours:    make(map[int]int),
		Days:     make(map[int]int),
		DayHour:  make(map[DayHourKey]int),
	}

	for _, ev := range events {
		date := ev.Timestamp.Format("2006-01-02")
		agg.Daily[date]++
		agg.Projects[ev.Project]++
		for _, tool := range ev.Tools {
			agg.Tools[tool]++
		}
		if ev.Model != "" {
			agg.Models[ev.Model]++
		}
		agg.Hours[ev.Hour]++
		agg.Days[ev.DayOfWeek]++
		agg.DayHour[DayHourKey{Day: ev.DayOfWeek, Hour: ev.Hour}]++

		month := int(ev.Timestamp.Month()) - 1
		agg.Monthly[month].Conversations++
		agg.Monthly[month].Messages += ev.MessageCount

		agg.TotalConversations++
		agg.TotalMessages += ev.MessageCount
		agg.TotalTokens += ev.Tokens

		if agg.First.IsZero() || ev.Timestamp.Before(agg.First) {
			agg.First = ev.Timestamp
		}
		agg.Instants = append(agg.Instants, ev.Timestamp)
	}

	sort.Slice(agg.Instants, func(i, j int) bool {
		return agg.Instants[i].Before(agg.Instants[j])
	})

	return agg
}

// ActiveDates returns the distinct active dates in ascending order.
func (a Aggregates) ActiveDates() []string {
	dates := make([]string, 0, len(a.Daily))
	for d := range a.Daily {
		dates = append(dates, d)
	}
	sort.Strings(dates)
	return dates
}
