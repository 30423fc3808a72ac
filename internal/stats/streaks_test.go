package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLongestStreak(t *testing.T) {
	cases := []struct {
		name  string
		dates []string
		want  int
	}{
		{"empty", nil, 0},
		{"single day", []string{"2025-01-01"}, 1},
		{"unbroken run", []string{"2025-01-01", "2025-01-02", "2025-01-03"}, 3},
		{"gap resets", []string{"2025-01-01", "2025-01-02", "2025-01-04"}, 2},
		{"run after gap wins", []string{"2025-01-01", "2025-01-05", "2025-01-06", "2025-01-07"}, 3},
		{"month boundary", []string{"2025-01-31", "2025-02-01"}, 2},
		{"scattered", []string{"2025-01-01", "2025-03-01", "2025-06-01"}, 1},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, LongestStreak(c.dates))
		})
	}
}

func TestLongestStreak_ExactRunLength(t *testing.T) {
	// A single unbroken run of K consecutive dates yields exactly K.
	for k := 1; k <= 10; k++ {
		var dates []string
		start := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)
		for i := 0; i < k; i++ {
			dates = append(dates, start.AddDate(0, 0, i).Format(dayLayout))
		}
		assert.Equal(t, k, LongestStreak(dates), "run of %d days", k)
	}
}

func TestCurrentStreak(t *testing.T) {
	today := time.Date(2025, 6, 10, 15, 30, 0, 0, time.UTC)

	cases := []struct {
		name  string
		dates []string
		want  int
	}{
		{"empty", nil, 0},
		{"active today only", []string{"2025-06-10"}, 1},
		{"active yesterday only", []string{"2025-06-09"}, 1},
		{"ended two days ago", []string{"2025-06-08"}, 0},
		{"today plus run", []string{"2025-06-08", "2025-06-09", "2025-06-10"}, 3},
		{"yesterday plus run", []string{"2025-06-07", "2025-06-08", "2025-06-09"}, 3},
		{"broken run stops", []string{"2025-06-05", "2025-06-09", "2025-06-10"}, 2},
		{"old activity only", []string{"2025-01-01", "2025-01-02"}, 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, CurrentStreak(c.dates, today))
		})
	}
}

func TestLongestBreak(t *testing.T) {
	cases := []struct {
		name         string
		dates        []string
		wantBreak    int
		wantComeback int
	}{
		{"empty", nil, 0, 0},
		{"single date", []string{"2025-01-01"}, 0, 0},
		{"consecutive only", []string{"2025-01-01", "2025-01-02"}, 0, 0},
		{"simple gap", []string{"2025-01-01", "2025-01-05"}, 3, 1},
		{"comeback run", []string{"2025-01-01", "2025-01-10", "2025-01-11", "2025-01-12"}, 8, 3},
		{"largest gap wins", []string{"2025-01-01", "2025-01-03", "2025-01-20", "2025-01-21"}, 16, 2},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			breakDays, comeback := LongestBreak(c.dates)
			assert.Equal(t, c.wantBreak, breakDays, "break days")
			assert.Equal(t, c.wantComeback, comeback, "comeback streak")
		})
	}
}
