// Package stats aggregates activity events and derives the year-in-review
// report metrics.
package stats

import "time"

// Report is the finished statistics model for one target year. It is
// constructed once per run and never mutated afterwards; presentation
// layers only read from it.
type Report struct {
	// Year is the calendar year the report covers.
	Year int `json:"year"`

	// Core scalars.
	TotalConversations int `json:"total_conversations"`
	TotalMessages      int `json:"total_messages"`
	TotalTokens        int `json:"total_tokens"`
	ActiveDays         int `json:"active_days"`
	LongestStreak      int `json:"longest_streak"`
	CurrentStreak      int `json:"current_streak"`
	ProjectCount       int `json:"project_count"`

	// Time-based collections; always complete and zero-filled.
	MonthlyActivity []MonthlyActivity `json:"monthly_activity"`
	Heatmap         []HeatmapDay      `json:"heatmap"`

	// Rankings.
	TopTools    []ToolUsage    `json:"top_tools"`
	TopProjects []ProjectUsage `json:"top_projects"`
	ModelUsage  []ModelUsage   `json:"model_usage"`

	// Derived records.
	FunStats     FunStats          `json:"fun_stats"`
	TimeAnalysis TimeAnalysis      `json:"time_analysis"`
	Productivity ProductivityStats `json:"productivity"`
	WorkPattern  CodeWorkPattern   `json:"work_pattern"`

	// Milestones.
	FirstConversation time.Time `json:"first_conversation"`
	PeakDay           PeakDay   `json:"peak_day"`
}

// MonthlyActivity is one month's rollup. All 12 months are always
// present, January first.
type MonthlyActivity struct {
	Month         string `json:"month"`
	Conversations int    `json:"conversations"`
	Messages      int    `json:"messages"`
}

// HeatmapDay is one calendar day's activity count.
type HeatmapDay struct {
	Date  string `json:"date"` // YYYY-MM-DD
	Count int    `json:"count"`
}

// ToolUsage is one entry in the ranked tool list.
type ToolUsage struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
	Icon  string `json:"icon"`
}

// ProjectUsage is one entry in the ranked project list.
type ProjectUsage struct {
	Name          string `json:"name"`
	Conversations int    `json:"conversations"`
	Percentage    int    `json:"percentage"`
}

// ModelUsage is one entry in the model breakdown.
type ModelUsage struct {
	Name       string `json:"name"`
	Count      int    `json:"count"`
	Percentage int    `json:"percentage"`
	Color      string `json:"color"`
}

// FunStats holds the playful headline numbers.
type FunStats struct {
	// LateNightCount is the number of events between midnight and 4am.
	LateNightCount int `json:"late_night_count"`

	// WeekendDays is the number of distinct Saturdays/Sundays with activity.
	WeekendDays int `json:"weekend_days"`

	// EarlyBirdCount is the number of events between 5am and 7am.
	EarlyBirdCount int `json:"early_bird_count"`

	// FavoriteTime is the busiest hour formatted as a label ("2 PM").
	FavoriteTime string `json:"favorite_time"`

	// MostProductiveDay is the busiest weekday name.
	MostProductiveDay string `json:"most_productive_day"`
}

// HourlyActivity is one hour bucket; all 24 are always present.
type HourlyActivity struct {
	Hour  int `json:"hour"`
	Count int `json:"count"`
}

// DayHourActivity is one (weekday, hour) matrix cell; all 168 are always
// present, ordered day-major.
type DayHourActivity struct {
	Day   int `json:"day"`
	Hour  int `json:"hour"`
	Count int `json:"count"`
}

// TimeAnalysis holds the hour and weekday distributions.
type TimeAnalysis struct {
	HourlyActivity []HourlyActivity  `json:"hourly_activity"`
	DayHourMatrix  []DayHourActivity `json:"day_hour_matrix"`
	PeakHour       int               `json:"peak_hour"`
	PeakDay        int               `json:"peak_day"`
}

// ProductivityStats holds productivity indicators derived from gap and
// session analysis.
type ProductivityStats struct {
	MessagesPerConversation float64 `json:"messages_per_conversation"`
	MostActiveMonth         string  `json:"most_active_month"`
	MostActiveMonthCount    int     `json:"most_active_month_count"`
	MarathonSessions        int     `json:"marathon_sessions"`
	LongestBreakDays        int     `json:"longest_break_days"`
	ComebackStreak          int     `json:"comeback_streak"`
	AvgPerActiveDay         float64 `json:"avg_per_active_day"`
}

// WorkStyle classifies whether tool usage skews toward reading code or
// changing it.
type WorkStyle string

// Work style classifications.
const (
	StyleExplorer WorkStyle = "explorer"
	StyleModifier WorkStyle = "modifier"
	StyleBalanced WorkStyle = "balanced"
)

// CodeWorkPattern captures the exploration vs. modification split.
type CodeWorkPattern struct {
	// ExplorationRatio and ModificationRatio are percentages summing
	// to 100 (complementary rounding) when any counted tool was used.
	ExplorationRatio  int `json:"exploration_ratio"`
	ModificationRatio int `json:"modification_ratio"`

	// ExplorationTools counts Read/Grep/Glob uses; ModificationTools
	// counts Edit/Write uses; AutomationUsage counts Task uses and is
	// not part of the ratio.
	ExplorationTools  int `json:"exploration_tools"`
	ModificationTools int `json:"modification_tools"`
	AutomationUsage   int `json:"automation_usage"`

	WorkStyle WorkStyle `json:"work_style"`
}

// PeakDay is the single busiest calendar day.
type PeakDay struct {
	Date          time.Time `json:"date"`
	Conversations int       `json:"conversations"`
}
