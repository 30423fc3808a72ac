package stats

import (
	"math"
	"sort"
	"strings"
)

// toolIcons maps tool names to their display glyphs. Unrecognized names
// get genericToolIcon.
var toolIcons = map[string]string{
	"Edit":         "✏️",
	"Read":         "📖",
	"Bash":         "💻",
	"Write":        "📝",
	"Grep":         "🔍",
	"Glob":         "📁",
	"Task":         "🤖",
	"WebFetch":     "🌐",
	"WebSearch":    "🔎",
	"TodoWrite":    "✅",
	"LSP":          "🔧",
	"NotebookEdit": "📓",
}

const genericToolIcon = "🔧"

// estimatedToolShares is the heuristic fallback distribution applied to
// the total message count when extraction found no tool mentions at all.
// The shares reflect typical usage patterns, not measured data.
var estimatedToolShares = []struct {
	Name  string
	Share float64
}{
	{"Edit", 0.25},
	{"Read", 0.20},
	{"Bash", 0.15},
	{"Write", 0.12},
	{"Grep", 0.10},
	{"Glob", 0.08},
	{"Task", 0.05},
	{"WebFetch", 0.03},
}

// estimatedModelShares is the heuristic fallback split applied to the
// total conversation count when no model was ever detected.
var estimatedModelShares = []struct {
	Name       string
	Share      float64
	Percentage int
}{
	{"sonnet", 0.65, 65},
	{"opus", 0.25, 25},
	{"haiku", 0.10, 10},
}

// modelColors are the chart colors for each canonical model.
var modelColors = map[string]string{
	"opus":   "#A855F7",
	"sonnet": "#3B82F6",
	"haiku":  "#22C55E",
}

const defaultModelColor = "#6B7280"

// TopTools ranks tools by count descending and keeps the top 10. When no
// tool was ever mentioned, it substitutes the estimated distribution
// scaled from totalMessages, dropping entries that round to zero.
func TopTools(tools map[string]int, totalMessages int) []ToolUsage {
	if len(tools) == 0 {
		return estimatedTools(totalMessages)
	}

	ranked := make([]ToolUsage, 0, len(tools))
	for name, count := range tools {
		ranked = append(ranked, ToolUsage{Name: name, Count: count, Icon: toolIcon(name)})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Count != ranked[j].Count {
			return ranked[i].Count > ranked[j].Count
		}
		return ranked[i].Name < ranked[j].Name
	})
	if len(ranked) > 10 {
		ranked = ranked[:10]
	}
	return ranked
}

func estimatedTools(totalMessages int) []ToolUsage {
	var out []ToolUsage
	for _, e := range estimatedToolShares {
		count := int(math.Floor(float64(totalMessages) * e.Share))
		if count > 0 {
			out = append(out, ToolUsage{Name: e.Name, Count: count, Icon: toolIcon(e.Name)})
		}
	}
	return out
}

func toolIcon(name string) string {
	if icon, ok := toolIcons[name]; ok {
		return icon
	}
	return genericToolIcon
}

// TopProjects ranks projects by conversation count descending and keeps
// the top 5, each annotated with its share of totalConversations rounded
// to the nearest integer.
func TopProjects(projects map[string]int, totalConversations int) []ProjectUsage {
	ranked := make([]ProjectUsage, 0, len(projects))
	for name, count := range projects {
		ranked = append(ranked, ProjectUsage{
			Name:          name,
			Conversations: count,
			Percentage:    percentage(count, totalConversations),
		})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Conversations != ranked[j].Conversations {
			return ranked[i].Conversations > ranked[j].Conversations
		}
		return ranked[i].Name < ranked[j].Name
	})
	if len(ranked) > 5 {
		ranked = ranked[:5]
	}
	return ranked
}

// ModelBreakdown ranks detected models by count descending (all kept).
// When no model was ever detected it substitutes the fixed estimated
// split applied to totalConversations.
func ModelBreakdown(models map[string]int, totalConversations int) []ModelUsage {
	if len(models) == 0 {
		return estimatedModels(totalConversations)
	}

	total := 0
	for _, count := range models {
		total += count
	}

	ranked := make([]ModelUsage, 0, len(models))
	for name, count := range models {
		ranked = append(ranked, ModelUsage{
			Name:       titleCase(name),
			Count:      count,
			Percentage: percentage(count, total),
			Color:      modelColor(name),
		})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Count != ranked[j].Count {
			return ranked[i].Count > ranked[j].Count
		}
		return ranked[i].Name < ranked[j].Name
	})
	return ranked
}

func estimatedModels(totalConversations int) []ModelUsage {
	out := make([]ModelUsage, 0, len(estimatedModelShares))
	for _, e := range estimatedModelShares {
		out = append(out, ModelUsage{
			Name:       titleCase(e.Name),
			Count:      int(math.Floor(float64(totalConversations) * e.Share)),
			Percentage: e.Percentage,
			Color:      modelColor(e.Name),
		})
	}
	return out
}

func modelColor(name string) string {
	if c, ok := modelColors[name]; ok {
		return c
	}
	return defaultModelColor
}

// percentage returns round(100*count/total), guarding a zero total.
func percentage(count, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(count) / float64(total) * 100))
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
