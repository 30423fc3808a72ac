package output

import (
	"fmt"
	"strings"

	"github.com/blackwell-systems/claudewrapped/internal/stats"
)

// chartWidth is the width of the horizontal bars in the monthly and
// hourly charts.
const chartWidth = 24

// RenderReport returns the full terminal rendering of a year report.
func RenderReport(r *stats.Report) string {
	var sb strings.Builder

	sb.WriteString(renderHeadline(r))
	sb.WriteString(renderMonthly(r))
	sb.WriteString(renderHeatmap(r))
	sb.WriteString(renderTools(r))
	sb.WriteString(renderProjects(r))
	sb.WriteString(renderModels(r))
	sb.WriteString(renderTimeAnalysis(r))
	sb.WriteString(renderFunStats(r))
	sb.WriteString(renderProductivity(r))
	sb.WriteString(renderWorkPattern(r))
	sb.WriteString("\n")

	return sb.String()
}

func renderHeadline(r *stats.Report) string {
	var sb strings.Builder

	title := fmt.Sprintf("Claude Code Wrapped · %d", r.Year)
	sb.WriteString(Section(title))
	sb.WriteString("\n\n")

	row := func(label string, value string) {
		sb.WriteString(fmt.Sprintf(" %s%s\n",
			StyleLabel.Render(label),
			StyleAccent.Render(value)))
	}

	row("Conversations", fmt.Sprintf("%d", r.TotalConversations))
	row("Messages", fmt.Sprintf("%d", r.TotalMessages))
	row("Active days", fmt.Sprintf("%d", r.ActiveDays))
	row("Tokens (est.)", humanCount(r.TotalTokens))
	row("Projects", fmt.Sprintf("%d", r.ProjectCount))
	row("Longest streak", fmt.Sprintf("%d days", r.LongestStreak))
	row("Current streak", fmt.Sprintf("%d days", r.CurrentStreak))
	row("Avg per active day", fmt.Sprintf("%.1f", r.Productivity.AvgPerActiveDay))

	if !r.FirstConversation.IsZero() {
		sb.WriteString(fmt.Sprintf(" %s%s\n",
			StyleLabel.Render("First conversation"),
			StyleMuted.Render(r.FirstConversation.Format("Jan 2, 2006"))))
	}
	if r.PeakDay.Conversations > 0 {
		sb.WriteString(fmt.Sprintf(" %s%s\n",
			StyleLabel.Render("Peak day"),
			fmt.Sprintf("%s (%s)",
				StyleBold.Render(r.PeakDay.Date.Format("Jan 2, 2006")),
				StyleMuted.Render(fmt.Sprintf("%d conversations", r.PeakDay.Conversations)))))
	}

	return sb.String()
}

func renderMonthly(r *stats.Report) string {
	var sb strings.Builder

	sb.WriteString(Section("Monthly Activity"))
	sb.WriteString("\n\n")

	max := 0
	for _, m := range r.MonthlyActivity {
		if m.Conversations > max {
			max = m.Conversations
		}
	}

	for _, m := range r.MonthlyActivity {
		sb.WriteString(fmt.Sprintf(" %s %s %s\n",
			StyleMuted.Render(pad(m.Month, 3)),
			Bar(m.Conversations, max, chartWidth),
			StyleBold.Render(fmt.Sprintf("%d", m.Conversations))))
	}

	return sb.String()
}

// heatGlyphs map activity intensity to block characters, lowest first.
var heatGlyphs = []string{"·", "░", "▒", "▓", "█"}

// renderHeatmap condenses the daily heatmap into one row per month, one
// cell per day.
func renderHeatmap(r *stats.Report) string {
	if len(r.Heatmap) == 0 {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(Section("Daily Activity"))
	sb.WriteString("\n\n")

	max := 0
	for _, d := range r.Heatmap {
		if d.Count > max {
			max = d.Count
		}
	}

	// Dates arrive in calendar order, so month rows can be built by a
	// single pass over the YYYY-MM-DD strings.
	rows := make([]strings.Builder, 12)
	for _, d := range r.Heatmap {
		if len(d.Date) < 7 {
			continue
		}
		month := int(d.Date[5]-'0')*10 + int(d.Date[6]-'0')
		if month < 1 || month > 12 {
			continue
		}
		rows[month-1].WriteString(heatGlyph(d.Count, max))
	}

	for i := range rows {
		label := ""
		if i < len(r.MonthlyActivity) {
			label = r.MonthlyActivity[i].Month
		}
		sb.WriteString(fmt.Sprintf(" %s %s\n",
			StyleMuted.Render(pad(label, 3)),
			rows[i].String()))
	}

	return sb.String()
}

// heatGlyph picks an intensity glyph for a day's count scaled against the
// busiest day.
func heatGlyph(count, max int) string {
	if count == 0 || max == 0 {
		return StyleMuted.Render(heatGlyphs[0])
	}
	level := 1 + count*(len(heatGlyphs)-2)/max
	if level > len(heatGlyphs)-1 {
		level = len(heatGlyphs) - 1
	}
	return StyleSuccess.Render(heatGlyphs[level])
}

func renderTools(r *stats.Report) string {
	var sb strings.Builder

	sb.WriteString(Section("Top Tools"))
	sb.WriteString("\n\n")

	tbl := NewTable("", "Tool", "Uses")
	for _, t := range r.TopTools {
		tbl.AddRow(t.Icon, t.Name, fmt.Sprintf("%d", t.Count))
	}
	sb.WriteString(indentBlock(tbl.Render()))

	return sb.String()
}

func renderProjects(r *stats.Report) string {
	var sb strings.Builder

	sb.WriteString(Section("Top Projects"))
	sb.WriteString("\n\n")

	tbl := NewTable("Project", "Conversations", "Share")
	for _, p := range r.TopProjects {
		tbl.AddRow(p.Name, fmt.Sprintf("%d", p.Conversations), fmt.Sprintf("%d%%", p.Percentage))
	}
	sb.WriteString(indentBlock(tbl.Render()))

	return sb.String()
}

func renderModels(r *stats.Report) string {
	var sb strings.Builder

	sb.WriteString(Section("Model Usage"))
	sb.WriteString("\n\n")

	tbl := NewTable("Model", "Conversations", "Share")
	for _, m := range r.ModelUsage {
		tbl.AddRow(m.Name, fmt.Sprintf("%d", m.Count), fmt.Sprintf("%d%%", m.Percentage))
	}
	sb.WriteString(indentBlock(tbl.Render()))

	return sb.String()
}

func renderTimeAnalysis(r *stats.Report) string {
	var sb strings.Builder

	sb.WriteString(Section("When You Work"))
	sb.WriteString("\n\n")

	sb.WriteString(fmt.Sprintf(" %s%s\n",
		StyleLabel.Render("Peak hour"),
		StyleBold.Render(stats.FormatHour(r.TimeAnalysis.PeakHour))))
	sb.WriteString(fmt.Sprintf(" %s%s\n",
		StyleLabel.Render("Busiest day"),
		StyleBold.Render(stats.DayName(r.TimeAnalysis.PeakDay))))
	sb.WriteString("\n")

	// Hour-of-day chart, skipping silent hours to keep it compact.
	max := 0
	for _, c := range r.TimeAnalysis.HourlyActivity {
		if c.Count > max {
			max = c.Count
		}
	}
	for hour, c := range r.TimeAnalysis.HourlyActivity {
		if c.Count == 0 {
			continue
		}
		sb.WriteString(fmt.Sprintf(" %s %s %s\n",
			StyleMuted.Render(pad(stats.FormatHour(hour), 8)),
			Bar(c.Count, max, chartWidth),
			StyleBold.Render(fmt.Sprintf("%d", c.Count))))
	}

	return sb.String()
}

func renderFunStats(r *stats.Report) string {
	var sb strings.Builder

	sb.WriteString(Section("Fun Stats"))
	sb.WriteString("\n\n")

	row := func(label, value string) {
		sb.WriteString(fmt.Sprintf(" %s%s\n", StyleLabel.Render(label), value))
	}

	row("Late night sessions", StyleBold.Render(fmt.Sprintf("%d", r.FunStats.LateNightCount)))
	row("Early bird sessions", StyleBold.Render(fmt.Sprintf("%d", r.FunStats.EarlyBirdCount)))
	row("Weekend days", StyleBold.Render(fmt.Sprintf("%d", r.FunStats.WeekendDays)))
	row("Favorite time", StyleBold.Render(r.FunStats.FavoriteTime))
	row("Most productive day", StyleBold.Render(r.FunStats.MostProductiveDay))

	return sb.String()
}

func renderProductivity(r *stats.Report) string {
	var sb strings.Builder

	sb.WriteString(Section("Productivity"))
	sb.WriteString("\n\n")

	row := func(label, value string) {
		sb.WriteString(fmt.Sprintf(" %s%s\n", StyleLabel.Render(label), value))
	}

	row("Messages per conversation", StyleBold.Render(fmt.Sprintf("%.1f", r.Productivity.MessagesPerConversation)))
	row("Marathon sessions", StyleBold.Render(fmt.Sprintf("%d", r.Productivity.MarathonSessions)))
	row("Most active month", StyleBold.Render(r.Productivity.MostActiveMonth))
	row("Longest break", StyleBold.Render(fmt.Sprintf("%d days", r.Productivity.LongestBreakDays)))
	if r.Productivity.ComebackStreak > 0 {
		row("Comeback streak", StyleSuccess.Render(fmt.Sprintf("%d days", r.Productivity.ComebackStreak)))
	}

	return sb.String()
}

func renderWorkPattern(r *stats.Report) string {
	var sb strings.Builder

	sb.WriteString(Section("Work Style"))
	sb.WriteString("\n\n")

	wp := r.WorkPattern
	sb.WriteString(fmt.Sprintf(" %s%s\n",
		StyleLabel.Render("Style"),
		StyleAccent.Render(string(wp.WorkStyle))))
	sb.WriteString(fmt.Sprintf(" %s%s\n",
		StyleLabel.Render("Exploring"),
		fmt.Sprintf("%s %s", Bar(wp.ExplorationRatio, 100, chartWidth), StyleBold.Render(fmt.Sprintf("%d%%", wp.ExplorationRatio)))))
	sb.WriteString(fmt.Sprintf(" %s%s\n",
		StyleLabel.Render("Modifying"),
		fmt.Sprintf("%s %s", Bar(wp.ModificationRatio, 100, chartWidth), StyleBold.Render(fmt.Sprintf("%d%%", wp.ModificationRatio)))))
	sb.WriteString(fmt.Sprintf(" %s%s\n",
		StyleLabel.Render("Automation runs"),
		StyleBold.Render(fmt.Sprintf("%d", wp.AutomationUsage))))

	return sb.String()
}

// humanCount renders a large count with a k/M suffix.
func humanCount(n int) string {
	switch {
	case n >= 1_000_000:
		return fmt.Sprintf("%.1fM", float64(n)/1_000_000)
	case n >= 1_000:
		return fmt.Sprintf("%.1fk", float64(n)/1_000)
	default:
		return fmt.Sprintf("%d", n)
	}
}

// indentBlock prefixes every non-empty line with a single space so
// tables line up with the section rows.
func indentBlock(block string) string {
	lines := strings.Split(strings.TrimRight(block, "\n"), "\n")
	for i, line := range lines {
		lines[i] = " " + line
	}
	return strings.Join(lines, "\n") + "\n"
}
