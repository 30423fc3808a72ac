package stats

import "math"

// Tool categories for the work-pattern split. Read-oriented tools count
// as exploration, edit-oriented as modification; Task is delegated
// automation and stays outside the ratio.
var (
	explorationToolNames  = []string{"Read", "Grep", "Glob"}
	modificationToolNames = []string{"Edit", "Write"}
	automationToolName    = "Task"
)

// workStyleMargin is the lead (in percentage points) one ratio needs over
// the other before the style stops being "balanced".
const workStyleMargin = 20

// ComputeWorkPattern derives the exploration vs. modification split from
// the tool-usage counts. The two ratios use complementary rounding so
// they always sum to 100 when any counted tool was used.
func ComputeWorkPattern(tools map[string]int) CodeWorkPattern {
	exploration := 0
	for _, name := range explorationToolNames {
		exploration += tools[name]
	}
	modification := 0
	for _, name := range modificationToolNames {
		modification += tools[name]
	}

	pattern := CodeWorkPattern{
		ExplorationTools:  exploration,
		ModificationTools: modification,
		AutomationUsage:   tools[automationToolName],
		WorkStyle:         StyleBalanced,
	}

	total := exploration + modification
	if total == 0 {
		return pattern
	}

	pattern.ExplorationRatio = int(math.Round(float64(exploration) / float64(total) * 100))
	pattern.ModificationRatio = 100 - pattern.ExplorationRatio

	switch {
	case pattern.ExplorationRatio > pattern.ModificationRatio+workStyleMargin:
		pattern.WorkStyle = StyleExplorer
	case pattern.ModificationRatio > pattern.ExplorationRatio+workStyleMargin:
		pattern.WorkStyle = StyleModifier
	}
	return pattern
}
