package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeWorkPattern_Balanced(t *testing.T) {
	// 60/40 sits exactly on the margin and stays balanced.
	pattern := ComputeWorkPattern(map[string]int{"Read": 60, "Edit": 40})
	assert.Equal(t, 60, pattern.ExplorationRatio)
	assert.Equal(t, 40, pattern.ModificationRatio)
	assert.Equal(t, StyleBalanced, pattern.WorkStyle)
}

func TestComputeWorkPattern_ExplorerEdge(t *testing.T) {
	// 61/39 crosses the margin.
	pattern := ComputeWorkPattern(map[string]int{"Read": 61, "Edit": 39})
	assert.Equal(t, 61, pattern.ExplorationRatio)
	assert.Equal(t, StyleExplorer, pattern.WorkStyle)
}

func TestComputeWorkPattern_Modifier(t *testing.T) {
	pattern := ComputeWorkPattern(map[string]int{"Read": 1, "Edit": 7, "Write": 2})
	assert.Equal(t, 10, pattern.ExplorationRatio)
	assert.Equal(t, 90, pattern.ModificationRatio)
	assert.Equal(t, StyleModifier, pattern.WorkStyle)
}

func TestComputeWorkPattern_CategorySums(t *testing.T) {
	tools := map[string]int{
		"Read": 3, "Grep": 2, "Glob": 1, // exploration: 6
		"Edit": 4, "Write": 2, // modification: 6
		"Task": 5,  // automation, outside the ratio
		"Bash": 99, // uncategorized, ignored
	}
	pattern := ComputeWorkPattern(tools)
	assert.Equal(t, 6, pattern.ExplorationTools)
	assert.Equal(t, 6, pattern.ModificationTools)
	assert.Equal(t, 5, pattern.AutomationUsage)
	assert.Equal(t, 50, pattern.ExplorationRatio)
	assert.Equal(t, 50, pattern.ModificationRatio)
	assert.Equal(t, StyleBalanced, pattern.WorkStyle)
}

func TestComputeWorkPattern_RatiosSumTo100(t *testing.T) {
	// Complementary rounding: 1/3 exploration rounds to 33, and the
	// modification side takes the remainder.
	pattern := ComputeWorkPattern(map[string]int{"Read": 1, "Edit": 2})
	assert.Equal(t, 33, pattern.ExplorationRatio)
	assert.Equal(t, 67, pattern.ModificationRatio)
	assert.Equal(t, 100, pattern.ExplorationRatio+pattern.ModificationRatio)
}

func TestComputeWorkPattern_NoCountedTools(t *testing.T) {
	pattern := ComputeWorkPattern(map[string]int{"Bash": 10})
	assert.Zero(t, pattern.ExplorationRatio)
	assert.Zero(t, pattern.ModificationRatio)
	assert.Equal(t, StyleBalanced, pattern.WorkStyle)
}
