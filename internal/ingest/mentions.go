package ingest

import (
	"regexp"
	"strings"
)

// toolPattern matches whole-word mentions of the known Claude Code tools,
// case-insensitively.
var toolPattern = regexp.MustCompile(`(?i)\b(Edit|Read|Bash|Write|Grep|Glob|Task|WebFetch|WebSearch|TodoWrite|LSP|NotebookEdit)\b`)

// modelPattern matches known model-name variants, case-insensitively.
var modelPattern = regexp.MustCompile(`(?i)\b(opus|sonnet|haiku|claude-3|claude-opus|claude-sonnet|claude-haiku)\b`)

// DetectTools scans text for tool mentions and returns the deduplicated,
// case-normalized names in first-mention order.
func DetectTools(text string) []string {
	matches := toolPattern.FindAllString(text, -1)
	if len(matches) == 0 {
		return nil
	}

	seen := make(map[string]bool, len(matches))
	var tools []string
	for _, m := range matches {
		name := NormalizeToolName(m)
		if !seen[name] {
			seen[name] = true
			tools = append(tools, name)
		}
	}
	return tools
}

// NormalizeToolName uppercases the first letter and lowercases the rest,
// so "EDIT", "edit", and "Edit" all count as the same tool.
func NormalizeToolName(name string) string {
	if name == "" {
		return name
	}
	return strings.ToUpper(name[:1]) + strings.ToLower(name[1:])
}

// DetectModel scans text for a model mention and maps the first match to
// one of the canonical names "opus", "sonnet", or "haiku". It returns the
// empty string when no model can be determined.
func DetectModel(text string) string {
	m := modelPattern.FindString(text)
	if m == "" {
		return ""
	}
	m = strings.ToLower(m)
	switch {
	case strings.Contains(m, "opus"):
		return "opus"
	case strings.Contains(m, "sonnet"):
		return "sonnet"
	case strings.Contains(m, "haiku"):
		return "haiku"
	}
	// Bare "claude-3" carries no tier information.
	return ""
}

// EstimateTokens approximates the token count of text as length/4.
// This is a rough heuristic, not an authoritative count.
func EstimateTokens(text string) int {
	return len(text) / 4
}
