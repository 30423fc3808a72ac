// Package ingest reads Claude Code activity-log exports and extracts
// normalized activity events from them.
package ingest

import "time"

// File is one user-supplied log file: a name, an optional relative path,
// and its full text content.
type File struct {
	Name    string
	Path    string
	Content string
}

// Event is one normalized unit of recorded usage, produced by extraction
// and consumed by aggregation. Every Event has a valid timestamp; records
// whose timestamps cannot be parsed are discarded during extraction.
type Event struct {
	// Timestamp is the instant the activity occurred.
	Timestamp time.Time

	// Project is the normalized short project name, never empty
	// ("unknown" when no name could be derived).
	Project string

	// MessageCount is the number of messages attributed to this event:
	// 1 for history lines, the user/assistant turn count for exports.
	MessageCount int

	// Tools is the deduplicated, case-normalized set of tool names
	// mentioned in this event. May be empty.
	Tools []string

	// Hour is the local hour of day, 0-23.
	Hour int

	// DayOfWeek is the local weekday, 0 (Sunday) through 6 (Saturday).
	DayOfWeek int

	// Model is the canonical model name ("opus", "sonnet", "haiku"),
	// or empty when no model could be detected.
	Model string

	// Tokens is the estimated token count for this event's text.
	Tokens int
}

// ProgressFunc receives free-text status updates as files are read and
// parsed. It exists purely for UI feedback; the pipeline never depends
// on it and a nil ProgressFunc is always safe.
type ProgressFunc func(message string)

func (p ProgressFunc) emit(message string) {
	if p != nil {
		p(message)
	}
}

// HistoryRecord is a single line of a history.jsonl export.
type HistoryRecord struct {
	Display        string         `json:"display"`
	Timestamp      any            `json:"timestamp"`
	Project        string         `json:"project"`
	PastedContents map[string]any `json:"pastedContents"`
	SessionID      string         `json:"sessionId"`
}
