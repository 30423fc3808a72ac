package ingest

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// ExtractAll converts every file's content into activity events, in
// encounter order within and across files. Order is not chronological;
// sorting happens downstream. now is the reference time used for exports
// that carry no timestamp of their own.
func ExtractAll(files []File, now time.Time, progress ProgressFunc) []Event {
	var events []Event
	for i, f := range files {
		progress.emit(fmt.Sprintf("Parsing (%d/%d) - %s", i+1, len(files), f.Name))
		events = append(events, ExtractFile(f, now, progress)...)
	}
	return events
}

// ExtractFile converts one file's content into zero or more events.
// A file whose content matches neither recognized format contributes
// zero events and never raises an error.
func ExtractFile(f File, now time.Time, progress ProgressFunc) []Event {
	switch {
	case f.Name == "history.jsonl" || strings.HasSuffix(f.Name, ".jsonl"):
		return extractHistoryLines(f.Content, progress)
	case strings.HasSuffix(f.Name, ".json"):
		return extractConversationExport(f, now)
	}
	return nil
}

// extractHistoryLines parses line-delimited history records. Each line is
// independent: a malformed line, or one lacking a timestamp or project,
// is skipped without affecting the rest of the file.
func extractHistoryLines(content string, progress ProgressFunc) []Event {
	var events []Event

	// The content is already fully in memory, so split directly rather
	// than scanning with a line-length cap: a line of any size (large
	// pasted contents) must not cut off the lines after it.
	lines := 0
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		lines++

		var rec HistoryRecord
		if err := json.Unmarshal([]byte(line), &rec); err != nil {
			continue
		}

		ts, ok := parseRecordTimestamp(rec.Timestamp)
		if !ok || rec.Project == "" {
			continue
		}

		events = append(events, Event{
			Timestamp:    ts,
			Project:      ProjectName(rec.Project),
			MessageCount: 1,
			Tools:        DetectTools(rec.Display),
			Hour:         ts.Hour(),
			DayOfWeek:    int(ts.Weekday()),
			Model:        DetectModel(rec.Display),
			Tokens:       EstimateTokens(rec.Display),
		})
	}

	progress.emit(fmt.Sprintf("Parsed %d history entries", lines))
	return events
}

// conversationExport is the top-level shape of a structured JSON export.
// Both known turn-array keys are probed; "messages" takes priority.
type conversationExport struct {
	Messages     []conversationTurn `json:"messages"`
	Conversation []conversationTurn `json:"conversation"`
	Timestamp    any                `json:"timestamp"`
	CreatedAt    any                `json:"created_at"`
}

// conversationTurn is one turn in an export. Content may be a plain string
// or a structured object; tool call fields vary by exporter and may hold a
// single object or an array.
type conversationTurn struct {
	Role      string          `json:"role"`
	Content   json.RawMessage `json:"content"`
	ToolCalls json.RawMessage `json:"tool_calls"`
	ToolUse   json.RawMessage `json:"tool_use"`
}

// toolCall is the common shape of one tool invocation in an export.
type toolCall struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

// extractConversationExport parses a structured JSON conversation export.
// The whole file is one document: any parse failure skips the file.
// A document without a messages/conversation array, or with zero
// user/assistant turns, yields no event.
func extractConversationExport(f File, now time.Time) []Event {
	var doc conversationExport
	if err := json.Unmarshal([]byte(f.Content), &doc); err != nil {
		return nil
	}

	turns := doc.Messages
	if turns == nil {
		turns = doc.Conversation
	}
	if turns == nil {
		return nil
	}

	ts, ok := parseRecordTimestamp(doc.Timestamp)
	if !ok {
		ts, ok = parseRecordTimestamp(doc.CreatedAt)
	}
	if !ok {
		// Exports often omit timestamps entirely; the reference time is
		// an acceptable stand-in since aggregate statistics dominate.
		ts = now
	}

	pathLike := f.Path
	if pathLike == "" {
		pathLike = f.Name
	}

	msgCount := 0
	tokens := 0
	seen := make(map[string]bool)
	var tools []string

	for _, turn := range turns {
		if turn.Role != "user" && turn.Role != "assistant" {
			continue
		}
		msgCount++
		tokens += EstimateTokens(turnText(turn.Content))

		calls := turn.ToolCalls
		if calls == nil {
			calls = turn.ToolUse
		}
		for _, name := range toolCallNames(calls) {
			if !seen[name] {
				seen[name] = true
				tools = append(tools, name)
			}
		}
	}

	if msgCount == 0 {
		return nil
	}

	return []Event{{
		Timestamp:    ts,
		Project:      ProjectName(pathLike),
		MessageCount: msgCount,
		Tools:        tools,
		Hour:         ts.Hour(),
		DayOfWeek:    int(ts.Weekday()),
		Tokens:       tokens,
	}}
}

// turnText extracts the text of a turn's content, which is either a plain
// string or an arbitrary structure (re-serialized for length estimation).
func turnText(raw json.RawMessage) string {
	if raw == nil {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return string(raw)
}

// toolCallNames resolves a tool_calls/tool_use field, which may be one
// object or an array of objects, into normalized tool names.
func toolCallNames(raw json.RawMessage) []string {
	if raw == nil {
		return nil
	}

	var calls []toolCall
	if err := json.Unmarshal(raw, &calls); err != nil {
		var single toolCall
		if err := json.Unmarshal(raw, &single); err != nil {
			return nil
		}
		calls = []toolCall{single}
	}

	var names []string
	for _, c := range calls {
		name := c.Name
		if name == "" {
			name = c.Type
		}
		if name == "" {
			name = "unknown"
		}
		names = append(names, NormalizeToolName(name))
	}
	return names
}

// parseRecordTimestamp interprets a loosely-typed timestamp field: a JSON
// number is epoch milliseconds, a string is tried against common datetime
// layouts. The second return is false when no instant can be derived.
func parseRecordTimestamp(v any) (time.Time, bool) {
	switch t := v.(type) {
	case float64:
		if t <= 0 {
			return time.Time{}, false
		}
		return time.UnixMilli(int64(t)), true
	case string:
		parsed := ParseTimestamp(t)
		return parsed, !parsed.IsZero()
	}
	return time.Time{}, false
}

// ParseTimestamp parses an ISO 8601 timestamp string. It tries RFC3339Nano,
// RFC3339, and a plain datetime format without timezone. Returns the zero
// time if the string is empty or matches no supported format.
func ParseTimestamp(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		t, err = time.Parse(time.RFC3339, s)
		if err != nil {
			t, err = time.Parse("2006-01-02T15:04:05", s)
			if err != nil {
				return time.Time{}
			}
		}
	}
	return t
}
