package review

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"github.com/blackwell-systems/claudewrapped/internal/ingest"
)

var fixedNow = time.Date(2025, 12, 1, 12, 0, 0, 0, time.UTC)

const threeLineHistory = `{"display":"asked for an Edit","timestamp":"2025-01-01T10:00:00Z","project":"/u/work/my-app"}
{"display":"another Edit please","timestamp":"2025-01-02T11:00:00Z","project":"/u/work/my-app"}
{"display":"one more Edit","timestamp":"2025-01-04T09:00:00Z","project":"/u/work/my-app"}
`

func TestRun_ConcreteScenario(t *testing.T) {
	files := []ingest.File{{Name: "history.jsonl", Content: threeLineHistory}}

	report, err := Run(files, Options{Now: fixedNow})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if report.ActiveDays != 3 {
		t.Errorf("ActiveDays = %d, want 3", report.ActiveDays)
	}
	if report.LongestStreak != 2 {
		t.Errorf("LongestStreak = %d, want 2", report.LongestStreak)
	}
	if len(report.TopTools) != 1 || report.TopTools[0].Name != "Edit" || report.TopTools[0].Count != 3 {
		t.Errorf("TopTools = %v, want [{Edit 3}]", report.TopTools)
	}
	if report.MonthlyActivity[0].Conversations != 3 {
		t.Errorf("Jan conversations = %d, want 3", report.MonthlyActivity[0].Conversations)
	}

	found := false
	for _, d := range report.Heatmap {
		if d.Date == "2025-01-03" {
			found = true
			if d.Count != 0 {
				t.Errorf("2025-01-03 count = %d, want 0", d.Count)
			}
		}
	}
	if !found {
		t.Error("heatmap missing 2025-01-03 entry")
	}
}

func TestRun_NoUsableData(t *testing.T) {
	files := []ingest.File{
		{Name: "garbage.jsonl", Content: "not json\nstill not json\n"},
		{Name: "broken.json", Content: "{"},
		{Name: "empty.jsonl", Content: ""},
	}

	_, err := Run(files, Options{Now: fixedNow})
	if !errors.Is(err, ErrNoData) {
		t.Fatalf("expected ErrNoData, got %v", err)
	}
}

func TestRun_NoFiles(t *testing.T) {
	if _, err := Run(nil, Options{Now: fixedNow}); !errors.Is(err, ErrNoData) {
		t.Fatalf("expected ErrNoData for empty file set, got %v", err)
	}
}

func TestRun_Idempotent(t *testing.T) {
	files := []ingest.File{{Name: "history.jsonl", Content: threeLineHistory}}

	a, err := Run(files, Options{Now: fixedNow})
	if err != nil {
		t.Fatalf("first run: %v", err)
	}
	b, err := Run(files, Options{Now: fixedNow})
	if err != nil {
		t.Fatalf("second run: %v", err)
	}
	if !reflect.DeepEqual(a, b) {
		t.Error("two runs over identical input produced different reports")
	}
}

func TestRun_ProgressPhases(t *testing.T) {
	var messages []string
	files := []ingest.File{{Name: "history.jsonl", Content: threeLineHistory}}

	_, err := Run(files, Options{
		Now:      fixedNow,
		Progress: func(msg string) { messages = append(messages, msg) },
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(messages) == 0 {
		t.Fatal("expected progress notifications")
	}
	last := messages[len(messages)-1]
	if last != "Calculating statistics..." {
		t.Errorf("last progress message = %q, want calculating phase", last)
	}
}

func TestRun_MixedFormats(t *testing.T) {
	files := []ingest.File{
		{Name: "history.jsonl", Content: threeLineHistory},
		{Name: "export.json", Path: "/u/work/side-proj/export.json", Content: `{
			"timestamp": "2025-02-01T10:00:00Z",
			"messages": [
				{"role":"user","content":"hello"},
				{"role":"assistant","content":"hi","tool_calls":[{"name":"Read"}]}
			]
		}`},
	}

	report, err := Run(files, Options{Now: fixedNow})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report.TotalConversations != 4 {
		t.Errorf("TotalConversations = %d, want 4", report.TotalConversations)
	}
	if report.TotalMessages != 5 {
		t.Errorf("TotalMessages = %d, want 5", report.TotalMessages)
	}
	if report.ProjectCount != 2 {
		t.Errorf("ProjectCount = %d, want 2", report.ProjectCount)
	}
}

func TestRunDir(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "history.jsonl"), []byte(threeLineHistory), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	report, err := RunDir(dir, Options{Now: fixedNow})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report.TotalConversations != 3 {
		t.Errorf("TotalConversations = %d, want 3", report.TotalConversations)
	}
}

func TestRunDir_Missing(t *testing.T) {
	if _, err := RunDir(filepath.Join(t.TempDir(), "absent"), Options{Now: fixedNow}); err == nil {
		t.Fatal("expected error for missing directory")
	}
}
