package app

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/claudewrapped/internal/config"
	"github.com/blackwell-systems/claudewrapped/internal/output"
	"github.com/blackwell-systems/claudewrapped/internal/store"
)

var (
	trackCompare int
	trackHistory int
)

var trackCmd = &cobra.Command{
	Use:   "track [file...]",
	Short: "Snapshot and compare report metrics over time",
	Long: `Run the report, store its headline metrics as a new snapshot, and
compare against the most recent previous snapshot for the same year to show
deltas with trend arrows. Only derived metrics are stored, never log data.`,
	RunE: runTrack,
}

func init() {
	trackCmd.Flags().IntVar(&trackCompare, "compare", 1, "Compare against Nth previous snapshot (1 = most recent)")
	trackCmd.Flags().IntVar(&trackHistory, "history", 0, "Show metric trends across N most recent snapshots")
	rootCmd.AddCommand(trackCmd)
}

func runTrack(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	setupColor(cfg)

	report, err := buildReport(cfg, args)
	if err != nil {
		return err
	}

	db, err := store.Open(config.DBPath())
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer func() { _ = db.Close() }()

	snapshotID, err := db.CreateSnapshot(report.Year, appVersion)
	if err != nil {
		return fmt.Errorf("creating snapshot: %w", err)
	}
	if err := db.SaveReport(snapshotID, report); err != nil {
		return fmt.Errorf("saving report metrics: %w", err)
	}

	if trackHistory > 0 {
		if flagJSON {
			return outputHistoryJSON(db, report.Year, trackHistory)
		}
		return renderHistory(db, report.Year, trackHistory)
	}

	currentSnapshot, err := db.GetSnapshot(snapshotID)
	if err != nil {
		return fmt.Errorf("loading current snapshot: %w", err)
	}

	// trackCompare=1 means compare against the immediate predecessor
	// (offset 2 from newest, since the new snapshot is already stored).
	prevSnapshot, err := db.GetSnapshotN(report.Year, trackCompare+1)
	if err != nil {
		return fmt.Errorf("loading previous snapshot: %w", err)
	}

	var diff *store.SnapshotDiff
	if prevSnapshot != nil {
		diff, err = db.CompareSnapshots(prevSnapshot, currentSnapshot)
		if err != nil {
			return fmt.Errorf("comparing snapshots: %w", err)
		}
	}

	if flagJSON {
		return outputTrackJSON(currentSnapshot, diff)
	}

	renderTrackOutput(currentSnapshot, diff)
	return nil
}

// metricDirection maps metric names to whether higher values are better.
// Unlisted metrics default to higher-is-better.
var metricDirection = map[string]bool{
	"messages_per_conversation": false, // fewer messages per conversation = tighter sessions
}

func outputTrackJSON(current *store.Snapshot, diff *store.SnapshotDiff) error {
	result := map[string]any{
		"snapshot": current,
	}
	if diff != nil {
		result["diff"] = diff
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}

func renderTrackOutput(current *store.Snapshot, diff *store.SnapshotDiff) {
	fmt.Println(output.Section("Track: Snapshot Comparison"))
	fmt.Println()
	fmt.Printf(" Snapshot #%d (%d) taken at %s\n\n",
		current.ID, current.Year, current.TakenAt.Format("2006-01-02 15:04:05"))

	if diff == nil {
		fmt.Println(" First snapshot recorded. Run 'claudewrapped track' again later to see trends.")
		return
	}

	fmt.Printf(" Comparing against snapshot #%d (%s)\n\n",
		diff.Previous.ID, diff.Previous.TakenAt.Format("2006-01-02 15:04:05"))

	tbl := output.NewTable("Metric", "Previous", "Current", "Delta", "Trend")

	for _, d := range diff.Deltas {
		higherIsBetter, known := metricDirection[d.Name]
		if !known {
			higherIsBetter = true
		}

		tbl.AddRow(
			d.Name,
			fmt.Sprintf("%.1f", d.Previous),
			fmt.Sprintf("%.1f", d.Current),
			fmt.Sprintf("%+.1f", d.Delta),
			output.TrendArrow(d.Delta, higherIsBetter),
		)
	}

	tbl.Print()
}

// metricDisplayOrder defines the order metrics appear in history output.
var metricDisplayOrder = []string{
	"total_conversations",
	"total_messages",
	"total_tokens",
	"active_days",
	"longest_streak",
	"current_streak",
	"project_count",
	"late_night_count",
	"weekend_days",
	"marathon_sessions",
	"messages_per_conversation",
	"avg_per_active_day",
	"exploration_ratio",
}

// metricShortName returns a compact label for display in the history table.
func metricShortName(name string) string {
	short := map[string]string{
		"total_conversations":       "Conversations",
		"total_messages":            "Messages",
		"total_tokens":              "Tokens",
		"active_days":               "Active Days",
		"longest_streak":            "Longest Streak",
		"current_streak":            "Current Streak",
		"project_count":             "Projects",
		"late_night_count":          "Late Nights",
		"weekend_days":              "Weekend Days",
		"marathon_sessions":         "Marathons",
		"messages_per_conversation": "Msgs / Conversation",
		"avg_per_active_day":        "Avg / Active Day",
		"exploration_ratio":         "Exploration %",
	}
	if s, ok := short[name]; ok {
		return s
	}
	return name
}

// renderHistory shows a multi-snapshot timeline table.
func renderHistory(db *store.DB, year, n int) error {
	snapshots, err := db.GetRecentSnapshots(year, n)
	if err != nil {
		return fmt.Errorf("loading snapshots: %w", err)
	}

	if len(snapshots) == 0 {
		fmt.Println(" No snapshots found. Run 'claudewrapped track' to create one.")
		return nil
	}

	// Reverse so oldest is first (left to right = chronological).
	for i, j := 0, len(snapshots)-1; i < j; i, j = i+1, j-1 {
		snapshots[i], snapshots[j] = snapshots[j], snapshots[i]
	}

	// Load metrics for each snapshot.
	type snapshotMetrics struct {
		snapshot store.Snapshot
		metrics  map[string]float64
	}
	var timeline []snapshotMetrics
	for _, s := range snapshots {
		metrics, err := db.GetReportMetrics(s.ID)
		if err != nil {
			return fmt.Errorf("loading metrics for snapshot #%d: %w", s.ID, err)
		}
		m := make(map[string]float64)
		for _, rm := range metrics {
			m[rm.MetricName] = rm.MetricValue
		}
		timeline = append(timeline, snapshotMetrics{snapshot: s, metrics: m})
	}

	fmt.Println(output.Section("Track: Metric History"))
	fmt.Println()
	fmt.Printf(" Showing %d most recent snapshots\n\n", len(timeline))

	// Build table: Metric | snap1 | snap2 | ... | Trend
	headers := []string{"Metric"}
	for _, sm := range timeline {
		headers = append(headers, fmt.Sprintf("#%d %s", sm.snapshot.ID, sm.snapshot.TakenAt.Format("Jan 02")))
	}
	headers = append(headers, "Trend")
	tbl := output.NewTable(headers...)

	for _, name := range metricDisplayOrder {
		row := []string{metricShortName(name)}
		var vals []float64
		for _, sm := range timeline {
			v := sm.metrics[name]
			vals = append(vals, v)
			row = append(row, fmt.Sprintf("%.1f", v))
		}

		// Compute trend from first to last.
		trend := ""
		if len(vals) >= 2 {
			delta := vals[len(vals)-1] - vals[0]
			higherIsBetter, known := metricDirection[name]
			if !known {
				higherIsBetter = true
			}
			trend = output.TrendArrow(delta, higherIsBetter)
		}
		row = append(row, trend)
		tbl.AddRow(row...)
	}

	tbl.Print()
	return nil
}

// outputHistoryJSON writes the history data as JSON.
func outputHistoryJSON(db *store.DB, year, n int) error {
	snapshots, err := db.GetRecentSnapshots(year, n)
	if err != nil {
		return fmt.Errorf("loading snapshots: %w", err)
	}

	// Reverse to chronological order.
	for i, j := 0, len(snapshots)-1; i < j; i, j = i+1, j-1 {
		snapshots[i], snapshots[j] = snapshots[j], snapshots[i]
	}

	type snapshotEntry struct {
		Snapshot store.Snapshot       `json:"snapshot"`
		Metrics  []store.ReportMetric `json:"metrics"`
	}

	var entries []snapshotEntry
	for _, s := range snapshots {
		metrics, err := db.GetReportMetrics(s.ID)
		if err != nil {
			return fmt.Errorf("loading metrics for snapshot #%d: %w", s.ID, err)
		}
		entries = append(entries, snapshotEntry{Snapshot: s, Metrics: metrics})
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(map[string]any{"history": entries})
}
