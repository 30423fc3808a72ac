package store

import (
	"database/sql"
	"time"

	"github.com/blackwell-systems/claudewrapped/internal/stats"
)

// CreateSnapshot inserts a new snapshot and returns its ID.
func (db *DB) CreateSnapshot(year int, version string) (int64, error) {
	result, err := db.conn.Exec(
		"INSERT INTO snapshots (taken_at, year, version) VALUES (?, ?, ?)",
		time.Now().UTC().Format(time.RFC3339), year, version,
	)
	if err != nil {
		return 0, err
	}
	return result.LastInsertId()
}

// GetLatestSnapshot returns the most recent snapshot for a year, or nil
// if none exist.
func (db *DB) GetLatestSnapshot(year int) (*Snapshot, error) {
	row := db.conn.QueryRow(
		"SELECT id, taken_at, year, version FROM snapshots WHERE year = ? ORDER BY id DESC LIMIT 1",
		year,
	)
	return scanSnapshot(row)
}

// GetSnapshot returns a snapshot by ID.
func (db *DB) GetSnapshot(id int64) (*Snapshot, error) {
	row := db.conn.QueryRow("SELECT id, taken_at, year, version FROM snapshots WHERE id = ?", id)
	return scanSnapshot(row)
}

// GetSnapshotN returns the Nth most recent snapshot for a year
// (1 = latest, 2 = previous, etc.).
func (db *DB) GetSnapshotN(year, n int) (*Snapshot, error) {
	row := db.conn.QueryRow(
		"SELECT id, taken_at, year, version FROM snapshots WHERE year = ? ORDER BY id DESC LIMIT 1 OFFSET ?",
		year, n-1,
	)
	return scanSnapshot(row)
}

// GetRecentSnapshots returns up to n most recent snapshots for a year,
// newest first.
func (db *DB) GetRecentSnapshots(year, n int) ([]Snapshot, error) {
	rows, err := db.conn.Query(
		"SELECT id, taken_at, year, version FROM snapshots WHERE year = ? ORDER BY id DESC LIMIT ?",
		year, n,
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var snaps []Snapshot
	for rows.Next() {
		var s Snapshot
		var takenAt string
		if err := rows.Scan(&s.ID, &takenAt, &s.Year, &s.Version); err != nil {
			return nil, err
		}
		s.TakenAt, _ = time.Parse(time.RFC3339, takenAt)
		snaps = append(snaps, s)
	}
	return snaps, rows.Err()
}

func scanSnapshot(row *sql.Row) (*Snapshot, error) {
	var s Snapshot
	var takenAt string
	err := row.Scan(&s.ID, &takenAt, &s.Year, &s.Version)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	s.TakenAt, _ = time.Parse(time.RFC3339, takenAt)
	return &s, nil
}

// InsertReportMetric inserts a single named metric for a snapshot.
func (db *DB) InsertReportMetric(snapshotID int64, name string, value float64) error {
	_, err := db.conn.Exec(
		"INSERT INTO report_metrics (snapshot_id, metric_name, metric_value) VALUES (?, ?, ?)",
		snapshotID, name, value,
	)
	return err
}

// SaveReport flattens a report's headline scalars into metric rows for a
// snapshot. Collections (heatmap, rankings) are intentionally not stored.
func (db *DB) SaveReport(snapshotID int64, r *stats.Report) error {
	metrics := flattenReport(r)
	tx, err := db.conn.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, m := range metrics {
		if _, err := tx.Exec(
			"INSERT INTO report_metrics (snapshot_id, metric_name, metric_value) VALUES (?, ?, ?)",
			snapshotID, m.MetricName, m.MetricValue,
		); err != nil {
			return err
		}
	}
	return tx.Commit()
}

// flattenReport lists the scalar metrics worth tracking run over run.
func flattenReport(r *stats.Report) []ReportMetric {
	return []ReportMetric{
		{MetricName: "total_conversations", MetricValue: float64(r.TotalConversations)},
		{MetricName: "total_messages", MetricValue: float64(r.TotalMessages)},
		{MetricName: "total_tokens", MetricValue: float64(r.TotalTokens)},
		{MetricName: "active_days", MetricValue: float64(r.ActiveDays)},
		{MetricName: "longest_streak", MetricValue: float64(r.LongestStreak)},
		{MetricName: "current_streak", MetricValue: float64(r.CurrentStreak)},
		{MetricName: "project_count", MetricValue: float64(r.ProjectCount)},
		{MetricName: "late_night_count", MetricValue: float64(r.FunStats.LateNightCount)},
		{MetricName: "weekend_days", MetricValue: float64(r.FunStats.WeekendDays)},
		{MetricName: "marathon_sessions", MetricValue: float64(r.Productivity.MarathonSessions)},
		{MetricName: "messages_per_conversation", MetricValue: r.Productivity.MessagesPerConversation},
		{MetricName: "avg_per_active_day", MetricValue: r.Productivity.AvgPerActiveDay},
		{MetricName: "exploration_ratio", MetricValue: float64(r.WorkPattern.ExplorationRatio)},
	}
}

// GetReportMetrics returns all metrics for a snapshot.
func (db *DB) GetReportMetrics(snapshotID int64) ([]ReportMetric, error) {
	rows, err := db.conn.Query(
		"SELECT id, snapshot_id, metric_name, metric_value FROM report_metrics WHERE snapshot_id = ?",
		snapshotID,
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var metrics []ReportMetric
	for rows.Next() {
		var m ReportMetric
		if err := rows.Scan(&m.ID, &m.SnapshotID, &m.MetricName, &m.MetricValue); err != nil {
			return nil, err
		}
		metrics = append(metrics, m)
	}
	return metrics, rows.Err()
}

// CompareSnapshots computes per-metric deltas between two snapshots.
// Metrics missing from either side are skipped.
func (db *DB) CompareSnapshots(previous, current *Snapshot) (*SnapshotDiff, error) {
	prevMetrics, err := db.GetReportMetrics(previous.ID)
	if err != nil {
		return nil, err
	}
	currMetrics, err := db.GetReportMetrics(current.ID)
	if err != nil {
		return nil, err
	}

	prevByName := make(map[string]float64, len(prevMetrics))
	for _, m := range prevMetrics {
		prevByName[m.MetricName] = m.MetricValue
	}

	diff := &SnapshotDiff{Previous: previous, Current: current}
	for _, m := range currMetrics {
		prev, ok := prevByName[m.MetricName]
		if !ok {
			continue
		}
		diff.Deltas = append(diff.Deltas, MetricDelta{
			Name:     m.MetricName,
			Previous: prev,
			Current:  m.MetricValue,
			Delta:    m.MetricValue - prev,
		})
	}
	return diff, nil
}
