// Package review runs the end-to-end year-in-review pipeline: read files,
// extract activity events, aggregate, and derive the report.
package review

import (
	"errors"
	"time"

	"github.com/blackwell-systems/claudewrapped/internal/ingest"
	"github.com/blackwell-systems/claudewrapped/internal/stats"
)

// ErrNoData is returned when no activity events could be extracted from
// any of the supplied files.
var ErrNoData = errors.New(
	"no usable Claude Code data found; select a folder containing a history.jsonl file (usually ~/.claude)")

// Options configures one pipeline run.
type Options struct {
	// Now is the reference time for current-streak computation and for
	// exports lacking timestamps. The zero value means time.Now().
	Now time.Time

	// Year is the target report year; 0 means Now's year.
	Year int

	// Thresholds tunes the session-gap analysis; the zero value uses
	// the defaults.
	Thresholds stats.Thresholds

	// Progress receives status updates for UI feedback. May be nil.
	Progress ingest.ProgressFunc
}

// Run executes the pipeline over the given files and returns the report.
// Extraction of every file completes before aggregation begins; file and
// record level failures are recovered internally, and only the complete
// absence of usable data is an error.
func Run(files []ingest.File, opts Options) (*stats.Report, error) {
	now := opts.Now
	if now.IsZero() {
		now = time.Now()
	}

	events := ingest.ExtractAll(files, now, opts.Progress)
	if len(events) == 0 {
		return nil, ErrNoData
	}

	if opts.Progress != nil {
		opts.Progress("Calculating statistics...")
	}

	agg := stats.Aggregate(events)
	return stats.Calculate(events, agg, now, opts.Year, opts.Thresholds), nil
}

// RunDir reads every recognized log file under dir and runs the pipeline
// over them.
func RunDir(dir string, opts Options) (*stats.Report, error) {
	files, err := ingest.ReadDir(dir, opts.Progress)
	if err != nil {
		return nil, err
	}
	return Run(files, opts)
}
