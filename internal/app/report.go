package app

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/claudewrapped/internal/config"
	"github.com/blackwell-systems/claudewrapped/internal/ingest"
	"github.com/blackwell-systems/claudewrapped/internal/output"
	"github.com/blackwell-systems/claudewrapped/internal/review"
	"github.com/blackwell-systems/claudewrapped/internal/stats"
)

var reportCmd = &cobra.Command{
	Use:   "report [file...]",
	Short: "Render the year-in-review report",
	Long: `Read activity logs from the Claude Code data directory (or the given
log files), derive the year's statistics, and render the report. Use --json
for the raw model.`,
	RunE: runReport,
}

func init() {
	rootCmd.AddCommand(reportCmd)
}

func runReport(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	setupColor(cfg)

	report, err := buildReport(cfg, args)
	if err != nil {
		return err
	}

	if flagJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	}

	fmt.Print(output.RenderReport(report))
	return nil
}

// buildReport runs the pipeline over explicit log files when given, or
// the configured data directory otherwise.
func buildReport(cfg *config.Config, paths []string) (*stats.Report, error) {
	var progress ingest.ProgressFunc
	if flagVerbose {
		progress = func(msg string) {
			fmt.Fprintln(os.Stderr, msg)
		}
	}

	opts := review.Options{
		Year: cfg.Year,
		Thresholds: stats.Thresholds{
			SessionGap:     cfg.Sessions.Gap(),
			MarathonLength: cfg.Sessions.Marathon(),
		},
		Progress: progress,
	}

	if len(paths) > 0 {
		files, err := ingest.ReadFiles(paths, progress)
		if err != nil {
			return nil, err
		}
		return review.Run(files, opts)
	}
	return review.RunDir(cfg.DataDir, opts)
}
