// Package app contains the Cobra command tree for claudewrapped.
package app

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/blackwell-systems/claudewrapped/internal/config"
	"github.com/blackwell-systems/claudewrapped/internal/output"
)

var appVersion = "dev"

// SetVersion sets the application version (called from main with ldflags value).
func SetVersion(v string) {
	appVersion = v
	rootCmd.Version = v
}

var (
	flagNoColor bool
	flagJSON    bool
	flagVerbose bool
	flagConfig  string
	flagDataDir string
	flagYear    int
)

var rootCmd = &cobra.Command{
	Use:   "claudewrapped",
	Short: "Your Claude Code year in review",
	Long: `claudewrapped reads your local Claude Code activity logs and turns them
into a year-in-review report: conversations, streaks, tool rankings, model
usage, and work patterns.

Run 'claudewrapped' with no arguments to render this year's report.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runReport,
}

// Execute is the entry point called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// loadConfig applies global flags on top of the config file.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if flagDataDir != "" {
		cfg.DataDir = flagDataDir
	}
	if flagYear != 0 {
		cfg.Year = flagYear
	}
	return cfg, nil
}

// setupColor disables styling when asked to, or when stdout is not a
// terminal.
func setupColor(cfg *config.Config) {
	switch {
	case flagNoColor, !cfg.Output.Color:
		output.SetNoColor(true)
	case !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()):
		output.SetNoColor(true)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Config file path (default: ~/.config/claudewrapped/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "Claude Code data directory (default: ~/.claude)")
	rootCmd.PersistentFlags().IntVar(&flagYear, "year", 0, "Report year (default: current year)")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "Output as JSON")
	rootCmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "Enable verbose output")
}
