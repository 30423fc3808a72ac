// Package config provides configuration loading and defaults for claudewrapped.
package config

// DefaultDataDir is the default location of Claude Code's data directory,
// the usual home of history.jsonl.
const DefaultDataDir = "~/.claude"

// DefaultConfigDir is the default location for claudewrapped configuration.
const DefaultConfigDir = "~/.config/claudewrapped"

// DefaultDBName is the filename for the SQLite snapshot database.
const DefaultDBName = "claudewrapped.db"

// DefaultConfigFile is the filename for the YAML config.
const DefaultConfigFile = "config.yaml"

// DefaultYear selects the report year; 0 means the year of the run.
const DefaultYear = 0

// DefaultSessions holds the default session boundary tuning, in minutes.
var DefaultSessions = Sessions{
	GapMinutes:      30,
	MarathonMinutes: 120,
}

// DefaultOutput holds the default output preferences.
var DefaultOutput = Output{
	Color: true,
	Width: 80,
}
