package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config is the top-level claudewrapped configuration.
type Config struct {
	DataDir  string   `mapstructure:"data_dir"`
	Year     int      `mapstructure:"year"`
	Sessions Sessions `mapstructure:"sessions"`
	Output   Output   `mapstructure:"output"`
}

// Sessions defines the session boundary tuning used by the
// productivity metrics, in minutes.
type Sessions struct {
	GapMinutes      int `mapstructure:"gap_minutes"`
	MarathonMinutes int `mapstructure:"marathon_minutes"`
}

// Gap returns the inter-event gap that ends a session.
func (s Sessions) Gap() time.Duration {
	return time.Duration(s.GapMinutes) * time.Minute
}

// Marathon returns the minimum session span counted as a marathon.
func (s Sessions) Marathon() time.Duration {
	return time.Duration(s.MarathonMinutes) * time.Minute
}

// Output defines output preferences.
type Output struct {
	Color bool `mapstructure:"color"`
	Width int  `mapstructure:"width"`
}

// expandPath replaces a leading ~ with the user's home directory.
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}

// Load reads configuration from the given path (or the default location)
// and returns a Config with all defaults applied.
func Load(cfgFile string) (*Config, error) {
	v := viper.New()

	// Set defaults.
	v.SetDefault("data_dir", DefaultDataDir)
	v.SetDefault("year", DefaultYear)
	v.SetDefault("sessions.gap_minutes", DefaultSessions.GapMinutes)
	v.SetDefault("sessions.marathon_minutes", DefaultSessions.MarathonMinutes)
	v.SetDefault("output.color", DefaultOutput.Color)
	v.SetDefault("output.width", DefaultOutput.Width)

	if cfgFile != "" {
		v.SetConfigFile(expandPath(cfgFile))
	} else {
		configDir := expandPath(DefaultConfigDir)
		v.AddConfigPath(configDir)
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	// Read config file if it exists; missing file is not an error.
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// Only return error for problems other than file not found.
			if !os.IsNotExist(err) {
				return nil, err
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	// Expand paths.
	cfg.DataDir = expandPath(cfg.DataDir)

	return &cfg, nil
}

// DBPath returns the full path to the SQLite database.
func DBPath() string {
	return filepath.Join(expandPath(DefaultConfigDir), DefaultDBName)
}

// ConfigDir returns the expanded configuration directory.
func ConfigDir() string {
	return expandPath(DefaultConfigDir)
}
