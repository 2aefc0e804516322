// Package config loads, validates and exposes the marathon configuration
package config

import (
	"io"
	"os"
	"time"

	"github.com/ayoisaiah/marathon/internal/pathutil"
)

type (
	// Config holds all configuration settings.
	Config struct {
		Timer         TimerConfig        `mapstructure:"timer"`
		Storage       StorageConfig      `mapstructure:"storage"`
		Notifications NotificationConfig `mapstructure:"notifications"`
		Sound         SoundConfig        `mapstructure:"sound"`
		Settings      SettingsConfig     `mapstructure:"settings"`
		Display       DisplayConfig      `mapstructure:"display"`
		Log           LogConfig          `mapstructure:"log"`
		CLI           CLIConfig          `mapstructure:"-"`
		prompted      bool
	}

	// TimerConfig holds countdown settings.
	TimerConfig struct {
		Duration         time.Duration `mapstructure:"duration"`
		WarningAt        time.Duration `mapstructure:"warning_at"`
		AutosaveInterval time.Duration `mapstructure:"autosave_interval"`
		AutosaveEvery    int           `mapstructure:"autosave_every"`
	}

	// StorageConfig selects where the countdown is persisted.
	StorageConfig struct {
		Backend string `mapstructure:"backend"`
		Enabled bool   `mapstructure:"enabled"`
	}

	// NotificationConfig holds notification settings.
	NotificationConfig struct {
		DismissAfter time.Duration `mapstructure:"dismiss_after"`
		Enabled      bool          `mapstructure:"enabled"`
	}

	// SoundConfig holds sound-related settings.
	SoundConfig struct {
		Enabled bool `mapstructure:"enabled"`
	}

	// SettingsConfig holds miscellaneous settings.
	SettingsConfig struct {
		// Cmd is executed when the countdown completes
		Cmd            string `mapstructure:"cmd"`
		TwentyFourHour bool   `mapstructure:"24hr_clock"`
	}

	// DisplayConfig holds display-related settings.
	DisplayConfig struct {
		Color     string `mapstructure:"color"`
		DarkTheme bool   `mapstructure:"dark_theme"`
	}

	// LogConfig holds logging settings.
	LogConfig struct {
		Level string `mapstructure:"level"`
	}

	// CLIConfig holds options that are only set from the command-line.
	CLIConfig struct {
		Headless bool
	}

	// Option is a function that modifies Config.
	Option func(*Config) error
)

const Version = "v1.0.0"

var (
	Stdin  io.Reader = os.Stdin
	Stdout io.Writer = os.Stdout
	Stderr io.Writer = os.Stderr
)

// Backend values.
const (
	BackendBolt   = "bolt"
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
)

// DBPath returns the location of the database for the configured backend.
func (c *Config) DBPath() string {
	if c.Storage.Backend == BackendSQLite {
		return pathutil.SQLiteFilePath()
	}

	return pathutil.DBFilePath()
}

// New creates a new Config by applying options in order, then validates it.
func New(opts ...Option) (*Config, error) {
	cfg := &Config{}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, errConfigOption.Wrap(err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, errConfigValidation.Wrap(err)
	}

	return cfg, nil
}
