package config

import (
	"regexp"
	"slices"
	"time"
)

var (
	// Minimum and maximum countdown length.
	minDuration = 1 * time.Minute
	maxDuration = 100 * time.Hour

	minAutosaveInterval = 1 * time.Second

	backends  = []string{BackendBolt, BackendSQLite, BackendMemory}
	logLevels = []string{"debug", "info", "warn", "error"}

	// Color format validation.
	hexColorRegex = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)
)

// Validate performs validation checks on the Config struct and its fields.
func (c *Config) Validate() error {
	if err := c.validateTimer(); err != nil {
		return err
	}

	if c.Notifications.DismissAfter <= 0 {
		return errInvalidDismissAfter.Fmt(c.Notifications.DismissAfter)
	}

	if !slices.Contains(backends, c.Storage.Backend) {
		return errUnknownBackend.Fmt(c.Storage.Backend)
	}

	if !hexColorRegex.MatchString(c.Display.Color) {
		return errInvalidColor.Fmt(c.Display.Color)
	}

	if !slices.Contains(logLevels, c.Log.Level) {
		return errInvalidLogLevel.Fmt(c.Log.Level)
	}

	return nil
}

// validateTimer validates the countdown settings.
func (c *Config) validateTimer() error {
	t := c.Timer

	if t.Duration < minDuration || t.Duration > maxDuration {
		return errInvalidDuration.Fmt(minDuration, maxDuration, t.Duration)
	}

	if t.WarningAt <= 0 || t.WarningAt >= t.Duration {
		return errInvalidWarning.Fmt(t.WarningAt, t.Duration)
	}

	if t.AutosaveInterval < minAutosaveInterval {
		return errInvalidAutosaveInterval.Fmt(
			minAutosaveInterval,
			t.AutosaveInterval,
		)
	}

	if t.AutosaveEvery < 1 {
		return errInvalidAutosaveEvery.Fmt(t.AutosaveEvery)
	}

	return nil
}
