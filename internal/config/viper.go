package config

import (
	"errors"
	"os"
	"time"

	"github.com/spf13/viper"
)

// viperKeys defines the mapping between config keys and their Viper counterparts.
const (
	keyTimerDuration          = "timer.duration"
	keyTimerWarningAt         = "timer.warning_at"
	keyTimerAutosaveInterval  = "timer.autosave_interval"
	keyTimerAutosaveEvery     = "timer.autosave_every"
	keyStorageEnabled         = "storage.enabled"
	keyStorageBackend         = "storage.backend"
	keyNotificationsEnabled   = "notifications.enabled"
	keyNotificationsDismissAt = "notifications.dismiss_after"
	keySoundEnabled           = "sound.enabled"
	keySessionCmd             = "settings.cmd"
	keyTwentyFourHour         = "settings.24hr_clock"
	keyDarkTheme              = "display.dark_theme"
	keyDisplayColor           = "display.color"
	keyLogLevel               = "log.level"
)

// WithViperConfig returns an Option that loads configuration from Viper. A
// config file holding the defaults is written if none exists.
func WithViperConfig(configPath string) Option {
	return func(c *Config) error {
		v := viper.New()

		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")

		setupViper(v, c)

		err := v.ReadInConfig()
		if err == nil {
			return loadViperConfig(v, c)
		}

		if !errors.Is(err, os.ErrNotExist) {
			return errReadConfig.Wrap(err)
		}

		if err := v.WriteConfig(); err != nil {
			return errWriteConfig.Wrap(err)
		}

		return loadViperConfig(v, c)
	}
}

// setupViper configures Viper with defaults and prompt values.
func setupViper(v *viper.Viper, c *Config) {
	v.SetDefault(keyTimerDuration, "20h")
	v.SetDefault(keyTimerWarningAt, "1h")
	v.SetDefault(keyTimerAutosaveInterval, "30s")
	v.SetDefault(keyTimerAutosaveEvery, 5)
	v.SetDefault(keyStorageEnabled, true)
	v.SetDefault(keyStorageBackend, BackendBolt)
	v.SetDefault(keyNotificationsEnabled, true)
	v.SetDefault(keyNotificationsDismissAt, "5s")
	v.SetDefault(keySoundEnabled, true)
	v.SetDefault(keySessionCmd, "")
	v.SetDefault(keyTwentyFourHour, true)
	v.SetDefault(keyDarkTheme, true)
	v.SetDefault(keyDisplayColor, "#B0DB43")
	v.SetDefault(keyLogLevel, "info")

	if c.prompted {
		v.SetDefault(keyTimerDuration, c.Timer.Duration.String())
		v.SetDefault(keySoundEnabled, c.Sound.Enabled)
	}
}

// loadViperConfig loads configuration from Viper into the Config struct.
func loadViperConfig(v *viper.Viper, c *Config) error {
	if err := v.Unmarshal(c); err != nil {
		return errReadConfig.Wrap(err)
	}

	return nil
}

// parseDuration parses duration strings. A bare number is taken as minutes.
func parseDuration(s string) (time.Duration, error) {
	dur, err := time.ParseDuration(s)
	if err == nil {
		return dur, nil
	}

	mins, err := time.ParseDuration(s + "m")
	if err != nil {
		return 0, err
	}

	return mins, nil
}
