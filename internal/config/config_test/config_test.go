package config_test

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/ayoisaiah/marathon/internal/config"
	"github.com/ayoisaiah/marathon/internal/testutil"
)

type TestCase struct {
	Want    *config.Config
	Name    string
	Fixture string
}

// defaultConfig returns a new Config instance with default values.
func defaultConfig() *config.Config {
	return &config.Config{
		Timer: config.TimerConfig{
			Duration:         20 * time.Hour,
			WarningAt:        time.Hour,
			AutosaveInterval: 30 * time.Second,
			AutosaveEvery:    5,
		},
		Storage: config.StorageConfig{
			Backend: config.BackendBolt,
			Enabled: true,
		},
		Notifications: config.NotificationConfig{
			DismissAfter: 5 * time.Second,
			Enabled:      true,
		},
		Sound: config.SoundConfig{
			Enabled: true,
		},
		Settings: config.SettingsConfig{
			Cmd:            "",
			TwentyFourHour: true,
		},
		Display: config.DisplayConfig{
			Color:     "#B0DB43",
			DarkTheme: true,
		},
		Log: config.LogConfig{
			Level: "info",
		},
	}
}

func TestViperWriteConfig(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yml")

	cfg, err := config.New(
		config.WithViperConfig(configPath),
	)
	if err != nil {
		t.Fatal(err)
	}

	assert.Equal(t, defaultConfig(), cfg)

	// the written file must load back to the same defaults
	reloaded, err := config.New(
		config.WithViperConfig(configPath),
	)
	if err != nil {
		t.Fatal(err)
	}

	assert.Equal(t, cfg, reloaded)
}

func TestViperReadConfig(t *testing.T) {
	testCases := []TestCase{
		{
			Name:    "read a modified config file",
			Fixture: "testdata/modified_config.yml",
			Want: &config.Config{
				Timer: config.TimerConfig{
					Duration:         30 * time.Hour,
					WarningAt:        2 * time.Hour,
					AutosaveInterval: time.Minute,
					AutosaveEvery:    10,
				},
				Storage: config.StorageConfig{
					Backend: config.BackendSQLite,
					Enabled: true,
				},
				Notifications: config.NotificationConfig{
					DismissAfter: 10 * time.Second,
					Enabled:      false,
				},
				Sound: config.SoundConfig{
					Enabled: true,
				},
				Settings: config.SettingsConfig{
					Cmd:            "notify-send done",
					TwentyFourHour: false,
				},
				Display: config.DisplayConfig{
					Color:     "#12EAEA",
					DarkTheme: false,
				},
				Log: config.LogConfig{
					Level: "debug",
				},
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			configPath := filepath.Join(t.TempDir(), "config.yml")

			testutil.CopyFixture(t, tc.Fixture, configPath)

			cfg, err := config.New(
				config.WithViperConfig(configPath),
			)
			if err != nil {
				t.Fatal(err)
			}

			assert.Equal(t, tc.Want, cfg)
		})
	}
}

func TestViperInvalidConfig(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yml")

	testutil.CopyFixture(t, "testdata/invalid_config.yml", configPath)

	_, err := config.New(
		config.WithViperConfig(configPath),
	)
	if err == nil {
		t.Fatal("expected a validation error")
	}

	assert.Contains(t, err.Error(), "warning_at")
}

func TestValidate(t *testing.T) {
	testCases := []struct {
		Modify  func(c *config.Config)
		Name    string
		WantErr bool
	}{
		{
			Name:   "defaults are valid",
			Modify: func(_ *config.Config) {},
		},
		{
			Name: "duration below minimum",
			Modify: func(c *config.Config) {
				c.Timer.Duration = 30 * time.Second
				c.Timer.WarningAt = 10 * time.Second
			},
			WantErr: true,
		},
		{
			Name: "duration above maximum",
			Modify: func(c *config.Config) {
				c.Timer.Duration = 101 * time.Hour
			},
			WantErr: true,
		},
		{
			Name: "warning equal to duration",
			Modify: func(c *config.Config) {
				c.Timer.WarningAt = c.Timer.Duration
			},
			WantErr: true,
		},
		{
			Name: "zero autosave interval",
			Modify: func(c *config.Config) {
				c.Timer.AutosaveInterval = 0
			},
			WantErr: true,
		},
		{
			Name: "zero autosave every",
			Modify: func(c *config.Config) {
				c.Timer.AutosaveEvery = 0
			},
			WantErr: true,
		},
		{
			Name: "unknown backend",
			Modify: func(c *config.Config) {
				c.Storage.Backend = "redis"
			},
			WantErr: true,
		},
		{
			Name: "memory backend",
			Modify: func(c *config.Config) {
				c.Storage.Backend = config.BackendMemory
			},
		},
		{
			Name: "short hex color",
			Modify: func(c *config.Config) {
				c.Display.Color = "#FFF"
			},
			WantErr: true,
		},
		{
			Name: "unknown log level",
			Modify: func(c *config.Config) {
				c.Log.Level = "trace"
			},
			WantErr: true,
		},
		{
			Name: "zero dismiss delay",
			Modify: func(c *config.Config) {
				c.Notifications.DismissAfter = 0
			},
			WantErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			cfg := defaultConfig()
			tc.Modify(cfg)

			err := cfg.Validate()
			if tc.WantErr {
				assert.Error(t, err)
				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestNewWrapsOptionErrors(t *testing.T) {
	errBoom := errors.New("boom")

	_, err := config.New(func(_ *config.Config) error {
		return errBoom
	})

	assert.ErrorIs(t, err, errBoom)
}
