package config

import (
	"time"

	"github.com/urfave/cli/v2"
)

// CLIOptions represents command-line configuration options.
type CLIOptions struct {
	Duration      string
	Backend       string
	SessionCmd    string
	Headless      bool
	DisableNotify bool
	NoSound       bool
	NoPersist     bool
}

// WithCLIConfig returns an Option that loads configuration from CLI flags.
func WithCLIConfig(ctx *cli.Context) Option {
	return func(c *Config) error {
		opts := CLIOptions{
			Duration:      ctx.String("duration"),
			Backend:       ctx.String("backend"),
			SessionCmd:    ctx.String("session-cmd"),
			Headless:      ctx.Bool("headless"),
			DisableNotify: ctx.Bool("disable-notification"),
			NoSound:       ctx.Bool("no-sound"),
			NoPersist:     ctx.Bool("no-persist"),
		}

		return applyCLIOptions(c, opts)
	}
}

// warningFraction places a rescaled warning at the same share of the
// countdown as the default one hour of twenty.
const warningFraction = 20

// fitWarning moves a warning threshold that a shorter --duration has made
// unreachable back inside the countdown.
func (c *Config) fitWarning() {
	if c.Timer.WarningAt > 0 && c.Timer.WarningAt < c.Timer.Duration {
		return
	}

	c.Timer.WarningAt = (c.Timer.Duration / warningFraction).Truncate(time.Second)
}

// applyCLIOptions applies CLI options to the config.
func applyCLIOptions(c *Config, opts CLIOptions) error {
	if opts.Duration != "" {
		dur, err := parseDuration(opts.Duration)
		if err != nil {
			return errInvalidCLIDuration.Fmt(opts.Duration, err)
		}

		c.Timer.Duration = dur
		c.fitWarning()
	}

	if opts.Backend != "" {
		c.Storage.Backend = opts.Backend
	}

	if opts.SessionCmd != "" {
		c.Settings.Cmd = opts.SessionCmd
	}

	if opts.DisableNotify {
		c.Notifications.Enabled = false
	}

	if opts.NoSound {
		c.Sound.Enabled = false
	}

	if opts.NoPersist {
		c.Storage.Enabled = false
	}

	c.CLI.Headless = opts.Headless

	return nil
}
