package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"
)

const asciiLogo = `
███╗   ███╗ █████╗ ██████╗  █████╗ ████████╗██╗  ██╗ ██████╗ ███╗   ██╗
████╗ ████║██╔══██╗██╔══██╗██╔══██╗╚══██╔══╝██║  ██║██╔═══██╗████╗  ██║
██╔████╔██║███████║██████╔╝███████║   ██║   ███████║██║   ██║██╔██╗ ██║
██║╚██╔╝██║██╔══██║██╔══██╗██╔══██║   ██║   ██╔══██║██║   ██║██║╚██╗██║
██║ ╚═╝ ██║██║  ██║██║  ██║██║  ██║   ██║   ██║  ██║╚██████╔╝██║ ╚████║
╚═╝     ╚═╝╚═╝  ╚═╝╚═╝  ╚═╝╚═╝  ╚═╝   ╚═╝   ╚═╝  ╚═╝ ╚═════╝ ╚═╝  ╚═══╝`

// PromptOptions holds the user's responses to the configuration prompts.
type PromptOptions struct {
	TargetHours  int
	SoundEnabled bool
}

// WithPromptConfig returns an Option that asks for the study target on first
// run. It does nothing once a config file exists.
func WithPromptConfig(configPath string) Option {
	return func(c *Config) error {
		_, err := os.Stat(configPath)
		if err == nil || !errors.Is(err, os.ErrNotExist) {
			return err
		}

		opts, err := promptUser()
		if err != nil {
			return fmt.Errorf("user prompt failed: %w", err)
		}

		applyPromptOptions(c, opts)

		return nil
	}
}

// promptUser handles the interactive configuration process.
func promptUser() (PromptOptions, error) {
	opts := PromptOptions{
		SoundEnabled: true,
	}

	pterm.Println(asciiLogo)

	_ = putils.BulletListFromString(`Follow the prompts below to configure Marathon for the first time.
Select your preferred value, or press ENTER to accept the defaults.
Edit the config file with 'marathon edit-config' to change any settings.`, " ").
		Render()

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[int]().
				Title("Study target").
				Options(
					huh.NewOption("10 hours", 10),
					huh.NewOption("20 hours", 20).Selected(true),
					huh.NewOption("30 hours", 30),
					huh.NewOption("50 hours", 50),
					huh.NewOption("100 hours", 100),
				).
				Value(&opts.TargetHours),
		),
		huh.NewGroup(
			huh.NewConfirm().
				Title("Play sounds for the warning and completion?").
				Affirmative("Yes").
				Negative("No").
				Value(&opts.SoundEnabled),
		),
	)

	err := form.Run()
	if err != nil {
		return opts, fmt.Errorf("form interaction failed: %w", err)
	}

	return opts, nil
}

// applyPromptOptions applies the user's prompt responses to the configuration.
func applyPromptOptions(c *Config, opts PromptOptions) {
	c.Timer.Duration = time.Duration(opts.TargetHours) * time.Hour
	c.Sound.Enabled = opts.SoundEnabled
	c.prompted = true
}
