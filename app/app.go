// Package app wires the marathon commands together
package app

import (
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/marathon/internal/config"
)

// disableStyling disables all styling provided by pterm.
func disableStyling() {
	pterm.DisableColor()
	pterm.DisableStyling()
	pterm.Debug.Prefix.Text = ""
	pterm.Info.Prefix.Text = ""
	pterm.Success.Prefix.Text = ""
	pterm.Warning.Prefix.Text = ""
	pterm.Error.Prefix.Text = ""
	pterm.Fatal.Prefix.Text = ""
}

// Get retrieves the marathon app instance.
func Get() *cli.App {
	marathonApp := &cli.App{
		Name: "marathon",
		Authors: []*cli.Author{
			{
				Name:  "Ayooluwa Isaiah",
				Email: "ayo@freshman.tech",
			},
		},
		Usage: `
		Marathon is a study countdown for the command-line. It counts down a
		fixed study target (20 hours by default), records every session as you
		pause and resume, and remembers your progress between runs.`,
		UsageText:            "[COMMAND] [OPTIONS]",
		Version:              config.Version,
		EnableBashCompletion: true,
		Commands: []*cli.Command{
			{
				Name:   "start",
				Usage:  "Start or resume the countdown immediately",
				Flags:  timerFlags,
				Action: startAction,
			},
			{
				Name:   "status",
				Usage:  "Print the time remaining and progress",
				Flags:  storageFlags,
				Action: statusAction,
			},
			{
				Name:  "stats",
				Usage: "Show how much you have studied so far",
				Flags: append(
					[]cli.Flag{jsonFlag, serveFlag, statsPortFlag},
					storageFlags...,
				),
				Action: statsAction,
			},
			{
				Name:    "sessions",
				Aliases: []string{"list"},
				Usage:   "List the recorded study sessions",
				Flags: append(
					[]cli.Flag{sinceFlag, jsonFlag, yamlFlag},
					storageFlags...,
				),
				Action: sessionsAction,
			},
			{
				Name:   "reset",
				Usage:  "Discard all progress and recorded sessions",
				Flags:  append([]cli.Flag{yesFlag}, storageFlags...),
				Action: resetAction,
			},
			{
				Name:   "edit-config",
				Usage:  "Edit the configuration file",
				Action: editConfigAction,
			},
		},
		Flags:  append([]cli.Flag{noColorFlag}, timerFlags...),
		Action: defaultAction,
		Before: beforeAction,
	}

	return marathonApp
}
