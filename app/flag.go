package app

import "github.com/urfave/cli/v2"

var (
	noColorFlag = &cli.BoolFlag{
		Name:  "no-color",
		Usage: "Disable coloured output",
	}

	headlessFlag = &cli.BoolFlag{
		Name:  "headless",
		Usage: "Print the countdown on a single line instead of starting the interactive UI",
	}

	durationFlag = &cli.StringFlag{
		Name:    "duration",
		Aliases: []string{"D"},
		Usage:   "Length of the study target (e.g. 20h, 90m). Numbers without a unit are minutes",
	}

	disableNotificationFlag = &cli.BoolFlag{
		Name:    "disable-notification",
		Aliases: []string{"d"},
		Usage:   "Disable the system notifications for the one-hour warning and completion",
	}

	noSoundFlag = &cli.BoolFlag{
		Name:  "no-sound",
		Usage: "Do not play the warning and completion tones",
	}

	noPersistFlag = &cli.BoolFlag{
		Name:  "no-persist",
		Usage: "Do not save progress between runs",
	}

	backendFlag = &cli.StringFlag{
		Name:  "backend",
		Usage: "Storage backend: bolt, sqlite or memory",
	}

	sessionCmdFlag = &cli.StringFlag{
		Name:    "session-cmd",
		Aliases: []string{"cmd"},
		Usage:   "Execute an arbitrary command when the countdown completes",
	}

	sinceFlag = &cli.StringFlag{
		Name:  "since",
		Usage: "Only include sessions on or after this date (e.g. '3 days ago', 'last monday', '2024-03-01')",
	}

	jsonFlag = &cli.BoolFlag{
		Name:  "json",
		Usage: "Print the output as JSON",
	}

	yamlFlag = &cli.BoolFlag{
		Name:  "yaml",
		Usage: "Print the output as YAML",
	}

	serveFlag = &cli.BoolFlag{
		Name:  "serve",
		Usage: "Serve the statistics as a web page",
	}

	statsPortFlag = &cli.UintFlag{
		Name:  "port",
		Usage: "Specify the port for the statistics server",
		Value: 1111,
	}

	yesFlag = &cli.BoolFlag{
		Name:    "yes",
		Aliases: []string{"y"},
		Usage:   "Skip the confirmation prompt",
	}
)

// timerFlags are accepted by every command that runs the countdown.
var timerFlags = []cli.Flag{
	headlessFlag,
	durationFlag,
	disableNotificationFlag,
	noSoundFlag,
	noPersistFlag,
	backendFlag,
	sessionCmdFlag,
}

// storageFlags are accepted by the commands that only read the state.
var storageFlags = []cli.Flag{
	durationFlag,
	backendFlag,
}
