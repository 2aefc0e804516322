package app

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/exec"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/marathon/internal/config"
	"github.com/ayoisaiah/marathon/internal/models"
	"github.com/ayoisaiah/marathon/internal/osutil"
	"github.com/ayoisaiah/marathon/internal/pathutil"
	"github.com/ayoisaiah/marathon/internal/session"
	"github.com/ayoisaiah/marathon/internal/static"
	"github.com/ayoisaiah/marathon/internal/timeutil"
	"github.com/ayoisaiah/marathon/internal/ui"
	"github.com/ayoisaiah/marathon/stats"
	"github.com/ayoisaiah/marathon/store"
	"github.com/ayoisaiah/marathon/timer"
)

const (
	envUpdateNotifier  = "MARATHON_UPDATE_NOTIFIER"
	envNoColor         = "NO_COLOR"
	envMarathonNoColor = "MARATHON_NO_COLOR"
)

// firstNonEmptyString returns its first non-empty argument, or "" if all
// arguments are empty.
func firstNonEmptyString(ss ...string) string {
	for _, s := range ss {
		if s != "" {
			return s
		}
	}

	return ""
}

// checkForUpdates alerts the user if there is
// an updated version of Marathon from the one currently installed.
func checkForUpdates(app *cli.App) {
	spinner, _ := pterm.DefaultSpinner.Start("Checking for updates...")
	c := http.Client{Timeout: 10 * time.Second}

	resp, err := c.Get("https://github.com/ayoisaiah/marathon/releases/latest")
	if err != nil {
		pterm.Error.Println("HTTP Error: Failed to check for update")
		return
	}

	defer resp.Body.Close()

	var version string

	_, err = fmt.Sscanf(
		resp.Request.URL.String(),
		"https://github.com/ayoisaiah/marathon/releases/tag/%s",
		&version,
	)
	if err != nil {
		pterm.Error.Println("Failed to get latest version")
		return
	}

	if version == app.Version {
		text := pterm.Sprintf(
			"Congratulations, you are using the latest version of %s",
			app.Name,
		)
		spinner.Success(text)
	} else {
		pterm.Warning.Prefix = pterm.Prefix{
			Text:  "UPDATE AVAILABLE",
			Style: pterm.NewStyle(pterm.BgYellow, pterm.FgBlack),
		}
		pterm.Warning.Printfln("A new release of marathon is available: %s at %s", version, resp.Request.URL.String())
	}
}

// runTimer opens the countdown and presents it until the user quits or the
// countdown completes.
func runTimer(ctx *cli.Context, autoStart bool) error {
	cfg, err := loadConfig(ctx, true)
	if err != nil {
		return err
	}

	ui.DarkTheme = cfg.Display.DarkTheme

	ctrl, closeFn, err := openController(cfg)
	if err != nil {
		return err
	}

	defer closeFn()

	opts := timer.Options{
		Controller: ctrl,
		Config:     cfg,
		Player:     timer.NewSpeaker(slog.Default()),
		Alert:      timer.DesktopAlert,
		StatusFile: pathutil.StatusFilePath(),
		AutoStart:  autoStart,
		Logger:     slog.Default(),
	}

	if cfg.CLI.Headless {
		sigCtx, stop := signal.NotifyContext(
			ctx.Context,
			os.Interrupt,
			syscall.SIGTERM,
		)
		defer stop()

		return timer.NewHeadless(opts, os.Stdout).Run(sigCtx)
	}

	p := tea.NewProgram(timer.New(opts), tea.WithContext(ctx.Context))

	_, err = p.Run()
	if err != nil && ctx.Context.Err() != nil {
		return nil
	}

	return err
}

// defaultAction opens the countdown without starting it. The headless
// runner always starts.
func defaultAction(ctx *cli.Context) error {
	return runTimer(ctx, false)
}

// startAction opens the countdown and starts it straight away.
func startAction(ctx *cli.Context) error {
	return runTimer(ctx, true)
}

// statusAction handles the status command and prints the time remaining.
func statusAction(ctx *cli.Context) error {
	cfg, err := loadConfig(ctx, false)
	if err != nil {
		return err
	}

	st, err := currentStatus(cfg, cfg.DBPath(), pathutil.StatusFilePath())
	if err != nil {
		return err
	}

	fmt.Fprintln(config.Stdout, statusText(st))

	return nil
}

// statusText renders a one-line summary of the countdown.
func statusText(st models.Status) string {
	progress := ui.Highlight(
		session.NewProgress(st.Total, st.RemainingSeconds).String() + "%",
	)

	return fmt.Sprintf(
		"🕒 %s remaining (%s) [%s]",
		ui.Clock(timeutil.Clock(st.RemainingSeconds)),
		progress,
		st.State,
	)
}

// statsAction prints the statistics, or serves them as a web page.
func statsAction(ctx *cli.Context) error {
	cfg, err := loadConfig(ctx, false)
	if err != nil {
		return err
	}

	ui.DarkTheme = cfg.Display.DarkTheme

	dbPath, statusPath := cfg.DBPath(), pathutil.StatusFilePath()

	if ctx.Bool("serve") {
		reader := stateReaderFunc(func() ([]byte, error) {
			st, err := currentStatus(cfg, dbPath, statusPath)
			if err != nil {
				return nil, err
			}

			return st.Encode()
		})

		sigCtx, stop := signal.NotifyContext(
			ctx.Context,
			os.Interrupt,
			syscall.SIGTERM,
		)
		defer stop()

		return stats.NewServer(reader, totalSeconds(cfg)).
			ListenAndServe(sigCtx, ctx.Uint("port"))
	}

	st, err := currentStatus(cfg, dbPath, statusPath)
	if err != nil {
		return err
	}

	s := stats.FromSnapshot(st.Snapshot, st.Total)

	if ctx.Bool("json") {
		b, err := s.ToJSON()
		if err != nil {
			return err
		}

		fmt.Fprintln(config.Stdout, string(b))

		return nil
	}

	return stats.Show(config.Stdout, s)
}

// stateReaderFunc adapts a function to stats.StateReader.
type stateReaderFunc func() ([]byte, error)

func (f stateReaderFunc) GetState() ([]byte, error) {
	return f()
}

// sessionsAction lists the recorded sessions.
func sessionsAction(ctx *cli.Context) error {
	if ctx.Bool("json") && ctx.Bool("yaml") {
		return errFormatConflict
	}

	var since time.Time

	if s := ctx.String("since"); s != "" {
		t, err := timeutil.FromStr(s, time.Now())
		if err != nil {
			return errInvalidSince.Fmt(s).Wrap(err)
		}

		since = t
	}

	cfg, err := loadConfig(ctx, false)
	if err != nil {
		return err
	}

	ui.DarkTheme = cfg.Display.DarkTheme

	st, err := currentStatus(cfg, cfg.DBPath(), pathutil.StatusFilePath())
	if err != nil {
		return err
	}

	format := formatTable

	switch {
	case ctx.Bool("json"):
		format = formatJSON
	case ctx.Bool("yaml"):
		format = formatYAML
	}

	return writeSessions(config.Stdout, filterSince(st.Sessions, since), format)
}

// resetAction discards all progress after confirmation.
func resetAction(ctx *cli.Context) error {
	cfg, err := loadConfig(ctx, false)
	if err != nil {
		return err
	}

	db, err := openStore(cfg, cfg.DBPath())
	if err != nil {
		if errors.Is(err, store.ErrMarathonRunning) {
			return errResetWhileRunning
		}

		return err
	}

	if db != nil {
		defer db.Close()
	}

	ctrl := newController(cfg, db)

	if !ctx.Bool("yes") {
		confirmed, err := confirmReset(ctrl)
		if err != nil {
			return err
		}

		if !confirmed {
			pterm.Info.Println("Reset cancelled")
			return nil
		}
	}

	err = resetCountdown(ctrl, pathutil.StatusFilePath())
	if err != nil {
		return err
	}

	pterm.Success.Println("Countdown reset. Ready for a fresh start!")

	return nil
}

// editConfigAction handles the edit-config command which opens the marathon
// config file in the user's default text editor.
func editConfigAction(_ *cli.Context) error {
	defaultEditor := "nano"

	if runtime.GOOS == osutil.Windows {
		defaultEditor = "C:\\Windows\\system32\\notepad.exe"
	}

	editor := firstNonEmptyString(
		os.Getenv("VISUAL"),
		os.Getenv("EDITOR"),
		defaultEditor,
	)

	//nolint:gosec // the editor is chosen by the user
	cmd := exec.Command(editor, pathutil.ConfigFilePath())

	cmd.Stderr = os.Stderr
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout

	return cmd.Run()
}

func beforeAction(ctx *cli.Context) error {
	if err := pathutil.Initialize(); err != nil {
		return err
	}

	if err := static.Install(); err != nil {
		slog.Warn("installing static files", slog.Any("error", err))
	}

	// Override the default help template
	cli.AppHelpTemplate = helpText()

	// Override the default version printer
	oldVersionPrinter := cli.VersionPrinter
	cli.VersionPrinter = func(c *cli.Context) {
		oldVersionPrinter(c)
		fmt.Printf(
			"https://github.com/ayoisaiah/marathon/releases/%s\n",
			c.App.Version,
		)

		if _, found := os.LookupEnv(envUpdateNotifier); found {
			checkForUpdates(c.App)
		}
	}

	pterm.Error.MessageStyle = pterm.NewStyle(pterm.FgRed)
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "ERROR",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}

	// Disable colour output if NO_COLOR is set
	if _, exists := os.LookupEnv(envNoColor); exists {
		disableStyling()
	}

	// Disable colour output if MARATHON_NO_COLOR is set
	if _, exists := os.LookupEnv(envMarathonNoColor); exists {
		disableStyling()
	}

	if ctx.Bool("no-color") {
		disableStyling()
	}

	return nil
}
