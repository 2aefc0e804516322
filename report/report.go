// Package report prints user-facing messages to the terminal
package report

import (
	"os"

	"github.com/pterm/pterm"

	"github.com/ayoisaiah/marathon/internal/osutil"
)

func Success(msg string) {
	pterm.Success.Println(msg)
}

func Info(msg string) {
	pterm.Info.Println(msg)
}

func Warn(msg string) {
	pterm.Warning.Println(msg)
}

func Error(err error) {
	pterm.Error.Println(err)
}

// Quit prints the error and exits with a non-zero status.
func Quit(err error) {
	pterm.Error.Println(err)
	os.Exit(int(osutil.ExitError))
}
