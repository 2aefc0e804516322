package app

import (
	"os"

	"github.com/charmbracelet/huh"
	"github.com/pterm/pterm"

	"github.com/ayoisaiah/marathon/countdown"
	"github.com/ayoisaiah/marathon/internal/timeutil"
)

// confirmReset asks the user to confirm that all progress should be
// discarded.
func confirmReset(ctrl *countdown.Timer) (bool, error) {
	var confirmed bool

	description := pterm.Sprintf(
		"%s studied over %d sessions will be discarded permanently.",
		timeutil.HoursMins(ctrl.Total()-ctrl.Remaining()),
		len(ctrl.Sessions()),
	)

	err := huh.NewConfirm().
		Title("Reset the countdown?").
		Description(description).
		Affirmative("Reset").
		Negative("Cancel").
		Value(&confirmed).
		Run()
	if err != nil {
		return false, err
	}

	return confirmed, nil
}

// resetCountdown clears the countdown and saves the fresh state.
func resetCountdown(ctrl *countdown.Timer, statusPath string) error {
	ctrl.Reset()

	if statusPath != "" {
		_ = os.Remove(statusPath)
	}

	return ctrl.Persist()
}
