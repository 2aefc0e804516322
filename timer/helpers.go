package timer

import (
	"encoding/json"
	"os"
	"os/exec"
	"time"

	"github.com/gen2brain/beeep"
	"github.com/kballard/go-shellquote"

	"github.com/ayoisaiah/marathon/countdown"
	"github.com/ayoisaiah/marathon/internal/models"
	"github.com/ayoisaiah/marathon/internal/osutil"
	"github.com/ayoisaiah/marathon/internal/static"
)

// Alerter displays a desktop notification.
type Alerter func(title, message string) error

// DesktopAlert sends the notification through the platform's notification
// daemon.
func DesktopAlert(title, message string) error {
	err := beeep.Notify(title, message, static.IconPath())
	if err != nil {
		return errNotify.Wrap(err)
	}

	return nil
}

// runSessionCmd executes the specified command.
func runSessionCmd(sessionCmd string) error {
	if sessionCmd == "" {
		return nil
	}

	cmdSlice, err := shellquote.Split(sessionCmd)
	if err != nil {
		return errSessionCmd.Wrap(err)
	}

	if len(cmdSlice) == 0 {
		return nil
	}

	name := cmdSlice[0]
	args := cmdSlice[1:]

	//nolint:gosec // the command comes from the user's own config
	cmd := exec.Command(name, args...)

	return cmd.Run()
}

// writeStatusFile records the live state of the countdown for the status
// command.
func writeStatusFile(path string, ctrl *countdown.Timer, now time.Time) error {
	if path == "" {
		return nil
	}

	s := models.Status{
		Snapshot:  ctrl.Snapshot(),
		State:     string(ctrl.State()),
		Total:     ctrl.Total(),
		UpdatedAt: now,
	}

	b, err := json.Marshal(s)
	if err != nil {
		return errStatusFile.Wrap(err)
	}

	err = os.WriteFile(path, b, osutil.FilePermission)
	if err != nil {
		return errStatusFile.Wrap(err)
	}

	return nil
}

// removeStatusFile deletes the status file when marathon exits.
func removeStatusFile(path string) {
	if path == "" {
		return
	}

	_ = os.Remove(path)
}

// celebrationFrames is the emoji animation shown on completion.
var celebrationFrames = []string{
	"        🎉        ",
	"      🎊 🎉 🎊      ",
	"    ✨ 🎊 🎉 🎊 ✨    ",
	"  🌟 ✨ 🎊 🎉 🎊 ✨ 🌟  ",
	"🎈 🌟 ✨ 🎊 🎉 🎊 ✨ 🌟 🎈",
	"  🎈 🌟 ✨ 🏆 ✨ 🌟 🎈  ",
	"    🎈 🌟 🏆 🌟 🎈    ",
	"      🎈 🏆 🎈      ",
	"        🏆        ",
}

const celebrationInterval = 150 * time.Millisecond
