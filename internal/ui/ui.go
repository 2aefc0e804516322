// Package ui holds console styling helpers shared by the commands
package ui

import (
	"fmt"
	"io"

	"github.com/pterm/pterm"
)

// DarkTheme selects the light variant of every colour so that text stays
// readable on a dark terminal background.
var DarkTheme bool

type swatch struct {
	light pterm.Color
	dark  pterm.Color
}

func (s swatch) paint(a any) string {
	if DarkTheme {
		return s.dark.Sprint(a)
	}

	return s.light.Sprint(a)
}

var (
	value     = swatch{light: pterm.FgGreen, dark: pterm.FgLightGreen}
	clock     = swatch{light: pterm.FgYellow, dark: pterm.FgLightYellow}
	milestone = swatch{light: pterm.FgMagenta, dark: pterm.FgLightMagenta}
	highlight = swatch{light: pterm.FgBlack, dark: pterm.FgLightWhite}
)

// Value colours a figure such as a duration or a percentage.
func Value(a any) string {
	return value.paint(a)
}

// Clock colours a countdown reading.
func Clock(a any) string {
	return clock.paint(a)
}

// Milestone colours headings and completed targets.
func Milestone(a any) string {
	return milestone.paint(a)
}

func Highlight(a any) string {
	return highlight.paint(a)
}

// Table writes rows as a boxed table whose first row is the header.
func Table(w io.Writer, rows [][]string) error {
	str, err := pterm.DefaultTable.
		WithBoxed().
		WithHasHeader().
		WithData(rows).
		Srender()
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(w, str)

	return err
}
