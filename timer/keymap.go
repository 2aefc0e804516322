package timer

import (
	"github.com/charmbracelet/bubbles/key"
)

type keymap struct {
	togglePlay key.Binding
	reset      key.Binding
	enter      key.Binding
	esc        key.Binding
	quit       key.Binding
}

func newKeymap() keymap {
	return keymap{
		togglePlay: key.NewBinding(
			key.WithKeys("p", " "),
			key.WithHelp("space", "start"),
		),
		reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reset"),
		),
		enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "dismiss"),
		),
		esc: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "dismiss"),
		),
		quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}
