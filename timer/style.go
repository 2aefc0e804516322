package timer

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/ayoisaiah/marathon/internal/config"
)

const (
	padding  = 2
	maxWidth = 80
)

// Style holds the lipgloss styles used by the views.
type Style struct {
	Base      lipgloss.Style
	Title     lipgloss.Style
	Main      lipgloss.Style
	Secondary lipgloss.Style
	Hint      lipgloss.Style
	Notice    lipgloss.Style
	Warning   lipgloss.Style
	Error     lipgloss.Style
	Dialog    lipgloss.Style
	Table     lipgloss.Style
}

// NewStyle derives the view styles from the display settings.
func NewStyle(cfg config.DisplayConfig) Style {
	accent := lipgloss.Color(cfg.Color)

	secondary := lipgloss.AdaptiveColor{Light: "#3C3C3C", Dark: "#DDDDDD"}
	hint := lipgloss.AdaptiveColor{Light: "#777777", Dark: "#888888"}

	if !cfg.DarkTheme {
		secondary = lipgloss.AdaptiveColor{Light: "#3C3C3C", Dark: "#3C3C3C"}
	}

	return Style{
		Base:      lipgloss.NewStyle().Padding(1, padding),
		Title:     lipgloss.NewStyle().Bold(true).Foreground(accent),
		Main:      lipgloss.NewStyle().Bold(true).Foreground(accent),
		Secondary: lipgloss.NewStyle().Foreground(secondary),
		Hint:      lipgloss.NewStyle().Foreground(hint).MarginLeft(1),
		Notice:    lipgloss.NewStyle().Foreground(accent).Italic(true),
		Warning: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#F4A259")),
		Error: lipgloss.NewStyle().Foreground(lipgloss.Color("#E84855")),
		Dialog: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(1, padding).
			Align(lipgloss.Center),
		Table: lipgloss.NewStyle().Foreground(secondary).Padding(0, 1),
	}
}
