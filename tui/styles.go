package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/crask/mote/core"
)

// Theme holds the lipgloss styles for every highlight kind and for the
// chrome around the text area.
type Theme struct {
	MatchStyle         lipgloss.Style
	SelectedMatchStyle lipgloss.Style
	SelectionStyle     lipgloss.Style
	StatusBarStyle     lipgloss.Style
	MessageStyle       lipgloss.Style
	ErrorStyle         lipgloss.Style
	CommandBarStyle    lipgloss.Style
	TildeStyle         lipgloss.Style
}

var DefaultTheme = Theme{
	MatchStyle:         lipgloss.NewStyle().Background(lipgloss.Color("240")).Foreground(lipgloss.Color("255")),
	SelectedMatchStyle: lipgloss.NewStyle().Background(lipgloss.Color("220")).Foreground(lipgloss.Color("0")),
	SelectionStyle:     lipgloss.NewStyle().Background(lipgloss.Color("237")),
	StatusBarStyle:     lipgloss.NewStyle().Background(lipgloss.Color("236")).Foreground(lipgloss.Color("255")),
	MessageStyle:       lipgloss.NewStyle().Foreground(lipgloss.Color("34")),
	ErrorStyle:         lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	CommandBarStyle:    lipgloss.NewStyle().Background(lipgloss.Color("235")).Foreground(lipgloss.Color("255")),
	TildeStyle:         lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
}

// styleFor maps a resolved annotation type to its render style. Unstyled
// spans render as-is.
func (t Theme) styleFor(kind core.AnnotationType) (lipgloss.Style, bool) {
	switch kind {
	case core.AnnotationMatch:
		return t.MatchStyle, true
	case core.AnnotationSelectedMatch:
		return t.SelectedMatchStyle, true
	case core.AnnotationSelection:
		return t.SelectionStyle, true
	default:
		return lipgloss.Style{}, false
	}
}
