package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/pluqqy/schemadeck/pkg/view"
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(view.ColorActive))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(view.ColorDim))

	statusStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("62")).
			Foreground(lipgloss.Color("230")).
			Padding(0, 1)

	editorBorderStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color(view.ColorActive)).
				Padding(0, 1)

	activeTabStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(view.ColorActive)).
			Underline(true)

	inactiveTabStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color(view.ColorInactive))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(view.ColorDanger))

	confirmDangerStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color(view.ColorDanger)).
				Bold(true)

	confirmSafeStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color(view.ColorSuccess)).
				Bold(true)
)
