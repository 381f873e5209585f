package ui

import "github.com/charmbracelet/lipgloss"

var (
	fuchsia   = lipgloss.Color("#EE6FF8")
	mintGreen = lipgloss.AdaptiveColor{Light: "#1C8760", Dark: "#89F0CB"}
	red       = lipgloss.AdaptiveColor{Light: "#FF4672", Dark: "#ED567A"}
	subtle    = lipgloss.AdaptiveColor{Light: "#9B9B9B", Dark: "#5C5C5C"}
	gray      = lipgloss.AdaptiveColor{Light: "#656565", Dark: "#7D7D7D"}

	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFDF5")).
			Background(fuchsia).
			Padding(0, 1)

	appStyle = lipgloss.NewStyle().Padding(1, 2)

	labelStyles = map[labelKind]lipgloss.Style{
		labelInfo:    lipgloss.NewStyle().Foreground(gray),
		labelSuccess: lipgloss.NewStyle().Foreground(mintGreen).Bold(true),
		labelError:   lipgloss.NewStyle().Foreground(red),
	}

	playingStyle = lipgloss.NewStyle().Foreground(mintGreen)
	idleStyle    = lipgloss.NewStyle().Foreground(subtle)
	speedStyle   = lipgloss.NewStyle().Foreground(gray)

	padKeyStyle = lipgloss.NewStyle().
			Foreground(fuchsia).
			Padding(0, 1)
	padTitleStyle = lipgloss.NewStyle().Foreground(gray).Italic(true)
)
