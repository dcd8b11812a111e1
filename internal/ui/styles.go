package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/KyleKincer/tableyeah-foh/internal/floorplan"
	"github.com/KyleKincer/tableyeah-foh/internal/model"
)

// Color palette
var (
	ColorBase    = lipgloss.Color("#14141C")
	ColorSurface = lipgloss.Color("#22222E")
	ColorMuted   = lipgloss.Color("#7C7E92")
	ColorText    = lipgloss.Color("#D8DAE8")
	ColorAccent  = lipgloss.Color("#9D8CD6")
	ColorGreen   = lipgloss.Color("#a6e3a1")
	ColorRed     = lipgloss.Color("#f38ba8")
	ColorYellow  = lipgloss.Color("#f9e2af")
	ColorBlue    = lipgloss.Color("#89b4fa")
)

// Table status colors.
var (
	ColorAvailable = ColorGreen
	ColorSeated    = ColorBlue
	ColorUpcoming  = ColorYellow
	ColorOccupied  = ColorRed
)

// StatusColor returns the fill color for a table's status.
func StatusColor(status model.TableStatus) lipgloss.Color {
	switch status {
	case model.StatusAvailable:
		return ColorAvailable
	case model.StatusSeated:
		return ColorSeated
	case model.StatusUpcoming:
		return ColorUpcoming
	case model.StatusOccupied:
		return ColorOccupied
	default:
		return ColorMuted
	}
}

// BandColor returns the color for a turn-time band.
func BandColor(band floorplan.Band) lipgloss.Color {
	switch band {
	case floorplan.BandGreen:
		return ColorGreen
	case floorplan.BandAmber:
		return ColorYellow
	default:
		return ColorRed
	}
}

// Styles
var (
	HeaderStyle = lipgloss.NewStyle().
			Foreground(ColorAccent).
			Bold(true).
			Padding(0, 1)

	TitleStyle = lipgloss.NewStyle().
			Foreground(ColorAccent).
			Bold(true).
			Padding(0, 1).
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(ColorMuted)

	TableHeaderStyle = lipgloss.NewStyle().
				Foreground(ColorAccent).
				Bold(true).
				Padding(0, 1).
				Background(ColorSurface)

	SelectedRowStyle = lipgloss.NewStyle().
				Foreground(ColorBase).
				Background(ColorAccent)

	NormalRowStyle = lipgloss.NewStyle().
			Foreground(ColorText)

	FooterStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Padding(0, 1).
			BorderStyle(lipgloss.NormalBorder()).
			BorderTop(true).
			BorderForeground(ColorMuted)

	HelpKeyStyle = lipgloss.NewStyle().
			Foreground(ColorAccent)

	HelpDescStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorRed).
			Padding(0, 1)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(ColorGreen).
			Padding(0, 1)

	LabelStyle = lipgloss.NewStyle().
			Foreground(ColorAccent).
			Bold(true)

	BannerStyle = lipgloss.NewStyle().
			Foreground(ColorBase).
			Background(ColorAccent).
			Bold(true).
			Padding(0, 1)

	StatStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Padding(0, 1)

	BreadcrumbStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	BreadcrumbActiveStyle = lipgloss.NewStyle().
				Foreground(ColorAccent)

	EmptyStateStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Italic(true).
			Padding(2, 4)

	OfflineStyle = lipgloss.NewStyle().
			Foreground(ColorYellow).
			Padding(0, 1)

	StatusBarStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Padding(0, 1)
)
