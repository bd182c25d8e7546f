// Package styles defines the visual styling for the application.
package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/j-veylop/freshbox-analyzer/internal/models"
)

// Color definitions for the FreshBox theme.
var (
	// Primary colors
	Primary = lipgloss.Color("205") // Pink
	Subtle  = lipgloss.Color("240") // Gray

	// Category colors, matching the trend chart palette.
	FuelColor        = lipgloss.Color("33")  // Blue
	MaintenanceColor = lipgloss.Color("208") // Orange
	LaborColor       = lipgloss.Color("34")  // Green
	WarehouseColor   = lipgloss.Color("160") // Red

	// Status colors
	Error   = lipgloss.Color("196") // Red
	Warning = lipgloss.Color("220") // Yellow
	Info    = lipgloss.Color("39")  // Blue

	// Background colors
	BgDark   = lipgloss.Color("235")
	BgAccent = lipgloss.Color("236")

	// Text colors
	TextPrimary   = lipgloss.Color("252")
	TextSecondary = lipgloss.Color("245")
	TextMuted     = lipgloss.Color("240")

	// ToastStyle for floating notifications.
	ToastStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Primary).
			Padding(0, 1).
			MarginBottom(1)
)

// TitleStyle is used for main headings.
var TitleStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(Primary).
	MarginBottom(1)

// DocStyle provides consistent document margins.
var DocStyle = lipgloss.NewStyle().
	Margin(1, 2).
	Padding(0, 1)

// CardStyle creates a bordered card container.
var CardStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(Subtle).
	Padding(1, 2).
	MarginBottom(1)

// CardTitleStyle styles card headers.
var CardTitleStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(Primary).
	MarginBottom(1)

// HelpStyle is the base style for help text.
var HelpStyle = lipgloss.NewStyle().
	Foreground(TextMuted)

// HelpPanelStyle creates the help overlay panel.
var HelpPanelStyle = lipgloss.NewStyle().
	Border(lipgloss.DoubleBorder()).
	BorderForeground(Primary).
	Padding(1, 3).
	Background(BgDark)

// TableHeaderStyle styles table headers.
var TableHeaderStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(Primary).
	BorderStyle(lipgloss.NormalBorder()).
	BorderBottom(true).
	BorderForeground(Subtle)

// TableSelectedStyle styles selected table rows.
var TableSelectedStyle = lipgloss.NewStyle().
	Background(BgAccent).
	Foreground(TextPrimary).
	Bold(true)

// FlagStyle marks a raised fuel or on-time flag.
var FlagStyle = lipgloss.NewStyle().
	Foreground(Error).
	Bold(true)

// NoFlagStyle marks a clear flag.
var NoFlagStyle = lipgloss.NewStyle().
	Foreground(Subtle)

// TargetStyle highlights the optimization target wherever it is listed.
var TargetStyle = lipgloss.NewStyle().
	Foreground(Warning).
	Bold(true)

// ValueStyle styles figures in summary cards.
var ValueStyle = lipgloss.NewStyle().
	Foreground(TextPrimary).
	Bold(true)

// LabelStyle styles the labels next to figures in summary cards.
var LabelStyle = lipgloss.NewStyle().
	Foreground(TextSecondary)

// InfoTextStyle for info messages.
var InfoTextStyle = lipgloss.NewStyle().
	Foreground(Info)

// CategoryColor returns the palette color for a cost category.
func CategoryColor(c models.Category) lipgloss.Color {
	switch c {
	case models.CategoryFuel:
		return FuelColor
	case models.CategoryMaintenance:
		return MaintenanceColor
	case models.CategoryLabor:
		return LaborColor
	case models.CategoryWarehouse:
		return WarehouseColor
	default:
		return Subtle
	}
}

// CategoryStyle returns a foreground style in the category's color.
func CategoryStyle(c models.Category) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(CategoryColor(c))
}

// GetFlagStyle returns the style for a flag value.
func GetFlagStyle(raised bool) lipgloss.Style {
	if raised {
		return FlagStyle
	}
	return NoFlagStyle
}

// CenterBoth centers content both horizontally and vertically.
func CenterBoth(content string, width, height int) string {
	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center).
		AlignVertical(lipgloss.Center).
		Render(content)
}
