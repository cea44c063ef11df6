// Package styles defines the visual styling for the application.
package styles

import "github.com/charmbracelet/lipgloss"

// Color definitions for the screentime theme.
var (
	// Primary colors
	Primary   = lipgloss.Color("205") // Pink
	Secondary = lipgloss.Color("63")  // Purple
	Subtle    = lipgloss.Color("240") // Gray

	// Status colors
	Success = lipgloss.Color("42")  // Green
	Error   = lipgloss.Color("196") // Red
	Warning = lipgloss.Color("220") // Yellow

	// Text colors
	TextPrimary   = lipgloss.Color("252")
	TextSecondary = lipgloss.Color("245")
	TextMuted     = lipgloss.Color("240")
)

// FrameWidth is the column width of the framed visual report.
const FrameWidth = 60

// TitleStyle is used for main headings.
var TitleStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(Primary)

// SubTitleStyle is used for section headings.
var SubTitleStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(Secondary)

// TotalStyle highlights the total screen time figure.
var TotalStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(TextPrimary)

// DividerStyle styles horizontal rules.
var DividerStyle = lipgloss.NewStyle().
	Foreground(Subtle)

// ActiveTabStyle styles the currently selected time range.
var ActiveTabStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("229")).
	Background(Primary).
	Padding(0, 2).
	MarginRight(1)

// InactiveTabStyle styles the other time ranges.
var InactiveTabStyle = lipgloss.NewStyle().
	Foreground(TextSecondary).
	Padding(0, 2).
	MarginRight(1)

// HelpStyle is the base style for help text.
var HelpStyle = lipgloss.NewStyle().
	Foreground(TextMuted)

// HelpKeyStyle styles keyboard shortcut keys.
var HelpKeyStyle = lipgloss.NewStyle().
	Foreground(Primary).
	Bold(true)

// HelpDescStyle styles help descriptions.
var HelpDescStyle = lipgloss.NewStyle().
	Foreground(TextSecondary)

// ErrorTextStyle for error messages.
var ErrorTextStyle = lipgloss.NewStyle().
	Foreground(Error)

// ShareHighStyle for applications taking a large share of the total.
var ShareHighStyle = lipgloss.NewStyle().
	Foreground(Error)

// ShareMediumStyle for applications taking a moderate share.
var ShareMediumStyle = lipgloss.NewStyle().
	Foreground(Warning)

// ShareLowStyle for everything else.
var ShareLowStyle = lipgloss.NewStyle().
	Foreground(Success)

// GetShareStyle returns the style for an application using percent of the
// total screen time.
func GetShareStyle(percent float64) lipgloss.Style {
	switch {
	case percent >= 30:
		return ShareHighStyle
	case percent >= 10:
		return ShareMediumStyle
	default:
		return ShareLowStyle
	}
}

// CenterHorizontal centers content horizontally within a given width.
func CenterHorizontal(content string, width int) string {
	return lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Render(content)
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
