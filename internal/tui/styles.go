package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/headcursor/internal/version"
)

// Application branding constants
const (
	AppName = "HEADCURSOR"
)

// AppVersion returns the application version from the centralized version package
func AppVersion() string {
	return version.Version
}

// Layout constants for responsive terminal width
const (
	MinTerminalWidth = 60 // Minimum supported terminal width
	DefaultWidth     = 80 // Width used before the first WindowSizeMsg
	MinSliderWidth   = 20
	MaxSliderWidth   = 50
	EntryWidth       = 6 // Cells for the numeric entry, wide enough for "2000"
	ContentIndent    = 2 // Left margin of all page content
	ControlIndent    = 4 // Left margin of slider tracks
	EntryGap         = 2 // Cells between slider track and entry
)

// Color palette
var (
	PrimaryColor   = lipgloss.Color("#7D56F4") // Purple
	SecondaryColor = lipgloss.Color("#43BF6D") // Green
	WarningColor   = lipgloss.Color("#FFA500") // Orange
	ErrorColor     = lipgloss.Color("#FF0000") // Red

	TextColor      = lipgloss.Color("#FFFFFF")
	SubtleColor    = lipgloss.Color("#626262")
	BorderColor    = lipgloss.Color("#7D56F4")
	HighlightColor = lipgloss.Color("#43BF6D")

	// Entry backgrounds: normal and invalid input
	EntryBackground      = lipgloss.Color("236")
	EntryErrorBackground = lipgloss.Color("#ee9e9d")
	EntryErrorForeground = lipgloss.Color("#1A1A1A")
)

// Common styles
var (
	// Page title
	TitleStyle = lipgloss.NewStyle().
			Foreground(PrimaryColor).
			Bold(true)

	// Page description under the title
	DescriptionStyle = lipgloss.NewStyle().
				Foreground(SubtleColor)

	// Row label, bold like a form heading
	LabelStyle = lipgloss.NewStyle().
			Foreground(TextColor).
			Bold(true)

	// Row label when the row has focus
	FocusedLabelStyle = lipgloss.NewStyle().
				Foreground(HighlightColor).
				Bold(true)

	// Marker appended to labels that carry help text
	HelpMarkerStyle = lipgloss.NewStyle().
			Foreground(PrimaryColor)

	// Filled part of a slider track
	TrackFilledStyle = lipgloss.NewStyle().
				Foreground(PrimaryColor)

	// Empty part of a slider track
	TrackEmptyStyle = lipgloss.NewStyle().
			Foreground(SubtleColor)

	// Knob, idle and active
	KnobStyle = lipgloss.NewStyle().
			Foreground(TextColor).
			Bold(true)

	ActiveKnobStyle = lipgloss.NewStyle().
			Foreground(HighlightColor).
			Bold(true)

	// Numeric entry
	EntryStyle = lipgloss.NewStyle().
			Background(EntryBackground).
			Foreground(TextColor).
			Width(EntryWidth)

	// Numeric entry holding invalid input
	ErrorEntryStyle = lipgloss.NewStyle().
			Background(EntryErrorBackground).
			Foreground(EntryErrorForeground).
			Width(EntryWidth)

	// Tooltip box
	TooltipStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(BorderColor).
			Foreground(TextColor).
			Padding(0, 1)

	// Status line: success and failure
	StatusStyle = lipgloss.NewStyle().
			Foreground(SecondaryColor)

	StatusErrorStyle = lipgloss.NewStyle().
				Foreground(ErrorColor).
				Bold(true)

	// Help text style
	HelpStyle = lipgloss.NewStyle().
			Foreground(SubtleColor)
)

// BuildHeaderContent creates header content with app name, version and
// the active profile pinned right.
func BuildHeaderContent(profile string, width int) string {
	left := lipgloss.NewStyle().
		Foreground(TextColor).
		Bold(true).
		Render(AppName + " v" + AppVersion())

	right := lipgloss.NewStyle().
		Foreground(SubtleColor).
		Render("profile: " + profile)

	gap := width - lipgloss.Width(left) - lipgloss.Width(right) - 2*ContentIndent
	if gap < 1 {
		gap = 1
	}
	return indent(ContentIndent) + left + strings.Repeat(" ", gap) + right
}

// RenderDivider renders a horizontal rule across width cells.
func RenderDivider(width int) string {
	if width < 1 {
		width = 1
	}
	return lipgloss.NewStyle().
		Foreground(BorderColor).
		Render(strings.Repeat("─", width))
}

// CalculateContentWidth clamps the terminal width to the supported minimum.
func CalculateContentWidth(terminalWidth int) int {
	if terminalWidth <= 0 {
		return DefaultWidth
	}
	if terminalWidth < MinTerminalWidth {
		return MinTerminalWidth
	}
	return terminalWidth
}

// SliderWidthFor returns the slider track width that fits the terminal.
func SliderWidthFor(terminalWidth int) int {
	w := CalculateContentWidth(terminalWidth) - ControlIndent - EntryGap - EntryWidth - ContentIndent
	if w < MinSliderWidth {
		return MinSliderWidth
	}
	if w > MaxSliderWidth {
		return MaxSliderWidth
	}
	return w
}

func indent(n int) string {
	return strings.Repeat(" ", n)
}
