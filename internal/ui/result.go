package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ResultType indicates success or failure
type ResultType int

const (
	ResultSuccess ResultType = iota
	ResultFailure
)

// Result is a boxed outcome printed after a command finishes.
type Result struct {
	Type            ResultType
	Title           string  // e.g., "Saved spd_up"
	Details         []Param // Key-value details, in order
	Error           error   // Failure only
	Troubleshooting []string
	Width           int
}

// NewSuccessResult creates a success result box
func NewSuccessResult(title string, details ...Param) *Result {
	return &Result{
		Type:    ResultSuccess,
		Title:   title,
		Details: details,
		Width:   GetTerminalWidth(),
	}
}

// NewFailureResult creates a failure result box
func NewFailureResult(title string, err error, troubleshooting ...string) *Result {
	return &Result{
		Type:            ResultFailure,
		Title:           title,
		Error:           err,
		Troubleshooting: troubleshooting,
		Width:           GetTerminalWidth(),
	}
}

// SetWidth sets the terminal width for responsive rendering
func (r *Result) SetWidth(width int) *Result {
	r.Width = width
	return r
}

// Render returns the styled result box as a string
func (r *Result) Render() string {
	width := clampWidth(r.Width)

	border := SuccessColor
	title := SuccessTitleStyle.Render(fmt.Sprintf(" %s  %s", SuccessMarker, r.Title))
	if r.Type == ResultFailure {
		border = ErrorColor
		title = ErrorTitleStyle.Render(fmt.Sprintf(" %s  %s", FailureMarker, r.Title))
	}

	lines := []string{title}

	if len(r.Details) > 0 {
		lines = append(lines, "")
		for _, d := range r.Details {
			lines = append(lines, ResultKeyStyle.Render(" "+d.Key+":")+" "+ResultValueStyle.Render(d.Value))
		}
	}

	if r.Error != nil {
		lines = append(lines, "", ErrorMessageStyle.Render(" Error: "+r.Error.Error()))
	}

	if len(r.Troubleshooting) > 0 {
		lines = append(lines, "", TroubleshootingTitleStyle.Render(" Try:"))
		for _, tip := range r.Troubleshooting {
			lines = append(lines, TroubleshootingItemStyle.Render("   • "+tip))
		}
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Width(width-2).
		Padding(0, 1).
		Render(strings.Join(lines, "\n"))
}

// String implements fmt.Stringer
func (r *Result) String() string {
	return r.Render()
}
