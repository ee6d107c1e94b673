package tui

import (
	"math"
	"strings"

	"github.com/muurk/headcursor/internal/tuning"
)

const (
	trackFilled = "━"
	trackEmpty  = "─"
	knob        = "●"
)

// renderSlider draws a slider track width cells wide with the knob at
// the slider's position.
func renderSlider(s tuning.Slider, width int, active bool) string {
	pos := knobCell(s.Fraction(), width)

	knobStyle := KnobStyle
	if active {
		knobStyle = ActiveKnobStyle
	}

	var b strings.Builder
	b.WriteString(TrackFilledStyle.Render(strings.Repeat(trackFilled, pos)))
	b.WriteString(knobStyle.Render(knob))
	b.WriteString(TrackEmptyStyle.Render(strings.Repeat(trackEmpty, width-pos-1)))
	return b.String()
}

// knobCell maps a fraction to the knob's cell within a track.
func knobCell(f float64, width int) int {
	if width <= 1 {
		return 0
	}
	return int(math.Round(f * float64(width-1)))
}

// fractionAt maps a terminal column to a track fraction. Columns left or
// right of the track clamp to its ends.
func fractionAt(x, trackX, width int) float64 {
	if width <= 1 {
		return 0
	}
	f := float64(x-trackX) / float64(width-1)
	return math.Max(0, math.Min(1, f))
}
