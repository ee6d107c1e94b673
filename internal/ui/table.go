package ui

import (
	"fmt"
	"strings"
)

// SettingRow is one line of a settings table.
type SettingRow struct {
	Key   string
	Value int
	Min   int
	Max   int
}

// RenderSettings renders one line per row: key, value, range and a bar
// showing where the value sits in its range.
func RenderSettings(rows []SettingRow) string {
	lines := make([]string, 0, len(rows))
	for _, r := range rows {
		lines = append(lines, "  "+
			TableKeyStyle.Render(r.Key)+
			TableValueStyle.Render(fmt.Sprint(r.Value))+"  "+
			TableRangeStyle.Render(fmt.Sprintf("[%d, %d]", r.Min, r.Max))+
			renderBar(r.Value, r.Min, r.Max, BarWidth))
	}
	return strings.Join(lines, "\n")
}

// renderBar draws a width-cell bar filled in proportion to v within
// [min, max].
func renderBar(v, min, max, width int) string {
	filled := 0
	if max > min {
		filled = (v - min) * width / (max - min)
	}
	filled = clampInt(filled, 0, width)
	return BarFilledStyle.Render(strings.Repeat("█", filled)) +
		BarEmptyStyle.Render(strings.Repeat("░", width-filled))
}

// RenderProfiles lists profile names, marking the active one.
func RenderProfiles(names []string, active string) string {
	lines := make([]string, 0, len(names))
	for _, name := range names {
		if name == active {
			lines = append(lines, "  "+ActiveMarkerStyle.Render(ActiveMarker+" "+name))
			continue
		}
		lines = append(lines, "    "+name)
	}
	return strings.Join(lines, "\n")
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
