// Package tui implements the terminal settings panel for head cursor tuning.
//
// The panel is a single Bubble Tea page. It shows a title, a short
// description and one row per tunable parameter. Each row has a bold
// label, a slider track and a numeric entry. The rows come from
// tuning.CursorParams and are driven by a tuning.RowSet, so all commit
// and validation rules live in the tuning package. This package only
// turns keyboard and mouse events into row gestures and draws the result.
//
// # Layout
//
// Rows start directly below the header block, three lines each:
//
//	  Label (?)
//	    ━━━━━━━━━●─────────────  40
//	  <blank>
//
// Mouse hit-testing measures the rendered header block with
// lipgloss.Height, so the header may change height (for example when the
// description wraps) without breaking drags.
//
// # Input
//
// Mouse: press on a track starts a drag and moves the knob, motion keeps
// dragging, release commits. Pressing an entry focuses it for typing.
// Hovering a label marked (?) shows its help text.
//
// Keyboard:
//   - ↑/↓, tab: Move between rows
//   - ←/→: One slider step; shift for ten
//   - home/end: Minimum/maximum
//   - enter: Type a value; enter or esc to finish
//   - y: Copy the active profile as YAML
//   - ?: Toggle full help
//   - q, ctrl+c: Quit
//
// # Usage Example
//
//	store, _ := config.Open("")
//	ctrl := mouse.NewController(store)
//	page, err := tui.NewPageModel(store, ctrl)
//	if err != nil {
//	    return err
//	}
//	p := tea.NewProgram(page, tea.WithAltScreen(), tea.WithMouseAllMotion())
//	_, err = p.Run()
//
// When the config file changes on disk, send ProfileChangedMsg to the
// program; the page reloads every row from the store.
package tui
