// Package ui renders output for the non-interactive headcursor-cfg
// commands.
//
// Unlike the settings panel in package tui, these components follow a
// "print once and exit" pattern:
//
//   - Header: Command banner showing the command and its parameters
//   - Result: Success or failure box with details and hints
//   - RenderSettings: Key, value, range and a bar per setting
//   - RenderProfiles: Profile names with the active one marked
//
// Example:
//
//	fmt.Println(ui.NewHeader("Settings", "headcursor-cfg get",
//	    ui.Param{Key: "Profile", Value: store.CurrentProfile()}))
//	fmt.Println(ui.RenderSettings(rows))
//
// Logging stays silent unless HEADCURSOR_LOG_LEVEL or --log-level is set,
// so zap output does not interleave with the rendered boxes.
package ui
