// Package tuning implements the two-way binding between a configuration
// store and a set of tunable parameter rows, each shown as a label, a
// slider and a numeric text entry.
//
// The package knows nothing about terminals. A front end forwards widget
// events to a Row:
//
//   - Press, DragTo, Release for slider pointer gestures
//   - SetEntryText for every edit of the entry
//   - Step and JumpToStep for keyboard actuation of the slider
//
// and reads back Slider, EntryText, Errored and Dragging to draw.
//
// # Commit Rules
//
// A valid entry edit outside a drag stages the value, applies the store
// and asks the mouse-control service to recompute its smoothing kernel.
// During a drag, edits only move the slider; the release commits once.
// Invalid text marks the entry errored and touches nothing else.
//
// # Bounds
//
// Loading clips stored values into [1, MaxHoldTrigger] for every row.
// Entry edits accept [min, max) while ValidateEntryInput and the slider
// use [min, max]. Dragging a slider to its max therefore flags the
// entry, and the release still commits the max.
package tuning
