// Package config provides the shared configuration store for headcursor.
//
// Settings are plain integers (cursor speed per direction, pointer and
// blendshape smoothing, gesture hold delay) grouped into named profiles.
// One profile is active at a time; the panel and the mouse-control service
// read from it.
//
// # Configuration File Location
//
//   - Linux: $XDG_CONFIG_HOME/headcursor/config.yaml or $HOME/.config/headcursor/config.yaml
//   - macOS: $HOME/.config/headcursor/config.yaml
//   - Windows: %LOCALAPPDATA%\headcursor\config.yaml
//
// # Stage and Apply
//
// Writers stage values and then apply them as one commit:
//
//	store, err := config.Open("")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	store.Stage(config.KeyPointerSmooth, 20)
//	if err := store.Apply(); err != nil {
//	    log.Printf("save failed: %v", err)
//	}
//
// Apply always commits in memory; a returned error only means the file
// could not be written.
//
// # External Changes
//
// Watch follows the file with fsnotify. When another process switches the
// profile or the file is edited by hand, the store reloads and the
// callback fires so views can refresh. The store's own saves are
// recognised and ignored.
//
// # Thread Safety
//
// Store methods lock an internal mutex. File writes are atomic
// (temporary file plus rename).
package config
