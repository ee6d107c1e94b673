// Package logging provides structured logging for headcursor.
//
// This package wraps a package-level zap logger with convenience functions.
// Logging is silent unless a level is passed explicitly or the
// HEADCURSOR_LOG_LEVEL environment variable is set.
//
// # Log Levels
//
//   - Debug: slider movements, suppressed entry updates, watcher events
//   - Info: committed settings, profile switches, external reloads
//   - Warn: failed saves, unreadable config files during reload
//   - Error: startup failures
//
// # Output
//
// CLI subcommands log to stderr, leaving stdout to command output. The
// interactive panel runs in the terminal's alternate screen, so it logs to a
// file next to the config file instead:
//
//	if err := logging.Initialize(level, filepath.Join(dir, "headcursor.log")); err != nil {
//	    return err
//	}
//	defer logging.Sync()
//
// # Thread Safety
//
// All logging functions are safe for concurrent use. The underlying zap logger
// handles synchronization automatically.
package logging
