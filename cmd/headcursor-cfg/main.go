// Headcursor-cfg tunes how the head-tracking mouse cursor responds.
//
// Running without arguments opens the settings panel: one slider and
// numeric entry per setting, saved to the config file as you change
// them. The subcommands read and write the same file for scripting.
//
// Usage:
//
//	headcursor-cfg [command] [flags]
//
// See 'headcursor-cfg --help' for available commands.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/muurk/headcursor/internal/config"
	"github.com/muurk/headcursor/internal/logging"
	"github.com/muurk/headcursor/internal/version"
)

// Global flags
var (
	configPath string
	logLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "headcursor-cfg",
	Short: "Head cursor settings",
	Long: `Adjust how the head-tracking mouse cursor moves.

Opens the settings panel when no command is given. Changes are saved to
the active profile as soon as they are made, and a running tracker picks
them up from the config file.`,
	Version:       version.Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Commands print to stdout, so logs go to stderr
		return logging.Initialize(logLevel, "stderr")
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logging.Sync()
	},
	RunE: runPanel,
}

func init() {
	// Disable automatic completion command generation
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default is the user config dir)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error (default $"+logging.LogLevelEnvVar+" or off)")

	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("headcursor-cfg %s\n", version.Full())
	},
}

// openStore opens the config file selected by --config.
func openStore() (*config.Store, error) {
	store, err := config.Open(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open config: %w", err)
	}
	return store, nil
}
