package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/muurk/headcursor/internal/config"
	"github.com/muurk/headcursor/internal/tuning"
	"github.com/muurk/headcursor/internal/ui"
)

// Command flags
var (
	exportClipboard bool
	addAndUse       bool
)

func init() {
	rootCmd.AddCommand(getCmd)
	rootCmd.AddCommand(setCmd)
	rootCmd.AddCommand(profileCmd)
	rootCmd.AddCommand(exportCmd)

	profileCmd.AddCommand(profileListCmd)
	profileCmd.AddCommand(profileUseCmd)
	profileCmd.AddCommand(profileAddCmd)
}

// getCmd prints settings of the active profile
var getCmd = &cobra.Command{
	Use:   "get [key]",
	Short: "Show settings of the active profile",
	Long: `Show the settings of the active profile.

With a key, prints just that value, for use in scripts.`,
	Example: `  # All settings with their ranges
  headcursor-cfg get

  # One value
  headcursor-cfg get hold_trigger_ms`,
	Args: cobra.MaximumNArgs(1),
	RunE: runGet,
}

func runGet(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}

	if len(args) == 1 {
		v, err := store.Value(args[0])
		if err != nil {
			return fmt.Errorf("%w (known keys: %s)", err, strings.Join(config.KnownKeys(), ", "))
		}
		fmt.Fprintln(cmd.OutOrStdout(), v)
		return nil
	}

	params := tuning.CursorParams()
	rows := make([]ui.SettingRow, 0, len(params))
	for _, p := range params {
		rows = append(rows, ui.SettingRow{Key: p.Key, Value: store.Get(p.Key), Min: p.Min, Max: p.Max})
	}

	fmt.Fprintln(cmd.OutOrStdout(), ui.NewHeader("Settings", "headcursor-cfg get",
		ui.Param{Key: "Profile", Value: store.CurrentProfile()},
		ui.Param{Key: "File", Value: store.Path()},
	))
	fmt.Fprintln(cmd.OutOrStdout())
	fmt.Fprintln(cmd.OutOrStdout(), ui.RenderSettings(rows))
	return nil
}

// setCmd writes one setting of the active profile
var setCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Change a setting of the active profile",
	Long: `Change one setting of the active profile and save it.

The value must be a whole number within the setting's range, as shown
by 'headcursor-cfg get'.`,
	Example: `  # Faster upward movement
  headcursor-cfg set spd_up 60

  # Longer hold before a gesture triggers
  headcursor-cfg set hold_trigger_ms 800`,
	Args: cobra.ExactArgs(2),
	RunE: runSet,
}

func runSet(cmd *cobra.Command, args []string) error {
	key, text := args[0], args[1]

	p, ok := tuning.ParamFor(key)
	if !ok {
		return fmt.Errorf("%w: %s (known keys: %s)", config.ErrUnknownKey, key, strings.Join(config.KnownKeys(), ", "))
	}

	if !tuning.ValidateEntryInput(text, p.Min, p.Max) {
		err := fmt.Errorf("invalid value %q for %s", text, key)
		fmt.Fprintln(cmd.OutOrStdout(), ui.NewFailureResult("Not saved", err,
			fmt.Sprintf("Use a whole number from %d to %d", p.Min, p.Max),
		))
		return err
	}
	v, _ := strconv.Atoi(text)

	store, err := openStore()
	if err != nil {
		return err
	}

	old := store.Get(key)
	store.Stage(key, v)
	if err := store.Apply(); err != nil {
		return fmt.Errorf("failed to save %s: %w", key, err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), ui.NewSuccessResult("Saved "+p.Title,
		ui.Param{Key: "Key", Value: key},
		ui.Param{Key: "Value", Value: fmt.Sprintf("%d (was %d)", v, old)},
		ui.Param{Key: "Profile", Value: store.CurrentProfile()},
	))
	return nil
}

// profileCmd groups profile management
var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Manage setting profiles",
	Long: `Manage named setting profiles.

Each profile holds a full set of cursor settings. The active profile is
the one the panel edits and the tracker uses.`,
}

var profileListCmd = &cobra.Command{
	Use:   "list",
	Short: "List profiles",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), ui.RenderProfiles(store.Profiles(), store.CurrentProfile()))
		return nil
	},
}

var profileUseCmd = &cobra.Command{
	Use:     "use <name>",
	Short:   "Switch the active profile",
	Example: `  headcursor-cfg profile use reading`,
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		if err := store.UseProfile(args[0]); err != nil {
			if errors.Is(err, config.ErrUnknownProfile) {
				return fmt.Errorf("%w (profiles: %s)", err, strings.Join(store.Profiles(), ", "))
			}
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), ui.NewSuccessResult("Switched profile",
			ui.Param{Key: "Profile", Value: args[0]},
		))
		return nil
	},
}

var profileAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Create a profile from the active one",
	Example: `  # Copy the active profile to "reading"
  headcursor-cfg profile add reading

  # Copy and switch to it
  headcursor-cfg profile add reading --use`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}

		from := store.CurrentProfile()
		if err := store.AddProfile(args[0]); err != nil {
			return err
		}
		if addAndUse {
			if err := store.UseProfile(args[0]); err != nil {
				return err
			}
		}

		fmt.Fprintln(cmd.OutOrStdout(), ui.NewSuccessResult("Created profile",
			ui.Param{Key: "Profile", Value: args[0]},
			ui.Param{Key: "Copied from", Value: from},
			ui.Param{Key: "Active", Value: store.CurrentProfile()},
		))
		return nil
	},
}

func init() {
	profileAddCmd.Flags().BoolVar(&addAndUse, "use", false, "Switch to the new profile")
}

// exportCmd prints the active profile as YAML
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Print the active profile as YAML",
	Example: `  headcursor-cfg export > my-settings.yaml
  headcursor-cfg export --clipboard`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}

		data, err := store.ExportProfile()
		if err != nil {
			return err
		}
		if _, err := cmd.OutOrStdout().Write(data); err != nil {
			return err
		}

		if exportClipboard {
			if err := clipboard.WriteAll(string(data)); err != nil {
				return fmt.Errorf("failed to copy to clipboard: %w", err)
			}
			fmt.Fprintln(os.Stderr, "Copied to clipboard")
		}
		return nil
	},
}

func init() {
	exportCmd.Flags().BoolVar(&exportClipboard, "clipboard", false, "Also copy to the clipboard")
}
