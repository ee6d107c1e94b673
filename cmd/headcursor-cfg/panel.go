package main

import (
	"errors"
	"fmt"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/muurk/headcursor/internal/config"
	"github.com/muurk/headcursor/internal/logging"
	"github.com/muurk/headcursor/internal/mouse"
	"github.com/muurk/headcursor/internal/tui"
	"github.com/muurk/headcursor/internal/ui"
)

// logFileName is written next to the config file while the panel runs.
const logFileName = "headcursor.log"

func runPanel(cmd *cobra.Command, args []string) error {
	if !ui.IsTerminal() {
		return errors.New("the settings panel needs a terminal; use 'headcursor-cfg get' and 'set' from scripts")
	}

	store, err := openStore()
	if err != nil {
		return err
	}

	// The panel owns the screen, so logs go to a file
	if err := logging.Initialize(logLevel, filepath.Join(filepath.Dir(store.Path()), logFileName)); err != nil {
		return err
	}
	logging.Info("Panel starting", zap.String("config", store.Path()), zap.String("profile", store.CurrentProfile()))

	page, err := tui.NewPageModel(store, mouse.NewController(store))
	if err != nil {
		return err
	}

	p := tea.NewProgram(page, tea.WithAltScreen(), tea.WithMouseAllMotion())

	watcher, err := config.Watch(store, config.DefaultDebounce, func() {
		p.Send(tui.ProfileChangedMsg{})
	})
	if err != nil {
		// The panel still works; it just won't follow external edits
		logging.Warn("Config watcher unavailable", zap.Error(err))
	} else {
		defer watcher.Close()
	}

	if _, err := p.Run(); err != nil {
		logging.Error("Panel exited with error", zap.Error(err))
		return fmt.Errorf("panel error: %w", err)
	}
	return nil
}
