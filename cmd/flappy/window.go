package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/platform/window"
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Open the game in a desktop window.

The window uses the images and font named in the settings
(bg.jpg, bird.png and wall.png by default), resolved against
the current directory. A missing asset aborts startup.

Controls:
  Space  - Flap (restart after game over)
  Esc    - Quit

Examples:
  flappy window
  flappy window --fps 30 --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runWindow,
}

func runWindow(_ *cobra.Command, _ []string) error {
	s, err := newSession(false)
	if err != nil {
		return err
	}
	defer s.Close()

	s.logger.Info("starting window game", "seed", s.seed)

	if err := window.Run(s.newSimulation(), s.logger); err != nil {
		s.logger.Error("window game failed", "error", err)
		return err
	}
	return nil
}
