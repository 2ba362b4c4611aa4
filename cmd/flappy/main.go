// flappy is a Flappy Bird clone that runs in the terminal or in a window.
//
// Usage:
//
//	flappy               - Play in the terminal
//	flappy window        - Play in a desktop window
//	flappy config        - Print the effective settings as YAML
//
// Global flags:
//
//	--config <path>      - Settings file (default: ~/.flappy/config.yaml, ./configs/flappy.yaml)
//	--seed <value>       - RNG seed for reproducible gap heights
//	--fps <rate>         - Override game_settings.fps
//	--log-level <level>  - debug, info, warn or error
//	--log-file <path>    - Write logs to a file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/platform/tui"
)

var (
	// Global flags
	flagConfig   string
	flagSeed     int64
	flagFPS      int
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "flappy",
	Short: "Flappy Bird in your terminal",
	Long: `Guide the bird through the gaps between scrolling walls.
Every pair of walls you pass scores a point; touching a wall or
the ground ends the game.

Controls:
  Space/Up/W - Flap (restart after game over)
  R          - Restart
  Ctrl+S     - Save a text screenshot
  Q/Esc      - Quit

Examples:
  flappy
  flappy --seed 42
  flappy --config ./my-flappy.yaml --log-file flappy.log --log-level debug
  flappy window`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runTerminal,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to settings YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate (0 = use game_settings.fps)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(configCmd)
}

func runTerminal(_ *cobra.Command, _ []string) error {
	// The terminal UI owns stdout, so logs only go to --log-file.
	s, err := newSession(true)
	if err != nil {
		return err
	}
	defer s.Close()

	rc := terminalConfig(s.settings.Game.FPS, s.seed, func() (int, int, error) {
		return term.GetSize(int(os.Stdout.Fd()))
	})
	s.logger.Info("starting terminal game", "width", rc.ScreenW, "height", rc.ScreenH, "fps", rc.TickRate, "seed", rc.Seed)

	if err := tui.Run(s.newSimulation(), rc, s.logger); err != nil {
		s.logger.Error("terminal game failed", "error", err)
		return err
	}
	return nil
}

// terminalConfig builds the terminal runtime config. The default 80x24 size
// is kept when the terminal size cannot be read.
func terminalConfig(fps int, seed int64, size func() (int, int, error)) core.RuntimeConfig {
	rc := core.DefaultConfig()
	if w, h, err := size(); err == nil && w > 0 && h > 0 {
		rc.ScreenW = w
		rc.ScreenH = h
	}
	rc.TickRate = fps
	rc.Seed = seed
	return rc
}
