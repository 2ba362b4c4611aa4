package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective settings",
	Long: `Print the settings the game would run with, as YAML.

The output includes defaults for every key the loaded file leaves
out, so it can be saved as a starting point:

  flappy config > ~/.flappy/config.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func runConfig(cmd *cobra.Command, _ []string) error {
	s, err := newSession(false)
	if err != nil {
		return err
	}
	defer s.Close()

	data, err := config.Marshal(s.settings)
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}
