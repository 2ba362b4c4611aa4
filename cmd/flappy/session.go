package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
)

// session holds what every command needs before starting a presenter.
type session struct {
	settings config.Settings
	seed     int64
	logger   *log.Logger
	logFile  *os.File
}

// newSession sets up logging and loads settings from the global flags.
// quiet discards logs unless --log-file is set.
func newSession(quiet bool) (*session, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}

	s := &session{}

	var out io.Writer = os.Stderr
	if quiet {
		out = io.Discard
	}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		s.logFile = f
		out = f
	}

	s.logger = log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "flappy",
		Level:           level,
	})

	settings, err := config.Load(flagConfig)
	if err != nil {
		s.logger.Warn("using default settings", "error", err)
	}
	s.settings = applyOverrides(settings, flagFPS)
	s.seed = resolveSeed(flagSeed, time.Now())

	return s, nil
}

// applyOverrides applies command-line overrides on top of loaded settings.
func applyOverrides(s config.Settings, fps int) config.Settings {
	if fps > 0 {
		s.Game.FPS = fps
	}
	return s
}

// resolveSeed returns seed, or a time-based seed when it is zero.
func resolveSeed(seed int64, now time.Time) int64 {
	if seed == 0 {
		return now.UnixNano()
	}
	return seed
}

func (s *session) newSimulation() *flappy.Simulation {
	return flappy.NewSeeded(s.settings, s.seed)
}

// Close releases the log file, if any.
func (s *session) Close() {
	if s.logFile != nil {
		//nolint:errcheck // Best-effort close on exit
		s.logFile.Close()
	}
}
