package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
)

// Model is the Bubble Tea model for running the game in a terminal.
type Model struct {
	sim        *flappy.Simulation
	screen     *core.Screen
	keys       KeyMap
	mapper     *KeyMapper
	help       help.Model
	logger     *log.Logger
	config     core.RuntimeConfig
	spawnEvery time.Duration
	pending    core.IntentSet
	snapshot   flappy.Snapshot
	quitting   bool
}

// NewModel creates a Bubble Tea model driving sim.
// The last row of the terminal is reserved for the help line.
func NewModel(sim *flappy.Simulation, cfg core.RuntimeConfig, logger *log.Logger) Model {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	keys := DefaultKeyMap()

	return Model{
		sim:        sim,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH-1),
		keys:       keys,
		mapper:     NewKeyMapper(keys),
		help:       help.New(),
		logger:     logger,
		config:     cfg,
		spawnEvery: sim.Settings().Wall.SpawnEvery(),
		pending:    core.NewIntentSet(),
		snapshot:   sim.Snapshot(),
	}
}

// Init starts the frame and spawn tick loops.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		tickCmd(m.config.TickInterval()),
		spawnCmd(m.spawnEvery),
	)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()

	case SpawnMsg:
		m.pending.Set(core.IntentSpawnTimerFired)
		return m, spawnCmd(m.spawnEvery)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		if path, err := m.saveScreenshot(); err != nil {
			m.logger.Warn("screenshot failed", "error", err)
		} else {
			m.logger.Info("screenshot saved", "path", path)
		}
		return m, nil
	}

	switch intent := m.mapper.MapKey(msg, m.snapshot.Phase); intent {
	case core.IntentQuit:
		m.quitting = true
		return m, tea.Quit
	case core.IntentNone:
	default:
		m.pending.Set(intent)
	}

	return m, nil
}

// handleResize processes terminal resize events.
// The world keeps its size; only the projection changes.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height-1)
	m.help.Width = msg.Width
	return m, nil
}

// handleTick runs one simulation step with the intents collected since the
// previous tick.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.sim.Step(m.pending)
	m.snapshot = result.Snapshot
	m.pending.Clear()

	for _, e := range result.Events {
		m.logger.Debug("event", "kind", e.Kind, "score", e.Score)
		if e.Ends() {
			m.logger.Info("game over", "reason", e.Kind, "score", e.Score, "ticks", result.Snapshot.Ticks)
		}
	}

	return m, tickCmd(m.config.TickInterval())
}

// saveScreenshot writes the current screen as plain text under ~/.flappy.
func (m Model) saveScreenshot() (string, error) {
	Draw(m.screen, m.snapshot)

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("tui: resolve home: %w", err)
	}
	dir := filepath.Join(home, ".flappy", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("tui: create screenshot dir: %w", err)
	}

	name := fmt.Sprintf("flappy_%s.txt", time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("tui: write screenshot: %w", err)
	}
	return path, nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	Draw(m.screen, m.snapshot)
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Run starts the Bubble Tea program and blocks until the player quits.
func Run(sim *flappy.Simulation, cfg core.RuntimeConfig, logger *log.Logger) error {
	p := tea.NewProgram(
		NewModel(sim, cfg, logger),
		tea.WithAltScreen(),
	)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
