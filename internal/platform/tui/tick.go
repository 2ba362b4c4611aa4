// Package tui provides the Bubble Tea presenter for the game.
// It handles the terminal UI loop, input mapping, and frame drawing.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a simulation step.
type TickMsg time.Time

// SpawnMsg is sent each time the obstacle spawn interval elapses.
type SpawnMsg time.Time

// tickCmd returns a Bubble Tea command that sends one tick after interval.
func tickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// spawnCmd returns a command that sends one SpawnMsg after interval.
// A non-positive interval disables spawning.
func spawnCmd(interval time.Duration) tea.Cmd {
	if interval <= 0 {
		return nil
	}
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return SpawnMsg(t)
	})
}
