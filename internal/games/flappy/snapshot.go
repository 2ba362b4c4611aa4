package flappy

import (
	"fmt"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Phase is the game state.
type Phase int

const (
	PhaseActive Phase = iota
	PhaseEnded
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	if p == PhaseEnded {
		return "ended"
	}
	return "active"
}

// EventKind identifies something that happened during a step.
type EventKind int

const (
	EventSpawned        EventKind = iota // A new pair entered on the right
	EventScored                          // A pair was passed
	EventTouchedCeiling                  // The avatar hit the top edge
	EventHitGround                       // The avatar hit the bottom edge, game over
	EventCollided                        // The avatar hit a wall, game over
	EventRestarted                       // The game was reset
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventSpawned:
		return "spawned"
	case EventScored:
		return "scored"
	case EventTouchedCeiling:
		return "touched_ceiling"
	case EventHitGround:
		return "hit_ground"
	case EventCollided:
		return "collided"
	case EventRestarted:
		return "restarted"
	default:
		return fmt.Sprintf("event(%d)", int(k))
	}
}

// Event is emitted by Step. Score is the score right after the event.
type Event struct {
	Kind  EventKind
	Score int
}

// Ends reports whether the event moved the game to PhaseEnded.
func (e Event) Ends() bool {
	return e.Kind == EventHitGround || e.Kind == EventCollided
}

// StepResult is returned by Simulation.Step after each tick.
type StepResult struct {
	Snapshot Snapshot
	Events   []Event
}

// ObstacleView is one wall as seen by a presenter.
type ObstacleView struct {
	Rect        core.Rect
	Orientation Orientation
}

// Snapshot is everything a presenter needs to draw one frame.
type Snapshot struct {
	Phase     Phase
	Avatar    core.Rect
	Obstacles []ObstacleView // Spawn order, top wall before bottom wall
	Score     int
	Ticks     int
	Width     float64 // World size
	Height    float64
	Texts     config.TextSettings
}

// ScoreText returns the score line, e.g. "Score: 3".
func (s Snapshot) ScoreText() string {
	return fmt.Sprintf("%s%d", s.Texts.ScorePrefix, s.Score)
}

// GameOver reports whether the game has ended.
func (s Snapshot) GameOver() bool {
	return s.Phase == PhaseEnded
}
