// Package flappy implements the Flappy Bird simulation core.
// The player controls a bird that must pass through gaps between pairs of
// scrolling walls. The package has no rendering or input-device dependency:
// presenters feed it intents and draw the snapshots it returns.
package flappy

import (
	"math/rand"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Simulation owns the avatar, the live obstacle pairs, the score and the
// game phase. It is not safe for concurrent use; one loop owns it and all
// mutation goes through Step and Reset.
type Simulation struct {
	cfg    config.Settings
	src    GapSource
	avatar *Avatar
	pairs  []*ObstaclePair // Spawn order, oldest first
	score  int
	phase  Phase
	ticks  int // Physics ticks since the last reset
}

// New creates a simulation using src for gap heights.
func New(cfg config.Settings, src GapSource) *Simulation {
	s := &Simulation{
		cfg:   cfg,
		src:   src,
		pairs: make([]*ObstaclePair, 0, 8),
	}
	s.Reset()
	return s
}

// NewSeeded creates a simulation with a deterministic gap source.
func NewSeeded(cfg config.Settings, seed int64) *Simulation {
	return New(cfg, rand.New(rand.NewSource(seed)))
}

// Reset replaces the avatar, clears all pairs and zeroes the score.
func (s *Simulation) Reset() {
	s.avatar = NewAvatar(s.cfg)
	s.pairs = s.pairs[:0]
	s.score = 0
	s.phase = PhaseActive
	s.ticks = 0
}

// Step advances the game by one tick.
//
// Intents are applied first, then physics: gravity and bounds, then every
// pair in spawn order (move, collide, score, mark off-screen), then removal
// of marked pairs. While ended only Restart has an effect.
func (s *Simulation) Step(in core.IntentSet) StepResult {
	var events []Event

	if s.phase == PhaseEnded {
		if in.Has(core.IntentRestart) {
			s.Reset()
			events = append(events, Event{Kind: EventRestarted})
		}
		return StepResult{Snapshot: s.Snapshot(), Events: events}
	}

	if in.Has(core.IntentJump) {
		s.avatar.Jump()
	}

	if in.Has(core.IntentSpawnTimerFired) {
		s.spawn()
		events = append(events, Event{Kind: EventSpawned, Score: s.score})
	}

	events = s.update(events)
	return StepResult{Snapshot: s.Snapshot(), Events: events}
}

// update runs one physics tick and appends what happened to events.
func (s *Simulation) update(events []Event) []Event {
	s.ticks++
	screenH := float64(s.cfg.Game.WindowHeight)

	s.avatar.ApplyGravity()
	switch s.avatar.CheckBounds(screenH) {
	case ContactBottom:
		s.phase = PhaseEnded
		return append(events, Event{Kind: EventHitGround, Score: s.score})
	case ContactTop:
		events = append(events, Event{Kind: EventTouchedCeiling, Score: s.score})
	}

	bird := s.avatar.Rect()
	marked := make([]bool, len(s.pairs))
	for i, p := range s.pairs {
		p.Tick()
		if p.CollidesWith(bird) {
			s.phase = PhaseEnded
			events = append(events, Event{Kind: EventCollided, Score: s.score})
			break
		}
		if p.CheckPass(bird) {
			s.score++
			events = append(events, Event{Kind: EventScored, Score: s.score})
		}
		marked[i] = p.Offscreen()
	}

	live := s.pairs[:0]
	for i, p := range s.pairs {
		if !marked[i] {
			live = append(live, p)
		}
	}
	clear(s.pairs[len(live):])
	s.pairs = live

	return events
}

// spawn appends a new pair at the right edge of the screen.
func (s *Simulation) spawn() {
	x := float64(s.cfg.Game.WindowWidth)
	s.pairs = append(s.pairs, NewObstaclePair(x, s.cfg.Wall, s.src))
}

// Avatar returns the player's avatar.
func (s *Simulation) Avatar() *Avatar {
	return s.avatar
}

// Pairs returns the live pairs in spawn order.
func (s *Simulation) Pairs() []*ObstaclePair {
	return s.pairs
}

// Score returns the number of pairs passed since the last reset.
func (s *Simulation) Score() int {
	return s.score
}

// Phase returns the current game phase.
func (s *Simulation) Phase() Phase {
	return s.phase
}

// Settings returns the configuration the simulation was built with.
func (s *Simulation) Settings() config.Settings {
	return s.cfg
}

// Snapshot returns the read-only state presenters draw from.
func (s *Simulation) Snapshot() Snapshot {
	obstacles := make([]ObstacleView, 0, len(s.pairs)*2)
	for _, p := range s.pairs {
		for _, o := range p.walls() {
			obstacles = append(obstacles, ObstacleView{
				Rect:        o.Rect(),
				Orientation: o.Orientation(),
			})
		}
	}

	return Snapshot{
		Phase:     s.phase,
		Avatar:    s.avatar.Rect(),
		Obstacles: obstacles,
		Score:     s.score,
		Ticks:     s.ticks,
		Width:     float64(s.cfg.Game.WindowWidth),
		Height:    float64(s.cfg.Game.WindowHeight),
		Texts:     s.cfg.Texts,
	}
}
