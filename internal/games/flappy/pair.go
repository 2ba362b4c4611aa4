package flappy

import (
	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// GapSource draws the random opening height of a new pair.
// *rand.Rand satisfies it; tests inject a fixed source.
type GapSource interface {
	Intn(n int) int
}

// ObstaclePair couples a top and bottom wall around one shared gap.
type ObstaclePair struct {
	top      *Obstacle
	bottom   *Obstacle
	openingY float64 // Bottom edge of the top wall
	gap      float64
	scored   bool
}

// NewObstaclePair spawns a pair at x. The opening height is drawn uniformly
// from [min_height, max_height]; the bottom wall starts gap_height below it.
func NewObstaclePair(x float64, cfg config.WallSettings, src GapSource) *ObstaclePair {
	opening := cfg.MinHeight
	if span := cfg.MaxHeight - cfg.MinHeight; span > 0 {
		opening += src.Intn(span + 1)
	}

	openingY := float64(opening)
	return &ObstaclePair{
		top:      NewObstacle(x, openingY, OrientationTop, cfg),
		bottom:   NewObstacle(x, openingY+cfg.GapHeight, OrientationBottom, cfg),
		openingY: openingY,
		gap:      cfg.GapHeight,
	}
}

// Tick moves both walls in lockstep.
func (p *ObstaclePair) Tick() {
	p.top.Tick()
	p.bottom.Tick()
}

// CollidesWith reports whether either wall overlaps r.
func (p *ObstaclePair) CollidesWith(r core.Rect) bool {
	return p.top.CollidesWith(r) || p.bottom.CollidesWith(r)
}

// CheckPass returns true at most once per pair, even when both walls
// satisfy their own pass condition.
func (p *ObstaclePair) CheckPass(r core.Rect) bool {
	if p.scored {
		return false
	}
	for _, o := range p.walls() {
		if o.CheckPass(r) {
			p.scored = true
			return true
		}
	}
	return false
}

// Offscreen reports whether both walls have left the screen.
func (p *ObstaclePair) Offscreen() bool {
	return p.top.Offscreen() && p.bottom.Offscreen()
}

// Top returns the upper wall.
func (p *ObstaclePair) Top() *Obstacle {
	return p.top
}

// Bottom returns the lower wall.
func (p *ObstaclePair) Bottom() *Obstacle {
	return p.bottom
}

// OpeningY returns the randomized y where the gap starts.
func (p *ObstaclePair) OpeningY() float64 {
	return p.openingY
}

// GapHeight returns the vertical size of the gap.
func (p *ObstaclePair) GapHeight() float64 {
	return p.gap
}

// Scored reports whether this pair already counted toward the score.
func (p *ObstaclePair) Scored() bool {
	return p.scored
}

func (p *ObstaclePair) walls() [2]*Obstacle {
	return [2]*Obstacle{p.top, p.bottom}
}
