package flappy

import (
	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Orientation tells which side of the gap an obstacle sits on.
type Orientation int

const (
	OrientationTop    Orientation = iota // Hangs from above, anchored at its bottom-left corner
	OrientationBottom                    // Rises from below, anchored at its top-left corner
)

// String returns a human-readable name for the orientation.
func (o Orientation) String() string {
	if o == OrientationTop {
		return "top"
	}
	return "bottom"
}

// Obstacle is a single scrolling wall.
type Obstacle struct {
	x           float64
	anchorY     float64
	width       float64
	height      float64
	speed       float64
	orientation Orientation
	passed      bool // Never reverts once set
}

// NewObstacle creates a wall whose anchor corner sits at (x, anchorY).
func NewObstacle(x, anchorY float64, o Orientation, cfg config.WallSettings) *Obstacle {
	return &Obstacle{
		x:           x,
		anchorY:     anchorY,
		width:       cfg.Width,
		height:      cfg.Height,
		speed:       cfg.Speed,
		orientation: o,
	}
}

// Tick moves the obstacle left by its speed.
func (o *Obstacle) Tick() {
	o.x -= o.speed
}

// Rect returns the obstacle's footprint.
func (o *Obstacle) Rect() core.Rect {
	if o.orientation == OrientationTop {
		return core.NewRect(o.x, o.anchorY-o.height, o.width, o.height)
	}
	return core.NewRect(o.x, o.anchorY, o.width, o.height)
}

// Offscreen reports whether the obstacle has fully left the screen on the left.
func (o *Obstacle) Offscreen() bool {
	return o.Rect().Right() < 0
}

// CollidesWith reports whether the footprint overlaps r.
func (o *Obstacle) CollidesWith(r core.Rect) bool {
	return o.Rect().Intersects(r)
}

// CheckPass returns true exactly once: on the first call where the
// obstacle's right edge is behind r's left edge.
func (o *Obstacle) CheckPass(r core.Rect) bool {
	if !o.passed && o.Rect().Right() < r.Left() {
		o.passed = true
		return true
	}
	return false
}

// X returns the left edge.
func (o *Obstacle) X() float64 {
	return o.x
}

// AnchorY returns the y of the anchor corner.
func (o *Obstacle) AnchorY() float64 {
	return o.anchorY
}

// Orientation returns which side of the gap the obstacle is on.
func (o *Obstacle) Orientation() Orientation {
	return o.orientation
}

// Passed reports whether the avatar has passed this obstacle.
func (o *Obstacle) Passed() bool {
	return o.passed
}
