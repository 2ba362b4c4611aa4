package flappy

import (
	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Contact is the result of an avatar boundary check.
type Contact int

const (
	ContactNone   Contact = iota
	ContactTop            // Non-fatal, the avatar rests at the ceiling
	ContactBottom         // Fatal, ends the game
)

// String returns a human-readable name for the contact.
func (c Contact) String() string {
	switch c {
	case ContactTop:
		return "top"
	case ContactBottom:
		return "bottom"
	default:
		return "none"
	}
}

// Avatar is the player-controlled bird.
// y is the top edge of the footprint; x is its horizontal center.
type Avatar struct {
	x, y         float64
	vel          float64
	width        float64
	height       float64
	gravity      float64
	jumpStrength float64
}

// NewAvatar creates an avatar at the configured start position with zero velocity.
func NewAvatar(cfg config.Settings) *Avatar {
	return &Avatar{
		x:            cfg.Bird.StartX,
		y:            cfg.StartY(),
		width:        cfg.Bird.Width,
		height:       cfg.Bird.Height,
		gravity:      cfg.Bird.Gravity,
		jumpStrength: cfg.Bird.JumpStrength,
	}
}

// ApplyGravity advances the avatar by one tick of free fall.
func (a *Avatar) ApplyGravity() {
	a.vel += a.gravity
	a.y += a.vel
}

// Jump replaces the current velocity with the jump impulse.
// The effect shows on the next gravity tick.
func (a *Avatar) Jump() {
	a.vel = a.jumpStrength
}

// CheckBounds clamps the avatar to the screen and reports which edge it touched.
// The ceiling stops the avatar; the floor only clamps its position.
func (a *Avatar) CheckBounds(screenH float64) Contact {
	r := a.Rect()
	if r.Top() <= 0 {
		a.y = 0
		a.vel = 0
		return ContactTop
	}
	if r.Bottom() >= screenH {
		a.y = screenH - a.height
		return ContactBottom
	}
	return ContactNone
}

// Rect returns the avatar's footprint.
func (a *Avatar) Rect() core.Rect {
	return core.NewRect(a.x-a.width/2, a.y, a.width, a.height)
}

// Y returns the top edge of the footprint.
func (a *Avatar) Y() float64 {
	return a.y
}

// Velocity returns the current vertical velocity (positive is down).
func (a *Avatar) Velocity() float64 {
	return a.vel
}
