package flappy

import (
	"math"
	"testing"

	"github.com/vovakirdan/tui-flappy/internal/config"
)

const eps = 1e-9

func approx(a, b float64) bool {
	return math.Abs(a-b) < eps
}

func TestAvatarStartsAtConfiguredPosition(t *testing.T) {
	cfg := config.Default()
	a := NewAvatar(cfg)

	r := a.Rect()
	if r.Y != 250 {
		t.Errorf("start y = %v, expected window_height/2 = 250", r.Y)
	}
	if cx := r.X + r.W/2; cx != 100 {
		t.Errorf("footprint should be centered on start_x, center x = %v", cx)
	}
	if r.W != 60 || r.H != 35 {
		t.Errorf("footprint size = %vx%v, expected 60x35", r.W, r.H)
	}
	if a.Velocity() != 0 {
		t.Errorf("start velocity = %v, expected 0", a.Velocity())
	}
}

func TestAvatarGravityScenario(t *testing.T) {
	// gravity 0.4, five ticks from rest: v = 2.0, y += 0.4+0.8+1.2+1.6+2.0
	a := NewAvatar(config.Default())
	startY := a.Y()

	for i := 0; i < 5; i++ {
		a.ApplyGravity()
	}

	if !approx(a.Velocity(), 2.0) {
		t.Errorf("velocity after 5 ticks = %v, expected 2.0", a.Velocity())
	}
	if !approx(a.Y()-startY, 6.0) {
		t.Errorf("y moved by %v, expected 6.0", a.Y()-startY)
	}
}

func TestAvatarGravityIntegration(t *testing.T) {
	a := NewAvatar(config.Default())
	a.Jump()

	for i := 0; i < 30; i++ {
		prevY, prevV := a.Y(), a.Velocity()
		a.ApplyGravity()

		if !approx(a.Velocity(), prevV+0.4) {
			t.Fatalf("tick %d: velocity = %v, expected %v", i, a.Velocity(), prevV+0.4)
		}
		if !approx(a.Y(), prevY+prevV+0.4) {
			t.Fatalf("tick %d: y = %v, expected %v", i, a.Y(), prevY+prevV+0.4)
		}
	}
}

func TestAvatarJumpOverridesVelocity(t *testing.T) {
	a := NewAvatar(config.Default())
	for i := 0; i < 20; i++ {
		a.ApplyGravity()
	}

	y := a.Y()
	a.Jump()

	if a.Velocity() != -6 {
		t.Errorf("velocity after jump = %v, expected -6", a.Velocity())
	}
	if a.Y() != y {
		t.Error("jump should not move the avatar until the next tick")
	}
}

func TestAvatarCheckBounds(t *testing.T) {
	tests := []struct {
		name     string
		y, vel   float64
		expected Contact
		wantY    float64
		wantVel  float64
	}{
		{"inside", 200, 3, ContactNone, 200, 3},
		{"at ceiling", 0, -2, ContactTop, 0, 0},
		{"above ceiling", -4.5, -5, ContactTop, 0, 0},
		{"touching floor", 465, 4, ContactBottom, 465, 4},
		{"below floor", 480, 7, ContactBottom, 465, 7},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			a := NewAvatar(config.Default())
			a.y = tc.y
			a.vel = tc.vel

			got := a.CheckBounds(500)
			if got != tc.expected {
				t.Errorf("CheckBounds() = %v, expected %v", got, tc.expected)
			}
			if a.y != tc.wantY {
				t.Errorf("y = %v, expected %v", a.y, tc.wantY)
			}
			if a.vel != tc.wantVel {
				t.Errorf("velocity = %v, expected %v", a.vel, tc.wantVel)
			}

			r := a.Rect()
			if got != ContactNone && (r.Top() < 0 || r.Bottom() > 500) {
				t.Errorf("clamped footprint out of screen: %+v", r)
			}
		})
	}
}

func TestAvatarCheckBoundsTallerThanScreen(t *testing.T) {
	// Top wins when both edges are out of bounds.
	cfg := config.Default()
	cfg.Bird.Height = 600
	a := NewAvatar(cfg)
	a.y = -1

	if got := a.CheckBounds(500); got != ContactTop {
		t.Errorf("CheckBounds() = %v, expected top to take priority", got)
	}
}
