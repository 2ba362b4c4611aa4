package core

import "time"

// RuntimeConfig contains the launch parameters a presenter passes to the game.
type RuntimeConfig struct {
	ScreenW  int   // Terminal width in cells (window presenter ignores it)
	ScreenH  int   // Terminal height in cells
	TickRate int   // Simulation ticks per second
	Seed     int64 // RNG seed for gap heights
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// TickInterval returns the wall-clock duration of one tick.
func (c RuntimeConfig) TickInterval() time.Duration {
	if c.TickRate <= 0 {
		return time.Second / 60
	}
	return time.Second / time.Duration(c.TickRate)
}

// SpawnTimer converts elapsed frame time into spawn events.
// It fires once per full interval and carries the remainder over.
type SpawnTimer struct {
	interval time.Duration
	elapsed  time.Duration
}

// NewSpawnTimer creates a timer with the given interval.
func NewSpawnTimer(interval time.Duration) *SpawnTimer {
	return &SpawnTimer{interval: interval}
}

// Advance adds dt to the timer and reports whether the interval elapsed.
// At most one event is reported per call.
func (t *SpawnTimer) Advance(dt time.Duration) bool {
	if t.interval <= 0 {
		return false
	}
	t.elapsed += dt
	if t.elapsed < t.interval {
		return false
	}
	t.elapsed -= t.interval
	if t.elapsed >= t.interval {
		t.elapsed = t.elapsed % t.interval
	}
	return true
}

// Reset restarts the interval from zero.
func (t *SpawnTimer) Reset() {
	t.elapsed = 0
}
