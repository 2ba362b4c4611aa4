package window

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

const (
	fadeSeconds  = 0.4
	overlayAlpha = 160 // Backdrop opacity once fully faded in
)

// fade drives the game-over backdrop from transparent to overlayAlpha.
type fade struct {
	tween  *gween.Tween
	value  float32
	active bool
}

func newFade() *fade {
	return &fade{tween: gween.New(0, 1, fadeSeconds, ease.OutQuad)}
}

// Start restarts the fade from zero.
func (f *fade) Start() {
	f.tween.Reset()
	f.value = 0
	f.active = true
}

// Stop hides the overlay.
func (f *fade) Stop() {
	f.active = false
	f.value = 0
}

// Update advances the fade by dt seconds.
func (f *fade) Update(dt float32) {
	if !f.active {
		return
	}
	f.value, _ = f.tween.Update(dt)
}

// Alpha returns the current backdrop alpha in [0, overlayAlpha].
func (f *fade) Alpha() uint8 {
	if !f.active {
		return 0
	}
	v := min(max(f.value, 0), 1)
	return uint8(v * overlayAlpha)
}
