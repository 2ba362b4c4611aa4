package tui

import (
	"unicode/utf8"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
)

const (
	wallRune = '█'
	birdRune = '@'
)

// Projection maps world pixels onto a cell grid.
type Projection struct {
	SX, SY float64 // Cells per world pixel
	Bounds core.CellRect
}

// NewProjection fits a world of the given size into a w x h cell grid.
func NewProjection(worldW, worldH float64, w, h int) Projection {
	p := Projection{Bounds: core.CellRect{W: max(w, 0), H: max(h, 0)}}
	if worldW > 0 {
		p.SX = float64(p.Bounds.W) / worldW
	}
	if worldH > 0 {
		p.SY = float64(p.Bounds.H) / worldH
	}
	return p
}

// Cells returns the cells covered by r, clipped to the grid.
// The second result is false when nothing of r is visible.
func (p Projection) Cells(r core.Rect) (core.CellRect, bool) {
	c := r.Scale(p.SX, p.SY)

	x0 := core.Clamp(c.X, p.Bounds.X, p.Bounds.Right())
	y0 := core.Clamp(c.Y, p.Bounds.Y, p.Bounds.Bottom())
	x1 := core.Clamp(c.Right(), p.Bounds.X, p.Bounds.Right())
	y1 := core.Clamp(c.Bottom(), p.Bounds.Y, p.Bounds.Bottom())

	out := core.CellRect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
	return out, out.W > 0 && out.H > 0
}

// Draw renders a snapshot into the screen buffer.
func Draw(scr *core.Screen, snap flappy.Snapshot) {
	scr.Clear()
	proj := NewProjection(snap.Width, snap.Height, scr.Width(), scr.Height())

	for _, o := range snap.Obstacles {
		if cells, ok := proj.Cells(o.Rect); ok {
			scr.FillRect(cells, wallRune, core.ColorGreen)
		}
	}

	birdColor := core.ColorBrightYellow
	if snap.GameOver() {
		birdColor = core.ColorRed
	}
	if cells, ok := proj.Cells(snap.Avatar); ok {
		scr.FillRect(cells, birdRune, birdColor)
	}

	scr.DrawText(1, 0, snap.ScoreText(), core.ColorBrightWhite)

	if snap.GameOver() {
		drawGameOver(scr, snap.Texts.GameOver, snap.Texts.RestartInstruction)
	}
}

// drawGameOver draws a centered box holding the two overlay lines.
func drawGameOver(scr *core.Screen, title, hint string) {
	w := max(utf8.RuneCountInString(title), utf8.RuneCountInString(hint)) + 4
	h := 5
	box := core.CellRect{
		X: (scr.Width() - w) / 2,
		Y: (scr.Height() - h) / 2,
		W: w,
		H: h,
	}

	scr.FillRect(box, ' ', core.ColorDefault)
	scr.DrawBox(box, core.ColorGray)
	scr.DrawTextCentered(box.Y+1, title, core.ColorBrightRed)
	scr.DrawTextCentered(box.Y+3, hint, core.ColorWhite)
}
