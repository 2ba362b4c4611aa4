package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
)

func TestProjectionCells(t *testing.T) {
	// 640x480 world onto 80x30 cells: 8 px per column, 16 px per row.
	p := NewProjection(640, 480, 80, 30)

	tests := []struct {
		name    string
		rect    core.Rect
		want    core.CellRect
		visible bool
	}{
		{"avatar", core.NewRect(70, 250, 60, 35), core.CellRect{X: 8, Y: 15, W: 9, H: 3}, true},
		{"top wall clipped", core.NewRect(320, -350, 100, 500), core.CellRect{X: 40, Y: 0, W: 13, H: 10}, true},
		{"bottom wall clipped", core.NewRect(320, 350, 100, 500), core.CellRect{X: 40, Y: 21, W: 13, H: 9}, true},
		{"partly left of screen", core.NewRect(-40, 0, 80, 80), core.CellRect{X: 0, Y: 0, W: 5, H: 5}, true},
		{"fully off screen", core.NewRect(-200, 0, 100, 100), core.CellRect{}, false},
		{"right of screen", core.NewRect(640, 0, 100, 100), core.CellRect{}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := p.Cells(tc.rect)
			if ok != tc.visible {
				t.Fatalf("Cells() visible = %v, expected %v", ok, tc.visible)
			}
			if ok && got != tc.want {
				t.Errorf("Cells() = %+v, expected %+v", got, tc.want)
			}
			if ok && (got.X < 0 || got.Y < 0 || got.Right() > 80 || got.Bottom() > 30) {
				t.Errorf("Cells() = %+v escapes the grid", got)
			}
		})
	}
}

func TestProjectionEmptyGrid(t *testing.T) {
	p := NewProjection(600, 500, 0, 0)
	if _, ok := p.Cells(core.NewRect(0, 0, 600, 500)); ok {
		t.Error("nothing should be visible on an empty grid")
	}
}

func TestDrawActiveFrame(t *testing.T) {
	sim := flappy.NewSeeded(config.Default(), 1)
	sim.Step(core.NewIntentSet(core.IntentSpawnTimerFired))

	scr := core.NewScreen(60, 25)
	Draw(scr, sim.Snapshot())

	if !strings.HasPrefix(scr.Row(0), " Score: 0") {
		t.Errorf("score line = %q", scr.Row(0))
	}
	if !strings.ContainsRune(scr.String(), birdRune) {
		t.Error("avatar not drawn")
	}
	// Freshly spawned pair sits on the right edge.
	if scr.Get(59, 1) != wallRune || scr.GetCell(59, 1).Color != core.ColorGreen {
		t.Errorf("expected wall at right edge, got %q", scr.Get(59, 1))
	}
	if strings.Contains(scr.String(), "GAME OVER") {
		t.Error("overlay drawn while playing")
	}
}

func TestDrawGameOverOverlay(t *testing.T) {
	sim := flappy.NewSeeded(config.Default(), 1)
	for i := 0; i < 200 && sim.Phase() == flappy.PhaseActive; i++ {
		sim.Step(core.NewIntentSet())
	}

	scr := core.NewScreen(60, 25)
	Draw(scr, sim.Snapshot())

	out := scr.String()
	if !strings.Contains(out, "GAME OVER") {
		t.Error("game over text missing")
	}
	if !strings.Contains(out, "Press SPACE to restart") {
		t.Error("restart hint missing")
	}
}

func TestRenderScreenKeepsText(t *testing.T) {
	scr := core.NewScreen(10, 2)
	scr.DrawText(0, 0, "ab", core.ColorGreen)
	scr.DrawText(2, 0, "cd", core.ColorRed)

	out := RenderScreen(scr)
	if strings.Count(out, "\n") != 1 {
		t.Errorf("expected 2 rows, got %q", out)
	}
	for _, s := range []string{"ab", "cd"} {
		if !strings.Contains(out, s) {
			t.Errorf("RenderScreen() lost %q", s)
		}
	}
}
