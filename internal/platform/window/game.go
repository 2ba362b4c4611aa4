// Package window runs the game in a desktop window using Ebitengine.
package window

import (
	"errors"
	"fmt"
	"image/color"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // text/v2 needs a different face type
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
)

var (
	scoreColor    = color.White
	gameOverColor = color.RGBA{R: 0xe8, G: 0x3a, B: 0x3a, A: 0xff}
	hintColor     = color.RGBA{R: 0xf0, G: 0xf0, B: 0xf0, A: 0xff}
)

// Game implements ebiten.Game on top of a simulation.
type Game struct {
	sim      *flappy.Simulation
	assets   *Assets
	logger   *log.Logger
	spawn    *core.SpawnTimer
	fade     *fade
	frame    time.Duration
	snapshot flappy.Snapshot
}

// NewGame wires a simulation to loaded assets. Ebitengine calls Update at
// tickRate per second; spawn pacing is derived from the same clock.
func NewGame(sim *flappy.Simulation, assets *Assets, tickRate int, logger *log.Logger) *Game {
	rc := core.RuntimeConfig{TickRate: tickRate}
	return &Game{
		sim:      sim,
		assets:   assets,
		logger:   logger,
		spawn:    core.NewSpawnTimer(sim.Settings().Wall.SpawnEvery()),
		fade:     newFade(),
		frame:    rc.TickInterval(),
		snapshot: sim.Snapshot(),
	}
}

// intents converts this frame's key presses into simulation intents.
func intents(flap, quit, spawn bool, phase flappy.Phase) core.IntentSet {
	in := core.NewIntentSet()
	if quit {
		in.Set(core.IntentQuit)
	}
	if flap {
		if phase == flappy.PhaseEnded {
			in.Set(core.IntentRestart)
		} else {
			in.Set(core.IntentJump)
		}
	}
	if spawn {
		in.Set(core.IntentSpawnTimerFired)
	}
	return in
}

// Update advances the simulation by one tick.
func (g *Game) Update() error {
	in := intents(
		inpututil.IsKeyJustPressed(ebiten.KeySpace),
		inpututil.IsKeyJustPressed(ebiten.KeyEscape),
		g.spawn.Advance(g.frame),
		g.snapshot.Phase,
	)
	return g.step(in)
}

// step applies one frame of intents. Quit ends the run loop before the
// simulation sees the frame.
func (g *Game) step(in core.IntentSet) error {
	if in.Has(core.IntentQuit) {
		return ebiten.Termination
	}

	res := g.sim.Step(in)
	g.snapshot = res.Snapshot

	for _, e := range res.Events {
		g.logger.Debug("event", "kind", e.Kind, "score", e.Score)
		switch {
		case e.Ends():
			g.logger.Info("game over", "reason", e.Kind, "score", e.Score, "ticks", res.Snapshot.Ticks)
			g.fade.Start()
		case e.Kind == flappy.EventRestarted:
			g.fade.Stop()
			g.spawn.Reset()
		}
	}

	g.fade.Update(float32(g.frame.Seconds()))
	return nil
}

// Draw renders the last snapshot.
func (g *Game) Draw(screen *ebiten.Image) {
	snap := g.snapshot

	drawStretched(screen, g.assets.Background, 0, 0, snap.Width, snap.Height, false)

	for _, o := range snap.Obstacles {
		r := o.Rect
		drawStretched(screen, g.assets.Wall, r.X, r.Y, r.W, r.H, o.Orientation == flappy.OrientationTop)
	}

	a := snap.Avatar
	drawStretched(screen, g.assets.Bird, a.X, a.Y, a.W, a.H, false)

	face := g.assets.Face
	text.Draw(screen, snap.ScoreText(), face, 10, 10+ascent(face), scoreColor)

	if snap.GameOver() {
		g.drawGameOver(screen, snap)
	}
}

func (g *Game) drawGameOver(screen *ebiten.Image, snap flappy.Snapshot) {
	w, h := float32(snap.Width), float32(snap.Height)
	vector.FillRect(screen, 0, 0, w, h, color.RGBA{A: g.fade.Alpha()}, false)

	face := g.assets.Face
	lineH := face.Metrics().Height.Ceil()
	cy := int(snap.Height / 2)

	title := snap.Texts.GameOver
	text.Draw(screen, title, face, (int(snap.Width)-textWidth(face, title))/2, cy-lineH/2, gameOverColor)

	hint := snap.Texts.RestartInstruction
	text.Draw(screen, hint, face, (int(snap.Width)-textWidth(face, hint))/2, cy+lineH, hintColor)
}

// drawStretched draws img scaled to the given world rectangle. Flipped images
// are mirrored vertically so the cap of a top wall faces the gap.
func drawStretched(dst, img *ebiten.Image, x, y, w, h float64, flip bool) {
	b := img.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return
	}
	sx := w / float64(b.Dx())
	sy := h / float64(b.Dy())

	op := &ebiten.DrawImageOptions{}
	if flip {
		op.GeoM.Scale(sx, -sy)
		op.GeoM.Translate(x, y+h)
	} else {
		op.GeoM.Scale(sx, sy)
		op.GeoM.Translate(x, y)
	}
	dst.DrawImage(img, op)
}

// Layout keeps the logical screen at the configured window size.
func (g *Game) Layout(_, _ int) (int, int) {
	cfg := g.sim.Settings().Game
	return cfg.WindowWidth, cfg.WindowHeight
}

// Run loads assets, opens the window and blocks until it is closed.
func Run(sim *flappy.Simulation, logger *log.Logger) error {
	cfg := sim.Settings()

	assets, err := LoadAssets(cfg)
	if err != nil {
		return err
	}

	ebiten.SetWindowSize(cfg.Game.WindowWidth, cfg.Game.WindowHeight)
	ebiten.SetWindowTitle(cfg.Game.Title)
	ebiten.SetTPS(cfg.Game.FPS)

	logger.Info("window opened", "width", cfg.Game.WindowWidth, "height", cfg.Game.WindowHeight, "fps", cfg.Game.FPS)

	return runResult(ebiten.RunGame(NewGame(sim, assets, cfg.Game.FPS, logger)))
}

// runResult maps the run loop's exit error. Termination, wrapped or not, is
// a normal quit.
func runResult(err error) error {
	if err == nil || errors.Is(err, ebiten.Termination) {
		return nil
	}
	return fmt.Errorf("window: %w", err)
}
