package game

import (
	"errors"
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/iburimskiy/spinning-squares/internal/config"
	"github.com/iburimskiy/spinning-squares/internal/scene"
)

// Bell is rung whenever a square completes a revolution.
type Bell interface {
	Ring()
	ToggleMute() bool
	Level() float64
}

// Input reports keys pressed since the previous tick.
type Input interface {
	JustPressed(k ebiten.Key) bool
}

type keyboard struct{}

func (keyboard) JustPressed(k ebiten.Key) bool { return inpututil.IsKeyJustPressed(k) }

type Game struct {
	renderer *scene.Renderer
	canvas   *scene.Canvas
	squares  []scene.Square
	bell     Bell
	input    Input
	tps      int

	// frame is the offscreen image the canvas is written to
	frame  *ebiten.Image
	pixels []byte
	drawn  bool

	// status
	frames  int
	elapsed time.Duration
	paused  bool
	muted   bool
	hud     bool
}

// NewGame takes ownership of squares. bell may be nil.
func NewGame(cfg config.Config, r *scene.Renderer, squares []scene.Square, bell Bell) *Game {
	opts := r.Options()
	return &Game{
		renderer: r,
		canvas:   scene.NewCanvas(opts.Width, opts.Height),
		squares:  squares,
		bell:     bell,
		input:    keyboard{},
		tps:      cfg.TicksPerSecond,
		hud:      cfg.HUD,
	}
}

func (g *Game) Update() error {
	if g.input.JustPressed(ebiten.KeyEscape) || g.input.JustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	if g.input.JustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if g.input.JustPressed(ebiten.KeyH) {
		g.hud = !g.hud
	}
	if g.input.JustPressed(ebiten.KeyM) && g.bell != nil {
		g.muted = g.bell.ToggleMute()
	}

	// the squares advance once per presented frame, after it was drawn
	if !g.drawn || g.paused {
		return nil
	}
	g.drawn = false
	g.frames++
	g.elapsed += time.Second / time.Duration(g.tps)
	if wrapped := g.renderer.Advance(g.squares); wrapped > 0 && g.bell != nil {
		g.bell.Ring()
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Draw(g.canvas, g.squares)
	g.pixels = g.canvas.RGBA(g.pixels)
	if g.frame == nil {
		g.frame = ebiten.NewImage(g.canvas.Width, g.canvas.Height)
	}
	g.frame.WritePixels(g.pixels)
	screen.DrawImage(g.frame, nil)
	g.drawn = true

	if g.hud {
		g.drawHUD(screen)
	}
}

func (g *Game) drawHUD(screen *ebiten.Image) {
	ebitenutil.DebugPrintAt(screen, g.status(ebiten.ActualTPS()), 8, 8)

	if g.bell == nil {
		return
	}
	const meterW, meterH = 80, 6
	level := clamp01(g.bell.Level())
	vector.DrawFilledRect(screen, 8, 28, meterW, meterH, color.RGBA{R: 20, G: 25, B: 35, A: 200}, false)
	vector.DrawFilledRect(screen, 8, 28, float32(level*meterW), meterH, color.RGBA{R: 230, G: 230, B: 255, A: 255}, false)
}

func (g *Game) status(tps float64) string {
	s := fmt.Sprintf("TPS %.1f  frame %d  %s", tps, g.frames, formatDuration(g.elapsed))
	if g.paused {
		s += "  paused"
	}
	if g.muted {
		s += "  muted"
	}
	return s
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.canvas.Width, g.canvas.Height
}

// Run opens the window and blocks until the user exits.
func Run(cfg config.Config, g *Game) error {
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetTPS(cfg.TicksPerSecond)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("run window: %w", err)
	}
	return nil
}
