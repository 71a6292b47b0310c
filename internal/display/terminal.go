// Package display renders the scene without a window, into a terminal.
package display

import (
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/iburimskiy/spinning-squares/internal/scene"
)

// upperHalf draws the top sample as foreground and the bottom one as
// background, giving two canvas rows per terminal row.
const upperHalf = '▀'

// Bell is rung whenever a square completes a revolution.
type Bell interface {
	Ring()
}

type Terminal struct {
	screen   tcell.Screen
	renderer *scene.Renderer
	canvas   *scene.Canvas
	squares  []scene.Square
	bell     Bell
	interval time.Duration
}

// NewTerminal takes ownership of squares. screen must not be initialized
// yet; bell may be nil.
func NewTerminal(screen tcell.Screen, r *scene.Renderer, squares []scene.Square, bell Bell, tps int) *Terminal {
	opts := r.Options()
	return &Terminal{
		screen:   screen,
		renderer: r,
		canvas:   scene.NewCanvas(opts.Width, opts.Height),
		squares:  squares,
		bell:     bell,
		interval: time.Second / time.Duration(tps),
	}
}

// Run draws a frame per tick until ctx is done or the user presses Esc, q
// or Ctrl-C.
func (t *Terminal) Run(ctx context.Context) error {
	if err := t.screen.Init(); err != nil {
		return fmt.Errorf("init terminal: %w", err)
	}
	defer t.screen.Fini()
	t.screen.HideCursor()

	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 16)
	done := make(chan struct{})
	defer close(done)
	go pollEvents(t.screen, eventChan, done)

	t.frame()
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-eventChan:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if quitKey(ev) {
					return nil
				}
			case *tcell.EventResize:
				t.screen.Sync()
			}
		case <-ticker.C:
			t.frame()
		}
	}
}

// pollEvents forwards screen events until the screen is finalized or done
// is closed.
func pollEvents(s tcell.Screen, events chan<- tcell.Event, done <-chan struct{}) {
	for {
		ev := s.PollEvent()
		if ev == nil {
			return // screen finalized
		}
		select {
		case events <- ev:
		case <-done:
			return
		}
	}
}

func (t *Terminal) frame() {
	wrapped := t.renderer.RenderFrame(t.canvas, t.squares)
	if wrapped > 0 && t.bell != nil {
		t.bell.Ring()
	}
	paint(t.screen, t.canvas)
	t.screen.Show()
}

func paint(s tcell.Screen, c *scene.Canvas) {
	cols, rows := s.Size()
	for cy := 0; cy < rows; cy++ {
		for cx := 0; cx < cols; cx++ {
			top, bottom := sampleCell(c, cols, rows, cx, cy)
			style := tcell.StyleDefault.
				Foreground(tcell.NewHexColor(int32(top))).
				Background(tcell.NewHexColor(int32(bottom)))
			s.SetContent(cx, cy, upperHalf, nil, style)
		}
	}
}

// sampleCell picks the nearest canvas pixels for the upper and lower half of
// terminal cell (cx, cy) on a cols x rows screen.
func sampleCell(c *scene.Canvas, cols, rows, cx, cy int) (top, bottom uint32) {
	x := cx * c.Width / cols
	yTop := (2 * cy) * c.Height / (2 * rows)
	yBottom := (2*cy + 1) * c.Height / (2 * rows)
	return c.At(x, yTop), c.At(x, yBottom)
}

func quitKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q' || ev.Rune() == 'Q'
	}
	return false
}
