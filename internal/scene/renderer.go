package scene

import "math"

// Options fixes the scene geometry for the lifetime of a Renderer.
type Options struct {
	Width               int
	Height              int
	SquareCount         int
	SquareSize          int
	AngleStep           float64 // degrees per frame
	OrbitRadiusFraction float64
	Gradient            Gradient
}

// Gradient is a vertical two-color background.
type Gradient struct {
	Start uint32
	End   uint32
}

// Renderer draws frames of the spinning squares scene.
type Renderer struct {
	opts    Options
	orbitRX float64
	orbitRY float64
}

func NewRenderer(opts Options) *Renderer {
	return &Renderer{
		opts:    opts,
		orbitRX: float64(int(float64(opts.Width) * opts.OrbitRadiusFraction)),
		orbitRY: float64(int(float64(opts.Height) * opts.OrbitRadiusFraction)),
	}
}

func (r *Renderer) Options() Options { return r.opts }

// RenderFrame draws the background and every square into c, then advances
// the squares for the next frame. It returns the number of squares that
// completed a revolution.
func (r *Renderer) RenderFrame(c *Canvas, squares []Square) int {
	r.Draw(c, squares)
	return r.Advance(squares)
}

// Draw renders the current state without touching the squares.
func (r *Renderer) Draw(c *Canvas, squares []Square) {
	r.FillGradient(c)
	for i := range squares {
		r.DrawSquare(c, squares[i])
	}
}

// FillGradient paints each row with the gradient color for y/H.
func (r *Renderer) FillGradient(c *Canvas) {
	g := r.opts.Gradient
	for y := 0; y < c.Height; y++ {
		frac := float64(y) / float64(c.Height)
		c.FillRow(y, Lerp(g.Start, g.End, frac))
	}
}

// DrawSquare rasterizes s at its orbit position, rotated by its angle.
// Each local offset is rotated and truncated to a pixel, so some angles leave
// single-pixel seams; pixels off the canvas are skipped.
func (r *Renderer) DrawSquare(c *Canvas, s Square) {
	rad := s.Angle * math.Pi / 180
	sin, cos := math.Sincos(rad)
	xBox := s.X + r.orbitRX*cos
	yBox := s.Y + r.orbitRY*sin

	half := r.opts.SquareSize / 2
	for i := -half; i < half; i++ {
		for j := -half; j < half; j++ {
			fi, fj := float64(i), float64(j)
			x := int(xBox + fi*cos - fj*sin)
			y := int(yBox + fi*sin + fj*cos)
			c.Set(x, y, s.Color)
		}
	}
}

// Advance steps every square's angle, wrapping at 360 by subtraction, and
// returns how many wrapped.
func (r *Renderer) Advance(squares []Square) int {
	wrapped := 0
	for i := range squares {
		a := squares[i].Angle + r.opts.AngleStep
		if a >= 360 {
			a -= 360
			wrapped++
		}
		squares[i].Angle = a
	}
	return wrapped
}
