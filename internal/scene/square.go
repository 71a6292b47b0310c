package scene

// Square is one spinning box. X and Y are the orbit pivot; only Angle
// changes between frames.
type Square struct {
	X, Y  float64
	Angle float64 // degrees, [0, 360)
	Color uint32
}

// RandSource produces uniform integers in [0, n). *rand.Rand satisfies it.
type RandSource interface {
	Intn(n int) int
}

// NewSquares creates opts.SquareCount squares pivoting on the canvas center
// with angles spread evenly over the full turn and colors drawn from pal.
func NewSquares(opts Options, pal Palette, rnd RandSource) []Square {
	squares := make([]Square, opts.SquareCount)
	cx := float64(opts.Width / 2)
	cy := float64(opts.Height / 2)
	for i := range squares {
		squares[i] = Square{
			X:     cx,
			Y:     cy,
			Angle: float64(i) * 360 / float64(opts.SquareCount),
			Color: pal.Color(rnd),
		}
	}
	return squares
}
