package scene

// Canvas is a dense row-major buffer of packed 0xRRGGBB pixels.
type Canvas struct {
	Width  int
	Height int
	Pix    []uint32
}

func NewCanvas(width, height int) *Canvas {
	return &Canvas{
		Width:  width,
		Height: height,
		Pix:    make([]uint32, width*height),
	}
}

func (c *Canvas) index(x, y int) int { return y*c.Width + x }

// In reports whether (x, y) lies inside the canvas.
func (c *Canvas) In(x, y int) bool {
	return x >= 0 && x < c.Width && y >= 0 && y < c.Height
}

// At returns the pixel at (x, y), or 0 outside the canvas.
func (c *Canvas) At(x, y int) uint32 {
	if !c.In(x, y) {
		return 0
	}
	return c.Pix[c.index(x, y)]
}

// Set writes a pixel; writes outside the canvas are dropped.
func (c *Canvas) Set(x, y int, color uint32) {
	if !c.In(x, y) {
		return
	}
	c.Pix[c.index(x, y)] = color
}

// FillRow sets every pixel of row y.
func (c *Canvas) FillRow(y int, color uint32) {
	if y < 0 || y >= c.Height {
		return
	}
	row := c.Pix[c.index(0, y):c.index(0, y+1)]
	for i := range row {
		row[i] = color
	}
}

// RGBA writes the canvas as opaque RGBA bytes into dst, growing it when
// needed, and returns the result.
func (c *Canvas) RGBA(dst []byte) []byte {
	n := len(c.Pix) * 4
	if cap(dst) < n {
		dst = make([]byte, n)
	}
	dst = dst[:n]
	for i, p := range c.Pix {
		r, g, b := Channels(p)
		dst[i*4] = r
		dst[i*4+1] = g
		dst[i*4+2] = b
		dst[i*4+3] = 0xFF
	}
	return dst
}
