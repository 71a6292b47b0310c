package scene

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// Palette picks an initial square color from a random source.
type Palette interface {
	Color(rnd RandSource) uint32
}

// Palette names accepted by PaletteByName.
const (
	PaletteUniform = "uniform"
	PaletteVivid   = "vivid"
)

// UniformPalette draws any 24-bit color with equal probability.
type UniformPalette struct{}

func (UniformPalette) Color(rnd RandSource) uint32 {
	return uint32(rnd.Intn(MaxColor + 1))
}

// VividPalette draws a random hue at fixed saturation and value so squares
// stay readable against dark gradients.
type VividPalette struct {
	Saturation float64
	Value      float64
}

func (p VividPalette) Color(rnd RandSource) uint32 {
	hue := float64(rnd.Intn(360))
	r, g, b := colorful.Hsv(hue, p.Saturation, p.Value).Clamped().RGB255()
	return Pack(r, g, b)
}

func PaletteByName(name string) (Palette, error) {
	switch name {
	case PaletteUniform, "":
		return UniformPalette{}, nil
	case PaletteVivid:
		return VividPalette{Saturation: 0.8, Value: 0.95}, nil
	default:
		return nil, fmt.Errorf("unknown palette %q", name)
	}
}

// ParseHex parses "#rrggbb" (or "rrggbb") into a packed color.
func ParseHex(s string) (uint32, error) {
	if len(s) > 0 && s[0] != '#' {
		s = "#" + s
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return 0, fmt.Errorf("parse color %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return Pack(r, g, b), nil
}

// FormatHex renders a packed color as "#rrggbb".
func FormatHex(c uint32) string {
	return fmt.Sprintf("#%06x", c&MaxColor)
}
