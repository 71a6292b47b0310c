package scene

import "math"

// MaxColor is the largest packed 0xRRGGBB value.
const MaxColor = 0xFFFFFF

// Channels splits a packed 0xRRGGBB color into its 8-bit channels.
func Channels(c uint32) (r, g, b uint8) {
	return uint8(c >> 16), uint8(c >> 8), uint8(c)
}

// Pack builds a packed 0xRRGGBB color.
func Pack(r, g, b uint8) uint32 {
	return uint32(r)<<16 | uint32(g)<<8 | uint32(b)
}

// Lerp interpolates each channel of start and end independently.
// frac 0 yields start and frac 1 yields end exactly.
func Lerp(start, end uint32, frac float64) uint32 {
	sr, sg, sb := Channels(start)
	er, eg, eb := Channels(end)
	return Pack(
		lerpChannel(sr, er, frac),
		lerpChannel(sg, eg, frac),
		lerpChannel(sb, eb, frac),
	)
}

func lerpChannel(start, end uint8, frac float64) uint8 {
	v := math.Round(float64(start) + frac*(float64(end)-float64(start)))
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
