package scene

import "testing"

func TestChannelsPack(t *testing.T) {
	r, g, b := Channels(0x12AB34)
	if r != 0x12 || g != 0xAB || b != 0x34 {
		t.Fatalf("Channels(0x12AB34) = %02x %02x %02x", r, g, b)
	}
	if got := Pack(r, g, b); got != 0x12AB34 {
		t.Errorf("Pack = %06x, want 12ab34", got)
	}
}

func TestLerpIdentity(t *testing.T) {
	colors := []uint32{0x000000, 0xFFFFFF, 0x7F3A01, 0xFF00FF}
	for _, c := range colors {
		for _, f := range []float64{0, 0.1, 0.25, 0.5, 0.77, 1} {
			if got := Lerp(c, c, f); got != c {
				t.Errorf("Lerp(%06x, %06x, %v) = %06x", c, c, f, got)
			}
		}
	}
}

func TestLerpEndpoints(t *testing.T) {
	pairs := [][2]uint32{
		{0x000000, 0xFF00FF},
		{0xFFFFFF, 0x000000},
		{0x102030, 0xF0E0D0},
		{0xABCDEF, 0x010203},
	}
	for _, p := range pairs {
		if got := Lerp(p[0], p[1], 0); got != p[0] {
			t.Errorf("Lerp(%06x, %06x, 0) = %06x", p[0], p[1], got)
		}
		if got := Lerp(p[0], p[1], 1); got != p[1] {
			t.Errorf("Lerp(%06x, %06x, 1) = %06x", p[0], p[1], got)
		}
	}
}

func TestLerpRounding(t *testing.T) {
	tests := []struct {
		start, end uint32
		frac       float64
		want       uint32
	}{
		{0x000000, 0xFF00FF, 0.5, 0x800080},        // 127.5 rounds away from zero
		{0x000000, 0xFF00FF, 479.0 / 480, 0xFE00FE}, // 254.47
		{0xFF0000, 0x000000, 0.5, 0x800000},
		{0x000010, 0x000020, 0.25, 0x000014},
	}
	for _, tt := range tests {
		if got := Lerp(tt.start, tt.end, tt.frac); got != tt.want {
			t.Errorf("Lerp(%06x, %06x, %v) = %06x, want %06x", tt.start, tt.end, tt.frac, got, tt.want)
		}
	}
}

func TestLerpClamps(t *testing.T) {
	if got := Lerp(0x000000, 0xFFFFFF, 1.5); got != 0xFFFFFF {
		t.Errorf("Lerp overshoot = %06x, want ffffff", got)
	}
	if got := Lerp(0x000000, 0xFFFFFF, -0.5); got != 0x000000 {
		t.Errorf("Lerp undershoot = %06x, want 000000", got)
	}
}
