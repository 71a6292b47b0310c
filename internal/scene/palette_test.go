package scene

import (
	"math/rand"
	"testing"
)

type constRand int

func (c constRand) Intn(n int) int { return int(c) % n }

func TestUniformPalette(t *testing.T) {
	if got := (UniformPalette{}).Color(constRand(0xFFFFFF)); got != 0xFFFFFF {
		t.Errorf("Color = %06x, want ffffff", got)
	}
	if got := (UniformPalette{}).Color(constRand(0)); got != 0 {
		t.Errorf("Color = %06x, want 000000", got)
	}
}

func TestVividPalette(t *testing.T) {
	p := VividPalette{Saturation: 1, Value: 1}
	// hue 0 at full saturation and value is pure red
	if got := p.Color(constRand(0)); got != 0xFF0000 {
		t.Errorf("hue 0 = %06x, want ff0000", got)
	}
	if got := p.Color(constRand(120)); got != 0x00FF00 {
		t.Errorf("hue 120 = %06x, want 00ff00", got)
	}

	rnd := rand.New(rand.NewSource(1))
	for i := 0; i < 100; i++ {
		if c := p.Color(rnd); c > MaxColor {
			t.Fatalf("color %x out of range", c)
		}
	}
}

func TestPaletteByName(t *testing.T) {
	for _, name := range []string{"", PaletteUniform, PaletteVivid} {
		if _, err := PaletteByName(name); err != nil {
			t.Errorf("PaletteByName(%q) error: %v", name, err)
		}
	}
	if _, err := PaletteByName("sepia"); err == nil {
		t.Error("expected error for unknown palette")
	}
}

func TestParseHex(t *testing.T) {
	tests := []struct {
		in   string
		want uint32
	}{
		{"#000000", 0x000000},
		{"#ff00ff", 0xFF00FF},
		{"FE00FD", 0xFE00FD},
		{"#1a2B3c", 0x1A2B3C},
	}
	for _, tt := range tests {
		got, err := ParseHex(tt.in)
		if err != nil {
			t.Errorf("ParseHex(%q) error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseHex(%q) = %06x, want %06x", tt.in, got, tt.want)
		}
	}
	if _, err := ParseHex("#zzzzzz"); err == nil {
		t.Error("expected error for invalid hex")
	}
	if got := FormatHex(0xFF00FF); got != "#ff00ff" {
		t.Errorf("FormatHex = %q", got)
	}
}
