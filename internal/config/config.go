package config

import (
	"errors"
	"flag"
	"fmt"
	"math"
	"os"

	"github.com/iburimskiy/spinning-squares/internal/scene"
	"gopkg.in/yaml.v2"
)

const (
	WindowWidth  = 640
	WindowHeight = 480
	WindowTitle  = "Spinning Boxes - Press Esc to exit"

	// Scene parameters
	SquareCount         = 10
	SquareSize          = 50
	AngleStep           = 1.0
	OrbitRadiusFraction = 0.25
	GradientStart       = "#000000"
	GradientEnd         = "#ff00ff"

	TicksPerSecond = 60

	// Chime parameters
	ChimeFrequency  = 880.0
	ChimeDuration   = 0.12 // seconds
	ChimeVolume     = 0.4
	ChimeSampleRate = 44100
)

// Display backends
const (
	DisplayWindow   = "window"
	DisplayTerminal = "terminal"
)

type Audio struct {
	Enabled    bool    `yaml:"enabled"`
	Frequency  float64 `yaml:"frequency"`
	Duration   float64 `yaml:"duration"`
	Volume     float64 `yaml:"volume"`
	SampleRate int     `yaml:"sampleRate"`
}

type Config struct {
	Width               int     `yaml:"width"`
	Height              int     `yaml:"height"`
	Title               string  `yaml:"title"`
	SquareCount         int     `yaml:"squareCount"`
	SquareSize          int     `yaml:"squareSize"`
	AngleStep           float64 `yaml:"angleStep"`
	OrbitRadiusFraction float64 `yaml:"orbitRadiusFraction"`
	Gradient            struct {
		Start string `yaml:"start"`
		End   string `yaml:"end"`
	} `yaml:"gradient"`
	Palette        string `yaml:"palette"`
	Seed           int64  `yaml:"seed"`
	TicksPerSecond int    `yaml:"ticksPerSecond"`
	Display        string `yaml:"display"`
	HUD            bool   `yaml:"hud"`
	Audio          Audio  `yaml:"audio"`
}

// Default returns the configuration of the classic scene.
func Default() Config {
	var c Config
	c.Width = WindowWidth
	c.Height = WindowHeight
	c.Title = WindowTitle
	c.SquareCount = SquareCount
	c.SquareSize = SquareSize
	c.AngleStep = AngleStep
	c.OrbitRadiusFraction = OrbitRadiusFraction
	c.Gradient.Start = GradientStart
	c.Gradient.End = GradientEnd
	c.Palette = scene.PaletteUniform
	c.TicksPerSecond = TicksPerSecond
	c.Display = DisplayWindow
	c.Audio = Audio{
		Frequency:  ChimeFrequency,
		Duration:   ChimeDuration,
		Volume:     ChimeVolume,
		SampleRate: ChimeSampleRate,
	}
	return c
}

// Load decodes a YAML file over the defaults. Keys missing from the file
// keep their default values.
func Load(path string) (Config, error) {
	c := Default()
	f, err := os.Open(path)
	if err != nil {
		return c, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()

	if err := yaml.NewDecoder(f).Decode(&c); err != nil {
		return c, fmt.Errorf("decode config %s: %w", path, err)
	}
	return c, nil
}

// Parse builds the configuration from the command line: defaults, then the
// -config file if given, then explicit flags.
func Parse(args []string) (Config, error) {
	fs := flag.NewFlagSet("spinning-squares", flag.ContinueOnError)
	configPath := fs.String("config", "", "YAML config file.")
	width := fs.Int("width", 0, "Window width in pixels.")
	height := fs.Int("height", 0, "Window height in pixels.")
	squares := fs.Int("squares", 0, "Number of squares.")
	seed := fs.Int64("seed", 0, "Random seed for square colors (0 = time based).")
	palette := fs.String("palette", "", "Square palette: uniform or vivid.")
	display := fs.String("display", "", "Display backend: window or terminal.")
	tps := fs.Int("tps", 0, "Frames per second.")
	hud := fs.Bool("hud", false, "Show the status overlay.")
	audio := fs.Bool("audio", false, "Chime on every revolution.")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	c := Default()
	if *configPath != "" {
		var err error
		if c, err = Load(*configPath); err != nil {
			return c, err
		}
	}

	// only flags given on the command line override the file
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "width":
			c.Width = *width
		case "height":
			c.Height = *height
		case "squares":
			c.SquareCount = *squares
		case "seed":
			c.Seed = *seed
		case "palette":
			c.Palette = *palette
		case "display":
			c.Display = *display
		case "tps":
			c.TicksPerSecond = *tps
		case "hud":
			c.HUD = *hud
		case "audio":
			c.Audio.Enabled = *audio
		}
	})
	return c, c.Validate()
}

// Validate reports every invalid field at once.
func (c Config) Validate() error {
	var errs []error
	if c.Width <= 0 || c.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size %dx%d must be positive", c.Width, c.Height))
	}
	if c.SquareCount < 1 {
		errs = append(errs, fmt.Errorf("square count %d must be at least 1", c.SquareCount))
	}
	if c.SquareSize < 1 {
		errs = append(errs, fmt.Errorf("square size %d must be at least 1", c.SquareSize))
	}
	if !(c.OrbitRadiusFraction >= 0) || math.IsInf(c.OrbitRadiusFraction, 1) {
		errs = append(errs, fmt.Errorf("orbit radius fraction %v must be finite and not negative", c.OrbitRadiusFraction))
	}
	// angles stay in [0, 360) only for a step within that range
	if !(c.AngleStep >= 0 && c.AngleStep < 360) {
		errs = append(errs, fmt.Errorf("angle step %v must be within [0, 360)", c.AngleStep))
	}
	if c.TicksPerSecond < 1 {
		errs = append(errs, fmt.Errorf("ticks per second %d must be at least 1", c.TicksPerSecond))
	}
	if _, err := scene.ParseHex(c.Gradient.Start); err != nil {
		errs = append(errs, fmt.Errorf("gradient start: %w", err))
	}
	if _, err := scene.ParseHex(c.Gradient.End); err != nil {
		errs = append(errs, fmt.Errorf("gradient end: %w", err))
	}
	if _, err := scene.PaletteByName(c.Palette); err != nil {
		errs = append(errs, err)
	}
	if c.Display != DisplayWindow && c.Display != DisplayTerminal {
		errs = append(errs, fmt.Errorf("unknown display %q", c.Display))
	}
	if c.Audio.Enabled {
		if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
			errs = append(errs, fmt.Errorf("audio volume %v must be within [0, 1]", c.Audio.Volume))
		}
		if c.Audio.Frequency <= 0 || c.Audio.Duration <= 0 || c.Audio.SampleRate <= 0 {
			errs = append(errs, errors.New("audio frequency, duration and sample rate must be positive"))
		}
	}
	return errors.Join(errs...)
}

// SceneOptions converts the validated configuration for the renderer.
func (c Config) SceneOptions() scene.Options {
	start, _ := scene.ParseHex(c.Gradient.Start)
	end, _ := scene.ParseHex(c.Gradient.End)
	return scene.Options{
		Width:               c.Width,
		Height:              c.Height,
		SquareCount:         c.SquareCount,
		SquareSize:          c.SquareSize,
		AngleStep:           c.AngleStep,
		OrbitRadiusFraction: c.OrbitRadiusFraction,
		Gradient:            scene.Gradient{Start: start, End: end},
	}
}
