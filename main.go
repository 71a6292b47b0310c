package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/iburimskiy/spinning-squares/internal/audio"
	"github.com/iburimskiy/spinning-squares/internal/config"
	"github.com/iburimskiy/spinning-squares/internal/display"
	"github.com/iburimskiy/spinning-squares/internal/game"
	"github.com/iburimskiy/spinning-squares/internal/scene"
	"github.com/ncruces/zenity"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("spinning-squares: ")

	cfg, err := config.Parse(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		log.Printf("config: %v", err)
		os.Exit(1)
	}
	if err := run(cfg); err != nil {
		fatal(cfg, err)
	}
}

func run(cfg config.Config) error {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UTC().UnixNano()
	}
	palette, _ := scene.PaletteByName(cfg.Palette)
	renderer := scene.NewRenderer(cfg.SceneOptions())
	squares := scene.NewSquares(renderer.Options(), palette, rand.New(rand.NewSource(seed)))

	opts := renderer.Options()
	log.Printf("%dx%d, %d squares, gradient %s -> %s, seed %d, display %s",
		opts.Width, opts.Height, len(squares),
		scene.FormatHex(opts.Gradient.Start), scene.FormatHex(opts.Gradient.End), seed, cfg.Display)

	var chime *audio.Chime
	if cfg.Audio.Enabled {
		chime = audio.NewChime(cfg.Audio)
		if err := chime.Start(); err != nil {
			log.Printf("audio disabled: %v", err)
			chime = nil
		} else {
			defer chime.Close()
		}
	}

	if cfg.Display == config.DisplayTerminal {
		return runTerminal(cfg, renderer, squares, chime)
	}
	return runWindow(cfg, renderer, squares, chime)
}

func runWindow(cfg config.Config, r *scene.Renderer, squares []scene.Square, chime *audio.Chime) error {
	var bell game.Bell
	if chime != nil {
		bell = chime
	}
	return game.Run(cfg, game.NewGame(cfg, r, squares, bell))
}

func runTerminal(cfg config.Config, r *scene.Renderer, squares []scene.Square, chime *audio.Chime) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("open terminal: %w", err)
	}
	var bell display.Bell
	if chime != nil {
		bell = chime
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return display.NewTerminal(screen, r, squares, bell, cfg.TicksPerSecond).Run(ctx)
}

// fatal reports err and exits. The window backend also pops up a dialog,
// since its users may not see the console.
func fatal(cfg config.Config, err error) {
	log.Printf("fatal: %v", err)
	if cfg.Display == config.DisplayWindow {
		_ = zenity.Error(err.Error(),
			zenity.Title("Spinning Boxes crashed"),
			zenity.ErrorIcon)
	}
	os.Exit(1)
}
