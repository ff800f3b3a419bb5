package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"lightemall/pkg/engine/terminal"
	"lightemall/pkg/game/config"
	"lightemall/pkg/game/gameplay"
	"lightemall/pkg/game/generator"
	"lightemall/pkg/game/menu"
	"lightemall/pkg/game/renderer"
	ebitenrenderer "lightemall/pkg/game/renderer/ebiten"
	"lightemall/pkg/game/renderer/tui"
)

func main() {
	cfg, err := config.FromEnv()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	flag.IntVar(&cfg.Width, "width", cfg.Width, "board width in tiles")
	flag.IntVar(&cfg.Height, "height", cfg.Height, "board height in tiles")
	flag.Int64Var(&cfg.Seed, "seed", cfg.Seed, "random seed (0 picks one from the clock)")
	flag.StringVar(&cfg.Generator, "generator", cfg.Generator, "board layout: "+strings.Join(generator.Names(), ", "))
	flag.StringVar(&cfg.Renderer, "renderer", cfg.Renderer, "front-end: tui or ebiten")
	flag.IntVar(&cfg.Level, "level", cfg.Level, "starting level (for developer testing)")
	flag.IntVar(&cfg.TileSize, "tile", cfg.TileSize, "tile size in pixels (ebiten)")
	flag.BoolVar(&cfg.Debug, "debug", cfg.Debug, "log to stderr with file and line")
	flag.StringVar(&cfg.Bindings, "bind", cfg.Bindings, `key overrides, e.g. "hint=h,reset=x"`)
	listKeys := flag.Bool("keys", false, "print the key bindings and exit")
	flag.Parse()

	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}

	if err := menu.ApplyBindings(cfg.Bindings); err != nil {
		log.Fatalf("bindings: %v", err)
	}
	if *listKeys {
		for _, line := range menu.Lines() {
			fmt.Println(line)
		}
		return
	}

	setupLogging(cfg)

	switch cfg.Renderer {
	case config.RendererEbiten:
		renderer.SetRenderer(ebitenrenderer.New(cfg.TileSize))
	default:
		renderer.SetRenderer(tui.New())
	}
	renderer.Init()

	g := gameplay.BuildGame(cfg)

	if err := renderer.Run(g, gameplay.ProcessIntent); err != nil {
		log.Fatalf("%v", err)
	}
}

// setupLogging keeps log output off the terminal board unless debugging
func setupLogging(cfg config.Config) {
	if cfg.Debug {
		log.SetFlags(log.LstdFlags | log.Lshortfile)
		return
	}
	if cfg.Renderer == config.RendererTUI && terminal.IsInteractive() {
		log.SetOutput(io.Discard)
		return
	}
	log.SetOutput(os.Stderr)
}
