//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"maze-viz/internal/app"
	"maze-viz/internal/search"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	kind, err := search.ParseKind(cfg.Algo)
	if err != nil {
		log.Fatal(err)
	}

	game, err := app.New(cfg, kind)
	if err != nil {
		log.Fatalf("generate %dx%d maze: %v", cfg.Width, cfg.Height, err)
	}

	ebiten.SetWindowTitle("Maze Pathfinder Visualizer")
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(cfg.Width*cfg.Scale, cfg.Height*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
