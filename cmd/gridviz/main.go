//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"gridviz/internal/app"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	if cfg.Width < 0 || cfg.Height < 0 {
		log.Fatalf("grid dimensions must be non-negative, got %dx%d", cfg.Width, cfg.Height)
	}

	game := app.New(cfg)

	ebiten.SetWindowTitle("gridviz")
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(max(1, cfg.Width*cfg.Scale), max(1, cfg.Height*cfg.Scale))

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
