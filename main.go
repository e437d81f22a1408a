package main

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"pdkit/game"
	"pdkit/internal/config"
	_ "pdkit/internal/demo"
	"pdkit/system"
)

// Playdate screen size
const (
	ScreenWidth  = 400
	ScreenHeight = 240
)

func main() {
	cfg, err := config.LoadSimulator()
	if err != nil {
		log.Fatal(err)
	}

	// 1. Window Setup
	ebiten.SetWindowSize(ScreenWidth*cfg.Scale, ScreenHeight*cfg.Scale)
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowClosingHandled(true)

	// 2. Boot the simulated device
	sim := NewSimulator(cfg, game.EventHandler, system.Default)

	// 3. Run Loop
	if err := ebiten.RunGame(sim); err != nil {
		log.Fatal(err)
	}
}
