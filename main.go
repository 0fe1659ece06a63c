package main

import (
	"flag"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/olivierh59500/particle-life-torus/internal/config"
)

func main() {
	configPath := flag.String("config", "", "optional INI config file")
	seed := flag.Int64("seed", 0, "random seed, 0 seeds from the clock")
	particles := flag.Int("particles", -1, "override the particle count")
	width := flag.Int("width", 0, "override the window width")
	height := flag.Int("height", 0, "override the window height")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.Read(*configPath); err != nil {
			log.Fatal(err)
		}
	}
	if *seed != 0 {
		cfg.Simulation.Seed = *seed
	}
	if *particles >= 0 {
		cfg.Simulation.Particles = *particles
	}
	if *width > 0 {
		cfg.Window.Width = *width
	}
	if *height > 0 {
		cfg.Window.Height = *height
	}
	if cfg.Simulation.Seed == 0 {
		cfg.Simulation.Seed = time.Now().UnixNano()
	}

	// Initialize simulation with the configured parameters
	game, err := NewGame(cfg)
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("particle life: %d particles, %d types, seed %d",
		cfg.Simulation.Particles, cfg.Simulation.Types, cfg.Simulation.Seed)

	// Set up Ebitengine game
	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(cfg.Window.TPS)

	// Run the game loop
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
