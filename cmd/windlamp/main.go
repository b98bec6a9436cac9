package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	flag.Parse()

	cfg := DefaultConfig()
	if *configFlag != "" {
		loaded, err := LoadConfigFile(*configFlag)
		if err != nil {
			log.Fatalf("Config load failed: %v", err)
		}
		cfg = loaded
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	g, err := newGame(cfg)
	if err != nil {
		log.Fatalf("Initialization failed: %v", err)
	}

	ebiten.SetWindowSize(screenW*windowScale, screenH*windowScale)
	ebiten.SetWindowTitle("Wind Lamp")
	if err := ebiten.RunGame(g); err != nil {
		log.Fatalf("Game loop failed: %v", err)
	}
}
