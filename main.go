package main

import (
	"log"

	"followcam/internal/config"
	"followcam/internal/game"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/quasilyte/gdata/v2"
)

const configPath = "config.yaml"

func main() {
	// Load configuration
	cfg := config.MustLoadConfig(configPath)

	// Preferences persist across runs when a data directory is available
	storage, err := gdata.Open(gdata.Config{AppName: "followcam"})
	if err != nil {
		log.Printf("Warning: Failed to open preference storage: %v (preferences will not be saved)", err)
		storage = nil
	}
	prefs := game.NewPreferencesStore(storage, game.PreferencesFromConfig(cfg))

	// Set window properties from config
	ebiten.SetWindowSize(cfg.GetScreenWidth(), cfg.GetScreenHeight())
	ebiten.SetWindowTitle(cfg.Display.WindowTitle)
	if cfg.Display.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}
	ebiten.SetTPS(cfg.Display.TPS)

	g, err := game.NewGame(cfg, prefs)
	if err != nil {
		log.Fatal(err)
	}
	defer g.Shutdown()

	if cfg.Debug.WatchConfig {
		if err := g.WatchConfig(configPath); err != nil {
			log.Printf("Warning: Failed to watch %s: %v", configPath, err)
		}
	}

	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
