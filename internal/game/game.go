package game

import (
	"fmt"
	"log"

	"followcam/internal/camera"
	"followcam/internal/config"
	"followcam/internal/scene"
	"followcam/internal/threading"
	"followcam/internal/threading/monitoring"
	"followcam/internal/vehicle"

	"github.com/hajimehoshi/ebiten/v2"
)

// Game is the viewer: a car driving through a repeated city block with the
// follow camera trailing it.
type Game struct {
	config *config.Config

	car    *vehicle.Car
	camera *camera.FollowCamera
	city   *scene.CityScene

	input *InputHandler
	prefs *PreferencesStore

	// Threading components
	threading *threading.ThreadingComponents

	// Config hot reload, nil when disabled
	watcher *config.Watcher

	// Last frame's projected wireframe, kept for the HUD
	lastProjection scene.Projection

	gameLoop *GameLoop
}

// NewGame builds the viewer from cfg. prefs may wrap a nil gdata manager.
func NewGame(cfg *config.Config, prefs *PreferencesStore) (*Game, error) {
	cam, err := camera.NewWithSettings(cfg.GetAspectRatio(), cfg.CameraSettings())
	if err != nil {
		return nil, fmt.Errorf("create camera: %w", err)
	}

	city, err := scene.NewCityScene(cfg.City)
	if err != nil {
		return nil, fmt.Errorf("build city: %w", err)
	}

	if prefs == nil {
		prefs = NewPreferencesStore(nil, PreferencesFromConfig(cfg))
	}

	game := &Game{
		config:    cfg,
		car:       vehicle.NewCar(cfg.Vehicle),
		camera:    cam,
		city:      city,
		input:     NewInputHandler(),
		prefs:     prefs,
		threading: threading.NewThreadingComponents(),
	}
	game.threading.PerformanceMonitor.EnableDetailedLogging(cfg.Debug.DetailedStats)
	game.gameLoop = NewGameLoop(game)

	log.Printf("[Game] City ready: %d instances, %d edges per block", city.InstanceCount(), city.Model.EdgeCount())
	return game, nil
}

// PreferencesFromConfig seeds preferences from the debug and graphics sections.
func PreferencesFromConfig(cfg *config.Config) Preferences {
	return Preferences{
		ShowHUD:   cfg.Debug.ShowHUD,
		ShowBasis: cfg.Debug.ShowBasis,
		LineWidth: cfg.Graphics.LineWidth,
	}
}

// WatchConfig reloads path between frames whenever it changes on disk.
func (g *Game) WatchConfig(path string) error {
	w, err := config.NewWatcher(path)
	if err != nil {
		return err
	}
	g.watcher = w
	log.Printf("[Config] Watching %s for changes", path)
	return nil
}

// step advances the car and the camera by one fixed time step.
func (g *Game) step(controls vehicle.Controls) {
	dt := g.config.GetTimeStep()
	g.car.Update(dt, controls)
	g.threading.PerformanceMonitor.ProfiledFunction(monitoring.StageCameraUpdate, func() {
		g.camera.Update(dt, g.car.World())
	})
}

// handleActions applies the one-shot requests of a frame.
func (g *Game) handleActions(a Actions) error {
	if a.Quit {
		return ebiten.Termination
	}
	if a.Reset {
		g.car.Reset()
		g.camera.Reset()
	}
	if a.ToggleHUD {
		g.prefs.ToggleHUD()
	}
	if a.ToggleBasis {
		g.prefs.ToggleBasis()
	}
	if a.LineWidthDelta != 0 {
		g.prefs.SetLineWidth(g.prefs.Get().LineWidth + a.LineWidthDelta)
	}
	if a.SavePreferences {
		if err := g.prefs.Save(); err != nil {
			log.Printf("[Settings] Warning: %v", err)
		}
	}
	return nil
}

// applyPendingReload picks up at most one config change without blocking.
func (g *Game) applyPendingReload() {
	if g.watcher == nil {
		return
	}
	select {
	case path, ok := <-g.watcher.Events:
		if !ok {
			g.watcher = nil
			return
		}
		if err := g.reloadConfig(path); err != nil {
			log.Printf("[Config] Warning: reload failed, keeping previous config: %v", err)
		}
	case err, ok := <-g.watcher.Errors:
		if ok {
			log.Printf("[Config] Warning: watcher error: %v", err)
		}
	default:
	}
}

func (g *Game) reloadConfig(path string) error {
	cfg, err := config.LoadConfig(path)
	if err != nil {
		return err
	}
	return g.applyConfig(cfg)
}

// applyConfig swaps in cfg. Nothing changes unless every part builds.
// The camera is rebuilt, so its filter starts over.
func (g *Game) applyConfig(cfg *config.Config) error {
	cam, err := camera.NewWithSettings(cfg.GetAspectRatio(), cfg.CameraSettings())
	if err != nil {
		return err
	}

	city := g.city
	if cfg.City != g.config.City {
		if city, err = scene.NewCityScene(cfg.City); err != nil {
			return err
		}
	}

	// The camera steps by 1/TPS, so the loop rate must follow.
	if cfg.Display.TPS != g.config.Display.TPS {
		ebiten.SetTPS(cfg.Display.TPS)
	}

	g.camera = cam
	g.city = city
	g.car.SetConfig(cfg.Vehicle)
	g.threading.PerformanceMonitor.EnableDetailedLogging(cfg.Debug.DetailedStats)
	g.config = cfg
	log.Printf("[Config] Reloaded configuration")
	return nil
}

// Shutdown stops background work. Safe to call more than once.
func (g *Game) Shutdown() {
	if g.watcher != nil {
		if err := g.watcher.Close(); err != nil {
			log.Printf("[Config] Warning: closing watcher: %v", err)
		}
		g.watcher = nil
	}
	if g.threading != nil {
		log.Printf("[Game] Shutting down after %d frames", g.threading.PerformanceMonitor.GetFrameCount())
		g.threading.Shutdown()
		g.threading = nil
	}
}

func (g *Game) Update() error {
	return g.gameLoop.Update()
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.gameLoop.Draw(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return g.gameLoop.Layout(outsideWidth, outsideHeight)
}

// Camera exposes the follow camera for debugging tools.
func (g *Game) Camera() *camera.FollowCamera {
	return g.camera
}

// Car exposes the followed car.
func (g *Game) Car() *vehicle.Car {
	return g.car
}
