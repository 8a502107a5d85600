package game

import (
	"followcam/internal/scene"
	"followcam/internal/threading/monitoring"

	"github.com/hajimehoshi/ebiten/v2"
)

// GameLoop manages the main update and render cycle
type GameLoop struct {
	game     *Game
	renderer *Renderer
	hud      *HUD
}

// NewGameLoop creates a new game loop manager
func NewGameLoop(game *Game) *GameLoop {
	return &GameLoop{
		game:     game,
		renderer: NewRenderer(game),
		hud:      NewHUD(game),
	}
}

// Update handles all logic for one frame: config reload, input, then the
// car and the camera.
func (gl *GameLoop) Update() error {
	frameTimer := gl.game.threading.PerformanceMonitor.StartFrame()
	defer frameTimer.EndFrame()

	// Config changes land between frames, never mid-update.
	gl.game.applyPendingReload()

	controls, actions := gl.game.input.Poll()
	if err := gl.game.handleActions(actions); err != nil {
		return err
	}

	gl.game.step(controls)
	return nil
}

// Draw handles all rendering for one frame
func (gl *GameLoop) Draw(screen *ebiten.Image) {
	g := gl.game
	monitor := g.threading.PerformanceMonitor

	gl.renderer.Clear(screen)

	monitor.ProfiledFunction(monitoring.StageSceneProject, func() {
		g.lastProjection = g.city.Project(g.camera.ViewProjection(), gl.viewport(), g.threading.ParallelRenderer)
	})
	monitor.ProfiledFunction(monitoring.StageSceneDraw, func() {
		gl.renderer.DrawCity(screen, g.lastProjection.Segments)
		gl.renderer.DrawCar(screen)
		if g.prefs.Get().ShowBasis {
			gl.renderer.DrawBasis(screen)
		}
	})

	gl.updatePerformanceMetrics()

	if g.prefs.Get().ShowHUD {
		gl.hud.Draw(screen)
	}
}

// Layout returns the screen dimensions
func (gl *GameLoop) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return gl.game.config.GetScreenWidth(), gl.game.config.GetScreenHeight()
}

func (gl *GameLoop) viewport() scene.Viewport {
	return scene.Viewport{
		Width:  float32(gl.game.config.GetScreenWidth()),
		Height: float32(gl.game.config.GetScreenHeight()),
	}
}

// updatePerformanceMetrics records what the last frame drew
func (gl *GameLoop) updatePerformanceMetrics() {
	g := gl.game
	g.threading.PerformanceMonitor.UpdateSceneMetrics(
		uint64(len(g.lastProjection.Segments)),
		uint64(g.lastProjection.Clipped),
		int32(g.city.InstanceCount()),
		g.camera.Discontinuities(),
	)
}
