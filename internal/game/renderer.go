package game

import (
	"image/color"

	"followcam/internal/mathutil"
	"followcam/internal/scene"
	"followcam/internal/threading/rendering"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Gizmo colors for the camera basis
var (
	GizmoColorRight   = color.RGBA{230, 60, 60, 255}
	GizmoColorUp      = color.RGBA{60, 200, 60, 255}
	GizmoColorForward = color.RGBA{70, 110, 240, 255}
)

// Renderer draws the wireframe world onto the screen
type Renderer struct {
	game *Game
}

// NewRenderer creates a new renderer
func NewRenderer(game *Game) *Renderer {
	return &Renderer{game: game}
}

// rgb converts a config color triple, clamping each channel to a byte.
func rgb(c [3]int) color.RGBA {
	return color.RGBA{
		uint8(mathutil.IntClamp(c[0], 0, 255)),
		uint8(mathutil.IntClamp(c[1], 0, 255)),
		uint8(mathutil.IntClamp(c[2], 0, 255)),
		255,
	}
}

// Clear fills the screen with the background color
func (r *Renderer) Clear(screen *ebiten.Image) {
	screen.Fill(rgb(r.game.config.Graphics.Background))
}

// DrawCity strokes the projected city segments
func (r *Renderer) DrawCity(screen *ebiten.Image, segments []rendering.Segment) {
	clr := rgb(r.game.config.Graphics.WireColor)
	width := r.game.prefs.Get().LineWidth
	for _, s := range segments {
		vector.StrokeLine(screen, s.X0, s.Y0, s.X1, s.Y1, width, clr, false)
	}
}

// DrawCar strokes the car's bounding box
func (r *Renderer) DrawCar(screen *ebiten.Image) {
	viewProj := r.game.camera.ViewProjection()
	vp := r.game.gameLoop.viewport()
	clr := rgb(r.game.config.Graphics.CarColor)
	width := r.game.prefs.Get().LineWidth + 1

	corners := r.game.car.Corners()
	for _, e := range scene.BoxEdges {
		if s, ok := scene.ProjectSegment(viewProj, corners[e[0]], corners[e[1]], vp); ok {
			vector.StrokeLine(screen, s.X0, s.Y0, s.X1, s.Y1, width, clr, true)
		}
	}
}

// DrawBasis draws the camera's right, up and forward axes at the target
func (r *Renderer) DrawBasis(screen *ebiten.Image) {
	cam := r.game.camera
	viewProj := cam.ViewProjection()
	vp := r.game.gameLoop.viewport()
	length := r.game.config.Graphics.GizmoLength

	origin := cam.Target()
	basis := cam.Basis()
	axes := []struct {
		dir mgl32.Vec3
		clr color.RGBA
	}{
		{basis.Right, GizmoColorRight},
		{basis.Up, GizmoColorUp},
		{basis.Forward, GizmoColorForward},
	}
	for _, axis := range axes {
		if axis.dir.Len() == 0 {
			continue
		}
		tip := origin.Add(axis.dir.Normalize().Mul(length))
		if s, ok := scene.ProjectSegment(viewProj, origin, tip, vp); ok {
			vector.StrokeLine(screen, s.X0, s.Y0, s.X1, s.Y1, 2, axis.clr, true)
		}
	}
}
