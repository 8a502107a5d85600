package game

import (
	"fmt"
	"image/color"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	ebitext "github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

const (
	hudMargin     = 10
	hudLineHeight = 15
	hudWidth      = 330
)

var (
	HUDColorPanel = color.RGBA{0, 0, 0, 140}
	HUDColorText  = color.RGBA{255, 255, 255, 255}
	HUDColorWarn  = color.RGBA{255, 190, 60, 255}
)

const helpText = "WASD/arrows drive  Space brake  Q snap  R reset  H hud  B basis  -/= width  F5 save  Esc quit"

// HUD draws the camera and car state in the top left corner
type HUD struct {
	game *Game
}

// NewHUD creates a new HUD
func NewHUD(game *Game) *HUD {
	return &HUD{game: game}
}

// Lines returns the HUD text, one entry per row.
func (h *HUD) Lines() []string {
	g := h.game
	cam := g.camera
	right := cam.CurrentRight()
	metrics := g.threading.GetPerformanceMetrics()

	branch := "smooth"
	if cam.Interpolator() == 0 {
		branch = "frozen"
	}

	return []string{
		fmt.Sprintf("Speed: %6.0f  Yaw: %6.1f deg", g.car.Speed, mgl32.RadToDeg(g.car.Yaw)),
		fmt.Sprintf("Interpolator: %.4f (%s)", cam.Interpolator(), branch),
		fmt.Sprintf("Right: (%.3f, %.3f, %.3f)", right.X(), right.Y(), right.Z()),
		fmt.Sprintf("Discontinuities: %d", cam.Discontinuities()),
		fmt.Sprintf("Segments: %d drawn, %d clipped, %d instances culled", len(g.lastProjection.Segments), g.lastProjection.Clipped, g.lastProjection.Culled),
		fmt.Sprintf("FPS: %.1f  Update: %v  Camera: %v", metrics.FramesPerSecond, metrics.UpdateTime, metrics.CameraUpdate),
		statsLine(g.threading.GetDetailedStats()),
	}
}

// statsLine summarizes the monitor's running statistics. Missing keys show
// as zero.
func statsLine(stats map[string]interface{}) string {
	uptime, _ := stats["uptime_seconds"].(float64)
	frames, _ := stats["frame_count"].(uint64)
	avg, _ := stats["avg_frame_time_ms"].(float64)
	goroutines, _ := stats["goroutines"].(int)
	return fmt.Sprintf("Uptime: %.0fs  Frames: %d  Avg update: %.3f ms  Goroutines: %d", uptime, frames, avg, goroutines)
}

// Draw renders the panel, the state lines and any performance alerts
func (h *HUD) Draw(screen *ebiten.Image) {
	lines := h.Lines()
	alerts := h.game.threading.CheckPerformanceAlerts()

	panelHeight := float32((len(lines)+len(alerts))*hudLineHeight + 2*hudMargin)
	vector.DrawFilledRect(screen, hudMargin/2, hudMargin/2, hudWidth, panelHeight, HUDColorPanel, false)

	face := basicfont.Face7x13
	y := hudMargin + face.Ascent
	for _, line := range lines {
		ebitext.Draw(screen, line, face, hudMargin, y, HUDColorText)
		y += hudLineHeight
	}
	for _, alert := range alerts {
		ebitext.Draw(screen, alert.Message, face, hudMargin, y, HUDColorWarn)
		y += hudLineHeight
	}

	if !h.game.prefs.Persistent() {
		ebitenutil.DebugPrintAt(screen, "Preferences are not persistent", hudMargin, h.game.config.GetScreenHeight()-40)
	}
	ebitenutil.DebugPrintAt(screen, helpText, hudMargin, h.game.config.GetScreenHeight()-20)
}
