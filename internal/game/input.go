package game

import (
	"followcam/internal/game/keytracker"
	"followcam/internal/vehicle"

	"github.com/hajimehoshi/ebiten/v2"
)

// lineWidthStep is how much one press of -/= changes the wire width.
const lineWidthStep = 0.5

// Actions are the one-shot requests of a frame.
type Actions struct {
	Reset           bool
	ToggleHUD       bool
	ToggleBasis     bool
	SavePreferences bool
	Quit            bool
	LineWidthDelta  float32
}

// InputHandler turns the keyboard into driving controls and actions.
type InputHandler struct {
	isPressed func(ebiten.Key) bool
	keys      *keytracker.KeyStateTracker
}

// NewInputHandler reads the live keyboard.
func NewInputHandler() *InputHandler {
	return newInputHandler(ebiten.IsKeyPressed)
}

func newInputHandler(isPressed func(ebiten.Key) bool) *InputHandler {
	return &InputHandler{
		isPressed: isPressed,
		keys:      keytracker.NewWithSource(isPressed),
	}
}

// Poll reads this frame's input. Call it once per update.
func (ih *InputHandler) Poll() (vehicle.Controls, Actions) {
	return ih.controls(), ih.actions()
}

// controls handles held keys: arrows or WASD drive, Space brakes.
func (ih *InputHandler) controls() vehicle.Controls {
	var c vehicle.Controls

	if ih.anyPressed(ebiten.KeyUp, ebiten.KeyW) {
		c.Throttle++
	}
	if ih.anyPressed(ebiten.KeyDown, ebiten.KeyS) {
		c.Throttle--
	}
	if ih.anyPressed(ebiten.KeyLeft, ebiten.KeyA) {
		c.Steer++
	}
	if ih.anyPressed(ebiten.KeyRight, ebiten.KeyD) {
		c.Steer--
	}
	c.Brake = ih.isPressed(ebiten.KeySpace)
	c.SnapTurn = ih.keys.IsKeyJustPressed(ebiten.KeyQ)

	return c
}

// actions handles edge-triggered keys.
func (ih *InputHandler) actions() Actions {
	a := Actions{
		Reset:           ih.keys.IsKeyJustPressed(ebiten.KeyR),
		ToggleHUD:       ih.keys.IsKeyJustPressed(ebiten.KeyH),
		ToggleBasis:     ih.keys.IsKeyJustPressed(ebiten.KeyB),
		SavePreferences: ih.keys.IsKeyJustPressed(ebiten.KeyF5),
		Quit:            ih.keys.IsKeyJustPressed(ebiten.KeyEscape),
	}
	if ih.keys.IsKeyJustPressed(ebiten.KeyMinus) {
		a.LineWidthDelta -= lineWidthStep
	}
	if ih.keys.IsKeyJustPressed(ebiten.KeyEqual) {
		a.LineWidthDelta += lineWidthStep
	}
	return a
}

func (ih *InputHandler) anyPressed(keys ...ebiten.Key) bool {
	for _, k := range keys {
		if ih.isPressed(k) {
			return true
		}
	}
	return false
}
