// keytracker.go - minimal edge-triggered input for Ebiten v2.8.8
// Remembers last frame's state per key so toggles fire once per press.
package keytracker

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// KeyStateTracker tracks the previous state of the keys it is asked about.
type KeyStateTracker struct {
	isPressed   func(ebiten.Key) bool
	prevPressed map[ebiten.Key]bool
}

// New returns a tracker reading the live keyboard.
func New() *KeyStateTracker {
	return NewWithSource(ebiten.IsKeyPressed)
}

// NewWithSource returns a tracker reading key state from isPressed.
func NewWithSource(isPressed func(ebiten.Key) bool) *KeyStateTracker {
	return &KeyStateTracker{
		isPressed:   isPressed,
		prevPressed: make(map[ebiten.Key]bool),
	}
}

// IsKeyJustPressed returns true if the key was not pressed last time it was
// asked about but is pressed now. Ask once per frame per key.
func (k *KeyStateTracker) IsKeyJustPressed(key ebiten.Key) bool {
	pressed := k.isPressed(key)
	justPressed := pressed && !k.prevPressed[key]
	k.prevPressed[key] = pressed
	return justPressed
}
