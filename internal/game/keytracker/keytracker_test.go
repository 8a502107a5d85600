package keytracker

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

func TestIsKeyJustPressed(t *testing.T) {
	down := map[ebiten.Key]bool{}
	tracker := NewWithSource(func(k ebiten.Key) bool { return down[k] })

	if tracker.IsKeyJustPressed(ebiten.KeyH) {
		t.Fatal("Expected no press before the key goes down")
	}

	down[ebiten.KeyH] = true
	if !tracker.IsKeyJustPressed(ebiten.KeyH) {
		t.Fatal("Expected a press on the first frame the key is down")
	}
	if tracker.IsKeyJustPressed(ebiten.KeyH) {
		t.Error("Expected a held key to fire only once")
	}

	down[ebiten.KeyH] = false
	tracker.IsKeyJustPressed(ebiten.KeyH)
	down[ebiten.KeyH] = true
	if !tracker.IsKeyJustPressed(ebiten.KeyH) {
		t.Error("Expected a second press after release")
	}
}

func TestKeysTrackedIndependently(t *testing.T) {
	down := map[ebiten.Key]bool{ebiten.KeyB: true}
	tracker := NewWithSource(func(k ebiten.Key) bool { return down[k] })

	if !tracker.IsKeyJustPressed(ebiten.KeyB) {
		t.Fatal("Expected B to fire")
	}
	down[ebiten.KeyH] = true
	if !tracker.IsKeyJustPressed(ebiten.KeyH) {
		t.Error("Expected H to fire although B is held")
	}
}
