package camera

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestTargetFrom(t *testing.T) {
	world := yawed(mgl32.Vec3{3, 4, 5}, mgl32.DegToRad(90))

	position, right := TargetFrom(world)

	assert.Equal(t, mgl32.Vec3{3, 4, 5}, position)
	assertVecInDelta(t, mgl32.Vec3{0, 0, -1}, right, standardTol)
}

func TestIsSmoothTurn(t *testing.T) {
	past := mgl32.Vec3{1, 0, 0}

	testCases := []struct {
		name   string
		target mgl32.Vec3
		want   bool
	}{
		{"same axis", mgl32.Vec3{1, 0, 0}, true},
		{"exactly at threshold", mgl32.Vec3{0.85, 0.5267827, 0}, false},
		{"slightly above threshold", mgl32.Vec3{0.851, 0.5251657, 0}, true},
		{"perpendicular", mgl32.Vec3{0, 0, 1}, false},
		{"opposite", mgl32.Vec3{-1, 0, 0}, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, IsSmoothTurn(tc.target, past, AngleThreshold))
		})
	}
}

func TestEaseRight(t *testing.T) {
	current := mgl32.Vec3{1, 0, 0}
	target := mgl32.Vec3{0, 0, 1}

	assert.Equal(t, current, EaseRight(current, target, 0))
	assert.Equal(t, target, EaseRight(current, target, 1))

	// Squared progress: half way through the ease moves a quarter of the way.
	assertVecInDelta(t, mgl32.Vec3{0.75, 0, 0.25}, EaseRight(current, target, 0.5), standardTol)
	assertVecInDelta(t, mgl32.Vec3{0.99, 0, 0.01}, EaseRight(current, target, 0.1), standardTol)
}

func TestCameraPosition(t *testing.T) {
	got := CameraPosition(mgl32.Vec3{10, 0, -10}, mgl32.Vec3{0, 0, 1}, AxisDistanceToTarget)
	assert.Equal(t, mgl32.Vec3{10, 1000, 990}, got)
}

func TestReconstructBasis(t *testing.T) {
	testCases := []struct {
		name   string
		eye    mgl32.Vec3
		target mgl32.Vec3
	}{
		{"default offset", mgl32.Vec3{1000, 1000, 0}, mgl32.Vec3{}},
		{"steep", mgl32.Vec3{1, 1000, 0}, mgl32.Vec3{}},
		{"below target", mgl32.Vec3{500, -200, 300}, mgl32.Vec3{0, 50, 0}},
		{"far away", mgl32.Vec3{50000, 1000, -40000}, mgl32.Vec3{49000, 0, -40000}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			b := ReconstructBasis(tc.eye, tc.target)

			assert.InDelta(t, 1, b.Forward.Len(), 1e-5)
			assert.InDelta(t, 0, b.Forward.Dot(b.Up), 1e-4)
			assert.InDelta(t, 0, b.Forward.Dot(b.Right), 1e-4)
			assert.InDelta(t, 0, b.Right.Dot(b.Up), 1e-4)
			assert.Less(t, b.Orthogonality(), float32(1e-4))
			// Right is always horizontal, up never points down.
			assert.InDelta(t, 0, b.Right.Y(), 1e-6)
			assert.GreaterOrEqual(t, b.Up.Y(), float32(0))
		})
	}
}

// A fixed world up and the reconstructed up give the same view as long as
// forward is not vertical.
func TestReconstructedUpMatchesWorldUpView(t *testing.T) {
	eye := mgl32.Vec3{1000, 1000, 0}
	target := mgl32.Vec3{}
	b := ReconstructBasis(eye, target)

	withReconstructed := mgl32.LookAtV(eye, target, b.Up)
	withWorldUp := mgl32.LookAtV(eye, target, WorldUp)

	for i := range withWorldUp {
		assert.InDelta(t, withWorldUp[i], withReconstructed[i], 1e-3, "element %d", i)
	}
}
