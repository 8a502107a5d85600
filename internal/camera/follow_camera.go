// Package camera implements a camera that trails a moving target from above
// and to its side, filtering the target's right axis so that sharp turns do
// not snap or roll the view.
//
// A FollowCamera is not safe for concurrent use. Call Update once per frame
// and read View/Projection afterwards from the same goroutine.
//
// Inputs are not sanitized: a zero-length right axis, or a target that
// coincides with the computed camera position, produce NaN matrices.
package camera

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// FollowCamera follows a world transform, typically a vehicle.
type FollowCamera struct {
	settings Settings

	currentRight mgl32.Vec3
	pastRight    mgl32.Vec3
	interpolator float32

	projection mgl32.Mat4
	view       mgl32.Mat4

	// last update, kept for inspection
	position        mgl32.Vec3
	target          mgl32.Vec3
	basis           Basis
	discontinuities uint64
}

// New creates a FollowCamera with the default settings.
func New(aspectRatio float32) (*FollowCamera, error) {
	return NewWithSettings(aspectRatio, DefaultSettings())
}

// NewWithSettings creates a FollowCamera with custom tuning.
func NewWithSettings(aspectRatio float32, settings Settings) (*FollowCamera, error) {
	projection, err := settings.Projection(aspectRatio)
	if err != nil {
		return nil, err
	}

	return &FollowCamera{
		settings:     settings,
		currentRight: WorldRight,
		pastRight:    WorldRight,
		projection:   projection,
		view:         mgl32.Ident4(),
	}, nil
}

// Update advances the filter by elapsedSeconds and recomputes the view
// matrix so that it looks at the position of followedWorld.
func (c *FollowCamera) Update(elapsedSeconds float32, followedWorld mgl32.Mat4) {
	followedPosition, followedRight := TargetFrom(followedWorld)

	if IsSmoothTurn(followedRight, c.pastRight, c.settings.AngleThreshold) {
		c.interpolator += elapsedSeconds * c.settings.AngleFollowSpeed
		c.interpolator = clamp01(c.interpolator)
		c.currentRight = EaseRight(c.currentRight, followedRight, c.interpolator)
	} else {
		// Sharp turn: restart the ease and keep the filtered direction as is.
		c.interpolator = 0
		c.discontinuities++
	}

	// Raw axis, not the filtered one.
	c.pastRight = followedRight

	c.position = CameraPosition(followedPosition, c.currentRight, c.settings.AxisDistance)
	c.target = followedPosition
	c.basis = ReconstructBasis(c.position, followedPosition)
	c.view = mgl32.LookAtV(c.position, followedPosition, c.basis.Up)
}

// Reset puts the filter back to its initial state. The projection is kept.
func (c *FollowCamera) Reset() {
	c.currentRight = WorldRight
	c.pastRight = WorldRight
	c.interpolator = 0
	c.view = mgl32.Ident4()
	c.position = mgl32.Vec3{}
	c.target = mgl32.Vec3{}
	c.basis = Basis{}
	c.discontinuities = 0
}

// View returns the view matrix of the last update.
func (c *FollowCamera) View() mgl32.Mat4 {
	return c.view
}

// Projection returns the perspective matrix fixed at construction.
func (c *FollowCamera) Projection() mgl32.Mat4 {
	return c.projection
}

// ViewProjection returns Projection * View.
func (c *FollowCamera) ViewProjection() mgl32.Mat4 {
	return c.projection.Mul4(c.view)
}

// Position returns the camera position of the last update.
func (c *FollowCamera) Position() mgl32.Vec3 {
	return c.position
}

// Target returns the followed position of the last update.
func (c *FollowCamera) Target() mgl32.Vec3 {
	return c.target
}

// CurrentRight returns the filtered right vector. It is unit length only
// once the filter has converged; mid-turn the blend is shorter, which pulls
// the camera's sideways offset in toward the target.
func (c *FollowCamera) CurrentRight() mgl32.Vec3 {
	return c.currentRight
}

// PastRight returns the raw right axis seen on the previous update.
func (c *FollowCamera) PastRight() mgl32.Vec3 {
	return c.pastRight
}

// Interpolator returns the ease progress in [0, 1].
func (c *FollowCamera) Interpolator() float32 {
	return c.interpolator
}

// Basis returns the viewing basis of the last update.
func (c *FollowCamera) Basis() Basis {
	return c.basis
}

// Discontinuities counts the updates that took the sharp turn branch.
func (c *FollowCamera) Discontinuities() uint64 {
	return c.discontinuities
}

// Settings returns the tuning the camera was built with.
func (c *FollowCamera) Settings() Settings {
	return c.settings
}

// clamp01 also bounds the low end so that a negative elapsed time cannot
// drive the interpolator below zero.
func clamp01(v float32) float32 {
	return math32.Max(0, math32.Min(v, 1))
}
