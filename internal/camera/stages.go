package camera

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Basis is the viewing basis rebuilt on every update. Right and Up are not
// normalized; their lengths follow from the cross products (sin of the
// pitch angle) and LookAt normalizes them itself.
type Basis struct {
	Forward mgl32.Vec3
	Right   mgl32.Vec3
	Up      mgl32.Vec3
}

// Orthogonality returns the largest absolute pairwise dot product of the
// normalized basis vectors. A well formed basis returns ~0.
func (b Basis) Orthogonality() float32 {
	f := b.Forward.Normalize()
	r := b.Right.Normalize()
	u := b.Up.Normalize()
	worst := math32.Abs(f.Dot(r))
	worst = math32.Max(worst, math32.Abs(f.Dot(u)))
	worst = math32.Max(worst, math32.Abs(r.Dot(u)))
	return worst
}

// TargetFrom extracts the position (translation column) and the right axis
// (first basis column) of a world transform.
func TargetFrom(world mgl32.Mat4) (position, right mgl32.Vec3) {
	return world.Col(3).Vec3(), world.Col(0).Vec3()
}

// IsSmoothTurn reports whether the target's right axis moved less than the
// threshold allows since the previous frame. Equality counts as a
// discontinuity.
func IsSmoothTurn(targetRight, pastRight mgl32.Vec3, threshold float32) bool {
	return targetRight.Dot(pastRight) > threshold
}

// EaseRight blends current toward target by interpolator squared.
// The result is a plain linear blend and is not renormalized.
func EaseRight(current, target mgl32.Vec3, interpolator float32) mgl32.Vec3 {
	amount := interpolator * interpolator
	if amount >= 1 {
		return target
	}
	return current.Add(target.Sub(current).Mul(amount))
}

// CameraPosition places the camera distance units above the target and
// distance units along the filtered right vector.
func CameraPosition(target, right mgl32.Vec3, distance float32) mgl32.Vec3 {
	return target.Add(right.Mul(distance)).Add(WorldUp.Mul(distance))
}

// ReconstructBasis derives an up vector that is orthogonal to the viewing
// direction. A fixed world up rolls the view once forward gets close to
// vertical; crossing twice keeps up perpendicular to forward.
//
// eye == target yields NaN components.
func ReconstructBasis(eye, target mgl32.Vec3) Basis {
	forward := target.Sub(eye).Normalize()
	right := forward.Cross(WorldUp)
	up := right.Cross(forward)
	return Basis{Forward: forward, Right: right, Up: up}
}
