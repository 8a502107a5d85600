package camera

import (
	"errors"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Follow camera tuning. These are the values the camera was tuned with and
// DefaultSettings returns them unchanged.
const (
	// FieldOfView is the vertical field of view in radians (60 degrees).
	FieldOfView float32 = math32.Pi / 3

	// NearPlane and FarPlane bound the perspective frustum in world units.
	NearPlane float32 = 0.1
	FarPlane  float32 = 100000

	// AxisDistanceToTarget is how far the camera sits above the target and,
	// separately, along the filtered right vector (world units).
	AxisDistanceToTarget float32 = 1000

	// AngleFollowSpeed is how fast the interpolator advances, per second,
	// while the target turns smoothly. At 0.015 the ease takes ~67s to
	// saturate.
	AngleFollowSpeed float32 = 0.015

	// AngleThreshold is the minimum dot product between this frame's and the
	// previous frame's right axis for the turn to count as smooth.
	// arccos(0.85) is about 31.8 degrees.
	AngleThreshold float32 = 0.85
)

var (
	// WorldRight is the lateral axis the filter starts from.
	WorldRight = mgl32.Vec3{1, 0, 0}

	// WorldUp is used for the vertical offset and the basis reconstruction.
	WorldUp = mgl32.Vec3{0, 1, 0}
)

// ErrInvalidAspectRatio is returned when a camera is built with an aspect
// ratio that is not a finite positive number.
var ErrInvalidAspectRatio = errors.New("camera: aspect ratio must be a finite positive number")

// Settings groups the tunables of a FollowCamera.
type Settings struct {
	FieldOfView      float32 // radians
	NearPlane        float32
	FarPlane         float32
	AxisDistance     float32
	AngleFollowSpeed float32
	AngleThreshold   float32
}

// DefaultSettings returns the tuning constants above.
func DefaultSettings() Settings {
	return Settings{
		FieldOfView:      FieldOfView,
		NearPlane:        NearPlane,
		FarPlane:         FarPlane,
		AxisDistance:     AxisDistanceToTarget,
		AngleFollowSpeed: AngleFollowSpeed,
		AngleThreshold:   AngleThreshold,
	}
}

// Projection builds the perspective matrix for the given aspect ratio.
func (s Settings) Projection(aspectRatio float32) (mgl32.Mat4, error) {
	if !validAspectRatio(aspectRatio) {
		return mgl32.Mat4{}, ErrInvalidAspectRatio
	}
	return mgl32.Perspective(s.FieldOfView, aspectRatio, s.NearPlane, s.FarPlane), nil
}

func validAspectRatio(aspectRatio float32) bool {
	// NaN fails the comparison
	return aspectRatio > 0 && !math32.IsInf(aspectRatio, 1)
}
