// Package vehicle holds the car the follow camera trails. Movement is
// kinematic: speed ramps toward a throttle target and steering turns the car
// in proportion to its speed. There is no collision.
package vehicle

import (
	"followcam/internal/config"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Car dimensions in world units, used to draw it.
const (
	Length float32 = 450
	Width  float32 = 200
	Height float32 = 140
)

// Controls is the driver input for one update.
type Controls struct {
	Throttle float32 // -1 (reverse) .. 1 (forward)
	Steer    float32 // -1 (right) .. 1 (left)
	Brake    bool
	SnapTurn bool // rotate by the configured snap angle at once
}

// Car is a kinematic vehicle moving on the XZ plane.
type Car struct {
	Position mgl32.Vec3
	Yaw      float32 // Radians around world up; 0 faces -Z
	Speed    float32 // Signed, world units per second

	cfg config.VehicleConfig
}

// NewCar creates a car at the origin facing -Z.
func NewCar(cfg config.VehicleConfig) *Car {
	return &Car{cfg: cfg}
}

// Update moves the car by elapsed seconds of driving with the given controls.
func (c *Car) Update(elapsed float32, controls Controls) {
	if controls.SnapTurn {
		c.Yaw = wrapAngle(c.Yaw + c.cfg.GetSnapTurnRadians())
	}

	target := mgl32.Clamp(controls.Throttle, -1, 1) * c.cfg.MaxSpeed
	rate := c.cfg.Acceleration
	if controls.Brake {
		target = 0
		rate = c.cfg.Braking
	}
	c.Speed = approach(c.Speed, target, rate*elapsed)

	if c.cfg.MaxSpeed > 0 {
		// Steering needs motion; reversing inverts it like a real car.
		speedFraction := c.Speed / c.cfg.MaxSpeed
		c.Yaw = wrapAngle(c.Yaw + mgl32.Clamp(controls.Steer, -1, 1)*c.cfg.TurnRate*speedFraction*elapsed)
	}

	c.Position = c.Position.Add(c.Forward().Mul(c.Speed * elapsed))
}

// Reset puts the car back at the origin, stopped and facing -Z.
func (c *Car) Reset() {
	c.Position = mgl32.Vec3{}
	c.Yaw = 0
	c.Speed = 0
}

// SetConfig swaps the tuning, e.g. after a config reload.
func (c *Car) SetConfig(cfg config.VehicleConfig) {
	c.cfg = cfg
}

// World returns the car's world transform: rotation about Y, then
// translation.
func (c *Car) World() mgl32.Mat4 {
	return mgl32.Translate3D(c.Position[0], c.Position[1], c.Position[2]).Mul4(mgl32.HomogRotate3DY(c.Yaw))
}

// Forward is the unit direction the car drives toward.
func (c *Car) Forward() mgl32.Vec3 {
	return mgl32.Vec3{-math32.Sin(c.Yaw), 0, -math32.Cos(c.Yaw)}
}

// Right is the car's lateral axis, the first column of World.
func (c *Car) Right() mgl32.Vec3 {
	return mgl32.Vec3{math32.Cos(c.Yaw), 0, -math32.Sin(c.Yaw)}
}

// Corners returns the eight corners of the car's bounding box in world
// space, bottom face first.
func (c *Car) Corners() [8]mgl32.Vec3 {
	world := c.World()
	hl, hw := Length/2, Width/2
	local := [8]mgl32.Vec3{
		{-hw, 0, -hl}, {hw, 0, -hl}, {hw, 0, hl}, {-hw, 0, hl},
		{-hw, Height, -hl}, {hw, Height, -hl}, {hw, Height, hl}, {-hw, Height, hl},
	}
	var corners [8]mgl32.Vec3
	for i, p := range local {
		corners[i] = mgl32.TransformCoordinate(p, world)
	}
	return corners
}

func approach(value, target, step float32) float32 {
	if value < target {
		return math32.Min(value+step, target)
	}
	return math32.Max(value-step, target)
}

// wrapAngle keeps yaw in (-pi, pi].
func wrapAngle(angle float32) float32 {
	for angle > math32.Pi {
		angle -= 2 * math32.Pi
	}
	for angle <= -math32.Pi {
		angle += 2 * math32.Pi
	}
	return angle
}
