package collision

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// BoundingBox is an axis aligned box in 3D
type BoundingBox struct {
	Min mgl32.Vec3
	Max mgl32.Vec3
}

// NewBoundingBox returns the smallest box holding every point. No points
// gives an empty box.
func NewBoundingBox(points ...mgl32.Vec3) BoundingBox {
	bb := EmptyBox()
	for _, p := range points {
		bb = bb.Extend(p)
	}
	return bb
}

// EmptyBox contains nothing; extending it by a point gives that point.
func EmptyBox() BoundingBox {
	inf := math32.Inf(1)
	return BoundingBox{
		Min: mgl32.Vec3{inf, inf, inf},
		Max: mgl32.Vec3{-inf, -inf, -inf},
	}
}

// IsEmpty reports whether the box holds no point
func (bb BoundingBox) IsEmpty() bool {
	return bb.Min.X() > bb.Max.X() || bb.Min.Y() > bb.Max.Y() || bb.Min.Z() > bb.Max.Z()
}

// Extend grows the box to include p
func (bb BoundingBox) Extend(p mgl32.Vec3) BoundingBox {
	for i := 0; i < 3; i++ {
		bb.Min[i] = math32.Min(bb.Min[i], p[i])
		bb.Max[i] = math32.Max(bb.Max[i], p[i])
	}
	return bb
}

// GetCorners returns the eight corners, bottom face first
func (bb BoundingBox) GetCorners() [8]mgl32.Vec3 {
	lo, hi := bb.Min, bb.Max
	return [8]mgl32.Vec3{
		{lo.X(), lo.Y(), lo.Z()}, {hi.X(), lo.Y(), lo.Z()}, {hi.X(), lo.Y(), hi.Z()}, {lo.X(), lo.Y(), hi.Z()},
		{lo.X(), hi.Y(), lo.Z()}, {hi.X(), hi.Y(), lo.Z()}, {hi.X(), hi.Y(), hi.Z()}, {lo.X(), hi.Y(), hi.Z()},
	}
}

// Contains checks if a point is inside the bounding box
func (bb BoundingBox) Contains(p mgl32.Vec3) bool {
	for i := 0; i < 3; i++ {
		if p[i] < bb.Min[i] || p[i] > bb.Max[i] {
			return false
		}
	}
	return true
}

// Transform returns the box around the transformed corners
func (bb BoundingBox) Transform(m mgl32.Mat4) BoundingBox {
	if bb.IsEmpty() {
		return bb
	}
	out := EmptyBox()
	for _, c := range bb.GetCorners() {
		out = out.Extend(mgl32.TransformCoordinate(c, m))
	}
	return out
}

// OutsideFrustum reports whether viewProj puts every corner beyond the same
// clip plane. False does not guarantee visibility.
func (bb BoundingBox) OutsideFrustum(viewProj mgl32.Mat4) bool {
	if bb.IsEmpty() {
		return true
	}

	// One bit per plane: left, right, bottom, top, near, far.
	outside := uint8(0x3f)
	for _, c := range bb.GetCorners() {
		clip := viewProj.Mul4x1(c.Vec4(1))
		x, y, z, w := clip.X(), clip.Y(), clip.Z(), clip.W()

		var code uint8
		if x < -w {
			code |= 1 << 0
		}
		if x > w {
			code |= 1 << 1
		}
		if y < -w {
			code |= 1 << 2
		}
		if y > w {
			code |= 1 << 3
		}
		if z < -w {
			code |= 1 << 4
		}
		if z > w {
			code |= 1 << 5
		}
		outside &= code
		if outside == 0 {
			return false
		}
	}
	return true
}
