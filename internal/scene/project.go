package scene

import (
	"followcam/internal/threading/core"
	"followcam/internal/threading/rendering"

	"github.com/go-gl/mathgl/mgl32"
)

// minClipW keeps the perspective divide away from zero.
const minClipW = 1e-6

// Viewport is the target surface in pixels.
type Viewport struct {
	Width, Height float32
}

// toScreen maps a clip space point to pixels, y growing downwards.
func (vp Viewport) toScreen(clip mgl32.Vec4) (float32, float32) {
	x := clip.X() / clip.W()
	y := clip.Y() / clip.W()
	return (x + 1) * 0.5 * vp.Width, (1 - y) * 0.5 * vp.Height
}

// ProjectPoint projects a world point. ok is false behind the near plane.
func ProjectPoint(viewProj mgl32.Mat4, p mgl32.Vec3, vp Viewport) (x, y float32, ok bool) {
	clip := viewProj.Mul4x1(p.Vec4(1))
	if clip.Z()+clip.W() < 0 || clip.W() <= minClipW {
		return 0, 0, false
	}
	x, y = vp.toScreen(clip)
	return x, y, true
}

// ProjectSegment projects the world segment a-b, cutting it at the near
// plane. ok is false when nothing of it can reach the screen.
func ProjectSegment(viewProj mgl32.Mat4, a, b mgl32.Vec3, vp Viewport) (rendering.Segment, bool) {
	ca := viewProj.Mul4x1(a.Vec4(1))
	cb := viewProj.Mul4x1(b.Vec4(1))

	// Signed distance to the near plane in clip space (z >= -w is visible).
	da := ca.Z() + ca.W()
	db := cb.Z() + cb.W()
	if da < 0 && db < 0 {
		return rendering.Segment{}, false
	}
	if da < 0 {
		ca = ca.Add(cb.Sub(ca).Mul(da / (da - db)))
	} else if db < 0 {
		cb = cb.Add(ca.Sub(cb).Mul(db / (db - da)))
	}
	if ca.W() <= minClipW || cb.W() <= minClipW {
		return rendering.Segment{}, false
	}

	var seg rendering.Segment
	seg.X0, seg.Y0 = vp.toScreen(ca)
	seg.X1, seg.Y1 = vp.toScreen(cb)

	// Trivial reject: both ends past the same screen edge.
	switch {
	case seg.X0 < 0 && seg.X1 < 0,
		seg.X0 > vp.Width && seg.X1 > vp.Width,
		seg.Y0 < 0 && seg.Y1 < 0,
		seg.Y0 > vp.Height && seg.Y1 > vp.Height:
		return rendering.Segment{}, false
	}
	return seg, true
}

// Projection is the wireframe of one frame.
type Projection struct {
	Segments []rendering.Segment
	Clipped  int64 // edges dropped entirely, culled ones included
	Culled   int64 // instances skipped by their bounds
}

// Project projects every instance's edges through viewProj. Each placement
// is one batch on the renderer; the result order matches InstanceTransforms.
func (s *CityScene) Project(viewProj mgl32.Mat4, vp Viewport, pr *rendering.ParallelRenderer) Projection {
	if pr == nil {
		pr = &rendering.ParallelRenderer{}
	}

	meshes := len(s.Model.Meshes)
	clipped := core.NewSafeCounter()
	culled := core.NewSafeCounter()

	segments := pr.ProjectBatches(len(s.Placements), func(batch int, dst []rendering.Segment) []rendering.Segment {
		var dropped, skipped int64
		for _, inst := range s.instances[batch*meshes : (batch+1)*meshes] {
			mesh := &s.Model.Meshes[inst.Mesh]
			if inst.Bounds.OutsideFrustum(viewProj) {
				dropped += int64(len(mesh.Edges))
				skipped++
				continue
			}

			mvp := viewProj.Mul4(inst.World)
			for _, e := range mesh.Edges {
				seg, ok := ProjectSegment(mvp, mesh.Vertices[e[0]], mesh.Vertices[e[1]], vp)
				if !ok {
					dropped++
					continue
				}
				dst = append(dst, seg)
			}
		}
		if dropped > 0 {
			clipped.Add(dropped)
		}
		if skipped > 0 {
			culled.Add(skipped)
		}
		return dst
	})

	return Projection{Segments: segments, Clipped: clipped.Get(), Culled: culled.Get()}
}
