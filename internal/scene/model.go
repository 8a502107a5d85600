package scene

import (
	"errors"
	"fmt"

	"followcam/internal/collision"

	"github.com/go-gl/mathgl/mgl32"
)

// ErrInvalidModel is returned when a model's bone or mesh references are broken.
var ErrInvalidModel = errors.New("invalid model")

// Bone is a node of the model hierarchy. Parent is -1 for a root and must
// otherwise index an earlier bone.
type Bone struct {
	Name   string
	Parent int
	Local  mgl32.Mat4
}

// Mesh is a wireframe attached to a bone. Vertices are in bone space.
type Mesh struct {
	Name       string
	ParentBone int
	Vertices   []mgl32.Vec3
	Edges      [][2]int
}

// Model is a bone hierarchy with meshes hanging off it.
type Model struct {
	Bones  []Bone
	Meshes []Mesh
}

// Validate checks bone ordering and every index a mesh carries.
func (m *Model) Validate() error {
	for i, bone := range m.Bones {
		if bone.Parent < -1 || bone.Parent >= i {
			return fmt.Errorf("%w: bone %q (%d) has parent %d", ErrInvalidModel, bone.Name, i, bone.Parent)
		}
	}
	for _, mesh := range m.Meshes {
		if mesh.ParentBone < 0 || mesh.ParentBone >= len(m.Bones) {
			return fmt.Errorf("%w: mesh %q references bone %d", ErrInvalidModel, mesh.Name, mesh.ParentBone)
		}
		for _, e := range mesh.Edges {
			if e[0] < 0 || e[1] < 0 || e[0] >= len(mesh.Vertices) || e[1] >= len(mesh.Vertices) {
				return fmt.Errorf("%w: mesh %q edge %v out of range", ErrInvalidModel, mesh.Name, e)
			}
		}
	}
	return nil
}

// CopyAbsoluteBoneTransforms writes each bone's model-space transform into
// dst, which must hold at least len(m.Bones) matrices.
func (m *Model) CopyAbsoluteBoneTransforms(dst []mgl32.Mat4) error {
	if len(dst) < len(m.Bones) {
		return fmt.Errorf("%w: destination holds %d transforms, model has %d bones", ErrInvalidModel, len(dst), len(m.Bones))
	}
	for i, bone := range m.Bones {
		switch {
		case bone.Parent == -1:
			dst[i] = bone.Local
		case bone.Parent >= 0 && bone.Parent < i:
			dst[i] = dst[bone.Parent].Mul4(bone.Local)
		default:
			return fmt.Errorf("%w: bone %q (%d) has parent %d", ErrInvalidModel, bone.Name, i, bone.Parent)
		}
	}
	return nil
}

// Bounds returns the box around the mesh in bone space.
func (m *Mesh) Bounds() collision.BoundingBox {
	return collision.NewBoundingBox(m.Vertices...)
}

// EdgeCount totals the edges of every mesh.
func (m *Model) EdgeCount() int {
	n := 0
	for _, mesh := range m.Meshes {
		n += len(mesh.Edges)
	}
	return n
}

// BoxEdges joins eight box corners laid out bottom ring first, then top ring.
var BoxEdges = [][2]int{
	{0, 1}, {1, 2}, {2, 3}, {3, 0},
	{4, 5}, {5, 6}, {6, 7}, {7, 4},
	{0, 4}, {1, 5}, {2, 6}, {3, 7},
}

// boxMesh builds an axis aligned wire box between lo and hi.
func boxMesh(name string, bone int, lo, hi mgl32.Vec3) Mesh {
	return Mesh{
		Name:       name,
		ParentBone: bone,
		Vertices: []mgl32.Vec3{
			{lo.X(), lo.Y(), lo.Z()},
			{hi.X(), lo.Y(), lo.Z()},
			{hi.X(), lo.Y(), hi.Z()},
			{lo.X(), lo.Y(), hi.Z()},
			{lo.X(), hi.Y(), lo.Z()},
			{hi.X(), hi.Y(), lo.Z()},
			{hi.X(), hi.Y(), hi.Z()},
			{lo.X(), hi.Y(), hi.Z()},
		},
		Edges: BoxEdges,
	}
}
