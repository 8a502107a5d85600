package scene

import (
	"fmt"

	"followcam/internal/collision"
	"followcam/internal/config"
	"followcam/internal/mathutil"
	"followcam/internal/threading/core"

	"github.com/go-gl/mathgl/mgl32"
)

// World directions used to lay out the city copies. Forward points down -Z.
var (
	Right   = mgl32.Vec3{1, 0, 0}
	Left    = mgl32.Vec3{-1, 0, 0}
	Forward = mgl32.Vec3{0, 0, -1}
	Back    = mgl32.Vec3{0, 0, 1}
)

// Placements returns the nine translations the city block is drawn at: the
// origin, the four neighbours, then the four diagonals. Diagonals are
// offset by distance on both axes.
func Placements(distance float32) []mgl32.Mat4 {
	offsets := []mgl32.Vec3{
		{},
		Right,
		Left,
		Forward,
		Back,
		Forward.Add(Right),
		Forward.Add(Left),
		Back.Add(Right),
		Back.Add(Left),
	}

	placements := make([]mgl32.Mat4, len(offsets))
	for i, offset := range offsets {
		t := offset.Mul(distance)
		placements[i] = mgl32.Translate3D(t.X(), t.Y(), t.Z())
	}
	return placements
}

// NewCityModel builds one city block: a ground plate on the root bone and a
// grid of buildings, each on its own bone translated to its lot. Heights
// come from a hash of the lot and the seed, so a seed always builds the
// same city.
func NewCityModel(cfg config.CityConfig) *Model {
	n := cfg.BlocksPerSide
	half := cfg.Span() / 2

	model := &Model{
		Bones: []Bone{{Name: "city", Parent: -1, Local: mgl32.Ident4()}},
	}

	model.Meshes = append(model.Meshes, Mesh{
		Name:       "ground",
		ParentBone: 0,
		Vertices: []mgl32.Vec3{
			{-half, 0, -half},
			{half, 0, -half},
			{half, 0, half},
			{-half, 0, half},
		},
		Edges: [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}},
	})

	lot := cfg.BlockSize / 2
	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			x := -half + lot + float32(col)*(cfg.BlockSize+cfg.StreetWidth)
			z := -half + lot + float32(row)*(cfg.BlockSize+cfg.StreetWidth)

			h := mathutil.Hash2(cfg.Seed, int32(col), int32(row))
			height := cfg.MinHeight + mathutil.UnitFloat(h)*(cfg.MaxHeight-cfg.MinHeight)

			name := fmt.Sprintf("building_%d_%d", row, col)
			model.Bones = append(model.Bones, Bone{
				Name:   name,
				Parent: 0,
				Local:  mgl32.Translate3D(x, 0, z),
			})
			model.Meshes = append(model.Meshes, boxMesh(name, len(model.Bones)-1,
				mgl32.Vec3{-lot, 0, -lot},
				mgl32.Vec3{lot, height, lot},
			))
		}
	}

	return model
}

// Instance is one mesh drawn at one placement.
type Instance struct {
	Mesh      int
	Placement int
	World     mgl32.Mat4
	Bounds    collision.BoundingBox // World space
}

// CityScene draws a model at a fixed set of placements.
type CityScene struct {
	Model      *Model
	Placements []mgl32.Mat4

	bones     []mgl32.Mat4
	instances []Instance
}

// NewCityScene builds the city model for cfg and places it nine times.
func NewCityScene(cfg config.CityConfig) (*CityScene, error) {
	return NewScene(NewCityModel(cfg), Placements(cfg.DistanceBetweenCities))
}

// NewScene validates model and precomputes its instance transforms.
func NewScene(model *Model, placements []mgl32.Mat4) (*CityScene, error) {
	if err := model.Validate(); err != nil {
		return nil, err
	}

	s := &CityScene{
		Model:      model,
		Placements: placements,
		bones:      make([]mgl32.Mat4, len(model.Bones)),
	}
	if err := model.CopyAbsoluteBoneTransforms(s.bones); err != nil {
		return nil, err
	}
	s.instances = s.InstanceTransforms()
	return s, nil
}

// InstanceTransforms returns, placement by placement, every mesh's world
// transform: the mesh bone applied first, then the placement.
func (s *CityScene) InstanceTransforms() []Instance {
	perPlacement := core.ParallelMap(indices(len(s.Placements)), func(p int) []Instance {
		out := make([]Instance, len(s.Model.Meshes))
		for m, mesh := range s.Model.Meshes {
			world := s.Placements[p].Mul4(s.bones[mesh.ParentBone])
			out[m] = Instance{
				Mesh:      m,
				Placement: p,
				World:     world,
				Bounds:    mesh.Bounds().Transform(world),
			}
		}
		return out
	})

	instances := make([]Instance, 0, len(s.Placements)*len(s.Model.Meshes))
	for _, batch := range perPlacement {
		instances = append(instances, batch...)
	}
	return instances
}

// InstanceCount is the number of mesh instances drawn per frame.
func (s *CityScene) InstanceCount() int {
	return len(s.instances)
}

func indices(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}
