package main

import (
	"github.com/wegiangb/occluder/pkg/math3d"
	"github.com/wegiangb/occluder/pkg/scene"
)

// boxMesh builds a solid box occluder/candidate mesh centered at center
// with the given half-extents, using the same 8-corner layout and 12
// triangle face table as pkg/occlusion/bounds.go's probe geometry, so a
// procedurally generated demo occluder and a probed bounding box agree on
// what "the box" means.
func boxMesh(name string, center, halfExtent math3d.Vec3) *scene.Mesh {
	min := center.Sub(halfExtent)
	max := center.Add(halfExtent)

	corners := [8]math3d.Vec3{
		{X: min.X, Y: min.Y, Z: min.Z},
		{X: max.X, Y: min.Y, Z: min.Z},
		{X: min.X, Y: max.Y, Z: min.Z},
		{X: max.X, Y: max.Y, Z: min.Z},
		{X: min.X, Y: min.Y, Z: max.Z},
		{X: max.X, Y: min.Y, Z: max.Z},
		{X: min.X, Y: max.Y, Z: max.Z},
		{X: max.X, Y: max.Y, Z: max.Z},
	}

	faces := [12][3]int{
		{0, 1, 3}, {0, 3, 2},
		{5, 4, 6}, {5, 6, 7},
		{4, 0, 2}, {4, 2, 6},
		{1, 5, 7}, {1, 7, 3},
		{4, 5, 1}, {4, 1, 0},
		{2, 3, 7}, {2, 7, 6},
	}

	m := scene.NewMesh(name)
	m.Vertices = append(m.Vertices, corners[:]...)
	for _, f := range faces {
		m.Faces = append(m.Faces, scene.Face{V: f})
	}
	m.CalculateBounds()
	return m
}

// demoScene is a synthetic stand-in for a loaded glTF scene: one big wall
// occluder and a handful of candidate boxes scattered behind and in front
// of it, close enough to the flight path that the camera alternates
// between seeing them and having them culled.
type demoScene struct {
	occluders  []*scene.Mesh
	candidates []*scene.Mesh
}

func buildDemoScene() demoScene {
	wall := boxMesh("wall", math3d.V3(0, 0, -15), math3d.V3(8, 5, 0.5))

	return demoScene{
		occluders: []*scene.Mesh{wall},
		candidates: []*scene.Mesh{
			boxMesh("behind-1", math3d.V3(-3, 0, -25), math3d.V3(1, 1, 1)),
			boxMesh("behind-2", math3d.V3(3, 2, -30), math3d.V3(1, 1, 1)),
			boxMesh("front-1", math3d.V3(0, -2, -8), math3d.V3(1, 1, 1)),
		},
	}
}
