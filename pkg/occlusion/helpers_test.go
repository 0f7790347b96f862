package occlusion

import (
	"math"

	"github.com/wegiangb/occluder/pkg/math3d"
)

// testCamera is a minimal CameraContext stub: a fixed view/projection pair,
// no caching, no scene-graph dependency. Real implementations live in
// package scene; tests only need the narrow interface.
type testCamera struct {
	view, proj math3d.Mat4
	near       float64
}

func (c testCamera) ViewMatrix() math3d.Mat4       { return c.view }
func (c testCamera) ProjectionMatrix() math3d.Mat4 { return c.proj }
func (c testCamera) Near() float64                 { return c.near }

// newTestCamera builds a camera sitting at the world origin looking down
// -Z (so view is the identity and world space is camera space directly),
// with a square 90 degree perspective projection.
func newTestCamera(near float64) testCamera {
	return testCamera{
		view: math3d.Identity(),
		proj: math3d.Perspective(math.Pi/2, 1, near, 100),
		near: near,
	}
}

// testMesh is a minimal Occluder/Candidate source: a flat position buffer
// and a triangle index list, with an identity model matrix unless
// overridden.
type testMesh struct {
	positions []float64
	indices   []int
	model     math3d.Mat4
}

func (m testMesh) Positions() []float64   { return m.positions }
func (m testMesh) Indices() []int         { return m.indices }
func (m testMesh) ModelMatrix() math3d.Mat4 {
	if m.model == (math3d.Mat4{}) {
		return math3d.Identity()
	}
	return m.model
}

// trisToMesh flattens a list of camera-space triangles into a testMesh with
// an identity model matrix, so the triangle vertices are submitted exactly
// as given.
func trisToMesh(tris ...[3]math3d.Vec3) testMesh {
	var positions []float64
	var indices []int
	for _, t := range tris {
		base := len(positions) / 3
		for _, v := range t {
			positions = append(positions, v.X, v.Y, v.Z)
		}
		indices = append(indices, base, base+1, base+2)
	}
	return testMesh{positions: positions, indices: indices, model: math3d.Identity()}
}

// frontFacingQuad returns two triangles covering the square of half-size s
// centered at (0,0,z) in camera space, wound so clipAppend's back-face test
// keeps them (clockwise as seen from the camera; see clipAppend).
func frontFacingQuad(s, z float64) [2][3]math3d.Vec3 {
	tl := math3d.V3(-s, s, z)
	tr := math3d.V3(s, s, z)
	bl := math3d.V3(-s, -s, z)
	br := math3d.V3(s, -s, z)
	return [2][3]math3d.Vec3{
		{bl, tr, br},
		{bl, tl, tr},
	}
}

// backFacingTriangle returns a single triangle at (0,0,z) wound the
// opposite way from frontFacingQuad, so clipAppend rejects it.
func backFacingTriangle(s, z float64) [3]math3d.Vec3 {
	return [3]math3d.Vec3{
		math3d.V3(-s, -s, z),
		math3d.V3(s, -s, z),
		math3d.V3(s, s, z),
	}
}

// testCandidate is a minimal Candidate stub.
type testCandidate struct {
	model math3d.Mat4
	mode  CullMode
	bound Bound
}

func (c testCandidate) ModelMatrix() math3d.Mat4 { return c.model }
func (c testCandidate) CullMode() CullMode       { return c.mode }
func (c testCandidate) Bound() Bound             { return c.bound }
