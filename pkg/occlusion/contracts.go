// Package occlusion implements a CPU-side, depth-only occlusion-culling
// rasterizer. It rasterizes occluder meshes into a w-buffer (a depth
// buffer storing 1/w rather than post-projection z) and answers visibility
// queries for candidate bounding volumes against that buffer.
//
// The package deliberately knows nothing about scene graphs, camera math,
// or mesh loading: those are external collaborators, reached only through
// the narrow interfaces below. See package scene for concrete
// implementations usable with this package.
package occlusion

import "github.com/wegiangb/occluder/pkg/math3d"

// CameraContext is the read-only view into the camera that the renderer
// needs: the view and projection matrices and the near-plane distance.
// Implementations are expected to cache their matrices; the renderer calls
// these once per render/cull pass.
type CameraContext interface {
	ViewMatrix() math3d.Mat4
	ProjectionMatrix() math3d.Mat4
	Near() float64
}

// Occluder is a mesh submitted to Render. Positions are a flat array of
// xyz triples in the occluder's local space; Indices is a triangle list
// into Positions. A triangle is front-facing when it appears clockwise as
// seen from the camera (camera space: x right, y up, looking down -Z),
// which is what clipAppend's back-face test keeps.
type Occluder interface {
	Positions() []float64
	Indices() []int
	ModelMatrix() math3d.Mat4
}

// CullMode selects whether a Candidate participates in occlusion testing.
type CullMode int

const (
	// CullAlways runs the occlusion probe for the candidate.
	CullAlways CullMode = iota
	// CullNever always reports the candidate as visible, skipping the probe.
	CullNever
)

// BoundKind discriminates the two Bound shapes a Candidate may expose.
type BoundKind int

const (
	BoundBox BoundKind = iota
	BoundSphere
)

// Bound is a tagged union over the two bounding volumes Cull understands.
// For BoundBox, Extents holds the half-size along each axis and Radius is
// unused. For BoundSphere, Radius is used and Extents is unused.
type Bound struct {
	Kind    BoundKind
	Center  math3d.Vec3
	Extents math3d.Vec3
	Radius  float64
}

// Candidate is a mesh tested by Cull against the depth buffer built by a
// prior Render call.
type Candidate interface {
	ModelMatrix() math3d.Mat4
	CullMode() CullMode
	Bound() Bound
}
