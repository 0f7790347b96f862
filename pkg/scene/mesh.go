package scene

import (
	"github.com/wegiangb/occluder/pkg/math3d"
	"github.com/wegiangb/occluder/pkg/occlusion"
)

// Mesh represents a 3D mesh's geometry: vertex positions and triangle
// faces. Shading attributes (normals, UVs, materials) are out of scope
// here, since this module never shades anything.
type Mesh struct {
	Name      string
	Vertices  []math3d.Vec3
	Faces     []Face

	BoundsMin math3d.Vec3
	BoundsMax math3d.Vec3
}

// Face is a triangle's vertex indices into Mesh.Vertices.
type Face struct {
	V [3]int
}

// NewMesh creates an empty mesh.
func NewMesh(name string) *Mesh {
	return &Mesh{Name: name}
}

// CalculateBounds computes the axis-aligned bounding box.
func (m *Mesh) CalculateBounds() {
	if len(m.Vertices) == 0 {
		return
	}

	m.BoundsMin = m.Vertices[0]
	m.BoundsMax = m.Vertices[0]

	for _, v := range m.Vertices[1:] {
		m.BoundsMin = m.BoundsMin.Min(v)
		m.BoundsMax = m.BoundsMax.Max(v)
	}
}

// Center returns the center of the bounding box.
func (m *Mesh) Center() math3d.Vec3 {
	return m.BoundsMin.Add(m.BoundsMax).Scale(0.5)
}

// Extents returns the bounding box's half-size along each axis.
func (m *Mesh) Extents() math3d.Vec3 {
	return m.BoundsMax.Sub(m.BoundsMin).Scale(0.5)
}

// BoundingRadius returns the distance from Center to the farthest vertex,
// suitable for an occlusion.BoundSphere.
func (m *Mesh) BoundingRadius() float64 {
	center := m.Center()
	radius := 0.0
	for _, v := range m.Vertices {
		if d := v.Distance(center); d > radius {
			radius = d
		}
	}
	return radius
}

// TriangleCount returns the number of triangles.
func (m *Mesh) TriangleCount() int {
	return len(m.Faces)
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Vertices)
}

// Transform applies a transformation matrix to all vertices in place.
func (m *Mesh) Transform(mat math3d.Mat4) {
	for i := range m.Vertices {
		m.Vertices[i] = mat.MulVec3(m.Vertices[i])
	}
	m.CalculateBounds()
}

// Clone creates a deep copy of the mesh.
func (m *Mesh) Clone() *Mesh {
	clone := &Mesh{
		Name:      m.Name,
		Vertices:  make([]math3d.Vec3, len(m.Vertices)),
		Faces:     make([]Face, len(m.Faces)),
		BoundsMin: m.BoundsMin,
		BoundsMax: m.BoundsMax,
	}
	copy(clone.Vertices, m.Vertices)
	copy(clone.Faces, m.Faces)
	return clone
}

// Positions flattens the mesh's vertex positions into xyz triples,
// satisfying occlusion.Occluder.
func (m *Mesh) Positions() []float64 {
	out := make([]float64, 0, len(m.Vertices)*3)
	for _, v := range m.Vertices {
		out = append(out, v.X, v.Y, v.Z)
	}
	return out
}

// Indices flattens the mesh's faces into a triangle list, satisfying
// occlusion.Occluder.
func (m *Mesh) Indices() []int {
	out := make([]int, 0, len(m.Faces)*3)
	for _, f := range m.Faces {
		out = append(out, f.V[0], f.V[1], f.V[2])
	}
	return out
}

// MeshOccluder adapts a Mesh into an occlusion.Occluder under a given
// model transform.
type MeshOccluder struct {
	Mesh  *Mesh
	Model math3d.Mat4
}

func (o MeshOccluder) Positions() []float64       { return o.Mesh.Positions() }
func (o MeshOccluder) Indices() []int             { return o.Mesh.Indices() }
func (o MeshOccluder) ModelMatrix() math3d.Mat4   { return o.Model }

// MeshCandidate adapts a Mesh into an occlusion.Candidate, probed against
// its own local-space bounding box (BoundKind is fixed to BoundBox; build
// an occlusion.Bound directly for a sphere-bound candidate instead).
type MeshCandidate struct {
	Mesh  *Mesh
	Model math3d.Mat4
	Mode  occlusion.CullMode
}

func (c MeshCandidate) ModelMatrix() math3d.Mat4 { return c.Model }
func (c MeshCandidate) CullMode() occlusion.CullMode {
	return c.Mode
}

func (c MeshCandidate) Bound() occlusion.Bound {
	return occlusion.Bound{
		Kind:    occlusion.BoundBox,
		Center:  c.Mesh.Center(),
		Extents: c.Mesh.Extents(),
	}
}

// MeshSphereCandidate adapts a Mesh into an occlusion.Candidate probed
// against its bounding sphere instead of its box.
type MeshSphereCandidate struct {
	Mesh  *Mesh
	Model math3d.Mat4
	Mode  occlusion.CullMode
}

func (c MeshSphereCandidate) ModelMatrix() math3d.Mat4 { return c.Model }
func (c MeshSphereCandidate) CullMode() occlusion.CullMode {
	return c.Mode
}

func (c MeshSphereCandidate) Bound() occlusion.Bound {
	return occlusion.Bound{
		Kind:   occlusion.BoundSphere,
		Center: c.Mesh.Center(),
		Radius: c.Mesh.BoundingRadius(),
	}
}
