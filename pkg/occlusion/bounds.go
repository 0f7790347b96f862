package occlusion

import (
	"math"

	"github.com/wegiangb/occluder/pkg/math3d"
)

// SphereSilhouetteSides is the number of points used to approximate a
// bounding sphere's camera-facing silhouette circle. Higher values track
// the true disk more closely at the cost of more probed triangles;
// spec.md §4.7 explicitly allows a polygonal approximation.
const SphereSilhouetteSides = 8

// boundingVolumeTriangles produces the occludee triangles for a bound,
// per spec.md §4.7 (C7), already moved into world space by model. The
// second return value is true if the volume intersects or lies entirely
// in front of the near plane, in which case the caller must treat the
// candidate as not occluded regardless of the (possibly empty or
// partial) triangle list — probing a volume straddling the near plane
// cannot establish occlusion safely.
func boundingVolumeTriangles(b Bound, model math3d.Mat4, view math3d.Mat4, near float64) (tris [][3]math3d.Vec3, nearIntersect bool) {
	switch b.Kind {
	case BoundSphere:
		return sphereTriangles(b, model, view, near)
	default:
		return boxTriangles(b, model, view, near)
	}
}

func boxTriangles(b Bound, model, view math3d.Mat4, near float64) ([][3]math3d.Vec3, bool) {
	min := b.Center.Sub(b.Extents)
	max := b.Center.Add(b.Extents)

	local := [8]math3d.Vec3{
		{X: min.X, Y: min.Y, Z: min.Z},
		{X: max.X, Y: min.Y, Z: min.Z},
		{X: min.X, Y: max.Y, Z: min.Z},
		{X: max.X, Y: max.Y, Z: min.Z},
		{X: min.X, Y: min.Y, Z: max.Z},
		{X: max.X, Y: min.Y, Z: max.Z},
		{X: min.X, Y: max.Y, Z: max.Z},
		{X: max.X, Y: max.Y, Z: max.Z},
	}

	var world [8]math3d.Vec3
	for i, c := range local {
		world[i] = model.MulVec3(c)
	}

	if nearIntersectsCorners(world[:], view, near) {
		return nil, true
	}

	// Six faces, two triangles each, wound so each face's outward side is
	// the front side for clipAppend. All 12 are returned; C6 runs no
	// screen-space back-face test, so the faces turned away from the camera
	// are dropped only by clipAppend's camera-space test before probing.
	idx := [12][3]int{
		{0, 1, 3}, {0, 3, 2}, // -Z face
		{5, 4, 6}, {5, 6, 7}, // +Z face
		{4, 0, 2}, {4, 2, 6}, // -X face
		{1, 5, 7}, {1, 7, 3}, // +X face
		{4, 5, 1}, {4, 1, 0}, // -Y face
		{2, 3, 7}, {2, 7, 6}, // +Y face
	}

	tris := make([][3]math3d.Vec3, 12)
	for i, tri := range idx {
		tris[i] = [3]math3d.Vec3{world[tri[0]], world[tri[1]], world[tri[2]]}
	}
	return tris, false
}

func sphereTriangles(b Bound, model, view math3d.Mat4, near float64) ([][3]math3d.Vec3, bool) {
	center := model.MulVec3(b.Center)
	radius := b.Radius * basisScale(model)

	if nearIntersectsCorners([]math3d.Vec3{
		center.Add(math3d.V3(0, 0, radius)),
		center.Sub(math3d.V3(0, 0, radius)),
	}, view, near) {
		return nil, true
	}

	right, up := cameraBasis(view)

	points := make([]math3d.Vec3, SphereSilhouetteSides)
	for k := range points {
		angle := 2 * math.Pi * float64(k) / float64(SphereSilhouetteSides)
		points[k] = center.
			Add(right.Scale(radius * math.Cos(angle))).
			Add(up.Scale(radius * math.Sin(angle)))
	}

	tris := make([][3]math3d.Vec3, SphereSilhouetteSides)
	for k := range points {
		next := (k + 1) % SphereSilhouetteSides
		tris[k] = [3]math3d.Vec3{center, points[next], points[k]}
	}
	return tris, false
}

// basisScale returns the largest length among m's three basis columns, a
// conservative (over-estimating, never under-estimating) stand-in for a
// uniform scale factor when m carries non-uniform scale.
func basisScale(m math3d.Mat4) float64 {
	x := math3d.V3(m[0], m[1], m[2]).Len()
	y := math3d.V3(m[4], m[5], m[6]).Len()
	z := math3d.V3(m[8], m[9], m[10]).Len()
	return math.Max(x, math.Max(y, z))
}

// cameraBasis extracts the camera's world-space right and up axes from
// the rows of the view matrix.
func cameraBasis(view math3d.Mat4) (right, up math3d.Vec3) {
	right = math3d.V3(view[0], view[4], view[8]).Normalize()
	up = math3d.V3(view[1], view[5], view[9]).Normalize()
	return right, up
}

// nearIntersectsCorners reports whether any of the given world-space
// points lies at or in front of the near plane in camera space.
func nearIntersectsCorners(world []math3d.Vec3, view math3d.Mat4, near float64) bool {
	for _, p := range world {
		if view.MulVec3(p).Z > -near {
			return true
		}
	}
	return false
}
