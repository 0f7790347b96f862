package occlusion

import "github.com/wegiangb/occluder/pkg/math3d"

// camTriangle is a triangle in camera space (w=1 implicit for every
// vertex), ordered v1,v2,v3. Front-facing triangles appear clockwise as
// seen from the camera at the origin; that is the winding clipAppend keeps.
type camTriangle [3]math3d.Vec3

// clipAppend performs camera-space back-face culling followed by
// near-plane clipping, per spec.md §4.1, appending 0, 1, or 2 resulting
// triangles to dst and returning the extended slice. Every output vertex
// satisfies z <= -near (I4). dst is typically a reused arena slice
// truncated to length 0 by the caller (spec.md §5, §9's hot-path
// allocation note).
//
// Back-face culling uses the sign of (e2 x e1).v1 with e1 = v2-v1,
// e2 = v3-v1 — the cross product order is reversed from the textbook
// e1 x e2 convention. This is deliberate: it is the convention the sign
// test below was tuned against, and must not be "corrected" to e1 x e2.
func clipAppend(dst []camTriangle, tri camTriangle, near float64) []camTriangle {
	e1 := tri[1].Sub(tri[0])
	e2 := tri[2].Sub(tri[0])
	normal := e2.Cross(e1)
	if normal.Dot(tri[0]) > 0 {
		return dst
	}

	nearZ := -near
	inside := [3]bool{
		tri[0].Z <= nearZ,
		tri[1].Z <= nearZ,
		tri[2].Z <= nearZ,
	}

	count := 0
	for _, b := range inside {
		if b {
			count++
		}
	}

	switch count {
	case 3:
		return append(dst, tri)
	case 2:
		return clipOneOutsideAppend(dst, tri, inside, near)
	case 1:
		return clipTwoOutsideAppend(dst, tri, inside, near)
	default:
		return dst
	}
}

// nearIntersect returns the point where the segment from origin (outside
// the near plane) to target (inside) crosses z = -near.
func nearIntersect(origin, target math3d.Vec3, near float64) math3d.Vec3 {
	r := (origin.Z + near) / (origin.Z - target.Z)
	return math3d.V3(
		origin.X+r*(target.X-origin.X),
		origin.Y+r*(target.Y-origin.Y),
		origin.Z+r*(target.Z-origin.Z),
	)
}

// clipOneOutsideAppend handles the two-inside/one-outside case: the
// outside vertex is replaced by its two near-plane intersections,
// producing a quad triangulated into two triangles that preserve the
// original winding.
func clipOneOutsideAppend(dst []camTriangle, tri camTriangle, inside [3]bool, near float64) []camTriangle {
	outIdx := 0
	for i, b := range inside {
		if !b {
			outIdx = i
			break
		}
	}
	out0 := tri[outIdx]
	in0 := tri[(outIdx+1)%3]
	in1 := tri[(outIdx+2)%3]

	new0 := nearIntersect(out0, in0, near)
	new1 := nearIntersect(out0, in1, near)

	return append(dst,
		camTriangle{new1, new0, in0},
		camTriangle{new1, in0, in1},
	)
}

// clipTwoOutsideAppend handles the one-inside/two-outside case: both
// outside vertices are moved to their near-plane intersections, yielding
// a single triangle with the same winding as the input.
func clipTwoOutsideAppend(dst []camTriangle, tri camTriangle, inside [3]bool, near float64) []camTriangle {
	inIdx := 0
	for i, b := range inside {
		if b {
			inIdx = i
			break
		}
	}
	in := tri[inIdx]
	out0 := tri[(inIdx+1)%3]
	out1 := tri[(inIdx+2)%3]

	newA := nearIntersect(out0, in, near)
	newB := nearIntersect(out1, in, near)

	return append(dst, camTriangle{in, newA, newB})
}
