package occlusion

import "github.com/wegiangb/occluder/pkg/math3d"

// triangleArena is a reusable, single-owner scratch buffer for the
// camera-space and screen-space triangles clip/project produce per source
// triangle. Spec.md §5 guarantees the renderer is never accessed
// concurrently, so this is a plain slice truncated and refilled each
// call rather than a sync.Pool: a pool's atomic bookkeeping would pay for
// a safety guarantee this single-threaded path never needs (see
// DESIGN.md). Spec.md §9 flags Triangle/Vertex allocation as the
// dominant hot-path cost; reusing one arena per Renderer is how this
// implementation avoids it.
type triangleArena struct {
	cam    []camTriangle
	screen []screenTriangle
}

// warmup pre-grows the arena's backing arrays so the first few frames
// don't pay for slice growth. n is the expected max clipped-triangle
// count per source triangle (at most 2, per spec.md §4.1).
func (a *triangleArena) warmup(n int) {
	a.cam = make([]camTriangle, 0, n)
	a.screen = make([]screenTriangle, 0, n)
}

// buildScreenTriangles carries a world-space triangle through the shared
// clip -> project pipeline (C3 -> C4), used by both the occluder path
// (render) and the occludee path (cull, via BoundingVolumeProjection).
// The returned slice aliases the arena's backing array and is only valid
// until the next call to buildScreenTriangles on the same arena.
func (a *triangleArena) buildScreenTriangles(world [3]math3d.Vec3, view, proj math3d.Mat4, near, clipX, clipY float64) []screenTriangle {
	cam := camTriangle{
		view.MulVec3(world[0]),
		view.MulVec3(world[1]),
		view.MulVec3(world[2]),
	}

	a.cam = clipAppend(a.cam[:0], cam, near)
	a.screen = a.screen[:0]
	for _, t := range a.cam {
		a.screen = append(a.screen, project(t, proj, clipX, clipY))
	}
	return a.screen
}
