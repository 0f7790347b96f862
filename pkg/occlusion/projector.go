package occlusion

import "github.com/wegiangb/occluder/pkg/math3d"

// screenVertex is a projected vertex: a pixel-space (x, y) position and
// the homogeneous w produced by the projection matrix (the camera-space
// distance along the view axis, not yet inverted to a w-buffer depth —
// edge construction performs that inversion).
type screenVertex struct {
	pos math3d.Vec2
	w   float64
}

// screenTriangle is a projected triangle, winding preserved from its
// camera-space source.
type screenTriangle [3]screenVertex

// project applies the projection matrix and the NDC-to-pixel screen
// mapping to a camera-space triangle. v.z is intentionally left
// undivided: this is a w-buffer, so 1/w is computed from v.w later, not
// from a divided v.z.
//
// Combining this with the rasterizer's coordinate setup, as the TODO in
// spec.md §9 suggests, would be a pure optimization: it must not change
// any observed depth value, so projection and screen mapping stay a
// separate, explicit step here.
func project(tri camTriangle, proj math3d.Mat4, clipX, clipY float64) screenTriangle {
	var out screenTriangle
	for i, v := range tri {
		clip := proj.MulVec4(math3d.V4FromV3(v, 1))
		ndcX := clip.X / clip.W
		ndcY := clip.Y / clip.W
		out[i] = screenVertex{
			pos: math3d.V2((ndcX+1)*clipX/2, (ndcY+1)*clipY/2),
			w:   clip.W,
		}
	}
	return out
}
