package occlusion

import "math"

// edge is a directed 2D screen-space edge with endpoint depths, ordered so
// that y0 <= y1 (the constructor swaps endpoints and their depths if the
// source triangle edge ran the other way). z holds 1/w, already inverted
// from the projector's homogeneous w — larger z means closer to the
// camera.
type edge struct {
	x0, y0, z0 float64
	x1, y1, z1 float64
}

// newEdge builds an edge from two projected vertices (pixel x, pixel y,
// and homogeneous w not yet inverted), inverting w to the w-buffer depth
// and reordering endpoints so y0 <= y1.
func newEdge(ax, ay, aw, bx, by, bw float64) edge {
	az := 1 / aw
	bz := 1 / bw
	if ay <= by {
		return edge{x0: ax, y0: ay, z0: az, x1: bx, y1: by, z1: bz}
	}
	return edge{x0: bx, y0: by, z0: bz, x1: ax, y1: ay, z1: az}
}

// yExtent returns y1 - y0, used to pick the long edge of a triangle.
func (e edge) yExtent() float64 {
	return e.y1 - e.y0
}

// lineRange returns the integer scanline range [start, stop] this edge
// spans, rounded per the occluder (shrinking) or occludee (growing)
// convention and clipped to [0, clipY]. Per spec.md §9's floating-point
// determinism note, the two rules must never be mixed within one pass.
func (e edge) lineRange(conservativeShrink bool, clipY int) (start, stop int) {
	if conservativeShrink {
		start, stop = int(math.Ceil(e.y0)), int(math.Floor(e.y1))
	} else {
		start, stop = int(math.Floor(e.y0)), int(math.Ceil(e.y1))
	}
	if start < 0 {
		start = 0
	}
	if stop > clipY {
		stop = clipY
	}
	return start, stop
}
