package occlusion

// probeTriangle tests whether every pixel of t's conservatively grown
// footprint is covered (depth[p] >= the triangle's minimum depth at p),
// per spec.md §4.6. It returns true iff the triangle is fully occluded;
// triangles culled entirely off-screen are vacuously occluded, since they
// offer no evidence either way.
func probeTriangle(t screenTriangle, clipX, clipY, width int, depth []float64) bool {
	te := buildEdges(t)
	if verticalCull(te.long, clipY) {
		return true
	}

	for _, short := range [2]edge{te.short1, te.short2} {
		ed := newEdgeData(te.long, short, false, clipY)
		o := classify(ed)
		if horizontalCull(te.long, o.longIsRight, clipX) {
			continue
		}

		occluded := walkSpans(&ed, o, false, clipX, width, func(idx int, curDepth float64) bool {
			return curDepth <= depth[idx]
		})
		if !occluded {
			return false
		}
	}
	return true
}
