package occlusion

// rasterizeOccluder writes the maximum conservative depth of t into depth
// (row-major, width wide), per spec.md §4.5. Writes are a max-reduction:
// order across triangles and occluders does not matter (P4, P5).
func rasterizeOccluder(t screenTriangle, clipX, clipY, width int, depth []float64) {
	te := buildEdges(t)
	if verticalCull(te.long, clipY) {
		return
	}

	for _, short := range [2]edge{te.short1, te.short2} {
		ed := newEdgeData(te.long, short, true, clipY)
		o := classify(ed)
		if horizontalCull(te.long, o.longIsRight, clipX) {
			continue
		}

		walkSpans(&ed, o, true, clipX, width, func(idx int, curDepth float64) bool {
			if curDepth > depth[idx] {
				depth[idx] = curDepth
			}
			return true
		})
	}
}
