package occlusion

// triangleEdges holds a screen-space triangle decomposed into its long
// edge and two short edges (C1), per spec.md §4.3: built from the three
// directed edges v1->v2, v2->v3, v3->v1, each endpoint-sorted so y0<=y1,
// with the largest y-extent edge selected as long.
type triangleEdges struct {
	long, short1, short2 edge
}

func buildEdges(t screenTriangle) triangleEdges {
	raw := [3]edge{
		newEdge(t[0].pos.X, t[0].pos.Y, t[0].w, t[1].pos.X, t[1].pos.Y, t[1].w),
		newEdge(t[1].pos.X, t[1].pos.Y, t[1].w, t[2].pos.X, t[2].pos.Y, t[2].w),
		newEdge(t[2].pos.X, t[2].pos.Y, t[2].w, t[0].pos.X, t[0].pos.Y, t[0].w),
	}

	longIdx := 0
	for i := 1; i < 3; i++ {
		if raw[i].yExtent() > raw[longIdx].yExtent() {
			longIdx = i
		}
	}

	return triangleEdges{
		long:   raw[longIdx],
		short1: raw[(longIdx+1)%3],
		short2: raw[(longIdx+2)%3],
	}
}
