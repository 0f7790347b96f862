package occlusion

// edgeData holds the per-scanline interpolation state for one (long edge,
// short edge) pair of a triangle pass. Mutated exactly once per scanline
// by advance.
type edgeData struct {
	startLine, stopLine int

	longX, shortX float64
	longZ, shortZ float64

	longXInc, shortXInc float64
	longZInc, shortZInc float64
}

// newEdgeData builds the interpolation state for a pass pairing long with
// short, active over short's own y range (the long edge spans the full
// triangle height; the short edge bounds which half of it this pass
// covers). conservativeShrink selects the occluder (ceil/floor) or
// occludee (floor/ceil) line-range rounding rule.
func newEdgeData(long, short edge, conservativeShrink bool, clipY int) edgeData {
	var ed edgeData
	ed.startLine, ed.stopLine = short.lineRange(conservativeShrink, clipY)

	longSpan := long.y1 - long.y0
	if longSpan != 0 {
		ed.longXInc = (long.x1 - long.x0) / longSpan
		ed.longZInc = (long.z1 - long.z0) / longSpan
	}
	shortSpan := short.y1 - short.y0
	if shortSpan != 0 {
		ed.shortXInc = (short.x1 - short.x0) / shortSpan
		ed.shortZInc = (short.z1 - short.z0) / shortSpan
	}

	startY := float64(ed.startLine)
	ed.longX = long.x0 + (startY-long.y0)*ed.longXInc
	ed.longZ = long.z0 + (startY-long.y0)*ed.longZInc
	ed.shortX = short.x0 + (startY-short.y0)*ed.shortXInc
	ed.shortZ = short.z0 + (startY-short.y0)*ed.shortZInc

	return ed
}

// advance steps every interpolant forward by one scanline.
func (ed *edgeData) advance() {
	ed.longX += ed.longXInc
	ed.shortX += ed.shortXInc
	ed.longZ += ed.longZInc
	ed.shortZ += ed.shortZInc
}
