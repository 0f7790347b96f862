package occlusion

import "math"

// orientation holds longIsRight, which selects which side of a scanline
// span the long edge occupies.
type orientation struct {
	longIsRight bool
}

// classify determines the orientation of a (long, short) edge pair from
// their state at the pass's first scanline.
func classify(ed edgeData) orientation {
	var o orientation

	if ed.shortX == ed.longX {
		// Common-vertex case: the pair starts from a shared point, so the
		// initial x's can't distinguish sides. Use the sign of the x
		// increments instead.
		o.longIsRight = ed.longXInc > ed.shortXInc
	} else {
		o.longIsRight = ed.longX > ed.shortX
	}

	return o
}

// verticalCull reports whether the whole triangle can be skipped based on
// the long edge's y extent against the viewport.
func verticalCull(long edge, clipY int) bool {
	return long.y1 < 0 || long.y0 > float64(clipY)
}

// horizontalCull reports whether the whole triangle can be skipped based
// on the long edge's x extent against the viewport, given which side of
// the triangle the long edge occupies.
func horizontalCull(long edge, longIsRight bool, clipX int) bool {
	if longIsRight {
		return long.x0 < 0 && long.x1 < 0
	}
	return long.x0 > float64(clipX) && long.x1 > float64(clipX)
}

// pixelAction is called once per covered pixel during a scanline walk. It
// returns false to abort the walk early (used by the occludee probe to
// short-circuit on the first uncovered pixel).
type pixelAction func(idx int, curDepth float64) bool

// walkSpans iterates ed's scanlines, rounding each span per the occluder
// (shrink) or occludee (grow) rule, extrapolating and half-pixel-biasing
// the span's end depths toward the conservative extremum, clipping against
// the viewport, and invoking act once per covered pixel. It returns false
// if act ever returned false.
func walkSpans(ed *edgeData, o orientation, occluder bool, clipX, width int, act pixelAction) bool {
	for y := ed.startLine; y <= ed.stopLine; y++ {
		realLeftX, leftZRaw := ed.shortX, ed.shortZ
		realRightX, rightZRaw := ed.longX, ed.longZ
		if !o.longIsRight {
			realLeftX, leftZRaw = ed.longX, ed.longZ
			realRightX, rightZRaw = ed.shortX, ed.shortZ
		}

		var slope float64
		span := realRightX - realLeftX
		if span != 0 {
			slope = (rightZRaw - leftZRaw) / span
		}
		lerp := func(x float64) float64 {
			return leftZRaw + (x-realLeftX)*slope
		}

		var leftX, rightX int
		if occluder {
			leftX, rightX = int(math.Ceil(realLeftX)), int(math.Floor(realRightX))
		} else {
			leftX, rightX = int(math.Floor(realLeftX)), int(math.Ceil(realRightX))
		}

		// Half-pixel bias: shift the sampled depth toward the pixel edge
		// that faces the conservative extremum for this path (max depth
		// for an occluder, min depth for an occludee). Since depth is
		// linear across the span, that edge is fully determined by the
		// sign of the slope and which extremum we want.
		bias := 0.5
		if slope < 0 {
			bias = -0.5
		}
		if !occluder {
			bias = -bias
		}

		leftZ := lerp(float64(leftX)) + bias*slope
		rightZ := lerp(float64(rightX)) + bias*slope
		if !occluder {
			leftZ = math.Max(leftZ, 0)
			rightZ = math.Max(rightZ, 0)
		}

		if leftX < 0 {
			leftZ = lerp(0) + bias*slope
			if !occluder {
				leftZ = math.Max(leftZ, 0)
			}
			leftX = 0
		}
		if rightX > clipX {
			rightZ = lerp(float64(clipX)) + bias*slope
			if !occluder {
				rightZ = math.Max(rightZ, 0)
			}
			rightX = clipX
		}

		if rightX < leftX {
			ed.advance()
			continue
		}

		var depthInc float64
		if rightX > leftX {
			depthInc = (rightZ - leftZ) / float64(rightX-leftX)
		}

		curDepth := leftZ
		for x := leftX; x <= rightX; x++ {
			if !act(y*width+x, curDepth) {
				return false
			}
			curDepth += depthInc
		}

		ed.advance()
	}
	return true
}
