package occlusion

import (
	"fmt"

	"github.com/wegiangb/occluder/pkg/math3d"
)

const depthTolerance = 1.0000001

// CullStats reports triangle and candidate counts for the most recent
// Cull call. Reset at the start of every call.
type CullStats struct {
	TrianglesRasterized int
	CandidatesTested    int
	CandidatesCulled    int
	CandidatesVisible   int
}

// Renderer is the C9 facade: it owns the depth buffer and orchestrates
// Render (the occluder path, C3-C5) and Cull (the occludee path,
// C3-C4, C6-C7) over it.
type Renderer struct {
	width, height int
	clipX, clipY  int
	camera        CameraContext

	depth *depthBuffer
	arena triangleArena

	frameValid bool
	stats      CullStats
}

// New validates width, height, and camera and constructs a Renderer. A
// non-positive width or height, a nil camera, or a non-positive near
// plane is a ConfigError.
func New(width, height int, camera CameraContext) (*Renderer, error) {
	if width <= 0 || height <= 0 {
		return nil, &ConfigError{Reason: fmt.Sprintf("width and height must be positive, got %dx%d", width, height)}
	}
	if camera == nil {
		return nil, &ConfigError{Reason: "camera must not be nil"}
	}
	if camera.Near() <= 0 {
		return nil, &ConfigError{Reason: fmt.Sprintf("near plane must be positive, got %v", camera.Near())}
	}

	r := &Renderer{
		width:      width,
		height:     height,
		clipX:      width - 1,
		clipY:      height - 1,
		camera:     camera,
		depth:      newDepthBuffer(width, height),
		frameValid: true,
	}
	r.arena.warmup(2)
	return r, nil
}

// Render clears the depth buffer and rasterizes every occluder into it
// (C3 -> C4 -> C5). An empty occluder list is a no-op that still clears
// the buffer. A ShapeError from a malformed occluder halts processing of
// the remaining list; if it is not the first occluder of this call (so
// earlier occluders may already have written pixels), the frame is marked
// invalid until the next Render call.
func (r *Renderer) Render(occluders []Occluder) error {
	r.depth.reset()
	r.frameValid = true

	view := r.camera.ViewMatrix()
	proj := r.camera.ProjectionMatrix()
	near := r.camera.Near()

	for i, occ := range occluders {
		if err := validateOccluder(occ); err != nil {
			if i > 0 {
				r.frameValid = false
			}
			return err
		}

		model := occ.ModelMatrix()
		positions := occ.Positions()
		indices := occ.Indices()

		for t := 0; t < len(indices); t += 3 {
			world := [3]math3d.Vec3{
				transformVertex(positions, indices[t], model),
				transformVertex(positions, indices[t+1], model),
				transformVertex(positions, indices[t+2], model),
			}

			for _, st := range r.arena.buildScreenTriangles(world, view, proj, near, float64(r.clipX), float64(r.clipY)) {
				rasterizeOccluder(st, r.clipX, r.clipY, r.width, r.depth.cells)
			}
		}
	}

	r.checkDepthRange()
	return nil
}

// Cull tests each candidate's bound against the depth buffer built by the
// most recent Render and returns the visible subset, preserving input
// order. A candidate with CullMode CullNever is always included. Calling
// Cull after a Render that left the frame invalid returns ErrFrameInvalid;
// before the first Render it probes the zero-filled buffer New allocated.
func (r *Renderer) Cull(candidates []Candidate) ([]Candidate, error) {
	if !r.frameValid {
		return nil, ErrFrameInvalid
	}

	r.stats = CullStats{}
	view := r.camera.ViewMatrix()
	proj := r.camera.ProjectionMatrix()
	near := r.camera.Near()

	visible := make([]Candidate, 0, len(candidates))
	for _, c := range candidates {
		if c.CullMode() == CullNever {
			visible = append(visible, c)
			continue
		}

		r.stats.CandidatesTested++
		if r.isVisible(c, view, proj, near) {
			r.stats.CandidatesVisible++
			visible = append(visible, c)
		} else {
			r.stats.CandidatesCulled++
		}
	}
	return visible, nil
}

func (r *Renderer) isVisible(c Candidate, view, proj math3d.Mat4, near float64) bool {
	tris, nearHit := boundingVolumeTriangles(c.Bound(), c.ModelMatrix(), view, near)
	if nearHit {
		return true
	}

	emitted := 0
	for _, world := range tris {
		for _, st := range r.arena.buildScreenTriangles(world, view, proj, near, float64(r.clipX), float64(r.clipY)) {
			emitted++
			r.stats.TrianglesRasterized++
			if !probeTriangle(st, r.clipX, r.clipY, r.width, r.depth.cells) {
				return true
			}
		}
	}
	// No triangle survived clipping: we have no evidence either way, so
	// default to visible rather than vacuously occluded.
	return emitted == 0
}

// Depth returns the current row-major depth buffer (y*width+x). Calling
// it after a Render that left the frame invalid returns ErrFrameInvalid.
func (r *Renderer) Depth() ([]float64, error) {
	if !r.frameValid {
		return nil, ErrFrameInvalid
	}
	return r.depth.cells, nil
}

// Width and Height report the renderer's viewport dimensions.
func (r *Renderer) Width() int  { return r.width }
func (r *Renderer) Height() int { return r.height }

// CullStats returns the candidate/triangle counters from the most recent
// Cull call.
func (r *Renderer) CullStats() CullStats {
	return r.stats
}

func (r *Renderer) checkDepthRange() {
	limit := 1 / r.camera.Near() * depthTolerance
	for i, d := range r.depth.cells {
		if d < 0 || d > limit {
			warnNumeric("depth value outside expected range, clamping",
				"index", i, "value", d, "limit", limit)
			if d < 0 {
				r.depth.cells[i] = 0
			} else {
				r.depth.cells[i] = limit
			}
		}
	}
}

func transformVertex(positions []float64, index int, model math3d.Mat4) math3d.Vec3 {
	base := index * 3
	local := math3d.V3(positions[base], positions[base+1], positions[base+2])
	return model.MulVec3(local)
}

func validateOccluder(occ Occluder) error {
	indices := occ.Indices()
	if len(indices)%3 != 0 {
		return &ShapeError{Reason: fmt.Sprintf("index buffer length %d is not a multiple of 3", len(indices))}
	}

	vertexCount := len(occ.Positions()) / 3
	for _, idx := range indices {
		if idx < 0 || idx >= vertexCount {
			return &ShapeError{Reason: fmt.Sprintf("index %d out of range for %d vertices", idx, vertexCount)}
		}
	}
	return nil
}
