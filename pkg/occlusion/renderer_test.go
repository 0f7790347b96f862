package occlusion

import (
	"errors"
	"testing"

	"github.com/wegiangb/occluder/pkg/math3d"
)

const (
	testW    = 8
	testH    = 8
	testNear = 1.0
)

func newTestRenderer(t *testing.T) *Renderer {
	t.Helper()
	r, err := New(testW, testH, newTestCamera(testNear))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return r
}

// P1: after Render(nil), every depth cell is 0.
func TestRender_EmptySceneClearsToZero(t *testing.T) {
	r := newTestRenderer(t)
	if err := r.Render(nil); err != nil {
		t.Fatalf("Render: %v", err)
	}
	depth, err := r.Depth()
	if err != nil {
		t.Fatalf("Depth: %v", err)
	}
	for i, d := range depth {
		if d != 0 {
			t.Fatalf("cell %d = %v, want 0", i, d)
		}
	}
}

// A large occluder in front of the camera should fill every pixel with a
// positive depth.
func TestRender_FullScreenOccluderFillsViewport(t *testing.T) {
	r := newTestRenderer(t)
	quad := frontFacingQuad(1000, -5)
	occ := trisToMesh(quad[0], quad[1])

	if err := r.Render([]Occluder{occ}); err != nil {
		t.Fatalf("Render: %v", err)
	}
	depth, err := r.Depth()
	if err != nil {
		t.Fatalf("Depth: %v", err)
	}
	for i, d := range depth {
		if d <= 0 {
			t.Errorf("cell %d = %v, want > 0", i, d)
		}
	}
}

// Scenario 6: a back-facing triangle produces zero depth writes.
func TestRender_BackFaceTriangleWritesNoDepth(t *testing.T) {
	r := newTestRenderer(t)
	occ := trisToMesh(backFacingTriangle(1000, -5))

	if err := r.Render([]Occluder{occ}); err != nil {
		t.Fatalf("Render: %v", err)
	}
	depth, err := r.Depth()
	if err != nil {
		t.Fatalf("Depth: %v", err)
	}
	for i, d := range depth {
		if d != 0 {
			t.Fatalf("cell %d = %v, want 0 (back face should not rasterize)", i, d)
		}
	}
}

// P5: writing the same occluders in reverse order produces the same depth
// buffer, since rasterizeOccluder is a max-reduction.
func TestRender_OrderIndependent(t *testing.T) {
	near := trisToMesh(frontFacingQuadTri(1000, -3))
	far := trisToMesh(frontFacingQuadTri(1000, -20))

	r1 := newTestRenderer(t)
	if err := r1.Render([]Occluder{near, far}); err != nil {
		t.Fatalf("Render: %v", err)
	}
	d1, _ := r1.Depth()

	r2 := newTestRenderer(t)
	if err := r2.Render([]Occluder{far, near}); err != nil {
		t.Fatalf("Render: %v", err)
	}
	d2, _ := r2.Depth()

	for i := range d1 {
		if d1[i] != d2[i] {
			t.Fatalf("cell %d: got %v and %v depending on occluder order", i, d1[i], d2[i])
		}
	}
}

// A candidate fully behind a full-screen occluder must be culled.
func TestCull_CandidateBehindOccluderIsCulled(t *testing.T) {
	r := newTestRenderer(t)
	quad := frontFacingQuad(1000, -5)
	if err := r.Render([]Occluder{trisToMesh(quad[0], quad[1])}); err != nil {
		t.Fatalf("Render: %v", err)
	}

	behind := testCandidate{
		model: math3d.Identity(),
		mode:  CullAlways,
		bound: Bound{Kind: BoundBox, Center: math3d.V3(0, 0, -10), Extents: math3d.V3(0.1, 0.1, 0.1)},
	}

	visible, err := r.Cull([]Candidate{behind})
	if err != nil {
		t.Fatalf("Cull: %v", err)
	}
	if len(visible) != 0 {
		t.Errorf("got %d visible candidates, want 0 (fully occluded)", len(visible))
	}
	if r.CullStats().CandidatesCulled != 1 {
		t.Errorf("CandidatesCulled = %d, want 1", r.CullStats().CandidatesCulled)
	}
}

// A candidate in front of the occluder must remain visible.
func TestCull_CandidateInFrontOfOccluderIsVisible(t *testing.T) {
	r := newTestRenderer(t)
	quad := frontFacingQuad(1000, -5)
	if err := r.Render([]Occluder{trisToMesh(quad[0], quad[1])}); err != nil {
		t.Fatalf("Render: %v", err)
	}

	front := testCandidate{
		model: math3d.Identity(),
		mode:  CullAlways,
		bound: Bound{Kind: BoundBox, Center: math3d.V3(0, 0, -2), Extents: math3d.V3(0.1, 0.1, 0.1)},
	}

	visible, err := r.Cull([]Candidate{front})
	if err != nil {
		t.Fatalf("Cull: %v", err)
	}
	if len(visible) != 1 {
		t.Errorf("got %d visible candidates, want 1 (not occluded)", len(visible))
	}
}

// CullNever candidates skip the probe entirely and are always returned.
func TestCull_CullNeverSkipsProbe(t *testing.T) {
	r := newTestRenderer(t)
	quad := frontFacingQuad(1000, -5)
	if err := r.Render([]Occluder{trisToMesh(quad[0], quad[1])}); err != nil {
		t.Fatalf("Render: %v", err)
	}

	behind := testCandidate{
		model: math3d.Identity(),
		mode:  CullNever,
		bound: Bound{Kind: BoundBox, Center: math3d.V3(0, 0, -10), Extents: math3d.V3(0.1, 0.1, 0.1)},
	}

	visible, err := r.Cull([]Candidate{behind})
	if err != nil {
		t.Fatalf("Cull: %v", err)
	}
	if len(visible) != 1 {
		t.Errorf("got %d visible candidates, want 1 (CullNever)", len(visible))
	}
	if r.CullStats().CandidatesTested != 0 {
		t.Errorf("CandidatesTested = %d, want 0", r.CullStats().CandidatesTested)
	}
}

// A ShapeError on the first occluder leaves the frame valid (nothing was
// written yet); a ShapeError on a later occluder invalidates it.
func TestRender_ShapeErrorInvalidatesFrameOnlyAfterWrites(t *testing.T) {
	badOccluder := testMesh{
		positions: []float64{0, 0, 0, 1, 0, 0, 0, 1, 0},
		indices:   []int{0, 1, 2, 3},
		model:     math3d.Identity(),
	}

	r := newTestRenderer(t)
	err := r.Render([]Occluder{badOccluder})
	var shapeErr *ShapeError
	if !errors.As(err, &shapeErr) {
		t.Fatalf("got %v, want a *ShapeError", err)
	}
	if _, derr := r.Depth(); derr != nil {
		t.Errorf("Depth after first-occluder error: got %v, want nil (frame still valid)", derr)
	}

	good := trisToMesh(frontFacingQuadTri(1000, -5))
	r2 := newTestRenderer(t)
	err = r2.Render([]Occluder{good, badOccluder})
	if !errors.As(err, &shapeErr) {
		t.Fatalf("got %v, want a *ShapeError", err)
	}
	if _, derr := r2.Depth(); !errors.Is(derr, ErrFrameInvalid) {
		t.Errorf("Depth after later-occluder error: got %v, want ErrFrameInvalid", derr)
	}

	if err := r2.Render([]Occluder{good}); err != nil {
		t.Fatalf("Render after recovery: %v", err)
	}
	if _, derr := r2.Depth(); derr != nil {
		t.Errorf("Depth after recovery Render: got %v, want nil", derr)
	}
}

// frontFacingQuadTri collapses the two-triangle quad into one triangle
// (only the lower-right half), which is all several tests above need.
func frontFacingQuadTri(s, z float64) [3]math3d.Vec3 {
	q := frontFacingQuad(s, z)
	return q[0]
}
