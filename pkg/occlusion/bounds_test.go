package occlusion

import (
	"testing"

	"github.com/wegiangb/occluder/pkg/math3d"
)

func TestNearIntersectsCorners(t *testing.T) {
	view := math3d.Identity()

	allBehind := []math3d.Vec3{math3d.V3(0, 0, -5), math3d.V3(1, 1, -6)}
	if nearIntersectsCorners(allBehind, view, 1) {
		t.Errorf("all corners behind the near plane: got true, want false")
	}

	oneInFront := []math3d.Vec3{math3d.V3(0, 0, -5), math3d.V3(0, 0, -0.5)}
	if !nearIntersectsCorners(oneInFront, view, 1) {
		t.Errorf("one corner in front of the near plane: got false, want true")
	}
}

// A candidate whose bounding box straddles the near plane must be reported
// visible regardless of the occluder state, since probing it is unsafe.
func TestCull_BoundStraddlingNearPlaneStaysVisible(t *testing.T) {
	r := newTestRenderer(t)
	quad := frontFacingQuad(1000, -5)
	if err := r.Render([]Occluder{trisToMesh(quad[0], quad[1])}); err != nil {
		t.Fatalf("Render: %v", err)
	}

	straddling := testCandidate{
		model: math3d.Identity(),
		mode:  CullAlways,
		bound: Bound{Kind: BoundBox, Center: math3d.V3(0, 0, -1), Extents: math3d.V3(0.1, 0.1, 2)},
	}

	visible, err := r.Cull([]Candidate{straddling})
	if err != nil {
		t.Fatalf("Cull: %v", err)
	}
	if len(visible) != 1 {
		t.Errorf("got %d visible candidates, want 1 (near-plane straddle is always visible)", len(visible))
	}
}

func TestSphereTriangles_SilhouetteCount(t *testing.T) {
	b := Bound{Kind: BoundSphere, Center: math3d.V3(0, 0, -5), Radius: 1}
	tris, nearHit := boundingVolumeTriangles(b, math3d.Identity(), math3d.Identity(), 1)
	if nearHit {
		t.Fatalf("got nearHit=true, want false")
	}
	if len(tris) != SphereSilhouetteSides {
		t.Errorf("got %d triangles, want %d", len(tris), SphereSilhouetteSides)
	}
}

func TestBoxTriangles_TwelveFaces(t *testing.T) {
	b := Bound{Kind: BoundBox, Center: math3d.V3(0, 0, -5), Extents: math3d.V3(1, 1, 1)}
	tris, nearHit := boundingVolumeTriangles(b, math3d.Identity(), math3d.Identity(), 1)
	if nearHit {
		t.Fatalf("got nearHit=true, want false")
	}
	if len(tris) != 12 {
		t.Errorf("got %d triangles, want 12", len(tris))
	}
}
