package occlusion

import (
	"math"
	"testing"

	"github.com/wegiangb/occluder/pkg/math3d"
)

func TestClipAppend_FullyInside(t *testing.T) {
	tri := camTriangle{
		math3d.V3(-1, -1, -5),
		math3d.V3(1, 1, -5),
		math3d.V3(1, -1, -5),
	}
	out := clipAppend(nil, tri, 1)
	if len(out) != 1 {
		t.Fatalf("got %d triangles, want 1", len(out))
	}
	if out[0] != tri {
		t.Errorf("vertices changed: got %v, want %v", out[0], tri)
	}
}

func TestClipAppend_FullyOutside(t *testing.T) {
	tri := camTriangle{
		math3d.V3(-1, -1, -0.2),
		math3d.V3(1, 1, -0.2),
		math3d.V3(1, -1, -0.2),
	}
	out := clipAppend(nil, tri, 1)
	if len(out) != 0 {
		t.Fatalf("got %d triangles, want 0", len(out))
	}
}

func TestClipAppend_BackfaceCulled(t *testing.T) {
	tri := backFacingTriangle(1, -5)
	out := clipAppend(nil, tri, 1)
	if len(out) != 0 {
		t.Fatalf("got %d triangles for a back-facing input, want 0", len(out))
	}
}

func TestClipAppend_FrontfaceSurvives(t *testing.T) {
	quad := frontFacingQuad(1, -5)
	for i, tri := range quad {
		out := clipAppend(nil, tri, 1)
		if len(out) != 1 {
			t.Errorf("triangle %d: got %d triangles, want 1", i, len(out))
		}
	}
}

func TestClipAppend_OneOutside(t *testing.T) {
	// Two vertices inside (z <= -near), one outside, wound so the
	// unclipped triangle is front-facing.
	tri := camTriangle{
		math3d.V3(-1, -1, -2),
		math3d.V3(0, 1, -0.5),
		math3d.V3(1, -1, -2),
	}
	out := clipAppend(nil, tri, 1)
	if len(out) != 2 {
		t.Fatalf("got %d triangles, want 2", len(out))
	}
	for i, r := range out {
		for j, v := range r {
			if v.Z > -1+1e-9 {
				t.Errorf("triangle %d vertex %d has z=%v, want <= -1", i, j, v.Z)
			}
		}
	}
}

func TestClipAppend_TwoOutside(t *testing.T) {
	tri := camTriangle{
		math3d.V3(-1, -1, -2),
		math3d.V3(0, 1, -0.5),
		math3d.V3(1, -1, -0.5),
	}
	out := clipAppend(nil, tri, 1)
	if len(out) != 1 {
		t.Fatalf("got %d triangles, want 1", len(out))
	}
	for j, v := range out[0] {
		if v.Z > -1+1e-9 {
			t.Errorf("vertex %d has z=%v, want <= -1", j, v.Z)
		}
	}
}

func TestNearIntersect_Ratio(t *testing.T) {
	// origin.Z = -1.5, target.Z = 0 (degenerate, but isolates r): near = 1
	// means the plane sits at z = -1. r should be (origin.Z+near)/(origin.Z-target.Z).
	origin := math3d.V3(0, 0, -1.5)
	target := math3d.V3(3, 0, 0)
	got := nearIntersect(origin, target, 1)

	wantR := (origin.Z + 1) / (origin.Z - target.Z) // = -0.5 / -1.5 = 1/3
	wantX := origin.X + wantR*(target.X-origin.X)
	wantZ := origin.Z + wantR*(target.Z-origin.Z)

	if math.Abs(wantR-1.0/3.0) > 1e-9 {
		t.Fatalf("test setup error: r=%v, want 1/3", wantR)
	}
	if math.Abs(got.X-wantX) > 1e-9 || math.Abs(got.Z-wantZ) > 1e-9 {
		t.Errorf("got %v, want x=%v z=%v", got, wantX, wantZ)
	}
	if math.Abs(got.Z-(-1)) > 1e-9 {
		t.Errorf("intersection z=%v, want exactly -near=-1", got.Z)
	}
}
