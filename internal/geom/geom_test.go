package geom

import (
	"math"
	"testing"
)

const tolerance = 1e-9

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < tolerance
}

func TestVecBasics(t *testing.T) {
	a := Vec2{3, 4}
	b := Vec2{-1, 2}

	if got := a.Add(b); got != (Vec2{2, 6}) {
		t.Errorf("Add: got %v, want {2 6}", got)
	}
	if got := a.Sub(b); got != (Vec2{4, 2}) {
		t.Errorf("Sub: got %v, want {4 2}", got)
	}
	if got := a.Scale(2); got != (Vec2{6, 8}) {
		t.Errorf("Scale: got %v, want {6 8}", got)
	}
	if got := a.Dot(b); got != 5 {
		t.Errorf("Dot: got %v, want 5", got)
	}
	if got := a.Length(); got != 5 {
		t.Errorf("Length: got %v, want 5", got)
	}
}

func TestNormalize(t *testing.T) {
	v := Vec2{3, 4}.Normalize()
	if !almostEqual(v.X, 0.6) || !almostEqual(v.Y, 0.8) {
		t.Errorf("Normalize: got %v, want {0.6 0.8}", v)
	}
	if !almostEqual(v.Length(), 1) {
		t.Errorf("Normalize: length %v, want 1", v.Length())
	}
}

func TestNormalizeZeroPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("normalizing a zero vector should panic")
		}
	}()
	Vec2{}.Normalize()
}

func TestReflect(t *testing.T) {
	// Straight down onto a floor pointing up.
	v := Vec2{0, 5}.Reflect(Vec2{0, -1})
	if !almostEqual(v.X, 0) || !almostEqual(v.Y, -5) {
		t.Errorf("Reflect down: got %v, want {0 -5}", v)
	}

	// Diagonal onto a vertical wall: only x flips.
	v = Vec2{3, -2}.Reflect(Vec2{-1, 0})
	if !almostEqual(v.X, -3) || !almostEqual(v.Y, -2) {
		t.Errorf("Reflect wall: got %v, want {-3 -2}", v)
	}
}

func TestReflectPreservesSpeed(t *testing.T) {
	velocities := []Vec2{
		{8, -8},
		{-3, 1},
		{0.25, 12.5},
		{-0.01, -0.01},
	}
	normals := []Vec2{
		{0, -1},
		{1, 0},
		Vec2{1, 1}.Normalize(),
		Vec2{-2, 5}.Normalize(),
	}

	for _, v := range velocities {
		for _, n := range normals {
			r := v.Reflect(n)
			if !almostEqual(r.Length(), v.Length()) {
				t.Errorf("Reflect(%v, %v): speed %v, want %v", v, n, r.Length(), v.Length())
			}
		}
	}
}

func TestBoxIntersects(t *testing.T) {
	a := Box{Left: 0, Right: 10, Top: 0, Bottom: 10}
	b := Box{Left: 5, Right: 15, Top: 5, Bottom: 15}
	c := Box{Left: 20, Right: 30, Top: 20, Bottom: 30}

	if !a.Intersects(b) {
		t.Error("overlapping boxes should intersect")
	}
	if a.Intersects(c) {
		t.Error("disjoint boxes should not intersect")
	}
}

func TestBoxIntersectsReflexive(t *testing.T) {
	boxes := []Box{
		{Left: 0, Right: 10, Top: 0, Bottom: 10},
		{Left: -5, Right: -1, Top: 3, Bottom: 7},
		{Left: 2, Right: 2, Top: 2, Bottom: 2}, // degenerate point
	}
	for _, b := range boxes {
		if !b.Intersects(b) {
			t.Errorf("box %v should intersect itself", b)
		}
	}
}

func TestBoxIntersectsSymmetric(t *testing.T) {
	pairs := [][2]Box{
		{{Left: 0, Right: 10, Top: 0, Bottom: 10}, {Left: 5, Right: 15, Top: 5, Bottom: 15}},
		{{Left: 0, Right: 10, Top: 0, Bottom: 10}, {Left: 20, Right: 30, Top: 0, Bottom: 10}},
		{{Left: 0, Right: 10, Top: 0, Bottom: 10}, {Left: 10, Right: 20, Top: 0, Bottom: 10}},
	}
	for _, p := range pairs {
		if p[0].Intersects(p[1]) != p[1].Intersects(p[0]) {
			t.Errorf("Intersects not symmetric for %v and %v", p[0], p[1])
		}
	}
}

func TestBoxTouchingEdgesIntersect(t *testing.T) {
	a := Box{Left: 0, Right: 10, Top: 0, Bottom: 10}
	// Shares exactly the x=10 edge, otherwise disjoint.
	b := Box{Left: 10, Right: 20, Top: 0, Bottom: 10}
	if !a.Intersects(b) {
		t.Error("boxes sharing an edge should intersect (closed intervals)")
	}

	// Shares only the corner point (10, 10).
	c := Box{Left: 10, Right: 20, Top: 10, Bottom: 20}
	if !a.Intersects(c) {
		t.Error("boxes sharing a corner should intersect (closed intervals)")
	}

	// One unit of separation does not.
	d := Box{Left: 11, Right: 20, Top: 0, Bottom: 10}
	if a.Intersects(d) {
		t.Error("separated boxes should not intersect")
	}
}

func TestBoxExtents(t *testing.T) {
	b := Box{Left: 2, Right: 12, Top: 3, Bottom: 8}
	if b.Width() != 10 {
		t.Errorf("Width: got %v, want 10", b.Width())
	}
	if b.Height() != 5 {
		t.Errorf("Height: got %v, want 5", b.Height())
	}
}
