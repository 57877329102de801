package core

import "testing"

// Cell rects use half-open extents, so rects that merely touch do not
// intersect. The float geometry in internal/geom behaves differently.
func TestRectIntersects(t *testing.T) {
	tests := []struct {
		name string
		a, b Rect
		want bool
	}{
		{"overlap", NewRect(0, 0, 10, 10), NewRect(5, 5, 10, 10), true},
		{"separated horizontally", NewRect(0, 0, 10, 10), NewRect(15, 0, 10, 10), false},
		{"separated vertically", NewRect(0, 0, 10, 10), NewRect(0, 15, 10, 10), false},
		{"touching right edge", NewRect(0, 0, 10, 10), NewRect(10, 0, 10, 10), false},
		{"touching bottom edge", NewRect(0, 0, 10, 10), NewRect(0, 10, 10, 10), false},
		{"fully contained", NewRect(0, 0, 20, 20), NewRect(5, 5, 5, 5), true},
		{"one cell of overlap", NewRect(0, 0, 10, 10), NewRect(9, 9, 10, 10), true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Intersects(tc.b); got != tc.want {
				t.Errorf("a.Intersects(b) = %v, want %v", got, tc.want)
			}
			if got := tc.b.Intersects(tc.a); got != tc.want {
				t.Errorf("b.Intersects(a) = %v, want %v (must be symmetric)", got, tc.want)
			}
		})
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	inside := [][2]int{{15, 15}, {10, 10}, {29, 24}}
	for _, p := range inside {
		if !r.Contains(p[0], p[1]) {
			t.Errorf("Contains(%d, %d) = false, want true", p[0], p[1])
		}
	}

	outside := [][2]int{{30, 25}, {5, 15}, {35, 15}, {15, 5}, {15, 30}}
	for _, p := range outside {
		if r.Contains(p[0], p[1]) {
			t.Errorf("Contains(%d, %d) = true, want false", p[0], p[1])
		}
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 || r.Bottom() != 25 {
		t.Errorf("Right/Bottom = %d/%d, want 25/25", r.Right(), r.Bottom())
	}

	cx, cy := r.Center()
	if cx != 15 || cy != 17 {
		t.Errorf("Center() = (%d, %d), want (15, 17)", cx, cy)
	}
}

func TestClamp(t *testing.T) {
	cases := []struct{ v, lo, hi, want int }{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
		{0, 0, 10, 0},
		{10, 0, 10, 10},
	}
	for _, c := range cases {
		if got := Clamp(c.v, c.lo, c.hi); got != c.want {
			t.Errorf("Clamp(%d, %d, %d) = %d, want %d", c.v, c.lo, c.hi, got, c.want)
		}
	}
}

func TestClampF(t *testing.T) {
	cases := []struct{ v, lo, hi, want float64 }{
		{5.5, 0, 10, 5.5},
		{-5.5, 0, 10, 0},
		{15.5, 0, 10, 10},
	}
	for _, c := range cases {
		if got := ClampF(c.v, c.lo, c.hi); got != c.want {
			t.Errorf("ClampF(%v, %v, %v) = %v, want %v", c.v, c.lo, c.hi, got, c.want)
		}
	}
}

func TestMinMaxAbs(t *testing.T) {
	if Min(5, 10) != 5 || Min(10, 5) != 5 {
		t.Error("Min should pick the smaller value")
	}
	if Max(5, 10) != 10 || Max(10, 5) != 10 {
		t.Error("Max should pick the larger value")
	}
	if Abs(5) != 5 || Abs(-5) != 5 || Abs(0) != 0 {
		t.Error("Abs should strip the sign")
	}
}
