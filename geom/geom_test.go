package geom

import (
	"math"
	"testing"
)

const tol = 1e-9

func near(a, b float64) bool { return math.Abs(a-b) < tol }

func nearVec(a, b Vec3) bool { return near(a.X, b.X) && near(a.Y, b.Y) && near(a.Z, b.Z) }

func TestPlaneRoundTrip(t *testing.T) {
	phi := 0.3
	p := Plane{
		Position: Vec3{100 * math.Cos(phi), 100 * math.Sin(phi), 600},
		Rotation: Rotation{
			{math.Sin(phi), -math.Cos(phi), 0},
			{math.Cos(phi), math.Sin(phi), 0},
			{0, 0, 1},
		},
	}

	for _, g := range []Vec3{{0, 0, 0}, {1, 2, 3}, {-50, 80, 610}} {
		if got := p.ToGlobal(p.ToLocal(g)); !nearVec(got, g) {
			t.Errorf("round trip of %v: got %v", g, got)
		}
	}

	// a point displaced radially from the plane origin ends up on local y.
	l := p.ToLocal(p.Position.Add(Vec3{math.Cos(phi), math.Sin(phi), 0}.Scale(10)))
	if !nearVec(l, Vec3{0, 10, 0}) {
		t.Errorf("radial offset: got %v", l)
	}
}

func TestTrapezoidSpans(t *testing.T) {
	p := BoundPlane{
		Plane: Plane{Position: Vec3{0, 150, 600}, Rotation: Identity},
		Bounds: TrapezoidBounds{
			HalfWidthBottom: 10,
			HalfWidthTop:    20,
			HalfLength:      50,
			HalfThickness:   5,
		},
	}

	z := p.ZSpan()
	if !near(z.Min, 595) || !near(z.Max, 605) {
		t.Errorf("z span = %+v", z)
	}

	r := p.RSpan()
	if !near(r.Min, math.Hypot(10, 100)) || !near(r.Max, math.Hypot(20, 200)) {
		t.Errorf("r span = %+v", r)
	}

	if !p.Bounds.Inside(Vec3{14, 0, 0}) {
		t.Errorf("expected (14,0,0) inside")
	}
	if p.Bounds.Inside(Vec3{16, 0, 0}) {
		t.Errorf("expected (16,0,0) outside")
	}
}

func TestSpanUnion(t *testing.T) {
	s := EmptySpan()
	if s.Min <= s.Max {
		t.Fatalf("empty span should be inverted")
	}
	s = s.Union(Span{1, 3}).Union(Span{-2, 2})
	if s != (Span{-2, 3}) {
		t.Errorf("got %+v", s)
	}
}

func TestDisk(t *testing.T) {
	if _, err := NewDisk(0, DiskBounds{RMin: 2, RMax: 1}); err == nil {
		t.Fatalf("expected error for inverted bounds")
	}

	d, err := NewDisk(600, DiskBounds{RMin: 0, RMax: 50, ZMin: -1, ZMax: 1})
	if err != nil {
		t.Fatal(err)
	}

	for _, tc := range []struct {
		g    Vec3
		want bool
	}{
		{Vec3{0, 0, 600}, true},
		{Vec3{50, 0, 600}, true},
		{Vec3{30, 40, 600.5}, true},
		{Vec3{30, 41, 600}, false},
		{Vec3{0, 0, 602}, false},
	} {
		if got := d.Contains(tc.g); got != tc.want {
			t.Errorf("Contains(%v) = %v, want %v", tc.g, got, tc.want)
		}
	}
}
