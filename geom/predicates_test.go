package geom

import (
	"math"
	"testing"
)

func TestIntersection(t *testing.T) {
	ttable := []struct {
		msg            string
		a, b, c, d     Vec2
		wantOK         bool
		wantX, wantY   float64
	}{
		{
			"crossing diagonals of the unit square",
			Vec2{0, 0}, Vec2{1, 1}, Vec2{0, 1}, Vec2{1, 0},
			true, 0.5, 0.5,
		},
		{
			"parallel lines",
			Vec2{0, 0}, Vec2{1, 0}, Vec2{0, 1}, Vec2{1, 1},
			false, 0, 0,
		},
		{
			"perpendicular lines meeting at origin",
			Vec2{-1, 0}, Vec2{1, 0}, Vec2{0, -1}, Vec2{0, 1},
			true, 0, 0,
		},
	}

	for _, tt := range ttable {
		p, ok := Intersection(tt.a, tt.b, tt.c, tt.d)
		if ok != tt.wantOK {
			t.Fatalf("%s: ok = %v, want %v", tt.msg, ok, tt.wantOK)
		}
		if !ok {
			continue
		}
		if math.Abs(p.X-tt.wantX) > Float2Equals || math.Abs(p.Y-tt.wantY) > Float2Equals {
			t.Errorf("%s: intersection = %v, want (%v,%v)", tt.msg, p, tt.wantX, tt.wantY)
		}
	}
}

func TestPointOnLineSegment(t *testing.T) {
	c, d := Vec2{0, 0}, Vec2{10, 0}
	ttable := []struct {
		p    Vec2
		want bool
	}{
		{Vec2{5, 0}, true},
		{Vec2{0, 0}, true},
		{Vec2{10, 0}, true},
		{Vec2{11, 0}, false},
		{Vec2{-0.1, 0}, false},
	}
	for _, tt := range ttable {
		if got := PointOnLineSegment(c, d, tt.p); got != tt.want {
			t.Errorf("PointOnLineSegment(%v,%v,%v) = %v, want %v", c, d, tt.p, got, tt.want)
		}
	}
}

func TestRaySide(t *testing.T) {
	a, b := Vec2{0, 0}, Vec2{1, 0}
	ttable := []struct {
		p    Vec2
		want int
	}{
		{Vec2{0, 1}, 1},
		{Vec2{0, -1}, -1},
		{Vec2{0.5, 0}, 0},
	}
	for _, tt := range ttable {
		if got := RaySide(a, b, tt.p); got != tt.want {
			t.Errorf("RaySide(%v,%v,%v) = %v, want %v", a, b, tt.p, got, tt.want)
		}
	}
}

func TestBuildRayEndOutgoingIsDownward(t *testing.T) {
	l, r := Vec2{0, 0}, Vec2{2, 0}
	mid := l.Mid(r)
	end := BuildRayEnd(mid, l, r, 100)
	if end.Y >= mid.Y {
		t.Errorf("expected outgoing ray to extend downward from %v, got %v", mid, end)
	}
	if math.Abs(end.X-mid.X) > Float2Equals {
		t.Errorf("expected outgoing ray to stay on the bisector x=%v, got %v", mid.X, end)
	}
}

func TestBuildRayEndIncomingContinuesUpward(t *testing.T) {
	l, r := Vec2{0, 0}, Vec2{2, 0}
	mid := l.Mid(r)
	rayDir := Perp(r.Sub(l)).Normalize()
	currentPoint := mid.Add(rayDir.Scale(3))

	end := BuildRayEnd(currentPoint, r, l, 100)
	if end.Y <= currentPoint.Y {
		t.Errorf("expected incoming ray to keep extending upward from %v, got %v", currentPoint, end)
	}
}
