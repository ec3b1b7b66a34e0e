package geom

import "math"

// Intersection computes the intersection point of the infinite lines
// through a-b and c-d. ok is false when the lines are parallel or
// coincident, generalizing recast/contour.go's left/leftOn/collinear
// predicates to continuous coordinates.
func Intersection(a, b, c, d Vec2) (p Vec2, ok bool) {
	r := b.Sub(a)
	s := d.Sub(c)

	denom := r.X*s.Y - r.Y*s.X
	if denom == 0 {
		// parallel (or coincident); no unique intersection
		return Vec2{}, false
	}

	qp := c.Sub(a)
	t := (qp.X*s.Y - qp.Y*s.X) / denom

	return a.Add(r.Scale(t)), true
}

// PointOnLineSegment reports whether p lies on the closed segment cd.
// p is assumed colinear with c and d by construction (it is the result
// of Intersection on the line through c,d); this only tests that p
// falls within cd's axis-aligned bounding box.
func PointOnLineSegment(c, d, p Vec2) bool {
	const eps = Float2Equals
	minX, maxX := math.Min(c.X, d.X), math.Max(c.X, d.X)
	minY, maxY := math.Min(c.Y, d.Y), math.Max(c.Y, d.Y)
	return p.X >= minX-eps && p.X <= maxX+eps && p.Y >= minY-eps && p.Y <= maxY+eps
}

// RaySide returns the sign of the signed area of triangle (a, b, p):
// +1 if p is left of the directed ray a->b, -1 if right, 0 if p is
// colinear with a and b.
func RaySide(a, b, p Vec2) int {
	area := (b.X-a.X)*(p.Y-a.Y) - (b.Y-a.Y)*(p.X-a.X)
	switch {
	case area > 0:
		return 1
	case area < 0:
		return -1
	default:
		return 0
	}
}

// BuildRayEnd extrapolates the unbounded Voronoi edge emanating from
// origin, perpendicular to lSite->rSite, to a finite endpoint well
// outside the site bounding box. extent is the "comfortable margin"
// distance, normally Bounds.MaxExtent()*RayExtent (see merge.Config).
// The direction is lSite-rSite rotated 90 degrees to the left, so the
// argument order alone picks which way the ray goes: with lSite left
// of rSite it points downward (the outgoing ray), and with the two
// swapped it points upward (the incoming ray). Where origin lies
// relative to the two sites plays no part in the choice.
func BuildRayEnd(origin, lSite, rSite Vec2, extent float64) Vec2 {
	dir := Perp(lSite.Sub(rSite)).Normalize()
	return origin.Add(dir.Scale(extent))
}
