package voronoi

import "github.com/arl/vormerge/geom"

// hullNext and hullPrev walk a cyclic, counter-clockwise ordered hull.
func hullNext(i, n int) int { return (i + 1) % n }
func hullPrev(i, n int) int { return (i - 1 + n) % n }

// rightmostIndex returns the index of the hull point with the largest
// X, breaking ties by the largest Y.
func rightmostIndex(hull []Site) int {
	best := 0
	for i := 1; i < len(hull); i++ {
		if hull[i].Pt.X > hull[best].Pt.X ||
			(hull[i].Pt.X == hull[best].Pt.X && hull[i].Pt.Y > hull[best].Pt.Y) {
			best = i
		}
	}
	return best
}

// leftmostIndex returns the index of the hull point with the smallest
// X, breaking ties by the smallest Y.
func leftmostIndex(hull []Site) int {
	best := 0
	for i := 1; i < len(hull); i++ {
		if hull[i].Pt.X < hull[best].Pt.X ||
			(hull[i].Pt.X == hull[best].Pt.X && hull[i].Pt.Y < hull[best].Pt.Y) {
			best = i
		}
	}
	return best
}

// upperTangent finds the upper bridge (l*, r*) between left hull L and
// right hull R: the pair of indices such that the line through
// L[l*]-R[r*] has every other hull point on or below it. The classical
// rotating-pair loop alternately advances r along R's upper chain (via
// prev, since R starts at its leftmost point) and l along L's upper
// chain (via next, since L starts at its rightmost point) until
// neither side can advance further.
func upperTangent(L, R []Site) (l, r int) {
	l = rightmostIndex(L)
	r = leftmostIndex(R)
	for {
		moved := false
		for geom.RaySide(L[l].Pt, R[r].Pt, R[hullPrev(r, len(R))].Pt) > 0 {
			r = hullPrev(r, len(R))
			moved = true
		}
		for geom.RaySide(R[r].Pt, L[l].Pt, L[hullNext(l, len(L))].Pt) < 0 {
			l = hullNext(l, len(L))
			moved = true
		}
		if !moved {
			return l, r
		}
	}
}

// lowerTangent finds the lower bridge (l*, r*) between left hull L and
// right hull R, symmetric to upperTangent: it walks L's lower chain
// (via prev) and R's lower chain (via next).
func lowerTangent(L, R []Site) (l, r int) {
	l = rightmostIndex(L)
	r = leftmostIndex(R)
	for {
		moved := false
		for geom.RaySide(L[l].Pt, R[r].Pt, R[hullNext(r, len(R))].Pt) < 0 {
			r = hullNext(r, len(R))
			moved = true
		}
		for geom.RaySide(R[r].Pt, L[l].Pt, L[hullPrev(l, len(L))].Pt) > 0 {
			l = hullPrev(l, len(L))
			moved = true
		}
		if !moved {
			return l, r
		}
	}
}

// walkCCW returns the cyclic slice of hull starting at index from and
// ending at index to (inclusive of both), advancing counter-clockwise.
func walkCCW(hull []Site, from, to int) []Site {
	n := len(hull)
	out := []Site{hull[from]}
	for i := from; i != to; {
		i = hullNext(i, n)
		out = append(out, hull[i])
	}
	return out
}

// MergeHulls merges two disjoint, counter-clockwise convex hulls L and
// R, with L wholly left of R, returning the hull of their union along
// with the two bridging tangents the merger's dividing chain starts
// and ends on: (lLeft, lRight) is the upper tangent (the chain's
// starting pair) and (qLeft, qRight) is the lower tangent (the chain's
// terminating pair).
func MergeHulls(left, right []Site) (merged []Site, lLeft, lRight, qLeft, qRight Site) {
	ul, ur := upperTangent(left, right)
	ql, qr := lowerTangent(left, right)

	merged = append(merged, walkCCW(left, ul, ql)...)
	merged = append(merged, walkCCW(right, qr, ur)...)

	return merged, left[ul], right[ur], left[ql], right[qr]
}
