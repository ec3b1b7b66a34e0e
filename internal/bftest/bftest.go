// Package bftest implements an independent, non-sweep Voronoi diagram
// builder. It exists purely as a test oracle for the dividing-chain
// merger, which never builds a diagram from raw sites itself, and as
// a way for the CLI to manufacture half-diagrams from a bare site
// list.
//
// Each site's region is found by clipping a large bounding square
// against the half-plane of every other site's perpendicular bisector
// (Sutherland-Hodgman polygon clipping). This is deliberately O(n^2)
// in the number of sites and unsuited to anything beyond the small
// inputs a test or a CLI demonstration would hand it.
package bftest

import (
	"sort"

	"github.com/arl/vormerge/geom"
	"github.com/arl/vormerge/voronoi"
)

// squareFactor sizes the initial clip square well beyond where any
// real Voronoi vertex can fall, so that whatever of it survives
// clipping marks a direction that is genuinely unbounded rather than
// an artifact of too tight a square.
const squareFactor = 50

// rayExtentFactor mirrors merge.DefaultConfig's RayExtent: unbounded
// edges are extrapolated by this multiple of the site set's bounding
// box extent, the same convention merge.Merge uses for its own
// far-endpoint edges. Build also adds rayExtentFactor itself to that
// distance (merge.Merge adds nothing), so the distance stays non-zero
// when the extent is zero.
const rayExtentFactor = 4

// Build constructs the Voronoi diagram of sites by half-plane clipping.
// Unbounded cells (sites on the convex hull) have their open bisectors
// extrapolated to a far endpoint with geom.BuildRayEnd, exactly as
// merge.Merge would produce them, so a diagram built by Build is a
// valid half-diagram input to Merge as well as a comparison oracle.
func Build(sites []voronoi.Site) *voronoi.Diagram {
	if len(sites) == 0 {
		return voronoi.NewDiagram(nil, nil, nil)
	}

	byID := make(map[int]voronoi.Site, len(sites))
	pts := make([]geom.Vec2, len(sites))
	for i, s := range sites {
		byID[s.ID] = s
		pts[i] = s.Pt
	}
	bb := geom.BoundsOf(pts)
	halfWidth := bb.MaxExtent()*squareFactor + squareFactor
	extent := bb.MaxExtent()*rayExtentFactor + rayExtentFactor
	center := geom.Vec2{X: (bb.MinX + bb.MaxX) / 2, Y: (bb.MinY + bb.MaxY) / 2}

	var edges []voronoi.Edge
	seen := make(map[[2]int]bool)

	for _, s := range sites {
		poly := square(center, halfWidth)
		for _, t := range sites {
			if t.ID == s.ID {
				continue
			}
			poly = clipHalfPlane(poly, s.Pt, t.Pt, t.ID)
		}

		n := len(poly)
		for i, v := range poly {
			owner := v.inOwner
			if owner < 0 {
				continue
			}
			a, b := s.ID, owner
			if a > b {
				a, b = b, a
			}
			if seen[[2]int{a, b}] {
				continue
			}
			seen[[2]int{a, b}] = true

			start := poly[(i-1+n)%n].pt
			end := v.pt
			startUnbounded := poly[(i-1+n)%n].inOwner < 0
			endUnbounded := poly[(i+1)%n].inOwner < 0
			neighbor := byID[owner]

			// A bisector that only touches this region at one vertex
			// (four or more cocircular sites) clips down to a
			// zero-length segment, which is not a Voronoi edge.
			if !startUnbounded && !endUnbounded && geom.Equal(start, end) {
				continue
			}

			// Region polygons are counter-clockwise, so the edge runs
			// from start to end in direction Perp(neighbor - s).
			switch {
			case startUnbounded && endUnbounded:
				mid := s.Pt.Mid(neighbor.Pt)
				start = geom.BuildRayEnd(mid, neighbor.Pt, s.Pt, extent)
				end = geom.BuildRayEnd(mid, s.Pt, neighbor.Pt, extent)
			case startUnbounded:
				start = geom.BuildRayEnd(end, s.Pt, neighbor.Pt, extent)
			case endUnbounded:
				end = geom.BuildRayEnd(start, neighbor.Pt, s.Pt, extent)
			}

			edges = append(edges, voronoi.Edge{Start: start, End: end, Left: s.ID, Right: owner})
		}
	}

	hull := convexHull(sites)
	return voronoi.NewDiagram(append([]voronoi.Site(nil), sites...), edges, hull)
}

// vtx is one corner of a clipped region polygon. inOwner is the id of
// the site whose bisector produced the edge arriving at this vertex
// from the previous one in the (pre-clip) polygon; -1 marks a vertex
// whose provenance traces back to the original bounding square rather
// than to a real bisector intersection.
type vtx struct {
	pt      geom.Vec2
	inOwner int
}

func square(center geom.Vec2, halfWidth float64) []vtx {
	return []vtx{
		{pt: geom.Vec2{X: center.X - halfWidth, Y: center.Y - halfWidth}, inOwner: -1},
		{pt: geom.Vec2{X: center.X + halfWidth, Y: center.Y - halfWidth}, inOwner: -1},
		{pt: geom.Vec2{X: center.X + halfWidth, Y: center.Y + halfWidth}, inOwner: -1},
		{pt: geom.Vec2{X: center.X - halfWidth, Y: center.Y + halfWidth}, inOwner: -1},
	}
}

// clipHalfPlane clips the convex polygon input against the half-plane
// of points closer to s than to t (the perpendicular bisector of s,t
// being the clip boundary), tagging the one new edge the clip can
// introduce with owner t.
func clipHalfPlane(input []vtx, s, t geom.Vec2, owner int) []vtx {
	mid := s.Mid(t)
	dir := t.Sub(s)
	keep := func(p geom.Vec2) bool {
		return p.Sub(mid).Dot(dir) <= 0
	}
	boundaryB := mid.Add(geom.Perp(dir))

	n := len(input)
	if n == 0 {
		return input
	}
	var out []vtx
	for i := 0; i < n; i++ {
		curr := input[i]
		prev := input[(i-1+n)%n]
		currIn := keep(curr.pt)
		prevIn := keep(prev.pt)

		if currIn != prevIn {
			ip, ok := geom.Intersection(prev.pt, curr.pt, mid, boundaryB)
			if ok {
				if currIn {
					out = append(out, vtx{pt: ip, inOwner: owner})
				} else {
					out = append(out, vtx{pt: ip, inOwner: curr.inOwner})
				}
			}
		}
		if currIn {
			out = append(out, curr)
		}
	}
	return out
}

// convexHull returns the counter-clockwise convex hull of sites, via
// Andrew's monotone chain.
func convexHull(sites []voronoi.Site) []voronoi.Site {
	pts := append([]voronoi.Site(nil), sites...)
	sort.Slice(pts, func(i, j int) bool {
		if pts[i].Pt.X != pts[j].Pt.X {
			return pts[i].Pt.X < pts[j].Pt.X
		}
		return pts[i].Pt.Y < pts[j].Pt.Y
	})
	if len(pts) < 3 {
		return pts
	}

	build := func(order []voronoi.Site) []voronoi.Site {
		var h []voronoi.Site
		for _, p := range order {
			for len(h) >= 2 && geom.RaySide(h[len(h)-2].Pt, h[len(h)-1].Pt, p.Pt) <= 0 {
				h = h[:len(h)-1]
			}
			h = append(h, p)
		}
		return h
	}

	lower := build(pts)

	rev := make([]voronoi.Site, len(pts))
	for i, p := range pts {
		rev[len(pts)-1-i] = p
	}
	upper := build(rev)

	return append(lower[:len(lower)-1], upper[:len(upper)-1]...)
}
