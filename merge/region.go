package merge

import (
	"math"

	"github.com/arl/vormerge/geom"
	"github.com/arl/vormerge/voronoi"
)

// noEdge is the "no edge" sentinel used for a region-enter edge index
// that does not correspond to any real edge yet (the chain has not
// touched this side's region before).
const noEdge = -1

// side names which half of the dividing chain a region belongs to,
// since the pruning and cutting policies are mirror images of each
// other across the chain.
type side int

const (
	sideLeft side = iota
	sideRight
)

// RayRegionCrossing finds, among the edges bordering siteID, the one
// that the infinite line through origin in direction dir crosses
// closest to origin in a coordinate frame rotated so dir maps to +y.
// The returned distance is that rotated y coordinate, and may be
// negative; +Inf and voronoi.NullEdge are returned when no bordering
// edge is crossed within its own segment bounds.
func RayRegionCrossing(origin, dir geom.Vec2, siteID int, edges []voronoi.Edge, regions map[int][]int) (distance float64, point geom.Vec2, edgeIndex int, edge voronoi.Edge) {
	u := dir.Normalize()

	best := math.Inf(1)
	bestIdx := noEdge
	var bestPoint geom.Vec2
	bestEdge := voronoi.NullEdge

	for _, idx := range regions[siteID] {
		e := edges[idx]
		p, ok := geom.Intersection(origin, origin.Add(dir), e.Start, e.End)
		if !ok || !geom.PointOnLineSegment(e.Start, e.End, p) {
			continue
		}
		y := p.Sub(origin).Dot(u)
		if y < best {
			best, bestIdx, bestPoint, bestEdge = y, idx, p, e
		}
	}

	if bestIdx == noEdge {
		return math.Inf(1), geom.Vec2{}, noEdge, voronoi.NullEdge
	}
	return best, bestPoint, bestIdx, bestEdge
}

// RegionCrossing finds, among the edges bordering siteID other than
// excluded, the one the ray from origin in direction dir crosses
// closest to origin in the forward direction (dot(dir, point-origin) >
// 0). approach is the squared Euclidean distance from origin to the
// crossing point. crossed is false when no such edge exists.
func RegionCrossing(origin, dir geom.Vec2, siteID int, edges []voronoi.Edge, regions map[int][]int, excluded int) (crossed bool, approach float64, point geom.Vec2, edgeIndex int, edge voronoi.Edge) {
	best := math.Inf(1)
	bestIdx := noEdge
	var bestPoint geom.Vec2
	bestEdge := voronoi.NullEdge

	for _, idx := range regions[siteID] {
		if idx == excluded {
			continue
		}
		e := edges[idx]
		p, ok := geom.Intersection(origin, origin.Add(dir), e.Start, e.End)
		if !ok || !geom.PointOnLineSegment(e.Start, e.End, p) {
			continue
		}
		if dir.Dot(p.Sub(origin)) <= 0 {
			continue
		}
		d := origin.DistSqr(p)
		if d < best {
			best, bestIdx, bestPoint, bestEdge = d, idx, p, e
		}
	}

	if bestIdx == noEdge {
		return false, 0, geom.Vec2{}, noEdge, voronoi.NullEdge
	}
	return true, best, bestPoint, bestIdx, bestEdge
}

// losingSide reports whether the edge (a, b) has an endpoint strictly
// on the losing side of the line through the chain segment (enter,
// exit): an endpoint strictly left of the chain loses the edge for the
// left region, one strictly right loses it for the right region. A
// point exactly on the chain (RaySide == 0) is never, by itself,
// enough to call the edge losing.
func losingSide(enter, exit, a, b geom.Vec2, s side) bool {
	sa := geom.RaySide(enter, exit, a)
	sb := geom.RaySide(enter, exit, b)
	if s == sideLeft {
		return maxInt(sa, sb) > 0
	}
	return minInt(sa, sb) < 0
}

// cutEdge applies the cutting policy to eOut, the edge the chain exits
// a region through, given the edge eIn it entered through (identified
// by index; enterIdx == exitIdx is the degenerate hairline case where
// the chain both enters and exits via the same edge).
func cutEdge(eOut voronoi.Edge, enterIdx, exitIdx int, enter, exit geom.Vec2, s side) voronoi.Edge {
	if enterIdx == exitIdx {
		return voronoi.Edge{Start: enter, End: exit, Left: eOut.Left, Right: eOut.Right}
	}

	startSide := geom.RaySide(enter, exit, eOut.Start)
	endSide := geom.RaySide(enter, exit, eOut.End)

	var keep geom.Vec2
	switch s {
	case sideLeft:
		// keep the endpoint with the smaller RaySide value: the one on
		// the right of the chain, the winning side for the left region.
		if startSide < endSide {
			keep = eOut.Start
		} else {
			keep = eOut.End
		}
	default:
		// right side keeps the larger RaySide value.
		if startSide > endSide {
			keep = eOut.Start
		} else {
			keep = eOut.End
		}
	}

	return voronoi.Edge{Start: keep, End: exit, Left: eOut.Left, Right: eOut.Right}
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
