package merge

import (
	"math"
	"testing"

	"github.com/arl/vormerge/geom"
	"github.com/arl/vormerge/voronoi"
)

func TestRayRegionCrossingFindsClosest(t *testing.T) {
	edges := []voronoi.Edge{
		{Start: geom.Vec2{X: -10, Y: 2}, End: geom.Vec2{X: 10, Y: 2}, Left: 0, Right: 1},
		{Start: geom.Vec2{X: -10, Y: 5}, End: geom.Vec2{X: 10, Y: 5}, Left: 0, Right: 2},
	}
	regions := map[int][]int{0: {0, 1}}

	dist, pt, idx, _ := RayRegionCrossing(geom.Vec2{X: 0, Y: 0}, geom.Vec2{X: 0, Y: 1}, 0, edges, regions)
	if idx != 0 {
		t.Fatalf("crossed edge %d, want 0 (the closer one)", idx)
	}
	if !pt.Approx(geom.Vec2{X: 0, Y: 2}, geom.Float2Equals) {
		t.Errorf("crossing point = %v, want (0,2)", pt)
	}
	if dist != 2 {
		t.Errorf("distance = %v, want 2", dist)
	}
}

func TestRayRegionCrossingNoEdges(t *testing.T) {
	dist, _, idx, edge := RayRegionCrossing(geom.Vec2{}, geom.Vec2{X: 0, Y: 1}, 0, nil, map[int][]int{})
	if !math.IsInf(dist, 1) || idx != noEdge || !edge.IsNull() {
		t.Errorf("RayRegionCrossing with no edges = (%v, %d, %+v), want (+Inf, noEdge, NullEdge)", dist, idx, edge)
	}
}

func TestRegionCrossingExcludesAndFiltersBackward(t *testing.T) {
	edges := []voronoi.Edge{
		{Start: geom.Vec2{X: -10, Y: 2}, End: geom.Vec2{X: 10, Y: 2}, Left: 0, Right: 1},
		{Start: geom.Vec2{X: -10, Y: -2}, End: geom.Vec2{X: 10, Y: -2}, Left: 0, Right: 2},
	}
	regions := map[int][]int{0: {0, 1}}

	// Excluding edge 0 should leave only the backward-facing edge 1,
	// which RegionCrossing must also reject since it isn't ahead of
	// origin along dir.
	crossed, _, _, _, _ := RegionCrossing(geom.Vec2{X: 0, Y: 0}, geom.Vec2{X: 0, Y: 1}, 0, edges, regions, 0)
	if crossed {
		t.Errorf("RegionCrossing found a backward crossing after excluding the only forward edge")
	}

	crossed, approach, pt, idx, _ := RegionCrossing(geom.Vec2{X: 0, Y: 0}, geom.Vec2{X: 0, Y: 1}, 0, edges, regions, noEdge)
	if !crossed || idx != 0 {
		t.Fatalf("RegionCrossing = (%v, idx=%d), want the forward edge 0", crossed, idx)
	}
	if approach != 4 {
		t.Errorf("approach = %v, want 4 (squared distance to (0,2))", approach)
	}
	if !pt.Approx(geom.Vec2{X: 0, Y: 2}, geom.Float2Equals) {
		t.Errorf("crossing point = %v, want (0,2)", pt)
	}
}

func TestLosingSide(t *testing.T) {
	enter := geom.Vec2{X: 0, Y: 0}
	exit := geom.Vec2{X: 0, Y: 1}

	left := geom.Vec2{X: -1, Y: 0.5}  // RaySide > 0
	right := geom.Vec2{X: 1, Y: 0.5}  // RaySide < 0
	onLine := geom.Vec2{X: 0, Y: 0.5} // RaySide == 0

	if !losingSide(enter, exit, left, left, sideLeft) {
		t.Errorf("left side should lose an edge strictly to the left of the chain")
	}
	if losingSide(enter, exit, right, right, sideLeft) {
		t.Errorf("left side should keep an edge strictly to the right of the chain")
	}
	if losingSide(enter, exit, onLine, onLine, sideLeft) {
		t.Errorf("an edge exactly on the chain should not be pruned")
	}

	if !losingSide(enter, exit, right, right, sideRight) {
		t.Errorf("right side should lose an edge strictly to the right of the chain")
	}
	if losingSide(enter, exit, left, left, sideRight) {
		t.Errorf("right side should keep an edge strictly to the left of the chain")
	}
}

func TestCutEdgeHairline(t *testing.T) {
	e := voronoi.Edge{Start: geom.Vec2{X: 0, Y: 0}, End: geom.Vec2{X: 5, Y: 5}, Left: 1, Right: 2}
	enter := geom.Vec2{X: 1, Y: 1}
	exit := geom.Vec2{X: 2, Y: 2}

	cut := cutEdge(e, 3, 3, enter, exit, sideLeft)
	if cut.Start != enter || cut.End != exit {
		t.Errorf("hairline cut = %+v, want Start=%v End=%v", cut, enter, exit)
	}
	if cut.Left != e.Left || cut.Right != e.Right {
		t.Errorf("hairline cut changed owners: %+v", cut)
	}
}

func TestCutEdgeKeepsWinningEndpoint(t *testing.T) {
	// Horizontal edge from (-10,1) to (10,1); the chain runs straight
	// down through (0,1)->(0,0), so (-10,1) is to the chain's right
	// (RaySide < 0) and (10,1) to its left (RaySide > 0).
	e := voronoi.Edge{Start: geom.Vec2{X: -10, Y: 1}, End: geom.Vec2{X: 10, Y: 1}, Left: 1, Right: 2}
	enter := geom.Vec2{X: 0, Y: 1}
	exit := geom.Vec2{X: 0, Y: 0}

	leftCut := cutEdge(e, noEdge, 0, enter, exit, sideLeft)
	if leftCut.Start != (geom.Vec2{X: -10, Y: 1}) {
		t.Errorf("left cut kept %v, want (-10,1) (smaller RaySide)", leftCut.Start)
	}

	rightCut := cutEdge(e, noEdge, 0, enter, exit, sideRight)
	if rightCut.Start != (geom.Vec2{X: 10, Y: 1}) {
		t.Errorf("right cut kept %v, want (10,1) (larger RaySide)", rightCut.Start)
	}
}
