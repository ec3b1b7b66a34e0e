// Package merge implements the divide-and-conquer merge step of a
// planar Voronoi diagram: given two diagrams over disjoint, separated
// point sets, it walks the dividing chain between them and produces
// the diagram of the union.
package merge

import (
	"math"

	"github.com/arl/vormerge/geom"
	"github.com/arl/vormerge/voronoi"
)

// sideState tracks, for one side of the dividing chain, the site whose
// region the chain currently occupies and where the chain entered it.
// enterEdge is noEdge before the chain has entered any real region on
// this side (the initial cut, where enterPoint is the incoming ray's
// origin rather than a true edge crossing).
type sideState struct {
	site       voronoi.Site
	enterPoint geom.Vec2
	enterEdge  int
}

// merger holds the scratch state of a single Merge call: working
// copies of both input edge sets (mutated in place as edges are cut),
// the set of edge indices pruned from each side, and the chain edges
// emitted so far. It is discarded after run returns.
type merger struct {
	ctx *Context
	cfg Config

	left, right *voronoi.Diagram

	leftEdges, rightEdges     []voronoi.Edge
	leftRemoved, rightRemoved map[int]bool

	chain []voronoi.Edge

	extent float64
}

// Merge computes the Voronoi diagram of the union of left's and
// right's site sets. It assumes left lies wholly left of right (every
// left site's X is at most every right site's X) and that both inputs
// satisfy voronoi.Diagram's invariants; violating either precondition
// is undefined behavior, surfaced (if at all) as an Inconsistency
// error rather than checked directly.
//
// ctx may be nil, in which case logging and timers are both disabled.
// Merge never retries internally: on error the returned diagram is
// nil and the caller must treat the inputs as unusable.
func Merge(ctx *Context, cfg Config, left, right *voronoi.Diagram) (*voronoi.Diagram, error) {
	if ctx == nil {
		ctx = defaultContext()
	}

	allPts := make([]geom.Vec2, 0, len(left.Sites)+len(right.Sites))
	for _, s := range left.Sites {
		allPts = append(allPts, s.Pt)
	}
	for _, s := range right.Sites {
		allPts = append(allPts, s.Pt)
	}

	m := &merger{
		ctx:          ctx,
		cfg:          cfg,
		left:         left,
		right:        right,
		leftEdges:    append([]voronoi.Edge(nil), left.Edges...),
		rightEdges:   append([]voronoi.Edge(nil), right.Edges...),
		leftRemoved:  make(map[int]bool),
		rightRemoved: make(map[int]bool),
		extent:       geom.BoundsOf(allPts).MaxExtent() * cfg.RayExtent,
	}
	return m.run()
}

func (m *merger) run() (*voronoi.Diagram, error) {
	ctx := m.ctx

	mergedHull, lLeft, lRight, qLeft, qRight := voronoi.MergeHulls(m.left.Hull, m.right.Hull)
	ctx.Logf(LogProgress, "merge: hull tangents upper=(%d,%d) lower=(%d,%d)", lLeft.ID, lRight.ID, qLeft.ID, qRight.ID)

	// A side whose extremal site borders no edges at all has exactly
	// one site total (every site in a multi-site diagram borders at
	// least one edge). When that holds on both sides there is no
	// existing geometry for the chain to cross: it is a single
	// bisector from far endpoint to far endpoint.
	if len(m.left.Regions[lLeft.ID]) == 0 && len(m.right.Regions[lRight.ID]) == 0 {
		m.singleEdgeChain(lLeft, lRight)
		return m.assemble(mergedHull), nil
	}

	ctx.StartTimer(TimerIncomingRay)
	currentPoint, leftState, rightState, err := m.incomingRay(lLeft, lRight)
	ctx.StopTimer(TimerIncomingRay)
	if err != nil {
		return nil, err
	}

	ctx.StartTimer(TimerChainWalk)
	currentPoint, err = m.walk(currentPoint, &leftState, &rightState, qLeft, qRight)
	ctx.StopTimer(TimerChainWalk)
	if err != nil {
		return nil, err
	}

	ctx.StartTimer(TimerOutgoingRay)
	m.outgoingRay(currentPoint, leftState, rightState)
	ctx.StopTimer(TimerOutgoingRay)

	ctx.StartTimer(TimerAssemble)
	out := m.assemble(mergedHull)
	ctx.StopTimer(TimerAssemble)

	return out, nil
}

// singleEdgeChain handles the case where both extremal sites border no
// edges: the whole chain collapses to one bisector segment between the
// two far endpoints, with no cutting or pruning to do.
func (m *merger) singleEdgeChain(l, r voronoi.Site) {
	mid := l.Pt.Mid(r.Pt)
	upEnd := geom.BuildRayEnd(mid, r.Pt, l.Pt, m.extent)
	downEnd := geom.BuildRayEnd(mid, l.Pt, r.Pt, m.extent)
	m.ctx.Logf(LogProgress, "merge: no existing geometry, single bisector from %v to %v", upEnd, downEnd)
	m.chain = append(m.chain, voronoi.Edge{Start: upEnd, End: downEnd, Left: l.ID, Right: r.ID})
}

// incomingRay starts the dividing chain at infinity, shot upward
// through the upper tangent's midpoint, and penetrates whichever
// region it reaches first.
func (m *merger) incomingRay(l, r voronoi.Site) (currentPoint geom.Vec2, leftState, rightState sideState, err error) {
	mid := l.Pt.Mid(r.Pt)
	rayDir := geom.Perp(r.Pt.Sub(l.Pt))

	distL, ptL, idxL, edgeL := RayRegionCrossing(mid, rayDir, l.ID, m.leftEdges, m.left.Regions)
	distR, ptR, idxR, edgeR := RayRegionCrossing(mid, rayDir, r.ID, m.rightEdges, m.right.Regions)

	if math.IsInf(distL, 1) && math.IsInf(distR, 1) {
		return geom.Vec2{}, sideState{}, sideState{}, errInconsistency("no crossing")
	}

	leftState = sideState{site: l, enterPoint: mid, enterEdge: noEdge}
	rightState = sideState{site: r, enterPoint: mid, enterEdge: noEdge}

	// A tie (both regions crossed at the same point) is a triple point
	// straddling the incoming ray itself: both sides are entered and
	// exited in the same step, same as a main-loop triple point.
	triple := !math.IsInf(distL, 1) && !math.IsInf(distR, 1) && ptL.Approx(ptR, m.cfg.Epsilon)

	switch {
	case triple:
		currentPoint = ptL
		m.ctx.Logf(LogProgress, "merge: incoming ray is a triple point at %v", currentPoint)
	case distL <= distR:
		currentPoint = ptL
	default:
		currentPoint = ptR
	}

	endPoint := geom.BuildRayEnd(currentPoint, r.Pt, l.Pt, m.extent)
	m.chain = append(m.chain, voronoi.Edge{Start: currentPoint, End: endPoint, Left: l.ID, Right: r.ID})

	switch {
	case triple:
		m.handleExit(sideLeft, &leftState, idxL, edgeL, currentPoint)
		m.handleExit(sideRight, &rightState, idxR, edgeR, currentPoint)
	case distL <= distR:
		m.handleExit(sideLeft, &leftState, idxL, edgeL, currentPoint)
	default:
		m.handleExit(sideRight, &rightState, idxR, edgeR, currentPoint)
	}

	return currentPoint, leftState, rightState, nil
}

// walk runs the main chain loop, advancing leftState and rightState
// until both sides reach the lower tangent.
func (m *merger) walk(currentPoint geom.Vec2, leftState, rightState *sideState, qLeft, qRight voronoi.Site) (geom.Vec2, error) {
	for leftState.site.ID != qLeft.ID || rightState.site.ID != qRight.ID {
		perp := geom.Perp(rightState.site.Pt.Sub(leftState.site.Pt))

		lCrossed, lApproach, lPt, lIdx, lEdge := RegionCrossing(currentPoint, perp, leftState.site.ID, m.leftEdges, m.left.Regions, leftState.enterEdge)
		rCrossed, rApproach, rPt, rIdx, rEdge := RegionCrossing(currentPoint, perp, rightState.site.ID, m.rightEdges, m.right.Regions, rightState.enterEdge)

		if !lCrossed && !rCrossed {
			return geom.Vec2{}, errInconsistency("no crossing")
		}

		if lCrossed && rCrossed && lPt.Approx(rPt, m.cfg.Epsilon) {
			m.ctx.Logf(LogProgress, "merge: triple point at %v", lPt)
			m.chain = append(m.chain, voronoi.Edge{Start: currentPoint, End: lPt, Left: leftState.site.ID, Right: rightState.site.ID})
			currentPoint = lPt
			m.handleExit(sideLeft, leftState, lIdx, lEdge, currentPoint)
			m.handleExit(sideRight, rightState, rIdx, rEdge, currentPoint)
			continue
		}

		useLeft := lCrossed && (!rCrossed || lApproach <= rApproach)
		if useLeft {
			m.chain = append(m.chain, voronoi.Edge{Start: currentPoint, End: lPt, Left: leftState.site.ID, Right: rightState.site.ID})
			currentPoint = lPt
			m.handleExit(sideLeft, leftState, lIdx, lEdge, currentPoint)
		} else {
			m.chain = append(m.chain, voronoi.Edge{Start: currentPoint, End: rPt, Left: leftState.site.ID, Right: rightState.site.ID})
			currentPoint = rPt
			m.handleExit(sideRight, rightState, rIdx, rEdge, currentPoint)
		}
	}
	return currentPoint, nil
}

// outgoingRay closes the chain: once both sides reach the lower
// tangent, it is extrapolated downward to a far endpoint.
func (m *merger) outgoingRay(currentPoint geom.Vec2, leftState, rightState sideState) {
	l, r := leftState.site, rightState.site
	endPoint := geom.BuildRayEnd(l.Pt.Mid(r.Pt), l.Pt, r.Pt, m.extent)
	m.ctx.Logf(LogProgress, "merge: outgoing ray from %v to %v", currentPoint, endPoint)
	m.chain = append(m.chain, voronoi.Edge{Start: currentPoint, End: endPoint, Left: l.ID, Right: r.ID})
}

// handleExit is the region exit/enter handling shared by the initial
// cut and every subsequent chain crossing: it cuts the crossed edge,
// prunes the rest of the exited region's losing-side edges, and
// advances st to the neighboring site.
func (m *merger) handleExit(s side, st *sideState, exitIdx int, exitEdge voronoi.Edge, exitPoint geom.Vec2) {
	edges, regions, removed := m.sideData(s)

	cut := cutEdge(exitEdge, st.enterEdge, exitIdx, st.enterPoint, exitPoint, s)
	edges[exitIdx] = cut

	for _, idx := range regions[st.site.ID] {
		if idx == exitIdx || idx == st.enterEdge {
			continue
		}
		e := edges[idx]
		if losingSide(st.enterPoint, exitPoint, e.Start, e.End, s) {
			removed[idx] = true
		}
	}

	newSiteID := exitEdge.Other(st.site.ID)
	newSite, _ := m.siteByID(s, newSiteID)

	st.site = newSite
	st.enterPoint = exitPoint
	st.enterEdge = exitIdx
}

func (m *merger) sideData(s side) (edges []voronoi.Edge, regions map[int][]int, removed map[int]bool) {
	if s == sideLeft {
		return m.leftEdges, m.left.Regions, m.leftRemoved
	}
	return m.rightEdges, m.right.Regions, m.rightRemoved
}

func (m *merger) siteByID(s side, id int) (voronoi.Site, bool) {
	if s == sideLeft {
		return m.left.SiteByID(id)
	}
	return m.right.SiteByID(id)
}

// assemble implements final assembly: compact both sides' edge arrays
// to drop pruned edges, then concatenate left, chain and right edges
// and the merged site list into a fresh Diagram.
func (m *merger) assemble(mergedHull []voronoi.Site) *voronoi.Diagram {
	finalLeft := compact(m.leftEdges, m.leftRemoved)
	finalRight := compact(m.rightEdges, m.rightRemoved)

	edges := make([]voronoi.Edge, 0, len(finalLeft)+len(m.chain)+len(finalRight))
	edges = append(edges, finalLeft...)
	edges = append(edges, m.chain...)
	edges = append(edges, finalRight...)

	sites := make([]voronoi.Site, 0, len(m.left.Sites)+len(m.right.Sites))
	sites = append(sites, m.left.Sites...)
	sites = append(sites, m.right.Sites...)

	return voronoi.NewDiagram(sites, edges, mergedHull)
}

func compact(edges []voronoi.Edge, removed map[int]bool) []voronoi.Edge {
	out := make([]voronoi.Edge, 0, len(edges))
	for i, e := range edges {
		if removed[i] {
			continue
		}
		out = append(out, e)
	}
	return out
}
