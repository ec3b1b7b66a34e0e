// Package sitegrid buckets sites into a spatial hash grid, the same
// shape as a bucketed proximity grid, so that nearest-site queries
// over large site sets don't require scanning every site.
package sitegrid

import (
	"math"

	"github.com/arl/vormerge/geom"
	"github.com/arl/vormerge/voronoi"
)

// Grid hashes planar points into square cells of side cellSize, keyed
// by integer cell coordinates.
type Grid struct {
	cellSize    float64
	invCellSize float64
	buckets     map[[2]int32][]voronoi.Site
}

// New returns an empty Grid. cellSize should be on the order of the
// typical spacing between sites; too small wastes buckets, too large
// degrades back to a linear scan.
func New(cellSize float64) *Grid {
	if cellSize <= 0 {
		panic("sitegrid: cell size must be positive")
	}
	return &Grid{
		cellSize:    cellSize,
		invCellSize: 1 / cellSize,
		buckets:     make(map[[2]int32][]voronoi.Site),
	}
}

func (g *Grid) cell(p geom.Vec2) [2]int32 {
	return [2]int32{
		int32(math.Floor(p.X * g.invCellSize)),
		int32(math.Floor(p.Y * g.invCellSize)),
	}
}

// Add inserts s into the bucket for its coordinates.
func (g *Grid) Add(s voronoi.Site) {
	k := g.cell(s.Pt)
	g.buckets[k] = append(g.buckets[k], s)
}

// AddAll inserts every site in sites.
func (g *Grid) AddAll(sites []voronoi.Site) {
	for _, s := range sites {
		g.Add(s)
	}
}

// QueryBox returns every inserted site whose own cell overlaps the
// axis-aligned box [min,max], by scanning exactly the cells the box
// spans.
func (g *Grid) QueryBox(min, max geom.Vec2) []voronoi.Site {
	cmin := g.cell(min)
	cmax := g.cell(max)

	var out []voronoi.Site
	for x := cmin[0]; x <= cmax[0]; x++ {
		for y := cmin[1]; y <= cmax[1]; y++ {
			out = append(out, g.buckets[[2]int32{x, y}]...)
		}
	}
	return out
}

// Nearest returns the site closest to p. It queries a box of
// half-width radius around p and, if the closest candidate found
// lies within that half-width, returns it immediately: no site
// outside the box could possibly be closer. Otherwise it doubles the
// radius and retries. On an empty grid it returns false at once.
func (g *Grid) Nearest(p geom.Vec2, radius float64) (voronoi.Site, bool) {
	if len(g.buckets) == 0 {
		return voronoi.Site{}, false
	}
	if radius <= 0 {
		radius = g.cellSize
	}
	for i := 0; i < 64; i++ {
		candidates := g.QueryBox(
			geom.Vec2{X: p.X - radius, Y: p.Y - radius},
			geom.Vec2{X: p.X + radius, Y: p.Y + radius},
		)
		if best, dist, found := nearestOf(p, candidates); found && dist <= radius {
			return best, true
		}
		radius *= 2
	}
	return voronoi.Site{}, false
}

func nearestOf(p geom.Vec2, sites []voronoi.Site) (best voronoi.Site, dist float64, found bool) {
	dist = math.Inf(1)
	for _, s := range sites {
		if d := p.Dist(s.Pt); d < dist {
			dist, best, found = d, s, true
		}
	}
	return best, dist, found
}
