// Package voronoi holds the data model the merge operates on: sites,
// edges, the per-site region index, and the convex hull of the site
// set. It carries no construction algorithm of its own — diagrams
// arrive either from an external per-half builder or from a
// successful merge.
package voronoi

import (
	"fmt"
	"math"

	"github.com/arl/vormerge/geom"
	"github.com/arl/vormerge/internal/assert"
)

// Diagram is a coherent bundle of sites, edges, a region index
// (site id -> bordering edge indices) and a counter-clockwise convex
// hull, satisfying the invariants documented on its fields.
type Diagram struct {
	Sites []Site `yaml:"sites"`
	Edges []Edge `yaml:"edges"`
	Hull  []Site `yaml:"hull"`

	// Regions maps a site id to the indices, into Edges, of the edges
	// bordering that site. Every edge is referenced from exactly two
	// regions: its Left and Right site ids.
	Regions map[int][]int `yaml:"regions"`

	// SiteIndex maps a site id to its position in Sites. It is a
	// bijection onto 0..len(Sites).
	SiteIndex map[int]int `yaml:"-"`
}

// NewDiagram builds a Diagram from a flat site list, edge list and
// hull, deriving SiteIndex and Regions. It panics (via assert, so
// only under the 'debug' build tag) if an edge references a site id
// absent from sites.
func NewDiagram(sites []Site, edges []Edge, hull []Site) *Diagram {
	d := &Diagram{
		Sites:     sites,
		Edges:     make([]Edge, 0, len(edges)),
		Hull:      hull,
		Regions:   make(map[int][]int, len(sites)),
		SiteIndex: make(map[int]int, len(sites)),
	}
	for i, s := range sites {
		d.SiteIndex[s.ID] = i
	}
	for _, e := range edges {
		d.AddEdge(e)
	}
	return d
}

// AddEdge appends e to d.Edges and registers its index in both the
// Left and Right regions.
func (d *Diagram) AddEdge(e Edge) int {
	_, leftOK := d.SiteIndex[e.Left]
	_, rightOK := d.SiteIndex[e.Right]
	assert.True(leftOK && rightOK, "AddEdge: edge %+v references an unknown site", e)

	idx := len(d.Edges)
	d.Edges = append(d.Edges, e)
	d.Regions[e.Left] = append(d.Regions[e.Left], idx)
	d.Regions[e.Right] = append(d.Regions[e.Right], idx)
	return idx
}

// EdgesOf returns the indices, into Edges, of the edges bordering
// siteID.
func (d *Diagram) EdgesOf(siteID int) []int {
	return d.Regions[siteID]
}

// SiteByID returns the site with the given id and whether it exists.
func (d *Diagram) SiteByID(id int) (Site, bool) {
	i, ok := d.SiteIndex[id]
	if !ok {
		return Site{}, false
	}
	return d.Sites[i], true
}

// Validate checks the invariants documented on Diagram and returns the
// first violation found, or nil if the diagram is consistent. Unlike
// the assert package's build-tag-gated checks used during
// construction, Validate always runs: it is the check the CLI's
// 'validate' subcommand and the test suite's property checks rely on.
func (d *Diagram) Validate() error {
	if len(d.SiteIndex) != len(d.Sites) {
		return fmt.Errorf("voronoi: SiteIndex has %d entries for %d sites", len(d.SiteIndex), len(d.Sites))
	}
	for i, s := range d.Sites {
		pos, ok := d.SiteIndex[s.ID]
		if !ok {
			return fmt.Errorf("voronoi: site id %d missing from SiteIndex", s.ID)
		}
		if pos != i {
			return fmt.Errorf("voronoi: SiteIndex[%d] = %d, want %d", s.ID, pos, i)
		}
	}

	for i, e := range d.Edges {
		if e.Left == e.Right {
			return fmt.Errorf("voronoi: edge %d has identical left/right site %d", i, e.Left)
		}
		if _, ok := d.SiteIndex[e.Left]; !ok {
			return fmt.Errorf("voronoi: edge %d references unknown left site %d", i, e.Left)
		}
		if _, ok := d.SiteIndex[e.Right]; !ok {
			return fmt.Errorf("voronoi: edge %d references unknown right site %d", i, e.Right)
		}
		if !isFinite(e.Start) || !isFinite(e.End) {
			return fmt.Errorf("voronoi: edge %d has a non-finite endpoint (%v, %v)", i, e.Start, e.End)
		}
		if !containsIndex(d.Regions[e.Left], i) {
			return fmt.Errorf("voronoi: edge %d not present in region of its left site %d", i, e.Left)
		}
		if !containsIndex(d.Regions[e.Right], i) {
			return fmt.Errorf("voronoi: edge %d not present in region of its right site %d", i, e.Right)
		}
	}

	for siteID, idxs := range d.Regions {
		for _, idx := range idxs {
			if idx < 0 || idx >= len(d.Edges) {
				return fmt.Errorf("voronoi: region of site %d references out-of-range edge %d", siteID, idx)
			}
			if !d.Edges[idx].Borders(siteID) {
				return fmt.Errorf("voronoi: region of site %d references edge %d which does not border it", siteID, idx)
			}
		}
	}

	return nil
}

func containsIndex(s []int, v int) bool {
	for _, x := range s {
		if x == v {
			return true
		}
	}
	return false
}

func isFinite(p geom.Vec2) bool {
	return !isNaNOrInf(p.X) && !isNaNOrInf(p.Y)
}

func isNaNOrInf(f float64) bool {
	return math.IsNaN(f) || math.IsInf(f, 0)
}
