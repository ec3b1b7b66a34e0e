package voronoi

import "github.com/arl/vormerge/geom"

// Edge is an undirected Voronoi edge between two sites, bounded at
// both ends (unbounded rays are extrapolated to a far endpoint by
// geom.BuildRayEnd before an Edge is ever constructed). Left and
// Right name the two sites the edge separates; their relative order
// is stable but carries no further geometric meaning.
type Edge struct {
	Start geom.Vec2 `yaml:"start"`
	End   geom.Vec2 `yaml:"end"`
	Left  int       `yaml:"left"`
	Right int       `yaml:"right"`
}

// NullEdge is the sentinel "no edge" value, used to mark "no
// previously entered edge" while walking a region's border.
var NullEdge = Edge{Left: -1, Right: -1}

// IsNull reports whether e is the sentinel NullEdge.
func (e Edge) IsNull() bool {
	return e.Left == -1 && e.Right == -1
}

// Other returns the id of the site on the opposite side of e from
// siteID.
func (e Edge) Other(siteID int) int {
	if e.Left == siteID {
		return e.Right
	}
	return e.Left
}

// Borders reports whether e borders the given site id.
func (e Edge) Borders(siteID int) bool {
	return e.Left == siteID || e.Right == siteID
}
