package voronoi

import "github.com/arl/vormerge/geom"

// Site is a seed point of the tessellation, identified by a stable
// integer id. Sites are immutable once created.
type Site struct {
	ID int       `yaml:"id"`
	Pt geom.Vec2 `yaml:"pt"`
}

// NewSite returns the site with the given id and coordinates.
func NewSite(id int, x, y float64) Site {
	return Site{ID: id, Pt: geom.Vec2{X: x, Y: y}}
}
