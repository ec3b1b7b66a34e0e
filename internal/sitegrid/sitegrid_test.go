package sitegrid

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arl/vormerge/geom"
	"github.com/arl/vormerge/voronoi"
)

func TestGridAddAndQueryBox(t *testing.T) {
	g := New(1)
	assert.Empty(t, g.QueryBox(geom.Vec2{X: 0, Y: 0}, geom.Vec2{X: 2, Y: 2}), "grid should be empty")

	g.Add(voronoi.NewSite(0, 0.5, 0.5))
	assert.Len(t, g.QueryBox(geom.Vec2{X: 0, Y: 0}, geom.Vec2{X: 2, Y: 2}), 1, "should have 1 site in the box")

	g.AddAll([]voronoi.Site{voronoi.NewSite(1, 1.5, 1.5), voronoi.NewSite(2, 10, 10)})
	got := g.QueryBox(geom.Vec2{X: 0, Y: 0}, geom.Vec2{X: 2, Y: 2})
	assert.Len(t, got, 2, "far-away site 2 should not be in the box")
}

func TestGridNearest(t *testing.T) {
	g := New(1)
	g.AddAll([]voronoi.Site{
		voronoi.NewSite(0, 0, 0),
		voronoi.NewSite(1, 5, 5),
		voronoi.NewSite(2, 5.1, 5.1),
	})

	nearest, ok := g.Nearest(geom.Vec2{X: 5, Y: 5}, 0)
	assert.True(t, ok, "Nearest should find a candidate")
	assert.Contains(t, []int{1, 2}, nearest.ID, "nearest site to (5,5) should be 1 or 2")
}

func TestGridNearestEmpty(t *testing.T) {
	g := New(1)
	_, ok := g.Nearest(geom.Vec2{X: 0, Y: 0}, 0)
	assert.False(t, ok, "Nearest on an empty grid should find nothing")
}
