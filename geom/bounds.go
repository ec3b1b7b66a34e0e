package geom

import (
	"fmt"
	"math"
)

// Bounds is an axis-aligned bounding box in the plane.
type Bounds struct {
	MinX, MaxX float64
	MinY, MaxY float64
}

// NewBounds initializes an empty bounding box. It becomes valid after
// the first call to Extend.
func NewBounds() Bounds {
	return Bounds{
		MinX: math.Inf(1),
		MinY: math.Inf(1),
		MaxX: math.Inf(-1),
		MaxY: math.Inf(-1),
	}
}

func (bb Bounds) String() string {
	return fmt.Sprintf("x[%f, %f], y[%f, %f]", bb.MinX, bb.MaxX, bb.MinY, bb.MaxY)
}

// Extend grows bb, if necessary, so that it contains p.
func (bb *Bounds) Extend(p Vec2) {
	bb.MinX = math.Min(bb.MinX, p.X)
	bb.MaxX = math.Max(bb.MaxX, p.X)
	bb.MinY = math.Min(bb.MinY, p.Y)
	bb.MaxY = math.Max(bb.MaxY, p.Y)
}

// MaxExtent returns the larger of bb's width and height. It is the
// "max_coordinate_extent" referred to by the ray-endpoint policy
// (geom.BuildRayEnd): unbounded edges are extrapolated by a multiple
// of this value so the result lands comfortably outside the hull of
// all sites.
func (bb Bounds) MaxExtent() float64 {
	w := bb.MaxX - bb.MinX
	h := bb.MaxY - bb.MinY
	if w > h {
		return w
	}
	return h
}

// BoundsOf returns the bounding box of pts.
func BoundsOf(pts []Vec2) Bounds {
	bb := NewBounds()
	for _, p := range pts {
		bb.Extend(p)
	}
	return bb
}
