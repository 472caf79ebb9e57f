package geometry

import "github.com/jakecoffman/cp"

// Polygon is a convex ring of vertices. The closing edge from the last
// vertex back to the first is implicit.
type Polygon []Point2D

// Rect returns the axis-aligned rectangle spanning the given corners.
func Rect(minX, minY, maxX, maxY float64) Polygon {
	return Polygon{
		{X: minX, Y: minY},
		{X: maxX, Y: minY},
		{X: maxX, Y: maxY},
		{X: minX, Y: maxY},
	}
}

// Bounds returns the smallest axis-aligned box containing every vertex.
func (p Polygon) Bounds() cp.BB {
	bb := emptyBounds
	for _, v := range p {
		bb = bb.Expand(v)
	}
	return bb
}

// BoundsOf returns the union of the bounds of every polygon.
func BoundsOf(polys []Polygon) cp.BB {
	bb := emptyBounds
	for _, p := range polys {
		bb = bb.Merge(p.Bounds())
	}
	return bb
}

// IsEmptyBounds reports whether bb encloses nothing.
func IsEmptyBounds(bb cp.BB) bool {
	return bb.L > bb.R || bb.B > bb.T
}
