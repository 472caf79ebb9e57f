// Package geometry models composite rectangle hitboxes.
// It has no dependencies on ebitengine, donburi or resolv; pure data only.
package geometry

import (
	"math"

	"github.com/jakecoffman/cp"
)

// Point2D is a world-space coordinate. Y grows upward.
type Point2D = cp.Vector

// emptyBounds never intersects anything and is the identity for Merge.
var emptyBounds = cp.BB{
	L: math.Inf(1),
	B: math.Inf(1),
	R: math.Inf(-1),
	T: math.Inf(-1),
}

// Collider is one axis-aligned rectangle. The sign of each extent decides
// which way it grows from the anchor: a negative height grows downward.
type Collider struct {
	anchor Point2D
	width  float64
	height float64
}

// NewCollider builds a rectangle from its anchor and signed extents.
func NewCollider(anchor Point2D, width, height float64) Collider {
	return Collider{anchor: anchor, width: width, height: height}
}

func (c Collider) Anchor() Point2D { return c.anchor }
func (c Collider) Width() float64  { return c.width }
func (c Collider) Height() float64 { return c.height }

// Polygon returns the rectangle as a closed ring starting at the anchor.
func (c Collider) Polygon() Polygon {
	a := c.anchor
	return Polygon{
		a,
		{X: a.X + c.width, Y: a.Y},
		{X: a.X + c.width, Y: a.Y + c.height},
		{X: a.X, Y: a.Y + c.height},
	}
}

// Bounds returns the rectangle normalised to positive extents.
func (c Collider) Bounds() cp.BB {
	l, r := ordered(c.anchor.X, c.anchor.X+c.width)
	b, t := ordered(c.anchor.Y, c.anchor.Y+c.height)
	return cp.BB{L: l, B: b, R: r, T: t}
}

// Colliders is the ordered set of rectangles making up one logical hitbox,
// e.g. the two bars of an L-shaped corner wall.
type Colliders struct {
	members  []Collider
	polygons []Polygon
}

// FromSlice builds a composite hitbox. A hitbox must have at least one
// member; an empty slice is a programming error.
func FromSlice(members []Collider) Colliders {
	if len(members) == 0 {
		panic("geometry: Colliders needs at least one member")
	}
	owned := make([]Collider, len(members))
	copy(owned, members)
	return Colliders{members: owned}
}

// Len returns the number of member rectangles.
func (cs *Colliders) Len() int { return len(cs.members) }

// Members returns the member rectangles in construction order.
func (cs *Colliders) Members() []Collider { return cs.members }

// Polygons returns the member rectangles as polygons. The slice is built on
// first use and shared afterwards; callers must not modify it.
func (cs *Colliders) Polygons() []Polygon {
	if cs.polygons == nil && len(cs.members) > 0 {
		cs.polygons = make([]Polygon, len(cs.members))
		for i, m := range cs.members {
			cs.polygons[i] = m.Polygon()
		}
	}
	return cs.polygons
}

// ToOwnedPolygons returns a fresh copy of the member polygons that the
// caller is free to keep or modify.
func (cs *Colliders) ToOwnedPolygons() []Polygon {
	out := make([]Polygon, 0, len(cs.members))
	for _, m := range cs.members {
		out = append(out, m.Polygon())
	}
	return out
}

// Bounds returns the union of all member bounds.
func (cs *Colliders) Bounds() cp.BB {
	bb := emptyBounds
	for _, m := range cs.members {
		bb = bb.Merge(m.Bounds())
	}
	return bb
}

func ordered(a, b float64) (float64, float64) {
	if a > b {
		return b, a
	}
	return a, b
}
