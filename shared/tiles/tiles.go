// Package tiles maps level tile codes to static hitboxes and spawner specs.
// Codes not listed here are decorative and produce nothing.
package tiles

import (
	"github.com/automoto/plasmaship/shared/doors"
	"github.com/automoto/plasmaship/shared/geometry"
	"github.com/automoto/plasmaship/shared/projectile"
)

// Size is the edge length of one tile in world units.
const Size = 32.0

// Wall codes.
const (
	TopLeftWall     = 30
	TopWall         = 31
	TopRightWall    = 32
	LeftWall        = 40
	RightWall       = 42
	BottomLeftWall  = 50
	BottomWall      = 51
	BottomRightWall = 52
)

// Edge thickness and the offset that puts a bottom or right edge flush with
// the far side of the tile.
const (
	edge      = 8.0
	farOffset = Size - edge
)

func horizontal(x, y float64) geometry.Collider {
	return geometry.NewCollider(geometry.Point2D{X: x, Y: y}, Size, -edge)
}

func vertical(x, y float64) geometry.Collider {
	return geometry.NewCollider(geometry.Point2D{X: x, Y: y}, edge, -Size)
}

// ToColliders returns the static hitbox for a wall tile whose anchor (top-left
// corner) sits at (x, y). Corner walls list their horizontal edge first.
func ToColliders(code int, x, y float64) (geometry.Colliders, bool) {
	var members []geometry.Collider
	switch code {
	case TopLeftWall:
		members = []geometry.Collider{horizontal(x, y), vertical(x, y)}
	case TopWall:
		members = []geometry.Collider{horizontal(x, y)}
	case TopRightWall:
		members = []geometry.Collider{horizontal(x, y), vertical(x+farOffset, y)}
	case LeftWall:
		members = []geometry.Collider{vertical(x, y)}
	case RightWall:
		members = []geometry.Collider{vertical(x+farOffset, y)}
	case BottomLeftWall:
		members = []geometry.Collider{horizontal(x, y-farOffset), vertical(x, y)}
	case BottomWall:
		members = []geometry.Collider{horizontal(x, y-farOffset)}
	case BottomRightWall:
		members = []geometry.Collider{horizontal(x, y-farOffset), vertical(x+farOffset, y)}
	default:
		return geometry.Colliders{}, false
	}
	return geometry.FromSlice(members), true
}

// IsWall reports whether code is one of the eight wall orientations.
func IsWall(code int) bool {
	_, ok := ToColliders(code, 0, 0)
	return ok
}

// DoorColliders returns the hitbox of a plasma door tile. The band runs
// through the middle of the tile and is solid whatever phase is displayed.
func DoorColliders(code int, x, y float64) (geometry.Colliders, bool) {
	const mid = (Size - edge) / 2
	switch doors.OrientationOf(code) {
	case doors.Horizontal:
		return geometry.FromSlice([]geometry.Collider{horizontal(x, y-mid)}), true
	case doors.Vertical:
		return geometry.FromSlice([]geometry.Collider{vertical(x+mid, y)}), true
	default:
		return geometry.Colliders{}, false
	}
}

// CanonSpec describes a spawner tile.
type CanonSpec struct {
	Kind   projectile.Kind
	Facing projectile.Direction
}

var canonKinds = map[int]projectile.Kind{
	6: projectile.Bullet,
	7: projectile.Plasma,
	8: projectile.Air,
}

var canonFacings = [...]projectile.Direction{
	projectile.Left,
	projectile.Right,
	projectile.Top,
	projectile.Bottom,
}

// ToCanon decodes a spawner tile. The tens digit picks the projectile kind
// (6 bullet, 7 plasma, 8 air) and the units digit the facing (0 left,
// 1 right, 2 top, 3 bottom).
func ToCanon(code int) (CanonSpec, bool) {
	if code < 0 {
		return CanonSpec{}, false
	}
	kind, ok := canonKinds[code/10]
	facing := code % 10
	if !ok || facing >= len(canonFacings) {
		return CanonSpec{}, false
	}
	return CanonSpec{Kind: kind, Facing: canonFacings[facing]}, true
}

// CanonColliders is the hitbox of a spawner tile: the whole tile.
func CanonColliders(x, y float64) geometry.Colliders {
	return geometry.FromSlice([]geometry.Collider{
		geometry.NewCollider(geometry.Point2D{X: x, Y: y}, Size, -Size),
	})
}
