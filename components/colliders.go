package components

import (
	"github.com/automoto/plasmaship/shared/geometry"
	"github.com/yohamta/donburi"
)

// Colliders is the fixed hitbox of walls, doors and canons. Bullets never
// carry one; theirs is derived from the position every tick.
var Colliders = donburi.NewComponentType[geometry.Colliders]()
