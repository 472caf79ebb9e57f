package components

import (
	"github.com/automoto/plasmaship/shared/projectile"
	"github.com/yohamta/donburi"
)

type CanonData struct {
	Kind     projectile.Kind
	Facing   projectile.Direction
	Cooldown float64 // seconds until the next shot
}

var Canon = donburi.NewComponentType[CanonData]()
