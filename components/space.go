package components

import (
	"github.com/automoto/plasmaship/shared/collision"
	"github.com/yohamta/donburi"
)

// Space is the singleton holding the static collider index of the level
var Space = donburi.NewComponentType[collision.Index]()
