package components

import (
	"github.com/automoto/plasmaship/shared/projectile"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

type BulletData struct {
	Kind      projectile.Kind
	Direction projectile.Direction
	Life      float64 // seconds left
	// Scale is only set for area kinds
	Scale *gween.Tween
}

var Bullet = donburi.NewComponentType[BulletData]()
