package factory

import (
	"github.com/automoto/plasmaship/archetypes"
	"github.com/automoto/plasmaship/components"
	cfg "github.com/automoto/plasmaship/config"
	"github.com/automoto/plasmaship/shared/tiles"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateCanon spawns a projectile spawner for a canon tile code. Canons are
// not part of the static environment: their hitbox is never registered in
// the space and bullets fly out of them freely.
func CreateCanon(ecs *ecs.ECS, code int, x, y float64) *donburi.Entry {
	def, ok := tiles.ToCanon(code)
	if !ok {
		return nil
	}

	canon := archetypes.Canon.Spawn(ecs)
	components.Transform.SetValue(canon, components.TransformData{X: x, Y: y, ScaleX: 1, ScaleY: 1})
	components.Colliders.SetValue(canon, tiles.CanonColliders(x, y))
	components.Canon.SetValue(canon, components.CanonData{
		Kind:     def.Kind,
		Facing:   def.Facing,
		Cooldown: cfg.Canon.FirstShot,
	})
	return canon
}
