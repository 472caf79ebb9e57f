package factory

import (
	"github.com/automoto/plasmaship/archetypes"
	"github.com/automoto/plasmaship/components"
	cfg "github.com/automoto/plasmaship/config"
	"github.com/automoto/plasmaship/shared/projectile"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateBullet spawns a projectile centred on (x, y). Its hitbox is not
// stored; the bullet system derives it from the position every tick.
func CreateBullet(ecs *ecs.ECS, kind projectile.Kind, dir projectile.Direction, x, y float64) *donburi.Entry {
	profile := cfg.Bullets[kind]

	b := archetypes.Bullet.Spawn(ecs)
	components.Transform.SetValue(b, components.TransformData{X: x, Y: y, ScaleX: 1, ScaleY: 1})
	components.Bullet.SetValue(b, components.BulletData{
		Kind:      kind,
		Direction: dir,
		Life:      profile.Lifespan,
		Scale:     projectile.ScaleCurve(profile),
	})
	return b
}
