package systems

import (
	"github.com/automoto/plasmaship/components"
	cfg "github.com/automoto/plasmaship/config"
	"github.com/automoto/plasmaship/shared/projectile"
	"github.com/automoto/plasmaship/shared/tiles"
	"github.com/automoto/plasmaship/systems/factory"
	"github.com/automoto/plasmaship/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

type shot struct {
	kind projectile.Kind
	dir  projectile.Direction
	x, y float64
}

func UpdateCanons(ecs *ecs.ECS) {
	StepCanons(ecs, cfg.Sim.DT())
}

// StepCanons counts every canon down by dt and fires the ones that reach
// zero. Bullets leave from the centre of the canon tile.
func StepCanons(ecs *ecs.ECS, dt float64) {
	var shots []shot

	tags.Canon.Each(ecs.World, func(e *donburi.Entry) {
		c := components.Canon.Get(e)
		c.Cooldown -= dt
		if !projectile.Expired(c.Cooldown) {
			return
		}
		c.Cooldown = cfg.Canon.FireInterval[c.Kind]

		t := components.Transform.Get(e)
		shots = append(shots, shot{
			kind: c.Kind,
			dir:  c.Facing,
			x:    t.X + tiles.Size/2,
			y:    t.Y - tiles.Size/2,
		})
	})

	// Spawned after iterating so the query is not mutated mid-loop
	for _, s := range shots {
		factory.CreateBullet(ecs, s.kind, s.dir, s.x, s.y)
	}
}
