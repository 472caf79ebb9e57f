package factory

import (
	"github.com/automoto/plasmaship/archetypes"
	"github.com/automoto/plasmaship/components"
	cfg "github.com/automoto/plasmaship/config"
	"github.com/automoto/plasmaship/shared/collision"
	"github.com/automoto/plasmaship/shared/geometry"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSpace spawns the static collider index for a level of the given
// world size.
func CreateSpace(ecs *ecs.ECS, width, height float64) *donburi.Entry {
	space := archetypes.Space.Spawn(ecs)
	components.Space.Set(space, collision.NewIndex(width, height, cfg.Collision.IndexCellSize))
	return space
}

// setStatic stores the hitbox on the entry and registers it in the index
// when one exists.
func setStatic(ecs *ecs.ECS, e *donburi.Entry, cs geometry.Colliders) {
	components.Colliders.SetValue(e, cs)

	spaceEntry, ok := components.Space.First(ecs.World)
	if !ok || !e.HasComponent(components.Object) {
		return
	}
	owned := cs
	obj := components.Space.Get(spaceEntry).Insert(&owned)
	components.Object.SetValue(e, components.ObjectData{Object: obj})
}
