package archetypes

import (
	"github.com/automoto/plasmaship/components"
	cfg "github.com/automoto/plasmaship/config"
	"github.com/automoto/plasmaship/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Ship = newArchetype(
		tags.Ship,
		components.Transform,
	)
	Space = newArchetype(
		components.Space,
	)
	Wall = newArchetype(
		tags.Wall,
		components.Transform,
		components.Colliders,
		components.Object,
	)
	Door = newArchetype(
		tags.Door,
		components.Door,
		components.Transform,
		components.Colliders,
		components.Object,
	)
	Canon = newArchetype(
		tags.Canon,
		components.Canon,
		components.Transform,
		components.Colliders,
	)
	Bullet = newArchetype(
		tags.Bullet,
		components.Bullet,
		components.Transform,
	)
	Level = newArchetype(
		components.Level,
	)
	Resource = newArchetype(
		components.Resource,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
