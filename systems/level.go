package systems

import (
	"github.com/automoto/plasmaship/components"
	cfg "github.com/automoto/plasmaship/config"
	"github.com/automoto/plasmaship/systems/factory"
	"github.com/automoto/plasmaship/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// GetOrCreateResource returns the shared counters, creating them with
// starting values if needed.
func GetOrCreateResource(ecs *ecs.ECS) *components.ResourceData {
	entry, ok := components.Resource.First(ecs.World)
	if !ok {
		entry = factory.CreateResource(ecs)
	}
	return components.Resource.Get(entry)
}

// LoadLevel replaces whatever level is in the world with the level at
// index, wrapping around the level list. Counters start over.
func LoadLevel(ecs *ecs.ECS, index int) {
	levelEntry, ok := components.Level.First(ecs.World)
	if !ok {
		return
	}
	level := components.Level.Get(levelEntry)
	if len(level.Levels) == 0 {
		return
	}

	n := len(level.Levels)
	index = ((index % n) + n) % n
	level.LevelIndex = index
	level.CurrentLevel = &level.Levels[index]

	UnloadLevel(ecs)
	factory.PopulateLevel(ecs, &level.CurrentLevel.Grid)
	*GetOrCreateResource(ecs) = components.NewResource()
}

// ResetLevel puts the current level back to its loaded state without
// rebuilding the static geometry: bullets vanish, doors and canons restart,
// the ship returns to its start and counters start over.
func ResetLevel(ecs *ecs.ECS) {
	levelEntry, ok := components.Level.First(ecs.World)
	if !ok {
		return
	}
	level := components.Level.Get(levelEntry)
	if level.CurrentLevel == nil {
		return
	}

	var bullets []donburi.Entity
	tags.Bullet.Each(ecs.World, func(e *donburi.Entry) {
		bullets = append(bullets, e.Entity())
	})
	for _, e := range bullets {
		ecs.World.Remove(e)
	}

	ResetDoors(ecs.World)
	tags.Canon.Each(ecs.World, func(e *donburi.Entry) {
		components.Canon.Get(e).Cooldown = cfg.Canon.FirstShot
	})
	if shipEntry, ok := tags.Ship.First(ecs.World); ok {
		t := components.Transform.Get(shipEntry)
		t.X, t.Y = level.CurrentLevel.Grid.ShipStartX, level.CurrentLevel.Grid.ShipStartY
	}
	*GetOrCreateResource(ecs) = components.NewResource()
}

// NextLevel loads the level after the current one.
func NextLevel(ecs *ecs.ECS) {
	if levelEntry, ok := components.Level.First(ecs.World); ok {
		LoadLevel(ecs, components.Level.Get(levelEntry).LevelIndex+1)
	}
}

// UnloadLevel removes every level entity and the space they were indexed in.
func UnloadLevel(ecs *ecs.ECS) {
	var toRemove []donburi.Entity
	collect := func(e *donburi.Entry) {
		toRemove = append(toRemove, e.Entity())
	}
	unindex := func(e *donburi.Entry) {
		removeStatic(ecs, e)
		collect(e)
	}
	tags.Wall.Each(ecs.World, unindex)
	tags.Door.Each(ecs.World, unindex)
	tags.Canon.Each(ecs.World, collect)
	tags.Bullet.Each(ecs.World, collect)
	tags.Ship.Each(ecs.World, collect)
	components.Space.Each(ecs.World, collect)

	for _, e := range toRemove {
		if ecs.World.Valid(e) {
			ecs.World.Remove(e)
		}
	}
}

// removeStatic drops the entry's hitbox from the space, if it was indexed.
func removeStatic(ecs *ecs.ECS, e *donburi.Entry) {
	spaceEntry, ok := components.Space.First(ecs.World)
	if !ok || !e.HasComponent(components.Object) {
		return
	}
	if obj := components.Object.Get(e); obj != nil && obj.Object != nil {
		components.Space.Get(spaceEntry).Remove(obj.Object)
	}
}
