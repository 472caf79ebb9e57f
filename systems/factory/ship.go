package factory

import (
	"github.com/automoto/plasmaship/archetypes"
	"github.com/automoto/plasmaship/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateShip spawns the player craft centred on (x, y).
func CreateShip(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	ship := archetypes.Ship.Spawn(ecs)
	components.Transform.SetValue(ship, components.TransformData{X: x, Y: y, ScaleX: 1, ScaleY: 1})
	return ship
}

// CreateResource spawns the shared counter singleton with starting values.
func CreateResource(ecs *ecs.ECS) *donburi.Entry {
	res := archetypes.Resource.Spawn(ecs)
	components.Resource.SetValue(res, components.NewResource())
	return res
}
