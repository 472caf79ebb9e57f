package factory

import (
	"github.com/automoto/plasmaship/archetypes"
	"github.com/automoto/plasmaship/components"
	"github.com/automoto/plasmaship/shared/tiles"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateWall spawns the wall for a tile code anchored at (x, y). It returns
// nil for codes that are not walls.
func CreateWall(ecs *ecs.ECS, code int, x, y float64) *donburi.Entry {
	cs, ok := tiles.ToColliders(code, x, y)
	if !ok {
		return nil
	}

	wall := archetypes.Wall.Spawn(ecs)
	components.Transform.SetValue(wall, components.TransformData{X: x, Y: y, ScaleX: 1, ScaleY: 1})
	setStatic(ecs, wall, cs)
	return wall
}
