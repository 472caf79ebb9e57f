package systems

import (
	"github.com/automoto/plasmaship/components"
	cfg "github.com/automoto/plasmaship/config"
	"github.com/automoto/plasmaship/shared/geometry"
	"github.com/automoto/plasmaship/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CraftColliders returns the ship hitbox at its current position: the hull
// rectangle plus the nose triangle sitting on top of it. It is rebuilt on
// every call. Without a ship it returns nil.
func CraftColliders(world donburi.World) []geometry.Polygon {
	shipEntry, ok := tags.Ship.First(world)
	if !ok {
		return nil
	}
	t := components.Transform.Get(shipEntry)
	return craftPolygons(t.X, t.Y)
}

func craftPolygons(x, y float64) []geometry.Polygon {
	s := cfg.Ship
	halfW, halfH := s.HullWidth/2, s.HullHeight/2
	hull := geometry.Rect(x-halfW, y-halfH, x+halfW, y+halfH)

	top := y + halfH
	nose := geometry.Polygon{
		{X: x - s.NoseWidth/2, Y: top},
		{X: x + s.NoseWidth/2, Y: top},
		{X: x, Y: top + s.NoseHeight},
	}
	return []geometry.Polygon{hull, nose}
}

// UpdateShip moves the craft from the movement actions. Flight physics live
// outside the viewer; this only lets a tester steer into hazards.
func UpdateShip(ecs *ecs.ECS) {
	shipEntry, ok := tags.Ship.First(ecs.World)
	if !ok {
		return
	}
	input := getOrCreateInput(ecs)
	dx, dy := moveAxes(input)

	step := cfg.Ship.MoveSpeed * cfg.Sim.DT()
	t := components.Transform.Get(shipEntry)
	t.X += dx * step
	t.Y += dy * step
}

// moveAxes folds the digital actions and the analog stick into one
// direction per axis, each in [-1, 1].
func moveAxes(input *components.InputData) (float64, float64) {
	dx, dy := input.AxisX, input.AxisY
	if input.Pressed(cfg.ActionMoveLeft) {
		dx = -1
	}
	if input.Pressed(cfg.ActionMoveRight) {
		dx = 1
	}
	if input.Pressed(cfg.ActionMoveUp) {
		dy = 1
	}
	if input.Pressed(cfg.ActionMoveDown) {
		dy = -1
	}
	return dx, dy
}
