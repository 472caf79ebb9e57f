package factory

import (
	"github.com/automoto/plasmaship/archetypes"
	"github.com/automoto/plasmaship/components"
	cfg "github.com/automoto/plasmaship/config"
	"github.com/automoto/plasmaship/shared/doors"
	"github.com/automoto/plasmaship/shared/tiles"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateDoor spawns a plasma door. Phase codes start cycling, closed codes
// start closed. Returns nil for anything else.
func CreateDoor(ecs *ecs.ECS, code int, x, y float64) *donburi.Entry {
	cs, ok := tiles.DoorColliders(code, x, y)
	if !ok || !doors.IsTogglable(code) {
		return nil
	}

	state := components.DoorClosed
	if doors.IsPhase(code) {
		state = components.DoorCycling
	}

	door := archetypes.Door.Spawn(ecs)
	components.Transform.SetValue(door, components.TransformData{X: x, Y: y, ScaleX: 1, ScaleY: 1})
	components.Door.SetValue(door, components.DoorData{
		InitialSprite: code,
		InitialState:  state,
		Sprite:        code,
		State:         state,
		ToggleTimer:   cfg.Door.ToggleInterval,
	})
	setStatic(ecs, door, cs)
	return door
}
