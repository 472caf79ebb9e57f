package systems

import (
	"github.com/automoto/plasmaship/components"
	cfg "github.com/automoto/plasmaship/config"
	"github.com/automoto/plasmaship/shared/doors"
	"github.com/automoto/plasmaship/shared/projectile"
	"github.com/automoto/plasmaship/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func UpdateDoors(ecs *ecs.ECS) {
	StepDoors(ecs.World, cfg.Sim.DT())
}

// StepDoors advances the sprite of every cycling door by dt. Each elapsed
// toggle interval flips the sprite to the other phase of its pair.
func StepDoors(world donburi.World, dt float64) {
	interval := cfg.Door.ToggleInterval
	if interval <= 0 {
		return
	}

	tags.Door.Each(world, func(e *donburi.Entry) {
		d := components.Door.Get(e)
		if d.State != components.DoorCycling {
			return
		}
		d.ToggleTimer -= dt
		for projectile.Expired(d.ToggleTimer) {
			d.ToggleTimer += interval
			if next := doors.NextOpenPhase(d.Sprite); next != doors.NoTransition {
				d.Sprite = next
			}
		}
	})
}

// CloseDoors settles every cycling door on its closed sprite. It reports
// how many doors changed.
func CloseDoors(world donburi.World) int {
	closed := 0
	tags.Door.Each(world, func(e *donburi.Entry) {
		d := components.Door.Get(e)
		if d.State != components.DoorCycling {
			return
		}
		if target := doors.CloseTarget(d.Sprite); target != doors.NoTransition {
			d.Sprite = target
		}
		d.State = components.DoorClosed
		closed++
	})
	return closed
}

// ResetDoors puts every door back to the sprite and state it was loaded with.
func ResetDoors(world donburi.World) {
	tags.Door.Each(world, func(e *donburi.Entry) {
		d := components.Door.Get(e)
		d.Sprite = d.InitialSprite
		d.State = d.InitialState
		d.ToggleTimer = cfg.Door.ToggleInterval
	})
}
