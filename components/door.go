package components

import "github.com/yohamta/donburi"

// DoorState is the sprite state of a plasma door
type DoorState int

const (
	DoorCycling DoorState = iota
	DoorClosed
)

func (s DoorState) String() string {
	if s == DoorClosed {
		return "closed"
	}
	return "cycling"
}

type DoorData struct {
	InitialSprite int
	InitialState  DoorState
	Sprite        int
	State         DoorState
	ToggleTimer   float64
}

var Door = donburi.NewComponentType[DoorData]()
