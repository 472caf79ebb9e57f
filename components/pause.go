package components

import "github.com/yohamta/donburi"

// PauseData stores the pause state. A paused level keeps rendering but the
// tick systems are skipped.
type PauseData struct {
	IsPaused bool
}

var Pause = donburi.NewComponentType[PauseData]()
