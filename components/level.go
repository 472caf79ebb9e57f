package components

import (
	"github.com/automoto/plasmaship/assets"
	"github.com/yohamta/donburi"
)

// LevelData tracks the loaded level set and which one is on screen
type LevelData struct {
	CurrentLevel *assets.Level
	LevelIndex   int
	Levels       []assets.Level
}

var Level = donburi.NewComponentType[LevelData]()
