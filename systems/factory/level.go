package factory

import (
	"github.com/automoto/plasmaship/archetypes"
	"github.com/automoto/plasmaship/assets"
	"github.com/automoto/plasmaship/components"
	"github.com/automoto/plasmaship/shared/doors"
	"github.com/automoto/plasmaship/shared/leveldata"
	"github.com/automoto/plasmaship/shared/tiles"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateLevel spawns the level singleton holding every loaded level.
func CreateLevel(ecs *ecs.ECS, levels []assets.Level, levelIndex int) *donburi.Entry {
	level := archetypes.Level.Spawn(ecs)

	if levelIndex < 0 || levelIndex >= len(levels) {
		levelIndex = 0
	}

	levelData := &components.LevelData{
		Levels:     levels,
		LevelIndex: levelIndex,
	}
	if len(levels) > 0 {
		levelData.CurrentLevel = &levels[levelIndex]
	}
	components.Level.Set(level, levelData)

	return level
}

// PopulateLevel spawns the space, one entity per wall, door and canon tile
// of grid, and the ship at the grid's start point. Tiles with any other code
// are scenery.
func PopulateLevel(ecs *ecs.ECS, grid *leveldata.TileGrid) {
	w, h := grid.PixelSize()
	CreateSpace(ecs, w, h)

	for _, t := range grid.Tiles {
		x, y := t.WorldPos()
		switch {
		case tiles.IsWall(t.Code):
			CreateWall(ecs, t.Code, x, y)
		case doors.IsTogglable(t.Code):
			CreateDoor(ecs, t.Code, x, y)
		default:
			CreateCanon(ecs, t.Code, x, y)
		}
	}

	CreateShip(ecs, grid.ShipStartX, grid.ShipStartY)
}
