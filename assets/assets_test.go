package assets

import (
	"testing"
	"testing/fstest"

	"github.com/automoto/plasmaship/shared/doors"
	"github.com/automoto/plasmaship/shared/tiles"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuiltin(t *testing.T) {
	level := Builtin()
	grid := level.Grid

	assert.Equal(t, 22, grid.Width)
	assert.Equal(t, 18, grid.Height)
	assert.Nil(t, level.Background)

	var walls, doorTiles, canons int
	for _, tile := range grid.Tiles {
		switch {
		case tiles.IsWall(tile.Code):
			walls++
		case doors.IsTogglable(tile.Code):
			doorTiles++
		default:
			_, ok := tiles.ToCanon(tile.Code)
			require.True(t, ok, "unexpected code %d", tile.Code)
			canons++
		}
	}
	assert.Equal(t, 76, walls)
	assert.Equal(t, 6, doorTiles)
	assert.Equal(t, 3, canons)

	w, h := grid.PixelSize()
	assert.Less(t, grid.ShipStartX, w)
	assert.Less(t, grid.ShipStartY, h)
}

func TestLoadLevelsWithoutMaps(t *testing.T) {
	loader := NewLevelLoader(fstest.MapFS{})
	_, err := loader.LoadLevels("levels")
	assert.Error(t, err)
}
