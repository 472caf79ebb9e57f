package leveldata

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/lafriks/go-tiled"
)

const (
	tileLayerName = "tiles"
	shipStartName = "ShipStart"
)

// LoadTileGrid parses a TMX file into a TileGrid. It takes an fs.FS so
// callers can pass embed.FS or os.DirFS. Tile codes are tileset-local IDs;
// TMX rows run top-down and are flipped so row 0 is the bottom of the level.
func LoadTileGrid(fsys fs.FS, tmxPath string) (*TileGrid, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	grid := &TileGrid{
		Name:   strings.TrimSuffix(filepath.Base(tmxPath), ".tmx"),
		Width:  levelMap.Width,
		Height: levelMap.Height,
	}

	var layer *tiled.Layer
	for _, l := range levelMap.Layers {
		if l.Name == tileLayerName {
			layer = l
			break
		}
	}
	if layer == nil {
		return nil, fmt.Errorf("%s: %w", tmxPath, ErrNoTileLayer)
	}

	for y := 0; y < levelMap.Height; y++ {
		r := levelMap.Height - 1 - y
		for x := 0; x < levelMap.Width; x++ {
			tile := layer.Tiles[r*levelMap.Width+x]
			if tile == nil || tile.IsNil() {
				continue
			}
			grid.Tiles = append(grid.Tiles, Tile{X: x, Y: y, Code: int(tile.ID)})
		}
	}

	// Object coordinates are y-down pixels.
	pixelH := float64(levelMap.Height * levelMap.TileHeight)
	scale := float64(TileSize) / float64(max(levelMap.TileWidth, 1))
	for _, og := range levelMap.ObjectGroups {
		if og.Name != shipStartName || len(og.Objects) == 0 {
			continue
		}
		o := og.Objects[0]
		grid.ShipStartX = o.X * scale
		grid.ShipStartY = (pixelH - o.Y) * scale
		break
	}

	return grid, nil
}

// LoadAllLevels discovers all .tmx files in levelsDir within fsys, loads each
// one, and returns a map keyed by stem name plus a sorted list of names.
func LoadAllLevels(fsys fs.FS, levelsDir string) (map[string]*TileGrid, []string, error) {
	pattern := levelsDir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("no .tmx files found in %s", levelsDir)
	}

	levels := make(map[string]*TileGrid, len(matches))
	names := make([]string, 0, len(matches))

	for _, path := range matches {
		grid, err := LoadTileGrid(fsys, path)
		if err != nil {
			return nil, nil, fmt.Errorf("load %s: %w", path, err)
		}
		levels[grid.Name] = grid
		names = append(names, grid.Name)
	}

	sort.Strings(names)
	return levels, names, nil
}
