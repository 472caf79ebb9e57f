package assets

import (
	"fmt"
	"io/fs"
	"log"
	"path"

	"github.com/automoto/plasmaship/shared/leveldata"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/lafriks/go-tiled"
	"github.com/lafriks/go-tiled/render"
)

// Level is a tile grid plus the picture of its tile layers.
type Level struct {
	Grid       leveldata.TileGrid
	Background *ebiten.Image // nil when the tilesets could not be drawn
}

type LevelLoader struct {
	fsys fs.FS
}

// NewLevelLoader reads levels from fsys, usually os.DirFS of the assets
// directory.
func NewLevelLoader(fsys fs.FS) *LevelLoader {
	return &LevelLoader{fsys: fsys}
}

// LoadLevels loads every .tmx file in dir, sorted by name.
func (l *LevelLoader) LoadLevels(dir string) ([]Level, error) {
	grids, names, err := leveldata.LoadAllLevels(l.fsys, dir)
	if err != nil {
		return nil, err
	}

	levels := make([]Level, 0, len(names))
	for _, name := range names {
		tmxPath := path.Join(dir, name+".tmx")
		bg, err := l.renderBackground(tmxPath)
		if err != nil {
			log.Printf("Warning: Failed to render background of %s: %v", tmxPath, err)
		}
		levels = append(levels, Level{Grid: *grids[name], Background: bg})
	}
	return levels, nil
}

// renderBackground draws the visible tile layers of a TMX file. TMX pixel
// space is y-down like the screen, so the image needs no flip.
func (l *LevelLoader) renderBackground(tmxPath string) (*ebiten.Image, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(l.fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	renderer, err := render.NewRendererWithFileSystem(levelMap, l.fsys)
	if err != nil {
		return nil, fmt.Errorf("create renderer: %w", err)
	}
	defer renderer.Clear()

	if err := renderer.RenderVisibleLayers(); err != nil {
		return nil, fmt.Errorf("render layers: %w", err)
	}
	return ebiten.NewImageFromImage(renderer.Result), nil
}

// Builtin is a small level for running the viewer without an assets
// directory: a walled room with one door of each orientation and one canon
// of each kind.
func Builtin() Level {
	grid := leveldata.FromRows([][]int{
		{30, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 32},
		{40, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, 42},
		{40, -1, 61, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, 42},
		{40, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, 42},
		{40, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, 70, -1, 42},
		{40, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, 42},
		{40, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, 42},
		{40, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, 42},
		{40, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, 42},
		{40, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, 42},
		{40, 81, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, 42},
		{40, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, 42},
		{40, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, 42},
		{40, -1, -1, -1, -1, -1, -1, -1, -1, 135, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, 42},
		{40, -1, -1, -1, -1, -1, -1, -1, -1, 145, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, 42},
		{40, -1, -1, -1, -1, -1, -1, -1, -1, 165, -1, -1, -1, -1, -1, 114, 115, 117, -1, -1, -1, 42},
		{40, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, 42},
		{50, 51, 51, 51, 51, 51, 51, 51, 51, 51, 51, 51, 51, 51, 51, 51, 51, 51, 51, 51, 51, 52},
	})
	grid.Name = "builtin"
	grid.ShipStartX = 11 * leveldata.TileSize
	grid.ShipStartY = 9 * leveldata.TileSize
	return Level{Grid: *grid}
}
