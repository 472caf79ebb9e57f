// Package leveldata provides the level tile grid and its TMX loader.
// It has no dependencies on ebitengine, donburi or resolv; pure data only.
package leveldata

import "errors"

// TileSize is the edge of one grid cell in world units.
const TileSize = 32

// ErrNoTileLayer is returned when a TMX file has no layer named "tiles".
var ErrNoTileLayer = errors.New("no tiles layer")

// Tile is one non-empty grid cell. Y counts up from the bottom row.
type Tile struct {
	X, Y int
	Code int
}

// WorldPos is the tile's anchor in world space: the top-left corner in a
// y-up frame, so its hitboxes extend down from here.
func (t Tile) WorldPos() (float64, float64) {
	return float64(t.X * TileSize), float64(t.Y * TileSize)
}

// TileGrid is a level as read at load time. It is never mutated afterward.
type TileGrid struct {
	Name   string
	Width  int // in tiles
	Height int
	Tiles  []Tile // row-major, bottom row first

	ShipStartX float64
	ShipStartY float64
}

// PixelSize returns the level size in world units.
func (g *TileGrid) PixelSize() (float64, float64) {
	return float64(g.Width * TileSize), float64(g.Height * TileSize)
}

// FromRows builds a grid from rows listed top to bottom, the way a level
// reads on screen. Negative codes are empty cells.
func FromRows(rows [][]int) *TileGrid {
	g := &TileGrid{Height: len(rows)}
	for _, row := range rows {
		g.Width = max(g.Width, len(row))
	}
	for y := 0; y < g.Height; y++ {
		row := rows[g.Height-1-y]
		for x, code := range row {
			if code < 0 {
				continue
			}
			g.Tiles = append(g.Tiles, Tile{X: x, Y: y, Code: code})
		}
	}
	return g
}

// At returns the code at (x, y), or -1 when the cell is empty.
func (g *TileGrid) At(x, y int) int {
	for _, t := range g.Tiles {
		if t.X == x && t.Y == y {
			return t.Code
		}
	}
	return -1
}
