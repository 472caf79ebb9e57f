package collision

import (
	"math"

	"github.com/automoto/plasmaship/shared/geometry"
	"github.com/jakecoffman/cp"
	"github.com/solarlune/resolv"
)

const (
	tagStatic = "static"
	tagProbe  = "probe"

	// Cells of slack kept around the level on every side. Bottom and left
	// walls on row/column zero extend one tile below the origin.
	marginCells = 2
)

// Index is a uniform-grid spatial hash over static hitboxes. It only prunes:
// everything Query returns must still go through IsEligibleWithin and
// AreColliding.
type Index struct {
	space  *resolv.Space
	probe  *resolv.Object
	cell   float64
	offset float64
	extent cp.BB // space area in grid coordinates
}

// NewIndex sizes a grid for a level of the given world dimensions.
func NewIndex(width, height float64, cellSize int) *Index {
	if cellSize <= 0 {
		cellSize = 32
	}
	cell := float64(cellSize)
	cols := int(math.Ceil(width/cell)) + 2*marginCells
	rows := int(math.Ceil(height/cell)) + 2*marginCells

	idx := &Index{
		space:  resolv.NewSpace(cols*cellSize, rows*cellSize, cellSize, cellSize),
		cell:   cell,
		offset: marginCells * cell,
		extent: cp.BB{R: float64(cols * cellSize), T: float64(rows * cellSize)},
	}
	idx.probe = resolv.NewObject(0, 0, 1, 1, tagProbe)
	idx.space.Add(idx.probe)
	return idx
}

// Insert registers a static hitbox. The returned object is the handle for
// Remove.
func (idx *Index) Insert(cs *geometry.Colliders) *resolv.Object {
	bb := cs.Bounds()
	obj := resolv.NewObject(bb.L+idx.offset, bb.B+idx.offset, bb.R-bb.L, bb.T-bb.B, tagStatic)
	obj.SetShape(resolv.NewRectangle(0, 0, obj.W, obj.H))
	obj.Data = cs
	idx.space.Add(obj)
	return obj
}

// Remove unregisters a hitbox previously returned by Insert.
func (idx *Index) Remove(obj *resolv.Object) {
	if obj == nil {
		return
	}
	idx.space.Remove(obj)
}

// Query returns the static hitboxes sharing a grid cell with bb grown by one
// cell on every side. Order is unspecified.
func (idx *Index) Query(bb cp.BB) []*geometry.Colliders {
	if geometry.IsEmptyBounds(bb) {
		return nil
	}
	// Probe in grid coordinates, clipped to the space.
	grid := cp.BB{
		L: max(bb.L+idx.offset-idx.cell, idx.extent.L),
		B: max(bb.B+idx.offset-idx.cell, idx.extent.B),
		R: min(bb.R+idx.offset+idx.cell, idx.extent.R),
		T: min(bb.T+idx.offset+idx.cell, idx.extent.T),
	}
	if grid.R <= grid.L || grid.T <= grid.B {
		return nil
	}
	idx.probe.X = grid.L
	idx.probe.Y = grid.B
	idx.probe.W = grid.R - grid.L
	idx.probe.H = grid.T - grid.B
	idx.probe.Update()

	check := idx.probe.Check(0, 0, tagStatic)
	if check == nil {
		return nil
	}

	hits := check.ObjectsByTags(tagStatic)
	seen := make(map[*resolv.Object]struct{}, len(hits))
	out := make([]*geometry.Colliders, 0, len(hits))
	for _, obj := range hits {
		if _, dup := seen[obj]; dup {
			continue
		}
		seen[obj] = struct{}{}
		if cs, ok := obj.Data.(*geometry.Colliders); ok {
			out = append(out, cs)
		}
	}
	return out
}
