package grid

import (
	"errors"
	"fmt"
)

// Cell values stored in a Grid.
const (
	Open uint8 = 0
	Wall uint8 = 1
)

// ErrBadDimensions is returned when a grid is requested with a
// non-positive width or height.
var ErrBadDimensions = errors.New("grid: width and height must be positive")

// Cell is a grid coordinate. It is a value type and is used as a map key
// throughout the search packages.
type Cell struct {
	X, Y int
}

// Grid stores a 2D maze of Open/Wall cells in row-major order, together
// with the designated start and end cells. Once generation finishes the
// cell data is read-only; a regeneration request replaces the whole Grid.
type Grid struct {
	W, H  int
	Start Cell
	End   Cell
	cells []uint8
}

// New allocates a grid with every cell set to Wall. It fails before any
// allocation when the dimensions are not positive.
func New(w, h int) (*Grid, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrBadDimensions, w, h)
	}
	g := &Grid{W: w, H: h, cells: make([]uint8, w*h)}
	for i := range g.cells {
		g.cells[i] = Wall
	}
	return g, nil
}

// Cells exposes the backing slice so renderers can read values directly.
func (g *Grid) Cells() []uint8 { return g.cells }

// Index returns the linear slice index for coordinates (x, y).
func (g *Grid) Index(x, y int) int { return y*g.W + x }

// InBounds reports whether c lies inside [0,W) x [0,H).
func (g *Grid) InBounds(c Cell) bool {
	return c.X >= 0 && c.X < g.W && c.Y >= 0 && c.Y < g.H
}

// IsOpen reports whether c is an in-bounds passable cell.
func (g *Grid) IsOpen(c Cell) bool {
	return g.InBounds(c) && g.cells[g.Index(c.X, c.Y)] == Open
}

// at returns the raw cell value; the caller must ensure c is in bounds.
func (g *Grid) at(c Cell) uint8 { return g.cells[g.Index(c.X, c.Y)] }

// open carves the cell at (x, y). Generation-time use only.
func (g *Grid) open(x, y int) { g.cells[g.Index(x, y)] = Open }

// neighborDirs is the fixed unit-step iteration order shared by every
// search strategy. It is the tie-break for which predecessor wins when a
// cell is reachable from several directions.
var neighborDirs = [4]Cell{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}

// OpenNeighbors returns the open in-bounds unit-step neighbors of c in
// the fixed (+x, -x, +y, -y) order. Bounds checking is part of the
// adjacency rule itself; no out-of-bounds index is ever computed.
func (g *Grid) OpenNeighbors(c Cell) []Cell {
	out := make([]Cell, 0, 4)
	for _, d := range neighborDirs {
		n := Cell{X: c.X + d.X, Y: c.Y + d.Y}
		if g.IsOpen(n) {
			out = append(out, n)
		}
	}
	return out
}
