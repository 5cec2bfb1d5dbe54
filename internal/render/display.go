package render

import (
	"image/color"

	"maze-viz/internal/grid"
	"maze-viz/internal/search"
)

// Display buffer cell states. Open and Wall deliberately share values
// with grid.Open/grid.Wall so the maze itself is the identity base layer.
const (
	StateOpen uint8 = iota
	StateWall
	StateVisited
	StatePath
	StateStart
	StateEnd
)

var (
	colorOpen  = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	colorWall  = color.RGBA{A: 255}
	colorPath  = color.RGBA{R: 255, G: 165, A: 255}
	colorStart = color.RGBA{R: 50, G: 255, B: 100, A: 255}
	colorEnd   = color.RGBA{R: 255, G: 50, B: 50, A: 255}

	visitedColors = map[search.Kind]color.RGBA{
		search.BFS:      {R: 50, G: 150, B: 255, A: 255},
		search.DFS:      {R: 255, G: 50, B: 50, A: 255},
		search.Dijkstra: {R: 50, G: 255, B: 100, A: 255},
		search.AStar:    {R: 255, G: 255, B: 100, A: 255},
	}
)

// Palette returns the display-state palette with the visited hue of the
// given strategy at StateVisited.
func Palette(k search.Kind) []color.RGBA {
	return []color.RGBA{colorOpen, colorWall, visitedColors[k], colorPath, colorStart, colorEnd}
}

// ComposeDisplay overlays one frame's cell states into dst, growing it
// if needed, and returns the buffer. Precedence per cell: path beats
// visited beats the bare maze, and the start/end markers beat everything
// at their own coordinates.
func ComposeDisplay(dst []uint8, g *grid.Grid, visited []grid.Cell, path search.Path) []uint8 {
	if len(dst) != len(g.Cells()) {
		dst = make([]uint8, len(g.Cells()))
	}
	copy(dst, g.Cells())

	for _, c := range visited {
		dst[g.Index(c.X, c.Y)] = StateVisited
	}
	for c := range path {
		dst[g.Index(c.X, c.Y)] = StatePath
	}
	if g.InBounds(g.Start) {
		dst[g.Index(g.Start.X, g.Start.Y)] = StateStart
	}
	if g.InBounds(g.End) {
		dst[g.Index(g.End.X, g.End.Y)] = StateEnd
	}
	return dst
}
