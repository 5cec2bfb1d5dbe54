package render

import (
	"testing"

	"maze-viz/internal/grid"
	"maze-viz/internal/search"
)

func TestComposeDisplayPrecedence(t *testing.T) {
	g, err := grid.FromRows([]string{
		"...",
		"#..",
		"#..",
	})
	if err != nil {
		t.Fatal(err)
	}

	visited := []grid.Cell{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}, {X: 1, Y: 1}}
	path := search.Path{
		{X: 1, Y: 0}: {},
		{X: 1, Y: 1}: {},
	}

	dst := ComposeDisplay(nil, g, visited, path)

	at := func(x, y int) uint8 { return dst[g.Index(x, y)] }

	if at(0, 1) != StateWall {
		t.Fatal("walls must pass through from the grid")
	}
	if at(2, 1) != StateOpen {
		t.Fatal("untouched open cells stay open")
	}
	if at(2, 0) != StateVisited {
		t.Fatal("visited overlays the base maze")
	}
	if at(1, 0) != StatePath || at(1, 1) != StatePath {
		t.Fatal("path overlays visited")
	}
	if at(g.Start.X, g.Start.Y) != StateStart {
		t.Fatal("start marker overrides everything at its coordinate")
	}
	if at(g.End.X, g.End.Y) != StateEnd {
		t.Fatal("end marker overrides everything at its coordinate")
	}
}

func TestComposeDisplayReusesBuffer(t *testing.T) {
	g, err := grid.FromRows([]string{"..", ".."})
	if err != nil {
		t.Fatal(err)
	}
	buf := make([]uint8, 4)
	out := ComposeDisplay(buf, g, nil, nil)
	if &out[0] != &buf[0] {
		t.Fatal("a correctly sized buffer must be reused")
	}
}

func TestPaletteCoversAllStates(t *testing.T) {
	for _, k := range search.Kinds() {
		p := Palette(k)
		if len(p) != int(StateEnd)+1 {
			t.Fatalf("%v palette has %d entries", k, len(p))
		}
	}
	if Palette(search.BFS)[StateVisited] == Palette(search.AStar)[StateVisited] {
		t.Fatal("strategies must keep distinct visited hues")
	}
}
