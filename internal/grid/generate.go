package grid

import "math/rand/v2"

// carveDirs are the two-step directions used while carving passages.
var carveDirs = [4]Cell{{-2, 0}, {2, 0}, {0, -2}, {0, 2}}

// Generate builds a maze with the randomized iterative backtracker.
// Every carved cell is reachable from (0,0) and no carved cell is ever
// reopened, so the open cells form a spanning tree of passages. Start is
// (0,0) and End is (w-1, h-1); for even dimensions End may land on a
// wall, which the search strategies treat as an unreachable target.
//
// A 1-wide or 1-tall grid finds no two-step neighbors beyond those along
// its single axis; in the 1x1 case the maze degenerates to a single open
// cell, which is valid.
func Generate(w, h int, rng *rand.Rand) (*Grid, error) {
	g, err := New(w, h)
	if err != nil {
		return nil, err
	}

	stack := []Cell{{0, 0}}
	g.open(0, 0)

	for len(stack) > 0 {
		cur := stack[len(stack)-1]

		// Candidate cells two steps away that are still uncarved.
		var next []Cell
		for _, d := range carveDirs {
			n := Cell{X: cur.X + d.X, Y: cur.Y + d.Y}
			if g.InBounds(n) && g.at(n) == Wall {
				next = append(next, n)
			}
		}

		if len(next) == 0 {
			stack = stack[:len(stack)-1]
			continue
		}

		n := next[rng.IntN(len(next))]
		g.open(n.X, n.Y)
		// Opening the midpoint is what joins the two carved cells into
		// a connected passage.
		g.open(cur.X+(n.X-cur.X)/2, cur.Y+(n.Y-cur.Y)/2)
		stack = append(stack, n)
	}

	g.Start = Cell{0, 0}
	g.End = Cell{X: w - 1, Y: h - 1}
	return g, nil
}
