package search

import "maze-viz/internal/grid"

// noCell is the predecessor sentinel recorded for the start cell.
var noCell = grid.Cell{X: -1, Y: -1}

// Path is the reconstructed route from end back toward start. It holds
// every cell on the route including end but not start, so len(Path) is
// the route's edge count. An empty Path means no path was found.
type Path map[grid.Cell]struct{}

// Contains reports whether c lies on the path.
func (p Path) Contains(c grid.Cell) bool {
	_, ok := p[c]
	return ok
}

// Run is a single stepwise search of one grid. The caller owns pacing:
// each Step performs exactly one frontier pop plus neighbor expansion,
// and the accumulated visitation record can be read between steps for
// incremental rendering. State never carries over between runs; a new
// request simply builds a new Run.
type Run struct {
	grid  *grid.Grid
	kind  Kind
	start grid.Cell
	end   grid.Cell

	front   frontier
	parents map[grid.Cell]grid.Cell
	order   []grid.Cell
	dist    map[grid.Cell]int

	done bool
}

// NewRun seeds a search. The visitation record starts with start mapped
// to the sentinel; start and end placed on walls are not validated and
// simply exhaust the frontier without success.
func NewRun(g *grid.Grid, k Kind, start, end grid.Cell) *Run {
	r := &Run{
		grid:    g,
		kind:    k,
		start:   start,
		end:     end,
		front:   newFrontier(k),
		parents: map[grid.Cell]grid.Cell{start: noCell},
		order:   []grid.Cell{start},
	}
	if k.weighted() {
		r.dist = map[grid.Cell]int{start: 0}
	}
	r.front.push(start, 0)
	return r
}

// Kind returns the strategy driving this run.
func (r *Run) Kind() Kind { return r.kind }

// Done reports whether the run has terminated.
func (r *Run) Done() bool { return r.done }

// Step pops one cell from the frontier and expands its neighbors,
// reporting whether the run has terminated. Termination happens the
// moment end itself is popped (not merely discovered), or when the
// frontier empties without ever popping end.
func (r *Run) Step() bool {
	if r.done {
		return true
	}
	if r.front.empty() {
		r.done = true
		return true
	}

	cur := r.front.pop()
	if cur == r.end {
		r.done = true
		return true
	}

	if r.kind.weighted() {
		r.expandWeighted(cur)
	} else {
		r.expandUnweighted(cur)
	}
	return false
}

// expandUnweighted applies the no-duplicate-visit rule: a recorded cell
// is never reconsidered, so the fixed neighbor order decides which
// predecessor wins.
func (r *Run) expandUnweighted(cur grid.Cell) {
	for _, n := range r.grid.OpenNeighbors(cur) {
		if _, seen := r.parents[n]; seen {
			continue
		}
		r.record(n, cur)
		r.front.push(n, 0)
	}
}

// expandWeighted relaxes each neighbor: only a strictly smaller cost
// overwrites the distance table and predecessor and re-enters the
// frontier. Stale frontier entries are never pruned; once end is popped
// the loop breaks regardless of what they still hold, and an earlier
// worse entry popped before then relaxes nothing new.
func (r *Run) expandWeighted(cur grid.Cell) {
	for _, n := range r.grid.OpenNeighbors(cur) {
		nd := r.dist[cur] + 1
		if old, ok := r.dist[n]; ok && nd >= old {
			continue
		}
		r.dist[n] = nd
		r.record(n, cur)
		priority := nd
		if r.kind == AStar {
			priority += manhattan(n, r.end)
		}
		r.front.push(n, priority)
	}
}

// record stores n's winning predecessor, keeping first-discovery order
// for the visitation sequence.
func (r *Run) record(n, from grid.Cell) {
	if _, seen := r.parents[n]; !seen {
		r.order = append(r.order, n)
	}
	r.parents[n] = from
}

// Visited returns the visitation record's cells in discovery order. The
// returned slice is the run's own; callers must not mutate it.
func (r *Run) Visited() []grid.Cell { return r.order }

// Path walks predecessors from end back to the sentinel and collects the
// route. Calling it repeatedly on a finished run yields the same set; if
// end never entered the record the result is empty, which is the
// first-class "no path found" signal rather than an error.
func (r *Run) Path() Path {
	path := make(Path)
	node := r.end
	for {
		parent, ok := r.parents[node]
		if !ok || parent == noCell {
			break
		}
		path[node] = struct{}{}
		node = parent
	}
	return path
}

// Solve steps a run to completion and returns its visitation order and
// path. It exists for headless use and tests; the animated driver steps
// a Run itself.
func Solve(g *grid.Grid, k Kind, start, end grid.Cell) ([]grid.Cell, Path) {
	r := NewRun(g, k, start, end)
	for !r.Step() {
	}
	return r.Visited(), r.Path()
}

// manhattan is the A* heuristic: |dx| + |dy|, admissible and consistent
// on a unit-cost grid without diagonal moves.
func manhattan(a, b grid.Cell) int {
	dx := a.X - b.X
	if dx < 0 {
		dx = -dx
	}
	dy := a.Y - b.Y
	if dy < 0 {
		dy = -dy
	}
	return dx + dy
}
