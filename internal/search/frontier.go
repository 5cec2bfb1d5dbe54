package search

import (
	"container/heap"

	"maze-viz/internal/grid"
)

// frontier is the active to-explore collection. The four strategies
// share one traversal loop and differ only in which frontier they plug
// in and how push priorities are computed. BFS and DFS ignore priority.
type frontier interface {
	push(c grid.Cell, priority int)
	pop() grid.Cell
	empty() bool
}

// fifoFrontier is the BFS queue.
type fifoFrontier struct {
	items []grid.Cell
}

func (f *fifoFrontier) push(c grid.Cell, _ int) { f.items = append(f.items, c) }

func (f *fifoFrontier) pop() grid.Cell {
	c := f.items[0]
	f.items = f.items[1:]
	return c
}

func (f *fifoFrontier) empty() bool { return len(f.items) == 0 }

// lifoFrontier is the DFS stack; the most recently pushed neighbor is
// explored first.
type lifoFrontier struct {
	items []grid.Cell
}

func (f *lifoFrontier) push(c grid.Cell, _ int) { f.items = append(f.items, c) }

func (f *lifoFrontier) pop() grid.Cell {
	c := f.items[len(f.items)-1]
	f.items = f.items[:len(f.items)-1]
	return c
}

func (f *lifoFrontier) empty() bool { return len(f.items) == 0 }

// heapFrontier is the min-priority frontier for Dijkstra and A*. Equal
// priorities resolve by insertion order, so traversal stays fully
// deterministic for a given grid.
type heapFrontier struct {
	h   pqHeap
	seq int
}

func (f *heapFrontier) push(c grid.Cell, priority int) {
	heap.Push(&f.h, &pqItem{cell: c, priority: priority, seq: f.seq})
	f.seq++
}

func (f *heapFrontier) pop() grid.Cell {
	return heap.Pop(&f.h).(*pqItem).cell
}

func (f *heapFrontier) empty() bool { return f.h.Len() == 0 }

type pqItem struct {
	cell     grid.Cell
	priority int
	seq      int
}

// pqHeap implements heap.Interface.
type pqHeap []*pqItem

func (pq pqHeap) Len() int { return len(pq) }

func (pq pqHeap) Less(i, j int) bool {
	if pq[i].priority != pq[j].priority {
		return pq[i].priority < pq[j].priority
	}
	return pq[i].seq < pq[j].seq
}

func (pq pqHeap) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *pqHeap) Push(x any) { *pq = append(*pq, x.(*pqItem)) }

func (pq *pqHeap) Pop() any {
	old := *pq
	n := len(old)
	it := old[n-1]
	*pq = old[:n-1]
	return it
}

// newFrontier returns the frontier variant for the strategy.
func newFrontier(k Kind) frontier {
	switch k {
	case DFS:
		return &lifoFrontier{}
	case Dijkstra, AStar:
		return &heapFrontier{}
	default:
		return &fifoFrontier{}
	}
}
