package search

import (
	"fmt"
	"strings"
)

// Kind selects one of the four search strategies.
type Kind int

const (
	BFS Kind = iota
	DFS
	Dijkstra
	AStar
)

// Kinds returns every strategy in display order.
func Kinds() []Kind {
	return []Kind{BFS, DFS, Dijkstra, AStar}
}

// String returns the display name of the strategy.
func (k Kind) String() string {
	switch k {
	case BFS:
		return "BFS"
	case DFS:
		return "DFS"
	case Dijkstra:
		return "Dijkstra"
	case AStar:
		return "A*"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// weighted reports whether the strategy keeps a distance table and
// relaxes costs rather than visiting each cell at most once.
func (k Kind) weighted() bool {
	return k == Dijkstra || k == AStar
}

// ParseKind resolves a command-line strategy name.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(s) {
	case "bfs":
		return BFS, nil
	case "dfs":
		return DFS, nil
	case "dijkstra":
		return Dijkstra, nil
	case "astar", "a*":
		return AStar, nil
	}
	return BFS, fmt.Errorf("search: unknown strategy %q (want bfs, dfs, dijkstra or astar)", s)
}
