package ui

import (
	"fmt"
	"time"
)

// Status is the driver state the HUD reports each frame.
type Status struct {
	Algorithm string
	Searching bool

	// HasResult is set once a run completed; NoPath marks a completed
	// run whose search exhausted without reaching the end, in which
	// case length and time stats are suppressed.
	HasResult bool
	NoPath    bool
	PathLen   int
	Elapsed   time.Duration
}

// Lines renders the status to the overlay's text rows.
func (s Status) Lines() []string {
	lines := []string{
		fmt.Sprintf("Algorithm: %s  (press 1-4 to change)", s.Algorithm),
		"Controls: [Space] run  [R] regenerate maze  [Esc] quit",
	}
	if s.Searching {
		lines = append(lines, "Status: Searching...")
	} else {
		lines = append(lines, "Status: Idle")
	}
	if s.HasResult {
		if s.NoPath {
			lines = append(lines, "No path found")
		} else {
			lines = append(lines,
				fmt.Sprintf("Last path length: %d", s.PathLen),
				fmt.Sprintf("Time taken: %.4f seconds", s.Elapsed.Seconds()),
			)
		}
	}
	return lines
}
