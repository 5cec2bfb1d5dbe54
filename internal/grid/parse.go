package grid

import "fmt"

// FromRows builds a grid from an ASCII layout, one string per row, where
// '.' is an open cell and '#' a wall. Start and End default to the
// top-left and bottom-right corners; callers may reassign them. Meant
// for fixtures and tests rather than gameplay.
func FromRows(rows []string) (*Grid, error) {
	h := len(rows)
	if h == 0 {
		return nil, fmt.Errorf("%w: got empty layout", ErrBadDimensions)
	}
	w := len(rows[0])
	g, err := New(w, h)
	if err != nil {
		return nil, err
	}
	for y, row := range rows {
		if len(row) != w {
			return nil, fmt.Errorf("grid: row %d is %d cells wide, want %d", y, len(row), w)
		}
		for x, ch := range row {
			switch ch {
			case '.':
				g.open(x, y)
			case '#':
			default:
				return nil, fmt.Errorf("grid: unknown cell %q at (%d,%d)", ch, x, y)
			}
		}
	}
	g.Start = Cell{0, 0}
	g.End = Cell{X: w - 1, Y: h - 1}
	return g, nil
}
