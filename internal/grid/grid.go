package grid

import (
	"github.com/bashhack/gitpix/internal/sprite"
)

const (
	// Rows is the number of weekdays in a heatmap column (Sunday..Saturday).
	Rows = 7

	// Cols is the number of weeks shown on the heatmap.
	Cols = 52

	// DefaultWeight is the commit count that renders as the darkest shade.
	DefaultWeight = 10
)

// Grid is the 7x52 heatmap, indexed [row][col]. It is a value type: every
// operation below returns a new Grid and leaves its argument untouched.
type Grid [Rows][Cols]int

// Cell is one grid position together with its weight.
type Cell struct {
	Col    int
	Row    int
	Weight int
}

// Place overlays s with its top-left corner at column col. Sprite columns that
// fall outside the grid are dropped.
func Place(g Grid, s sprite.Sprite, col int) Grid {
	for r := 0; r < sprite.Size && r < Rows; r++ {
		for c := 0; c < sprite.Size; c++ {
			target := col + c
			if target < 0 || target >= Cols {
				continue
			}
			if s[r][c] != 0 {
				g[r][target] = 1
			} else {
				g[r][target] = 0
			}
		}
	}
	return g
}

// Trail sets every step-th column of row, from `from` through `to` inclusive.
func Trail(g Grid, row, from, to, step int) Grid {
	if row < 0 || row >= Rows || step <= 0 {
		return g
	}
	for c := from; c <= to; c += step {
		if c < 0 || c >= Cols {
			continue
		}
		g[row][c] = 1
	}
	return g
}

// Invert flips every binary cell: 0 becomes 1 and anything else becomes 0.
func Invert(g Grid) Grid {
	for r := 0; r < Rows; r++ {
		for c := 0; c < Cols; c++ {
			if g[r][c] == 0 {
				g[r][c] = 1
			} else {
				g[r][c] = 0
			}
		}
	}
	return g
}

// Shade replaces every non-zero cell with weight w.
func Shade(g Grid, w int) Grid {
	for r := 0; r < Rows; r++ {
		for c := 0; c < Cols; c++ {
			if g[r][c] != 0 {
				g[r][c] = w
			}
		}
	}
	return g
}

// Filled counts the cells holding exactly w.
func (g Grid) Filled(w int) int {
	n := 0
	for r := 0; r < Rows; r++ {
		for c := 0; c < Cols; c++ {
			if g[r][c] == w {
				n++
			}
		}
	}
	return n
}

// TotalWeight sums every cell.
func (g Grid) TotalWeight() int {
	total := 0
	for r := 0; r < Rows; r++ {
		for c := 0; c < Cols; c++ {
			total += g[r][c]
		}
	}
	return total
}

// Cells lists every cell in column-major order: all rows of column 0, then
// column 1, and so on. This is chronological order on the heatmap.
func (g Grid) Cells() []Cell {
	cells := make([]Cell, 0, Rows*Cols)
	for c := 0; c < Cols; c++ {
		for r := 0; r < Rows; r++ {
			cells = append(cells, Cell{Col: c, Row: r, Weight: g[r][c]})
		}
	}
	return cells
}
