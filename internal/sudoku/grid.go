package sudoku

// Grid is the mutable solving state for a single 9x9 puzzle: the cell
// values plus three presence-tag matrices recording which digits already
// occupy each row, column and block. All mutation is in place; a Grid is
// owned by one solving call at a time.
type Grid struct {
	Cells [9][9]int

	// rowTag[r][d] and blkTag[b][d] are unit-first; colTag is digit-first,
	// colTag[d][c]. Block index b = (r/3)*3 + c/3.
	rowTag [9][9]bool
	colTag [9][9]bool
	blkTag [9][9]bool

	// contradictory is raised when two givens clash in a unit. Such a grid
	// has no solution and search must not be attempted: a sparse clash
	// (say two equal digits in one row) can hide the contradiction behind
	// an astronomical search prefix.
	contradictory bool
}

func block(r, c int) int {
	return (r/3)*3 + c/3
}

// NewGrid builds a grid from initial values. Entries outside 1..9 are
// treated as empty cells. Conflicting givens never produce an error
// here; they mark the grid contradictory so that Solve fails at once.
func NewGrid(values [9][9]int) *Grid {
	g := &Grid{}
	for r := range 9 {
		for c := range 9 {
			if v := values[r][c]; 1 <= v && v <= 9 {
				if !g.Placeable(r, c, v) {
					g.contradictory = true
				}
				g.Place(r, c, v)
			}
		}
	}
	return g
}

// Placeable reports whether digit v may occupy (r, c) without clashing
// with its row, column or block. It does not check that the cell itself
// is empty; that is the caller's test.
func (g *Grid) Placeable(r, c, v int) bool {
	d := v - 1
	return !g.rowTag[r][d] && !g.colTag[d][c] && !g.blkTag[block(r, c)][d]
}

// Place writes v into (r, c) and raises its three tags. Placing 0 is a
// no-op so callers may pass "empty" freely.
func (g *Grid) Place(r, c, v int) {
	if v == 0 {
		return
	}
	d := v - 1
	g.Cells[r][c] = v
	g.rowTag[r][d] = true
	g.colTag[d][c] = true
	g.blkTag[block(r, c)][d] = true
}

// Unplace clears the tags raised for v at (r, c). The cell value itself
// is left to the caller; backtracking clears tags and resets the cell as
// separate steps.
func (g *Grid) Unplace(r, c, v int) {
	if v == 0 {
		return
	}
	d := v - 1
	g.rowTag[r][d] = false
	g.colTag[d][c] = false
	g.blkTag[block(r, c)][d] = false
}
