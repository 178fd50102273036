package sudoku

// Solve fills the grid in place and reports whether a complete solution
// was found. Hidden singles are propagated to a fixed point first, then
// the remaining cells are filled by exhaustive backtracking. Digits are
// tried in ascending order and the first success wins, so the result is
// deterministic. When Solve returns false the attempted cells have been
// reset to 0 and the grid contents must not be treated as a partial
// solution. A grid whose givens already clash fails immediately.
func (g *Grid) Solve() bool {
	if g.contradictory {
		return false
	}
	g.solveLogical()
	return g.solveBacktrack(0, 0)
}

// solveLogical places every digit that is the unique legal candidate
// within some block, row or column, rescanning until a full pass places
// nothing. Each placement is forced by the uniqueness test, so this phase
// never guesses; it may leave the puzzle unfinished. Placements raise
// tags immediately, so later scans in the same pass see them.
func (g *Grid) solveLogical() {
	for placed := true; placed; {
		placed = false
		for u := range 9 {
			for v := 1; v <= 9; v++ {
				if r, c, ok := g.singleInBlock(u, v); ok {
					g.Place(r, c, v)
					placed = true
				}
			}
		}
		for u := range 9 {
			for v := 1; v <= 9; v++ {
				if r, c, ok := g.singleInRow(u, v); ok {
					g.Place(r, c, v)
					placed = true
				}
			}
		}
		for u := range 9 {
			for v := 1; v <= 9; v++ {
				if r, c, ok := g.singleInCol(u, v); ok {
					g.Place(r, c, v)
					placed = true
				}
			}
		}
	}
}

// singleInBlock returns the one empty cell of block b where v is legal,
// if exactly one such cell exists.
func (g *Grid) singleInBlock(b, v int) (int, int, bool) {
	row, col, n := 0, 0, 0
	for r := (b / 3) * 3; r < (b/3)*3+3; r++ {
		for c := (b % 3) * 3; c < (b%3)*3+3; c++ {
			if g.Cells[r][c] > 0 || !g.Placeable(r, c, v) {
				continue
			}
			row, col = r, c
			if n++; n > 1 {
				return 0, 0, false
			}
		}
	}
	return row, col, n == 1
}

func (g *Grid) singleInRow(r, v int) (int, int, bool) {
	col, n := 0, 0
	for c := range 9 {
		if g.Cells[r][c] > 0 || !g.Placeable(r, c, v) {
			continue
		}
		col = c
		if n++; n > 1 {
			return 0, 0, false
		}
	}
	return r, col, n == 1
}

func (g *Grid) singleInCol(c, v int) (int, int, bool) {
	row, n := 0, 0
	for r := range 9 {
		if g.Cells[r][c] > 0 || !g.Placeable(r, c, v) {
			continue
		}
		row = r
		if n++; n > 1 {
			return 0, 0, false
		}
	}
	return row, c, n == 1
}

// hiddenSingle finds the first digit with a unique legal cell in some
// unit, scanning blocks, then rows, then columns. It does not place.
func (g *Grid) hiddenSingle() (row, col, v int, ok bool) {
	for u := range 9 {
		for v := 1; v <= 9; v++ {
			if r, c, ok := g.singleInBlock(u, v); ok {
				return r, c, v, true
			}
		}
	}
	for u := range 9 {
		for v := 1; v <= 9; v++ {
			if r, c, ok := g.singleInRow(u, v); ok {
				return r, c, v, true
			}
		}
	}
	for u := range 9 {
		for v := 1; v <= 9; v++ {
			if r, c, ok := g.singleInCol(u, v); ok {
				return r, c, v, true
			}
		}
	}
	return 0, 0, 0, false
}

// solveBacktrack runs depth-first search over the cells of column c from
// row r downward, then the following columns. Filled cells are skipped.
// On failure the current cell is reset to 0 and false propagates to the
// caller, which resumes with its next candidate digit.
func (g *Grid) solveBacktrack(r, c int) bool {
	if r == 9 {
		r = 0
		if c++; c == 9 {
			return true
		}
	}
	if g.Cells[r][c] > 0 {
		return g.solveBacktrack(r+1, c)
	}
	for v := 1; v <= 9; v++ {
		if !g.Placeable(r, c, v) {
			continue
		}
		g.Place(r, c, v)
		if g.solveBacktrack(r+1, c) {
			return true
		}
		g.Unplace(r, c, v)
	}
	g.Cells[r][c] = 0
	return false
}
