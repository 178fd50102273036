package sudoku

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The classic example puzzle and its unique solution.
const (
	classic = "" +
		"530070000" +
		"600195000" +
		"098000060" +
		"800060003" +
		"400803001" +
		"700020006" +
		"060000280" +
		"000419005" +
		"000080079"
	classicSolved = "" +
		"534678912" +
		"672195348" +
		"198342567" +
		"859761423" +
		"426853791" +
		"713924856" +
		"961537284" +
		"287419635" +
		"345286179"
)

// Publicly documented hard puzzles: a 17-clue minimal puzzle and AI
// Escargot.
var hardPuzzles = map[string]string{
	"17-clue": "" +
		"000000010400000000020000000000050407" +
		"008000300001090000300400200050100000" +
		"000806000",
	"escargot": "" +
		"100007090030020008009600500005300900" +
		"010080002600004000300000010040000007" +
		"007000300",
}

func mustBoard(t *testing.T, s string) [9][9]int {
	t.Helper()
	require.Len(t, s, 81)
	var cells [9][9]int
	for i := range 81 {
		if ch := s[i]; '1' <= ch && ch <= '9' {
			cells[i/9][i%9] = int(ch - '0')
		}
	}
	return cells
}

// assertValidSolution checks that every row, column and block contains
// each digit exactly once.
func assertValidSolution(t *testing.T, cells [9][9]int) {
	t.Helper()
	full := 0b1111111110 // bits 1..9
	for r := range 9 {
		m := 0
		for c := range 9 {
			m |= 1 << cells[r][c]
		}
		assert.Equal(t, full, m, "row %d", r)
	}
	for c := range 9 {
		m := 0
		for r := range 9 {
			m |= 1 << cells[r][c]
		}
		assert.Equal(t, full, m, "col %d", c)
	}
	for b := range 9 {
		m := 0
		for r := (b / 3) * 3; r < (b/3)*3+3; r++ {
			for c := (b % 3) * 3; c < (b%3)*3+3; c++ {
				m |= 1 << cells[r][c]
			}
		}
		assert.Equal(t, full, m, "block %d", b)
	}
}

func TestSolveClassic(t *testing.T) {
	g := NewGrid(mustBoard(t, classic))
	require.True(t, g.Solve())
	assert.Equal(t, mustBoard(t, classicSolved), g.Cells)
}

func TestSolveHardPuzzles(t *testing.T) {
	for name, puzzle := range hardPuzzles {
		t.Run(name, func(t *testing.T) {
			clues := mustBoard(t, puzzle)
			g := NewGrid(clues)
			require.True(t, g.Solve())
			assertValidSolution(t, g.Cells)
			for r := range 9 {
				for c := range 9 {
					if clues[r][c] != 0 {
						assert.Equal(t, clues[r][c], g.Cells[r][c],
							"clue at %d:%d changed", r, c)
					}
				}
			}
		})
	}
}

func TestSolveDeterministic(t *testing.T) {
	// An empty grid admits many solutions; the engine must always pick
	// the same one.
	var empty [9][9]int
	first := NewGrid(empty)
	require.True(t, first.Solve())
	assertValidSolution(t, first.Cells)

	second := NewGrid(empty)
	require.True(t, second.Solve())
	assert.Equal(t, first.Cells, second.Cells)
}

func TestSolveAlreadySolved(t *testing.T) {
	solved := mustBoard(t, classicSolved)
	g := NewGrid(solved)
	require.True(t, g.Solve())
	assert.Equal(t, solved, g.Cells)
}

func TestSolveUnsolvable(t *testing.T) {
	// Column 0 pins digits 1,2,3,4,6,7,8,9 below the top cell and the
	// neighbouring given 5 blocks the block, leaving (0,0) with no legal
	// digit at all.
	var cells [9][9]int
	for r, v := range []int{1, 2, 3, 4, 6, 7, 8, 9} {
		cells[r+1][0] = v
	}
	cells[0][1] = 5

	g := NewGrid(cells)
	assert.False(t, g.Solve())
	assert.Equal(t, 0, g.Cells[0][0])
}

func TestSolveUnsolvableDuplicateInRow(t *testing.T) {
	// Two 5s in one row of an otherwise empty grid. The clash is visible
	// in the givens alone and must fail at once; left to the search it
	// only surfaces while filling the final column, behind an enormous
	// prefix space.
	var cells [9][9]int
	cells[0][0] = 5
	cells[0][1] = 5

	done := make(chan bool, 1)
	go func() {
		g := NewGrid(cells)
		done <- g.Solve()
	}()

	select {
	case solved := <-done:
		assert.False(t, solved)
	case <-time.After(5 * time.Second):
		t.Fatal("solve did not return on contradictory givens")
	}
}

func TestSolveUnsolvableNearComplete(t *testing.T) {
	// Take the solved classic grid, empty its corner and replace the
	// neighbouring 3 with a duplicate 5; the corner's only remaining
	// digit now clashes with its column.
	cells := mustBoard(t, classicSolved)
	cells[0][0] = 0
	cells[0][1] = 5

	g := NewGrid(cells)
	assert.False(t, g.Solve())
}

func TestLogicalFillsForcedCell(t *testing.T) {
	// One empty cell whose digit is fixed by its row: deduction alone
	// must fill it.
	cells := mustBoard(t, classicSolved)
	cells[4][4] = 0

	g := NewGrid(cells)
	g.solveLogical()
	assert.Equal(t, mustBoard(t, classicSolved), g.Cells)
}

func TestLogicalNeverGuesses(t *testing.T) {
	// Every digit deduction places must agree with the unique solution.
	g := NewGrid(mustBoard(t, classic))
	g.solveLogical()
	solved := mustBoard(t, classicSolved)
	for r := range 9 {
		for c := range 9 {
			if g.Cells[r][c] != 0 {
				assert.Equal(t, solved[r][c], g.Cells[r][c], "cell %d:%d", r, c)
			}
		}
	}
}

func TestHiddenSingleAgreesWithSolution(t *testing.T) {
	g := NewGrid(mustBoard(t, classic))
	r, c, v, ok := g.hiddenSingle()
	require.True(t, ok)
	assert.Equal(t, mustBoard(t, classicSolved)[r][c], v)
}
