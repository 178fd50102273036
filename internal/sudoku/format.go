package sudoku

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ParseClues reads whitespace-separated "row col value" triples, 1-based,
// until end of input. Triples with any component outside 1..9 are skipped
// rather than rejected; a later triple for the same cell overwrites an
// earlier one.
func ParseClues(rd io.Reader) ([9][9]int, error) {
	var cells [9][9]int
	for {
		var row, col, value int
		_, err := fmt.Fscan(rd, &row, &col, &value)
		if errors.Is(err, io.EOF) {
			return cells, nil
		}
		if err != nil {
			return cells, fmt.Errorf("malformed clue list: %w", err)
		}
		if row < 1 || row > 9 || col < 1 || col > 9 || value < 1 || value > 9 {
			continue
		}
		cells[row-1][col-1] = value
	}
}

// Render writes a label line followed by a fixed-width rendering of the
// grid, with separator columns and rows between blocks.
func Render(w io.Writer, label string, cells [9][9]int) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, label)
	for r := range 9 {
		for c := range 9 {
			fmt.Fprintf(bw, " *%d* ", cells[r][c])
			if (c+1)%3 == 0 && c != 8 {
				fmt.Fprint(bw, " | ")
			}
		}
		if (r+1)%3 == 0 && r != 8 {
			fmt.Fprint(bw, "\n---------------------------------------------------\n")
		} else {
			fmt.Fprintln(bw)
		}
	}
	return bw.Flush()
}

// BoardString packs a board into the 81-character digit string used for
// storage and filtering, '0' marking empty cells.
func BoardString(cells [9][9]int) string {
	var b strings.Builder
	b.Grow(81)
	for r := range 9 {
		for c := range 9 {
			v := cells[r][c]
			if v < 1 || v > 9 {
				v = 0
			}
			b.WriteByte(byte('0' + v))
		}
	}
	return b.String()
}
