package sudoku

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewGridIgnoresOutOfRangeValues(t *testing.T) {
	var values [9][9]int
	values[0][0] = 5
	values[1][1] = 0
	values[2][2] = -3
	values[3][3] = 10
	values[4][4] = 42

	g := NewGrid(values)
	assert.Equal(t, 5, g.Cells[0][0])
	assert.Equal(t, 0, g.Cells[2][2])
	assert.Equal(t, 0, g.Cells[3][3])
	assert.Equal(t, 0, g.Cells[4][4])
}

func TestPlaceableChecksAllThreeUnits(t *testing.T) {
	g := NewGrid([9][9]int{})
	g.Place(0, 0, 5)

	assert.False(t, g.Placeable(0, 8, 5), "same row")
	assert.False(t, g.Placeable(8, 0, 5), "same column")
	assert.False(t, g.Placeable(2, 2, 5), "same block")
	assert.True(t, g.Placeable(4, 4, 5))
	assert.True(t, g.Placeable(0, 8, 6))

	// Placeable does not look at the cell's own value.
	assert.True(t, g.Placeable(0, 0, 6))
}

func TestPlaceUnplaceRoundTrip(t *testing.T) {
	g := NewGrid([9][9]int{})
	g.Place(4, 7, 3)
	assert.False(t, g.Placeable(4, 0, 3))

	g.Unplace(4, 7, 3)
	assert.True(t, g.Placeable(4, 0, 3))
	// Unplace leaves the cell value for the caller to reset.
	assert.Equal(t, 3, g.Cells[4][7])
}

func TestPlaceZeroIsNoop(t *testing.T) {
	g := NewGrid([9][9]int{})
	g.Place(1, 1, 0)
	g.Unplace(1, 1, 0)
	for v := 1; v <= 9; v++ {
		assert.True(t, g.Placeable(1, 1, v))
	}
}

func TestBlockIndex(t *testing.T) {
	assert.Equal(t, 0, block(0, 0))
	assert.Equal(t, 2, block(1, 8))
	assert.Equal(t, 4, block(4, 4))
	assert.Equal(t, 6, block(8, 0))
	assert.Equal(t, 8, block(8, 8))
}
