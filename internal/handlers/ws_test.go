package handlers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mvanko/sudoku-server/internal/sudoku"
)

func TestParseCommand(t *testing.T) {
	game, err := sudoku.NewGame([9][9]int{})
	require.NoError(t, err)

	mutated, err := parseCommand(game, "g")
	require.NoError(t, err)
	assert.False(t, mutated)

	mutated, err = parseCommand(game, "m 0 0 5")
	require.NoError(t, err)
	assert.True(t, mutated)
	assert.Equal(t, 5, game.Board[0][0])

	mutated, err = parseCommand(game, "f")
	require.NoError(t, err)
	assert.True(t, mutated)
	assert.True(t, game.Forfeited)
}

func TestParseCommandRejectsBadInput(t *testing.T) {
	game, err := sudoku.NewGame([9][9]int{})
	require.NoError(t, err)

	for _, cmd := range []string{"", "x", "m 0 0", "m a b c", "g 1"} {
		_, err := parseCommand(game, cmd)
		assert.Error(t, err, "command %q", cmd)
	}
}
