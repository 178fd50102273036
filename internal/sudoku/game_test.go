package sudoku

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGameKeepsGivensAndSolution(t *testing.T) {
	clues := mustBoard(t, classic)
	game, err := NewGame(clues)
	require.NoError(t, err)

	assert.Equal(t, clues, game.Givens)
	assert.Equal(t, clues, game.Board)
	assert.Equal(t, mustBoard(t, classicSolved), game.Solution)
	assert.False(t, game.Finished())
}

func TestNewGameRejectsUnsolvableClues(t *testing.T) {
	var cells [9][9]int
	for r, v := range []int{1, 2, 3, 4, 6, 7, 8, 9} {
		cells[r+1][0] = v
	}
	cells[0][1] = 5

	_, err := NewGame(cells)
	assert.ErrorIs(t, err, ErrUnsolvable)
}

func TestMove(t *testing.T) {
	game, err := NewGame(mustBoard(t, classic))
	require.NoError(t, err)

	assert.ErrorIs(t, game.Move(0, 0, 1), ErrGivenCell)
	assert.ErrorIs(t, game.Move(9, 0, 1), ErrOutOfRange)
	assert.ErrorIs(t, game.Move(0, -1, 1), ErrOutOfRange)
	assert.ErrorIs(t, game.Move(0, 2, 10), ErrOutOfRange)

	require.NoError(t, game.Move(0, 2, 1))
	assert.Equal(t, 1, game.Board[0][2])
	require.NoError(t, game.Move(0, 2, 0))
	assert.Equal(t, 0, game.Board[0][2])
}

func TestMovesToCompletionWin(t *testing.T) {
	game, err := NewGame(mustBoard(t, classic))
	require.NoError(t, err)

	for r := range 9 {
		for c := range 9 {
			if game.Givens[r][c] == 0 {
				require.NoError(t, game.Move(r, c, game.Solution[r][c]))
			}
		}
	}
	assert.True(t, game.Won)
	assert.False(t, game.UsedSolve)
	assert.ErrorIs(t, game.Move(0, 2, 0), ErrFinished)
}

func TestHintAgreesWithSolution(t *testing.T) {
	game, err := NewGame(mustBoard(t, classic))
	require.NoError(t, err)

	hint, ok := game.Hint()
	require.True(t, ok)
	assert.Equal(t, game.Solution[hint.Row][hint.Col], hint.Value)
	assert.Equal(t, 0, game.Board[hint.Row][hint.Col])
}

func TestSolveBoard(t *testing.T) {
	game, err := NewGame(mustBoard(t, classic))
	require.NoError(t, err)

	game.SolveBoard()
	assert.Equal(t, game.Solution, game.Board)
	assert.True(t, game.Won)
	assert.True(t, game.UsedSolve)
}

func TestForfeit(t *testing.T) {
	game, err := NewGame(mustBoard(t, classic))
	require.NoError(t, err)

	game.Forfeit()
	assert.Equal(t, game.Solution, game.Board)
	assert.True(t, game.Forfeited)
	assert.False(t, game.Won)

	// Flags are final once the game is over.
	game.SolveBoard()
	assert.False(t, game.Won)
}

func TestGameStateBytesRoundTrip(t *testing.T) {
	game, err := NewGame(mustBoard(t, classic))
	require.NoError(t, err)
	require.NoError(t, game.Move(0, 2, 4))

	buf, err := game.Bytes()
	require.NoError(t, err)

	decoded, err := DecodeGameState(buf)
	require.NoError(t, err)
	assert.Equal(t, game, decoded)
}
