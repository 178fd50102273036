package sudoku

import (
	"bytes"
	"encoding/gob"
	"errors"
)

var (
	ErrUnsolvable = errors.New("puzzle has no solution")
	ErrOutOfRange = errors.New("cell or digit out of range")
	ErrGivenCell  = errors.New("cell is a given clue")
	ErrFinished   = errors.New("game is finished")
)

// GameState is one interactive play-through of a puzzle. The solution is
// computed once at creation and kept alongside the player board for move
// checking and reveals.
type GameState struct {
	Won       bool
	Forfeited bool
	UsedSolve bool
	Givens    [9][9]int
	Board     [9][9]int
	Solution  [9][9]int
}

// NewGame starts a play-through of the given clues. The puzzle is solved
// up front; clues admitting no solution are rejected with ErrUnsolvable.
func NewGame(clues [9][9]int) (*GameState, error) {
	g := NewGrid(clues)
	if !g.Solve() {
		return nil, ErrUnsolvable
	}
	s := &GameState{Solution: g.Cells}
	for r := range 9 {
		for c := range 9 {
			if v := clues[r][c]; 1 <= v && v <= 9 {
				s.Givens[r][c] = v
				s.Board[r][c] = v
			}
		}
	}
	return s, nil
}

func DecodeGameState(buf []byte) (*GameState, error) {
	var s GameState
	if err := gob.NewDecoder(bytes.NewReader(buf)).Decode(&s); err != nil {
		return nil, err
	}
	return &s, nil
}

func (s *GameState) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(s); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (s *GameState) Finished() bool {
	return s.Won || s.Forfeited
}

// Move writes v into (r, c) on the player board; v == 0 clears the cell.
// Given cells cannot be touched. Filling the last cell correctly sets
// Won.
func (s *GameState) Move(r, c, v int) error {
	if s.Finished() {
		return ErrFinished
	}
	if r < 0 || r > 8 || c < 0 || c > 8 || v < 0 || v > 9 {
		return ErrOutOfRange
	}
	if s.Givens[r][c] != 0 {
		return ErrGivenCell
	}
	s.Board[r][c] = v
	if s.Board == s.Solution {
		s.Won = true
	}
	return nil
}

// HintInfo points at a hidden single on the current board.
type HintInfo struct {
	Row   int `json:"row"`
	Col   int `json:"col"`
	Value int `json:"value"`
}

// Hint returns a digit that has a unique legal cell in some unit of the
// current board, or false when no hidden single exists. Hints derived
// this way are always consistent with the stored solution as long as the
// board itself is.
func (s *GameState) Hint() (HintInfo, bool) {
	g := NewGrid(s.Board)
	if r, c, v, ok := g.hiddenSingle(); ok {
		return HintInfo{Row: r, Col: c, Value: v}, true
	}
	return HintInfo{}, false
}

// SolveBoard fills the board from the stored solution and records that
// the solver was used.
func (s *GameState) SolveBoard() {
	if s.Finished() {
		return
	}
	s.Board = s.Solution
	s.Won = true
	s.UsedSolve = true
}

// Forfeit reveals the solution without crediting a win.
func (s *GameState) Forfeit() {
	if s.Finished() {
		return
	}
	s.Board = s.Solution
	s.Forfeited = true
}
