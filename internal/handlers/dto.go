package handlers

import (
	"strconv"

	"github.com/gorilla/schema"

	"github.com/mvanko/sudoku-server/internal/repository"
	"github.com/mvanko/sudoku-server/internal/sudoku"
)

type GameSessionDTO struct {
	GameSessionID string    `json:"game_session_id"`
	Givens        [9][9]int `json:"givens"`
	Board         [9][9]int `json:"board"`
	Won           bool      `json:"won"`
	Forfeited     bool      `json:"forfeited"`
	UsedSolve     bool      `json:"used_solve"`
	StartedAt     int64     `json:"started_at"`
	EndedAt       *int64    `json:"ended_at,omitempty"`
}

func NewGameSessionDTO(
	session *repository.GameSession, game *sudoku.GameState,
) *GameSessionDTO {
	var endedAt *int64
	if session.EndedAt != nil {
		e := session.EndedAt.UnixMilli()
		endedAt = &e
	}
	return &GameSessionDTO{
		GameSessionID: strconv.FormatInt(session.GameSessionID, 10),
		Givens:        game.Givens,
		Board:         game.Board,
		Won:           game.Won,
		Forfeited:     game.Forfeited,
		UsedSolve:     game.UsedSolve,
		StartedAt:     session.StartedAt.UnixMilli(),
		EndedAt:       endedAt,
	}
}

type BoardDTO struct {
	Board [9][9]int `json:"board"`
}

type MoveDTO struct {
	Row   int `schema:"row,required"`
	Col   int `schema:"col,required"`
	Value int `schema:"value"`
}

func ParseMoveDTO(src map[string][]string) (MoveDTO, error) {
	var dto MoveDTO
	dec := schema.NewDecoder()
	dec.IgnoreUnknownKeys(true)
	err := dec.Decode(&dto, src)
	return dto, err
}

type RecordsFilterDTO struct {
	Username *string `schema:"username"`
	Givens   *string `schema:"givens"`
}

func ParseRecordsFilterDTO(src map[string][]string) (RecordsFilterDTO, error) {
	var dto RecordsFilterDTO
	dec := schema.NewDecoder()
	dec.IgnoreUnknownKeys(true)
	err := dec.Decode(&dto, src)
	return dto, err
}
