package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"

	"github.com/mvanko/sudoku-server/internal/config"
	"github.com/mvanko/sudoku-server/internal/middleware"
	"github.com/mvanko/sudoku-server/internal/repository"
	"github.com/mvanko/sudoku-server/internal/sudoku"
)

type Game struct {
	log  *logrus.Logger
	repo *repository.Queries
	ws   *config.WebSocket
}

func NewGame(log *logrus.Logger, db *pgxpool.Pool, ws *config.WebSocket) *Game {
	return &Game{
		log:  log,
		repo: repository.New(db),
		ws:   ws,
	}
}

// parseBoard accepts either a JSON body with a "board" matrix or a plain
// text body of 1-based "row col value" clue triples.
func parseBoard(r *http.Request) ([9][9]int, error) {
	ct := r.Header.Get("Content-Type")
	if strings.HasPrefix(ct, "application/json") {
		var dto BoardDTO
		if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
			return dto.Board, err
		}
		return dto.Board, nil
	}
	return sudoku.ParseClues(r.Body)
}

// Solve is the stateless endpoint: it takes a puzzle and returns the
// solved board without touching the database.
func (g Game) Solve(w http.ResponseWriter, r *http.Request) {
	clues, err := parseBoard(r)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		sendJSONOrLog(w, g.log, wrapError(err))
		return
	}

	grid := sudoku.NewGrid(clues)
	if !grid.Solve() {
		w.WriteHeader(http.StatusUnprocessableEntity)
		sendJSONOrLog(w, g.log, wrapError(sudoku.ErrUnsolvable))
		return
	}

	sendJSONOrLog(w, g.log, BoardDTO{Board: grid.Cells})
}

func (g Game) Create(w http.ResponseWriter, r *http.Request) {
	clues, err := parseBoard(r)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		sendJSONOrLog(w, g.log, wrapError(err))
		return
	}

	game, err := sudoku.NewGame(clues)
	if errors.Is(err, sudoku.ErrUnsolvable) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		sendJSONOrLog(w, g.log, wrapError(err))
		return
	}
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		g.log.Error("unable to create game: ", err)
		return
	}

	state, err := game.Bytes()
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		g.log.Error("unable to encode game state: ", err)
		return
	}

	params := repository.CreateGameSessionParams{
		Givens: sudoku.BoardString(game.Givens),
		State:  state,
	}
	if claims, ok := middleware.PlayerClaims(r.Context()); ok {
		params.PlayerID = &claims.PlayerID
	}

	session, err := g.repo.CreateGameSession(r.Context(), params)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		g.log.Error("unable to create game session: ", err)
		return
	}

	sendJSONOrLog(w, g.log, NewGameSessionDTO(session, game))
}

// fetchGame loads a session and its decoded state, writing the error
// response itself when that fails.
func (g Game) fetchGame(
	w http.ResponseWriter, r *http.Request,
) (*repository.GameSession, *sudoku.GameState, bool) {
	sessionID, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return nil, nil, false
	}

	session, err := g.repo.FetchGameSession(r.Context(), sessionID)
	if errors.Is(err, pgx.ErrNoRows) {
		w.WriteHeader(http.StatusNotFound)
		return nil, nil, false
	}
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		g.log.Error("unable to fetch session from db: ", err)
		return nil, nil, false
	}

	game, err := sudoku.DecodeGameState(session.State)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		g.log.Error("db returned invalid game_session.state: ", err)
		return nil, nil, false
	}
	return session, game, true
}

// persistGame stores the mutated state and finish flags, stamping
// ended_at the first time the game finishes. It writes no response, so
// it is safe after the connection has been hijacked.
func (g Game) persistGame(
	ctx context.Context,
	session *repository.GameSession, game *sudoku.GameState,
) error {
	state, err := game.Bytes()
	if err != nil {
		return fmt.Errorf("unable to encode game state: %w", err)
	}

	params := repository.UpdateGameSessionParams{
		Won:       &game.Won,
		Forfeited: &game.Forfeited,
		UsedSolve: &game.UsedSolve,
		State:     &state,
	}
	if game.Finished() && session.EndedAt == nil {
		now := time.Now().UTC()
		params.EndedAt = &now
	}

	updated, err := g.repo.UpdateGameSession(ctx, session.GameSessionID, params)
	if err != nil {
		return fmt.Errorf("unable to update session in db: %w", err)
	}
	*session = *updated
	return nil
}

func (g Game) saveGame(
	w http.ResponseWriter, r *http.Request,
	session *repository.GameSession, game *sudoku.GameState,
) bool {
	if err := g.persistGame(r.Context(), session, game); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		g.log.Error(err)
		return false
	}
	return true
}

func (g Game) Fetch(w http.ResponseWriter, r *http.Request) {
	session, game, ok := g.fetchGame(w, r)
	if !ok {
		return
	}
	sendJSONOrLog(w, g.log, NewGameSessionDTO(session, game))
}

func (g Game) Move(w http.ResponseWriter, r *http.Request) {
	dto, err := ParseMoveDTO(r.URL.Query())
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		sendJSONOrLog(w, g.log, wrapError(err))
		return
	}

	session, game, ok := g.fetchGame(w, r)
	if !ok {
		return
	}

	if err := game.Move(dto.Row, dto.Col, dto.Value); err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, sudoku.ErrFinished) {
			status = http.StatusConflict
		}
		w.WriteHeader(status)
		sendJSONOrLog(w, g.log, wrapError(err))
		return
	}

	if !g.saveGame(w, r, session, game) {
		return
	}
	sendJSONOrLog(w, g.log, NewGameSessionDTO(session, game))
}

type HintDTO struct {
	Found bool             `json:"found"`
	Hint  *sudoku.HintInfo `json:"hint,omitempty"`
}

func (g Game) Hint(w http.ResponseWriter, r *http.Request) {
	_, game, ok := g.fetchGame(w, r)
	if !ok {
		return
	}

	if hint, found := game.Hint(); found {
		sendJSONOrLog(w, g.log, HintDTO{Found: true, Hint: &hint})
		return
	}
	sendJSONOrLog(w, g.log, HintDTO{Found: false})
}

func (g Game) SolveSession(w http.ResponseWriter, r *http.Request) {
	session, game, ok := g.fetchGame(w, r)
	if !ok {
		return
	}

	game.SolveBoard()

	if !g.saveGame(w, r, session, game) {
		return
	}
	sendJSONOrLog(w, g.log, NewGameSessionDTO(session, game))
}

func (g Game) Forfeit(w http.ResponseWriter, r *http.Request) {
	session, game, ok := g.fetchGame(w, r)
	if !ok {
		return
	}

	game.Forfeit()

	if !g.saveGame(w, r, session, game) {
		return
	}
	sendJSONOrLog(w, g.log, NewGameSessionDTO(session, game))
}

func (g Game) Records(w http.ResponseWriter, r *http.Request) {
	dto, err := ParseRecordsFilterDTO(r.URL.Query())
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		sendJSONOrLog(w, g.log, wrapError(err))
		return
	}

	records, err := g.repo.GetRecords(r.Context(), repository.RecordFilter{
		Username: dto.Username,
		Givens:   dto.Givens,
	})
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		g.log.Error("unable to fetch records: ", err)
		return
	}
	sendJSONOrLog(w, g.log, records)
}
