package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/websocket"

	"github.com/mvanko/sudoku-server/internal/sudoku"
)

// Commands accepted on the game channel, one per line:
//
//	g        resend the session
//	m r c v  place digit v at (r, c); v 0 clears the cell
//	h        ask for a hint (replies with a hint message, no state change)
//	s        fill the board from the solver
//	f        forfeit
var commandNargs = map[string]int{
	"g": 0,
	"m": 3,
	"h": 0,
	"s": 0,
	"f": 0,
}

func parseCommand(game *sudoku.GameState, c string) (mutated bool, err error) {
	parts := strings.Fields(c)
	if len(parts) == 0 {
		return false, fmt.Errorf("empty command")
	}

	nargs, ok := commandNargs[parts[0]]
	if !ok {
		return false, fmt.Errorf("unknown command")
	}
	if nargs != len(parts)-1 {
		return false, fmt.Errorf("invalid number of arguments")
	}

	switch parts[0] {
	case "g", "h":
		return false, nil
	case "m":
		args := make([]int, 3)
		for i, part := range parts[1:] {
			if args[i], err = strconv.Atoi(part); err != nil {
				return false, fmt.Errorf("arguments must be ints")
			}
		}
		return true, game.Move(args[0], args[1], args[2])
	case "s":
		game.SolveBoard()
		return true, nil
	case "f":
		game.Forfeit()
		return true, nil
	}
	return false, fmt.Errorf("invalid command")
}

func (g Game) ConnectWS(w http.ResponseWriter, r *http.Request) {
	session, game, ok := g.fetchGame(w, r)
	if !ok {
		return
	}

	c, err := g.ws.Upgrader.Upgrade(w, r, nil)
	if err != nil {
		g.log.Error("unable to upgrade: ", err)
		return
	}
	defer c.Close()

	for {
		mt, message, err := c.ReadMessage()
		if err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure) {
				g.log.Warn("abnormal ws break: ", err)
			}
			break
		}
		if mt != websocket.TextMessage {
			break
		}

		mutated := false
		text := strings.TrimSpace(string(message))
		for _, line := range strings.Split(text, "\n") {
			if strings.TrimSpace(line) == "h" {
				hint, found := game.Hint()
				dto := HintDTO{Found: found}
				if found {
					dto.Hint = &hint
				}
				if err := c.WriteJSON(dto); err != nil {
					g.log.Error("unable to write json: ", err)
					return
				}
				continue
			}

			lineMutated, err := parseCommand(game, line)
			if err != nil {
				if werr := c.WriteJSON(wrapError(err)); werr != nil {
					g.log.Error("unable to write json: ", werr)
					return
				}
				continue
			}
			mutated = mutated || lineMutated
		}

		if mutated {
			// The connection is hijacked; persistence failures can only
			// be logged, never written as an HTTP status.
			if err := g.persistGame(r.Context(), session, game); err != nil {
				g.log.Error(err)
				return
			}
		}

		if err := c.WriteJSON(NewGameSessionDTO(session, game)); err != nil {
			g.log.Error("unable to write json: ", err)
			break
		}
	}
}
