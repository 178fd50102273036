package app

import "github.com/mvanko/sudoku-server/internal/handlers"

func (a *App) loadRoutes() {
	auth := handlers.NewAuth(a.log, a.db, a.cookies, a.jwt)
	game := handlers.NewGame(a.log, a.db, a.ws)

	a.router.HandleFunc("POST /v1/register", auth.Register)
	a.router.HandleFunc("POST /v1/login", auth.Login)
	a.router.HandleFunc("POST /v1/logout", auth.Logout)
	a.router.HandleFunc("GET /v1/status", auth.Status)

	a.router.HandleFunc("POST /v1/solve", game.Solve)

	a.router.HandleFunc("POST /v1/game", game.Create)
	a.router.HandleFunc("GET /v1/game/{id}", game.Fetch)
	a.router.HandleFunc("POST /v1/game/{id}/move", game.Move)
	a.router.HandleFunc("GET /v1/game/{id}/hint", game.Hint)
	a.router.HandleFunc("POST /v1/game/{id}/solve", game.SolveSession)
	a.router.HandleFunc("POST /v1/game/{id}/forfeit", game.Forfeit)
	a.router.HandleFunc("GET /v1/records", game.Records)

	a.router.HandleFunc("/v1/game/{id}/connect", game.ConnectWS)
}
