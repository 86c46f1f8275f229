package app

import (
	"github.com/vancomm/picross-server/internal/config"
	"github.com/vancomm/picross-server/internal/handlers"
)

func (a *App) loadRoutes(jwt *config.JWT) {
	auth := handlers.NewAuthHandler(a.log, a.db, a.cookies, jwt)
	puzzle := handlers.NewPuzzleHandler(a.log, a.db)
	game := handlers.NewGameHandler(a.log, a.db, a.ws)
	records := handlers.NewRecordsHandler(a.log, a.db)

	a.router.HandleFunc("POST /v1/register", auth.Register)
	a.router.HandleFunc("POST /v1/login", auth.Login)
	a.router.HandleFunc("POST /v1/logout", auth.Logout)
	a.router.HandleFunc("GET /v1/status", auth.Status)

	a.router.HandleFunc("POST /v1/puzzle", puzzle.Create)
	a.router.HandleFunc("GET /v1/puzzle/{id}", puzzle.Fetch)
	a.router.HandleFunc("POST /v1/puzzle/{id}/fill", puzzle.Fill)
	a.router.HandleFunc("POST /v1/puzzle/{id}/publish", puzzle.Publish)

	a.router.HandleFunc("POST /v1/game", game.NewGame)
	a.router.HandleFunc("GET /v1/game/{id}", game.Fetch)
	a.router.HandleFunc("POST /v1/game/{id}/move", game.MakeAMove)
	a.router.HandleFunc("POST /v1/game/{id}/forfeit", game.Forfeit)
	a.router.HandleFunc("/v1/game/{id}/connect", game.ConnectWS)

	a.router.HandleFunc("GET /v1/records", records.Records)
	a.router.HandleFunc("GET /v1/myrecords", records.OwnRecords)
}
