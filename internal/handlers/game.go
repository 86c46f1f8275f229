package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"

	"github.com/vancomm/picross-server/internal/config"
	"github.com/vancomm/picross-server/internal/middleware"
	"github.com/vancomm/picross-server/internal/picross"
	"github.com/vancomm/picross-server/internal/repository"
)

type GameHandler struct {
	log  *logrus.Logger
	repo *repository.Queries
	ws   *config.WebSocket
}

func NewGameHandler(
	log *logrus.Logger, db *pgxpool.Pool, ws *config.WebSocket,
) *GameHandler {
	return &GameHandler{
		log:  log,
		repo: repository.New(db),
		ws:   ws,
	}
}

// NewGame opens a play session on a published puzzle. The session board
// starts as a copy of the puzzle board: true values and clues as authored,
// all player facets at their defaults.
func (g GameHandler) NewGame(w http.ResponseWriter, r *http.Request) {
	puzzleId, err := strconv.ParseInt(r.URL.Query().Get("puzzle_id"), 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		sendMessageOrLog(w, g.log, "puzzle_id is required")
		return
	}

	puzzle, err := g.repo.FetchPuzzle(r.Context(), puzzleId)
	if errors.Is(err, pgx.ErrNoRows) {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		g.log.WithError(err).Error("unable to fetch puzzle from db")
		return
	}

	if !puzzle.Published {
		w.WriteHeader(http.StatusConflict)
		sendMessageOrLog(w, g.log, "puzzle is not published")
		return
	}

	board, err := picross.DecodeBoard(puzzle.State)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		g.log.WithError(err).Error("db returned invalid puzzle.state")
		return
	}

	params := repository.CreateGameSessionParams{}
	if claims, ok := middleware.PlayerClaims(r.Context()); ok {
		g.log.WithField("claims", claims).Debug("creating player session")
		params.PlayerId = &claims.PlayerId
	} else {
		g.log.Debug("creating anonymous session")
	}

	session, err := g.repo.CreateGameSession(
		r.Context(), puzzle.PuzzleId, board, params,
	)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		g.log.WithError(err).Error("unable to create game session")
		return
	}

	g.sendSession(w, session, board)
}

func (g GameHandler) Fetch(w http.ResponseWriter, r *http.Request) {
	session, board, ok := g.fetchSession(w, r)
	if !ok {
		return
	}
	g.sendSession(w, session, board)
}

// MakeAMove applies one mark, reveal or guess to the session board, then
// performs win detection by comparing the player's committed guesses with
// the true values. The board itself doesn't track a solved state.
func (g GameHandler) MakeAMove(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	move, err := ParseGameMove(query.Get("move"))
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		sendJSONOrLog(w, g.log, wrapError(err))
		return
	}

	dto, err := ParseMoveDTO(query)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		sendJSONOrLog(w, g.log, wrapError(err))
		return
	}

	session, board, ok := g.fetchSession(w, r)
	if !ok {
		return
	}

	if session.EndedAt.Valid {
		w.WriteHeader(http.StatusConflict)
		sendMessageOrLog(w, g.log, "session has already ended")
		return
	}

	if err := applyMove(board, move, dto); err != nil {
		var rerr picross.IndexOutOfRangeError
		if errors.As(err, &rerr) {
			w.WriteHeader(http.StatusBadRequest)
			sendJSONOrLog(w, g.log, wrapError(err))
			return
		}
		w.WriteHeader(http.StatusInternalServerError)
		g.log.WithError(err).Error("unable to apply move")
		return
	}

	params := repository.UpdateGameSessionParams{}

	state, err := board.Bytes()
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		g.log.WithError(err).Error("unable to serialize board")
		return
	}
	params.State = &state

	if solved := boardSolved(board); solved {
		endedAt := time.Now().UTC()
		params.Solved = &solved
		params.EndedAt = &endedAt
	}

	session, err = g.repo.UpdateGameSession(
		r.Context(), session.GameSessionId, params,
	)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		g.log.WithError(err).Error("unable to update game session")
		return
	}

	g.sendSession(w, session, board)
}

func (g GameHandler) Forfeit(w http.ResponseWriter, r *http.Request) {
	session, board, ok := g.fetchSession(w, r)
	if !ok {
		return
	}

	if session.EndedAt.Valid {
		w.WriteHeader(http.StatusConflict)
		sendMessageOrLog(w, g.log, "session has already ended")
		return
	}

	forfeited := true
	endedAt := time.Now().UTC()
	session, err := g.repo.UpdateGameSession(
		r.Context(), session.GameSessionId,
		repository.UpdateGameSessionParams{
			Forfeited: &forfeited,
			EndedAt:   &endedAt,
		},
	)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		g.log.WithError(err).Error("unable to update game session")
		return
	}

	g.sendSession(w, session, board)
}

func applyMove(board *picross.Board, move GameMove, dto MoveDTO) error {
	switch move {
	case Mark:
		return board.MarkCell(dto.Y, dto.X, dto.Value)
	case Reveal:
		return board.RevealCell(dto.Y, dto.X, dto.Value)
	case Guess:
		return board.GuessCell(dto.Y, dto.X, dto.Value)
	}
	return errors.New("unhandled move")
}

// boardSolved is the win check the board core leaves to its callers:
// every filled cell carries a committed filled guess, and no empty cell
// does. Unrevealed cells count as guessed-empty.
func boardSolved(board *picross.Board) bool {
	for y := range board.Rows() {
		for x := range board.Cols() {
			filled, err := board.IsFilled(y, x)
			if err != nil {
				return false
			}
			guessed, err := board.IsGuessedFilled(y, x)
			if err != nil {
				return false
			}
			if filled != guessed {
				return false
			}
		}
	}
	return true
}

func (g GameHandler) fetchSession(
	w http.ResponseWriter, r *http.Request,
) (*repository.GameSession, *picross.Board, bool) {
	sessionId, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return nil, nil, false
	}

	session, err := g.repo.FetchGameSession(r.Context(), sessionId)
	if errors.Is(err, pgx.ErrNoRows) {
		w.WriteHeader(http.StatusNotFound)
		return nil, nil, false
	}
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		g.log.WithError(err).Error("unable to fetch session from db")
		return nil, nil, false
	}

	board, err := picross.DecodeBoard(session.State)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		g.log.WithError(err).Error("db returned invalid game_session.state")
		return nil, nil, false
	}

	return session, board, true
}

func (g GameHandler) sendSession(
	w http.ResponseWriter, session *repository.GameSession, board *picross.Board,
) {
	dto, err := NewGameSessionDTO(session, board)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		g.log.WithError(err).Error("unable to build session dto")
		return
	}
	sendJSONOrLog(w, g.log, dto)
}
