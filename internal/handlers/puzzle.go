package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"

	"github.com/vancomm/picross-server/internal/middleware"
	"github.com/vancomm/picross-server/internal/picross"
	"github.com/vancomm/picross-server/internal/repository"
)

type PuzzleHandler struct {
	log  *logrus.Logger
	repo *repository.Queries
}

func NewPuzzleHandler(log *logrus.Logger, db *pgxpool.Pool) *PuzzleHandler {
	return &PuzzleHandler{
		log:  log,
		repo: repository.New(db),
	}
}

// Create starts a blank puzzle draft. True values are set with Fill calls
// and the clue set is derived once at Publish.
func (h PuzzleHandler) Create(w http.ResponseWriter, r *http.Request) {
	dto, err := ParseCreatePuzzleDTO(r.URL.Query())
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		sendJSONOrLog(w, h.log, wrapError(err))
		return
	}

	board, err := picross.New(dto.Rows, dto.Cols)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		sendJSONOrLog(w, h.log, wrapError(err))
		return
	}

	params := repository.CreatePuzzleParams{}
	if claims, ok := middleware.PlayerClaims(r.Context()); ok {
		params.AuthorId = &claims.PlayerId
	}

	puzzle, err := h.repo.CreatePuzzle(r.Context(), board, params)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		h.log.WithError(err).Error("unable to create puzzle")
		return
	}

	h.sendPuzzle(w, puzzle, board)
}

// Fill sets one true value on an unpublished draft.
func (h PuzzleHandler) Fill(w http.ResponseWriter, r *http.Request) {
	puzzle, board, ok := h.fetchPuzzle(w, r)
	if !ok {
		return
	}
	if puzzle.Published {
		w.WriteHeader(http.StatusConflict)
		sendMessageOrLog(w, h.log, "puzzle is already published")
		return
	}

	dto, err := ParseFillCellDTO(r.URL.Query())
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		sendJSONOrLog(w, h.log, wrapError(err))
		return
	}

	if err := board.FillCell(dto.Y, dto.X, dto.Filled); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		sendJSONOrLog(w, h.log, wrapError(err))
		return
	}

	state, err := board.Bytes()
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		h.log.WithError(err).Error("unable to serialize board")
		return
	}

	puzzle, err = h.repo.UpdatePuzzle(
		r.Context(), puzzle.PuzzleId,
		repository.UpdatePuzzleParams{State: &state},
	)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		h.log.WithError(err).Error("unable to update puzzle")
		return
	}

	h.sendPuzzle(w, puzzle, board)
}

// Publish derives the clue sequences from the authored true values and
// freezes the puzzle. The stored hints become the canonical clue set for
// every session played on this puzzle.
func (h PuzzleHandler) Publish(w http.ResponseWriter, r *http.Request) {
	puzzle, board, ok := h.fetchPuzzle(w, r)
	if !ok {
		return
	}

	board.CalculateHints()

	state, err := board.Bytes()
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		h.log.WithError(err).Error("unable to serialize board")
		return
	}

	published := true
	puzzle, err = h.repo.UpdatePuzzle(
		r.Context(), puzzle.PuzzleId,
		repository.UpdatePuzzleParams{Published: &published, State: &state},
	)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		h.log.WithError(err).Error("unable to publish puzzle")
		return
	}

	h.sendPuzzle(w, puzzle, board)
}

func (h PuzzleHandler) Fetch(w http.ResponseWriter, r *http.Request) {
	puzzle, board, ok := h.fetchPuzzle(w, r)
	if !ok {
		return
	}
	h.sendPuzzle(w, puzzle, board)
}

func (h PuzzleHandler) fetchPuzzle(
	w http.ResponseWriter, r *http.Request,
) (*repository.Puzzle, *picross.Board, bool) {
	puzzleId, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return nil, nil, false
	}

	puzzle, err := h.repo.FetchPuzzle(r.Context(), puzzleId)
	if errors.Is(err, pgx.ErrNoRows) {
		w.WriteHeader(http.StatusNotFound)
		return nil, nil, false
	}
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		h.log.WithError(err).Error("unable to fetch puzzle from db")
		return nil, nil, false
	}

	board, err := picross.DecodeBoard(puzzle.State)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		h.log.WithError(err).Error("db returned invalid puzzle.state")
		return nil, nil, false
	}

	return puzzle, board, true
}

func (h PuzzleHandler) sendPuzzle(
	w http.ResponseWriter, puzzle *repository.Puzzle, board *picross.Board,
) {
	dto, err := NewPuzzleDTO(puzzle, board)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		h.log.WithError(err).Error("unable to build puzzle dto")
		return
	}
	sendJSONOrLog(w, h.log, dto)
}
