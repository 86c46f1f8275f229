package handlers

import (
	"fmt"
	"strconv"

	"github.com/gorilla/schema"

	"github.com/vancomm/picross-server/internal/picross"
	"github.com/vancomm/picross-server/internal/repository"
)

type CreatePuzzleDTO struct {
	Rows int `schema:"rows,required"`
	Cols int `schema:"cols,required"`
}

func ParseCreatePuzzleDTO(src map[string][]string) (CreatePuzzleDTO, error) {
	var dto CreatePuzzleDTO
	dec := schema.NewDecoder()
	dec.IgnoreUnknownKeys(true)
	err := dec.Decode(&dto, src)
	return dto, err
}

type Position struct {
	X int `schema:"x,required"`
	Y int `schema:"y,required"`
}

func ParsePosition(src map[string][]string) (Position, error) {
	var pos Position
	dec := schema.NewDecoder()
	dec.IgnoreUnknownKeys(true)
	err := dec.Decode(&pos, src)
	return pos, err
}

type FillCellDTO struct {
	X      int  `schema:"x,required"`
	Y      int  `schema:"y,required"`
	Filled bool `schema:"filled,required"`
}

func ParseFillCellDTO(src map[string][]string) (FillCellDTO, error) {
	var dto FillCellDTO
	dec := schema.NewDecoder()
	dec.IgnoreUnknownKeys(true)
	err := dec.Decode(&dto, src)
	return dto, err
}

type GameMove int

const (
	Mark GameMove = iota
	Reveal
	Guess
)

func ParseGameMove(s string) (GameMove, error) {
	switch s {
	case "mark":
		return Mark, nil
	case "reveal":
		return Reveal, nil
	case "guess":
		return Guess, nil
	}
	return 0, fmt.Errorf("unknown move %q", s)
}

type MoveDTO struct {
	X     int  `schema:"x,required"`
	Y     int  `schema:"y,required"`
	Value bool `schema:"value,required"`
}

func ParseMoveDTO(src map[string][]string) (MoveDTO, error) {
	var dto MoveDTO
	dec := schema.NewDecoder()
	dec.IgnoreUnknownKeys(true)
	err := dec.Decode(&dto, src)
	return dto, err
}

type PuzzleDTO struct {
	PuzzleId             string  `json:"puzzle_id"`
	Rows                 int     `json:"rows"`
	Cols                 int     `json:"cols"`
	Published            bool    `json:"published"`
	RowHints             [][]int `json:"row_hints"`
	ColHints             [][]int `json:"col_hints"`
	LongestRowHintLength int     `json:"longest_row_hint_length"`
	LongestColHintLength int     `json:"longest_col_hint_length"`
}

func NewPuzzleDTO(p *repository.Puzzle, board *picross.Board) (*PuzzleDTO, error) {
	rowHints, colHints, err := collectHints(board)
	if err != nil {
		return nil, err
	}
	return &PuzzleDTO{
		PuzzleId:             strconv.FormatInt(p.PuzzleId, 10),
		Rows:                 board.Rows(),
		Cols:                 board.Cols(),
		Published:            p.Published,
		RowHints:             rowHints,
		ColHints:             colHints,
		LongestRowHintLength: board.LongestRowHintLength(),
		LongestColHintLength: board.LongestColHintLength(),
	}, nil
}

type GameSessionDTO struct {
	GameSessionId string     `json:"game_session_id"`
	PuzzleId      string     `json:"puzzle_id"`
	Rows          int        `json:"rows"`
	Cols          int        `json:"cols"`
	RowHints      [][]int    `json:"row_hints"`
	ColHints      [][]int    `json:"col_hints"`
	Grid          [][]string `json:"grid"`
	Solved        bool       `json:"solved"`
	Forfeited     bool       `json:"forfeited"`
	StartedAt     int64      `json:"started_at"`
	EndedAt       *int64     `json:"ended_at,omitempty"`
}

func NewGameSessionDTO(
	session *repository.GameSession, board *picross.Board,
) (*GameSessionDTO, error) {
	rowHints, colHints, err := collectHints(board)
	if err != nil {
		return nil, err
	}

	grid := make([][]string, board.Rows())
	for y := range board.Rows() {
		grid[y] = make([]string, board.Cols())
		for x := range board.Cols() {
			v, err := board.VisualAt(y, x)
			if err != nil {
				return nil, err
			}
			grid[y][x] = v.Label()
		}
	}

	dto := &GameSessionDTO{
		GameSessionId: strconv.FormatInt(session.GameSessionId, 10),
		PuzzleId:      strconv.FormatInt(session.PuzzleId, 10),
		Rows:          board.Rows(),
		Cols:          board.Cols(),
		RowHints:      rowHints,
		ColHints:      colHints,
		Grid:          grid,
		Solved:        session.Solved,
		Forfeited:     session.Forfeited,
		StartedAt:     session.StartedAt.Time.UnixMilli(),
	}
	if session.EndedAt.Valid {
		e := session.EndedAt.Time.UnixMilli()
		dto.EndedAt = &e
	}
	return dto, nil
}

func collectHints(board *picross.Board) (rowHints, colHints [][]int, err error) {
	rowHints = make([][]int, board.Rows())
	for y := range board.Rows() {
		if rowHints[y], err = board.RowHints(y); err != nil {
			return nil, nil, err
		}
	}
	colHints = make([][]int, board.Cols())
	for x := range board.Cols() {
		if colHints[x], err = board.ColHints(x); err != nil {
			return nil, nil, err
		}
	}
	return rowHints, colHints, nil
}
