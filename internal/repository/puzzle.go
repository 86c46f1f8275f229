package repository

import (
	"context"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/vancomm/picross-server/internal/picross"
)

type Puzzle struct {
	PuzzleId  int64
	AuthorId  *int64
	Rows      int
	Cols      int
	Published bool
	State     []byte
	CreatedAt pgtype.Timestamptz
	UpdatedAt pgtype.Timestamptz
}

type CreatePuzzleParams struct {
	AuthorId *int64
}

func (p CreatePuzzleParams) UpdateArgs(args *pgx.NamedArgs) *pgx.NamedArgs {
	if p.AuthorId != nil {
		(*args)["author_id"] = *p.AuthorId
	}
	return args
}

func (q *Queries) CreatePuzzle(
	ctx context.Context, board *picross.Board, params CreatePuzzleParams,
) (*Puzzle, error) {
	state, err := board.Bytes()
	if err != nil {
		return nil, err
	}

	args := pgx.NamedArgs{
		"author_id": nil,
		"rows":      board.Rows(),
		"cols":      board.Cols(),
		"state":     state,
	}
	params.UpdateArgs(&args)

	rows, _ := q.db.Query(
		ctx,
		`INSERT INTO puzzle (
			author_id, "rows", cols, state
		)
		VALUES (
			@author_id, @rows, @cols, @state
		)
		RETURNING *;`,
		args,
	)
	return pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByName[Puzzle])
}

func (q *Queries) FetchPuzzle(ctx context.Context, puzzleId int64) (*Puzzle, error) {
	rows, _ := q.db.Query(
		ctx,
		"SELECT * FROM puzzle WHERE puzzle_id = $1",
		puzzleId,
	)
	return pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByName[Puzzle])
}

type UpdatePuzzleParams struct {
	Published *bool
	State     *[]byte
}

func (p UpdatePuzzleParams) SetClause() (string, map[string]any) {
	parts := []string{"updated_at = now()"}
	args := make(map[string]any)

	if p.Published != nil {
		parts = append(parts, "published = @published")
		args["published"] = *p.Published
	}
	if p.State != nil {
		parts = append(parts, "state = @state")
		args["state"] = *p.State
	}

	return strings.Join(parts, ", "), args
}

func (q *Queries) UpdatePuzzle(
	ctx context.Context, puzzleId int64, params UpdatePuzzleParams,
) (*Puzzle, error) {
	setClause, args := params.SetClause()
	args["puzzle_id"] = puzzleId
	rows, _ := q.db.Query(
		ctx,
		"UPDATE puzzle SET "+setClause+" WHERE puzzle_id = @puzzle_id RETURNING *",
		pgx.NamedArgs(args),
	)
	return pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByName[Puzzle])
}
