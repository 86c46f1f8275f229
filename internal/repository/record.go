package repository

import (
	"context"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/vancomm/picross-server/internal/picross"
)

type GameRecord struct {
	Username *string `json:"username"`
	PuzzleId int64   `json:"puzzle_id"`
	Rows     int     `json:"rows"`
	Cols     int     `json:"cols"`
	Playtime float64 `json:"playtime"`
}

type GameRecordsOption func(where *[]string, args *pgx.NamedArgs)

func GameRecordsForPlayer(username string) GameRecordsOption {
	return func(where *[]string, args *pgx.NamedArgs) {
		*where = append(*where, "username = @username")
		(*args)["username"] = username
	}
}

func GameRecordsForGameParams(params picross.GameParams) GameRecordsOption {
	return func(where *[]string, args *pgx.NamedArgs) {
		*where = append(*where, `"rows" = @rows AND cols = @cols`)
		(*args)["rows"] = params.Rows
		(*args)["cols"] = params.Cols
	}
}

// GameRecords compiles solved sessions ordered by playtime, fastest first.
func (q *Queries) GameRecords(
	ctx context.Context, options ...GameRecordsOption,
) ([]GameRecord, error) {
	where := []string{
		"solved = true",
		"forfeited = false",
		"ended_at IS NOT NULL",
	}
	args := pgx.NamedArgs{}
	for _, option := range options {
		option(&where, &args)
	}

	sql := `
	SELECT username
		, puzzle_id
		, "rows"
		, cols
		, extract(epoch from (ended_at - started_at)) playtime
	FROM game_session
	LEFT OUTER JOIN player USING (player_id)
	WHERE ` + strings.Join(where, " AND ") + `
	ORDER BY playtime;`

	rows, err := q.db.Query(ctx, sql, args)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowToStructByName[GameRecord])
}
