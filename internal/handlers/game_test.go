package handlers

import (
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vancomm/picross-server/internal/picross"
	"github.com/vancomm/picross-server/internal/repository"
)

func TestBoardSolved(t *testing.T) {
	t.Parallel()

	b, err := picross.New(2, 2)
	require.NoError(t, err)
	require.NoError(t, b.FillCell(0, 0, true))
	require.NoError(t, b.FillCell(1, 1, true))
	b.CalculateHints()

	assert.False(t, boardSolved(b), "untouched board is not solved")

	require.NoError(t, b.GuessCell(0, 0, true))
	assert.False(t, boardSolved(b), "one of two filled cells guessed")

	require.NoError(t, b.GuessCell(1, 1, true))
	assert.True(t, boardSolved(b), "filled cells guessed, empty cells untouched")

	require.NoError(t, b.GuessCell(0, 1, true))
	assert.False(t, boardSolved(b), "wrong guess on an empty cell")

	require.NoError(t, b.GuessCell(0, 1, false))
	assert.True(t, boardSolved(b), "wrong guess corrected")
}

func TestApplyMove(t *testing.T) {
	t.Parallel()

	b, err := picross.New(2, 3)
	require.NoError(t, err)

	// x is the column, y the row
	require.NoError(t, applyMove(b, Mark, MoveDTO{X: 2, Y: 1, Value: true}))
	marked, err := b.IsMarked(1, 2)
	require.NoError(t, err)
	assert.True(t, marked)

	require.NoError(t, applyMove(b, Guess, MoveDTO{X: 0, Y: 0, Value: true}))
	revealed, err := b.IsRevealed(0, 0)
	require.NoError(t, err)
	assert.True(t, revealed)

	require.NoError(t, applyMove(b, Reveal, MoveDTO{X: 0, Y: 0, Value: false}))
	guessed, err := b.IsGuessedFilled(0, 0)
	require.NoError(t, err)
	assert.False(t, guessed)

	err = applyMove(b, Mark, MoveDTO{X: 3, Y: 0, Value: true})
	var rerr picross.IndexOutOfRangeError
	assert.ErrorAs(t, err, &rerr)
}

func TestParseGameMove(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input   string
		want    GameMove
		wantErr bool
	}{
		{"mark", Mark, false},
		{"reveal", Reveal, false},
		{"guess", Guess, false},
		{"open", 0, true},
		{"", 0, true},
	}
	for _, test := range tests {
		got, err := ParseGameMove(test.input)
		if test.wantErr {
			assert.Error(t, err, test.input)
			continue
		}
		require.NoError(t, err, test.input)
		assert.Equal(t, test.want, got, test.input)
	}
}

func TestNewGameSessionDTO(t *testing.T) {
	t.Parallel()

	b, err := picross.New(2, 2)
	require.NoError(t, err)
	require.NoError(t, b.FillCell(0, 0, true))
	b.CalculateHints()
	require.NoError(t, b.GuessCell(0, 0, true))
	require.NoError(t, b.MarkCell(1, 0, true))

	started := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	ended := started.Add(90 * time.Second)
	session := &repository.GameSession{
		GameSessionId: 42,
		PuzzleId:      7,
		Rows:          2,
		Cols:          2,
		Solved:        true,
		StartedAt:     pgtype.Timestamptz{Time: started, Valid: true},
		EndedAt:       pgtype.Timestamptz{Time: ended, Valid: true},
	}

	dto, err := NewGameSessionDTO(session, b)
	require.NoError(t, err)

	assert.Equal(t, "42", dto.GameSessionId)
	assert.Equal(t, "7", dto.PuzzleId)
	assert.Equal(t, [][]int{{1}, {}}, dto.RowHints)
	assert.Equal(t, [][]int{{1}, {}}, dto.ColHints)
	assert.Equal(t, [][]string{
		{"filled", "empty"},
		{"marked", "empty"},
	}, dto.Grid)
	assert.True(t, dto.Solved)
	assert.Equal(t, started.UnixMilli(), dto.StartedAt)
	require.NotNil(t, dto.EndedAt)
	assert.Equal(t, ended.UnixMilli(), *dto.EndedAt)
}

func TestParseDTOs(t *testing.T) {
	t.Parallel()

	t.Run("create puzzle", func(t *testing.T) {
		dto, err := ParseCreatePuzzleDTO(map[string][]string{
			"rows": {"5"}, "cols": {"10"}, "extra": {"ignored"},
		})
		require.NoError(t, err)
		assert.Equal(t, CreatePuzzleDTO{Rows: 5, Cols: 10}, dto)

		_, err = ParseCreatePuzzleDTO(map[string][]string{"rows": {"5"}})
		assert.Error(t, err, "cols is required")
	})

	t.Run("fill cell", func(t *testing.T) {
		dto, err := ParseFillCellDTO(map[string][]string{
			"x": {"1"}, "y": {"2"}, "filled": {"true"},
		})
		require.NoError(t, err)
		assert.Equal(t, FillCellDTO{X: 1, Y: 2, Filled: true}, dto)
	})

	t.Run("move", func(t *testing.T) {
		dto, err := ParseMoveDTO(map[string][]string{
			"x": {"0"}, "y": {"3"}, "value": {"false"},
		})
		require.NoError(t, err)
		assert.Equal(t, MoveDTO{X: 0, Y: 3, Value: false}, dto)
	})
}
