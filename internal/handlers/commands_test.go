package handlers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vancomm/picross-server/internal/picross"
)

func TestExecuteCommand(t *testing.T) {
	t.Parallel()

	newBoard := func(t *testing.T) *picross.Board {
		b, err := picross.New(3, 3)
		require.NoError(t, err)
		return b
	}

	t.Run("mark", func(t *testing.T) {
		b := newBoard(t)
		require.NoError(t, executeCommand(b, "m 2 1 1"))
		marked, err := b.IsMarked(1, 2)
		require.NoError(t, err)
		assert.True(t, marked)
	})

	t.Run("guess reveals", func(t *testing.T) {
		b := newBoard(t)
		require.NoError(t, executeCommand(b, "g 0 2 1"))
		revealed, err := b.IsRevealed(2, 0)
		require.NoError(t, err)
		assert.True(t, revealed)
		guessed, err := b.IsGuessedFilled(2, 0)
		require.NoError(t, err)
		assert.True(t, guessed)
	})

	t.Run("un-reveal clears guess", func(t *testing.T) {
		b := newBoard(t)
		require.NoError(t, executeCommand(b, "g 1 1 1"))
		require.NoError(t, executeCommand(b, "r 1 1 0"))
		guessed, err := b.IsGuessedFilled(1, 1)
		require.NoError(t, err)
		assert.False(t, guessed)
	})

	t.Run("sync is a no-op", func(t *testing.T) {
		b := newBoard(t)
		require.NoError(t, executeCommand(b, "s"))
	})

	t.Run("bad input", func(t *testing.T) {
		b := newBoard(t)
		assert.Error(t, executeCommand(b, "z 0 0 1"), "unknown command")
		assert.Error(t, executeCommand(b, "m 0 0"), "missing argument")
		assert.Error(t, executeCommand(b, "m x 0 1"), "non-numeric coordinate")
		assert.Error(t, executeCommand(b, "m 0 0 2"), "non-boolean value")
		assert.Error(t, executeCommand(b, "m 3 0 1"), "out of range coordinate")
	})
}

func TestByPiece(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		input string
		sep   string
		array []string
	}{
		{"a b c", " ", []string{"a", "b", "c"}},
		{"m 0 0 1\ng 1 1 0\n\ns", "\n", []string{"m 0 0 1", "g 1 1 0", "", "s"}},
	}
	for _, test := range testCases {
		for i, p := range byPiece(test.input, test.sep) {
			if i < 0 || i >= len(test.array) {
				t.Errorf("byPiece returned an invalid index: %d", i)
			}
			if p != test.array[i] {
				t.Errorf("byPiece returned an incorrect piece: have %s, want %s",
					p, test.array[i])
			}
		}
	}
}
