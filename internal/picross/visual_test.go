package picross

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVisualAt(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		setup   func(t *testing.T, b *Board)
		want    CellVisual
		label   string
		glyph   string
	}{
		{
			name:  "untouched cell",
			setup: func(t *testing.T, b *Board) {},
			want:  VisualEmpty,
			label: "empty",
			glyph: ".",
		},
		{
			name: "marked cell",
			setup: func(t *testing.T, b *Board) {
				require.NoError(t, b.MarkCell(0, 0, true))
			},
			want:  VisualMarked,
			label: "marked",
			glyph: "x",
		},
		{
			name: "mark hidden behind reveal",
			setup: func(t *testing.T, b *Board) {
				require.NoError(t, b.MarkCell(0, 0, true))
				require.NoError(t, b.RevealCell(0, 0, true))
			},
			want:  VisualEmpty,
			label: "empty",
			glyph: ".",
		},
		{
			name: "correctly guessed filled",
			setup: func(t *testing.T, b *Board) {
				require.NoError(t, b.FillCell(0, 0, true))
				require.NoError(t, b.GuessCell(0, 0, true))
			},
			want:  VisualFilled,
			label: "filled",
			glyph: "#",
		},
		{
			name: "filled but guessed empty",
			setup: func(t *testing.T, b *Board) {
				require.NoError(t, b.FillCell(0, 0, true))
				require.NoError(t, b.GuessCell(0, 0, false))
			},
			want:  VisualFilledIncorrect,
			label: "filled-incorrect",
			glyph: "!",
		},
		{
			name: "empty but guessed filled",
			setup: func(t *testing.T, b *Board) {
				require.NoError(t, b.GuessCell(0, 0, true))
			},
			want:  VisualEmptyIncorrect,
			label: "empty-incorrect",
			glyph: "/",
		},
		{
			name: "empty correctly guessed empty",
			setup: func(t *testing.T, b *Board) {
				require.NoError(t, b.GuessCell(0, 0, false))
			},
			want:  VisualEmpty,
			label: "empty",
			glyph: ".",
		},
		{
			name: "bare reveal defaults to guessed empty",
			setup: func(t *testing.T, b *Board) {
				require.NoError(t, b.FillCell(0, 0, true))
				require.NoError(t, b.RevealCell(0, 0, true))
			},
			want:  VisualFilledIncorrect,
			label: "filled-incorrect",
			glyph: "!",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			b, err := New(1, 1)
			require.NoError(t, err)
			test.setup(t, b)

			got, err := b.VisualAt(0, 0)
			require.NoError(t, err)
			assert.Equal(t, test.want, got)
			assert.Equal(t, test.label, got.Label())
			assert.Equal(t, test.glyph, got.String())
		})
	}
}
