package picross

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoardString(t *testing.T) {
	t.Parallel()

	b := fill(t, []string{
		"##.",
		"..#",
		"...",
	})
	b.CalculateHints()

	want := strings.Join([]string{
		"    1  1  1 ",
		" 2  .  .  . ",
		" 1  .  .  . ",
		"    .  .  . ",
	}, "\n") + "\n"

	assert.Equal(t, want, b.String())
}

func TestBoardStringGroupSeparator(t *testing.T) {
	t.Parallel()

	b := fill(t, []string{"######"})
	b.CalculateHints()

	want := strings.Join([]string{
		"    1  1  1  1 |  1  1 ",
		" 6  #  #  #  # |  #  # ",
	}, "\n") + "\n"

	for x := range 6 {
		require.NoError(t, b.GuessCell(0, x, true))
	}

	assert.Equal(t, want, b.String())
}

func TestBoardStringShowsPlayerState(t *testing.T) {
	t.Parallel()

	b := fill(t, []string{
		"#.",
		".#",
	})
	b.CalculateHints()

	require.NoError(t, b.MarkCell(0, 1, true))       // marked
	require.NoError(t, b.GuessCell(0, 0, true))      // correct fill
	require.NoError(t, b.GuessCell(1, 0, true))      // wrong fill on empty
	require.NoError(t, b.RevealCell(1, 1, true))     // bare reveal of a filled cell

	s := b.String()
	assert.Contains(t, s, "#", "correct guess glyph")
	assert.Contains(t, s, "x", "mark glyph")
	assert.Contains(t, s, "/", "empty-incorrect glyph")
	assert.Contains(t, s, "!", "filled-incorrect glyph")
}

func TestParamsSeedRoundTrip(t *testing.T) {
	t.Parallel()

	p := GameParams{Rows: 12, Cols: 7}
	assert.Equal(t, "12:7", p.Seed())

	got, err := ParseSeed(p.Seed())
	require.NoError(t, err)
	assert.Equal(t, p, *got)

	_, err = ParseSeed("garbage")
	assert.Error(t, err)
	_, err = ParseSeed("0:5")
	assert.Error(t, err)

	assert.True(t, p.PointInBounds(6, 11))
	assert.False(t, p.PointInBounds(7, 0))
	assert.False(t, p.PointInBounds(0, 12))
	assert.False(t, p.PointInBounds(-1, 0))
}
