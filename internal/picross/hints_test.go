package picross

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fill builds a board from a pattern of '#' (filled) rows.
func fill(t *testing.T, pattern []string) *Board {
	t.Helper()
	require.NotEmpty(t, pattern)
	b, err := New(len(pattern), len(pattern[0]))
	require.NoError(t, err)
	for y, row := range pattern {
		require.Len(t, row, b.Cols())
		for x, r := range row {
			if r == '#' {
				require.NoError(t, b.FillCell(y, x, true))
			}
		}
	}
	return b
}

func TestCalculateHints(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		pattern    []string
		rowHints   [][]int
		colHints   [][]int
		longestRow int
		longestCol int
	}{
		{
			name: "worked example row",
			pattern: []string{
				"##..#",
			},
			rowHints:   [][]int{{2, 1}},
			colHints:   [][]int{{1}, {1}, {}, {}, {1}},
			longestRow: 2,
			longestCol: 1,
		},
		{
			name: "all filled 1x4",
			pattern: []string{
				"####",
			},
			rowHints:   [][]int{{4}},
			colHints:   [][]int{{1}, {1}, {1}, {1}},
			longestRow: 1,
			longestCol: 1,
		},
		{
			name: "all filled 1x5",
			pattern: []string{
				"#####",
			},
			rowHints:   [][]int{{5}},
			colHints:   [][]int{{1}, {1}, {1}, {1}, {1}},
			longestRow: 1,
			longestCol: 1,
		},
		{
			name: "3x3 scenario",
			pattern: []string{
				"##.",
				"..#",
				"...",
			},
			rowHints:   [][]int{{2}, {1}, {}},
			colHints:   [][]int{{1}, {1}, {1}},
			longestRow: 1,
			longestCol: 1,
		},
		{
			name: "empty 4x4",
			pattern: []string{
				"....",
				"....",
				"....",
				"....",
			},
			rowHints:   [][]int{{}, {}, {}, {}},
			colHints:   [][]int{{}, {}, {}, {}},
			longestRow: 0,
			longestCol: 0,
		},
		{
			name: "checkerboard",
			pattern: []string{
				"#.#.#",
				".#.#.",
				"#.#.#",
			},
			rowHints:   [][]int{{1, 1, 1}, {1, 1}, {1, 1, 1}},
			colHints:   [][]int{{1, 1}, {1}, {1, 1}, {1}, {1, 1}},
			longestRow: 3,
			longestCol: 2,
		},
		{
			name: "column runs across rows",
			pattern: []string{
				"#..#",
				"#..#",
				"...#",
				"#..#",
			},
			rowHints:   [][]int{{1, 1}, {1, 1}, {1}, {1, 1}},
			colHints:   [][]int{{2, 1}, {}, {}, {4}},
			longestRow: 2,
			longestCol: 2,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			b := fill(t, test.pattern)
			b.CalculateHints()

			for y, want := range test.rowHints {
				got, err := b.RowHints(y)
				require.NoError(t, err)
				assert.Equal(t, want, got, "row %d", y)
			}
			for x, want := range test.colHints {
				got, err := b.ColHints(x)
				require.NoError(t, err)
				assert.Equal(t, want, got, "col %d", x)
			}
			assert.Equal(t, test.longestRow, b.LongestRowHintLength())
			assert.Equal(t, test.longestCol, b.LongestColHintLength())
		})
	}
}

func TestHintSumsMatchFilledCounts(t *testing.T) {
	t.Parallel()

	b := fill(t, []string{
		"##.##.##..",
		".#########",
		"..........",
		"#.#.#.#.#.",
		"#########.",
	})
	b.CalculateHints()

	for y := range b.Rows() {
		want := 0
		for x := range b.Cols() {
			filled, err := b.IsFilled(y, x)
			require.NoError(t, err)
			if filled {
				want++
			}
		}
		hints, err := b.RowHints(y)
		require.NoError(t, err)
		sum := 0
		for _, h := range hints {
			sum += h
		}
		assert.Equal(t, want, sum, "row %d run lengths must account for every filled cell", y)
	}

	for x := range b.Cols() {
		want := 0
		for y := range b.Rows() {
			filled, err := b.IsFilled(y, x)
			require.NoError(t, err)
			if filled {
				want++
			}
		}
		hints, err := b.ColHints(x)
		require.NoError(t, err)
		sum := 0
		for _, h := range hints {
			sum += h
		}
		assert.Equal(t, want, sum, "col %d run lengths must account for every filled cell", x)
	}
}

func TestCalculateHintsIdempotent(t *testing.T) {
	t.Parallel()

	b := fill(t, []string{
		"##.#",
		"....",
		"####",
	})
	b.CalculateHints()

	first := make([][]int, b.Rows())
	for y := range b.Rows() {
		hs, err := b.RowHints(y)
		require.NoError(t, err)
		first[y] = hs
	}

	b.CalculateHints()
	for y := range b.Rows() {
		hs, err := b.RowHints(y)
		require.NoError(t, err)
		assert.Equal(t, first[y], hs)
	}
}

func TestHintsAreStaleUntilRecomputed(t *testing.T) {
	t.Parallel()

	b := fill(t, []string{"###"})
	b.CalculateHints()

	require.NoError(t, b.FillCell(0, 1, false))

	hs, err := b.RowHints(0)
	require.NoError(t, err)
	assert.Equal(t, []int{3}, hs, "hints must not react to true-value edits")

	b.CalculateHints()
	hs, err = b.RowHints(0)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 1}, hs)
}

func TestHintsBeforeFirstCalculation(t *testing.T) {
	t.Parallel()

	b, err := New(2, 2)
	require.NoError(t, err)

	hs, err := b.RowHints(1)
	require.NoError(t, err)
	assert.Empty(t, hs)
	hs, err = b.ColHints(0)
	require.NoError(t, err)
	assert.Empty(t, hs)
	assert.Zero(t, b.LongestRowHintLength())
	assert.Zero(t, b.LongestColHintLength())
}

func TestHintQueriesOutOfRange(t *testing.T) {
	t.Parallel()

	b, err := New(3, 3)
	require.NoError(t, err)
	b.CalculateHints()

	var rerr IndexOutOfRangeError
	_, err = b.RowHints(3)
	assert.ErrorAs(t, err, &rerr)
	_, err = b.RowHints(-1)
	assert.ErrorAs(t, err, &rerr)
	_, err = b.ColHints(3)
	assert.ErrorAs(t, err, &rerr)
	_, err = b.ColHints(-1)
	assert.ErrorAs(t, err, &rerr)
}
