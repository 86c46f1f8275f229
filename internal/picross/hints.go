package picross

// CalculateHints rederives every row and column clue sequence from the
// current true values in one row-major pass, carrying one run counter for
// the row in progress and one per column. A line with no filled cells gets
// an empty sequence, not [0]. The longest-sequence lengths per axis are
// refreshed in the same pass; they only matter for gutter alignment.
//
// Hints are a snapshot: mutating true values afterwards does not touch
// them until CalculateHints runs again.
func (b *Board) CalculateHints() {
	rowHints := make([][]int, b.rows)
	colHints := make([][]int, b.cols)
	colRuns := make([]int, b.cols)

	for y := range b.rows {
		rowHints[y] = []int{}
		rowRun := 0
		for x := range b.cols {
			if b.cells[y*b.cols+x].filled {
				rowRun++
				colRuns[x]++
				continue
			}
			if rowRun > 0 {
				rowHints[y] = append(rowHints[y], rowRun)
				rowRun = 0
			}
			if colRuns[x] > 0 {
				colHints[x] = append(colHints[x], colRuns[x])
				colRuns[x] = 0
			}
		}
		if rowRun > 0 {
			rowHints[y] = append(rowHints[y], rowRun)
		}
	}
	for x := range b.cols {
		if colHints[x] == nil {
			colHints[x] = []int{}
		}
		if colRuns[x] > 0 {
			colHints[x] = append(colHints[x], colRuns[x])
		}
	}

	longestRow, longestCol := 0, 0
	for _, hs := range rowHints {
		longestRow = max(longestRow, len(hs))
	}
	for _, hs := range colHints {
		longestCol = max(longestCol, len(hs))
	}

	b.rowHints = rowHints
	b.colHints = colHints
	b.longestRow = longestRow
	b.longestCol = longestCol
}

// RowHints returns the clue sequence for one row as of the last
// CalculateHints call.
func (b *Board) RowHints(row int) ([]int, error) {
	if row < 0 || row >= b.rows {
		return nil, IndexOutOfRangeError{
			Row: row, Col: 0, Rows: b.rows, Cols: b.cols,
		}
	}
	if b.rowHints[row] == nil {
		return []int{}, nil
	}
	return b.rowHints[row], nil
}

// ColHints returns the clue sequence for one column as of the last
// CalculateHints call.
func (b *Board) ColHints(col int) ([]int, error) {
	if col < 0 || col >= b.cols {
		return nil, IndexOutOfRangeError{
			Row: 0, Col: col, Rows: b.rows, Cols: b.cols,
		}
	}
	if b.colHints[col] == nil {
		return []int{}, nil
	}
	return b.colHints[col], nil
}

func (b *Board) LongestRowHintLength() int { return b.longestRow }

func (b *Board) LongestColHintLength() int { return b.longestCol }
