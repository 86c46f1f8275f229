package picross

// cell keeps the four independent facets of one grid position. The true
// value exists regardless of what the player has done to the cell; the
// guessed value only means anything while the cell is revealed.
type cell struct {
	filled   bool /* ground truth of the puzzle */
	marked   bool /* player annotation: "I believe this is empty" */
	revealed bool /* player has committed a guess here */
	guessed  bool /* the committed guess, valid only while revealed */
}

// Board is a rows-by-cols picross grid plus the clue sequences last derived
// from its true values. Dimensions are fixed at construction. Hint sequences
// are NOT kept in sync with later true-value edits: callers batch their
// FillCell calls and then invoke CalculateHints before reading clues.
type Board struct {
	rows, cols int
	cells      []cell /* row-major */

	rowHints   [][]int
	colHints   [][]int
	longestRow int
	longestCol int
}

func New(rows, cols int) (*Board, error) {
	if rows <= 0 || cols <= 0 {
		return nil, InvalidDimensionError{Rows: rows, Cols: cols}
	}
	return &Board{
		rows:     rows,
		cols:     cols,
		cells:    make([]cell, rows*cols),
		rowHints: make([][]int, rows),
		colHints: make([][]int, cols),
	}, nil
}

func (b *Board) Rows() int { return b.rows }

func (b *Board) Cols() int { return b.cols }

func (b *Board) at(row, col int) (*cell, error) {
	if row < 0 || row >= b.rows || col < 0 || col >= b.cols {
		return nil, IndexOutOfRangeError{
			Row: row, Col: col, Rows: b.rows, Cols: b.cols,
		}
	}
	return &b.cells[row*b.cols+col], nil
}

func (b *Board) IsFilled(row, col int) (bool, error) {
	c, err := b.at(row, col)
	if err != nil {
		return false, err
	}
	return c.filled, nil
}

func (b *Board) IsMarked(row, col int) (bool, error) {
	c, err := b.at(row, col)
	if err != nil {
		return false, err
	}
	return c.marked, nil
}

func (b *Board) IsRevealed(row, col int) (bool, error) {
	c, err := b.at(row, col)
	if err != nil {
		return false, err
	}
	return c.revealed, nil
}

func (b *Board) IsGuessedFilled(row, col int) (bool, error) {
	c, err := b.at(row, col)
	if err != nil {
		return false, err
	}
	return c.guessed, nil
}

// FillCell sets the cell's true value. Player-facing facets are untouched,
// and previously computed hints go stale until the next CalculateHints.
func (b *Board) FillCell(row, col int, filled bool) error {
	c, err := b.at(row, col)
	if err != nil {
		return err
	}
	c.filled = filled
	return nil
}

// MarkCell sets the player's empty-annotation on a cell. Marking a revealed
// cell is not rejected here; callers decide whether that is meaningful.
func (b *Board) MarkCell(row, col int, marked bool) error {
	c, err := b.at(row, col)
	if err != nil {
		return err
	}
	c.marked = marked
	return nil
}

// RevealCell sets whether the player has committed a guess for the cell.
// Un-revealing discards the stored guess: a later bare reveal reads as
// guessed-empty until GuessCell is called again.
func (b *Board) RevealCell(row, col int, revealed bool) error {
	c, err := b.at(row, col)
	if err != nil {
		return err
	}
	c.revealed = revealed
	if !revealed {
		c.guessed = false
	}
	return nil
}

// GuessCell stores the player's guess and reveals the cell in one step.
// A guess always reveals; re-guessing an already revealed cell just
// overwrites the stored value.
func (b *Board) GuessCell(row, col int, filled bool) error {
	c, err := b.at(row, col)
	if err != nil {
		return err
	}
	c.guessed = filled
	c.revealed = true
	return nil
}
