package picross

import "fmt"

type InvalidDimensionError struct {
	Rows, Cols int
}

// [InvalidDimensionError] implements [error]
func (e InvalidDimensionError) Error() string {
	return fmt.Sprintf("invalid board dimensions %dx%d", e.Rows, e.Cols)
}

type IndexOutOfRangeError struct {
	Row, Col   int
	Rows, Cols int
}

// [IndexOutOfRangeError] implements [error]
func (e IndexOutOfRangeError) Error() string {
	return fmt.Sprintf(
		"cell (%d, %d) out of range on a %dx%d board",
		e.Row, e.Col, e.Rows, e.Cols,
	)
}
