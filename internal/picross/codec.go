package picross

import (
	"bytes"
	"encoding/gob"
	"fmt"
)

// boardWire mirrors Board for gob round-trips; the Board itself keeps its
// fields unexported so dimensions stay immutable for callers.
type boardWire struct {
	Rows, Cols int
	Filled     []bool
	Marked     []bool
	Revealed   []bool
	Guessed    []bool
	RowHints   [][]int
	ColHints   [][]int
	LongestRow int
	LongestCol int
}

// [Board] implements [gob.GobEncoder]
func (b *Board) GobEncode() ([]byte, error) {
	w := boardWire{
		Rows: b.rows, Cols: b.cols,
		Filled:   make([]bool, len(b.cells)),
		Marked:   make([]bool, len(b.cells)),
		Revealed: make([]bool, len(b.cells)),
		Guessed:  make([]bool, len(b.cells)),
		RowHints: b.rowHints, ColHints: b.colHints,
		LongestRow: b.longestRow, LongestCol: b.longestCol,
	}
	for i, c := range b.cells {
		w.Filled[i] = c.filled
		w.Marked[i] = c.marked
		w.Revealed[i] = c.revealed
		w.Guessed[i] = c.guessed
	}
	var buf bytes.Buffer
	err := gob.NewEncoder(&buf).Encode(w)
	return buf.Bytes(), err
}

// [Board] implements [gob.GobDecoder]
func (b *Board) GobDecode(data []byte) error {
	var w boardWire
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&w); err != nil {
		return err
	}
	if w.Rows <= 0 || w.Cols <= 0 {
		return InvalidDimensionError{Rows: w.Rows, Cols: w.Cols}
	}
	n := w.Rows * w.Cols
	if len(w.Filled) != n || len(w.Marked) != n ||
		len(w.Revealed) != n || len(w.Guessed) != n {
		return fmt.Errorf("corrupt board state: facet length != %d", n)
	}
	b.rows, b.cols = w.Rows, w.Cols
	b.cells = make([]cell, w.Rows*w.Cols)
	for i := range b.cells {
		b.cells[i] = cell{
			filled:   w.Filled[i],
			marked:   w.Marked[i],
			revealed: w.Revealed[i],
			guessed:  w.Guessed[i],
		}
	}
	b.rowHints = w.RowHints
	b.colHints = w.ColHints
	if b.rowHints == nil {
		b.rowHints = make([][]int, b.rows)
	}
	if b.colHints == nil {
		b.colHints = make([][]int, b.cols)
	}
	b.longestRow = w.LongestRow
	b.longestCol = w.LongestCol
	return nil
}

func (b *Board) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	err := gob.NewEncoder(&buf).Encode(b)
	return buf.Bytes(), err
}

func DecodeBoard(data []byte) (*Board, error) {
	var b Board
	err := gob.NewDecoder(bytes.NewReader(data)).Decode(&b)
	if err != nil {
		return nil, err
	}
	return &b, nil
}
