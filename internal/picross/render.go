package picross

import (
	"fmt"
	"strings"
)

// column group width for the readability separator on larger boards
const groupEvery = 4

// String renders the whole board as text: column clues stacked above the
// grid (bottom-aligned, padded to the longest column sequence), each row
// prefixed with its clue sequence right-aligned in a gutter sized by the
// longest row sequence, and a separator after every fourth column. Clues
// reflect the last CalculateHints call.
func (b *Board) String() string {
	var sb strings.Builder

	gutter := b.longestRow
	for line := range b.longestCol {
		sb.WriteString(strings.Repeat("   ", gutter))
		for x := range b.cols {
			if x > 0 && x%groupEvery == 0 {
				sb.WriteString("| ")
			}
			hs := b.colHints[x]
			i := len(hs) - b.longestCol + line
			if i >= 0 && i < len(hs) {
				fmt.Fprintf(&sb, "%2d ", hs[i])
			} else {
				sb.WriteString("   ")
			}
		}
		sb.WriteString("\n")
	}

	for y := range b.rows {
		hs := b.rowHints[y]
		for i := range gutter {
			j := i - (gutter - len(hs))
			if j >= 0 && j < len(hs) {
				fmt.Fprintf(&sb, "%2d ", hs[j])
			} else {
				sb.WriteString("   ")
			}
		}
		for x := range b.cols {
			if x > 0 && x%groupEvery == 0 {
				sb.WriteString("| ")
			}
			fmt.Fprintf(&sb, " %s ", classify(b.cells[y*b.cols+x]))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}
