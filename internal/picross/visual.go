package picross

// CellVisual collapses the four cell facets into one mutually exclusive
// presentation label. Correctness here means the revealed guess agrees
// with the true value; unrevealed cells only distinguish marked from blank.
type CellVisual int8

const (
	VisualEmpty CellVisual = iota
	VisualMarked
	VisualFilled
	VisualFilledIncorrect
	VisualEmptyIncorrect
)

func (v CellVisual) String() string {
	switch v {
	case VisualMarked:
		return "x"
	case VisualFilled:
		return "#"
	case VisualFilledIncorrect:
		return "!"
	case VisualEmptyIncorrect:
		return "/"
	default:
		return "."
	}
}

func (v CellVisual) Label() string {
	switch v {
	case VisualMarked:
		return "marked"
	case VisualFilled:
		return "filled"
	case VisualFilledIncorrect:
		return "filled-incorrect"
	case VisualEmptyIncorrect:
		return "empty-incorrect"
	default:
		return "empty"
	}
}

func classify(c cell) CellVisual {
	if !c.revealed {
		if c.marked {
			return VisualMarked
		}
		return VisualEmpty
	}
	switch {
	case c.filled && c.guessed:
		return VisualFilled
	case c.filled && !c.guessed:
		return VisualFilledIncorrect
	case !c.filled && c.guessed:
		return VisualEmptyIncorrect
	default:
		return VisualEmpty
	}
}

// VisualAt reports the presentation label for one cell.
func (b *Board) VisualAt(row, col int) (CellVisual, error) {
	c, err := b.at(row, col)
	if err != nil {
		return VisualEmpty, err
	}
	return classify(*c), nil
}
