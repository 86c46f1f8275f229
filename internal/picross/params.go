package picross

import (
	"fmt"
	"strings"
)

type GameParams struct {
	Rows, Cols int
}

func (p GameParams) Seed() string {
	return fmt.Sprintf("%d:%d", p.Rows, p.Cols)
}

func ParseSeed(seed string) (*GameParams, error) {
	p := &GameParams{}
	sseed := strings.ReplaceAll(seed, ":", " ")
	n, err := fmt.Sscanf(sseed, "%d %d", &p.Rows, &p.Cols)
	if n != 2 || err != nil {
		return nil, fmt.Errorf(
			`invalid game params seed (sseed = "%s", n = %d, err = %w)`,
			sseed, n, err,
		)
	}
	if p.Rows <= 0 || p.Cols <= 0 {
		return nil, InvalidDimensionError{Rows: p.Rows, Cols: p.Cols}
	}
	return p, nil
}

func (p GameParams) PointInBounds(x, y int) bool {
	return 0 <= x && x < p.Cols && 0 <= y && y < p.Rows
}
