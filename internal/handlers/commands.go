package handlers

import (
	"errors"
	"iter"
	"strconv"
	"strings"

	"github.com/vancomm/picross-server/internal/picross"
)

// Maps known commands to number of arguments
var commandNargs = map[string]int{
	"m": 3, /* mark x y v */
	"r": 3, /* reveal x y v */
	"g": 3, /* guess x y v */
	"s": 0, /* sync, no board mutation */
}

func parseXYV(threeStrings []string) (x int, y int, v bool, err error) {
	if x, err = strconv.Atoi(threeStrings[0]); err != nil {
		err = errors.New("first argument must be an int")
		return
	}
	if y, err = strconv.Atoi(threeStrings[1]); err != nil {
		err = errors.New("second argument must be an int")
		return
	}
	switch threeStrings[2] {
	case "0":
		v = false
	case "1":
		v = true
	default:
		err = errors.New("third argument must be 0 or 1")
	}
	return
}

func executeCommand(board *picross.Board, c string) error {
	parts := strings.Split(c, " ")
	nargs, ok := commandNargs[parts[0]]
	if !ok {
		return errors.New("unknown command")
	}
	if nargs != len(parts)-1 {
		return errors.New("invalid number of arguments")
	}
	switch parts[0] {
	case "s":
		return nil
	case "m":
		x, y, v, err := parseXYV(parts[1:])
		if err != nil {
			return err
		}
		return board.MarkCell(y, x, v)
	case "r":
		x, y, v, err := parseXYV(parts[1:])
		if err != nil {
			return err
		}
		return board.RevealCell(y, x, v)
	case "g":
		x, y, v, err := parseXYV(parts[1:])
		if err != nil {
			return err
		}
		return board.GuessCell(y, x, v)
	}
	return errors.New("invalid command")
}

func byPiece(s string, sep string) iter.Seq2[int, string] {
	return func(yield func(int, string) bool) {
		i := 0
		found := true
		var piece string
		for found {
			piece, s, found = strings.Cut(s, sep)
			if !yield(i, piece) {
				return
			}
			i += 1
		}
	}
}
