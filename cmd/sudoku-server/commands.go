package main

import (
	"errors"
	"strconv"
	"strings"

	"sudoku-server/internal/sudoku"
)

// Maps known commands to number of arguments:
//
//	w x y n // write digit n at x:y
//	e x y   // erase the digit at x:y
//	n x y d // note candidate d at x:y
//	u x y d // unnote candidate d at x:y
//	c       // clear all non-given cells
//	C       // clear all notes
var commandNargs = map[string]int{
	"w": 3,
	"e": 2,
	"n": 3,
	"u": 3,
	"c": 0,
	"C": 0,
}

func parseInts(words []string) ([]int, error) {
	nums := make([]int, len(words))
	for i, word := range words {
		n, err := strconv.Atoi(word)
		if err != nil {
			return nil, errors.New("arguments must be ints")
		}
		nums[i] = n
	}
	return nums, nil
}

func executeCommand(g *sudoku.GameState, c string) error {
	parts := strings.Split(c, " ")
	nargs, ok := commandNargs[parts[0]]
	if !ok {
		return errors.New("unknown command")
	}
	if nargs != len(parts)-1 {
		return errors.New("invalid number of arguments")
	}
	args, err := parseInts(parts[1:])
	if err != nil {
		return err
	}
	switch parts[0] {
	case "w":
		return g.WriteCell(args[0], args[1], args[2])
	case "e":
		return g.EraseCell(args[0], args[1])
	case "n":
		return g.WriteNote(args[0], args[1], args[2])
	case "u":
		return g.ClearNote(args[0], args[1], args[2])
	case "c":
		g.ClearCells()
		return nil
	case "C":
		g.ClearAllNotes()
		return nil
	}
	return errors.New("invalid command")
}
