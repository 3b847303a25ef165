package main

import (
	"bufio"
	"fmt"
	"hash/maphash"
	"math/rand/v2"
	"os"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"sudoku-server/internal/sudoku"
)

var (
	log = logrus.New()
	rnd = rand.New(rand.NewPCG(
		new(maphash.Hash).Sum64(),
		new(maphash.Hash).Sum64(),
	))
)

func readLine(in *bufio.Scanner, prompt string) (string, bool) {
	fmt.Print(prompt)
	if !in.Scan() {
		return "", false
	}
	return strings.TrimSpace(in.Text()), true
}

// parsePosition parses a 1-based `"x, y"` pair into 0-based coordinates.
func parsePosition(s string) (x int, y int, err error) {
	parts := strings.SplitN(s, ",", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("expected \"x, y\"")
	}
	if x, err = strconv.Atoi(strings.TrimSpace(parts[0])); err != nil {
		return 0, 0, fmt.Errorf("x must be an int")
	}
	if y, err = strconv.Atoi(strings.TrimSpace(parts[1])); err != nil {
		return 0, 0, fmt.Errorf("y must be an int")
	}
	return x - 1, y - 1, nil
}

func play(in *bufio.Scanner) bool {
	params := &sudoku.GameParams{
		Order: 9,
		// a sparse board, the way the original dealt them
		Givens: 17 + rnd.IntN(6),
	}
	game, err := sudoku.NewGame(params, rnd)
	if err != nil {
		log.Fatal("unable to generate a puzzle: ", err)
	}

	for {
		fmt.Println(game.Cells.ToString(game.Order))

		pos, ok := readLine(in, "Enter position (\"x, y\"): ")
		if !ok {
			return false
		}
		x, y, err := parsePosition(pos)
		if err != nil || !game.ValidatePoint(x, y) {
			fmt.Print("Invalid position\n\n")
			continue
		}
		if game.IsGiven(x, y) {
			fmt.Print("Position already solved.\n\n")
			continue
		}

		entry, ok := readLine(in, "Enter number: ")
		if !ok {
			return false
		}
		num, err := strconv.Atoi(entry)
		if err != nil || !game.ValidateDigit(num) {
			fmt.Print("Invalid number\n\n")
			continue
		}

		fmt.Println()
		if err := game.WriteCell(x, y, num); err != nil {
			fmt.Printf("%s\n\n", err)
			continue
		}
		if game.EmptyCells() == 0 && game.IsSolved() {
			fmt.Println(game.Cells.ToString(game.Order))
			fmt.Println("Congratulations! You won!")
			return true
		}
	}
}

func main() {
	in := bufio.NewScanner(os.Stdin)

	fmt.Println("Welcome to Sudoku")
	for {
		choice, ok := readLine(in,
			"Make a selection:\n"+
				"\t1) New game\n"+
				"\t2) Quit\n"+
				"[+] ")
		if !ok {
			return
		}
		switch choice {
		case "1":
			fmt.Println()
			if !play(in) {
				return
			}
		case "2":
			return
		}
	}
}
