package main

import (
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sudoku-server/internal/sudoku"
)

func newTestState(t *testing.T) *sudoku.GameState {
	t.Helper()
	params := &sudoku.GameParams{Order: 9, Givens: 30}
	r := rand.New(rand.NewPCG(1, 2))
	game, err := sudoku.NewGame(params, r)
	require.NoError(t, err)
	return game
}

func anyMutableCell(t *testing.T, g *sudoku.GameState) (int, int) {
	t.Helper()
	for i, given := range g.Given {
		if !given {
			return i % g.Order, i / g.Order
		}
	}
	t.Fatal("no mutable cell")
	return 0, 0
}

func TestExecuteCommand(t *testing.T) {
	game := newTestState(t)
	x, y := anyMutableCell(t, game)

	require.NoError(t, executeCommand(game, fmt.Sprintf("w %d %d 5", x, y)))
	assert.Equal(t, 5, game.Cells[y*9+x])

	require.NoError(t, executeCommand(game, fmt.Sprintf("e %d %d", x, y)))
	assert.Zero(t, game.Cells[y*9+x])

	require.NoError(t, executeCommand(game, fmt.Sprintf("n %d %d 3", x, y)))
	assert.True(t, game.CellNotes(x, y).Has(3))
	require.NoError(t, executeCommand(game, fmt.Sprintf("u %d %d 3", x, y)))
	assert.False(t, game.CellNotes(x, y).Has(3))

	require.NoError(t, executeCommand(game, "C"))
	require.NoError(t, executeCommand(game, "c"))
	assert.Equal(t, 81-30, game.EmptyCells())
}

func TestExecuteCommandErrors(t *testing.T) {
	game := newTestState(t)

	tests := []struct {
		name string
		cmd  string
	}{
		{"unknown command", "q"},
		{"too few args", "w 1 2"},
		{"too many args", "e 1 2 3"},
		{"non-numeric args", "w a b c"},
		{"out of bounds", "w 9 9 1"},
		{"bad digit", "w 0 0 10"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Error(t, executeCommand(game, test.cmd))
		})
	}
}
