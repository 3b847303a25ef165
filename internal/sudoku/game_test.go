package sudoku

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGame(t *testing.T, params GameParams) *GameState {
	t.Helper()
	game, err := NewGame(&params, testRand())
	require.NoError(t, err)
	return game
}

// mutableCell returns coordinates of some non-given cell.
func mutableCell(t *testing.T, s *GameState) (int, int) {
	t.Helper()
	for i, given := range s.Given {
		if !given {
			return i % s.Order, i / s.Order
		}
	}
	t.Fatal("no mutable cell in game")
	return 0, 0
}

func givenCell(t *testing.T, s *GameState) (int, int) {
	t.Helper()
	for i, given := range s.Given {
		if given {
			return i % s.Order, i / s.Order
		}
	}
	t.Fatal("no given cell in game")
	return 0, 0
}

func TestWriteAndEraseCell(t *testing.T) {
	game := newTestGame(t, GameParams{Order: 9, Givens: 30})
	x, y := mutableCell(t, game)
	empty := game.EmptyCells()

	require.NoError(t, game.WriteCell(x, y, 5))
	assert.Equal(t, 5, game.Cells[y*9+x])
	assert.Equal(t, empty-1, game.EmptyCells())

	// overwriting a filled cell does not change the count
	require.NoError(t, game.WriteCell(x, y, 5))
	assert.Equal(t, empty-1, game.EmptyCells())

	require.NoError(t, game.EraseCell(x, y))
	assert.Zero(t, game.Cells[y*9+x])
	assert.Equal(t, empty, game.EmptyCells())
}

func TestWriteCellRejectsGiven(t *testing.T) {
	game := newTestGame(t, GameParams{Order: 9, Givens: 30})
	x, y := givenCell(t, game)
	want := game.Cells[y*9+x]

	assert.ErrorIs(t, game.WriteCell(x, y, 1), ErrGivenCell)
	assert.ErrorIs(t, game.EraseCell(x, y), ErrGivenCell)
	assert.Equal(t, want, game.Cells[y*9+x], "given value must survive")
}

func TestWriteCellRejectsBadInput(t *testing.T) {
	game := newTestGame(t, GameParams{Order: 9, Givens: 30})

	assert.ErrorIs(t, game.WriteCell(-1, 0, 5), ErrOutOfBounds)
	assert.ErrorIs(t, game.WriteCell(0, 9, 5), ErrOutOfBounds)
	assert.ErrorIs(t, game.EraseCell(9, 0), ErrOutOfBounds)

	x, y := mutableCell(t, game)
	assert.ErrorIs(t, game.WriteCell(x, y, 0), ErrInvalidDigit)
	assert.ErrorIs(t, game.WriteCell(x, y, 10), ErrInvalidDigit)
}

func TestClearCellsKeepsGivens(t *testing.T) {
	game := newTestGame(t, GameParams{Order: 9, Givens: 30})
	x, y := mutableCell(t, game)
	require.NoError(t, game.WriteCell(x, y, 3))

	game.ClearCells()

	for i := range game.Cells {
		if game.Given[i] {
			assert.Equal(t, game.Solution[i], game.Cells[i])
		} else {
			assert.Zero(t, game.Cells[i])
		}
	}
	assert.Equal(t, 81-30, game.EmptyCells())
}

func TestNotes(t *testing.T) {
	game := newTestGame(t, GameParams{Order: 9, Givens: 30})
	x, y := mutableCell(t, game)

	require.NoError(t, game.WriteNote(x, y, 4))
	require.NoError(t, game.WriteNote(x, y, 7))
	assert.Equal(t, []int{4, 7}, game.CellNotes(x, y).Digits())

	// double write does not stack
	require.NoError(t, game.WriteNote(x, y, 4))
	require.NoError(t, game.ClearNote(x, y, 4))
	assert.False(t, game.CellNotes(x, y).Has(4))
	assert.True(t, game.CellNotes(x, y).Has(7))

	require.NoError(t, game.ClearCellNotes(x, y))
	assert.Zero(t, game.CellNotes(x, y))

	gx, gy := givenCell(t, game)
	assert.ErrorIs(t, game.WriteNote(gx, gy, 1), ErrGivenCell)
}

func TestWriteCellDropsNotes(t *testing.T) {
	game := newTestGame(t, GameParams{Order: 9, Givens: 30})
	x, y := mutableCell(t, game)

	require.NoError(t, game.WriteNote(x, y, 2))
	require.NoError(t, game.WriteCell(x, y, 8))
	assert.Zero(t, game.CellNotes(x, y), "definite digit clears the scratchpad")
}

func TestClearAllNotes(t *testing.T) {
	game := newTestGame(t, GameParams{Order: 9, Givens: 30})
	x, y := mutableCell(t, game)
	require.NoError(t, game.WriteNote(x, y, 1))

	game.ClearAllNotes()

	for i := range game.Notes {
		assert.Zero(t, game.Notes[i])
	}
}

func TestIsSolved(t *testing.T) {
	game := newTestGame(t, GameParams{Order: 9, Givens: 30})
	assert.False(t, game.IsSolved())

	// fill every empty cell with the correct digit; solved must flip true
	// only on the last one
	remaining := game.EmptyCells()
	for i := range game.Cells {
		if game.Given[i] {
			continue
		}
		x, y := i%9, i/9
		require.NoError(t, game.WriteCell(x, y, game.Solution[i]))
		remaining--
		assert.Equal(t, remaining == 0, game.IsSolved())
	}
	assert.True(t, game.IsSolved())
	assert.Zero(t, game.EmptyCells())

	// breaking any cell unsolves, restoring solves again
	x, y := mutableCell(t, game)
	wrong := game.Solution[y*9+x]%9 + 1
	require.NoError(t, game.WriteCell(x, y, wrong))
	assert.False(t, game.IsSolved())
	require.NoError(t, game.WriteCell(x, y, game.Solution[y*9+x]))
	assert.True(t, game.IsSolved())
}

func TestGobRoundTrip(t *testing.T) {
	game := newTestGame(t, GameParams{Order: 9, Givens: 30})
	x, y := mutableCell(t, game)
	require.NoError(t, game.WriteCell(x, y, 5))
	require.NoError(t, game.ClearCellNotes(x, y))

	buf, err := game.Bytes()
	require.NoError(t, err)
	decoded, err := DecodeGameState(buf)
	require.NoError(t, err)

	assert.Equal(t, game.GameParams, decoded.GameParams)
	assert.Equal(t, game.Cells, decoded.Cells)
	assert.Equal(t, game.Solution, decoded.Solution)
	assert.Equal(t, game.Given, decoded.Given)
}
