package sudoku

import (
	"bytes"
	"encoding/gob"
	"math/rand/v2"

	"github.com/sirupsen/logrus"
)

var Log = logrus.New()

// GameState owns one game's puzzle state: the completed solution, the grid
// as the player sees it, the given-cell mask and per-cell candidate notes.
// It carries no UI state; shells keep their own selection and focus.
type GameState struct {
	GameParams
	Solution Grid
	Cells    Grid
	Given    []bool
	Notes    []NoteMask
}

// NewGame generates a solved grid from r and masks all but params.Givens
// cells. The returned state is ready to play.
func NewGame(params *GameParams, r *rand.Rand) (*GameState, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	solution, err := params.generate(r)
	if err != nil {
		return nil, err
	}
	s := &GameState{
		GameParams: *params,
		Solution:   solution,
		Cells:      make(Grid, len(solution)),
		Given:      make([]bool, len(solution)),
		Notes:      make([]NoteMask, len(solution)),
	}
	for _, i := range params.pickGivens(r) {
		s.Cells[i] = s.Solution[i]
		s.Given[i] = true
	}
	return s, nil
}

func DecodeGameState(buf []byte) (*GameState, error) {
	var game GameState
	err := gob.NewDecoder(bytes.NewBuffer(buf)).Decode(&game)
	if err != nil {
		return nil, err
	}
	return &game, nil
}

func (s GameState) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	err := gob.NewEncoder(&buf).Encode(s)
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// IsGiven reports whether the cell holds a starting clue. False for
// out-of-bounds coordinates.
func (s *GameState) IsGiven(x, y int) bool {
	return s.ValidatePoint(x, y) && s.Given[y*s.Order+x]
}

// WriteCell places num at (x, y) and clears the cell's notes. Writes to
// given cells are rejected, not silently applied.
func (s *GameState) WriteCell(x, y, num int) error {
	if !s.ValidatePoint(x, y) {
		return ErrOutOfBounds
	}
	if !s.ValidateDigit(num) {
		return ErrInvalidDigit
	}
	i := y*s.Order + x
	if s.Given[i] {
		return ErrGivenCell
	}
	s.Cells[i] = num
	s.Notes[i] = 0
	return nil
}

// EraseCell empties a non-given cell.
func (s *GameState) EraseCell(x, y int) error {
	if !s.ValidatePoint(x, y) {
		return ErrOutOfBounds
	}
	i := y*s.Order + x
	if s.Given[i] {
		return ErrGivenCell
	}
	s.Cells[i] = 0
	return nil
}

// ClearCells resets every non-given cell to empty and drops its notes.
// Given cells keep their values.
func (s *GameState) ClearCells() {
	for i := range s.Cells {
		if !s.Given[i] {
			s.Cells[i] = 0
			s.Notes[i] = 0
		}
	}
}

func (s *GameState) WriteNote(x, y, num int) error {
	i, err := s.noteTarget(x, y, num)
	if err != nil {
		return err
	}
	s.Notes[i] = s.Notes[i].with(num)
	return nil
}

func (s *GameState) ClearNote(x, y, num int) error {
	i, err := s.noteTarget(x, y, num)
	if err != nil {
		return err
	}
	s.Notes[i] = s.Notes[i].without(num)
	return nil
}

func (s *GameState) noteTarget(x, y, num int) (int, error) {
	if !s.ValidatePoint(x, y) {
		return 0, ErrOutOfBounds
	}
	if !s.ValidateDigit(num) {
		return 0, ErrInvalidDigit
	}
	i := y*s.Order + x
	if s.Given[i] {
		return 0, ErrGivenCell
	}
	return i, nil
}

func (s *GameState) ClearCellNotes(x, y int) error {
	if !s.ValidatePoint(x, y) {
		return ErrOutOfBounds
	}
	s.Notes[y*s.Order+x] = 0
	return nil
}

func (s *GameState) ClearAllNotes() {
	for i := range s.Notes {
		s.Notes[i] = 0
	}
}

// CellNotes returns the candidate mask at (x, y), zero when out of bounds.
func (s *GameState) CellNotes(x, y int) NoteMask {
	if !s.ValidatePoint(x, y) {
		return 0
	}
	return s.Notes[y*s.Order+x]
}

// IsSolved reports whether the playing grid matches the solution cell for
// cell, which implies every cell is filled and correct.
func (s *GameState) IsSolved() bool {
	return s.Cells.equal(s.Solution)
}

// EmptyCells counts cells still holding no digit.
func (s *GameState) EmptyCells() int {
	return s.Cells.countEmpty()
}
