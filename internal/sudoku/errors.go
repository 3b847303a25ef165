package sudoku

import "errors"

var (
	// ErrOutOfBounds is returned for cell coordinates outside [0, order).
	ErrOutOfBounds = errors.New("cell coordinates out of bounds")
	// ErrInvalidDigit is returned for digits outside [1, order].
	ErrInvalidDigit = errors.New("digit out of range")
	// ErrGivenCell is returned for mutations targeting a given cell.
	ErrGivenCell = errors.New("cell is given")
	// ErrGenerationFailed is returned when the backtracking fill exhausts
	// its retry budget without producing a full solution.
	ErrGenerationFailed = errors.New("could not generate a full solution")
)
