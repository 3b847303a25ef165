package sudoku

import (
	"fmt"
	"math"
)

// GameParams describes a puzzle: the grid order (side length, a perfect
// square) and the number of given cells revealed to the player.
type GameParams struct {
	Order  int `json:"order"`
	Givens int `json:"givens"`
}

// Order is capped so a cell's candidate set fits a single NoteMask.
const MaxOrder = 25

func (p GameParams) blockSize() int {
	return int(math.Sqrt(float64(p.Order)))
}

func (p GameParams) Validate() error {
	if p.Order < 1 || p.Order > MaxOrder {
		return fmt.Errorf("order must be in [1, %d], got %d", MaxOrder, p.Order)
	}
	b := p.blockSize()
	if b*b != p.Order {
		return fmt.Errorf("order must be a perfect square, got %d", p.Order)
	}
	if p.Givens < 0 || p.Givens > p.Order*p.Order {
		return fmt.Errorf("givens must be in [0, %d], got %d",
			p.Order*p.Order, p.Givens)
	}
	return nil
}

func (p GameParams) ValidatePoint(x, y int) bool {
	return 0 <= x && x < p.Order && 0 <= y && y < p.Order
}

func (p GameParams) ValidateDigit(num int) bool {
	return 1 <= num && num <= p.Order
}

func (p GameParams) String() string {
	return fmt.Sprintf("%dx%d(%d)", p.Order, p.Order, p.Givens)
}
