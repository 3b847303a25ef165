package sudoku

import (
	"math/rand/v2"
)

// How many fresh-permutation restarts a single NewGame call may spend before
// giving up. Diagonal seeding makes a global backtracking failure all but
// impossible for order 9, but the fill is exhaustive and its failure has to
// propagate somewhere.
const maxFillAttempts = 10

// generate produces a complete valid solution: every row, column and block a
// permutation of 1..order. Diagonal blocks are seeded with independent random
// permutations first (they share no row, column or block pairwise), then the
// rest of the grid is filled by exhaustive backtracking.
func (p GameParams) generate(r *rand.Rand) (Grid, error) {
	for attempt := 1; attempt <= maxFillAttempts; attempt++ {
		solution := make(Grid, p.Order*p.Order)
		p.fillDiagonal(solution, r)
		if p.fillRemaining(solution, p.blockSize(), 0) {
			return solution, nil
		}
		Log.WithField("attempt", attempt).
			Debug("backtracking fill exhausted, reseeding")
	}
	return nil, ErrGenerationFailed
}

func (p GameParams) fillDiagonal(g Grid, r *rand.Rand) {
	for i := 0; i < p.Order; i += p.blockSize() {
		p.fillBlock(g, i, i, r)
	}
}

// fillBlock assigns a random permutation of 1..order row-major within the
// block whose top-left cell is (column, row).
func (p GameParams) fillBlock(g Grid, row, column int, r *rand.Rand) {
	b := p.blockSize()
	nums := r.Perm(p.Order)
	for y := range b {
		for x := range b {
			g[(row+y)*p.Order+column+x] = nums[y*b+x] + 1
		}
	}
}

// fillRemaining fills every still-empty cell in row-major scan order from
// (x, y), trying candidates in ascending order and backtracking on dead
// ends. Returns false only when no candidate works anywhere up the chain.
func (p GameParams) fillRemaining(g Grid, x, y int) bool {
	if y == p.Order-1 && x == p.Order {
		return true
	}
	if x == p.Order {
		x = 0
		y++
	}
	if g[y*p.Order+x] != 0 {
		return p.fillRemaining(g, x+1, y)
	}
	for num := 1; num <= p.Order; num++ {
		if p.checkPosition(g, x, y, num) {
			g[y*p.Order+x] = num
			if p.fillRemaining(g, x+1, y) {
				return true
			}
			g[y*p.Order+x] = 0
		}
	}
	return false
}

// checkPosition reports whether num can be placed at (x, y) without
// repeating in its row, column or block.
func (p GameParams) checkPosition(g Grid, x, y, num int) bool {
	return !p.usedInRow(g, y, num) &&
		!p.usedInColumn(g, x, num) &&
		!p.usedInBlock(g, x, y, num)
}

func (p GameParams) usedInRow(g Grid, row, num int) bool {
	for x := range p.Order {
		if g[row*p.Order+x] == num {
			return true
		}
	}
	return false
}

func (p GameParams) usedInColumn(g Grid, column, num int) bool {
	for y := range p.Order {
		if g[y*p.Order+column] == num {
			return true
		}
	}
	return false
}

func (p GameParams) usedInBlock(g Grid, x, y, num int) bool {
	b := p.blockSize()
	left := x - x%b
	top := y - y%b
	for yy := top; yy < top+b; yy++ {
		for xx := left; xx < left+b; xx++ {
			if g[yy*p.Order+xx] == num {
				return true
			}
		}
	}
	return false
}

// pickGivens samples Givens distinct flat cell indices by rejection.
// Validate bounds Givens by order², so the loop terminates.
func (p GameParams) pickGivens(r *rand.Rand) []int {
	used := make(map[int]bool, p.Givens)
	givens := make([]int, 0, p.Givens)
	for len(givens) < p.Givens {
		i := r.IntN(p.Order)*p.Order + r.IntN(p.Order)
		if !used[i] {
			used[i] = true
			givens = append(givens, i)
		}
	}
	return givens
}
