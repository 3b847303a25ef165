package sudoku

import "math/bits"

// NoteMask holds a cell's candidate marks, one bit per digit: bit i set
// means digit i+1 is noted.
type NoteMask uint32

func (m NoteMask) Has(num int) bool {
	return m&(1<<(num-1)) != 0
}

func (m NoteMask) with(num int) NoteMask {
	return m | 1<<(num-1)
}

func (m NoteMask) without(num int) NoteMask {
	return m &^ (1 << (num - 1))
}

func (m NoteMask) Count() int {
	return bits.OnesCount32(uint32(m))
}

// Digits unpacks the mask into ascending noted digits.
func (m NoteMask) Digits() []int {
	if m == 0 {
		return nil
	}
	digits := make([]int, 0, m.Count())
	for num := 1; m != 0; num, m = num+1, m>>1 {
		if m&1 != 0 {
			digits = append(digits, num)
		}
	}
	return digits
}
