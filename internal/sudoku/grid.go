package sudoku

import (
	"fmt"
	"strings"
)

// Grid is a flat row-major n×n array of cell values. 0 marks an empty cell,
// 1..n are placed digits.
type Grid []int

func (g Grid) equal(other Grid) bool {
	if len(g) != len(other) {
		return false
	}
	for i := range g {
		if g[i] != other[i] {
			return false
		}
	}
	return true
}

func (g Grid) countEmpty() (count int) {
	for _, v := range g {
		if v == 0 {
			count++
		}
	}
	return
}

// ToString renders the grid as a bordered table, one block per bordered
// section. Empty cells render as dots. Given and player digits render
// identically.
func (g Grid) ToString(order int) string {
	b := 1
	for b*b < order {
		b++
	}
	var sb strings.Builder
	segment := strings.Repeat("-", 3*b)
	border := "+" + strings.Repeat(segment+"+", b)
	for y := range order {
		if y%b == 0 {
			sb.WriteString(border + "\n")
		}
		for x := range order {
			if x%b == 0 {
				sb.WriteString("|")
			}
			v := g[y*order+x]
			if v == 0 {
				sb.WriteString(" . ")
			} else {
				fmt.Fprintf(&sb, "%2d ", v)
			}
		}
		sb.WriteString("|\n")
	}
	sb.WriteString(border)
	return sb.String()
}
