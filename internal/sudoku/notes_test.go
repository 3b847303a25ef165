package sudoku

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNoteMask(t *testing.T) {
	var m NoteMask
	require.Zero(t, m.Count())
	require.Nil(t, m.Digits())

	m = m.with(1).with(9).with(5).with(5)
	require.Equal(t, 3, m.Count())
	require.Equal(t, []int{1, 5, 9}, m.Digits())
	require.True(t, m.Has(5))
	require.False(t, m.Has(2))

	m = m.without(5).without(2)
	require.Equal(t, []int{1, 9}, m.Digits())
}

func TestGridToString(t *testing.T) {
	g := Grid{
		1, 2, 3, 4,
		3, 4, 1, 2,
		0, 0, 0, 0,
		4, 3, 2, 1,
	}
	want := "" +
		"+------+------+\n" +
		"| 1  2 | 3  4 |\n" +
		"| 3  4 | 1  2 |\n" +
		"+------+------+\n" +
		"| .  . | .  . |\n" +
		"| 4  3 | 2  1 |\n" +
		"+------+------+"
	require.Equal(t, want, g.ToString(4))
}
