package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePosition(t *testing.T) {
	tests := []struct {
		input   string
		x, y    int
		wantErr bool
	}{
		{"1, 1", 0, 0, false},
		{"9,9", 8, 8, false},
		{" 3 , 7 ", 2, 6, false},
		{"5", 0, 0, true},
		{"a, 2", 0, 0, true},
		{"2, b", 0, 0, true},
		{"", 0, 0, true},
	}
	for _, test := range tests {
		x, y, err := parsePosition(test.input)
		if test.wantErr {
			assert.Error(t, err, "input %q", test.input)
			continue
		}
		assert.NoError(t, err, "input %q", test.input)
		assert.Equal(t, test.x, x, "input %q", test.input)
		assert.Equal(t, test.y, y, "input %q", test.input)
	}
}
