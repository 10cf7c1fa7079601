package slicex

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUniformLen(t *testing.T) {
	for _, test := range []struct {
		name     string
		input    [][]int
		expected int
		ok       bool
	}{
		{name: "nil", input: nil, expected: 0, ok: true},
		{name: "empty rows", input: [][]int{{}, {}}, expected: 0, ok: true},
		{name: "uniform", input: [][]int{{1, 2, 3}, {4, 5, 6}}, expected: 3, ok: true},
		{name: "single", input: [][]int{{1}}, expected: 1, ok: true},
		{name: "ragged", input: [][]int{{1, 2}, {3, 4, 5}}, expected: 2, ok: false},
		{name: "ragged tail", input: [][]int{{1, 2}, {3, 4}, {}}, expected: 2, ok: false},
	} {
		t.Run(test.name, func(t *testing.T) {
			n, ok := UniformLen(test.input)
			assert.Equal(t, test.ok, ok)
			assert.Equal(t, test.expected, n)
		})
	}
}
