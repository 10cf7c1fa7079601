// Package assertx holds test assertions that complement testify.
package assertx

import (
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

type tHelper interface {
	Helper()
}

// Equal asserts that expected and actual are equal according to go-cmp, and
// reports a structural diff when they are not. Nested slices such as the
// rows of a grid are easier to read as a diff than as testify's dump.
func Equal(t assert.TestingT, expected interface{}, actual interface{}, opts ...cmp.Option) (ok bool) {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}
	if !cmp.Equal(expected, actual, opts...) {
		t.Errorf("Not equal: \n%s", cmp.Diff(expected, actual, opts...))
		return false
	}

	return true
}
