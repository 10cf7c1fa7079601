package assertx

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

type recorder struct {
	messages []string
}

func (r *recorder) Errorf(format string, args ...interface{}) {
	r.messages = append(r.messages, fmt.Sprintf(format, args...))
}

func TestEqual(t *testing.T) {
	t.Run("should pass on equal nested slices", func(t *testing.T) {
		r := &recorder{}
		assert.True(t, Equal(r, [][]int{{1, 2}, {3, 4}}, [][]int{{1, 2}, {3, 4}}))
		assert.Empty(t, r.messages)
	})

	t.Run("should report a diff on mismatch", func(t *testing.T) {
		r := &recorder{}
		assert.False(t, Equal(r, [][]int{{1, 2}}, [][]int{{1, 3}}))
		if assert.Len(t, r.messages, 1) {
			assert.Contains(t, r.messages[0], "Not equal")
		}
	})
}
