package slicex

import "github.com/samber/lo"

// UniformLen returns the length shared by every inner slice of v, and false if
// v is ragged. An empty v is uniform with length 0.
func UniformLen[T any, S ~[]T](v []S) (int, bool) {
	if len(v) == 0 {
		return 0, true
	}
	n := len(v[0])
	return n, lo.EveryBy(v, func(s S) bool {
		return len(s) == n
	})
}
