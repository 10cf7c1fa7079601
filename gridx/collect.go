package gridx

import (
	"slices"

	"github.com/samber/lo"
)

// AsRows copies the grid into a slice of rows.
func (g *Grid2D[T]) AsRows() [][]T {
	return lo.Times(g.rows, func(row int) []T {
		return slices.Clone(g.RowUnchecked(row))
	})
}

// AsCols copies the grid into a slice of columns.
func (g *Grid2D[T]) AsCols() [][]T {
	return lo.Times(g.cols, func(col int) []T {
		return slices.Collect(g.ColValuesUnchecked(col))
	})
}

// AsRowMajor copies the elements in row major order.
func (g *Grid2D[T]) AsRowMajor() []T {
	return slices.Clone(g.grid)
}

// AsColMajor copies the elements in column major order.
func (g *Grid2D[T]) AsColMajor() []T {
	out := make([]T, 0, len(g.grid))
	for _, v := range g.ColMajor() {
		out = append(out, v)
	}
	return out
}

// Slice returns the row major storage itself. Writes through it update the
// grid; appends to it never do.
func (g *Grid2D[T]) Slice() []T {
	return g.grid[:len(g.grid):len(g.grid)]
}
