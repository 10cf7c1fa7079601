package gridx

import (
	"iter"
	"slices"
)

// All yields the flat row major index and value of every element.
func (g *Grid2D[T]) All() iter.Seq2[int, T] {
	return slices.All(g.grid)
}

// Values yields every element in row major order.
func (g *Grid2D[T]) Values() iter.Seq[T] {
	return slices.Values(g.grid)
}

// Backward yields the flat row major index and value of every element, last
// to first.
func (g *Grid2D[T]) Backward() iter.Seq2[int, T] {
	return slices.Backward(g.grid)
}

// Pointers yields a pointer to every element in row major order.
func (g *Grid2D[T]) Pointers() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		for i := range g.grid {
			if !yield(&g.grid[i]) {
				return
			}
		}
	}
}

// ColMajor yields the flat column major index and value of every element:
// columns left to right, each one top to bottom.
func (g *Grid2D[T]) ColMajor() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := range len(g.grid) {
			if !yield(i, g.GetColMajorUnchecked(i)) {
				return
			}
		}
	}
}

// ColMajorBackward is ColMajor in reverse.
func (g *Grid2D[T]) ColMajorBackward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := len(g.grid) - 1; i >= 0; i-- {
			if !yield(i, g.GetColMajorUnchecked(i)) {
				return
			}
		}
	}
}

// RowValues yields the elements of row, left to right.
func (g *Grid2D[T]) RowValues(row int) (iter.Seq[T], error) {
	r, err := g.Row(row)
	if err != nil {
		return nil, err
	}
	return slices.Values(r), nil
}

// RowValuesUnchecked is RowValues without the bounds check. It panics like
// RowUnchecked.
func (g *Grid2D[T]) RowValuesUnchecked(row int) iter.Seq[T] {
	return slices.Values(g.RowUnchecked(row))
}

// RowPointers yields a pointer to each element of row, left to right.
func (g *Grid2D[T]) RowPointers(row int) (iter.Seq[*T], error) {
	if row < 0 || row >= g.rows {
		return nil, IndicesOutOfBounds(row, 0)
	}
	return g.strided(g.IndexUnchecked(row, 0), 1, g.cols), nil
}

// ColValues yields the elements of col, top to bottom.
func (g *Grid2D[T]) ColValues(col int) (iter.Seq[T], error) {
	if col < 0 || col >= g.cols {
		return nil, IndicesOutOfBounds(0, col)
	}
	return g.ColValuesUnchecked(col), nil
}

// ColValuesUnchecked is ColValues without the bounds check. A col out of range
// yields cells of other columns and panics once it steps outside the storage.
func (g *Grid2D[T]) ColValuesUnchecked(col int) iter.Seq[T] {
	return func(yield func(T) bool) {
		for p := range g.strided(col, g.cols, g.rows) {
			if !yield(*p) {
				return
			}
		}
	}
}

// ColPointers yields a pointer to each element of col, top to bottom.
func (g *Grid2D[T]) ColPointers(col int) (iter.Seq[*T], error) {
	if col < 0 || col >= g.cols {
		return nil, IndicesOutOfBounds(0, col)
	}
	return g.strided(col, g.cols, g.rows), nil
}

// strided yields n pointers into the storage, starting at index start and
// advancing by step.
func (g *Grid2D[T]) strided(start, step, n int) iter.Seq[*T] {
	return func(yield func(*T) bool) {
		for i := range n {
			if !yield(&g.grid[start+i*step]) {
				return
			}
		}
	}
}

// RowsSeq yields one sequence per row, top to bottom.
func (g *Grid2D[T]) RowsSeq() iter.Seq[iter.Seq[T]] {
	return func(yield func(iter.Seq[T]) bool) {
		for row := range g.rows {
			if !yield(g.RowValuesUnchecked(row)) {
				return
			}
		}
	}
}

// ColsSeq yields one sequence per column, left to right.
func (g *Grid2D[T]) ColsSeq() iter.Seq[iter.Seq[T]] {
	return func(yield func(iter.Seq[T]) bool) {
		for col := range g.cols {
			if !yield(g.ColValuesUnchecked(col)) {
				return
			}
		}
	}
}

// Chunks partitions the storage into consecutive views of size elements, in
// row major order, ignoring row boundaries. The last view is shorter when size
// does not divide Len. It panics if size is less than 1.
func (g *Grid2D[T]) Chunks(size int) iter.Seq[[]T] {
	return slices.Chunk(g.grid, size)
}
