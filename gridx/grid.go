// Package gridx provides Grid2D, a dense two dimensional container over a
// single flat slice.
//
// Elements are stored in row major order: the element at (row, col) lives at
// flat index row*cols + col. A grid is addressable by (row, col), by flat row
// major index, by flat column major index and by fixed length chunks aligned to
// row boundaries.
//
// Every checked accessor returns a GridError instead of panicking. Each one has
// an …Unchecked sibling that skips validation for loops where the bounds are
// already known; calling it with invalid input either panics or silently
// addresses another cell.
//
// A Grid2D is not safe for concurrent mutation. Slices and pointers handed out
// by its accessors are views into the grid's storage.
package gridx

import (
	"fmt"
	"iter"
	"log/slog"
	"reflect"
	"slices"

	"github.com/samber/lo"
	"go.opentelemetry.io/otel/attribute"

	"github.com/clinia/layoutx/mathx"
	"github.com/clinia/layoutx/slicex"
	"github.com/clinia/layoutx/slogx"
	"github.com/clinia/layoutx/utilx"
)

// Grid2D is a rows×cols grid of T. Its dimensions are fixed at construction
// and len(storage) == rows*cols always holds.
type Grid2D[T any] struct {
	rows int
	cols int
	grid []T
}

// New creates a rows×cols grid with every cell set to fill. Values are copied
// with plain assignment, so a fill holding pointers, slices or maps is shared
// by every cell. It panics if rows*cols overflows int.
func New[T any](fill T, rows, cols int) *Grid2D[T] {
	rows, cols, n := mustDims(rows, cols)
	grid := make([]T, n)
	for i := range grid {
		grid[i] = fill
	}
	return &Grid2D[T]{rows: rows, cols: cols, grid: grid}
}

// FromRows creates a grid from a slice of rows, which must all have the same
// length. No rows at all gives a 0×0 grid.
func FromRows[T any](rows [][]T) (*Grid2D[T], error) {
	rowLen, ok := slicex.UniformLen(rows)
	if !ok {
		return nil, DimensionMismatch()
	}
	return &Grid2D[T]{rows: len(rows), cols: rowLen, grid: lo.Flatten(rows)}, nil
}

// FromCols creates a grid from a slice of columns, which must all have the
// same length.
func FromCols[T any](cols [][]T) (*Grid2D[T], error) {
	colLen, ok := slicex.UniformLen(cols)
	if !ok {
		return nil, DimensionMismatch()
	}
	return FromColMajor(lo.Flatten(cols), colLen, len(cols))
}

// FromRowMajor creates a grid from a copy of elements given in row major
// order. len(elements) must equal rows*cols.
func FromRowMajor[T any](elements []T, rows, cols int) (*Grid2D[T], error) {
	rows, cols, n, ok := dims(rows, cols)
	if !ok || len(elements) != n {
		return nil, DimensionMismatch()
	}
	grid := make([]T, len(elements))
	copy(grid, elements)
	return &Grid2D[T]{rows: rows, cols: cols, grid: grid}, nil
}

// FromColMajor creates a grid from elements given in column major order.
// len(elements) must equal rows*cols.
func FromColMajor[T any](elements []T, rows, cols int) (*Grid2D[T], error) {
	rows, cols, n, ok := dims(rows, cols)
	if !ok || len(elements) != n {
		return nil, DimensionMismatch()
	}
	g := &Grid2D[T]{rows: rows, cols: cols, grid: make([]T, len(elements))}
	for i, e := range elements {
		g.SetColMajorUnchecked(i, e)
	}
	return g, nil
}

// FromFuncRowMajor creates a rows×cols grid calling fn once per cell, in row
// major order. It panics if rows*cols overflows int.
func FromFuncRowMajor[T any](fn func() T, rows, cols int) *Grid2D[T] {
	rows, cols, n := mustDims(rows, cols)
	return &Grid2D[T]{rows: rows, cols: cols, grid: generate(fn, n)}
}

// FromFuncColMajor creates a rows×cols grid calling fn once per cell, in
// column major order. It panics if rows*cols overflows int.
func FromFuncColMajor[T any](fn func() T, rows, cols int) *Grid2D[T] {
	rows, cols, n := mustDims(rows, cols)
	return utilx.Must(FromColMajor(generate(fn, n), rows, cols))
}

// FromSeqRowMajor creates a rows×cols grid from the first rows*cols values of
// seq, in row major order. Iteration stops once the grid is full; a shorter
// seq returns a NotEnoughElements error, and dimensions whose product
// overflows int a DimensionMismatch error.
func FromSeqRowMajor[T any](seq iter.Seq[T], rows, cols int) (*Grid2D[T], error) {
	rows, cols, n, ok := dims(rows, cols)
	if !ok {
		return nil, DimensionMismatch()
	}
	grid, ok := take(seq, n)
	if !ok {
		return nil, NotEnoughElements()
	}
	return &Grid2D[T]{rows: rows, cols: cols, grid: grid}, nil
}

// FromSeqColMajor is FromSeqRowMajor with the values of seq laid out in
// column major order.
func FromSeqColMajor[T any](seq iter.Seq[T], rows, cols int) (*Grid2D[T], error) {
	rows, cols, n, ok := dims(rows, cols)
	if !ok {
		return nil, DimensionMismatch()
	}
	elements, ok := take(seq, n)
	if !ok {
		return nil, NotEnoughElements()
	}
	return FromColMajor(elements, rows, cols)
}

// FromChunks tiles chunk rows*cols times. Each row holds cols copies of the
// chunk, so the grid is rows×(cols*len(chunk)) and Chunk(len(chunk), r, c)
// addresses the copy at (r, c). It panics if the cell count overflows int.
func FromChunks[T any](chunk []T, rows, cols int) *Grid2D[T] {
	rows, cols, copies := mustDims(rows, cols)
	width, ok := mathx.CheckedMul(cols, len(chunk))
	if !ok {
		panic(fmt.Sprintf("gridx: a row of %d chunks of length %d has more cells than an int can count", cols, len(chunk)))
	}
	rows, width, _ = mustDims(rows, width)
	return &Grid2D[T]{rows: rows, cols: width, grid: slices.Repeat(chunk, copies)}
}

// dims treats negative dimensions as zero and returns the cell count, or
// false when rows*cols overflows int.
func dims(rows, cols int) (int, int, int, bool) {
	rows, cols = max(rows, 0), max(cols, 0)
	n, ok := mathx.CheckedMul(rows, cols)
	return rows, cols, n, ok
}

func mustDims(rows, cols int) (int, int, int) {
	rows, cols, n, ok := dims(rows, cols)
	if !ok {
		panic(overflow(rows, cols))
	}
	return rows, cols, n
}

func overflow(rows, cols int) string {
	return fmt.Sprintf("gridx: a %d×%d grid has more cells than an int can count", rows, cols)
}

func generate[T any](fn func() T, n int) []T {
	return lo.Times(n, func(int) T {
		return fn()
	})
}

// take collects exactly n values of seq, without pulling more than n. Storage
// grows with the values received rather than with n.
func take[T any](seq iter.Seq[T], n int) ([]T, bool) {
	var out []T
	if n == 0 {
		return out, true
	}
	for v := range seq {
		out = append(out, v)
		if len(out) == n {
			break
		}
	}
	return out, len(out) == n
}

// Rows returns the number of rows.
func (g *Grid2D[T]) Rows() int {
	return g.rows
}

// Cols returns the number of columns.
func (g *Grid2D[T]) Cols() int {
	return g.cols
}

// Len returns the number of cells, rows×cols.
func (g *Grid2D[T]) Len() int {
	return g.rows * g.cols
}

// RowLen returns the length of a row, which is the number of columns.
func (g *Grid2D[T]) RowLen() int {
	return g.cols
}

// ColLen returns the length of a column, which is the number of rows.
func (g *Grid2D[T]) ColLen() int {
	return g.rows
}

// ChunkedCapacity returns the number of whole chunks of chunkLen in the grid.
// It panics if chunkLen is zero.
func (g *Grid2D[T]) ChunkedCapacity(chunkLen int) int {
	return g.Len() / chunkLen
}

// ChunksPerRow returns the number of whole chunks of chunkLen in a row.
// It panics if chunkLen is zero.
func (g *Grid2D[T]) ChunksPerRow(chunkLen int) int {
	return g.cols / chunkLen
}

// Equal reports whether a and b have the same dimensions and elements.
func Equal[T comparable](a, b *Grid2D[T]) bool {
	return a.rows == b.rows && a.cols == b.cols && slices.Equal(a.grid, b.grid)
}

// String describes the shape and element type of the grid, not its contents.
//
//	Grid2D { 2×3, int }
func (g *Grid2D[T]) String() string {
	return fmt.Sprintf("Grid2D { %d×%d, %s }", g.rows, g.cols, reflect.TypeFor[T]())
}

func (g *Grid2D[T]) Attributes() []attribute.KeyValue {
	return []attribute.KeyValue{
		attribute.Int("rows", g.rows),
		attribute.Int("cols", g.cols),
		attribute.String("type", reflect.TypeFor[T]().String()),
	}
}

func (g *Grid2D[T]) LogValue() slog.Value {
	return slogx.GroupValue(g)
}
