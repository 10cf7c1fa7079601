package gridx

// Index translates (row, col) into a flat row major index.
func (g *Grid2D[T]) Index(row, col int) (int, error) {
	if !g.contains(row, col) {
		return 0, IndicesOutOfBounds(row, col)
	}
	return g.IndexUnchecked(row, col), nil
}

// IndexUnchecked is Index without the bounds check. A col past the end of a
// row addresses a cell of a following row.
func (g *Grid2D[T]) IndexUnchecked(row, col int) int {
	return row*g.cols + col
}

// Coords translates a flat row major index into (row, col).
func (g *Grid2D[T]) Coords(index int) (row, col int, err error) {
	if !g.containsIndex(index) {
		return 0, 0, IndexOutOfBounds(index)
	}
	row, col = g.CoordsUnchecked(index)
	return row, col, nil
}

// CoordsUnchecked is Coords without the bounds check. It panics on a grid
// with no columns.
func (g *Grid2D[T]) CoordsUnchecked(index int) (row, col int) {
	return index / g.cols, index % g.cols
}

// ColMajorCoords translates a flat column major index into (row, col).
func (g *Grid2D[T]) ColMajorCoords(index int) (row, col int, err error) {
	if !g.containsIndex(index) {
		return 0, 0, IndexOutOfBounds(index)
	}
	row, col = g.ColMajorCoordsUnchecked(index)
	return row, col, nil
}

// ColMajorCoordsUnchecked is ColMajorCoords without the bounds check. It
// panics on a grid with no rows.
func (g *Grid2D[T]) ColMajorCoordsUnchecked(index int) (row, col int) {
	return index % g.rows, index / g.rows
}

// ChunkIndex translates the chunk at (row, col) into the flat index of its
// first element. Chunks are chunkLen long and col counts chunks, not cells, so
// the chunk starts at cell (row, col*chunkLen).
//
// Only whole chunks are addressable: col must be below cols/chunkLen. Whether
// cols is a multiple of chunkLen is not checked; the trailing cols%chunkLen
// cells of each row are simply never part of a chunk.
func (g *Grid2D[T]) ChunkIndex(chunkLen, row, col int) (int, error) {
	if !g.containsChunk(chunkLen, row, col) {
		return 0, ChunkIndicesOutOfBounds(row, col, chunkLen)
	}
	return g.ChunkIndexUnchecked(chunkLen, row, col), nil
}

// ChunkIndexUnchecked is ChunkIndex without the bounds check. A col at or past
// cols/chunkLen yields an index whose chunk runs into the next row.
func (g *Grid2D[T]) ChunkIndexUnchecked(chunkLen, row, col int) int {
	return row*g.cols + col*chunkLen
}

func (g *Grid2D[T]) contains(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

func (g *Grid2D[T]) containsIndex(index int) bool {
	return index >= 0 && index < len(g.grid)
}

func (g *Grid2D[T]) containsChunk(chunkLen, row, col int) bool {
	return chunkLen > 0 && row >= 0 && row < g.rows && col >= 0 && col < g.cols/chunkLen
}

// Get returns the element at (row, col).
func (g *Grid2D[T]) Get(row, col int) (T, error) {
	if !g.contains(row, col) {
		var zero T
		return zero, IndicesOutOfBounds(row, col)
	}
	return g.GetUnchecked(row, col), nil
}

// GetUnchecked is Get without the bounds check. A col outside the row reads a
// cell of a neighbouring row, and a cell outside the storage panics.
func (g *Grid2D[T]) GetUnchecked(row, col int) T {
	return g.grid[g.IndexUnchecked(row, col)]
}

// GetRowMajor returns the element at the flat row major index.
func (g *Grid2D[T]) GetRowMajor(index int) (T, error) {
	if !g.containsIndex(index) {
		var zero T
		return zero, IndexOutOfBounds(index)
	}
	return g.GetRowMajorUnchecked(index), nil
}

// GetRowMajorUnchecked is GetRowMajor without the bounds check. It panics if
// index is out of range.
func (g *Grid2D[T]) GetRowMajorUnchecked(index int) T {
	return g.grid[index]
}

// GetColMajor returns the element at the flat column major index.
func (g *Grid2D[T]) GetColMajor(index int) (T, error) {
	if !g.containsIndex(index) {
		var zero T
		return zero, IndexOutOfBounds(index)
	}
	return g.GetColMajorUnchecked(index), nil
}

// GetColMajorUnchecked is GetColMajor without the bounds check. An index past
// the end may read another cell instead of panicking.
func (g *Grid2D[T]) GetColMajorUnchecked(index int) T {
	return *g.RefColMajorUnchecked(index)
}

// Ref returns a pointer to the element at (row, col). The pointer stays valid
// for the life of the grid.
func (g *Grid2D[T]) Ref(row, col int) (*T, error) {
	if !g.contains(row, col) {
		return nil, IndicesOutOfBounds(row, col)
	}
	return g.RefUnchecked(row, col), nil
}

// RefUnchecked is Ref without the bounds check, with the aliasing of
// GetUnchecked.
func (g *Grid2D[T]) RefUnchecked(row, col int) *T {
	return &g.grid[g.IndexUnchecked(row, col)]
}

// RefRowMajor returns a pointer to the element at the flat row major index.
func (g *Grid2D[T]) RefRowMajor(index int) (*T, error) {
	if !g.containsIndex(index) {
		return nil, IndexOutOfBounds(index)
	}
	return g.RefRowMajorUnchecked(index), nil
}

// RefRowMajorUnchecked is RefRowMajor without the bounds check. It panics if
// index is out of range.
func (g *Grid2D[T]) RefRowMajorUnchecked(index int) *T {
	return &g.grid[index]
}

// RefColMajor returns a pointer to the element at the flat column major index.
func (g *Grid2D[T]) RefColMajor(index int) (*T, error) {
	if !g.containsIndex(index) {
		return nil, IndexOutOfBounds(index)
	}
	return g.RefColMajorUnchecked(index), nil
}

// RefColMajorUnchecked is RefColMajor without the bounds check, with the
// aliasing of GetColMajorUnchecked.
func (g *Grid2D[T]) RefColMajorUnchecked(index int) *T {
	row, col := g.ColMajorCoordsUnchecked(index)
	return g.RefUnchecked(row, col)
}

// Set stores v at (row, col).
func (g *Grid2D[T]) Set(row, col int, v T) error {
	if !g.contains(row, col) {
		return IndicesOutOfBounds(row, col)
	}
	g.SetUnchecked(row, col, v)
	return nil
}

// SetUnchecked is Set without the bounds check, with the aliasing of
// GetUnchecked.
func (g *Grid2D[T]) SetUnchecked(row, col int, v T) {
	g.grid[g.IndexUnchecked(row, col)] = v
}

// SetRowMajor stores v at the flat row major index.
func (g *Grid2D[T]) SetRowMajor(index int, v T) error {
	if !g.containsIndex(index) {
		return IndexOutOfBounds(index)
	}
	g.SetRowMajorUnchecked(index, v)
	return nil
}

// SetRowMajorUnchecked is SetRowMajor without the bounds check. It panics if
// index is out of range.
func (g *Grid2D[T]) SetRowMajorUnchecked(index int, v T) {
	g.grid[index] = v
}

// SetColMajor stores v at the flat column major index.
func (g *Grid2D[T]) SetColMajor(index int, v T) error {
	if !g.containsIndex(index) {
		return IndexOutOfBounds(index)
	}
	g.SetColMajorUnchecked(index, v)
	return nil
}

// SetColMajorUnchecked is SetColMajor without the bounds check, with the
// aliasing of GetColMajorUnchecked.
func (g *Grid2D[T]) SetColMajorUnchecked(index int, v T) {
	*g.RefColMajorUnchecked(index) = v
}

// Row returns a view of the given row. Writes through the view update the
// grid; its capacity ends with the row, so appending to it never does.
func (g *Grid2D[T]) Row(row int) ([]T, error) {
	if row < 0 || row >= g.rows {
		return nil, IndicesOutOfBounds(row, 0)
	}
	return g.RowUnchecked(row), nil
}

// RowUnchecked is Row without the bounds check. A row out of range panics
// unless the grid has no columns.
func (g *Grid2D[T]) RowUnchecked(row int) []T {
	start := g.IndexUnchecked(row, 0)
	end := start + g.cols
	return g.grid[start:end:end]
}

// Chunk returns a view of the chunkLen long chunk at (row, col), see
// ChunkIndex for how chunks are addressed.
func (g *Grid2D[T]) Chunk(chunkLen, row, col int) ([]T, error) {
	if !g.containsChunk(chunkLen, row, col) {
		return nil, ChunkIndicesOutOfBounds(row, col, chunkLen)
	}
	return g.ChunkUnchecked(chunkLen, row, col), nil
}

// ChunkUnchecked is Chunk without the bounds check. Past the last whole chunk
// of a row it returns cells of the next row, and past the end of the grid it
// panics.
func (g *Grid2D[T]) ChunkUnchecked(chunkLen, row, col int) []T {
	start := g.ChunkIndexUnchecked(chunkLen, row, col)
	end := start + chunkLen
	return g.grid[start:end:end]
}

// SetChunk copies the first chunkLen values of elements into the chunk at
// (row, col). It returns a DimensionMismatch error when elements is shorter
// than a chunk.
func (g *Grid2D[T]) SetChunk(chunkLen, row, col int, elements []T) error {
	if !g.containsChunk(chunkLen, row, col) {
		return ChunkIndicesOutOfBounds(row, col, chunkLen)
	}
	if len(elements) < chunkLen {
		return DimensionMismatch()
	}
	g.SetChunkUnchecked(chunkLen, row, col, elements)
	return nil
}

// SetChunkUnchecked copies min(chunkLen, len(elements)) values into the chunk
// at (row, col), with the same addressing as ChunkUnchecked.
func (g *Grid2D[T]) SetChunkUnchecked(chunkLen, row, col int, elements []T) {
	copy(g.ChunkUnchecked(chunkLen, row, col), elements)
}
