package wfc

import "github.com/katalvlaran/hexdungeon/hexgrid"

// Grid is a dense rows×cols matrix of PendingCell[T]. Each cell is
// uniquely owned by the Grid and referenced through a pointer so a
// Reducer can hold a mutable handle on the cell under reduction while
// taking read-only looks at its neighbors through the same Grid.
type Grid[T comparable] struct {
	rows, cols int
	cells      [][]*PendingCell[T]
}

// NewGrid builds a Grid with every cell in superposition over initTypes.
func NewGrid[T comparable](rows, cols int, initTypes []T) *Grid[T] {
	g := &Grid[T]{
		rows:  rows,
		cols:  cols,
		cells: make([][]*PendingCell[T], rows),
	}
	for row := 0; row < rows; row++ {
		rowCells := make([]*PendingCell[T], cols)
		for col := 0; col < cols; col++ {
			possible := make([]T, len(initTypes))
			copy(possible, initTypes)
			rowCells[col] = &PendingCell[T]{
				PossibleTypes: possible,
				Location:      hexgrid.New(row, col),
				maxCellTypes:  len(initTypes),
			}
		}
		g.cells[row] = rowCells
	}
	return g
}

// Rows returns the grid's row count.
func (g *Grid[T]) Rows() int { return g.rows }

// Cols returns the grid's column count.
func (g *Grid[T]) Cols() int { return g.cols }

// GetCell returns the cell at loc, or ok=false if loc falls outside the
// grid. Lookup outside bounds is a normal, expected occurrence (every hex
// neighbor query can land off-grid), not an error.
func (g *Grid[T]) GetCell(loc hexgrid.Location) (cell *PendingCell[T], ok bool) {
	if loc.Row < 0 || loc.Col < 0 || loc.Row >= g.rows || loc.Col >= g.cols {
		return nil, false
	}
	return g.cells[loc.Row][loc.Col], true
}

// Each calls fn once per cell in row-major order.
func (g *Grid[T]) Each(fn func(cell *PendingCell[T])) {
	for _, row := range g.cells {
		for _, cell := range row {
			fn(cell)
		}
	}
}
