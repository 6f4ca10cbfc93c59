package wfc

import "github.com/katalvlaran/hexdungeon/hexgrid"

// PendingCell holds the in-progress state of one grid cell: the types it
// could still resolve to. Cells are created once, at grid construction,
// and only PossibleTypes mutates thereafter.
type PendingCell[T comparable] struct {
	// PossibleTypes is the cell's remaining candidate set. Reducers may
	// only narrow this slice, never grow it.
	PossibleTypes []T
	// Location is this cell's fixed position in its owning Grid.
	Location hexgrid.Location

	maxCellTypes int
}

// IsSettled reports whether the cell has been narrowed to one or zero
// candidates.
func (c *PendingCell[T]) IsSettled() bool {
	return len(c.PossibleTypes) <= 1
}

// IsImpossible reports whether the cell has no remaining candidates. This
// is not an error condition — the engine does not backtrack, and leaves
// such cells for the caller (e.g. the dungeon director's cleanup phase)
// to deal with.
func (c *PendingCell[T]) IsImpossible() bool {
	return len(c.PossibleTypes) == 0
}

// IsUntouched reports whether the cell still holds its full initial
// candidate set.
func (c *PendingCell[T]) IsUntouched() bool {
	return len(c.PossibleTypes) == c.maxCellTypes
}
