// Package conn defines the six-bit connection algebra shared by every hex
// cell type: which of a cell's six sides link to its neighbor in that
// direction.
//
// What:
//
//   - Set is an ordered six-tuple of booleans, one per hexgrid neighbor
//     index (hexgrid.TopLeft .. hexgrid.Left).
//   - All, None, New construct sets; Count, Or, AllPossible, AllExcept
//     enumerate and combine them.
//
// Why:
//
//   - The dungeon tile vocabulary (package dungeon) and its reducer both
//     key off Set directly; keeping the algebra in its own package means
//     neither has to re-derive bit semantics.
//
// Index semantics are fixed and owned by hexgrid; this package never
// reorders them.
package conn
