// Package hexgrid provides the locations and six-neighbor adjacency of a
// pointy-top hex grid stored as a rectangular row/col matrix.
//
// What:
//
//   - Location is a signed (row, col) pair; off-grid locations are
//     representable so callers can probe past an edge without wrapping.
//   - Neighbors returns the six adjacent locations in a fixed index order:
//     TopLeft, TopRight, Right, BottomRight, BottomLeft, Left.
//   - OppositeIndex maps a neighbor index to the index that points back.
//
// Why:
//
//   - Every higher package (conn, wfc, dungeon, director) keys its data by
//     Location and walks neighbors in this fixed order, so the index
//     semantics live in exactly one place.
//
// Bounds: this package never bounds-checks. A Location with a negative or
// out-of-range coordinate is a perfectly ordinary value; it is the grid
// that decides whether a Location is present.
package hexgrid
