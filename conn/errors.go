package conn

import "errors"

// ErrWrongLength is returned by FromSlice when the input slice does not
// have exactly hexgrid.NumNeighbors elements.
var ErrWrongLength = errors.New("conn: slice must have exactly hexgrid.NumNeighbors elements")
