package dungeon

import (
	"github.com/katalvlaran/hexdungeon/hexgrid"
	"github.com/katalvlaran/hexdungeon/wfc"
)

// requirement classifies what a neighbor demands of the cell under
// reduction, from that neighbor's own current state.
type requirement int

const (
	neutral requirement = iota
	required
	banned
)

// Reduce is the dungeon reducer: a wfc.Reducer[CellType] that narrows a
// cell's candidates to stay consistent with its six neighbors. It is a
// pure function of the cell and its neighborhood — no hidden state — and
// is always safe to re-run to a fixed point.
func Reduce(loc hexgrid.Location, cell *wfc.PendingCell[CellType], grid *wfc.Grid[CellType]) bool {
	before := len(cell.PossibleTypes)
	if before <= 1 {
		return false
	}

	neighborLocs := loc.Neighbors()
	var reqs [hexgrid.NumNeighbors]requirement
	for i, nloc := range neighborLocs {
		reqs[i] = classifyNeighbor(i, nloc, grid)
	}

	anyRequired := false
	allBanned := true
	for _, r := range reqs {
		if r == required {
			anyRequired = true
		}
		if r != banned {
			allBanned = false
		}
	}

	if allBanned {
		cell.PossibleTypes = []CellType{None}
	} else {
		filtered := cell.PossibleTypes[:0:0]
		for _, t := range cell.PossibleTypes {
			if survives(t, reqs, anyRequired) {
				filtered = append(filtered, t)
			}
		}
		cell.PossibleTypes = filtered
	}

	return len(cell.PossibleTypes) != before
}

// classifyNeighbor determines whether the neighbor reached by side i of
// the cell under reduction requires, bans, or leaves neutral a
// connection on that side.
func classifyNeighbor(i int, nloc hexgrid.Location, grid *wfc.Grid[CellType]) requirement {
	ncell, ok := grid.GetCell(nloc)
	if !ok {
		return banned
	}
	switch len(ncell.PossibleTypes) {
	case 0:
		return banned
	default:
		if len(ncell.PossibleTypes) > 1 {
			return neutral
		}
	}

	switch t := ncell.PossibleTypes[0]; t.Kind {
	case KindNone:
		return banned
	case KindHall, KindRoom:
		if t.Conn[hexgrid.OppositeIndex(i)] {
			return required
		}
		return banned
	default:
		return banned
	}
}

// survives reports whether candidate t is consistent with the
// per-neighbor requirements already computed for this cell.
func survives(t CellType, reqs [hexgrid.NumNeighbors]requirement, anyRequired bool) bool {
	if t.Kind == KindNone {
		return !anyRequired
	}
	for i, r := range reqs {
		switch r {
		case required:
			if !t.Conn[i] {
				return false
			}
		case banned:
			if t.Conn[i] {
				return false
			}
		}
	}
	return true
}
