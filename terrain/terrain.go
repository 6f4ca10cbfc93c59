package terrain

import (
	"github.com/katalvlaran/hexdungeon/hexgrid"
	"github.com/katalvlaran/hexdungeon/wfc"
)

// CellType is the terrain demo's tile vocabulary: a simple three-value
// sum, unrelated to dungeon.CellType, used purely to prove package wfc
// is not dungeon-shaped.
type CellType int

const (
	Beach CellType = iota
	Sea
	Land
)

// AllCellTypes returns the full demo vocabulary.
func AllCellTypes() []CellType {
	return []CellType{Beach, Sea, Land}
}

// Reduce narrows a cell's candidates so that: Land never survives next to
// a settled Sea neighbor, Sea never survives next to a settled Land
// neighbor, and Beach never survives once every neighbor has settled to
// Land (a beach with no possible adjacent water is not a beach).
//
// Loosely mirrors lvlath's gridgraph.GridOptions.LandThreshold notion of
// land-vs-water classification, reduced to a three-way hex adjacency rule
// instead of a threshold over a 2D integer grid.
func Reduce(loc hexgrid.Location, cell *wfc.PendingCell[CellType], grid *wfc.Grid[CellType]) bool {
	before := len(cell.PossibleTypes)
	if before <= 1 {
		return false
	}

	seaAdjacent := false
	landAdjacent := false
	allSettledToLand := true

	for _, nloc := range loc.Neighbors() {
		ncell, ok := grid.GetCell(nloc)
		if !ok {
			allSettledToLand = false
			continue
		}
		if len(ncell.PossibleTypes) != 1 {
			allSettledToLand = false
			continue
		}
		switch ncell.PossibleTypes[0] {
		case Sea:
			seaAdjacent = true
			allSettledToLand = false
		case Beach:
			allSettledToLand = false
		case Land:
			landAdjacent = true
		}
	}

	filtered := cell.PossibleTypes[:0:0]
	for _, t := range cell.PossibleTypes {
		switch t {
		case Land:
			if seaAdjacent {
				continue
			}
		case Sea:
			if landAdjacent {
				continue
			}
		case Beach:
			if allSettledToLand {
				continue
			}
		}
		filtered = append(filtered, t)
	}
	cell.PossibleTypes = filtered

	return len(cell.PossibleTypes) != before
}
