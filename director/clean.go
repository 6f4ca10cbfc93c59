package director

import (
	"github.com/katalvlaran/hexdungeon/conn"
	"github.com/katalvlaran/hexdungeon/dungeon"
	"github.com/katalvlaran/hexdungeon/hexgrid"
)

// cleanup performs the Clean stage's breadth-first flood fill from
// startLocation, following only outgoing connection bits of each cell's
// sole remaining variant. Any cell not reached is zeroed to
// PossibleTypes = nil ("cut off").
//
// This bypasses wfc.Context.ApplyTypes deliberately: the grid is already
// fully settled by this point, and zeroing a cell here must not
// re-enqueue it for propagation — there is nothing left to propagate.
func (d *Director) cleanup() {
	grid := d.WFC.Grid()

	visited := map[hexgrid.Location]bool{d.startLocation: true}
	queue := []hexgrid.Location{d.startLocation}

	for len(queue) > 0 {
		loc := queue[0]
		queue = queue[1:]

		cell, ok := grid.GetCell(loc)
		if !ok || len(cell.PossibleTypes) == 0 {
			continue
		}

		connections := conn.None()
		if t := cell.PossibleTypes[0]; t.Kind == dungeon.KindHall || t.Kind == dungeon.KindRoom {
			connections = t.Conn
		}

		for i, n := range loc.Neighbors() {
			if !connections[i] || visited[n] {
				continue
			}
			visited[n] = true
			queue = append(queue, n)
		}
	}

	for row := 0; row < grid.Rows(); row++ {
		for col := 0; col < grid.Cols(); col++ {
			loc := hexgrid.New(row, col)
			if visited[loc] {
				continue
			}
			if cell, ok := grid.GetCell(loc); ok {
				cell.PossibleTypes = nil
			}
		}
	}
}
