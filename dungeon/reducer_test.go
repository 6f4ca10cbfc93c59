package dungeon_test

import (
	"testing"

	"github.com/katalvlaran/hexdungeon/conn"
	"github.com/katalvlaran/hexdungeon/dungeon"
	"github.com/katalvlaran/hexdungeon/hexgrid"
	"github.com/katalvlaran/hexdungeon/wfc"
)

func TestReduce_AllNeighborsOffGrid_ForcesNone(t *testing.T) {
	ctx := wfc.NewContext[dungeon.CellType](1, 1, dungeon.AllCellTypes())
	loc := hexgrid.New(0, 0)
	cell, ok := ctx.Grid().GetCell(loc)
	if !ok {
		t.Fatal("expected cell to exist")
	}

	changed := dungeon.Reduce(loc, cell, ctx.Grid())
	if !changed {
		t.Fatal("expected the lone cell's candidates to narrow")
	}
	if len(cell.PossibleTypes) != 1 || cell.PossibleTypes[0] != dungeon.None {
		t.Fatalf("possible types = %v, want [None]", cell.PossibleTypes)
	}
}

func TestReduce_RequiredConnectionNarrowsNeighbor(t *testing.T) {
	// 5x5 grid, settle the center's top-left neighbor to a Hall that
	// connects back (bottom-right bit set, i.e. toward the center), and
	// confirm the center's candidates narrow to only connect toward it.
	ctx := wfc.NewContext[dungeon.CellType](5, 5, dungeon.AllCellTypes())
	center := hexgrid.New(2, 2)
	neighbors := center.Neighbors()
	topLeftLoc := neighbors[hexgrid.TopLeft]

	// The neighbor at TopLeft must connect back toward center, i.e. on
	// its own BottomRight side (opposite of TopLeft).
	backConn := conn.New(false, false, false, true, false, false)
	ctx.ApplyTypes([]wfc.Update[dungeon.CellType]{
		{Location: topLeftLoc, Types: []dungeon.CellType{dungeon.Hall(backConn)}},
	})

	centerCell, ok := ctx.Grid().GetCell(center)
	if !ok {
		t.Fatal("expected center cell")
	}
	dungeon.Reduce(center, centerCell, ctx.Grid())

	for _, ct := range centerCell.PossibleTypes {
		if ct.Kind == dungeon.KindNone {
			t.Errorf("None should not survive when a neighbor requires a connection")
		}
		if !ct.Conn[hexgrid.TopLeft] {
			t.Errorf("surviving candidate %+v does not connect toward the required neighbor", ct)
		}
	}
}

func TestReduce_BannedNeighborExcludesConnection(t *testing.T) {
	ctx := wfc.NewContext[dungeon.CellType](5, 5, dungeon.AllCellTypes())
	center := hexgrid.New(2, 2)
	neighbors := center.Neighbors()
	rightLoc := neighbors[hexgrid.Right]

	// Settle the Right neighbor to None: banned.
	ctx.ApplyTypes([]wfc.Update[dungeon.CellType]{
		{Location: rightLoc, Types: []dungeon.CellType{dungeon.None}},
	})

	centerCell, ok := ctx.Grid().GetCell(center)
	if !ok {
		t.Fatal("expected center cell")
	}
	dungeon.Reduce(center, centerCell, ctx.Grid())

	for _, ct := range centerCell.PossibleTypes {
		if ct.Conn[hexgrid.Right] {
			t.Errorf("surviving candidate %+v connects toward a banned (None) neighbor", ct)
		}
	}
}

func TestReduce_AlreadySettled_NoChange(t *testing.T) {
	ctx := wfc.NewContext[dungeon.CellType](3, 3, []dungeon.CellType{dungeon.None})
	loc := hexgrid.New(1, 1)
	cell, _ := ctx.Grid().GetCell(loc)
	if dungeon.Reduce(loc, cell, ctx.Grid()) {
		t.Error("a settled cell should never be reported as changed")
	}
}

func TestReduce_NeutralNeighborDoesNotConstrain(t *testing.T) {
	ctx := wfc.NewContext[dungeon.CellType](5, 5, dungeon.AllCellTypes())
	center := hexgrid.New(2, 2)
	cell, _ := ctx.Grid().GetCell(center)
	before := len(cell.PossibleTypes)

	changed := dungeon.Reduce(center, cell, ctx.Grid())
	if changed {
		t.Error("an untouched cell surrounded only by untouched neighbors should not narrow")
	}
	if len(cell.PossibleTypes) != before {
		t.Error("possible type count should be unchanged")
	}
}
