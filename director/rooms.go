package director

import (
	"github.com/katalvlaran/hexdungeon/conn"
	"github.com/katalvlaran/hexdungeon/hexgrid"
)

// RoomShape selects how a Room occupies the grid.
type RoomShape int

const (
	// ShapeSingle occupies exactly one cell.
	ShapeSingle RoomShape = iota
	// ShapeCluster3 occupies a location plus its bottom-left and
	// bottom-right neighbors.
	ShapeCluster3
)

// Room describes a room to place via Director.addRoom. For ShapeSingle,
// only Single is consulted; for ShapeCluster3, ClusterTop/ClusterBL/
// ClusterBR describe the connections of the peak, bottom-left, and
// bottom-right cells respectively.
type Room struct {
	Shape     RoomShape
	Single    conn.Set
	ClusterTop, ClusterBL, ClusterBR conn.Set
	Location  hexgrid.Location
}
