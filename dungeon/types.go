package dungeon

import "github.com/katalvlaran/hexdungeon/conn"

// Kind tags which variant of CellType a value holds.
type Kind uint8

const (
	// KindNone means the cell is blocked off — nothing may connect to it.
	KindNone Kind = iota
	// KindHall means the cell is a corridor segment with the given
	// connections.
	KindHall
	// KindRoom means the cell is part of a room with the given
	// connections.
	KindRoom
)

// CellType is the tagged variant { None, Hall(conn.Set), Room(conn.Set) }.
// It is a plain comparable struct, so it satisfies the wfc engine's
// comparable constraint directly and compares by value like any Go sum
// encoded as (tag, payload).
type CellType struct {
	Kind Kind
	Conn conn.Set
}

// None is the single None variant.
var None = CellType{Kind: KindNone}

// Hall constructs a Hall variant with the given connections.
func Hall(c conn.Set) CellType {
	return CellType{Kind: KindHall, Conn: c}
}

// Room constructs a Room variant with the given connections.
func Room(c conn.Set) CellType {
	return CellType{Kind: KindRoom, Conn: c}
}

// AllCellTypes returns the full 129-member vocabulary: None, then every
// Hall(c), then every Room(c), with c ranging over conn.AllPossible() in
// its fixed order — the order Probabilities relies on for reproducible
// weighted sampling.
func AllCellTypes() []CellType {
	all := conn.AllPossible()
	out := make([]CellType, 0, 1+2*len(all))
	out = append(out, None)
	for _, c := range all {
		out = append(out, Hall(c))
	}
	for _, c := range all {
		out = append(out, Room(c))
	}
	return out
}
