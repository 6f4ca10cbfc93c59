// Package dungeon supplies the tile vocabulary and neighbor-consistency
// reducer that the director (package director) drives through the
// generic wfc engine to build a hex dungeon map.
//
// What:
//
//   - CellType is the tagged variant None | Hall(conn.Set) | Room(conn.Set)
//     — 1 + 64 + 64 = 129 total variants.
//   - Probabilities is a static, lazily built weight table used for
//     weighted random collapse of an undecided cell.
//   - Reduce is the wfc.Reducer[CellType] consulted by every propagation
//     step: it classifies each neighbor as Required, Banned, or Neutral
//     and narrows the cell's candidates accordingly.
//
// Why:
//
//   - Keeping the tile vocabulary and its consistency rule in one package,
//     separate from the director's state machine, lets the reducer be
//     tested in isolation against hand-built neighborhoods.
//
// The ≤2-connection probability cap gives every tile with three or more
// connections weight 0, keeping corridors and rooms locally sparse; within
// the cap, a tile's weight falls as its connection count rises from 0 to 2.
// See Probabilities for the exact weights.
package dungeon
