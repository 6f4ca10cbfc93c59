// Package director drives the generic wfc engine through a seeded,
// deterministic pipeline that produces a hex dungeon: landmark placement,
// guided path forging, constraint propagation, random fill, and a final
// reachability cleanup.
//
// What:
//
//   - Director owns a wfc.Context[dungeon.CellType], the start/goal
//     locations, and the staged state machine described in spec.md §4.F:
//     Init → PlacedRooms → ForgingPath → Wfc → Fill → Clean → Idle.
//   - Step advances the machine by exactly one transition; Generate runs
//     Step until CanDoMoreWork reports false.
//   - Room placement (Single or Cluster3) goes through addRoom, which
//     applies the room's connections directly via wfc.Context.ApplyTypes.
//
// Why:
//
//   - Staging the pipeline this way guarantees a start-to-goal corridor
//     exists before the generic solver is allowed to fill in the rest,
//     and the final Clean phase guarantees every surviving cell is
//     reachable — properties the generic wfc engine alone cannot promise
//     on its own (it never backtracks on a contradiction).
//
// Determinism: Director seeds its private *wrand.Rand exactly once, when
// the Init transition runs, from the Seed field as it stood at that
// moment. Two Directors built with the same (rows, cols, Seed,
// MeanderFactor) and driven only by Step/Generate (no external
// ApplyTypes injected) produce byte-identical final grids and identical
// iteration counts.
//
// Concurrency: Director embeds a sync.RWMutex. Step holds it for the
// entire transition (non-reentrant, matching the single-threaded
// cooperative model in spec.md §5); the read-only observers
// (StartLocation, GoalLocation, GoalEntranceLocation, GoalLocations,
// DebugState) take a read lock so a
// hosting UI goroutine can poll state between Step calls.
package director
