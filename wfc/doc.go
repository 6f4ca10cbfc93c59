// Package wfc is a generic Wave Function Collapse engine over a hex grid:
// superposition cells, a neighbor-aware propagation queue, and a
// queue-driven fixed-point solver. It knows nothing about dungeons,
// terrain, or any other concrete cell type — it is parameterized over T,
// the cell type domain, and driven entirely by a caller-supplied Reducer.
//
// What:
//
//   - PendingCell[T] holds a cell's remaining candidate types.
//   - Grid[T] is a dense rows×cols matrix of PendingCell[T], looked up by
//     hexgrid.Location with absent (not error) results out of bounds.
//   - Context[T] owns a Grid[T] plus a FIFO propagation queue with
//     set-like dedup, and drives Reducer calls to a fixed point.
//
// Why:
//
//   - Separating the engine from any one tile vocabulary lets the same
//     solver run a dungeon generator (package dungeon) or an unrelated
//     terrain demo (package terrain) against the identical propagation
//     discipline.
//
// Complexity:
//
//   - ApplyTypes: O(1) per updated cell plus its six neighbors enqueued.
//   - IterateQueue: O(1) amortized per dequeue, plus the reducer's own
//     cost (typically O(NumNeighbors)).
//   - IterateQueueComplete: bounded by monotonicity — total possibility
//     count across all cells only shrinks between external edits, so the
//     queue drains in a finite number of steps.
//
// Concurrency: Context[T] embeds a sync.RWMutex so a hosting goroutine
// can safely read Grid/Queue snapshots between calls to ApplyTypes or
// IterateQueue; within a single such call everything is synchronous and
// non-reentrant, matching the single-threaded cooperative scheduling
// model this engine is designed for.
package wfc
