package wfc

import (
	"sync"

	"github.com/katalvlaran/hexdungeon/hexgrid"
)

// Reducer narrows a cell's PossibleTypes based on its neighbors' current
// state, and reports whether it changed anything. The engine guarantees
// at most one Reducer invocation per queue dequeue, no reentrant calls,
// and that the Reducer sees the committed state of every other cell — it
// must never grow cell.PossibleTypes, only shrink it.
type Reducer[T comparable] func(loc hexgrid.Location, cell *PendingCell[T], grid *Grid[T]) bool

// Update is one entry of an ApplyTypes call: overwrite the cell at
// Location with exactly Types.
type Update[T comparable] struct {
	Location hexgrid.Location
	Types    []T
}

// Context owns a Grid[T] and the propagation queue driving it to a fixed
// point. The queue is a FIFO with set-like membership: a Location is
// never enqueued twice while already pending.
type Context[T comparable] struct {
	mu     sync.RWMutex
	grid   *Grid[T]
	queue  []hexgrid.Location
	queued map[hexgrid.Location]bool
}

// NewContext builds a fresh Context with every cell in superposition over
// initTypes and an empty queue.
func NewContext[T comparable](rows, cols int, initTypes []T) *Context[T] {
	return &Context[T]{
		grid:   NewGrid[T](rows, cols, initTypes),
		queued: make(map[hexgrid.Location]bool),
	}
}

// ApplyTypes overwrites the possible types of each named, in-bounds
// location and enqueues all six of its neighbors — even already-settled
// ones, since an explicit external edit is always a fresh disturbance
// that may invalidate a prior conclusion.
func (c *Context[T]) ApplyTypes(updates []Update[T]) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, u := range updates {
		cell, ok := c.grid.GetCell(u.Location)
		if !ok {
			continue
		}
		types := make([]T, len(u.Types))
		copy(types, u.Types)
		cell.PossibleTypes = types

		for _, n := range u.Location.Neighbors() {
			c.enqueue(n)
		}
	}
}

// IterateQueue dequeues one location and, if in-bounds, runs reducer
// against it. If the reducer reports a change, every non-settled
// neighbor is (re-)enqueued.
func (c *Context[T]) IterateQueue(reducer Reducer[T]) {
	c.mu.Lock()
	defer c.mu.Unlock()

	loc, ok := c.dequeue()
	if !ok {
		return
	}
	cell, ok := c.grid.GetCell(loc)
	if !ok {
		return
	}

	changed := reducer(loc, cell, c.grid)
	if !changed {
		return
	}

	for _, n := range loc.Neighbors() {
		neighborCell, ok := c.grid.GetCell(n)
		if !ok {
			continue
		}
		if !neighborCell.IsSettled() {
			c.enqueue(n)
		}
	}
}

// IterateQueueComplete drains the queue by repeatedly calling
// IterateQueue until it is empty. Monotonicity (possibility counts only
// shrink between ApplyTypes calls) over a finite state space guarantees
// this terminates.
func (c *Context[T]) IterateQueueComplete(reducer Reducer[T]) {
	for !c.QueueEmpty() {
		c.IterateQueue(reducer)
	}
}

// IsSettled reports whether every cell in the grid has at most one
// remaining candidate.
func (c *Context[T]) IsSettled() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	settled := true
	c.grid.Each(func(cell *PendingCell[T]) {
		if !cell.IsSettled() {
			settled = false
		}
	})
	return settled
}

// Grid returns the underlying grid for read-only inspection by a hosting
// renderer. Callers must not mutate cells directly; all mutation goes
// through ApplyTypes or a Reducer.
func (c *Context[T]) Grid() *Grid[T] {
	return c.grid
}

// Queue returns a snapshot copy of the pending locations, in FIFO order,
// for read-only inspection by a hosting renderer.
func (c *Context[T]) Queue() []hexgrid.Location {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]hexgrid.Location, len(c.queue))
	copy(out, c.queue)
	return out
}

// QueueEmpty reports whether the propagation queue currently has no
// pending locations.
func (c *Context[T]) QueueEmpty() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.queue) == 0
}

// enqueue appends loc to the queue unless it is already pending. Callers
// must hold c.mu for writing.
func (c *Context[T]) enqueue(loc hexgrid.Location) {
	if c.queued[loc] {
		return
	}
	c.queued[loc] = true
	c.queue = append(c.queue, loc)
}

// dequeue pops the front of the queue. Callers must hold c.mu for
// writing.
func (c *Context[T]) dequeue() (hexgrid.Location, bool) {
	if len(c.queue) == 0 {
		return hexgrid.Location{}, false
	}
	loc := c.queue[0]
	c.queue = c.queue[1:]
	delete(c.queued, loc)
	return loc, true
}
