package director

import (
	"sync"

	"github.com/katalvlaran/hexdungeon/conn"
	"github.com/katalvlaran/hexdungeon/dungeon"
	"github.com/katalvlaran/hexdungeon/hexgrid"
	"github.com/katalvlaran/hexdungeon/wfc"
	"github.com/katalvlaran/hexdungeon/wrand"
)

// state is the director's internal stage. See debugState for the
// human-readable names an external caller sees via DebugState.
type state int

const (
	stateInit state = iota
	statePlacedRooms
	stateForgingPath
	stateWfc
	stateFill
	stateClean
	stateIdle
)

func (s state) String() string {
	switch s {
	case stateInit:
		return "Init"
	case statePlacedRooms:
		return "Placed Rooms"
	case stateForgingPath:
		return "Forging Path"
	case stateWfc:
		return "Wfc"
	case stateFill:
		return "Fill"
	case stateClean:
		return "Clean"
	case stateIdle:
		return "Idle"
	default:
		return "Unknown"
	}
}

// Director is the dungeon scenario director described in spec.md §4.F: a
// deterministic, seeded pipeline that drives the wfc engine through
// staged goals to produce a connected hex dungeon.
//
// Seed is read once, by the first call to Step (which consumes it to build
// the private RNG); mutating it afterward has no effect on an
// already-running generation. MeanderFactor is read on every ForgingPath
// step, so changing it mid-run affects the path steps that follow.
type Director struct {
	// WFC is the underlying wave-function-collapse context. External
	// callers may call WFC.ApplyTypes to paint cells, which re-triggers
	// propagation on the director's next Step.
	WFC *wfc.Context[dungeon.CellType]
	// Seed seeds the director's private PRNG on the first Step call.
	Seed uint64
	// MeanderFactor is the probability, in [0,1], of moving greedily
	// toward the goal (rather than a uniformly random direction) during
	// path forging.
	MeanderFactor float64
	// Rows and Cols are the grid dimensions.
	Rows, Cols int

	mu    sync.RWMutex
	state state
	rng   *wrand.Rand

	startLocation        hexgrid.Location
	goalLocation         hexgrid.Location
	goalEntranceLocation hexgrid.Location
	goalLocations        []hexgrid.Location

	cursorLocation hexgrid.Location
	iterationCount int
	validPathCells []hexgrid.Location
	unfilledCells  []hexgrid.Location
}

// New constructs a Director over a rows×cols grid, with default Seed=1
// and MeanderFactor=0.7 (matching the source this package was ported
// from). Call Step or Generate to run it.
func New(rows, cols int) *Director {
	off := hexgrid.New(-1, -1)
	return &Director{
		WFC:                  wfc.NewContext[dungeon.CellType](rows, cols, dungeon.AllCellTypes()),
		Seed:                 1,
		MeanderFactor:        0.7,
		Rows:                 rows,
		Cols:                 cols,
		state:                stateInit,
		startLocation:        off,
		goalLocation:         off,
		goalEntranceLocation: off,
		cursorLocation:       off,
	}
}

// StartLocation returns the chosen start cell. Valid once past Init.
func (d *Director) StartLocation() hexgrid.Location {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.startLocation
}

// GoalLocation returns the chosen goal cell. Valid once past Init.
func (d *Director) GoalLocation() hexgrid.Location {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.goalLocation
}

// GoalEntranceLocation returns the goal room's entrance cell. Valid once
// past Init.
func (d *Director) GoalEntranceLocation() hexgrid.Location {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.goalEntranceLocation
}

// GoalLocations returns every cell belonging to the goal room (length 1
// for a Single room, 3 for a Cluster3 room). Valid once past Init.
func (d *Director) GoalLocations() []hexgrid.Location {
	d.mu.RLock()
	defer d.mu.RUnlock()
	out := make([]hexgrid.Location, len(d.goalLocations))
	copy(out, d.goalLocations)
	return out
}

// ValidPathCells returns the forged corridor from start to goal entrance,
// in the order it was carved.
func (d *Director) ValidPathCells() []hexgrid.Location {
	d.mu.RLock()
	defer d.mu.RUnlock()
	out := make([]hexgrid.Location, len(d.validPathCells))
	copy(out, d.validPathCells)
	return out
}

// IterationCount returns the number of completed Step calls.
func (d *Director) IterationCount() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.iterationCount
}

// DebugState returns a human-readable name for the current stage.
func (d *Director) DebugState() string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.state.String()
}

// CanDoMoreWork reports whether Generate would still do anything: either
// the director has not reached Idle, or an external edit has re-filled
// the propagation queue.
func (d *Director) CanDoMoreWork() bool {
	d.mu.RLock()
	st := d.state
	d.mu.RUnlock()
	return st != stateIdle || !d.WFC.QueueEmpty()
}

// Generate runs Step repeatedly until CanDoMoreWork reports false.
func (d *Director) Generate() {
	for d.CanDoMoreWork() {
		d.Step()
	}
}

// Step advances the state machine by exactly one transition. It is
// synchronous and non-reentrant: nothing else may run concurrently with
// a single Step call on the same Director.
func (d *Director) Step() {
	d.mu.Lock()
	defer func() {
		d.iterationCount++
		d.mu.Unlock()
	}()

	switch d.state {
	case stateInit:
		d.stepInit()
	case statePlacedRooms:
		d.cursorLocation = d.startLocation
		d.state = stateWfc
	case stateForgingPath:
		d.stepForgingPath()
	case stateWfc:
		d.stepWfc()
	case stateFill:
		d.stepFill()
	case stateClean:
		d.cleanup()
		d.state = stateIdle
	case stateIdle:
		if !d.WFC.QueueEmpty() {
			d.state = stateWfc
		}
	}
}

func (d *Director) stepInit() {
	d.rng = wrand.New(d.Seed)

	d.goalLocation = d.randomInteriorLocation()
	d.goalEntranceLocation = d.goalLocation.Neighbors()[hexgrid.TopLeft]

	goalConnections := conn.New(true, false, false, false, false, false)
	if d.randomBoolDefault() {
		d.goalLocations = d.addRoom(Room{
			Shape:    ShapeSingle,
			Single:   goalConnections,
			Location: d.goalLocation,
		})
	} else {
		goalConnections[hexgrid.BottomLeft] = true
		goalConnections[hexgrid.BottomRight] = true
		d.goalLocations = d.addRoom(Room{
			Shape:      ShapeCluster3,
			ClusterTop: goalConnections,
			ClusterBL:  conn.New(false, true, true, false, false, false),
			ClusterBR:  conn.New(true, false, false, false, false, true),
			Location:   d.goalLocation,
		})
	}

	d.startLocation = d.randomInteriorLocation()
	for containsLocation(d.goalLocations, d.startLocation) {
		d.startLocation = d.randomInteriorLocation()
	}

	if d.randomBoolDefault() {
		startConnections := d.randomConnections()
		for startConnections.Count() == 0 {
			startConnections = d.randomConnections()
		}
		d.WFC.ApplyTypes([]wfc.Update[dungeon.CellType]{
			{Location: d.startLocation, Types: []dungeon.CellType{dungeon.Hall(startConnections)}},
		})
	} else {
		startConnections := conn.None()
		startConnections[d.rng.UniformIntIn(0, 5)] = true
		d.addRoom(Room{
			Shape:    ShapeSingle,
			Single:   startConnections,
			Location: d.startLocation,
		})
	}

	d.state = statePlacedRooms
}

func (d *Director) stepWfc() {
	d.WFC.IterateQueue(dungeon.Reduce)
	if !d.WFC.QueueEmpty() {
		return
	}

	if len(d.validPathCells) == 0 {
		d.state = stateForgingPath
		return
	}

	d.unfilledCells = nil
	grid := d.WFC.Grid()
	for row := 0; row < grid.Rows(); row++ {
		for col := 0; col < grid.Cols(); col++ {
			cell, ok := grid.GetCell(hexgrid.New(row, col))
			if ok && !cell.IsSettled() {
				d.unfilledCells = append(d.unfilledCells, cell.Location)
			}
		}
	}
	d.state = stateFill
}

func (d *Director) stepFill() {
	if d.WFC.IsSettled() {
		d.state = stateClean
		return
	}

	idx := d.rng.UniformIntIn(0, float64(len(d.unfilledCells)-1))
	loc := d.unfilledCells[idx]
	cell, ok := d.WFC.Grid().GetCell(loc)
	if !ok {
		d.state = stateWfc
		return
	}

	chosen := d.getRandomCellType(cell.PossibleTypes)
	d.WFC.ApplyTypes([]wfc.Update[dungeon.CellType]{{Location: loc, Types: []dungeon.CellType{chosen}}})
	d.state = stateWfc
}

func (d *Director) stepForgingPath() {
	neighbors := d.cursorLocation.Neighbors()

	nextIndex := d.forgingDirection(neighbors)
	nextLocation := neighbors[nextIndex]
	nextCell, ok := d.WFC.Grid().GetCell(nextLocation)

	if nextLocation == d.startLocation || containsLocation(d.goalLocations, nextLocation) || !ok {
		// Silently skip: the state does not advance. This is the
		// termination mechanism for a wandering walker (spec.md §9).
		return
	}

	nextRequired := conn.None()
	nextRequired[conn.OppositeIndex(nextIndex)] = true
	if nextLocation == d.goalEntranceLocation {
		// Dungeon convention: the goal room's entrance always faces
		// bottom-right from its entrance cell.
		nextRequired[hexgrid.BottomRight] = true
	}

	nextTypes := filterHallsSatisfying(nextCell.PossibleTypes, nextRequired)
	d.WFC.ApplyTypes([]wfc.Update[dungeon.CellType]{{Location: nextLocation, Types: nextTypes}})

	if len(d.validPathCells) > 0 {
		previousLocation := d.validPathCells[len(d.validPathCells)-1]
		previousCell, ok := d.WFC.Grid().GetCell(previousLocation)
		if ok {
			previousRequired := conn.None()
			previousRequired[nextIndex] = true
			previousTypes := filterHallsSatisfying(previousCell.PossibleTypes, previousRequired)
			d.WFC.ApplyTypes([]wfc.Update[dungeon.CellType]{{Location: previousLocation, Types: previousTypes}})
		}
	}

	d.validPathCells = append(d.validPathCells, nextLocation)
	d.cursorLocation = nextLocation

	if d.cursorLocation == d.goalEntranceLocation {
		d.state = stateWfc
	}
}

// forgingDirection picks which of the cursor's six neighbors to move to
// next, per spec.md §4.F's ForgingPath rule.
func (d *Director) forgingDirection(neighbors [hexgrid.NumNeighbors]hexgrid.Location) int {
	if d.cursorLocation == d.startLocation {
		startCell, ok := d.WFC.Grid().GetCell(d.startLocation)
		if !ok || len(startCell.PossibleTypes) == 0 {
			panic("director: start cell has no settled variant")
		}
		sole := startCell.PossibleTypes[0]
		if sole.Kind != dungeon.KindHall && sole.Kind != dungeon.KindRoom {
			panic("director: start cell is not a connecting type")
		}
		for i := 0; i < hexgrid.NumNeighbors; i++ {
			if sole.Conn[i] {
				return i
			}
		}
		panic("director: start cell has no connections")
	}

	minDist := -1
	closestIdx := 0
	for i, n := range neighbors {
		dist := abs(d.goalEntranceLocation.Row-n.Row) + abs(d.goalEntranceLocation.Col-n.Col)
		if minDist == -1 || dist < minDist {
			minDist = dist
			closestIdx = i
		}
	}

	if d.rng.Bernoulli(d.MeanderFactor) {
		return closestIdx
	}
	return d.rng.UniformIntIn(0, 5)
}

// addRoom applies a Room's cell types directly via WFC.ApplyTypes and
// returns the locations it occupies.
func (d *Director) addRoom(room Room) []hexgrid.Location {
	neighbors := room.Location.Neighbors()

	switch room.Shape {
	case ShapeSingle:
		d.WFC.ApplyTypes([]wfc.Update[dungeon.CellType]{
			{Location: room.Location, Types: []dungeon.CellType{dungeon.Room(room.Single)}},
		})
		return []hexgrid.Location{room.Location}

	case ShapeCluster3:
		blLoc := neighbors[hexgrid.BottomLeft]
		brLoc := neighbors[hexgrid.BottomRight]
		if _, ok := d.WFC.Grid().GetCell(blLoc); !ok {
			panic("director: Cluster3 room's bottom-left neighbor is off-grid")
		}
		if _, ok := d.WFC.Grid().GetCell(brLoc); !ok {
			panic("director: Cluster3 room's bottom-right neighbor is off-grid")
		}

		d.WFC.ApplyTypes([]wfc.Update[dungeon.CellType]{
			{Location: room.Location, Types: []dungeon.CellType{dungeon.Room(room.ClusterTop)}},
			{Location: blLoc, Types: []dungeon.CellType{dungeon.Room(room.ClusterBL)}},
			{Location: brLoc, Types: []dungeon.CellType{dungeon.Room(room.ClusterBR)}},
		})
		return []hexgrid.Location{room.Location, blLoc, brLoc}

	default:
		panic("director: unknown room shape")
	}
}

// getRandomCellType weight-samples one concrete type out of possible,
// using dungeon.Probabilities restricted to the candidates actually
// still possible for this cell. See spec.md §4.F.
func (d *Director) getRandomCellType(possible []dungeon.CellType) dungeon.CellType {
	if len(possible) == 0 {
		return dungeon.None
	}
	if len(possible) == 1 {
		return possible[0]
	}

	inPossible := make(map[dungeon.CellType]bool, len(possible))
	for _, p := range possible {
		inPossible[p] = true
	}

	type weightedStart struct {
		t     dungeon.CellType
		start float64
	}
	var entries []weightedStart
	total := 0.0
	for _, wt := range dungeon.Probabilities() {
		if !inPossible[wt.Type] {
			continue
		}
		entries = append(entries, weightedStart{t: wt.Type, start: total})
		total += wt.Weight
	}

	value := d.rng.Uniform(0, total)
	for i, e := range entries {
		if value < e.start {
			return entries[i-1].t
		}
	}
	return entries[len(entries)-1].t
}

func (d *Director) randomInteriorLocation() hexgrid.Location {
	row := d.rng.UniformIntIn(1, float64(d.Rows-2))
	col := d.rng.UniformIntIn(1, float64(d.Cols-2))
	return hexgrid.New(row, col)
}

func (d *Director) randomBool(p float64) bool {
	return d.rng.Bernoulli(p)
}

func (d *Director) randomBoolDefault() bool {
	return d.randomBool(0.5)
}

func (d *Director) randomConnections() conn.Set {
	return conn.New(
		d.randomBoolDefault(),
		d.randomBoolDefault(),
		d.randomBoolDefault(),
		d.randomBoolDefault(),
		d.randomBoolDefault(),
		d.randomBoolDefault(),
	)
}

func containsLocation(locs []hexgrid.Location, loc hexgrid.Location) bool {
	for _, l := range locs {
		if l == loc {
			return true
		}
	}
	return false
}

// filterHallsSatisfying keeps only Hall candidates whose connections
// satisfy every required bit of required; None and Room candidates are
// always dropped, matching the dungeon convention that forged corridor
// cells are always Hall cells.
func filterHallsSatisfying(candidates []dungeon.CellType, required conn.Set) []dungeon.CellType {
	out := candidates[:0:0]
	for _, c := range candidates {
		if c.Kind != dungeon.KindHall {
			continue
		}
		ok := true
		for i := 0; i < hexgrid.NumNeighbors; i++ {
			if required[i] && !c.Conn[i] {
				ok = false
				break
			}
		}
		if ok {
			out = append(out, c)
		}
	}
	return out
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
