package dungeon

import "sync"

// WeightedType pairs a CellType with its static collapse weight.
type WeightedType struct {
	Type   CellType
	Weight float64
}

var (
	probabilitiesOnce  sync.Once
	probabilitiesTable []WeightedType
)

// Probabilities returns the static, process-lifetime weight table used to
// weight-sample an undecided cell's final type. The table is built once,
// on first access, and frozen thereafter; the rule:
//
//   - None: weight 0.1.
//   - Hall(c) with k = c.Count(): |4-k|/6 * 0.7 if k <= 2, else 0.
//   - Room(c) with k = c.Count(): (4-k)/6 * 0.1 if k <= 2, else 0.
//
// The returned slice preserves AllCellTypes' order, so weighted sampling
// stays reproducible for a given RNG sequence.
func Probabilities() []WeightedType {
	probabilitiesOnce.Do(buildProbabilities)
	return probabilitiesTable
}

func buildProbabilities() {
	table := make([]WeightedType, 0, 129)
	table = append(table, WeightedType{Type: None, Weight: 0.1})

	for _, t := range AllCellTypes() {
		if t.Kind != KindHall {
			continue
		}
		k := float64(t.Conn.Count())
		weight := 0.0
		if k <= 2 {
			weight = (abs(4-k) / 6) * 0.7
		}
		table = append(table, WeightedType{Type: t, Weight: weight})
	}

	for _, t := range AllCellTypes() {
		if t.Kind != KindRoom {
			continue
		}
		k := float64(t.Conn.Count())
		weight := 0.0
		if k <= 2 {
			weight = ((4 - k) / 6) * 0.1
		}
		table = append(table, WeightedType{Type: t, Weight: weight})
	}

	probabilitiesTable = table
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
