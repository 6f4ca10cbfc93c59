package conn_test

import (
	"fmt"

	"github.com/katalvlaran/hexdungeon/conn"
)

// ExampleAllExcept demonstrates enumerating every connection set that
// never connects toward a particular side.
func ExampleAllExcept() {
	right := conn.New(false, false, true, false, false, false)
	combos := conn.AllExcept(right)
	fmt.Println(len(combos))
	// Output:
	// 32
}

// ExampleOppositeIndex demonstrates the fixed opposite-side table.
func ExampleOppositeIndex() {
	fmt.Println(conn.OppositeIndex(0), conn.OppositeIndex(1), conn.OppositeIndex(2))
	// Output:
	// 3 4 5
}
