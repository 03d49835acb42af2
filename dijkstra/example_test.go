package dijkstra_test

import (
	"fmt"

	"github.com/katalvlaran/volcanium/dijkstra"
)

// ExampleShortestPath walks a line of integers 0→1→…→9 and asks for the first
// multiple of 7 above zero.
func ExampleShortestPath() {
	succ := dijkstra.UnitSteps(func(v int) []int {
		if v < 9 {
			return []int{v + 1}
		}
		return nil
	})
	d, found, err := dijkstra.ShortestPath(0, func(v int) bool { return v > 0 && v%7 == 0 }, succ)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(d, found)
	// Output: 7 true
}
