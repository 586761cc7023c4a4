// File: cubefold/example_test.go
package cubefold_test

import (
	"fmt"

	"github.com/katalvlaran/cubewalk/cubefold"
	"github.com/katalvlaran/cubewalk/gridmap"
)

////////////////////////////////////////////////////////////////////////////////
// Example: Discover + Resolve
////////////////////////////////////////////////////////////////////////////////

// ExampleNet_Resolve folds a 1×1-face cross and steps off its left arm.
// Scenario:
//
//	 .       face A (1,0)
//	...      faces B (0,1), C (1,1), D (2,1)
//	 .       face E (1,2)
//	 .       face F (1,3)
//
//   - Walking west off B lands on F heading east: B, C, D and F form a
//     belt around the cube.
func ExampleNet_Resolve() {
	cells := map[gridmap.Cell]gridmap.Terrain{
		{X: 1, Y: 0}: gridmap.Open,
		{X: 0, Y: 1}: gridmap.Open, {X: 1, Y: 1}: gridmap.Open, {X: 2, Y: 1}: gridmap.Open,
		{X: 1, Y: 2}: gridmap.Open,
		{X: 1, Y: 3}: gridmap.Open,
	}
	g, _ := gridmap.New(cells)
	net, err := cubefold.Discover(g)
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, a := range net.Faces() {
		n, _ := net.Normal(a)
		fmt.Println(a, n)
	}

	pos, dir, _ := net.Resolve(gridmap.Cell{X: 0, Y: 1}, gridmap.West)
	fmt.Println("west of (0,1):", pos, dir)

	// Output:
	// (1,0) (0,0,-1)
	// (1,1) (0,1,0)
	// (2,1) (1,0,0)
	// (1,2) (0,0,1)
	// (0,1) (-1,0,0)
	// (1,3) (0,-1,0)
	// west of (0,1): (1,3) east
}
