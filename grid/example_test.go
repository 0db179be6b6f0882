package grid_test

import (
	"fmt"

	"github.com/katalvlaran/jumppoint/grid"
)

// ExampleTraversable demonstrates how one grid serves several traversal classes.
//
//   - '.' cells are open to every query.
//   - '1' cells require class bit 0 ("water").
//   - '#' cells are walls.
func ExampleTraversable() {
	g, _ := grid.Parse(".1#")
	const water grid.Mask = 1 << 0

	for x := 0; x < g.Width; x++ {
		n := g.Node(x, 0)
		fmt.Printf("(%d,0) walker=%v swimmer=%v\n", x,
			grid.Traversable(n, 0), grid.Traversable(n, water))
	}
	// Output:
	// (0,0) walker=true swimmer=true
	// (1,0) walker=false swimmer=true
	// (2,0) walker=false swimmer=false
}

// ExampleGrid_Label shows component labelling used as a reachability test.
func ExampleGrid_Label() {
	g, _ := grid.Parse(
		"..#..",
		"..#..",
	)
	l := g.Label(0)
	fmt.Println("components:", l.Count())
	fmt.Println("(0,0)~(1,1):", l.Connected(g.Index(g.Node(0, 0)), g.Index(g.Node(1, 1))))
	fmt.Println("(0,0)~(4,0):", l.Connected(g.Index(g.Node(0, 0)), g.Index(g.Node(4, 0))))
	// Output:
	// components: 2
	// (0,0)~(1,1): true
	// (0,0)~(4,0): false
}
