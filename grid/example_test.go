package grid_test

import (
	"fmt"

	"github.com/katalvlaran/gridviz/grid"
)

// ExampleGrid_CellState shows the classification priority: a target placed
// on a wall is still reported as TARGET.
func ExampleGrid_CellState() {
	g, _ := grid.New(2, 3)
	g.Regenerate(func(row, col int) bool { return col == 1 })
	_ = g.SetSource(0, 0)
	_ = g.SetTarget(1, 1)

	for c := range g.Cells() {
		sep := " "
		if c.Col == g.Cols()-1 {
			sep = "\n"
		}
		fmt.Printf("(%d,%d)=%v%s", c.Row, c.Col, c.State, sep)
	}
	// Output:
	// (0,0)=SOURCE (0,1)=WALL (0,2)=OPEN
	// (1,0)=OPEN (1,1)=TARGET (1,2)=OPEN
}

// ExampleGrid_Neighbors lists neighbours in expansion order.
func ExampleGrid_Neighbors() {
	g, _ := grid.New(5, 5)
	nbrs, _ := g.Neighbors(2, 2)
	fmt.Println(nbrs)
	// Output:
	// [(1,2) (2,1) (2,3) (3,2)]
}
