package flowchart_test

import (
	"fmt"

	"github.com/matzehuels/dripomatic/pkg/flowchart"
)

func ExampleDripOMatic() {
	d := flowchart.DripOMatic()

	fmt.Printf("%d nodes, %d edges\n", d.NodeCount(), d.EdgeCount())
	fmt.Println("sources:", d.Sources())
	fmt.Println("sinks:", d.Sinks())
	fmt.Println("cycles:", d.Cycles())
	// Output:
	// 22 nodes, 22 edges
	// sources: [Start]
	// sinks: [End]
	// cycles: [[TC AN FA TC]]
}

func ExampleToDOT() {
	d, err := flowchart.New("Tiny", "", flowchart.Options{Layout: "neato"}).
		Node("go", "Go?", flowchart.ShapeDiamond, flowchart.ColorLightYellow, 0, 0).
		Node("done", "Done", flowchart.ShapeEllipse, flowchart.ColorLightGreen, 2, 0).
		LabeledEdge("go", "done", "Yes").
		Build()
	if err != nil {
		fmt.Println("Error:", err)
		return
	}

	fmt.Print(flowchart.ToDOT(d))
	// Output:
	// digraph "Tiny" {
	//   graph [overlap=false, splines=false, layout=neato];
	//
	//   "go" [label="Go?", shape=diamond, fillcolor=lightyellow, style=filled, pos="0,0!"];
	//   "done" [label="Done", shape=ellipse, fillcolor=lightgreen, style=filled, pos="2,0!"];
	//
	//   "go" -> "done" [label="Yes"];
	// }
}
