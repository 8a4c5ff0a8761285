package flowchart

// DripOMatic returns the Drip-O-Matic product process flow.
//
// The chart snakes through five rows two inches apart: left to right, back
// right to left, left to right again, a decision row with the calibration
// loop, and a final row running right to left to End. Every node is pinned
// at its position, so the chart only renders as intended with a layout that
// honors "pos" (neato).
//
// Label dates "Feb 24-35" and "Mar 6-36" are display text and are kept as-is.
func DripOMatic() *Diagram {
	b := New("DripOMatic", "The Drip-O-Matic Process Flow", Options{
		Overlap: false,
		Splines: true,
		Layout:  "neato",
	})

	// Row 1, left to right.
	b.Node("Start", "Start", ShapeEllipse, ColorLightBlue, 0, 0)
	b.Node("Brainstorm", "Brainstorming\n(Feb 3)", ShapeBox, ColorLightGrey, 2, 0)
	b.Node("MarketResearch", "Market Research", ShapeBox, ColorLightBlue, 4, 0)
	b.Node("CustomerValidation", "Customer Validation", ShapeBox, ColorLightBlue, 6, 0)
	b.Node("ChooseProduct", "Choosing Product\n(Feb 5)", ShapeBox, ColorLightGrey, 8, 0)
	b.Node("CD", "Concept Development", ShapeBox, ColorLightGrey, 10, 0)

	// Row 2, right to left.
	b.Node("Proposal", "Product Proposal\n(Feb 6-10)", ShapeBox, ColorLightGrey, 10, -2)
	b.Node("Approval", "Product Approval\n(Feb 10)", ShapeBox, ColorLightGrey, 8, -2)
	b.Node("RRL", "Gathering RRLs & RRS\n(Feb 13)", ShapeBox, ColorLightGrey, 6, -2)
	b.Node("DP", "Design & Planning", ShapeBox, ColorLightGrey, 4, -2)

	// Row 3, left to right.
	b.Node("Sketch", "Draft Sketch\n(Feb 21)", ShapeBox, ColorLightGrey, 4, -4)
	b.Node("Materials", "Materials & Costing\n(Feb 24-35)", ShapeBox, ColorLightGrey, 6, -4)
	b.Node("MP", "Material Procurement", ShapeBox, ColorLightGrey, 8, -4)
	b.Node("PD", "Prototype Development\n(Mar 6-36)", ShapeBox, ColorLightGrey, 10, -4)
	b.Node("TC", "Testing & Calibration\n(Mar 28)", ShapeBox, ColorLightGrey, 12, -4)

	// Row 4, decision and loop.
	b.Node("AN", "Adjustments Needed?", ShapeDiamond, ColorLightYellow, 12, -6)
	b.Node("FA", "Final Adjustments", ShapeBox, ColorLightGrey, 10, -6)

	// Row 5, right to left.
	b.Node("Marketing", "Marketing Strategy", ShapeBox, ColorLightGreen, 12, -8)
	b.Node("Production", "Production", ShapeBox, ColorLightGreen, 10, -8)
	b.Node("Distribution", "Distribution", ShapeBox, ColorLightGreen, 8, -8)
	b.Node("DD", "Deployment & Demo\n(Apr 3)", ShapeBox, ColorLightGreen, 6, -8)
	b.Node("End", "End", ShapeEllipse, ColorLightCoral, 4, -8)

	b.Edge("Start", "Brainstorm").
		Edge("Brainstorm", "MarketResearch").
		Edge("MarketResearch", "CustomerValidation").
		Edge("CustomerValidation", "ChooseProduct").
		Edge("ChooseProduct", "CD")

	b.Edge("CD", "Proposal")

	b.Edge("Proposal", "Approval").
		Edge("Approval", "RRL").
		Edge("RRL", "DP")

	b.Edge("DP", "Sketch")

	b.Edge("Sketch", "Materials").
		Edge("Materials", "MP").
		Edge("MP", "PD").
		Edge("PD", "TC")

	b.Edge("TC", "AN")

	b.LabeledEdge("AN", "FA", "Yes")
	b.Edge("FA", "TC")
	b.LabeledEdge("AN", "Marketing", "No")

	b.Edge("Marketing", "Production").
		Edge("Production", "Distribution").
		Edge("Distribution", "DD").
		Edge("DD", "End")

	d, err := b.Build()
	if err != nil {
		panic("flowchart: invalid Drip-O-Matic diagram: " + err.Error())
	}
	return d
}
