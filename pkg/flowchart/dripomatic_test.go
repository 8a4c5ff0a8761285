package flowchart

import (
	"slices"
	"strings"
	"testing"
)

func TestDripOMatic_Counts(t *testing.T) {
	d := DripOMatic()

	if d.NodeCount() != 22 {
		t.Errorf("NodeCount() = %d, want 22", d.NodeCount())
	}
	if d.EdgeCount() != 22 {
		t.Errorf("EdgeCount() = %d, want 22", d.EdgeCount())
	}
	if d.Name() != "DripOMatic" {
		t.Errorf("Name() = %q, want DripOMatic", d.Name())
	}
}

func TestDripOMatic_Options(t *testing.T) {
	opts := DripOMatic().Options()

	if opts.Overlap {
		t.Error("Overlap should be false")
	}
	if !opts.Splines {
		t.Error("Splines should be true")
	}
	if opts.Layout != "neato" {
		t.Errorf("Layout = %q, want neato", opts.Layout)
	}
}

func TestDripOMatic_UniqueIDs(t *testing.T) {
	seen := map[string]bool{}
	for _, n := range DripOMatic().Nodes() {
		if seen[n.ID] {
			t.Errorf("duplicate node ID %q", n.ID)
		}
		seen[n.ID] = true
	}
}

func TestDripOMatic_EdgeEndpointsResolve(t *testing.T) {
	d := DripOMatic()
	for _, e := range d.Edges() {
		if _, ok := d.Node(e.From); !ok {
			t.Errorf("edge %s -> %s: unknown source", e.From, e.To)
		}
		if _, ok := d.Node(e.To); !ok {
			t.Errorf("edge %s -> %s: unknown target", e.From, e.To)
		}
	}
}

func TestDripOMatic_Decision(t *testing.T) {
	d := DripOMatic()

	out := d.EdgesFrom("AN")
	if len(out) != 2 {
		t.Fatalf("AN has %d outgoing edges, want 2", len(out))
	}

	want := []Edge{
		{From: "AN", To: "FA", Label: "Yes"},
		{From: "AN", To: "Marketing", Label: "No"},
	}
	for i := range want {
		if out[i] != want[i] {
			t.Errorf("AN edge %d = %+v, want %+v", i, out[i], want[i])
		}
	}

	if got := d.Successors("FA"); !slices.Equal(got, []string{"TC"}) {
		t.Errorf("Successors(FA) = %v, want [TC]", got)
	}
	if got := d.Successors("Marketing"); slices.Contains(got, "TC") {
		t.Error("the No branch must not loop back")
	}
}

func TestDripOMatic_SingleCycle(t *testing.T) {
	cycles := DripOMatic().Cycles()

	if len(cycles) != 1 {
		t.Fatalf("Cycles() found %d cycles, want 1: %v", len(cycles), cycles)
	}
	want := []string{"TC", "AN", "FA", "TC"}
	if !slices.Equal(cycles[0], want) {
		t.Errorf("cycle = %v, want %v", cycles[0], want)
	}
}

func TestDripOMatic_MainChain(t *testing.T) {
	d := DripOMatic()

	// Skipping the Yes branch, the remaining edges form one path Start..End.
	var path []string
	for id := "Start"; ; {
		path = append(path, id)
		var next []string
		for _, s := range d.Successors(id) {
			if s != "FA" {
				next = append(next, s)
			}
		}
		if len(next) == 0 {
			break
		}
		if len(next) != 1 {
			t.Fatalf("%s branches to %v outside the decision", id, next)
		}
		if slices.Contains(path, next[0]) {
			t.Fatalf("main chain revisits %s", next[0])
		}
		id = next[0]
	}

	if path[len(path)-1] != "End" {
		t.Errorf("main chain ends at %s, want End", path[len(path)-1])
	}
	if len(path) != d.NodeCount()-1 {
		t.Errorf("main chain covers %d nodes, want %d (all but FA)", len(path), d.NodeCount()-1)
	}
}

func TestDripOMatic_Connectivity(t *testing.T) {
	d := DripOMatic()

	if got := d.Sources(); !slices.Equal(got, []string{"Start"}) {
		t.Errorf("Sources() = %v, want [Start]", got)
	}
	if got := d.Sinks(); !slices.Equal(got, []string{"End"}) {
		t.Errorf("Sinks() = %v, want [End]", got)
	}
	for _, n := range d.Nodes() {
		if n.ID != "Start" && d.InDegree(n.ID) == 0 {
			t.Errorf("%s has no incoming edge", n.ID)
		}
		if n.ID != "End" && d.OutDegree(n.ID) == 0 {
			t.Errorf("%s has no outgoing edge", n.ID)
		}
	}
}

func TestDripOMatic_Attributes(t *testing.T) {
	d := DripOMatic()

	tests := []struct {
		id    string
		label string
		shape Shape
		fill  Color
		pos   Point
	}{
		{"Start", "Start", ShapeEllipse, ColorLightBlue, Point{0, 0}},
		{"CD", "Concept Development", ShapeBox, ColorLightGrey, Point{10, 0}},
		{"Materials", "Materials & Costing\n(Feb 24-35)", ShapeBox, ColorLightGrey, Point{6, -4}},
		{"PD", "Prototype Development\n(Mar 6-36)", ShapeBox, ColorLightGrey, Point{10, -4}},
		{"AN", "Adjustments Needed?", ShapeDiamond, ColorLightYellow, Point{12, -6}},
		{"DD", "Deployment & Demo\n(Apr 3)", ShapeBox, ColorLightGreen, Point{6, -8}},
		{"End", "End", ShapeEllipse, ColorLightCoral, Point{4, -8}},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			n, ok := d.Node(tt.id)
			if !ok {
				t.Fatalf("node %s missing", tt.id)
			}
			if n.Label != tt.label {
				t.Errorf("Label = %q, want %q", n.Label, tt.label)
			}
			if n.Shape != tt.shape {
				t.Errorf("Shape = %q, want %q", n.Shape, tt.shape)
			}
			if n.Fill != tt.fill {
				t.Errorf("Fill = %q, want %q", n.Fill, tt.fill)
			}
			if n.Pos != tt.pos {
				t.Errorf("Pos = %v, want %v", n.Pos, tt.pos)
			}
			if !n.Filled {
				t.Error("node should be filled")
			}
		})
	}
}

func TestDripOMatic_UniquePositions(t *testing.T) {
	seen := map[Point]string{}
	for _, n := range DripOMatic().Nodes() {
		if other, ok := seen[n.Pos]; ok {
			t.Errorf("%s and %s share position %v", n.ID, other, n.Pos)
		}
		seen[n.Pos] = n.ID
	}
}

func TestDripOMatic_MultilineLabels(t *testing.T) {
	var multi int
	for _, n := range DripOMatic().Nodes() {
		if strings.Contains(n.Label, "\n") {
			multi++
		}
	}
	if multi != 10 {
		t.Errorf("found %d two-line labels, want 10", multi)
	}
}
