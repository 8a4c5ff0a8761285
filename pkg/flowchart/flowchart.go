package flowchart

import (
	"errors"
	"slices"
)

var (
	// ErrInvalidNodeID is returned by [Builder.Build] when a node ID is empty.
	ErrInvalidNodeID = errors.New("node ID must not be empty")

	// ErrDuplicateNodeID is returned by [Builder.Build] when two nodes share an ID.
	ErrDuplicateNodeID = errors.New("duplicate node ID")

	// ErrUnknownSourceNode is returned when an edge's From node is not declared.
	ErrUnknownSourceNode = errors.New("unknown source node")

	// ErrUnknownTargetNode is returned when an edge's To node is not declared.
	ErrUnknownTargetNode = errors.New("unknown target node")

	// ErrInvalidShape is returned for a node whose shape is outside [Shape]'s set.
	ErrInvalidShape = errors.New("invalid node shape")

	// ErrInvalidColor is returned for a node whose fill is outside the palette.
	ErrInvalidColor = errors.New("invalid fill color")
)

// Shape is the outline Graphviz draws around a node.
type Shape string

const (
	ShapeEllipse Shape = "ellipse"
	ShapeBox     Shape = "box"
	ShapeDiamond Shape = "diamond"
)

// Valid reports whether s is one of the supported shapes.
func (s Shape) Valid() bool {
	switch s {
	case ShapeEllipse, ShapeBox, ShapeDiamond:
		return true
	}
	return false
}

// Color is a named Graphviz (X11) fill color.
type Color string

// Palette used by the process diagrams.
const (
	ColorLightBlue   Color = "lightblue"
	ColorLightGrey   Color = "lightgrey"
	ColorLightYellow Color = "lightyellow"
	ColorLightGreen  Color = "lightgreen"
	ColorLightCoral  Color = "lightcoral"
)

// Valid reports whether c is part of the palette.
func (c Color) Valid() bool {
	switch c {
	case ColorLightBlue, ColorLightGrey, ColorLightYellow, ColorLightGreen, ColorLightCoral:
		return true
	}
	return false
}

// Point is a fixed node position in Graphviz inches.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Node is one process step or decision.
type Node struct {
	ID     string `json:"id"`
	Label  string `json:"label"` // may contain "\n"
	Shape  Shape  `json:"shape"`
	Fill   Color  `json:"fill"`
	Pos    Point  `json:"pos"`
	Filled bool   `json:"filled"`
}

// DisplayLabel returns the label if set, otherwise the ID.
func (n Node) DisplayLabel() string {
	if n.Label == "" {
		return n.ID
	}
	return n.Label
}

// Edge is a directed connection between two nodes. Label is optional and is
// typically a decision branch such as "Yes" or "No".
type Edge struct {
	From  string `json:"from"`
	To    string `json:"to"`
	Label string `json:"label,omitempty"`
}

// Options are the graph-level layout attributes.
type Options struct {
	// Overlap allows nodes to overlap. False asks the engine to remove overlaps.
	Overlap bool `json:"overlap"`
	// Splines draws edges as curves instead of straight segments.
	Splines bool `json:"splines"`
	// Layout is the Graphviz layout engine. "neato" honors pinned positions.
	Layout string `json:"layout"`
}

// Diagram is an immutable directed graph with display attributes.
//
// Nodes and edges keep declaration order. Parallel edges and cycles are
// permitted. The zero value is not usable; build one with [New].
type Diagram struct {
	name    string
	comment string
	opts    Options

	nodes    []Node
	index    map[string]int
	edges    []Edge
	outgoing map[string][]string
	incoming map[string][]string
}

// Name returns the graph identifier used in the DOT header.
func (d *Diagram) Name() string { return d.name }

// Comment returns the free-text description written above the DOT graph.
func (d *Diagram) Comment() string { return d.comment }

// Options returns the graph-level layout attributes.
func (d *Diagram) Options() Options { return d.opts }

// Nodes returns a copy of all nodes in declaration order.
func (d *Diagram) Nodes() []Node { return slices.Clone(d.nodes) }

// Edges returns a copy of all edges in declaration order.
func (d *Diagram) Edges() []Edge { return slices.Clone(d.edges) }

// NodeCount returns the number of nodes.
func (d *Diagram) NodeCount() int { return len(d.nodes) }

// EdgeCount returns the number of edges.
func (d *Diagram) EdgeCount() int { return len(d.edges) }

// Node returns the node with the given ID and true, or the zero Node and false.
func (d *Diagram) Node(id string) (Node, bool) {
	i, ok := d.index[id]
	if !ok {
		return Node{}, false
	}
	return d.nodes[i], true
}

// Successors returns the targets of id's outgoing edges in declaration order.
func (d *Diagram) Successors(id string) []string { return slices.Clone(d.outgoing[id]) }

// Predecessors returns the sources of id's incoming edges in declaration order.
func (d *Diagram) Predecessors(id string) []string { return slices.Clone(d.incoming[id]) }

// OutDegree returns the number of edges leaving id.
func (d *Diagram) OutDegree(id string) int { return len(d.outgoing[id]) }

// InDegree returns the number of edges entering id.
func (d *Diagram) InDegree(id string) int { return len(d.incoming[id]) }

// EdgesFrom returns the edges leaving id, labels included.
func (d *Diagram) EdgesFrom(id string) []Edge {
	var out []Edge
	for _, e := range d.edges {
		if e.From == id {
			out = append(out, e)
		}
	}
	return out
}

// Sources returns the IDs of nodes with no incoming edges.
func (d *Diagram) Sources() []string {
	var ids []string
	for _, n := range d.nodes {
		if len(d.incoming[n.ID]) == 0 {
			ids = append(ids, n.ID)
		}
	}
	return ids
}

// Sinks returns the IDs of nodes with no outgoing edges.
func (d *Diagram) Sinks() []string {
	var ids []string
	for _, n := range d.nodes {
		if len(d.outgoing[n.ID]) == 0 {
			ids = append(ids, n.ID)
		}
	}
	return ids
}

// Validate checks that node IDs are non-empty and unique, that shapes and
// colors are known, and that every edge endpoint resolves to a node.
func (d *Diagram) Validate() error {
	seen := make(map[string]struct{}, len(d.nodes))
	for _, n := range d.nodes {
		if n.ID == "" {
			return ErrInvalidNodeID
		}
		if _, dup := seen[n.ID]; dup {
			return ErrDuplicateNodeID
		}
		seen[n.ID] = struct{}{}
		if !n.Shape.Valid() {
			return ErrInvalidShape
		}
		if !n.Fill.Valid() {
			return ErrInvalidColor
		}
	}
	for _, e := range d.edges {
		if _, ok := seen[e.From]; !ok {
			return ErrUnknownSourceNode
		}
		if _, ok := seen[e.To]; !ok {
			return ErrUnknownTargetNode
		}
	}
	return nil
}

// Cycles returns the cycles reachable by depth-first search, each as the
// node IDs along the cycle starting and ending at the same node. Nodes are
// visited in declaration order, so the result is deterministic.
func (d *Diagram) Cycles() [][]string {
	const (
		white = iota
		gray
		black
	)

	color := make(map[string]int, len(d.nodes))
	var stack []string
	var cycles [][]string

	var dfs func(id string)
	dfs = func(id string) {
		color[id] = gray
		stack = append(stack, id)
		for _, next := range d.outgoing[id] {
			switch color[next] {
			case white:
				dfs(next)
			case gray:
				start := slices.Index(stack, next)
				cycle := append(slices.Clone(stack[start:]), next)
				cycles = append(cycles, cycle)
			}
		}
		stack = stack[:len(stack)-1]
		color[id] = black
	}

	for _, n := range d.nodes {
		if color[n.ID] == white {
			dfs(n.ID)
		}
	}
	return cycles
}

// Builder accumulates nodes and edges for a [Diagram].
type Builder struct {
	d *Diagram
}

// New starts a diagram with the given DOT name, comment, and layout options.
func New(name, comment string, opts Options) *Builder {
	return &Builder{d: &Diagram{
		name:     name,
		comment:  comment,
		opts:     opts,
		index:    make(map[string]int),
		outgoing: make(map[string][]string),
		incoming: make(map[string][]string),
	}}
}

// Node declares a filled node pinned at (x, y).
func (b *Builder) Node(id, label string, shape Shape, fill Color, x, y float64) *Builder {
	return b.AddNode(Node{ID: id, Label: label, Shape: shape, Fill: fill, Pos: Point{X: x, Y: y}, Filled: true})
}

// AddNode declares n as-is.
func (b *Builder) AddNode(n Node) *Builder {
	if _, exists := b.d.index[n.ID]; !exists {
		b.d.index[n.ID] = len(b.d.nodes)
	}
	b.d.nodes = append(b.d.nodes, n)
	return b
}

// Edge declares an unlabeled edge.
func (b *Builder) Edge(from, to string) *Builder {
	return b.LabeledEdge(from, to, "")
}

// LabeledEdge declares an edge with a label.
func (b *Builder) LabeledEdge(from, to, label string) *Builder {
	b.d.edges = append(b.d.edges, Edge{From: from, To: to, Label: label})
	b.d.outgoing[from] = append(b.d.outgoing[from], to)
	b.d.incoming[to] = append(b.d.incoming[to], from)
	return b
}

// Build validates the accumulated graph and returns it. The Builder must
// not be used afterwards.
func (b *Builder) Build() (*Diagram, error) {
	d := b.d
	b.d = nil
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return d, nil
}
