package flowchart

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
)

// ToDOT converts a diagram to Graphviz DOT source.
//
// The output starts with the diagram comment, declares graph-level layout
// attributes, then lists nodes and edges in declaration order. Positions are
// written with a trailing "!" so neato keeps them fixed. The same text is
// written as the ".gv" sidecar and fed to the rendering engine.
func ToDOT(d *Diagram) string {
	var buf bytes.Buffer
	if c := d.Comment(); c != "" {
		fmt.Fprintf(&buf, "// %s\n", c)
	}
	fmt.Fprintf(&buf, "digraph %s {\n", quote(d.Name()))
	fmt.Fprintf(&buf, "  graph [%s];\n", strings.Join(graphAttrs(d.Options()), ", "))
	buf.WriteString("\n")

	for _, n := range d.nodes {
		fmt.Fprintf(&buf, "  %s [%s];\n", quote(n.ID), strings.Join(nodeAttrs(n), ", "))
	}

	buf.WriteString("\n")
	for _, e := range d.edges {
		if e.Label != "" {
			fmt.Fprintf(&buf, "  %s -> %s [label=%s];\n", quote(e.From), quote(e.To), quote(e.Label))
			continue
		}
		fmt.Fprintf(&buf, "  %s -> %s;\n", quote(e.From), quote(e.To))
	}

	buf.WriteString("}\n")
	return buf.String()
}

func graphAttrs(o Options) []string {
	attrs := []string{
		"overlap=" + strconv.FormatBool(o.Overlap),
		"splines=" + strconv.FormatBool(o.Splines),
	}
	if o.Layout != "" {
		attrs = append(attrs, "layout="+o.Layout)
	}
	return attrs
}

func nodeAttrs(n Node) []string {
	attrs := []string{
		"label=" + quote(n.DisplayLabel()),
		"shape=" + string(n.Shape),
		"fillcolor=" + string(n.Fill),
	}
	if n.Filled {
		attrs = append(attrs, "style=filled")
	}
	return append(attrs, "pos="+quote(fmtPos(n.Pos)))
}

// fmtPos formats a pinned position, e.g. "12,-4!".
func fmtPos(p Point) string {
	return strconv.FormatFloat(p.X, 'f', -1, 64) + "," + strconv.FormatFloat(p.Y, 'f', -1, 64) + "!"
}

var dotEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`, "\n", `\n`)

// quote returns s as a DOT double-quoted string. Newlines become the DOT
// "\n" escape, which Graphviz renders as a centered line break.
func quote(s string) string {
	return `"` + dotEscaper.Replace(s) + `"`
}
