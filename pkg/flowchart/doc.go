// Package flowchart describes fixed-layout process flowcharts.
//
// # Overview
//
// A [Diagram] is a directed graph whose nodes carry everything Graphviz needs
// to draw them: a label, a [Shape], a fill [Color], and a pinned [Point].
// Edges may carry a short label, typically a decision branch ("Yes"/"No").
// Diagrams are built once with a [Builder] and are read-only afterwards.
//
// Unlike a DAG, a flowchart may loop back: the Drip-O-Matic chart returns
// from "Final Adjustments" to "Testing & Calibration". Use [Diagram.Cycles]
// to list such loops.
//
// # Usage
//
//	d := flowchart.DripOMatic()
//	dot := flowchart.ToDOT(d)
//
// The DOT output sets layout=neato and writes each position with a trailing
// "!", so Graphviz keeps nodes where they were declared and only routes the
// edges.
//
// # Export
//
// [WriteJSON] and [ExportJSON] serialize a diagram for other tools.
package flowchart
