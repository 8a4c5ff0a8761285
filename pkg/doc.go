// Package pkg provides the core libraries for the Drip-O-Matic flowchart.
//
// # Overview
//
// The pkg directory is organized into four areas:
//
//  1. [flowchart] - The diagram model, the Drip-O-Matic data, and DOT/JSON output
//  2. [render] - Graphviz engines and the render-with-sidecar workflow
//  3. [errors] - Coded errors shared by the library and the CLI
//  4. [buildinfo] - Version information injected at build time
//
// # Architecture
//
// The data flow through dripomatic:
//
//	flowchart.DripOMatic()
//	         ↓
//	flowchart.ToDOT ──→ <output>.gv
//	         ↓
//	render.Engine (system Graphviz or embedded) ──→ <output>.<format>
//	         ↓
//	render.Viewer (optional)
//
// [flowchart]: github.com/matzehuels/dripomatic/pkg/flowchart
// [render]: github.com/matzehuels/dripomatic/pkg/render
// [errors]: github.com/matzehuels/dripomatic/pkg/errors
// [buildinfo]: github.com/matzehuels/dripomatic/pkg/buildinfo
package pkg
