// Package render turns a flowchart into an image file through Graphviz.
//
// # Overview
//
// [Render] always writes the diagram's DOT source next to the image (the
// ".gv" sidecar) and then hands that source to an [Engine]:
//
//	res, err := render.Render(ctx, flowchart.DripOMatic(), render.ExecEngine{}, render.Options{
//	    Output: "dripomatic_graph",
//	    Format: render.FormatPNG,
//	    View:   true,
//	})
//
// # Engines
//
//   - [ExecEngine] runs the system Graphviz binary named by the diagram's
//     layout (neato). A missing binary is reported as ENGINE_NOT_FOUND.
//   - [EmbeddedEngine] uses the WASM Graphviz bundled in
//     [github.com/goccy/go-graphviz] and needs no install.
//
// Any other engine failure is RENDER_FAILED. Both codes come from
// [github.com/matzehuels/dripomatic/pkg/errors]; callers branch on them with
// errors.Is and point the user at Result.Sidecar, which is set whenever the
// DOT source was written.
//
// # Viewing
//
// With Options.View set, a successful render is opened with the OS default
// application via [SystemViewer] (open, xdg-open, or rundll32).
package render
