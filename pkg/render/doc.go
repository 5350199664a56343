// Package render turns a populated network into a standalone HTML document.
//
// # Overview
//
// The package is a thin gateway: it serializes the network's nodes, edges
// and options into a vis-network page and leaves all layout and physics to
// the JavaScript library. It provides:
//
//   - [Renderer]: HTML page generation ([Renderer.GenerateHTML],
//     [Renderer.WriteFile])
//   - Resource modes: remote CDN tags, local files next to the page, or a
//     fully inlined single-file document
//   - DOT export and SVG preview via Graphviz ([ToDOT], [RenderSVG])
//
// # Usage
//
//	net := network.New(false)
//	net.AddNode("a")
//	net.AddNode("b")
//	net.AddEdge("a", "b")
//
//	r := render.New(render.DefaultConfig(), nil)
//	err := r.WriteFile(ctx, net, "graph.html")
//
// Output names must end in ".html"; the check runs before any I/O so a bad
// name never leaves partial files behind.
package render
