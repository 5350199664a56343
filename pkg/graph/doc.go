// Package graph defines the generic typed graph structure accepted at the
// import boundary, plus JSON read/write helpers.
//
// A [Graph] is a plain node-link description: nodes and edges with
// string-keyed attribute maps and a directed/undirected flag. It is the
// format external tools hand to visnet, and what the CLI reads from disk:
//
//	{
//	  "directed": false,
//	  "nodes": [
//	    {"id": "app", "attrs": {"title": "the app", "group": "core"}},
//	    {"id": "lib-a"}
//	  ],
//	  "edges": [
//	    {"from": "app", "to": "lib-a", "attrs": {"weight": 3}}
//	  ]
//	}
//
// Ingestion into a network store is done by network-side adapters; this
// package only owns the structure and its serialization. Attribute maps are
// treated as opaque key-value data and pass through unvalidated.
//
// # Common operations
//
//	g, _ := graph.ReadFile("deps.json")     // File → Graph
//	g, _ := graph.Read(r)                   // io.Reader → Graph
//	graph.WriteFile(g, "out.json")          // Graph → File
//	graph.Write(g, w)                       // Graph → io.Writer
//
// All functions are safe for concurrent reads but not concurrent writes.
package graph
