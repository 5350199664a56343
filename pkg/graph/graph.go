package graph

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// Graph is the generic node-link structure accepted at the import boundary.
// Node and edge attribute maps are opaque; recognized keys are interpreted
// by the front end, everything else passes through.
type Graph struct {
	Directed bool   `json:"directed,omitempty"`
	Nodes    []Node `json:"nodes"`
	Edges    []Edge `json:"edges"`
}

// Node is a vertex with an attribute map.
type Node struct {
	ID    string         `json:"id"`
	Attrs map[string]any `json:"attrs,omitempty"`
}

// Edge is a connection between two node IDs with an attribute map.
type Edge struct {
	From  string         `json:"from"`
	To    string         `json:"to"`
	Attrs map[string]any `json:"attrs,omitempty"`
}

// NodeAttrs returns the attribute map of the node with the given id, or nil
// when the node is not listed. The returned map is shared with the graph;
// callers must not modify it.
func (g *Graph) NodeAttrs(id string) map[string]any {
	for i := range g.Nodes {
		if g.Nodes[i].ID == id {
			return g.Nodes[i].Attrs
		}
	}
	return nil
}

// Isolates returns the IDs of nodes without incident edges, in listing
// order.
func (g *Graph) Isolates() []string {
	connected := make(map[string]bool, len(g.Nodes))
	for _, e := range g.Edges {
		connected[e.From] = true
		connected[e.To] = true
	}
	var out []string
	for _, n := range g.Nodes {
		if !connected[n.ID] {
			out = append(out, n.ID)
		}
	}
	return out
}

// Read decodes a JSON graph from r.
//
// The input must be a JSON object with "nodes" and "edges" arrays; see the
// package documentation for the format. Read returns an error if the JSON
// is malformed. Structural checks (edge endpoints, directedness) happen at
// ingestion time, not here.
//
// The returned Graph is independent of r. Read does not close r.
func Read(r io.Reader) (*Graph, error) {
	var g Graph
	if err := json.NewDecoder(r).Decode(&g); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	return &g, nil
}

// ReadFile reads a JSON file at path and returns the decoded Graph.
// The error wraps the underlying cause with the file path for context.
func ReadFile(path string) (*Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return Read(f)
}

// Write encodes g as indented JSON to w. The output can be re-imported with
// [Read] for round-trip processing.
func Write(g *Graph, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(g); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// WriteFile writes g to a JSON file at path.
// This is a convenience wrapper around [Write] for file-based output.
func WriteFile(g *Graph, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return Write(g, f)
}
