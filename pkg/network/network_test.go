package network

import (
	"encoding/json"
	"math"
	"strings"
	"testing"

	"github.com/matzehuels/visnet/pkg/errors"
)

func TestAddNodeFirstWriteWins(t *testing.T) {
	n := New(false)

	if err := n.AddNode("a", Attr{Key: "label", Value: "first"}); err != nil {
		t.Fatalf("AddNode() error = %v", err)
	}
	if err := n.AddNode("a", Attr{Key: "label", Value: "second"}); err != nil {
		t.Fatalf("repeated AddNode() error = %v", err)
	}

	if n.NumNodes() != 1 {
		t.Fatalf("NumNodes() = %d, want 1", n.NumNodes())
	}
	node, err := n.GetNode("a")
	if err != nil {
		t.Fatalf("GetNode() error = %v", err)
	}
	if node.Label != "first" {
		t.Errorf("Label = %v, want first write preserved", node.Label)
	}
}

func TestAddNodeIDTypes(t *testing.T) {
	tests := []struct {
		name    string
		id      any
		wantErr bool
	}{
		{"string", "a", false},
		{"int", 7, false},
		{"int32", int32(7), false},
		{"int64", int64(7), false},
		{"uint8", uint8(7), false},
		{"uint64", uint64(7), false},
		{"uint64 overflow", uint64(math.MaxInt) + 1, true},
		{"uint overflow", uint(math.MaxInt) + 1, true},
		{"float", 1.5, true},
		{"bool", true, true},
		{"nil", nil, true},
		{"slice", []int{1}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := New(false)
			err := n.AddNode(tt.id)
			if tt.wantErr {
				if !errors.Is(err, errors.ErrCodeInvalidNodeID) {
					t.Errorf("AddNode(%v) error = %v, want INVALID_NODE_ID", tt.id, err)
				}
				return
			}
			if err != nil {
				t.Errorf("AddNode(%v) error = %v", tt.id, err)
			}
		})
	}
}

func TestAddNodeIntKindsCollapse(t *testing.T) {
	n := New(false)
	if err := n.AddNode(3); err != nil {
		t.Fatal(err)
	}
	if err := n.AddNode(int32(3)); err != nil {
		t.Fatal(err)
	}
	if n.NumNodes() != 1 {
		t.Errorf("NumNodes() = %d, int kinds should collapse to one node", n.NumNodes())
	}
}

func TestAddNodeDefaults(t *testing.T) {
	n := New(false)
	if err := n.AddNode("a"); err != nil {
		t.Fatal(err)
	}

	node, _ := n.GetNode("a")
	if node.Shape != DefaultShape {
		t.Errorf("Shape = %q, want %q", node.Shape, DefaultShape)
	}
	if node.Label != "a" {
		t.Errorf("Label = %v, want id fallback", node.Label)
	}
	if color, ok := node.Attrs.Get("color"); !ok || color != DefaultColor {
		t.Errorf("color = %v, want default %q", color, DefaultColor)
	}
}

func TestAddNodeColorSuppression(t *testing.T) {
	tests := []struct {
		name string
		attr Attr
	}{
		{"explicit color", Attr{Key: "color", Value: "red"}},
		{"group styling", Attr{Key: "group", Value: 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := New(false)
			if err := n.AddNode("a", tt.attr); err != nil {
				t.Fatal(err)
			}
			node, _ := n.GetNode("a")
			if color, ok := node.Attrs.Get("color"); ok && color == DefaultColor {
				t.Error("default color should not be applied")
			}
		})
	}
}

func TestAddNodeFontColor(t *testing.T) {
	n := New(false)
	n.SetFontColor("#222222")
	if err := n.AddNode("a"); err != nil {
		t.Fatal(err)
	}

	node, _ := n.GetNode("a")
	font, ok := node.Attrs.Get("font")
	if !ok {
		t.Fatal("font attribute missing")
	}
	m, ok := font.(map[string]any)
	if !ok || m["color"] != "#222222" {
		t.Errorf("font = %v, want color map", font)
	}
}

func TestAddNodesBatch(t *testing.T) {
	n := New(false)
	err := n.AddNodes([]any{0, 1, 2, 3}, map[string][]any{
		"label": {"zero", "one", "two", "three"},
		"size":  {10, 20, 30, 40},
	})
	if err != nil {
		t.Fatalf("AddNodes() error = %v", err)
	}
	if n.NumNodes() != 4 {
		t.Fatalf("NumNodes() = %d, want 4", n.NumNodes())
	}
	node, _ := n.GetNode(2)
	if node.Label != "two" {
		t.Errorf("Label = %v, want two", node.Label)
	}
	if size, _ := node.Attrs.Get("size"); size != 30 {
		t.Errorf("size = %v, want 30", size)
	}
}

func TestAddNodesLengthMismatch(t *testing.T) {
	n := New(false)
	err := n.AddNodes([]any{1, 2, 3}, map[string][]any{"size": {10, 20}})
	if !errors.Is(err, errors.ErrCodeLengthMismatch) {
		t.Fatalf("AddNodes() error = %v, want LENGTH_MISMATCH", err)
	}
	if n.NumNodes() != 0 {
		t.Errorf("NumNodes() = %d, mismatch should fail before any insertion", n.NumNodes())
	}
}

func TestAddNodesInvalidListName(t *testing.T) {
	n := New(false)
	err := n.AddNodes([]any{1}, map[string][]any{"weight": {3}})
	if !errors.Is(err, errors.ErrCodeInvalidAttribute) {
		t.Fatalf("AddNodes() error = %v, want INVALID_ATTRIBUTE", err)
	}
}

func TestAddEdgeRequiresEndpoints(t *testing.T) {
	n := New(false)
	if err := n.AddNode("a"); err != nil {
		t.Fatal(err)
	}

	err := n.AddEdge("a", "missing")
	if !errors.Is(err, errors.ErrCodeInvalidEndpoint) {
		t.Fatalf("AddEdge() error = %v, want INVALID_ENDPOINT", err)
	}
	if n.NumEdges() != 0 {
		t.Errorf("NumEdges() = %d, nothing should be stored", n.NumEdges())
	}
}

func TestAddEdgeUndirectedDedup(t *testing.T) {
	n := New(false)
	for _, id := range []any{"a", "b"} {
		if err := n.AddNode(id); err != nil {
			t.Fatal(err)
		}
	}

	if err := n.AddEdge("a", "b"); err != nil {
		t.Fatal(err)
	}
	if err := n.AddEdge("a", "b"); err != nil {
		t.Fatalf("duplicate AddEdge() error = %v, want silent drop", err)
	}
	if err := n.AddEdge("b", "a"); err != nil {
		t.Fatalf("reversed AddEdge() error = %v, want silent drop", err)
	}
	if n.NumEdges() != 1 {
		t.Errorf("NumEdges() = %d, want 1", n.NumEdges())
	}
}

func TestAddEdgeDirectedBothOrientations(t *testing.T) {
	n := New(true)
	for _, id := range []any{"a", "b"} {
		if err := n.AddNode(id); err != nil {
			t.Fatal(err)
		}
	}

	if err := n.AddEdge("a", "b"); err != nil {
		t.Fatal(err)
	}
	if err := n.AddEdge("b", "a"); err != nil {
		t.Fatal(err)
	}
	if n.NumEdges() != 2 {
		t.Fatalf("NumEdges() = %d, want both orientations", n.NumEdges())
	}

	for _, e := range n.Edges() {
		if arrows, ok := e.Attrs.Get("arrows"); !ok || arrows != "to" {
			t.Errorf("edge %v->%v arrows = %v, want \"to\"", e.From, e.To, arrows)
		}
	}
}

func TestAddEdgeDirectedKeepsCallerArrows(t *testing.T) {
	n := New(true)
	for _, id := range []any{"a", "b"} {
		if err := n.AddNode(id); err != nil {
			t.Fatal(err)
		}
	}
	if err := n.AddEdge("a", "b", Attr{Key: "arrows", Value: "from"}); err != nil {
		t.Fatal(err)
	}
	if arrows, _ := n.Edges()[0].Attrs.Get("arrows"); arrows != "from" {
		t.Errorf("arrows = %v, caller value should win", arrows)
	}
}

func TestAdjacency(t *testing.T) {
	n := New(false)
	if err := n.AddNodes([]any{0, 1, 2, 3}, nil); err != nil {
		t.Fatal(err)
	}
	links := []Link{
		{From: 0, To: 1, Width: 1},
		{From: 0, To: 2, Width: 1},
		{From: 0, To: 3, Width: 1},
		{From: 1, To: 3, Width: 1},
	}
	if err := n.AddEdges(links); err != nil {
		t.Fatal(err)
	}

	wants := map[int]map[any]bool{
		0: {1: true, 2: true, 3: true},
		1: {0: true, 3: true},
	}
	for id, want := range wants {
		got, err := n.Neighbors(id)
		if err != nil {
			t.Fatalf("Neighbors(%d) error = %v", id, err)
		}
		if len(got) != len(want) {
			t.Fatalf("Neighbors(%d) = %v, want %v", id, got, want)
		}
		for k := range want {
			if !got[k] {
				t.Errorf("Neighbors(%d) missing %v", id, k)
			}
		}
	}

	// Undirected adjacency is symmetric.
	adj := n.AdjacencyList()
	for from, tos := range adj {
		for to := range tos {
			if !adj[to][from] {
				t.Errorf("adjacency not symmetric: %v->%v present, reverse missing", from, to)
			}
		}
	}
}

func TestAdjacencyDirected(t *testing.T) {
	n := New(true)
	for _, id := range []any{"a", "b"} {
		if err := n.AddNode(id); err != nil {
			t.Fatal(err)
		}
	}
	if err := n.AddEdge("a", "b"); err != nil {
		t.Fatal(err)
	}

	adj := n.AdjacencyList()
	if !adj["a"]["b"] {
		t.Error("a->b missing")
	}
	if adj["b"]["a"] {
		t.Error("directed adjacency must not be symmetric")
	}
}

func TestNeighborsErrors(t *testing.T) {
	n := New(false)

	if _, err := n.Neighbors("ghost"); !errors.Is(err, errors.ErrCodeNodeNotFound) {
		t.Errorf("Neighbors(ghost) error = %v, want NODE_NOT_FOUND", err)
	}
	if _, err := n.Neighbors(1.5); !errors.Is(err, errors.ErrCodeInvalidNodeID) {
		t.Errorf("Neighbors(1.5) error = %v, want INVALID_NODE_ID", err)
	}
}

func TestAdjacencyRecomputedPerCall(t *testing.T) {
	n := New(false)
	for _, id := range []any{"a", "b"} {
		if err := n.AddNode(id); err != nil {
			t.Fatal(err)
		}
	}

	before := n.AdjacencyList()
	if len(before["a"]) != 0 {
		t.Fatal("expected no neighbors yet")
	}

	if err := n.AddEdge("a", "b"); err != nil {
		t.Fatal(err)
	}
	after := n.AdjacencyList()
	if !after["a"]["b"] {
		t.Error("new edge missing from recomputed adjacency")
	}
	if before["a"]["b"] {
		t.Error("earlier snapshot must not change")
	}
}

func TestNodeJSONShape(t *testing.T) {
	n := New(false)
	if err := n.AddNode("a", Attr{Key: "title", Value: "hover"}); err != nil {
		t.Fatal(err)
	}

	data, err := json.Marshal(n.Nodes()[0])
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	got := string(data)
	if !strings.HasPrefix(got, `{"id":"a","label":"a","shape":"dot"`) {
		t.Errorf("node JSON = %s, want id/label/shape first", got)
	}
	if !strings.Contains(got, `"title":"hover"`) || !strings.Contains(got, `"color":"#97c2fc"`) {
		t.Errorf("node JSON missing attributes: %s", got)
	}
}

func TestFromDOTNormalization(t *testing.T) {
	n := New(true)
	n.FromDOT("digraph {\n  \"x\" -> \"y\";\n}")

	useDOT, dot := n.DOT()
	if !useDOT {
		t.Fatal("DOT mode should be active")
	}
	if strings.Contains(dot, "\n") {
		t.Error("DOT text should be a single line")
	}
	if !strings.Contains(dot, `\"x\"`) {
		t.Errorf("quotes should be escaped: %s", dot)
	}
}

func TestShowButtons(t *testing.T) {
	n := New(false)
	if n.Widget() {
		t.Fatal("widget should start disabled")
	}
	n.ShowButtons([]string{"physics"})
	if !n.Widget() {
		t.Error("ShowButtons should enable the widget")
	}
	if !n.Options().Configure.Enabled {
		t.Error("configure block should be enabled")
	}
}
