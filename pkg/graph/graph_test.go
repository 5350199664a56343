package graph

import (
	"bytes"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func sample() *Graph {
	return &Graph{
		Directed: true,
		Nodes: []Node{
			{ID: "a", Attrs: map[string]any{"size": 4.0, "title": "root"}},
			{ID: "b"},
			{ID: "c"},
		},
		Edges: []Edge{
			{From: "a", To: "b", Attrs: map[string]any{"weight": 2.0}},
		},
	}
}

func TestRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(sample(), &buf); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	got, err := Read(&buf)
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if !reflect.DeepEqual(got, sample()) {
		t.Errorf("round trip changed the graph:\ngot  %+v\nwant %+v", got, sample())
	}
}

func TestReadMalformed(t *testing.T) {
	_, err := Read(strings.NewReader("{nodes: ["))
	if err == nil {
		t.Fatal("Read() should fail on malformed JSON")
	}
}

func TestReadFileMissing(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "absent.json"))
	if err == nil {
		t.Fatal("ReadFile() should fail on a missing file")
	}
	if !strings.Contains(err.Error(), "absent.json") {
		t.Errorf("error should name the file: %v", err)
	}
}

func TestWriteFileAndReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "graph.json")
	if err := WriteFile(sample(), path); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	got, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if len(got.Nodes) != 3 || len(got.Edges) != 1 || !got.Directed {
		t.Errorf("ReadFile() = %+v", got)
	}
}

func TestNodeAttrs(t *testing.T) {
	g := sample()

	attrs := g.NodeAttrs("a")
	if attrs["title"] != "root" {
		t.Errorf("NodeAttrs(a) = %v", attrs)
	}
	if g.NodeAttrs("b") != nil {
		t.Error("NodeAttrs(b) should be nil for a node without attributes")
	}
	if g.NodeAttrs("ghost") != nil {
		t.Error("NodeAttrs(ghost) should be nil for an unknown node")
	}
}

func TestIsolates(t *testing.T) {
	got := sample().Isolates()
	if len(got) != 1 || got[0] != "c" {
		t.Errorf("Isolates() = %v, want [c]", got)
	}

	empty := &Graph{}
	if len(empty.Isolates()) != 0 {
		t.Error("empty graph should have no isolates")
	}
}
