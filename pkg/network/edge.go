package network

import (
	"bytes"
	"encoding/json"
)

// Edge is a connection record between two existing nodes.
// In directed mode an arrow marker ("arrows": "to") is stored unless the
// caller supplied one.
type Edge struct {
	From  any
	To    any
	Attrs Attrs
}

// newEdge builds an edge record, applying the arrow marker for directed
// networks when the caller did not set one.
func newEdge(from, to any, directed bool, attrs []Attr) *Edge {
	e := &Edge{From: from, To: to}
	for _, a := range attrs {
		e.Attrs.Set(a.Key, a.Value)
	}
	if directed && !e.Attrs.Has("arrows") {
		e.Attrs.Set("arrows", "to")
	}
	return e
}

// MarshalJSON serializes the edge as a single flat object: from and to
// first, then the attribute bag in insertion order.
func (e *Edge) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(`{"from":`)
	from, err := json.Marshal(e.From)
	if err != nil {
		return nil, err
	}
	buf.Write(from)
	buf.WriteString(`,"to":`)
	to, err := json.Marshal(e.To)
	if err != nil {
		return nil, err
	}
	buf.Write(to)
	if err := e.Attrs.appendJSON(&buf); err != nil {
		return nil, err
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
