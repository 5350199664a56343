package network

import (
	"bytes"
	"encoding/json"
	"math"

	"github.com/matzehuels/visnet/pkg/errors"
)

// Node is a single vertex record owned by a [Network].
// The ID and Label keep their original string-or-integer form so the
// serialized output matches what the caller supplied.
type Node struct {
	ID    any    // string or int, unique within the owning Network
	Label any    // defaults to ID when not supplied
	Shape string // shape tag, e.g. "dot", "box", "circularImage"
	Attrs Attrs  // remaining visual attributes, insertion-ordered
}

// Title returns the node's hover-title attribute, if set.
func (n *Node) Title() (string, bool) {
	v, ok := n.Attrs.Get("title")
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// MarshalJSON serializes the node as a single flat object: id, label and
// shape first, then the attribute bag in insertion order.
func (n *Node) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(`{"id":`)
	id, err := json.Marshal(n.ID)
	if err != nil {
		return nil, err
	}
	buf.Write(id)
	buf.WriteString(`,"label":`)
	label, err := json.Marshal(n.Label)
	if err != nil {
		return nil, err
	}
	buf.Write(label)
	buf.WriteString(`,"shape":`)
	shape, err := json.Marshal(n.Shape)
	if err != nil {
		return nil, err
	}
	buf.Write(shape)
	if err := n.Attrs.appendJSON(&buf); err != nil {
		return nil, err
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// normalizeID validates that id is a string or an integer and collapses the
// Go integer kinds to a single representation so that AddNode(int32(3)) and
// AddNode(3) refer to the same node. Unsigned values are accepted when they
// fit in an int; larger values fail validation rather than changing sign.
func normalizeID(id any) (any, error) {
	switch v := id.(type) {
	case string:
		return v, nil
	case int:
		return v, nil
	case int8:
		return int(v), nil
	case int16:
		return int(v), nil
	case int32:
		return int(v), nil
	case int64:
		return int(v), nil
	case uint:
		return unsignedID(uint64(v))
	case uint8:
		return int(v), nil
	case uint16:
		return int(v), nil
	case uint32:
		return unsignedID(uint64(v))
	case uint64:
		return unsignedID(v)
	}
	return nil, errors.New(errors.ErrCodeInvalidNodeID,
		"node id must be a string or int, got %T", id)
}

func unsignedID(v uint64) (any, error) {
	if v > math.MaxInt {
		return nil, errors.New(errors.ErrCodeInvalidNodeID,
			"node id %d does not fit in an int", v)
	}
	return int(v), nil
}
