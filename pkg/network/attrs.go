package network

import (
	"bytes"
	"encoding/json"
)

// Attr is a single named attribute for a node or an edge.
// Attributes are applied in the order given, so later values
// overwrite earlier ones with the same key.
type Attr struct {
	Key   string
	Value any
}

// Attrs is an ordered string-keyed bag of loosely-typed values attached to a
// node or edge record. Insertion order is preserved for serialization.
//
// Recognized node keys: id, label, shape, color, size, title, value, x, y,
// group, hidden, physics, mass, borderWidth, borderWidthSelected, image,
// brokenImage, level, font, labelHighlightBold.
//
// Recognized edge keys: from, to, width, value, hidden, physics, title,
// arrows, smooth, color, arrowStrikethrough.
//
// Keys outside these sets are passed through opaquely to the serialized
// output without validation.
type Attrs struct {
	keys []string
	vals map[string]any
}

// Set stores a value under key, preserving the position of an existing key.
func (a *Attrs) Set(key string, v any) {
	if a.vals == nil {
		a.vals = make(map[string]any)
	}
	if _, ok := a.vals[key]; !ok {
		a.keys = append(a.keys, key)
	}
	a.vals[key] = v
}

// Get returns the value stored under key and whether it exists.
func (a *Attrs) Get(key string) (any, bool) {
	v, ok := a.vals[key]
	return v, ok
}

// Has reports whether key is present.
func (a *Attrs) Has(key string) bool {
	_, ok := a.vals[key]
	return ok
}

// Len returns the number of stored attributes.
func (a *Attrs) Len() int { return len(a.keys) }

// Keys returns the attribute keys in insertion order.
// The returned slice is a copy and safe to modify.
func (a *Attrs) Keys() []string {
	out := make([]string, len(a.keys))
	copy(out, a.keys)
	return out
}

// Clone returns an independent copy of the bag.
func (a *Attrs) Clone() Attrs {
	var out Attrs
	for _, k := range a.keys {
		out.Set(k, a.vals[k])
	}
	return out
}

// appendJSON writes the attributes as `"key": value` pairs, in insertion
// order, to buf. Used by Node and Edge marshaling to produce a single flat
// JSON object per record.
func (a *Attrs) appendJSON(buf *bytes.Buffer) error {
	for _, k := range a.keys {
		buf.WriteByte(',')
		kb, err := json.Marshal(k)
		if err != nil {
			return err
		}
		buf.Write(kb)
		buf.WriteByte(':')
		vb, err := json.Marshal(a.vals[k])
		if err != nil {
			return err
		}
		buf.Write(vb)
	}
	return nil
}

// MarshalJSON serializes the bag as a JSON object in insertion order.
func (a Attrs) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range a.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		buf.Write(kb)
		buf.WriteByte(':')
		vb, err := json.Marshal(a.vals[k])
		if err != nil {
			return nil, err
		}
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
