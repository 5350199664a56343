package network

import (
	"slices"

	"github.com/matzehuels/visnet/pkg/errors"
	"github.com/matzehuels/visnet/pkg/graph"
)

// ImportOptions tunes the ingestion of an external [graph.Graph].
// Zero-valued fields fall back to the documented defaults.
type ImportOptions struct {
	// NodeSizeTransform maps a node's size attribute before plotting.
	// Defaults to the identity function. The result is truncated to an int.
	NodeSizeTransform func(float64) float64

	// EdgeWeightTransform maps an edge's weight attribute before plotting.
	// Defaults to the identity function.
	EdgeWeightTransform func(float64) float64

	// DefaultNodeSize is applied when a node has no size attribute.
	// Defaults to 10.
	DefaultNodeSize float64

	// DefaultEdgeWeight is applied when an edge has no weight attribute.
	// Defaults to 1.
	DefaultEdgeWeight float64

	// EdgeScaling routes the transformed weight into the "value" attribute
	// (scaled by the front end) instead of "width" (fixed width).
	EdgeScaling bool
}

func (o ImportOptions) withDefaults() ImportOptions {
	if o.NodeSizeTransform == nil {
		o.NodeSizeTransform = func(x float64) float64 { return x }
	}
	if o.EdgeWeightTransform == nil {
		o.EdgeWeightTransform = func(x float64) float64 { return x }
	}
	if o.DefaultNodeSize == 0 {
		o.DefaultNodeSize = 10
	}
	if o.DefaultEdgeWeight == 0 {
		o.DefaultEdgeWeight = 1
	}
	return o
}

// FromGraph translates an external generic graph into this network's node
// and edge lists. The input's directed flag must match the network's mode;
// no automatic conversion is performed.
//
// Edges are processed first, in the input's listing order: both endpoint
// nodes are created with their attribute maps (size default and size
// transform applied), then the edge is added with its attributes, the
// transformed weight routed into "width" or "value" per the scaling flag.
// Isolated nodes are added last with the size default applied.
//
// The input structure is never mutated; all records are built from copies.
func (n *Network) FromGraph(g *graph.Graph, opts ImportOptions) error {
	if g.Directed != n.directed {
		return errors.New(errors.ErrCodeDirectedMismatch,
			"graph directed=%v does not match network directed=%v", g.Directed, n.directed)
	}
	opts = opts.withDefaults()

	for _, e := range g.Edges {
		for _, endpoint := range []string{e.From, e.To} {
			attrs := nodeAttrList(g.NodeAttrs(endpoint), opts, true)
			if err := n.AddNode(endpoint, attrs...); err != nil {
				return err
			}
		}
		if err := n.AddEdge(e.From, e.To, edgeAttrList(e.Attrs, opts)...); err != nil {
			return err
		}
	}

	for _, id := range g.Isolates() {
		attrs := nodeAttrList(g.NodeAttrs(id), opts, false)
		if err := n.AddNode(id, attrs...); err != nil {
			return err
		}
	}
	return nil
}

// nodeAttrList copies a node attribute map into an ordered attribute list,
// filling in the size default. The size transform is only applied for nodes
// reached through an edge, matching the original adapter's behavior for
// isolated nodes.
func nodeAttrList(src map[string]any, opts ImportOptions, transform bool) []Attr {
	size, ok := toFloat(src["size"])
	if !ok {
		size = opts.DefaultNodeSize
	}
	if transform {
		size = opts.NodeSizeTransform(size)
	}

	attrs := []Attr{{Key: "size", Value: int(size)}}
	for _, k := range sortedKeys(src) {
		if k == "size" {
			continue
		}
		attrs = append(attrs, Attr{Key: k, Value: src[k]})
	}
	return attrs
}

// edgeAttrList copies an edge attribute map, replacing the raw weight with
// the transformed value under "width" or "value". Edges that already carry
// both of those attributes are passed through untouched.
func edgeAttrList(src map[string]any, opts ImportOptions) []Attr {
	var attrs []Attr
	for _, k := range sortedKeys(src) {
		if k == "weight" {
			continue
		}
		attrs = append(attrs, Attr{Key: k, Value: src[k]})
	}

	_, hasValue := src["value"]
	_, hasWidth := src["width"]
	if hasValue && hasWidth {
		return attrs
	}

	weight, ok := toFloat(src["weight"])
	if !ok {
		weight = opts.DefaultEdgeWeight
	}
	key := "width"
	if opts.EdgeScaling {
		key = "value"
	}
	return append(attrs, Attr{Key: key, Value: opts.EdgeWeightTransform(weight)})
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

func toFloat(v any) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, true
	case float32:
		return float64(x), true
	case int:
		return float64(x), true
	case int64:
		return float64(x), true
	}
	return 0, false
}
