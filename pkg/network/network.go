package network

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/matzehuels/visnet/pkg/errors"
	"github.com/matzehuels/visnet/pkg/options"
)

// Defaults applied to nodes when the caller does not override them.
const (
	DefaultShape = "dot"
	DefaultColor = "#97c2fc"
)

// Network is the in-memory owner of all node and edge records for one
// visualization instance. Insertion order is preserved for both collections
// and used for all iteration and adjacency construction.
//
// The zero value is not usable - use [New].
type Network struct {
	nodes     []*Node
	nodeIDs   []any
	nodeMap   map[any]*Node
	edges     []*Edge
	directed  bool
	fontColor string
	opts      *options.Options

	widget  bool
	useDOT  bool
	dotLang string
}

// New creates an empty Network. The directed/undirected mode is fixed for
// the lifetime of the instance.
func New(directed bool) *Network {
	return NewWithLayout(directed, false)
}

// NewWithLayout creates an empty Network whose options tree carries a
// hierarchical layout block.
func NewWithLayout(directed, hierarchical bool) *Network {
	return &Network{
		nodeMap:  make(map[any]*Node),
		directed: directed,
		opts:     options.New(hierarchical),
	}
}

// Directed reports whether the network was constructed in directed mode.
func (n *Network) Directed() bool { return n.directed }

// SetFontColor sets the label text color applied to nodes added afterwards.
func (n *Network) SetFontColor(color string) { n.fontColor = color }

// Options returns the options tree. The caller may mutate it directly;
// the convenience wrappers on Network cover the common operations.
func (n *Network) Options() *options.Options { return n.opts }

// String renders a readable JSON summary of the stored graph data.
func (n *Network) String() string {
	data, err := json.MarshalIndent(map[string]any{
		"Nodes": n.nodeIDs,
		"Edges": n.edges,
	}, "", "    ")
	if err != nil {
		return fmt.Sprintf("network |N|=%d |E|=%d", n.NumNodes(), n.NumEdges())
	}
	return string(data)
}

// =============================================================================
// Nodes
// =============================================================================

// AddNode appends a new node record for id unless the identifier has already
// been seen, in which case the call is a silent no-op. Later calls can never
// update an existing node's attributes: the first write wins.
//
// The attribute keys "label" and "shape" populate the typed fields of the
// record; the label defaults to the identifier when absent. A default color
// is applied unless the caller supplies a "color" or "group" attribute.
//
// Returns a validation error if id is neither a string nor an integer, or
// is an unsigned value too large to fit in an int.
func (n *Network) AddNode(id any, attrs ...Attr) error {
	nid, err := normalizeID(id)
	if err != nil {
		return err
	}
	if _, exists := n.nodeMap[nid]; exists {
		return nil
	}

	node := &Node{ID: nid, Label: nid, Shape: DefaultShape}
	for _, a := range attrs {
		switch a.Key {
		case "label":
			if a.Value != nil && a.Value != "" {
				node.Label = a.Value
			}
		case "shape":
			if s, ok := a.Value.(string); ok && s != "" {
				node.Shape = s
			}
		default:
			node.Attrs.Set(a.Key, a.Value)
		}
	}
	// Group styling supplies the color, so the default is only applied when
	// neither a color nor a group was given.
	if !node.Attrs.Has("color") && !node.Attrs.Has("group") {
		node.Attrs.Set("color", DefaultColor)
	}
	if n.fontColor != "" && !node.Attrs.Has("font") {
		node.Attrs.Set("font", map[string]any{"color": n.fontColor})
	}

	n.nodes = append(n.nodes, node)
	n.nodeIDs = append(n.nodeIDs, nid)
	n.nodeMap[nid] = node
	return nil
}

// batchAttrKeys is the fixed application order for AddNodes attribute lists,
// keeping output deterministic regardless of map iteration order.
var batchAttrKeys = []string{"size", "value", "title", "x", "y", "label", "color", "shape"}

// AddNodes applies [Network.AddNode] per index over ids. Each named
// attribute list must have exactly the same length as ids.
//
// Valid list names: size, value, title, x, y, label, color, shape.
// An unknown name or a length mismatch fails the whole call before any
// insertion. Batches are otherwise not transactional: an invalid identifier
// partway through leaves prior insertions in place.
func (n *Network) AddNodes(ids []any, lists map[string][]any) error {
	for name, values := range lists {
		valid := false
		for _, k := range batchAttrKeys {
			if k == name {
				valid = true
				break
			}
		}
		if !valid {
			return errors.New(errors.ErrCodeInvalidAttribute, "invalid arg %q", name)
		}
		if len(values) != len(ids) {
			return errors.New(errors.ErrCodeLengthMismatch,
				"keyword arg %s [length %d] does not match [length %d] of nodes",
				name, len(values), len(ids))
		}
	}

	for i, id := range ids {
		var attrs []Attr
		for _, k := range batchAttrKeys {
			if values, ok := lists[k]; ok {
				attrs = append(attrs, Attr{Key: k, Value: values[i]})
			}
		}
		if err := n.AddNode(id, attrs...); err != nil {
			return err
		}
	}
	return nil
}

// NumNodes returns the number of stored nodes.
func (n *Network) NumNodes() int { return len(n.nodeIDs) }

// NodeIDs returns the stored node identifiers in insertion order.
// The returned slice is a copy and safe to modify.
func (n *Network) NodeIDs() []any {
	out := make([]any, len(n.nodeIDs))
	copy(out, n.nodeIDs)
	return out
}

// Nodes returns the stored node records in insertion order.
// The records are shared with the store; treat them as read-only.
func (n *Network) Nodes() []*Node { return n.nodes }

// GetNode looks a node up by identifier.
// Returns a not-found error for unknown identifiers.
func (n *Network) GetNode(id any) (*Node, error) {
	nid, err := normalizeID(id)
	if err != nil {
		return nil, err
	}
	node, ok := n.nodeMap[nid]
	if !ok {
		return nil, errors.New(errors.ErrCodeNodeNotFound, "node %v not in network", id)
	}
	return node, nil
}

// =============================================================================
// Edges
// =============================================================================

// AddEdge appends an edge between two existing nodes.
// Both endpoints must already be present, otherwise a validation error is
// returned and nothing is stored. In undirected mode a duplicate of an
// existing edge in either orientation is silently dropped.
func (n *Network) AddEdge(from, to any, attrs ...Attr) error {
	src, err := normalizeID(from)
	if err != nil {
		return err
	}
	dst, err := normalizeID(to)
	if err != nil {
		return err
	}
	if _, ok := n.nodeMap[src]; !ok {
		return errors.New(errors.ErrCodeInvalidEndpoint, "non existent node %v", from)
	}
	if _, ok := n.nodeMap[dst]; !ok {
		return errors.New(errors.ErrCodeInvalidEndpoint, "non existent node %v", to)
	}

	// Duplicates are only checked for undirected networks; in directed mode
	// both orientations may coexist as distinct edges.
	if !n.directed {
		for _, e := range n.edges {
			if (src == e.From && dst == e.To) || (src == e.To && dst == e.From) {
				return nil
			}
		}
	}

	n.edges = append(n.edges, newEdge(src, dst, n.directed, attrs))
	return nil
}

// Link describes an edge for batch insertion: a source, a destination and an
// optional width.
type Link struct {
	From  any
	To    any
	Width any // mapped to the "width" attribute when non-nil
}

// AddEdges delegates each entry to [Network.AddEdge]. An error aborts the
// call, leaving edges added so far in place.
func (n *Network) AddEdges(links []Link) error {
	for _, l := range links {
		var err error
		if l.Width != nil {
			err = n.AddEdge(l.From, l.To, Attr{Key: "width", Value: l.Width})
		} else {
			err = n.AddEdge(l.From, l.To)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// NumEdges returns the number of stored edges.
func (n *Network) NumEdges() int { return len(n.edges) }

// Edges returns the stored edge records in insertion order.
// The records are shared with the store; treat them as read-only.
func (n *Network) Edges() []*Edge { return n.edges }

// =============================================================================
// Adjacency
// =============================================================================

// AdjacencyList derives, for every node, the set of directly connected node
// identifiers. It is recomputed from the current edge list on each call. For
// undirected networks the mapping is symmetric.
func (n *Network) AdjacencyList() map[any]map[any]bool {
	adj := make(map[any]map[any]bool, len(n.nodeIDs))
	for _, id := range n.nodeIDs {
		adj[id] = make(map[any]bool)
	}
	for _, e := range n.edges {
		adj[e.From][e.To] = true
		if !n.directed {
			adj[e.To][e.From] = true
		}
	}
	return adj
}

// Neighbors returns the adjacency set for id.
// Returns a validation error for an invalid identifier type and a not-found
// error when id is absent from the network.
func (n *Network) Neighbors(id any) (map[any]bool, error) {
	nid, err := normalizeID(id)
	if err != nil {
		return nil, err
	}
	if _, ok := n.nodeMap[nid]; !ok {
		return nil, errors.New(errors.ErrCodeNodeNotFound, "node %v not in network", id)
	}
	return n.AdjacencyList()[nid], nil
}

// =============================================================================
// DOT pass-through
// =============================================================================

// FromDOT switches the network into DOT mode: the text is treated as an
// opaque graph description to be embedded inline in the output document,
// bypassing the node and edge lists entirely. No structural parsing of the
// DOT grammar happens here; the front-end library interprets the string.
//
// The text is normalized to a single line and double quotes are escaped so
// it can live inside a script string literal.
func (n *Network) FromDOT(text string) {
	n.useDOT = true
	n.dotLang = strings.Join(strings.Split(text, "\n"), " ")
	n.dotLang = strings.ReplaceAll(n.dotLang, `"`, `\"`)
}

// DOT returns whether DOT mode is active and the normalized DOT text.
func (n *Network) DOT() (bool, string) { return n.useDOT, n.dotLang }

// =============================================================================
// Options facade
// =============================================================================

// BarnesHut selects the quadtree-based gravity model. It is the fastest and
// the recommended solver for non-hierarchical layouts.
func (n *Network) BarnesHut(p options.GravityParams) { n.opts.Physics.UseBarnesHut(p) }

// Repulsion selects the simplified-field repulsion solver.
func (n *Network) Repulsion(p options.RepulsionParams) { n.opts.Physics.UseRepulsion(p) }

// HRepulsion selects the hierarchical repulsion solver, which takes levels
// into account and normalizes forces.
func (n *Network) HRepulsion(p options.RepulsionParams) { n.opts.Physics.UseHRepulsion(p) }

// ForceAtlas2Based selects the forceAtlas2-based solver with its
// distance-independent central gravity and linear repulsion.
func (n *Network) ForceAtlas2Based(p options.GravityParams) {
	n.opts.Physics.UseForceAtlas2Based(p)
}

// TogglePhysics enables or disables the physics simulation for all nodes.
func (n *Network) TogglePhysics(status bool) { n.opts.Physics.Enabled = status }

// ToggleStabilization enables or disables on-load stabilization.
func (n *Network) ToggleStabilization(status bool) {
	n.opts.Physics.Stabilization.Enabled = status
}

// ToggleDragNodes enables or disables dragging of nodes.
func (n *Network) ToggleDragNodes(status bool) { n.opts.Interaction.DragNodes = status }

// ToggleHideEdgesOnDrag hides edges while the network is dragged,
// making panning of large graphs easier.
func (n *Network) ToggleHideEdgesOnDrag(status bool) {
	n.opts.Interaction.HideEdgesOnDrag = status
}

// ToggleHideNodesOnDrag hides nodes while the network is dragged.
func (n *Network) ToggleHideNodesOnDrag(status bool) {
	n.opts.Interaction.HideNodesOnDrag = status
}

// SetEdgeSmooth sets the edge curve style. The type must be one of the
// enumerated styles accepted by errors.ValidateSmoothType.
func (n *Network) SetEdgeSmooth(smoothType string) error {
	return n.opts.Edges.SetSmoothType(smoothType)
}

// InheritEdgeColors makes edges take on the color of the node they come from.
func (n *Network) InheritEdgeColors(status bool) { n.opts.Edges.InheritColors(status) }

// ShowButtons displays the front-end option editor widgets. filter narrows
// the editor to the named sections (e.g. "nodes", "edges", "physics"); pass
// nil for all of them.
func (n *Network) ShowButtons(filter any) {
	n.opts.Configure = options.Configure{Enabled: true, Filter: filter}
	n.widget = true
}

// Widget reports whether the option editor widget is shown.
func (n *Network) Widget() bool { return n.widget }

// SetOptions replaces the options tree's serialized representation with the
// parsed form of a raw, loosely-formatted text blob. See [options.Options.Set].
func (n *Network) SetOptions(text string) error { return n.opts.Set(text) }
