// Package network implements the in-memory graph store behind a visnet
// visualization.
//
// A [Network] owns an ordered list of nodes and edges, keyed by identifier,
// plus the [options.Options] tree that configures the front-end visualization
// library. All visualization functionality is built off a Network instance:
//
//	net := network.New(false)
//	net.AddNode(0, network.Attr{Key: "label", Value: "Node 0"})
//	net.AddNode(1, network.Attr{Key: "color", Value: "blue"})
//	net.AddEdge(0, 1)
//
// # Identifiers
//
// Node identifiers are strings or integers and must be unique within a
// Network. Re-adding an existing identifier is a silent no-op: the first
// write wins and later calls never update a stored node's attributes. This
// matches the long-standing behavior the rendered output depends on.
//
// # Directedness
//
// The directed/undirected mode is fixed at construction. In undirected mode
// an edge between A and B is identical to one between B and A, and the store
// keeps at most one representative per unordered pair. In directed mode both
// directions may coexist and each edge carries an arrow marker.
//
// # Attributes
//
// Nodes and edges carry an ordered bag of loosely-typed attributes (strings,
// numbers, booleans). A fixed set of keys is recognized by the front end
// (see [Attrs]); unrecognized keys pass through to the serialized output
// unvalidated.
//
// # Concurrency
//
// A Network assumes single-owner, non-concurrent use. Callers needing
// concurrent access must provide their own synchronization.
package network
