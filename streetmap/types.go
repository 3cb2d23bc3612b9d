// Package streetmap defines the Node, Edge, and Graph types for street
// networks, plus construction options and sentinel errors.
//
// This file declares the data model, GraphOption, EdgeOption, and the
// New constructor. Query and mutation methods live in streetmap.go;
// the spatial nearest-node index lives in spatial.go.
package streetmap

import (
	"errors"

	"github.com/paulmach/orb"
)

// Sentinel errors for streetmap operations.
var (
	// ErrNegativeWeight indicates an edge with a negative weight was added.
	// Negative weights break the correctness of both search algorithms, so
	// AddEdge rejects them at insertion time.
	ErrNegativeWeight = errors.New("streetmap: negative edge weight")

	// ErrNodeNotFound indicates an edge referenced a missing endpoint while
	// the graph was built with RequireNodes.
	ErrNodeNotFound = errors.New("streetmap: node not found")
)

// Node represents an intersection or named location in the street network.
//
// ID uniquely identifies the node within its Graph; equality is by ID,
// never by coordinate or name. Coord is used only as heuristic input for
// the A* search. Nodes are immutable after creation: Graph methods hand
// out copies, and re-adding an existing ID keeps the first insertion.
type Node struct {
	// ID is the unique key for this node.
	ID string

	// Coord is the planar (x, y) position of the node.
	Coord orb.Point

	// Name is the human-readable display name (defaults to ID).
	Name string
}

// Edge represents one directed street segment between two node keys.
//
// A bidirectional street is stored as two mirrored Edges with identical
// Weight and Name.
type Edge struct {
	// From is the source node ID.
	From string

	// To is the destination node ID.
	To string

	// Weight is the non-negative traversal cost (distance, time, ...).
	Weight float64

	// Name is the optional street name, used when rendering directions.
	Name string
}

// Neighbor is one outgoing hop from a node: the destination key and the
// weight of the edge reaching it.
type Neighbor struct {
	To     string
	Weight float64
}

// GraphOption configures behavior of a Graph at construction time.
type GraphOption func(g *Graph)

// RequireNodes makes AddEdge fail with ErrNodeNotFound when either
// endpoint has not been added yet, instead of silently creating bare
// nodes at (0, 0). Use it when endpoint typos must surface early.
func RequireNodes() GraphOption {
	return func(g *Graph) { g.requireNodes = true }
}

// edgeConfig collects per-edge settings applied by EdgeOptions.
type edgeConfig struct {
	name          string // street name carried by both directions
	bidirectional bool   // append the mirrored reverse edge as well
}

// EdgeOption configures properties of an individual street when added.
type EdgeOption func(*edgeConfig)

// WithStreetName attaches a display name to the street (both directions
// of a bidirectional street share it).
func WithStreetName(name string) EdgeOption {
	return func(c *edgeConfig) { c.name = name }
}

// OneWay marks the street as directed: only the from→to edge is stored.
// By default streets are bidirectional.
func OneWay() EdgeOption {
	return func(c *edgeConfig) { c.bidirectional = false }
}

// Graph is the in-memory street network: a node set plus, per node, the
// ordered sequence of its outgoing edges (insertion order is preserved
// and observable through Neighbors).
//
// Graph is not synchronized. Build it fully, then search; a built Graph
// is read-only during search, so independent searches may read it
// concurrently (see NearestNode for the one lazy-build caveat).
type Graph struct {
	requireNodes bool // AddEdge endpoint validation mode

	nodes     map[string]Node   // node ID → node
	adjacency map[string][]Edge // node ID → outgoing edges, insertion order
	edgeCount int               // total directed edges stored

	index *spatialIndex // lazy R-tree over nodes; nil until first NearestNode
}

// New creates an empty street network graph.
// By default AddEdge auto-creates missing endpoints; see RequireNodes.
// Complexity: O(1).
func New(opts ...GraphOption) *Graph {
	g := &Graph{
		nodes:     make(map[string]Node),
		adjacency: make(map[string][]Edge),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
