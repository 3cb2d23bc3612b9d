package streetmap

import (
	"fmt"
	"sort"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// AddNode inserts a node with the given key, planar coordinates, and
// display name, and returns it. If the key already exists, the existing
// node is returned unchanged: the first insertion's coordinates and name
// win. An empty name defaults to the key itself.
// Complexity: O(1).
func (g *Graph) AddNode(id string, x, y float64, name string) Node {
	if n, ok := g.nodes[id]; ok {
		return n
	}
	if name == "" {
		name = id
	}
	n := Node{ID: id, Coord: orb.Point{x, y}, Name: name}
	g.nodes[id] = n
	g.index = nil // new node invalidates the spatial index

	return n
}

// AddEdge appends a street from→to with the given non-negative weight.
// By default the street is bidirectional: a mirrored to→from edge with
// the same weight and name is appended as well (see OneWay).
//
// Missing endpoints are auto-created as bare nodes at (0, 0) with the
// key as name — a documented convenience for quickly sketching networks.
// Under RequireNodes, a missing endpoint fails with ErrNodeNotFound
// instead.
//
// A negative weight fails fast with ErrNegativeWeight: it would silently
// corrupt every subsequent search, so it is rejected here rather than
// tolerated.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string, weight float64, opts ...EdgeOption) error {
	// 1) Apply per-edge options over the bidirectional default.
	cfg := edgeConfig{bidirectional: true}
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Reject negative weights before touching any state.
	if weight < 0 {
		return fmt.Errorf("%w: %s→%s weight=%g", ErrNegativeWeight, from, to, weight)
	}

	// 3) Resolve endpoints according to the validation mode.
	if g.requireNodes {
		if _, ok := g.nodes[from]; !ok {
			return fmt.Errorf("%w: %q", ErrNodeNotFound, from)
		}
		if _, ok := g.nodes[to]; !ok {
			return fmt.Errorf("%w: %q", ErrNodeNotFound, to)
		}
	} else {
		g.AddNode(from, 0, 0, "")
		g.AddNode(to, 0, 0, "")
	}

	// 4) Append the forward edge, and the mirror if bidirectional.
	g.adjacency[from] = append(g.adjacency[from], Edge{From: from, To: to, Weight: weight, Name: cfg.name})
	g.edgeCount++
	if cfg.bidirectional {
		g.adjacency[to] = append(g.adjacency[to], Edge{From: to, To: from, Weight: weight, Name: cfg.name})
		g.edgeCount++
	}

	return nil
}

// Neighbors returns the outgoing hops of id in edge-insertion order, or
// an empty slice if id is unknown. Callers deliberately cannot tell "no
// outgoing streets" apart from "no such node": both traverse to nothing.
// Complexity: O(deg(id)).
func (g *Graph) Neighbors(id string) []Neighbor {
	edges := g.adjacency[id]
	if len(edges) == 0 {
		return nil
	}
	out := make([]Neighbor, len(edges))
	for i, e := range edges {
		out[i] = Neighbor{To: e.To, Weight: e.Weight}
	}

	return out
}

// Node returns the node stored under id and whether it exists.
// Complexity: O(1).
func (g *Graph) Node(id string) (Node, bool) {
	n, ok := g.nodes[id]

	return n, ok
}

// HasNode reports whether id is present in the node set.
// Complexity: O(1).
func (g *Graph) HasNode(id string) bool {
	_, ok := g.nodes[id]

	return ok
}

// EdgeBetween returns the first-inserted edge from→to and whether one
// exists. The route package relies on this to annotate each hop of a
// path with the traversed street's name and weight.
// Complexity: O(deg(from)).
func (g *Graph) EdgeBetween(from, to string) (Edge, bool) {
	for _, e := range g.adjacency[from] {
		if e.To == to {
			return e, true
		}
	}

	return Edge{}, false
}

// NodeIDs returns all node keys in ascending order.
// Complexity: O(V log V).
func (g *Graph) NodeIDs() []string {
	ids := make([]string, 0, len(g.nodes))
	for id := range g.nodes {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// NodeCount returns the number of nodes.
// Complexity: O(1).
func (g *Graph) NodeCount() int { return len(g.nodes) }

// EdgeCount returns the number of stored directed edges; a bidirectional
// street counts twice.
// Complexity: O(1).
func (g *Graph) EdgeCount() int { return g.edgeCount }

// Distance returns the planar Euclidean distance between the two nodes'
// coordinates, or 0 if either key is unknown. The lenient zero return
// keeps the A* heuristic finite for any input; it also means a typo'd
// key degrades the heuristic silently rather than failing the search.
// Complexity: O(1).
func (g *Graph) Distance(a, b string) float64 {
	na, okA := g.nodes[a]
	nb, okB := g.nodes[b]
	if !okA || !okB {
		return 0
	}

	return planar.Distance(na.Coord, nb.Coord)
}
