// Package route renders a found path as human-readable turn-by-turn
// directions.
//
// Overview:
//
//   - Describe consumes the ordered node keys returned by
//     dijkstra.Dijkstra or astar.AStar together with the graph they were
//     searched on, and produces one direction line per step.
//   - A nil or empty path renders the single line "No route found"; a
//     one-node path renders "You are already at <name>". Otherwise the
//     output is a "Start at" line, one "Go to ... via ..." line per hop,
//     and a closing "Arrive at" line.
//   - Unknown node keys render with the name "unknown"; hops without a
//     stored edge fall back to a bare "Go to" line, and unnamed streets
//     read "via the street".
//
// The rendering is a pure function of its inputs; it never mutates the
// graph and holds no state.
package route

import (
	"fmt"

	"github.com/Powermatix/nawigacja-pag2/streetmap"
)

// Phrases shared by every rendered route.
const (
	noRouteLine   = "No route found"
	unknownName   = "unknown"
	unnamedStreet = "the street"
)

// Describe converts a path — an ordered sequence of node keys — into a
// list of direction strings, one per step, using g for display names and
// street annotations.
// Complexity: O(Σ deg(path[i])) for the per-hop edge lookups.
func Describe(g *streetmap.Graph, path []string) []string {
	// 1) No path at all: a single "no route" message.
	if g == nil || len(path) == 0 {
		return []string{noRouteLine}
	}

	// 2) Degenerate single-node path: the caller is already there.
	if len(path) == 1 {
		return []string{fmt.Sprintf("You are already at %s", nodeName(g, path[0]))}
	}

	// 3) One opening line, one line per traversed street, one closing line.
	directions := make([]string, 0, len(path)+1)
	directions = append(directions, fmt.Sprintf("Start at %s", nodeName(g, path[0])))

	for i := 0; i < len(path)-1; i++ {
		next := nodeName(g, path[i+1])
		edge, ok := g.EdgeBetween(path[i], path[i+1])
		if !ok {
			// Adjacent path keys with no stored edge: still describe the hop.
			directions = append(directions, fmt.Sprintf("Go to %s", next))
			continue
		}
		street := edge.Name
		if street == "" {
			street = unnamedStreet
		}
		directions = append(directions, fmt.Sprintf("Go to %s via %s (%.1f units)", next, street, edge.Weight))
	}

	directions = append(directions, fmt.Sprintf("Arrive at %s", nodeName(g, path[len(path)-1])))

	return directions
}

// nodeName resolves a key to its display name, or "unknown" when the key
// is absent from the graph.
func nodeName(g *streetmap.Graph, id string) string {
	if n, ok := g.Node(id); ok {
		return n.Name
	}

	return unknownName
}
