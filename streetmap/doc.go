// Package streetmap provides the weighted street-network graph that the
// dijkstra and astar packages search over.
//
// Overview:
//
//   - A Graph maps node keys to Nodes (planar coordinate + display name)
//     and, per node, keeps the ordered sequence of its outgoing Edges.
//   - Streets are bidirectional by default: one AddEdge call stores two
//     mirrored directed edges sharing weight and name. OneWay stores
//     just the forward direction.
//   - Distance exposes the planar Euclidean distance between two nodes,
//     which doubles as the admissible A* heuristic whenever edge weights
//     are at least the straight-line distance they span (true for
//     realistic street distances; an assumption, not an enforced rule).
//   - NearestNode snaps an arbitrary coordinate onto the closest node
//     via an R-tree, so free-form positions become routable keys.
//
// Contracts worth knowing:
//
//   - AddNode is idempotent per key: the first insertion's coordinates
//     and name win; re-adding returns the original node unchanged.
//   - Neighbors returns an empty slice for unknown keys — traversal code
//     treats "no such node" and "no outgoing streets" identically.
//   - Distance returns 0 when either key is unknown (lenient by design;
//     keeps the heuristic total over all string inputs).
//   - AddEdge fails fast with ErrNegativeWeight: negative weights would
//     invalidate every search result, so they never enter the graph.
//
// Concurrency:
//
//   - Graph carries no locks. Build it fully, then search; searches never
//     mutate the graph, so independent read-only searches may run in
//     parallel over one Graph.
//
// Complexity: AddNode/AddEdge O(1), Neighbors O(deg), Distance O(1),
// NearestNode O(log V) once the index is built.
//
// See also:
//
//   - dijkstra.Dijkstra, astar.AStar — the two search strategies.
//   - route.Describe — turn-by-turn rendering of a found path.
package streetmap
