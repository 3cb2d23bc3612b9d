// Package dijkstra provides a precise point-to-point implementation of
// Dijkstra's shortest-path algorithm over a streetmap.Graph with
// non-negative edge weights.
//
// Overview:
//
//   - Dijkstra computes the minimum-cost path between two node keys in
//     O((V + E) log V) time, where V = |nodes| and E = |edges|.
//   - It relies on a min-heap (priority queue) to always settle the
//     next-closest node, and stops early once the goal is settled.
//   - "No route" and "unknown key" are ordinary, fully-specified return
//     values — (nil, +Inf, nil) — never errors: both are expected
//     outcomes when querying real street networks.
//
// When to use:
//
//   - Whenever you need a guaranteed-optimal route and have no usable
//     coordinate information for a heuristic.
//   - As the ground truth to validate astar against: both always return
//     equal costs, though possibly different equal-cost paths.
//
// Determinism:
//
//   - Equal frontier priorities are broken by ascending node key, so the
//     particular optimal path returned is reproducible run to run.
//
// Error handling (sentinel errors):
//
//   - ErrNilGraph:   a nil *streetmap.Graph was passed.
//   - ErrBadMaxCost: (via panic) WithMaxCost was given a negative cap.
//
// Performance and complexity:
//
//   - Time:  O((V + E) log V) — each node is extracted at most once,
//     each relaxation may push one entry, each heap op is O(log V).
//   - Space: O(V + E) — cost/predecessor/settled maps plus, worst case,
//     one heap entry per relaxation under lazy decrease-key.
//
// Thread safety:
//
//   - Each call owns its entire working state, so any number of searches
//     may run concurrently over one fully built, no-longer-mutated graph.
//
// See also:
//
//   - astar.AStar: the heuristic-guided twin with an identical contract.
//   - route.Describe: turn-by-turn rendering of a returned path.
package dijkstra
