// Package astar provides a heuristic-guided (A*) point-to-point
// shortest-path search over a streetmap.Graph, call-site interchangeable
// with package dijkstra.
//
// Overview:
//
//   - AStar orders its frontier by f = g + h: g is the exact best-known
//     cost from start (same semantics as Dijkstra's), h estimates the
//     remaining cost to the goal.
//   - The default estimator is Euclidean straight-line distance between
//     node coordinates. It is admissible whenever each edge weighs at
//     least the straight line it spans — realistic for street distances,
//     assumed rather than enforced.
//   - All other mechanics — settled set, strict-improvement relaxation,
//     lazy decrease-key with stale-entry discard, key-order tie-break,
//     predecessor reconstruction, (nil, +Inf, nil) for unknown keys and
//     unreachable goals — match package dijkstra exactly.
//
// When to use:
//
//   - Point-to-point queries on networks whose coordinates reflect
//     actual travel costs: the heuristic steers exploration toward the
//     goal and typically settles far fewer nodes than uniform-cost
//     search, at identical optimal cost.
//
// Guarantees and caveats:
//
//   - With an admissible heuristic, the returned cost always equals
//     Dijkstra's. The returned path may differ when several optimal
//     paths exist.
//   - Early exit on goal settlement is sound only under admissibility;
//     supplying an overestimating Heuristic via WithHeuristic trades
//     that guarantee for speed.
//
// Error handling (sentinel errors):
//
//   - ErrNilGraph:     a nil *streetmap.Graph was passed.
//   - ErrBadMaxCost:   (via panic) WithMaxCost was given a negative cap.
//   - ErrNilHeuristic: (via panic) WithHeuristic was given nil.
//
// Performance and complexity:
//
//   - Time:  O((V + E) log V) worst case, usually much better in practice.
//   - Space: O(V + E)
//
// Thread safety:
//
//   - Each call owns its entire working state, so any number of searches
//     may run concurrently over one fully built, no-longer-mutated graph.
//
// See also:
//
//   - dijkstra.Dijkstra: the uniform-cost twin and validation baseline.
//   - streetmap.Graph.Distance: the default heuristic's underlying metric.
package astar
