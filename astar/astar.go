// Heuristic-guided (A*) point-to-point search over a street network.
//
// Identical shape and result contract as package dijkstra; the only
// difference is the frontier ordering, f = g + h, where g is the
// best-known cost from start and h estimates the remaining cost to the
// goal. With the default Euclidean estimator the search expands fewer
// nodes on coordinate-faithful networks while returning the same cost.
//
// Notes on implementation choices:
//
//   - Lazy decrease-key with stale-entry discard on pop, as in dijkstra.
//   - Equal f-values break ties by ascending node key for reproducible
//     output.
//   - Breaking on goal pop is safe only because the heuristic is
//     admissible: an inadmissible estimate can settle the goal via a
//     suboptimal path.
package astar

import (
	"container/heap"
	"math"

	"github.com/Powermatix/nawigacja-pag2/streetmap"
)

// AStar computes the minimum-cost path from start to goal in the
// weighted street network g, guided by a heuristic estimate of the
// remaining cost. It accepts functional options (WithHeuristic,
// WithMaxCost) and is call-site interchangeable with dijkstra.Dijkstra.
//
// Returns:
//
//   - path: ordered node keys from start to goal inclusive, or nil when
//     no path exists. start == goal yields the one-element path [start].
//   - cost: total weight of the path, or +Inf when path is nil.
//   - err:  ErrNilGraph for a nil graph; nil otherwise. Unknown start or
//     goal keys are not errors — they return (nil, +Inf, nil).
//
// Preconditions: non-negative edge weights (enforced by
// streetmap.AddEdge) and an admissible heuristic (assumed).
//
// Complexity:
//
//   - Time:  O((V + E) log V) worst case; typically far fewer
//     settlements than Dijkstra on embedded street networks.
//   - Space: O(V + E)
func AStar(g *streetmap.Graph, start, goal string, opts ...Option) ([]string, float64, error) {
	// 1) Build and validate Options.
	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}

	// 2) Validate graph is non-nil.
	if g == nil {
		return nil, math.Inf(1), ErrNilGraph
	}

	// 3) Unknown endpoints short-circuit to the no-path outcome.
	if !g.HasNode(start) || !g.HasNode(goal) {
		return nil, math.Inf(1), nil
	}

	// 4) Allocate per-call working state and run the search loop.
	r := newRunner(g, goal, cfg)
	r.init(start)
	r.run()

	// 5) Reconstruct the path (or report unreachable).
	return r.finish(start, goal)
}

// runner holds the mutable state for a single search execution, owned
// entirely by one AStar call.
type runner struct {
	g       *streetmap.Graph   // The input graph; read-only during the search.
	goal    string             // Settling this key ends the loop.
	options Options            // Configuration (Heuristic, MaxCost).
	cost    map[string]float64 // node ID → current best g-cost from start.
	prev    map[string]string  // node ID → predecessor on the best path.
	settled map[string]bool    // node ID → g-cost finalized, never revisited.
	pq      frontier           // Min-heap over f = g + h, lazy decrease-key.
}

// newRunner allocates all working maps sized to the node count.
func newRunner(g *streetmap.Graph, goal string, cfg Options) *runner {
	v := g.NodeCount()

	return &runner{
		g:       g,
		goal:    goal,
		options: cfg,
		cost:    make(map[string]float64, v),
		prev:    make(map[string]string, v),
		settled: make(map[string]bool, v),
		pq:      make(frontier, 0, v),
	}
}

// estimate applies the configured heuristic from id to the goal.
func (r *runner) estimate(id string) float64 {
	return r.options.Heuristic(r.g, id, r.goal)
}

// init sets every node's g-cost to +Inf, zeroes the start, and seeds the
// heap with (h(start), start) — g is 0, so f at the start is pure h.
func (r *runner) init(start string) {
	for _, id := range r.g.NodeIDs() {
		r.cost[id] = math.Inf(1)
		r.prev[id] = ""
	}
	r.cost[start] = 0

	heap.Init(&r.pq)
	heap.Push(&r.pq, &queueItem{id: start, priority: r.estimate(start)})
}

// run settles nodes in ascending f-order until the goal is settled or
// the frontier empties.
func (r *runner) run() {
	var u string
	for r.pq.Len() > 0 {
		// 1) Pop the entry with the lowest f = g + h.
		item := heap.Pop(&r.pq).(*queueItem)
		u = item.id

		// 2) Discard stale duplicates left by lazy decrease-key.
		if r.settled[u] {
			continue
		}

		// 3) Settle u; with an admissible, consistent heuristic its
		//    g-cost is now final and minimal.
		r.settled[u] = true

		// 4) Goal settled → admissibility guarantees no cheaper path
		//    remains anywhere in the frontier.
		if u == r.goal {
			break
		}

		// 5) Relax all outgoing edges of u.
		r.relax(u)
	}
}

// relax attempts to improve the best-known g-cost of each unsettled
// neighbor of u, re-ranking improved nodes by their new f-value.
func (r *runner) relax(u string) {
	var candidate float64
	for _, nb := range r.g.Neighbors(u) {
		// Settled neighbors are final; nothing can improve them.
		if r.settled[nb.To] {
			continue
		}

		// An edge may name a key outside the node set; such hops are
		// simply not traversable.
		best, known := r.cost[nb.To]
		if !known {
			continue
		}

		candidate = r.cost[u] + nb.Weight

		// The cap applies to the real cost from start, never to h.
		if candidate > r.options.MaxCost {
			continue
		}

		// Strict improvement only: equal-cost rediscoveries push nothing.
		if candidate >= best {
			continue
		}

		r.cost[nb.To] = candidate
		r.prev[nb.To] = u

		// Lazy decrease-key, ranked by f = g + h.
		heap.Push(&r.pq, &queueItem{
			id:       nb.To,
			priority: candidate + r.estimate(nb.To),
		})
	}
}

// finish turns the working state into the public result: the
// reconstructed path and its g-cost, or (nil, +Inf) when the goal was
// never reached.
func (r *runner) finish(start, goal string) ([]string, float64, error) {
	total := r.cost[goal]
	if math.IsInf(total, 1) {
		return nil, total, nil
	}

	return reconstructPath(r.prev, start, goal), total, nil
}

// reconstructPath walks the predecessor chain backward from goal to
// start, then reverses it in place. A broken chain (possible only via an
// internal defect, never through the public API) yields nil.
func reconstructPath(prev map[string]string, start, goal string) []string {
	path := []string{goal}
	for cur := goal; cur != start; {
		cur = prev[cur]
		if cur == "" {
			return nil
		}
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// queueItem represents a node and its frontier priority f = g + h.
type queueItem struct {
	id       string  // node ID
	priority float64 // f = cost from start + heuristic estimate to goal
}

// frontier is a min-heap of *queueItem ordered by ascending f, with ties
// broken by ascending node key so results are reproducible. Old entries
// are never removed on improvement; they are ignored when popped
// (checked via settled).
type frontier []*queueItem

// Len returns the number of items in the heap.
func (f frontier) Len() int { return len(f) }

// Less orders by priority, then by key for deterministic tie-breaking.
func (f frontier) Less(i, j int) bool {
	if f[i].priority != f[j].priority {
		return f[i].priority < f[j].priority
	}

	return f[i].id < f[j].id
}

// Swap swaps two elements in the heap.
func (f frontier) Swap(i, j int) { f[i], f[j] = f[j], f[i] }

// Push adds a new element x onto the heap.
// Called by heap.Push; x must be of type *queueItem.
func (f *frontier) Push(x interface{}) { *f = append(*f, x.(*queueItem)) }

// Pop removes and returns the last element from the heap's backing slice.
// Called by heap.Pop; returns interface{} that must be cast to *queueItem.
func (f *frontier) Pop() interface{} {
	old := *f
	n := len(old)
	item := old[n-1]
	*f = old[:n-1]

	return item
}
