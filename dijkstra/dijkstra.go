// Uniform-cost (Dijkstra) point-to-point search over a street network.
//
// Notes on implementation choices:
//
//   - Unknown start/goal and unreachable goal are ordinary outcomes, not
//     errors: both return (nil, +Inf, nil).
//   - We use a "lazy" decrease-key strategy: pushing duplicates into the
//     heap and discarding stale entries on pop once the node is settled.
//   - Equal priorities break ties by ascending node key, so which of
//     several equal-cost paths is returned is reproducible (the cost
//     itself never depends on the tie-break).
//   - We stop as soon as the goal is settled; every remaining frontier
//     entry already costs at least as much.
package dijkstra

import (
	"container/heap"
	"math"

	"github.com/Powermatix/nawigacja-pag2/streetmap"
)

// Dijkstra computes the minimum-cost path from start to goal in the
// weighted street network g. It accepts functional options to customize
// behavior (WithMaxCost).
//
// Returns:
//
//   - path: ordered node keys from start to goal inclusive, or nil when
//     no path exists. start == goal yields the one-element path [start].
//   - cost: total weight of the path, or +Inf when path is nil.
//   - err:  ErrNilGraph for a nil graph; nil otherwise. Unknown start or
//     goal keys are not errors — they return (nil, +Inf, nil).
//
// Precondition: all edge weights are non-negative. streetmap.AddEdge
// enforces this at insertion, so any graph it built satisfies it.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func Dijkstra(g *streetmap.Graph, start, goal string, opts ...Option) ([]string, float64, error) {
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

// runner holds the mutable state for a single search execution. It is
// owned entirely by one Dijkstra call, so concurrent searches over the
// same graph never share state.
type runner struct {
	g       *streetmap.Graph   // The input graph; read-only during the search.
	goal    string             // Settling this key ends the loop.
	options Options            // Configuration (MaxCost).
	cost    map[string]float64 // node ID → current best cost from start.
	prev    map[string]string  // node ID → predecessor on the best path.
	settled map[string]bool    // node ID → cost finalized, never revisited.
	pq      frontier           // Min-heap with lazy decrease-key.
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

// init sets every node's cost to +Inf, zeroes the start, and seeds the
// heap with (0, start).
func (r *runner) init(start string) {
	for _, id := range r.g.NodeIDs() {
		r.cost[id] = math.Inf(1)
		r.prev[id] = ""
	}
	r.cost[start] = 0

	heap.Init(&r.pq)
	heap.Push(&r.pq, &queueItem{id: start, priority: 0})
}

// run is the label-setting core loop: repeatedly settle the cheapest
// frontier node and relax its outgoing edges.
//
// Termination: the heap empties, the goal is settled, or the cheapest
// remaining entry exceeds MaxCost.
func (r *runner) run() {
	var u string
	for r.pq.Len() > 0 {
		// 1) Pop the lowest-priority entry.
		item := heap.Pop(&r.pq).(*queueItem)
		u = item.id

		// 2) Discard stale duplicates left by lazy decrease-key.
		if r.settled[u] {
			continue
		}

		// 3) Beyond the cost cap nothing cheaper remains in the heap.
		if item.priority > r.options.MaxCost {
			break
		}

		// 4) Settle u; its cost is now final and minimal.
		r.settled[u] = true

		// 5) Goal settled → every other frontier entry costs ≥ cost[goal].
		if u == r.goal {
			break
		}

		// 6) Relax all outgoing edges of u.
		r.relax(u)
	}
}

// relax attempts to improve the best-known cost of each unsettled
// neighbor of u, recording predecessors and pushing updated frontier
// entries. Assumes cost[u] is final.
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

		// Respect the exploration cap.
		if candidate > r.options.MaxCost {
			continue
		}

		// Strict improvement only: equal-cost rediscoveries push nothing.
		if candidate >= best {
			continue
		}

		r.cost[nb.To] = candidate
		r.prev[nb.To] = u

		// Lazy decrease-key: the old entry stays behind and is discarded
		// on pop once nb.To is settled.
		heap.Push(&r.pq, &queueItem{id: nb.To, priority: candidate})
	}
}

// finish turns the working state into the public result: the
// reconstructed path and its cost, or (nil, +Inf) when the goal was
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

// queueItem represents a node and its priority (best-known cost from
// start) in the frontier.
type queueItem struct {
	id       string  // node ID
	priority float64 // cost from start
}

// frontier is a min-heap of *queueItem ordered by ascending priority,
// with ties broken by ascending node key so results are reproducible.
// Old entries are never removed on cost improvement; they are ignored
// when popped (checked via settled).
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
