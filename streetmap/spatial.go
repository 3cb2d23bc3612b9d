package streetmap

import (
	"github.com/dhconnelly/rtreego"
)

// nearestTol is the side length of the degenerate rectangle each node
// occupies in the R-tree; rtreego rejects zero-extent rectangles.
const nearestTol = 1e-9

// nodeEntry wraps a node key for R-tree storage.
type nodeEntry struct {
	id   string
	rect rtreego.Rect
}

// Bounds implements rtreego.Spatial.
func (e *nodeEntry) Bounds() rtreego.Rect { return e.rect }

// spatialIndex holds the R-tree over all node coordinates.
type spatialIndex struct {
	tree *rtreego.Rtree
}

// buildSpatialIndex indexes every node currently in the graph.
// Complexity: O(V log V).
func buildSpatialIndex(g *Graph) *spatialIndex {
	tree := rtreego.NewTree(2, 2, 8)
	for id, n := range g.nodes {
		p := rtreego.Point{n.Coord.X(), n.Coord.Y()}
		tree.Insert(&nodeEntry{id: id, rect: p.ToRect(nearestTol)})
	}

	return &spatialIndex{tree: tree}
}

// NearestNode snaps an arbitrary planar coordinate to the closest node
// of the network and reports whether one exists (false only for an empty
// graph). Useful for mapping a free-form position — a tap on a map, a
// GPS fix — onto a routable start or goal key.
//
// The R-tree index is built lazily on the first call and reused until
// the next AddNode. Call NearestNode (or add all nodes) once before
// sharing the graph across goroutines, so concurrent callers see a
// fully built index.
// Complexity: O(V log V) on first call after a mutation, O(log V) after.
func (g *Graph) NearestNode(x, y float64) (Node, bool) {
	if len(g.nodes) == 0 {
		return Node{}, false
	}
	if g.index == nil {
		g.index = buildSpatialIndex(g)
	}

	hit := g.index.tree.NearestNeighbor(rtreego.Point{x, y})
	if hit == nil {
		return Node{}, false
	}

	return g.nodes[hit.(*nodeEntry).id], true
}
