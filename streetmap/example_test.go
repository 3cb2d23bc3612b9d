// Package streetmap_test provides runnable examples for building and
// querying a street network.
package streetmap_test

import (
	"fmt"

	"github.com/Powermatix/nawigacja-pag2/streetmap"
)

// ExampleGraph_Neighbors demonstrates building a tiny network and
// listing the outgoing streets of one intersection in insertion order.
func ExampleGraph_Neighbors() {
	// 1) Create an empty street network.
	g := streetmap.New()

	// 2) Add two named intersections with planar coordinates.
	g.AddNode("Home", 0, 0, "Home")
	g.AddNode("Store", 1, 2, "Store")

	// 3) Connect them with a bidirectional street of length 2.0.
	_ = g.AddEdge("Home", "Store", 2.0, streetmap.WithStreetName("Oak Avenue"))

	// 4) Both directions are visible through Neighbors.
	for _, nb := range g.Neighbors("Home") {
		fmt.Printf("Home → %s (%.1f)\n", nb.To, nb.Weight)
	}
	for _, nb := range g.Neighbors("Store") {
		fmt.Printf("Store → %s (%.1f)\n", nb.To, nb.Weight)
	}
	// Output:
	// Home → Store (2.0)
	// Store → Home (2.0)
}

// ExampleGraph_NearestNode demonstrates snapping a free-form coordinate
// — say, a GPS fix — onto the closest routable intersection.
func ExampleGraph_NearestNode() {
	g := streetmap.New()
	g.AddNode("Home", 0, 0, "Home")
	g.AddNode("School", 2, 1, "School")
	g.AddNode("Park", 3, 3, "Park")

	// A position near (2.2, 1.1) snaps to School.
	n, _ := g.NearestNode(2.2, 1.1)
	fmt.Println(n.Name)
	// Output: School
}
