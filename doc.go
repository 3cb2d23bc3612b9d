// Package nawigacja is an in-memory street-navigation toolkit: build a
// weighted street network, query optimal routes, and read them back as
// turn-by-turn directions.
//
// 🚀 What is nawigacja?
//
//	A small, focused routing library that brings together:
//		• streetmap/ — nodes with planar coordinates & display names,
//		  ordered weighted adjacency, Euclidean distance, nearest-node snap
//		• dijkstra/  — uniform-cost shortest path with early goal exit
//		• astar/     — heuristic-guided shortest path (f = g + h)
//		• route/     — human-readable turn-by-turn direction rendering
//
// ✨ Why choose nawigacja?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Predictable – documented tie-breaking, total functions for
//     unreachable and unknown locations (no exceptions, no surprises)
//   - Safe to share – a fully built map is read-only during search, so
//     independent queries may run concurrently
//
// Quick ASCII example:
//
//	     Store
//	     /   \
//	  Home   School──Library
//	            \      /
//	             Park
//
//	a handful of intersections, bidirectional streets with distances,
//	and two interchangeable search strategies over them.
//
// Dive into examples/ for full scenarios, and each subpackage's doc.go
// for contracts, complexity and error semantics.
//
//	go get github.com/Powermatix/nawigacja-pag2
package nawigacja
