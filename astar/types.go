// Package astar: option types, the Heuristic contract, and sentinel
// errors for the heuristic-guided search. The algorithm itself lives in
// astar.go.
package astar

import (
	"errors"
	"math"

	"github.com/Powermatix/nawigacja-pag2/streetmap"
)

// Sentinel errors returned by the AStar implementation.
var (
	// ErrNilGraph indicates that a nil *streetmap.Graph was passed to AStar.
	ErrNilGraph = errors.New("astar: graph is nil")

	// ErrBadMaxCost indicates WithMaxCost was given a negative cap,
	// which is not meaningful for a cost threshold.
	ErrBadMaxCost = errors.New("astar: MaxCost must be non-negative")

	// ErrNilHeuristic indicates WithHeuristic was given a nil function.
	ErrNilHeuristic = errors.New("astar: heuristic must be non-nil")
)

// Heuristic estimates the remaining cost from node to goal. For the
// search to be guaranteed optimal it must be admissible (never
// overestimate the true remaining cost) and should be consistent; the
// search trusts the estimate and does not verify either property.
type Heuristic func(g *streetmap.Graph, node, goal string) float64

// Euclidean is the default Heuristic: the straight-line distance between
// the two nodes' coordinates. It is admissible whenever every edge
// weight is at least the straight-line distance it spans — true for
// realistic street-distance weights, assumed rather than enforced.
func Euclidean(g *streetmap.Graph, node, goal string) float64 {
	return g.Distance(node, goal)
}

// Options configures the behavior of the search.
//
// Heuristic – remaining-cost estimator ordering the frontier. Default Euclidean.
// MaxCost   – optional cap on the path cost (g-cost, not f) to explore.
//
//	Must be ≥ 0. Default is +Inf (no cap).
type Options struct {
	Heuristic Heuristic // Estimator of remaining cost to the goal
	MaxCost   float64   // Maximum path cost to explore
}

// Option represents a functional option for configuring AStar.
type Option func(*Options)

// WithHeuristic replaces the default Euclidean estimator. The caller
// vouches for admissibility; an inadmissible estimate trades optimality
// for speed.
// Must pass a non-nil function; nil panics with ErrNilHeuristic.
func WithHeuristic(h Heuristic) Option {
	return func(o *Options) {
		if h == nil {
			panic(ErrNilHeuristic.Error())
		}
		o.Heuristic = h
	}
}

// WithMaxCost sets a maximum path-cost threshold, applied to the cost
// from start (g), never to the heuristic estimate. Nodes whose cost
// would exceed it are not explored; a goal beyond the cap comes back
// unreachable.
// Must pass a non-negative value; negative values panic with ErrBadMaxCost.
// Default (if not set) is +Inf (no cap).
func WithMaxCost(max float64) Option {
	return func(o *Options) {
		if max < 0 {
			panic(ErrBadMaxCost.Error())
		}
		o.MaxCost = max
	}
}

// DefaultOptions returns an Options struct initialized with sensible
// defaults. Use this as a starting point for further functional-options
// overrides.
//
// Defaults:
//   - Heuristic: Euclidean (planar straight-line distance to the goal).
//   - MaxCost:   +Inf (no cost limit; explore all reachable nodes).
func DefaultOptions() Options {
	return Options{
		Heuristic: Euclidean,
		MaxCost:   math.Inf(1),
	}
}
