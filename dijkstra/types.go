// Package dijkstra: option types and sentinel errors for the uniform-cost
// search. The algorithm itself lives in dijkstra.go.
package dijkstra

import (
	"errors"
	"math"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNilGraph indicates that a nil *streetmap.Graph was passed to Dijkstra.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrBadMaxCost indicates WithMaxCost was given a negative cap,
	// which is not meaningful for a cost threshold.
	ErrBadMaxCost = errors.New("dijkstra: MaxCost must be non-negative")
)

// Options configures the behavior of the search.
//
// MaxCost – optional cap on path cost to explore; nodes whose best-known
// cost would exceed it are never settled. Must be ≥ 0. Default is
// +Inf (no cap).
type Options struct {
	MaxCost float64 // Maximum path cost to explore
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// WithMaxCost sets a maximum path-cost threshold. Nodes whose shortest
// cost from start would exceed this value are not explored; a goal
// beyond the cap comes back unreachable.
// Must pass a non-negative value; negative values panic with ErrBadMaxCost.
// Default (if not set) is +Inf (no cap).
func WithMaxCost(max float64) Option {
	return func(o *Options) {
		if max < 0 {
			// Invalid configuration is a caller bug; fail loudly and early.
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
//   - MaxCost: +Inf (no cost limit; explore all reachable nodes).
func DefaultOptions() Options {
	return Options{
		MaxCost: math.Inf(1),
	}
}
