// Package cluster implements spec.md §4.1: greedy largest-degree-first
// assignment of vertices to communities, weighted by remaining capacity.
package cluster

import "errors"

var (
	// ErrInfeasibleCluster is returned when no community is large enough
	// to absorb a given vertex's intra-cluster degree requirement.
	ErrInfeasibleCluster = errors.New("cluster: no community large enough for vertex degree")

	// ErrNoSlot is returned when the admissible communities' remaining
	// capacity sums to zero.
	ErrNoSlot = errors.New("cluster: no empty slot among admissible communities")
)
