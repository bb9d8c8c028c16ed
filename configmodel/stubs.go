package configmodel

import (
	"math/rand"

	"github.com/abcdgraph/abcdgen/internal/edgeset"
	"github.com/abcdgraph/abcdgen/internal/xrand"
)

// pairStubs builds a stub array for vertices (each v repeated weight(v)
// times), shuffles it, and pairs consecutive entries left to right. Self-
// loops and duplicates of an already-accepted pair are routed to the
// returned recycle queue instead of edges, per spec.md §4.3.2.
//
// Returns the accepted edge set, the recycle queue, and the stub count
// (needed by the rewiring loop's from-recycle probability).
func pairStubs(rng *rand.Rand, vertices []int32, weight func(v int32) int32) (*edgeset.Set, *recycleQueue, int) {
	total := 0
	for _, v := range vertices {
		total += int(weight(v))
	}
	stubs := make([]int32, 0, total)
	for _, v := range vertices {
		for j := int32(0); j < weight(v); j++ {
			stubs = append(stubs, v)
		}
	}
	xrand.ShuffleInts(rng, stubs)

	m := len(stubs) / 2
	edges := edgeset.New(m)
	recycle := newRecycleQueue(m/4 + 1)
	for i := 0; i+1 < len(stubs); i += 2 {
		a, b := stubs[i], stubs[i+1]
		if a == b {
			recycle.PushBack(stubPair{a, b})
			continue
		}
		p := edgeset.NewPair(a, b)
		if edges.Has(p) {
			recycle.PushBack(sortStubPair(a, b))
			continue
		}
		edges.Add(p)
	}
	return edges, recycle, len(stubs)
}
