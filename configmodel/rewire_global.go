package configmodel

import (
	"math/rand"

	"github.com/abcdgraph/abcdgen/internal/edgeset"
)

/*
reconcileGlobal — cross-set conflict extraction (spec.md §4.3.4)

A pair accepted into a cluster's own edge set may coincide with a pair
already accepted into the background set e0 (the two were built
independently by separate stub-pairing runs). For every cluster set,
any member also present in e0 is removed from e0 and queued for global
rewiring; the cluster's own copy is left untouched; it is still a valid
intra-cluster edge, only a now-ambiguous inter-cluster duplicate.
*/
func reconcileGlobal(clusterSets []*edgeset.Set, e0 *edgeset.Set) *recycleQueue {
	recycle := newRecycleQueue(0)
	for _, ec := range clusterSets {
		for _, p := range ec.Members() {
			if e0.Remove(p) {
				recycle.PushBack(stubPair(p))
			}
		}
	}
	return recycle
}

// rewireGlobal resolves the cross-set recycle queue against e0 alone,
// analogous to §4.3.3's local loop (see rewireWithin). stubsLen is the
// background pool's original stub count, the denominator for the
// from-recycle draw probability.
func rewireGlobal(rng *rand.Rand, e0 *edgeset.Set, recycle *recycleQueue, stubsLen int) int {
	return rewireWithin(rng, e0, recycle, stubsLen)
}
