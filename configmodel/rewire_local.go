package configmodel

import (
	"math/rand"

	"github.com/abcdgraph/abcdgen/internal/edgeset"
)

/*
rewireWithin — single-set rewiring loop (spec.md §4.3.3)

Resolves entries in recycle by recombining a popped collision p1 with a
partner p2 drawn either from recycle (probability 2·|recycle|/stubsLen) or
uniformly from edges, recombining their four endpoints one of the two
ways (chosen by a fair coin per draw) and accepting the first candidate
pair that is simple and not already present in edges. Runs until recycle is empty or the bounded-progress
guard gives up; the same routine serves both per-cluster local rewiring
and, applied to the background set, the "analogous" global rewiring step
of §4.3.4.

Returns the number of entries left unresolved.
*/
func rewireWithin(rng *rand.Rand, edges *edgeset.Set, recycle *recycleQueue, stubsLen int) int {
	guard := newProgressGuard(recycle.Len())
	for recycle.Len() > 0 {
		if !guard.Continue(recycle.Len()) {
			break
		}
		p1 := recycle.PopFront()
		if !resolveWithin(rng, p1, edges, recycle, stubsLen) {
			recycle.PushBack(p1)
		}
	}
	return recycle.Len()
}

func resolveWithin(rng *rand.Rand, p1 stubPair, edges *edgeset.Set, recycle *recycleQueue, stubsLen int) bool {
	maxAttempts := stubsLen / 2
	if maxAttempts < 1 {
		maxAttempts = 1
	}
	for attempt := 0; attempt < maxAttempts; attempt++ {
		p2, p2Pos, fromRecycle, ok := drawPartner(rng, edges, recycle, stubsLen)
		if !ok {
			continue
		}
		newp1, newp2 := recombine(rng, p1, p2)
		if !goodPair(newp1, newp2, edges) {
			continue
		}
		if fromRecycle {
			recycle.RemoveAt(p2Pos)
		} else {
			edges.Remove(edgeset.Pair{p2[0], p2[1]})
		}
		edges.Add(edgeset.Pair(newp1))
		edges.Add(edgeset.Pair(newp2))
		return true
	}
	return false
}

// drawPartner picks a candidate p2 from recycle (with probability
// 2·|recycle|/stubsLen) or else uniformly from edges.
func drawPartner(rng *rand.Rand, edges *edgeset.Set, recycle *recycleQueue, stubsLen int) (p2 stubPair, pos int, fromRecycle bool, ok bool) {
	pFromRecycle := 0.0
	if stubsLen > 0 {
		pFromRecycle = 2 * float64(recycle.Len()) / float64(stubsLen)
	}
	if recycle.Len() > 0 && rng.Float64() < pFromRecycle {
		pos = recycle.RandomIndex(rng)
		return recycle.At(pos), pos, true, true
	}
	if edges.Len() == 0 {
		return stubPair{}, 0, false, false
	}
	return stubPair(edges.RandomMember(rng)), 0, false, true
}

// recombine tries one of the two ways to re-pair p1 and p2's four
// endpoints, chosen by a fair coin.
func recombine(rng *rand.Rand, p1, p2 stubPair) (stubPair, stubPair) {
	if rng.Float64() < 0.5 {
		return sortStubPair(p1[0], p2[0]), sortStubPair(p1[1], p2[1])
	}
	return sortStubPair(p1[0], p2[1]), sortStubPair(p1[1], p2[0])
}

// goodPair reports whether newp1/newp2 are both simple, distinct from
// each other, and absent from edges.
func goodPair(newp1, newp2 stubPair, edges *edgeset.Set) bool {
	if newp1[0] == newp1[1] || newp2[0] == newp2[1] {
		return false
	}
	if newp1 == newp2 {
		return false
	}
	if edges.Has(edgeset.Pair(newp1)) || edges.Has(edgeset.Pair(newp2)) {
		return false
	}
	return true
}
