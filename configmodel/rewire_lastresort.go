package configmodel

import (
	"math/rand"

	"github.com/abcdgraph/abcdgen/internal/edgeset"
)

/*
rewireLastResort — cross-cluster last resort (spec.md §4.3.5)

Whatever remains in the recycle queue after local and global rewiring
could not be repaired within its own set. As a last resort, each
remaining pair p1 is recombined with a partner p2 drawn from a randomly
chosen set among clusters 1..k plus the background set, the set chosen
with probability proportional to its current size. A candidate is
accepted only if neither resulting pair is a self-loop or already a
member of ANY of the k+1 sets — the one membership test in this whole
engine that is O(k) instead of O(1).
*/
func rewireLastResort(rng *rand.Rand, allSets []*edgeset.Set, recycle *recycleQueue) int {
	guard := newProgressGuard(recycle.Len())
	for recycle.Len() > 0 {
		if !guard.Continue(recycle.Len()) {
			break
		}
		p1 := recycle.PopFront()
		if !resolveLastResort(rng, p1, allSets) {
			recycle.PushBack(p1)
		}
	}
	return recycle.Len()
}

func resolveLastResort(rng *rand.Rand, p1 stubPair, allSets []*edgeset.Set) bool {
	maxAttempts := lastResortMaxAttempts(allSets)
	for attempt := 0; attempt < maxAttempts; attempt++ {
		setIdx, ok := pickWeightedSet(rng, allSets)
		if !ok {
			return false
		}
		target := allSets[setIdx]
		p2 := stubPair(target.RandomMember(rng))
		newp1, newp2 := recombine(rng, p1, p2)
		if !goodAcrossAll(newp1, newp2, allSets) {
			continue
		}
		target.Remove(edgeset.Pair(p2))
		target.Add(edgeset.Pair(newp1))
		target.Add(edgeset.Pair(newp2))
		return true
	}
	return false
}

// pickWeightedSet draws a set index with probability proportional to its
// current size. Returns ok=false if every set is empty.
func pickWeightedSet(rng *rand.Rand, allSets []*edgeset.Set) (int, bool) {
	total := 0
	for _, s := range allSets {
		total += s.Len()
	}
	if total == 0 {
		return 0, false
	}
	r := rng.Intn(total)
	for i, s := range allSets {
		if r < s.Len() {
			return i, true
		}
		r -= s.Len()
	}
	return len(allSets) - 1, true
}

func goodAcrossAll(newp1, newp2 stubPair, allSets []*edgeset.Set) bool {
	if newp1[0] == newp1[1] || newp2[0] == newp2[1] {
		return false
	}
	if newp1 == newp2 {
		return false
	}
	for _, s := range allSets {
		if s.Has(edgeset.Pair(newp1)) || s.Has(edgeset.Pair(newp2)) {
			return false
		}
	}
	return true
}

// lastResortMaxAttempts bounds the retry budget per recycle entry using
// the combined size of all sets as a proxy for the stub count the local
// and global loops key off of.
func lastResortMaxAttempts(allSets []*edgeset.Set) int {
	total := 0
	for _, s := range allSets {
		total += s.Len()
	}
	attempts := total / 2
	if attempts < 16 {
		attempts = 16
	}
	return attempts
}
