package cluster

import (
	"math/rand"

	"github.com/abcdgraph/abcdgen/internal/xrand"
	"github.com/abcdgraph/abcdgen/params"
)

/*
Assign — greedy largest-degree-first cluster assignment

Description:

	Processes vertices from heaviest to lightest, sliding an admissible-
	cluster frontier outward so that only communities large enough to
	absorb a vertex's intra-cluster edges are candidates, then samples a
	cluster among the admissible set weighted by remaining capacity.

Steps (spec.md §4.1):
 1. Compute the scaling factor mul from μ or ξ.
 2. slots <- copy(s); j <- 0.
 3. For each vertex i in descending degree order:
    a. While j < k and mul·w[i]+1 <= s[j+1], increment j.
    b. If j == 0, fail ErrInfeasibleCluster.
    c. Sample loc uniformly by weight from slots[1..j]; fail
    ErrNoSlot if the weight sum is zero.
    d. Append loc to clusters; decrement slots[loc].

Returns clusters[i] in 1..k, indexed by vertex position in p.W() (which
is sorted descending; callers that need clusters indexed by an original,
unsorted vertex identity must track that mapping themselves — spec.md's
Params sorts w/s at construction time and vertex identity beyond index
order is explicitly not preserved, per its Non-goals).

Complexity: O(n·k) worst case (a fresh weighted sampler per vertex over
an admissible prefix of size up to k); O(n+k) for the frontier scan.
*/
func Assign(rng *rand.Rand, p *params.Params) ([]int32, error) {
	w := p.W()
	s := p.S()
	n, k := len(w), len(s)

	mul := scalingFactor(p)

	slots := make([]float64, k)
	for c, v := range s {
		slots[c] = float64(v)
	}

	clusters := make([]int32, n)
	j := 0
	for i := 0; i < n; i++ {
		for j < k && mul*float64(w[i])+1 <= float64(s[j]) {
			j++
		}
		if j == 0 {
			return nil, ErrInfeasibleCluster
		}

		sampler, ok := xrand.NewWeightedSampler(slots[:j])
		if !ok {
			return nil, ErrNoSlot
		}
		loc := sampler.Sample(rng)
		slots[loc]--
		clusters[i] = int32(loc + 1)
	}

	return clusters, nil
}

// scalingFactor computes mul per spec.md §4.1: 1-μ when μ is set, or
// 1-ξ·φ (φ = 1 - Σ(s[c]/n)²) when ξ is set.
func scalingFactor(p *params.Params) float64 {
	if mu, ok := p.Mu(); ok {
		return 1 - mu
	}
	xi, _ := p.Xi()
	n := float64(p.N())
	var sumSq float64
	for _, c := range p.S() {
		frac := float64(c) / n
		sumSq += frac * frac
	}
	phi := 1 - sumSq
	return 1 - xi*phi
}
