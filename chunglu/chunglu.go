package chunglu

import (
	"errors"
	"fmt"
	"math"
	"math/rand"

	"github.com/abcdgraph/abcdgen/internal/edgeset"
	"github.com/abcdgraph/abcdgen/internal/mixing"
	"github.com/abcdgraph/abcdgen/internal/workerpool"
	"github.com/abcdgraph/abcdgen/internal/xrand"
	"github.com/abcdgraph/abcdgen/params"
)

/*
Generate — Chung–Lu engine

Description:

	Lays down edges by independent weighted sampling: a per-cluster phase
	fills each community's intra-cluster edges in parallel, then a
	sequential background phase fills inter-cluster edges over all
	vertices.

Steps (spec.md §4.2):
 1. Compute cluster_weight, total, and ξ_local/ξ_global via internal/mixing.
 2. Per cluster (in parallel): target m = randround((1−ξ_c)·Σw_c/2);
    repeatedly draw weighted pairs from the cluster until |E_c| ≥ m.
 3. Union all E_c into a global set E.
 4. Background phase (sequential): weight each vertex by ξ·w[i] (local
    or global), repeatedly draw weighted pairs over all vertices until
    2·|E| ≥ Σw.

Complexity: O((n+m) log n) expected, where m is the total target edge
count, dominated by the weighted-sampler binary search per draw.
*/
func Generate(baseSeed int64, p *params.Params, clusters []int32) (*edgeset.Set, error) {
	w := p.W()
	k := p.K()
	groups := mixing.GroupByCluster(clusters, k)
	clusterWeight, total := mixing.Weights(w, groups)

	xiLocal, xiGlobal, err := mixing.Xi(p, clusterWeight, total)
	if err != nil {
		if errors.Is(err, mixing.ErrMuTooLarge) {
			return nil, fmt.Errorf("chunglu: %w: %w", err, ErrMuTooLarge)
		}
		return nil, err
	}

	ids := make([]int32, k)
	for c := range ids {
		ids[c] = int32(c + 1)
	}

	results, err := workerpool.Run(ids, 0, func(id int32) (*edgeset.Set, error) {
		c := int(id - 1)
		xiC := xiGlobal
		if xiLocal != nil {
			xiC = xiLocal[c]
		}
		rng := xrand.DeriveRNG(baseSeed, uint64(id))
		return fillCluster(rng, w, groups[c], xiC), nil
	})
	if err != nil {
		return nil, err
	}

	global := edgeset.New(int(total / 2))
	for _, r := range results {
		global.Union(r.Value)
	}

	fillBackground(xrand.DeriveRNG(baseSeed, 0), w, clusters, xiLocal, xiGlobal, total, global)

	return global, nil
}

// fillCluster repeatedly draws independent weighted pairs from idx
// (weighted by w) until the local edge set reaches its target size m.
func fillCluster(rng *rand.Rand, w []int32, idx []int32, xiC float64) *edgeset.Set {
	var sumW float64
	weights := make([]float64, len(idx))
	for pos, i := range idx {
		weights[pos] = float64(w[i])
		sumW += weights[pos]
	}
	m := xrand.RandRound(rng, (1-xiC)*sumW/2)

	set := edgeset.New(m)
	if m == 0 || len(idx) < 2 {
		return set
	}
	sampler, ok := xrand.NewWeightedSampler(weights)
	if !ok {
		return set
	}

	for attempt := 0; set.Len() < m && attempt < maxFillAttempts; attempt++ {
		need := m - set.Len()
		left := sampler.SampleBatch(rng, need)
		right := sampler.SampleBatch(rng, need)
		for i := 0; i < need; i++ {
			a, b := idx[left[i]], idx[right[i]]
			if a == b {
				continue
			}
			set.Add(edgeset.NewPair(a, b))
		}
	}
	return set
}

// fillBackground fills inter-cluster edges over all vertices, weighted
// by ξ·w[i] (local or global), until 2·|E| ≥ total.
func fillBackground(rng *rand.Rand, w []int32, clusters []int32, xiLocal []float64, xiGlobal, total float64, global *edgeset.Set) {
	n := len(w)
	weights := make([]float64, n)
	for i := 0; i < n; i++ {
		xi := xiGlobal
		if xiLocal != nil {
			xi = xiLocal[clusters[i]-1]
		}
		weights[i] = xi * float64(w[i])
	}
	sampler, ok := xrand.NewWeightedSampler(weights)
	if !ok {
		return
	}

	target := int(math.Round(total / 2))
	for attempt := 0; global.Len() < target && attempt < maxFillAttempts; attempt++ {
		need := target - global.Len()
		if need <= 0 {
			break
		}
		left := sampler.SampleBatch(rng, need)
		right := sampler.SampleBatch(rng, need)
		for i := 0; i < need; i++ {
			a, b := int32(left[i]), int32(right[i])
			if a == b {
				continue
			}
			global.Add(edgeset.NewPair(a, b))
		}
	}
}
