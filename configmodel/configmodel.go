package configmodel

import (
	"errors"
	"fmt"

	"github.com/abcdgraph/abcdgen/internal/edgeset"
	"github.com/abcdgraph/abcdgen/internal/mixing"
	"github.com/abcdgraph/abcdgen/internal/workerpool"
	"github.com/abcdgraph/abcdgen/internal/xrand"
	"github.com/abcdgraph/abcdgen/params"
)

// Stats reports the non-fatal collision counts spec.md §7 requires the
// caller be able to surface: the engine never fails outright on a
// collision it cannot repair, it just shrinks the graph by a small,
// reported amount.
type Stats struct {
	GlobalCollisions int // duplicates/self-loops found by the background pool's initial §4.3.2 stub pairing, before any rewiring
	LocalUnresolved  int // leftover after each set's own §4.3.3 rewiring; passed on to the global rewiring
	GlobalUnresolved int // leftover after §4.3.4 cross-cluster-vs-background rewiring
	FinalUnresolved  int // leftover after §4.3.5 last resort; these pairs are dropped
}

type poolResult struct {
	edges               *edgeset.Set
	recycle             *recycleQueue
	stubsLen            int
	preRewireRecycleLen int
}

/*
Generate — configuration-model engine

Steps (spec.md §4.3):
 1. Split each vertex's degree into internal/global parts with
    parity-correct randomized rounding (splitDegrees, §4.3.1).
 2. In parallel, one pool per cluster plus the background pool (id 0):
    build and pair stubs (§4.3.2), then rewire self-loops and in-pool
    duplicates (§4.3.3).
 3. Reconcile the background pool against every cluster pool, rewiring
    cross-pool duplicates into the background set alone (§4.3.4).
 4. Resolve whatever still collides by drawing partners from any pool,
    weighted by pool size (§4.3.5).

Returns the union of every pool's final edge set and the unresolved
collision counts at each stage.
*/
func Generate(baseSeed int64, p *params.Params, clusters []int32) (*edgeset.Set, *Stats, error) {
	w := p.W()
	k := p.K()
	groups := mixing.GroupByCluster(clusters, k)
	clusterWeight, total := mixing.Weights(w, groups)

	xiLocal, xiGlobal, err := mixing.Xi(p, clusterWeight, total)
	if err != nil {
		if errors.Is(err, mixing.ErrMuTooLarge) {
			return nil, nil, fmt.Errorf("configmodel: %w: %w", err, ErrMuTooLarge)
		}
		return nil, nil, err
	}

	xiOf := func(c int, _ int32) float64 {
		if xiLocal != nil {
			return xiLocal[c]
		}
		return xiGlobal
	}
	wInternal, wGlobal := splitDegrees(xrand.New(baseSeed), w, groups, xiOf)

	ids := make([]int32, k+1)
	for i := range ids {
		ids[i] = int32(i) // 0 == background, 1..k == clusters
	}

	results, err := workerpool.Run(ids, 0, func(id int32) (poolResult, error) {
		rng := xrand.DeriveRNG(baseSeed, uint64(id)+1)
		var vertices []int32
		var weight func(v int32) int32
		if id == 0 {
			vertices = make([]int32, len(w))
			for i := range vertices {
				vertices[i] = int32(i)
			}
			weight = func(v int32) int32 { return wGlobal[v] }
		} else {
			vertices = groups[id-1]
			weight = func(v int32) int32 { return wInternal[v] }
		}
		edges, recycle, stubsLen := pairStubs(rng, vertices, weight)
		preRewireLen := recycle.Len()
		rewireWithin(rng, edges, recycle, stubsLen)
		return poolResult{edges: edges, recycle: recycle, stubsLen: stubsLen, preRewireRecycleLen: preRewireLen}, nil
	})
	if err != nil {
		return nil, nil, err
	}

	byID := make([]poolResult, k+1)
	for _, r := range results {
		byID[r.ID] = r.Value
	}
	e0 := byID[0].edges
	clusterSets := make([]*edgeset.Set, k)
	stats := &Stats{GlobalCollisions: byID[0].preRewireRecycleLen}
	for c := 0; c < k; c++ {
		clusterSets[c] = byID[c+1].edges
		stats.LocalUnresolved += byID[c+1].recycle.Len()
	}
	stats.LocalUnresolved += byID[0].recycle.Len()

	globalRecycle := reconcileGlobal(clusterSets, e0)
	for id := 0; id <= k; id++ {
		residue := byID[id].recycle
		for i := 0; i < residue.Len(); i++ {
			globalRecycle.PushBack(residue.At(i))
		}
	}
	stats.GlobalUnresolved = rewireGlobal(xrand.DeriveRNG(baseSeed, uint64(k)+100), e0, globalRecycle, byID[0].stubsLen)

	allSets := append(append([]*edgeset.Set{}, clusterSets...), e0)
	stats.FinalUnresolved = rewireLastResort(xrand.DeriveRNG(baseSeed, uint64(k)+101), allSets, globalRecycle)

	union := edgeset.New(int(total / 2))
	for _, s := range clusterSets {
		union.Union(s)
	}
	union.Union(e0)

	return union, stats, nil
}
