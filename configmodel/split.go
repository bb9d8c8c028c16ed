package configmodel

import (
	"math"
	"math/rand"

	"github.com/abcdgraph/abcdgen/internal/xrand"
)

/*
splitDegrees — parity-correct internal/global degree split (spec.md §4.3.1)

For every vertex i, the raw internal weight is

	wir[i] = w[i] * (1 - xi(i))

where xi(i) is xiLocal[clusters[i]-1] (IsLocal) or xiGlobal (otherwise).
Within each cluster, every vertex but the one with the largest raw weight
is rounded via xrand.RandRound; that vertex's internal weight is then
fixed to floor(wir) or floor(wir)+1, whichever makes the cluster's total
internal weight even. w_global[i] = w[i] - w_internal[i] follows for
every vertex; if the overall degree sum is even (as any realizable
sequence requires) the global pool's total is automatically even too.
*/
func splitDegrees(rng *rand.Rand, w []int32, groups [][]int32, xiOf func(clusterIdx int, vertex int32) float64) (wInternal, wGlobal []int32) {
	n := len(w)
	wInternal = make([]int32, n)

	for c, idx := range groups {
		if len(idx) == 0 {
			continue
		}
		wir := make([]float64, len(idx))
		maxPos := 0
		for pos, v := range idx {
			wir[pos] = float64(w[v]) * (1 - xiOf(c, v))
			if wir[pos] > wir[maxPos] {
				maxPos = pos
			}
		}

		sumOthers := 0
		for pos, v := range idx {
			if pos == maxPos {
				continue
			}
			r := xrand.RandRound(rng, wir[pos])
			wInternal[v] = int32(r)
			sumOthers += r
		}

		base := int(math.Floor(wir[maxPos]))
		if (sumOthers+base)%2 != 0 {
			base++
		}
		wInternal[idx[maxPos]] = int32(base)
	}

	wGlobal = make([]int32, n)
	for i := range w {
		wGlobal[i] = w[i] - wInternal[i]
	}
	return wInternal, wGlobal
}
