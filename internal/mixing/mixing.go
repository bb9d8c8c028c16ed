package mixing

import (
	"fmt"

	"github.com/abcdgraph/abcdgen/params"
)

// GroupByCluster returns, for each cluster id 1..k, the list of vertex
// indices (0-based, into Params.W()) assigned to that cluster.
// clusters[i] must be in 1..k for every i.
//
// Complexity: O(n).
func GroupByCluster(clusters []int32, k int) [][]int32 {
	groups := make([][]int32, k)
	counts := make([]int32, k)
	for _, c := range clusters {
		counts[c-1]++
	}
	for c := range groups {
		groups[c] = make([]int32, 0, counts[c])
	}
	for i, c := range clusters {
		groups[c-1] = append(groups[c-1], int32(i))
	}
	return groups
}

// Weights computes, for each cluster, the sum of vertex degrees assigned
// to it (cluster_weight[c]) and the grand total (Σw), per spec.md §4.2.
//
// Complexity: O(n).
func Weights(w []int32, groups [][]int32) (clusterWeight []float64, total float64) {
	clusterWeight = make([]float64, len(groups))
	for c, idx := range groups {
		var sum float64
		for _, i := range idx {
			sum += float64(w[i])
		}
		clusterWeight[c] = sum
	}
	for _, v := range w {
		total += float64(v)
	}
	return clusterWeight, total
}

// Xi derives ξ_local (per cluster) or ξ_global from Params and the
// per-cluster weight sums, exactly as spec.md §4.2 describes:
//
//   - IsLocal:           ξ_local[c] = μ / (1 − cluster_weight[c]/total)
//     fails ErrMuTooLarge if max ξ_local >= 1.
//   - !IsLocal, ξ unset: ξ_global = μ / (1 − Σ_c (cluster_weight[c]/total)²)
//     fails ErrMuTooLarge if ξ_global >= 1.
//   - !IsLocal, ξ set:   ξ_global = ξ, taken verbatim.
//
// Exactly one of the returned slices/values is meaningful: when IsLocal,
// xiLocal has one entry per cluster and xiGlobal is zero; otherwise
// xiLocal is nil and xiGlobal is the scalar to use for every cluster and
// the background pool.
func Xi(p *params.Params, clusterWeight []float64, total float64) (xiLocal []float64, xiGlobal float64, err error) {
	if p.IsLocal() {
		mu, _ := p.Mu()
		xiLocal = make([]float64, len(clusterWeight))
		maxXi := 0.0
		for c, cw := range clusterWeight {
			xiLocal[c] = mu / (1 - cw/total)
			if xiLocal[c] > maxXi {
				maxXi = xiLocal[c]
			}
		}
		if maxXi >= 1 {
			return nil, 0, fmt.Errorf("mixing: max xi_local=%g >= 1: %w", maxXi, ErrMuTooLarge)
		}
		return xiLocal, 0, nil
	}

	if xi, ok := p.Xi(); ok {
		return nil, xi, nil
	}

	mu, _ := p.Mu()
	var sumSq float64
	for _, cw := range clusterWeight {
		frac := cw / total
		sumSq += frac * frac
	}
	xiGlobal = mu / (1 - sumSq)
	if xiGlobal >= 1 {
		return nil, 0, fmt.Errorf("mixing: xi_global=%g >= 1: %w", xiGlobal, ErrMuTooLarge)
	}
	return nil, xiGlobal, nil
}
