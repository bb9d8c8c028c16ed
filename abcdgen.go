package abcdgen

import (
	"sort"

	"github.com/abcdgraph/abcdgen/chunglu"
	"github.com/abcdgraph/abcdgen/cluster"
	"github.com/abcdgraph/abcdgen/configmodel"
	"github.com/abcdgraph/abcdgen/internal/xrand"
	"github.com/abcdgraph/abcdgen/params"
)

// Edge is an unordered edge endpoint pair with A < B, matching spec.md
// §3's "(min, max)" edge identity. A and B are 0-based vertex indices
// (0..n-1), not the 1-based indices the iowriters package writes to
// the network file.
type Edge struct {
	A, B int32
}

// Result is the output of Generate: the edge list (sorted lexicographically
// per spec.md §4.4), the cluster assignment, and, for the configuration-
// model engine, the non-fatal collision counts from spec.md §7. Stats is
// nil when the Chung–Lu engine was used, since it never produces
// collisions to report.
//
// Clusters is indexed the same way: Clusters[v] is the 1-based community
// id of the 0-based vertex v.
type Result struct {
	Edges    []Edge
	Clusters []int32
	Stats    *configmodel.Stats
}

/*
Generate — driver (spec.md §4.4)

Validate params (already done by params.New) → assign clusters →
run the CL or CM engine per Params.IsCL → return (edges, clusters).

seed drives both the cluster-assignment RNG and, via
internal/xrand.DeriveRNG, every worker's independent stream in the
chosen engine — the same seed always yields the same result.
*/
func Generate(seed int64, p *params.Params) (*Result, error) {
	clusters, err := cluster.Assign(xrand.New(seed), p)
	if err != nil {
		return nil, err
	}

	var (
		edges []Edge
		stats *configmodel.Stats
	)
	if p.IsCL() {
		set, err := chunglu.Generate(seed, p, clusters)
		if err != nil {
			return nil, err
		}
		edges = toEdges(set.Members())
	} else {
		set, s, err := configmodel.Generate(seed, p, clusters)
		if err != nil {
			return nil, err
		}
		edges = toEdges(set.Members())
		stats = s
	}

	sort.Slice(edges, func(i, j int) bool {
		if edges[i].A != edges[j].A {
			return edges[i].A < edges[j].A
		}
		return edges[i].B < edges[j].B
	})

	return &Result{Edges: edges, Clusters: clusters, Stats: stats}, nil
}

func toEdges[P ~[2]int32](pairs []P) []Edge {
	edges := make([]Edge, len(pairs))
	for i, p := range pairs {
		edges[i] = Edge{A: p[0], B: p[1]}
	}
	return edges
}
