package cluster_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abcdgraph/abcdgen/cluster"
	"github.com/abcdgraph/abcdgen/internal/xrand"
	"github.com/abcdgraph/abcdgen/params"
)

func TestAssign_ScenarioA_ClusterSizesRespected(t *testing.T) {
	p, err := params.New([]int32{3, 3, 2, 2, 1, 1}, []int32{4, 2}, params.WithMu(0.2), params.WithCL())
	require.NoError(t, err)

	rng := xrand.New(1)
	clusters, err := cluster.Assign(rng, p)
	require.NoError(t, err)
	require.Len(t, clusters, 6)

	counts := map[int32]int{}
	for _, c := range clusters {
		counts[c]++
	}
	assert.Equal(t, map[int32]int{1: 4, 2: 2}, counts)
}

func TestAssign_InfeasibleCluster(t *testing.T) {
	// A single huge-degree vertex cannot fit any community.
	p, err := params.New([]int32{100, 1, 1, 1}, []int32{2, 2}, params.WithMu(0.0))
	require.NoError(t, err)

	rng := xrand.New(1)
	_, err = cluster.Assign(rng, p)
	require.Error(t, err)
	assert.True(t, errors.Is(err, cluster.ErrInfeasibleCluster))
}

func TestAssign_Deterministic(t *testing.T) {
	p, err := params.New([]int32{3, 3, 2, 2, 1, 1}, []int32{4, 2}, params.WithMu(0.2))
	require.NoError(t, err)

	c1, err := cluster.Assign(xrand.New(42), p)
	require.NoError(t, err)
	c2, err := cluster.Assign(xrand.New(42), p)
	require.NoError(t, err)
	assert.Equal(t, c1, c2)
}
