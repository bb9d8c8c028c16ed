package chunglu_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abcdgraph/abcdgen/chunglu"
	"github.com/abcdgraph/abcdgen/cluster"
	"github.com/abcdgraph/abcdgen/internal/xrand"
	"github.com/abcdgraph/abcdgen/params"
)

// TestGenerate_ScenarioA is spec.md §8 scenario A: minimal feasible CL,
// global mu.
func TestGenerate_ScenarioA(t *testing.T) {
	p, err := params.New([]int32{3, 3, 2, 2, 1, 1}, []int32{4, 2}, params.WithMu(0.2), params.WithCL())
	require.NoError(t, err)

	clusters, err := cluster.Assign(xrand.New(1), p)
	require.NoError(t, err)

	edges, err := chunglu.Generate(1, p, clusters)
	require.NoError(t, err)

	for _, e := range edges.Members() {
		assert.NotEqual(t, e[0], e[1])
		assert.True(t, e[0] >= 0 && e[1] < int32(p.N()))
	}
}

func TestGenerate_MuTooLarge(t *testing.T) {
	w := make([]int32, 20)
	w[0] = 10
	for i := 1; i < 20; i++ {
		w[i] = 1
	}
	p, err := params.New(w, []int32{11, 9}, params.WithMu(0.99), params.WithCL())
	require.NoError(t, err)

	clusters, err := cluster.Assign(xrand.New(1), p)
	require.NoError(t, err)

	_, err = chunglu.Generate(1, p, clusters)
	require.Error(t, err)
	assert.True(t, errors.Is(err, chunglu.ErrMuTooLarge))
}

func TestGenerate_Deterministic(t *testing.T) {
	p, err := params.New([]int32{3, 3, 2, 2, 1, 1}, []int32{4, 2}, params.WithMu(0.2), params.WithCL())
	require.NoError(t, err)
	clusters, err := cluster.Assign(xrand.New(1), p)
	require.NoError(t, err)

	e1, err := chunglu.Generate(7, p, clusters)
	require.NoError(t, err)
	e2, err := chunglu.Generate(7, p, clusters)
	require.NoError(t, err)
	assert.ElementsMatch(t, e1.Members(), e2.Members())
}
