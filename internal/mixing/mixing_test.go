package mixing_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abcdgraph/abcdgen/internal/mixing"
	"github.com/abcdgraph/abcdgen/params"
)

func TestXi_MuTooLargeGlobal(t *testing.T) {
	w := make([]int32, 20)
	w[0] = 10
	for i := 1; i < 20; i++ {
		w[i] = 1
	}
	p, err := params.New(w, []int32{11, 9}, params.WithMu(0.99), params.WithCL())
	require.NoError(t, err)

	clusters := make([]int32, 20)
	for i := range clusters {
		if i < 11 {
			clusters[i] = 1
		} else {
			clusters[i] = 2
		}
	}
	groups := mixing.GroupByCluster(clusters, p.K())
	cw, total := mixing.Weights(p.W(), groups)

	_, _, err = mixing.Xi(p, cw, total)
	require.ErrorIs(t, err, mixing.ErrMuTooLarge)
}

func TestXi_GlobalFromMu(t *testing.T) {
	p, err := params.New([]int32{3, 3, 2, 2, 1, 1}, []int32{4, 2}, params.WithMu(0.2))
	require.NoError(t, err)
	clusters := []int32{1, 1, 1, 1, 2, 2}
	groups := mixing.GroupByCluster(clusters, p.K())
	cw, total := mixing.Weights(p.W(), groups)

	_, xiGlobal, err := mixing.Xi(p, cw, total)
	require.NoError(t, err)
	assert.Greater(t, xiGlobal, 0.0)
	assert.Less(t, xiGlobal, 1.0)
}

func TestXi_PassesThroughExplicitXi(t *testing.T) {
	p, err := params.New([]int32{2, 2, 2, 2}, []int32{2, 2}, params.WithXi(0.3))
	require.NoError(t, err)
	clusters := []int32{1, 1, 2, 2}
	groups := mixing.GroupByCluster(clusters, p.K())
	cw, total := mixing.Weights(p.W(), groups)

	_, xiGlobal, err := mixing.Xi(p, cw, total)
	require.NoError(t, err)
	assert.Equal(t, 0.3, xiGlobal)
}
