package sampler_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abcdgraph/abcdgen/internal/xrand"
	"github.com/abcdgraph/abcdgen/sampler"
)

func TestPowerLaw_RejectsInvalidBounds(t *testing.T) {
	_, err := sampler.PowerLaw(2.5, 0, 10, 100)
	require.Error(t, err)
	assert.True(t, errors.Is(err, sampler.ErrInvalidParams))

	_, err = sampler.PowerLaw(2.5, 10, 5, 100)
	require.Error(t, err)
	assert.True(t, errors.Is(err, sampler.ErrInvalidParams))
}

func TestPowerLaw_DrawsWithinBounds(t *testing.T) {
	fn, err := sampler.PowerLaw(2.5, 3, 20, 1000)
	require.NoError(t, err)
	rng := xrand.New(1)
	for i := 0; i < 500; i++ {
		v := fn(rng)
		assert.GreaterOrEqual(t, v, int32(3))
		assert.LessOrEqual(t, v, int32(20))
	}
}

func TestDegreeSequence_SortedDescending(t *testing.T) {
	rng := xrand.New(1)
	w, err := sampler.DegreeSequence(rng, 50, 2.5, 3, 20, 1000)
	require.NoError(t, err)
	require.Len(t, w, 50)
	for i := 1; i < len(w); i++ {
		assert.LessOrEqual(t, w[i], w[i-1])
	}
}

func TestCommunitySizes_SumsToN(t *testing.T) {
	rng := xrand.New(1)
	s, err := sampler.CommunitySizes(rng, 100, 1.5, 10, 40, 1000)
	require.NoError(t, err)

	var sum int32
	for _, v := range s {
		sum += v
	}
	assert.Equal(t, int32(100), sum)
	for i := 1; i < len(s); i++ {
		assert.LessOrEqual(t, s[i], s[i-1])
	}
}
