package workerpool_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abcdgraph/abcdgen/internal/workerpool"
)

func TestRun_AllIDsProcessed(t *testing.T) {
	ids := []int32{1, 2, 3, 4, 5}
	results, err := workerpool.Run(ids, 2, func(id int32) (int32, error) {
		return id * id, nil
	})
	require.NoError(t, err)
	require.Len(t, results, len(ids))

	seen := map[int32]int32{}
	for _, r := range results {
		seen[r.ID] = r.Value
	}
	for _, id := range ids {
		assert.Equal(t, id*id, seen[id])
	}
}

func TestRun_PropagatesFirstError(t *testing.T) {
	boom := errors.New("boom")
	_, err := workerpool.Run([]int32{0, 1, 2}, 3, func(id int32) (int, error) {
		if id == 1 {
			return 0, boom
		}
		return 0, nil
	})
	require.ErrorIs(t, err, boom)
}

func TestRun_EmptyIDs(t *testing.T) {
	results, err := workerpool.Run[int](nil, 4, func(int32) (int, error) { return 0, nil })
	require.NoError(t, err)
	assert.Empty(t, results)
}
