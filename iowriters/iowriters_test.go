package iowriters_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abcdgraph/abcdgen"
	"github.com/abcdgraph/abcdgen/iowriters"
)

func TestWriteNetwork_SortedAndTabSeparated(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "net.dat")

	edges := []abcdgen.Edge{{A: 2, B: 3}, {A: 0, B: 1}}
	require.NoError(t, iowriters.WriteNetwork(path, edges))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "1\t2\n3\t4\n", string(data))
}

func TestWriteCommunities_VertexIndexOrder(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "comm.dat")

	require.NoError(t, iowriters.WriteCommunities(path, []int32{1, 1, 2}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "1\t1\n2\t1\n3\t2\n", string(data))
}

func TestWriteDegrees_OneIntPerLine(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "deg.dat")

	require.NoError(t, iowriters.WriteDegrees(path, []int32{3, 2, 1}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "3\n2\n1\n", string(data))
}
