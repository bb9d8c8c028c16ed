package main

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abcdgraph/abcdgen/config"
)

const smallTOML = `
seed = 7
n = 30
t1 = 2.5
d_min = 2
d_max = 6
d_max_iter = 1000
t2 = 1.5
c_min = 5
c_max = 15
c_max_iter = 1000
mu = 0.2
isCL = true
islocal = false
network_file = "%s"
community_file = "%s"
degree_file = "%s"
sizes_file = "%s"
`

func writeSmallConfig(t *testing.T, dir string) string {
	t.Helper()
	net := filepath.Join(dir, "net.dat")
	comm := filepath.Join(dir, "comm.dat")
	deg := filepath.Join(dir, "deg.dat")
	sizes := filepath.Join(dir, "sizes.dat")

	contents := fmt.Sprintf(smallTOML, net, comm, deg, sizes)
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestRunGenerate_WritesAllFourOutputs(t *testing.T) {
	dir := t.TempDir()
	cfgPath := writeSmallConfig(t, dir)

	cfg, err := config.Load(cfgPath)
	require.NoError(t, err)

	rootCmd.SetArgs([]string{"--config", cfgPath})
	require.NoError(t, rootCmd.Execute())

	for _, f := range []string{cfg.NetworkFile, cfg.CommunityFile, cfg.DegreeFile, cfg.SizesFile} {
		info, err := os.Stat(f)
		require.NoError(t, err, "expected %s to be written", f)
		assert.Greater(t, info.Size(), int64(0), "expected %s to be non-empty", f)
	}

	network, err := os.ReadFile(cfg.NetworkFile)
	require.NoError(t, err)
	assert.Contains(t, string(network), "\t")
}
