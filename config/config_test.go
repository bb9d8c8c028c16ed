package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abcdgraph/abcdgen/config"
)

const validTOML = `
n = 100
t1 = 2.5
d_min = 3
d_max = 20
d_max_iter = 1000
t2 = 1.5
c_min = 10
c_max = 40
c_max_iter = 1000
mu = 0.2
isCL = false
islocal = false
network_file = "net.dat"
community_file = "comm.dat"
degree_file = "deg.dat"
sizes_file = "sizes.dat"
`

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoad_ValidFile(t *testing.T) {
	path := writeConfig(t, validTOML)
	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 100, cfg.N)
	require.NotNil(t, cfg.Mu)
	assert.Equal(t, 0.2, *cfg.Mu)
}

func TestLoad_EnvOverridesSeed(t *testing.T) {
	path := writeConfig(t, validTOML)
	t.Setenv("ABCDGEN_SEED", "99")

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, int64(99), cfg.Seed)
}

func TestValidate_RejectsBothMuAndXi(t *testing.T) {
	contents := validTOML + "\nxi = 0.1\n"
	path := writeConfig(t, contents)

	_, err := config.Load(path)
	require.Error(t, err)
	assert.True(t, errors.Is(err, config.ErrInvalid))
}

func TestValidate_RejectsXiWithLocal(t *testing.T) {
	contents := `
n = 4
t1 = 2.5
d_min = 1
d_max = 2
d_max_iter = 10
t2 = 1.5
c_min = 1
c_max = 4
c_max_iter = 10
xi = 0.1
islocal = true
network_file = "net.dat"
community_file = "comm.dat"
degree_file = "deg.dat"
sizes_file = "sizes.dat"
`
	path := writeConfig(t, contents)
	_, err := config.Load(path)
	require.Error(t, err)
	assert.True(t, errors.Is(err, config.ErrInvalid))
}
