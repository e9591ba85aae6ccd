package config_test

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/relocate/config"
	"github.com/katalvlaran/relocate/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	c, err := config.Load("")
	require.NoError(t, err)

	assert.Equal(t, model.DefaultParams(), c.Model)
	assert.GreaterOrEqual(t, c.Sweep.Workers, 1)
	assert.Equal(t, "info", c.Log.Level)
	assert.Equal(t, "text", c.Log.Format)
	assert.Empty(t, c.Store.Path)
}

func TestLoad_File(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "run.yaml")
	body := `
model:
  delta: 2.5
  num_r: 7
  min_r: -3
  max_r: 3
sweep:
  workers: 2
store:
  path: runs.db
`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	c, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 2.5, c.Model.Delta)
	assert.Equal(t, 7, c.Model.NumR)
	assert.Equal(t, -3.0, c.Model.MinR)
	assert.Equal(t, 3.0, c.Model.MaxR)
	assert.Equal(t, model.DefaultNumShare, c.Model.NumShare, "unset keys keep defaults")
	assert.Equal(t, 2, c.Sweep.Workers)
	assert.Equal(t, "runs.db", c.Store.Path)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("RELOCATE_MODEL_DELTA", "0.25")
	t.Setenv("RELOCATE_MODEL_NUM_SHARE", "4")
	t.Setenv("RELOCATE_LOG_FORMAT", "json")

	c, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, 0.25, c.Model.Delta)
	assert.Equal(t, 4, c.Model.NumShare)
	assert.Equal(t, "json", c.Log.Format)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, fs.ErrNotExist)
	assert.ErrorContains(t, err, "not found")
}
