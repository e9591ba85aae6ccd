package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/relocate/report"
)

func init() {
	lipgloss.SetColorProfile(termenv.Ascii)
}

// execute runs the CLI with args and returns stdout and stderr.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	err := cmd.Execute()

	return out.String(), errOut.String(), err
}

// smallConfig writes a config file with a 5×5×3 state space.
func smallConfig(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "relocate.yaml")
	body := `
model:
  delta: 1
  num_r: 5
  min_r: -2
  max_r: 2
  num_share: 3
log:
  level: error
`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	return path
}

func TestCLI_Eval(t *testing.T) {
	out, _, err := execute(t, "eval", "--household", "joint", "--rw", "0.4", "--rm", "0.3", "--share", "0.5", "--delta", "1")
	require.NoError(t, err)
	assert.Equal(t, "household=joint move_w=true move_m=true\n", out)

	out, _, err = execute(t, "eval", "--household", "joint", "--rw=-0.4", "--rm", "0.3", "--share", "0.5", "--delta", "1")
	require.NoError(t, err)
	assert.Equal(t, "household=joint move_w=false move_m=false\n", out)

	out, _, err = execute(t, "eval", "--household", "sole", "--rw=-0.5", "--rm", "0.6", "--share", "0", "--delta", "1")
	require.NoError(t, err)
	assert.Equal(t, "household=sole move_w=false move_m=false\n", out)

	_, _, err = execute(t, "eval", "--household", "nobody")
	assert.Error(t, err)
}

func TestCLI_SolveSummary(t *testing.T) {
	out, stderr, err := execute(t, "--config", smallConfig(t), "solve", "--workers", "2", "--metrics")
	require.NoError(t, err)

	var s report.Summary
	require.NoError(t, yaml.Unmarshal([]byte(out), &s))
	assert.Equal(t, []float64{-2, -1, 0, 1, 2}, s.GridR)
	require.Len(t, s.Totals, 4)
	assert.Equal(t, "couple", s.Totals[1].Household)
	assert.Equal(t, 10, s.Totals[1].MovesW)
	assert.Contains(t, stderr, "relocate_sweep_cells_total")
}

func TestCLI_StoreAndMap(t *testing.T) {
	cfg := smallConfig(t)
	db := filepath.Join(t.TempDir(), "runs.db")

	out, _, err := execute(t, "--config", cfg, "solve", "--db", db, "--format", "json")
	require.NoError(t, err)
	assert.Contains(t, out, `"run_id"`)

	out, _, err = execute(t, "--config", cfg, "runs", "--db", db)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	runID := strings.Fields(lines[1])[0]

	fresh, _, err := execute(t, "--config", cfg, "map", "--household", "sole", "--share-index", "1")
	require.NoError(t, err)
	stored, _, err := execute(t, "--config", cfg, "map", "--household", "sole", "--share-index", "1", "--run", runID, "--db", db)
	require.NoError(t, err)
	assert.Equal(t, fresh, stored)
	assert.Contains(t, stored, "sole household")
}

func TestCLI_BadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("model:\n  num_r: 0\nlog:\n  level: error\n"), 0o644))

	_, _, err := execute(t, "--config", path, "solve")
	assert.ErrorContains(t, err, "invalid grid spec")
}
