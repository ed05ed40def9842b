package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/paulmach/orb/geojson"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/drone-sim/config"
	"github.com/lixenwraith/drone-sim/event"
)

func executeExport(t *testing.T, args ...string) *geojson.FeatureCollection {
	t.Helper()
	// Keep the test independent of a drone-sim.yaml in the working directory
	t.Chdir(t.TempDir())

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetArgs(append([]string{"--export", "-"}, args...))
	require.NoError(t, cmd.Execute())

	fc, err := geojson.UnmarshalFeatureCollection(out.Bytes())
	require.NoError(t, err)
	return fc
}

func countKind(fc *geojson.FeatureCollection, kind string) int {
	n := 0
	for _, f := range fc.Features {
		if f.Properties.MustString("kind", "") == kind {
			n++
		}
	}
	return n
}

func TestExportDefaults(t *testing.T) {
	fc := executeExport(t, "--seed", "7")
	assert.Equal(t, 1, countKind(fc, "grid"))
	assert.Equal(t, 1, countKind(fc, "agent"))
	assert.Equal(t, 10, countKind(fc, "obstacle"))
	assert.Equal(t, 5, countKind(fc, "target"))
}

func TestExportFlagsOverride(t *testing.T) {
	fc := executeExport(t, "--seed", "7", "--width", "20", "--height", "15", "--obstacles", "3", "--targets", "2")
	assert.Equal(t, 3, countKind(fc, "obstacle"))
	assert.Equal(t, 2, countKind(fc, "target"))
}

func TestExportEnvOverride(t *testing.T) {
	t.Setenv("DRONE_GRID_TARGETS", "6")
	fc := executeExport(t, "--seed", "1")
	assert.Equal(t, 6, countKind(fc, "target"))
}

func TestExportConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sim.yaml")
	require.NoError(t, os.WriteFile(path, []byte("grid:\n  obstacles: 4\n"), 0o644))

	fc := executeExport(t, "--seed", "1", "--config", path)
	assert.Equal(t, 4, countKind(fc, "obstacle"))
}

func TestExportToFile(t *testing.T) {
	t.Chdir(t.TempDir())
	path := filepath.Join(t.TempDir(), "world.geojson")

	cmd := newRootCmd()
	cmd.SetArgs([]string{"--export", path, "--seed", "3"})
	require.NoError(t, cmd.Execute())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	fc, err := geojson.UnmarshalFeatureCollection(data)
	require.NoError(t, err)
	assert.NotEmpty(t, fc.Features)
}

func TestInvalidConfigRejected(t *testing.T) {
	t.Chdir(t.TempDir())

	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--export", "-", "--targets", "9"})
	err := cmd.Execute()
	assert.ErrorIs(t, err, config.ErrInvalid)
}

func TestMissingConfigFileRejected(t *testing.T) {
	t.Chdir(t.TempDir())

	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--export", "-", "--config", "missing.yaml"})
	assert.Error(t, cmd.Execute())
}

func TestNewSimulationPlacesAgent(t *testing.T) {
	cfg := config.NewDefaultConfig()
	cfg.Sim.Seed = 5
	rec := event.NewRecorder(32)

	sim := newSimulation(cfg, rec)
	snap := sim.state.Latest()
	require.NotNil(t, snap)
	assert.Equal(t, uint64(0), snap.Tick)
	assert.Equal(t, 10, snap.Agent.X)
	assert.Equal(t, 10, snap.Agent.Y)
	assert.Equal(t, cfg.Grid.Targets, len(snap.Targets))
	for i, tg := range snap.Targets {
		assert.Equal(t, i+1, tg.ID)
	}
	assert.NotEmpty(t, rec.Events(), "generation is recorded")
}
