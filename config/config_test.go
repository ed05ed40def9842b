package config

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/drone-sim/navigation"
)

func TestNewDefaultConfig(t *testing.T) {
	cfg := NewDefaultConfig()

	assert.Equal(t, 80, cfg.Grid.Width)
	assert.Equal(t, 22, cfg.Grid.Height)
	assert.Equal(t, 10, cfg.Grid.Obstacles)
	assert.Equal(t, 5, cfg.Grid.Targets)
	assert.Equal(t, 10, cfg.Agent.StartX)
	assert.Equal(t, 10, cfg.Agent.StartY)
	assert.Equal(t, 0.2, cfg.Kinetics.Damping)
	assert.Equal(t, 0.5, cfg.Kinetics.ForceClamp)
	assert.Equal(t, 100*time.Millisecond, cfg.Sim.TickInterval)
	assert.Equal(t, 10*time.Second, cfg.Watchdog.Timeout)
	assert.True(t, cfg.Audio.Enabled)
	assert.Empty(t, cfg.Feed.Listen)
	assert.Equal(t, 20.0, cfg.Feed.MaxRate)

	require.NoError(t, cfg.Validate())
}

func TestDefaultsMatchNavigation(t *testing.T) {
	assert.Equal(t, navigation.DefaultConfig(), NewDefaultConfig().Navigation())
}

func TestNewConfigFromViperOverrides(t *testing.T) {
	v := viper.New()
	SetDefaults(v)

	yaml := `
grid:
  width: 40
  height: 20
  targets: 3
kinetics:
  damping: 0.5
sim:
  tick_interval: 250ms
  seed: 42
watchdog:
  timeout: 0s
feed:
  listen: "127.0.0.1:8080"
`
	v.SetConfigType("yaml")
	require.NoError(t, v.ReadConfig(strings.NewReader(yaml)))

	cfg, err := NewConfigFromViper(v)
	require.NoError(t, err)

	assert.Equal(t, 40, cfg.Grid.Width)
	assert.Equal(t, 3, cfg.Grid.Targets)
	assert.Equal(t, 10, cfg.Grid.Obstacles, "untouched keys keep defaults")
	assert.Equal(t, 0.5, cfg.Kinetics.Damping)
	assert.Equal(t, 250*time.Millisecond, cfg.Sim.TickInterval)
	assert.Equal(t, int64(42), cfg.Sim.Seed)
	assert.Zero(t, cfg.Watchdog.Timeout)

	nc := cfg.Network()
	assert.True(t, nc.Enabled())
	assert.Equal(t, "127.0.0.1:8080", nc.Listen)
}

func TestNewConfigFromViperExpandsHome(t *testing.T) {
	t.Setenv("HOME", "/tmp/drone-home")

	v := viper.New()
	SetDefaults(v)
	v.Set("logger.log_file", "~/logs/drone.log")

	cfg, err := NewConfigFromViper(v)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/drone-home/logs/drone.log", cfg.Logger.LogFile)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero width", func(c *Config) { c.Grid.Width = 0 }},
		{"negative height", func(c *Config) { c.Grid.Height = -1 }},
		{"obstacles over capacity", func(c *Config) { c.Grid.Obstacles = 11 }},
		{"targets over capacity", func(c *Config) { c.Grid.Targets = 7 }},
		{"start outside grid", func(c *Config) { c.Agent.StartX = 80 }},
		{"negative start", func(c *Config) { c.Agent.StartY = -1 }},
		{"zero eta", func(c *Config) { c.Repulsion.Eta = 0 }},
		{"zero rho_min", func(c *Config) { c.Repulsion.RhoMin = 0 }},
		{"rho_min above rho_max", func(c *Config) { c.Repulsion.RhoMin = 6 }},
		{"zero rho_goal", func(c *Config) { c.Attraction.RhoGoal = 0 }},
		{"zero mass", func(c *Config) { c.Kinetics.Mass = 0 }},
		{"full damping", func(c *Config) { c.Kinetics.Damping = 1.0 }},
		{"negative damping", func(c *Config) { c.Kinetics.Damping = -0.1 }},
		{"zero clamp", func(c *Config) { c.Kinetics.ForceClamp = 0 }},
		{"zero tick", func(c *Config) { c.Sim.TickInterval = 0 }},
		{"negative watchdog", func(c *Config) { c.Watchdog.Timeout = -time.Second }},
		{"loud audio", func(c *Config) { c.Audio.Volume = 2 }},
		{"negative feed rate", func(c *Config) { c.Feed.MaxRate = -1 }},
		{"no log file", func(c *Config) { c.Logger.LogFile = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewDefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalid))
		})
	}
}

func TestValidateBoundaries(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.Grid.Obstacles = 0
	cfg.Grid.Targets = 6
	cfg.Kinetics.Damping = 0
	cfg.Watchdog.Timeout = 0
	cfg.Agent.StartX, cfg.Agent.StartY = 79, 21
	assert.NoError(t, cfg.Validate())
}

func TestNewConfigFromViperRejectsInvalid(t *testing.T) {
	v := viper.New()
	SetDefaults(v)
	v.Set("grid.targets", 9)

	_, err := NewConfigFromViper(v)
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestAudioPlayer(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.Audio.Enabled = false
	cfg.Audio.Volume = 0.25

	ac := cfg.AudioPlayer()
	assert.False(t, ac.Enabled)
	assert.Equal(t, 0.25, ac.MasterVolume)
}
