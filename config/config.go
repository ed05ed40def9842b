package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"

	"github.com/lixenwraith/drone-sim/audio"
	"github.com/lixenwraith/drone-sim/navigation"
	"github.com/lixenwraith/drone-sim/network"
	"github.com/lixenwraith/drone-sim/observability"
	"github.com/lixenwraith/drone-sim/parameter"
	"github.com/lixenwraith/drone-sim/physics"
)

// ErrInvalid wraps every validation failure
var ErrInvalid = errors.New("invalid configuration")

// Config holds the run configuration
type Config struct {
	Logger     observability.LoggerConfig `mapstructure:"logger" yaml:"logger"`
	Grid       GridConfig                 `mapstructure:"grid" yaml:"grid"`
	Agent      AgentConfig                `mapstructure:"agent" yaml:"agent"`
	Repulsion  RepulsionConfig            `mapstructure:"repulsion" yaml:"repulsion"`
	Attraction AttractionConfig           `mapstructure:"attraction" yaml:"attraction"`
	Kinetics   KineticsConfig             `mapstructure:"kinetics" yaml:"kinetics"`
	Sim        SimConfig                  `mapstructure:"sim" yaml:"sim"`
	Watchdog   WatchdogConfig             `mapstructure:"watchdog" yaml:"watchdog"`
	Audio      AudioConfig                `mapstructure:"audio" yaml:"audio"`
	Feed       FeedConfig                 `mapstructure:"feed" yaml:"feed"`
}

type GridConfig struct {
	Width     int `mapstructure:"width" yaml:"width"`
	Height    int `mapstructure:"height" yaml:"height"`
	Obstacles int `mapstructure:"obstacles" yaml:"obstacles"`
	Targets   int `mapstructure:"targets" yaml:"targets"`
}

type AgentConfig struct {
	StartX int `mapstructure:"start_x" yaml:"start_x"`
	StartY int `mapstructure:"start_y" yaml:"start_y"`
}

type RepulsionConfig struct {
	Eta    float64 `mapstructure:"eta" yaml:"eta"`
	RhoMin float64 `mapstructure:"rho_min" yaml:"rho_min"`
	RhoMax float64 `mapstructure:"rho_max" yaml:"rho_max"`
}

type AttractionConfig struct {
	Xi      float64 `mapstructure:"xi" yaml:"xi"`
	RhoGoal float64 `mapstructure:"rho_goal" yaml:"rho_goal"`
}

type KineticsConfig struct {
	Mass       float64 `mapstructure:"mass" yaml:"mass"`
	Damping    float64 `mapstructure:"damping" yaml:"damping"`
	ForceClamp float64 `mapstructure:"force_clamp" yaml:"force_clamp"`
}

type SimConfig struct {
	TickInterval time.Duration `mapstructure:"tick_interval" yaml:"tick_interval"`
	// Seed 0 seeds from the clock
	Seed int64 `mapstructure:"seed" yaml:"seed"`
}

type WatchdogConfig struct {
	// Timeout 0 disables the watchdog
	Timeout time.Duration `mapstructure:"timeout" yaml:"timeout"`
}

type AudioConfig struct {
	Enabled bool    `mapstructure:"enabled" yaml:"enabled"`
	Volume  float64 `mapstructure:"volume" yaml:"volume"`
}

type FeedConfig struct {
	Listen  string  `mapstructure:"listen" yaml:"listen"`
	MaxRate float64 `mapstructure:"max_rate" yaml:"max_rate"`
}

// NewDefaultConfig returns the built-in defaults
func NewDefaultConfig() *Config {
	v := viper.New()
	SetDefaults(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		panic(fmt.Sprintf("failed to unmarshal default config: %v", err))
	}
	return &cfg
}

// SetDefaults registers every key with its default value
func SetDefaults(v *viper.Viper) {
	// -- Logger --
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "json")
	v.SetDefault("logger.service_name", "drone-sim")
	v.SetDefault("logger.log_file", "drone-sim.log")
	v.SetDefault("logger.max_size", 20)
	v.SetDefault("logger.max_backups", 3)
	v.SetDefault("logger.max_age", 7)
	v.SetDefault("logger.compress", false)

	// -- World --
	v.SetDefault("grid.width", parameter.GridWidth)
	v.SetDefault("grid.height", parameter.GridHeight)
	v.SetDefault("grid.obstacles", parameter.DefaultObstacles)
	v.SetDefault("grid.targets", parameter.DefaultTargets)
	v.SetDefault("agent.start_x", parameter.AgentStartX)
	v.SetDefault("agent.start_y", parameter.AgentStartY)

	// -- Fields --
	v.SetDefault("repulsion.eta", parameter.RepulsionEta)
	v.SetDefault("repulsion.rho_min", parameter.RepulsionRhoMin)
	v.SetDefault("repulsion.rho_max", parameter.RepulsionRhoMax)
	v.SetDefault("attraction.xi", parameter.AttractionXi)
	v.SetDefault("attraction.rho_goal", parameter.AttractionRhoGoal)
	v.SetDefault("kinetics.mass", parameter.AgentMass)
	v.SetDefault("kinetics.damping", parameter.AgentDamping)
	v.SetDefault("kinetics.force_clamp", parameter.ForceClamp)

	// -- Loop --
	v.SetDefault("sim.tick_interval", parameter.TickInterval.String())
	v.SetDefault("sim.seed", 0)
	v.SetDefault("watchdog.timeout", parameter.WatchdogTimeout.String())

	// -- Outputs --
	v.SetDefault("audio.enabled", true)
	v.SetDefault("audio.volume", parameter.AudioMasterVolume)
	v.SetDefault("feed.listen", "")
	v.SetDefault("feed.max_rate", parameter.FeedMaxRate)
}

// NewConfigFromViper decodes and validates v; the log path has ~ expanded
func NewConfigFromViper(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if cfg.Logger.LogFile != "" {
		path, err := homedir.Expand(cfg.Logger.LogFile)
		if err != nil {
			return nil, fmt.Errorf("expanding log_file: %w", err)
		}
		cfg.Logger.LogFile = path
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks ranges and cross-field constraints
func (c *Config) Validate() error {
	g := c.Grid
	switch {
	case g.Width <= 0 || g.Height <= 0:
		return invalid("grid dimensions must be positive, got %dx%d", g.Width, g.Height)
	case g.Obstacles < 0 || g.Obstacles > parameter.ObstacleCapacity:
		return invalid("grid.obstacles must be in [0, %d], got %d", parameter.ObstacleCapacity, g.Obstacles)
	case g.Targets < 0 || g.Targets > parameter.TargetCapacity:
		return invalid("grid.targets must be in [0, %d], got %d", parameter.TargetCapacity, g.Targets)
	case c.Agent.StartX < 0 || c.Agent.StartX >= g.Width || c.Agent.StartY < 0 || c.Agent.StartY >= g.Height:
		return invalid("agent start (%d, %d) outside %dx%d grid", c.Agent.StartX, c.Agent.StartY, g.Width, g.Height)
	}

	r := c.Repulsion
	switch {
	case r.Eta <= 0:
		return invalid("repulsion.eta must be positive")
	case r.RhoMin <= 0 || r.RhoMax <= 0:
		return invalid("repulsion radii must be positive")
	case r.RhoMin > r.RhoMax:
		return invalid("repulsion.rho_min %.2f exceeds rho_max %.2f", r.RhoMin, r.RhoMax)
	case c.Attraction.Xi <= 0 || c.Attraction.RhoGoal <= 0:
		return invalid("attraction.xi and attraction.rho_goal must be positive")
	}

	k := c.Kinetics
	switch {
	case k.Mass <= 0:
		return invalid("kinetics.mass must be positive")
	case k.Damping < 0 || k.Damping >= 1:
		return invalid("kinetics.damping must be in [0, 1), got %.2f", k.Damping)
	case k.ForceClamp <= 0:
		return invalid("kinetics.force_clamp must be positive")
	}

	switch {
	case c.Sim.TickInterval <= 0:
		return invalid("sim.tick_interval must be positive")
	case c.Watchdog.Timeout < 0:
		return invalid("watchdog.timeout must not be negative")
	case c.Audio.Volume < 0 || c.Audio.Volume > 1:
		return invalid("audio.volume must be in [0, 1]")
	case c.Feed.MaxRate < 0:
		return invalid("feed.max_rate must not be negative")
	case c.Logger.LogFile == "":
		return invalid("logger.log_file is required")
	}
	return nil
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalid, fmt.Sprintf(format, args...))
}

// Navigation converts the field and kinetic settings
func (c *Config) Navigation() navigation.Config {
	return navigation.Config{
		Repulsion: physics.RepulsionProfile{
			Eta:    c.Repulsion.Eta,
			RhoMin: c.Repulsion.RhoMin,
			RhoMax: c.Repulsion.RhoMax,
		},
		Attraction: physics.AttractionProfile{
			Xi:      c.Attraction.Xi,
			RhoGoal: c.Attraction.RhoGoal,
		},
		Kinetic: physics.KineticProfile{
			Mass:    c.Kinetics.Mass,
			Damping: c.Kinetics.Damping,
		},
		ForceClamp: c.Kinetics.ForceClamp,
	}
}

// AudioPlayer converts the audio settings
func (c *Config) AudioPlayer() audio.Config {
	ac := audio.DefaultConfig()
	ac.Enabled = c.Audio.Enabled
	ac.MasterVolume = c.Audio.Volume
	return ac
}

// Network converts the feed settings
func (c *Config) Network() *network.Config {
	nc := network.DefaultConfig()
	nc.Listen = c.Feed.Listen
	nc.MaxRate = c.Feed.MaxRate
	return nc
}
