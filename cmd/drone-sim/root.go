package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/lixenwraith/drone-sim/config"
	"github.com/lixenwraith/drone-sim/parameter"
)

// flagBindings maps command-line flags to config keys
var flagBindings = map[string]string{
	"width":     "grid.width",
	"height":    "grid.height",
	"obstacles": "grid.obstacles",
	"targets":   "grid.targets",
	"seed":      "sim.seed",
	"tick":      "sim.tick_interval",
	"watchdog":  "watchdog.timeout",
	"damping":   "kinetics.damping",
	"audio":     "audio.enabled",
	"feed":      "feed.listen",
	"log-file":  "logger.log_file",
	"log-level": "logger.level",
}

func newRootCmd() *cobra.Command {
	v := viper.New()
	config.SetDefaults(v)

	var cfgFile, exportPath string

	cmd := &cobra.Command{
		Use:   "drone-sim",
		Short: "Terminal drone navigating a grid by artificial potential fields",
		Long: `drone-sim steers a drone toward numbered targets while obstacles repel it.
Arrow keys or hjkl move the drone manually; without input it navigates on its own.`,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := initializeConfig(v, cfgFile); err != nil {
				return err
			}
			cfg, err := config.NewConfigFromViper(v)
			if err != nil {
				return err
			}
			if exportPath != "" {
				return exportWorld(cfg, exportPath, cmd.OutOrStdout())
			}
			return run(cmd.Context(), cfg)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&cfgFile, "config", "c", "", "config file (default is ./drone-sim.yaml)")
	flags.StringVar(&exportPath, "export", "", "write the generated world as GeoJSON to a file (- for stdout) and exit")

	flags.Int("width", parameter.GridWidth, "grid width in cells")
	flags.Int("height", parameter.GridHeight, "grid height in cells")
	flags.Int("obstacles", parameter.DefaultObstacles, fmt.Sprintf("obstacle count (max %d)", parameter.ObstacleCapacity))
	flags.Int("targets", parameter.DefaultTargets, fmt.Sprintf("target count (max %d)", parameter.TargetCapacity))
	flags.Int64("seed", 0, "random seed, 0 seeds from the clock")
	flags.Duration("tick", parameter.TickInterval, "automatic navigation interval")
	flags.Duration("watchdog", parameter.WatchdogTimeout, "exit after this long without a manual move, 0 disables")
	flags.Float64("damping", parameter.AgentDamping, "fraction of velocity removed per tick, [0, 1)")
	flags.Bool("audio", true, "play sound cues")
	flags.String("feed", "", "serve the websocket snapshot feed on this address")
	flags.String("log-file", "drone-sim.log", "log file path")
	flags.String("log-level", "info", "log level")

	if err := bindFlags(v, flags); err != nil {
		panic(err)
	}
	return cmd
}

func bindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	for name, key := range flagBindings {
		if err := v.BindPFlag(key, flags.Lookup(name)); err != nil {
			return fmt.Errorf("binding flag %s: %w", name, err)
		}
	}
	return nil
}

// initializeConfig reads the config file and DRONE_ environment variables
func initializeConfig(v *viper.Viper, cfgFile string) error {
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("drone-sim")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix("DRONE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("error reading config file: %w", err)
		}
	}
	return nil
}
