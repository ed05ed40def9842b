package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/lixenwraith/drone-sim/audio"
	"github.com/lixenwraith/drone-sim/config"
	"github.com/lixenwraith/drone-sim/engine"
	"github.com/lixenwraith/drone-sim/event"
	"github.com/lixenwraith/drone-sim/input"
	"github.com/lixenwraith/drone-sim/navigation"
	"github.com/lixenwraith/drone-sim/network"
	"github.com/lixenwraith/drone-sim/observability"
	"github.com/lixenwraith/drone-sim/parameter"
	"github.com/lixenwraith/drone-sim/spawn"
	"github.com/lixenwraith/drone-sim/status"
	"github.com/lixenwraith/drone-sim/terminal"
	"github.com/lixenwraith/drone-sim/world"
)

// simulation is the generated world and its navigator
type simulation struct {
	state *world.State
	nav   *navigation.Navigator
}

// newSimulation generates the initial world and publishes tick 0
func newSimulation(cfg *config.Config, sink event.Sink) *simulation {
	st := world.New(cfg.Grid.Width, cfg.Grid.Height, cfg.Grid.Obstacles, cfg.Grid.Targets)
	st.SetAgent(world.Cell{X: cfg.Agent.StartX, Y: cfg.Agent.StartY})

	gen := spawn.NewGenerator(cfg.Sim.Seed, sink)
	gen.Obstacles(st)
	gen.Targets(st)
	st.Publish(0)

	nav := navigation.New(st, gen, cfg.Navigation(), navigation.WithSink(sink))
	return &simulation{state: st, nav: nav}
}

// exportWorld writes the generated world as GeoJSON
func exportWorld(cfg *config.Config, path string, stdout io.Writer) error {
	sim := newSimulation(cfg, event.Discard)
	data, err := sim.state.Latest().FeatureCollection().MarshalJSON()
	if err != nil {
		return fmt.Errorf("encoding geojson: %w", err)
	}
	if path == "-" {
		_, err = stdout.Write(append(data, '\n'))
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

func run(ctx context.Context, cfg *config.Config) error {
	if err := observability.InitializeLogger(cfg.Logger); err != nil {
		return err
	}
	defer observability.Sync()

	logger := observability.GetLogger().With(zap.String("run_id", uuid.NewString()))
	logger.Info("starting",
		zap.Int("width", cfg.Grid.Width),
		zap.Int("height", cfg.Grid.Height),
		zap.Int("obstacles", cfg.Grid.Obstacles),
		zap.Int("targets", cfg.Grid.Targets),
		zap.Int64("seed", cfg.Sim.Seed))

	sim := newSimulation(cfg, event.Fanout{event.NewLogSink(logger)})

	reg := status.NewRegistry()
	screen, err := terminal.Open(input.DefaultKeyTable(), reg)
	if err != nil {
		return err
	}
	defer screen.Fini()
	if err := screen.CheckFit(cfg.Grid.Width, cfg.Grid.Height); err != nil {
		return err
	}
	fini := screen.Fini
	resetTerminal.Store(&fini)
	screen.Draw(sim.state.Latest(), "")

	player := audio.NewPlayer(cfg.AudioPlayer(), logger)
	if err := player.Initialize(); err != nil {
		logger.Warn("audio unavailable, continuing without sound", zap.Error(err))
	}
	defer player.Close()

	observers := []engine.Observer{engine.NewStatusObserver(reg), screen, player}

	var hub *network.Hub
	if nc := cfg.Network(); nc.Enabled() {
		hub = network.NewHub(nc, logger)
		observers = append(observers, hub)
	}

	intents := make(chan input.Intent, parameter.IntentBufferSize)
	runner := engine.NewRunner(sim.nav, intents, engine.RunnerConfig{
		TickInterval:    cfg.Sim.TickInterval,
		WatchdogTimeout: cfg.Watchdog.Timeout,
		Logger:          logger,
	}, observers...)

	ctx, stopSignals := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stopSignals()
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		// Quit or expiry ends every other goroutine
		defer cancel()
		return ignoreCanceled(runner.Run(gctx))
	})
	g.Go(func() error {
		return ignoreCanceled(screen.Poll(gctx, intents))
	})
	if hub != nil {
		g.Go(func() error { return hub.Run(gctx) })
		g.Go(func() error { return hub.ListenAndServe(gctx) })
	}

	err = g.Wait()
	switch {
	case errors.Is(err, engine.ErrWatchdogExpired):
		logger.Error("run ended by watchdog", zap.Duration("timeout", cfg.Watchdog.Timeout))
	case err != nil:
		logger.Error("run failed", zap.Error(err))
	default:
		logger.Info("stopped",
			zap.Uint64("ticks", sim.nav.TickCount()),
			zap.Int64("targets_reached", reg.Counter(status.RespawnTargets)),
			zap.Int64("collisions", reg.Counter(status.RespawnObstacles)))
	}
	return err
}

func ignoreCanceled(err error) error {
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
