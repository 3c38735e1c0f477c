package injector

import (
	"math/rand/v2"

	"github.com/google/wire"

	"github.com/zeusync/rpsim/internal/config"
	"github.com/zeusync/rpsim/internal/core/events/bus"
	"github.com/zeusync/rpsim/internal/core/models"
	"github.com/zeusync/rpsim/internal/core/observability/log"
	"github.com/zeusync/rpsim/internal/core/system"
	"github.com/zeusync/rpsim/internal/core/systems/conflict"
	"github.com/zeusync/rpsim/internal/driver"
)

// Seed is the placement seed actually used for a match.
type Seed uint64

var ProviderSet = wire.NewSet(
	ProvideLogger,
	ProvideEvents,
	ProvideField,
	ProvideSeed,
	ProvidePopulation,
	ProvideWorld,
	ProvideManager,
	ProvideReporter,
	ProvideLoop,
	wire.Bind(new(system.Field), new(*system.ResizableField)),
	wire.Bind(new(driver.Renderer), new(*driver.Reporter)),
)

func ProvideLogger(cfg *config.Config) (*log.Logger, func()) {
	l := log.New(cfg.LogLevel())
	return l, func() { _ = l.Sync() }
}

func ProvideEvents() bus.EventBus {
	return bus.New()
}

func ProvideField(cfg *config.Config) *system.ResizableField {
	return system.NewResizableField(cfg.Field.Width, cfg.Field.Height)
}

func ProvideSeed(cfg *config.Config) Seed {
	if cfg.Seed != 0 {
		return Seed(cfg.Seed)
	}
	return Seed(rand.Uint64())
}

func ProvidePopulation(cfg *config.Config, seed Seed) (*models.Population, error) {
	rng := rand.New(rand.NewPCG(uint64(seed), uint64(seed)>>1))
	return models.Spawn(cfg.Agents.Count, cfg.Field.Width, cfg.Field.Height, rng)
}

func ProvideWorld(cfg *config.Config, pop *models.Population, field system.Field, events bus.EventBus, logger *log.Logger, seed Seed) (*system.World, error) {
	w, err := system.NewWorld(pop, field, system.WorldOptions{
		CaptureRadius: cfg.CaptureRadius,
		Events:        events,
		Logger:        logger,
	})
	if err != nil {
		return nil, err
	}
	w.Logger().Info("match created", log.Uint64("seed", uint64(seed)), log.Int("agents", pop.Len()))
	return w, nil
}

func ProvideManager(logger *log.Logger) (*system.Manager, error) {
	m := system.NewManager(logger)
	if err := m.RegisterSystem(conflict.New()); err != nil {
		return nil, err
	}
	return m, nil
}

func ProvideReporter(cfg *config.Config, logger *log.Logger, events bus.EventBus) (*driver.Reporter, func(), error) {
	r := driver.NewReporter(logger, cfg.ReportEvery)
	if err := r.Attach(events); err != nil {
		return nil, nil, err
	}
	return r, func() { _ = r.Detach() }, nil
}

func ProvideLoop(cfg *config.Config, world *system.World, manager *system.Manager, renderer driver.Renderer, logger *log.Logger) (*driver.Loop, error) {
	return driver.New(world, manager, renderer, driver.Options{
		TickInterval: cfg.TickInterval(),
		MaxFrames:    cfg.MaxFrames,
		StopOnWin:    cfg.StopOnWin,
	}, logger)
}
