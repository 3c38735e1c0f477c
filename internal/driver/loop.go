package driver

import (
	"context"
	"fmt"
	"time"

	"github.com/zeusync/rpsim/internal/core/observability/log"
	"github.com/zeusync/rpsim/internal/core/system"
)

type Options struct {
	TickInterval time.Duration

	// MaxFrames stops the loop after that many ticks. Zero means no limit.
	MaxFrames int64

	// StopOnWin ends the loop once the winning frame has been rendered.
	// Otherwise the frozen final frame keeps being rendered until ctx ends.
	StopOnWin bool
}

// Loop owns the tick cadence: once per interval it runs the manager over the
// world and hands the result to the renderer.
type Loop struct {
	world    *system.World
	manager  *system.Manager
	renderer Renderer
	opts     Options
	logger   log.Log
}

func New(world *system.World, manager *system.Manager, renderer Renderer, opts Options, logger log.Log) (*Loop, error) {
	if world == nil || manager == nil {
		return nil, ErrNilWorld
	}
	if renderer == nil {
		return nil, fmt.Errorf("%w: no renderer", ErrNoSurface)
	}
	if w, h := world.Field.Size(); w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: field is %gx%g", ErrNoSurface, w, h)
	}
	if opts.TickInterval <= 0 {
		opts.TickInterval = time.Second / 60
	}
	if logger == nil {
		logger = log.NewNop()
	}
	return &Loop{world: world, manager: manager, renderer: renderer, opts: opts, logger: logger}, nil
}

func (l *Loop) World() *system.World { return l.world }

// Tick runs one simulation step and renders the result.
func (l *Loop) Tick() error {
	if err := l.manager.Update(l.world); err != nil {
		return err
	}
	return l.renderer.Render(l.world.Snapshot())
}

// Run ticks until ctx is done, the frame limit is hit, a winner is rendered
// (with StopOnWin) or a tick fails. Cancellation is not an error.
func (l *Loop) Run(ctx context.Context) error {
	ticker := time.NewTicker(l.opts.TickInterval)
	defer ticker.Stop()

	start := time.Now()
	l.logger.Info("loop started",
		log.String("match", l.world.ID),
		log.Int("agents", l.world.Population.Len()),
		log.Any("systems", l.manager.GetExecutionOrder()),
		log.Duration("interval", l.opts.TickInterval),
	)
	if err := l.renderer.Render(l.world.Snapshot()); err != nil {
		return fmt.Errorf("render initial frame: %w", err)
	}

	for {
		select {
		case <-ctx.Done():
			l.stopped("cancelled", start)
			return nil
		case <-ticker.C:
		}

		if err := l.Tick(); err != nil {
			l.logger.Error("tick failed", log.Error(err), log.Int64("frame", l.world.Frame()))
			return fmt.Errorf("frame %d: %w", l.world.Frame(), err)
		}
		if l.opts.StopOnWin && l.world.Win.Done() {
			l.stopped("won", start)
			return nil
		}
		if l.opts.MaxFrames > 0 && l.world.Frame() >= l.opts.MaxFrames {
			l.stopped("frame limit", start)
			return nil
		}
	}
}

func (l *Loop) stopped(reason string, start time.Time) {
	l.logger.Info("loop stopped",
		log.String("reason", reason),
		log.Int64("frames", l.world.Frame()),
		log.Stringer("state", l.world.Win),
		log.Duration("elapsed", time.Since(start)),
	)
}
