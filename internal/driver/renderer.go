package driver

import (
	"sync/atomic"

	"github.com/zeusync/rpsim/internal/core/events/bus"
	"github.com/zeusync/rpsim/internal/core/models"
	"github.com/zeusync/rpsim/internal/core/observability/log"
	"github.com/zeusync/rpsim/internal/core/system"
	"github.com/zeusync/rpsim/internal/core/systems/conflict"
)

// Renderer paints one frame. It gets a copy of the world and must not hold
// on to the world itself.
type Renderer interface {
	Render(frame system.Snapshot) error
}

// RenderFunc adapts a function to Renderer.
type RenderFunc func(frame system.Snapshot) error

func (f RenderFunc) Render(frame system.Snapshot) error { return f(frame) }

var (
	_ Renderer             = (*Reporter)(nil)
	_ bus.EventBusObserver = (*Reporter)(nil)
)

// Reporter is a headless renderer that logs population counts every few
// frames and announces the winner once. Attached to a bus it also counts
// captures and reports failed deliveries.
type Reporter struct {
	logger    log.Log
	every     int64
	captures  atomic.Uint64
	announced bool

	events bus.EventBus
	sub    bus.Subscription
}

func NewReporter(logger log.Log, every int64) *Reporter {
	if logger == nil {
		logger = log.NewNop()
	}
	return &Reporter{logger: logger, every: every}
}

// Attach counts captures published on b and observes its deliveries.
func (r *Reporter) Attach(b bus.EventBus) error {
	sub, err := b.Subscribe(conflict.EventCaptured, func(bus.Event) error {
		r.captures.Add(1)
		return nil
	})
	if err != nil {
		return err
	}
	b.AddObserver(r)
	r.events, r.sub = b, sub
	return nil
}

// Detach undoes Attach. It is safe to call on a reporter that was never attached.
func (r *Reporter) Detach() error {
	if r.events == nil {
		return nil
	}
	r.events.RemoveObserver(r)
	err := r.events.Unsubscribe(r.sub)
	r.events, r.sub = nil, nil
	return err
}

func (r *Reporter) OnPublish(string, bus.Event) {}

func (r *Reporter) OnDelivered(eventType string, handlers int, err error, durationMicros int64) {
	if err == nil {
		return
	}
	r.logger.Warn("event delivery failed",
		log.String("event", eventType),
		log.Int("handlers", handlers),
		log.Int64("micros", durationMicros),
		log.Error(err),
	)
}

// Captures is the number of captures seen since Attach.
func (r *Reporter) Captures() uint64 { return r.captures.Load() }

func (r *Reporter) Render(frame system.Snapshot) error {
	if winner, ok := frame.Win.Winner(); ok {
		if !r.announced {
			r.announced = true
			fields := []log.Field{
				log.String("match", frame.MatchID),
				log.Stringer("winner", winner),
				log.Int64("frame", frame.Frame),
				log.Uint64("captures", r.Captures()),
			}
			if r.events != nil {
				m := r.events.GetMetrics()
				fields = append(fields,
					log.Uint64("events_published", m.Published),
					log.Uint64("events_delivered", m.DeliveredHandlers),
					log.Uint64("event_errors", m.Errors),
				)
			}
			r.logger.Info("match over", fields...)
		}
		return nil
	}
	if r.every > 0 && frame.Frame%r.every == 0 {
		r.logger.Info("frame",
			log.String("match", frame.MatchID),
			log.Int64("frame", frame.Frame),
			log.Int("rock", frame.Counts[models.Rock]),
			log.Int("paper", frame.Counts[models.Paper]),
			log.Int("scissors", frame.Counts[models.Scissors]),
			log.Uint64("captures", r.Captures()),
			log.Uint64("digest", frame.Digest),
		)
	}
	return nil
}
