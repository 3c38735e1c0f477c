package system

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/zeusync/rpsim/internal/core/events/bus"
	"github.com/zeusync/rpsim/internal/core/models"
	"github.com/zeusync/rpsim/internal/core/observability/log"
	"github.com/zeusync/rpsim/internal/core/systems/physics"
)

// DefaultCaptureRadius matches the drawn size of an agent.
const DefaultCaptureRadius = 25.0

var (
	ErrNilPopulation = errors.New("world needs a population")
	ErrNilField      = errors.New("world needs a field")
	ErrBadRadius     = errors.New("capture radius must be positive")
)

// World is the simulation context handed to systems, the driver and renderers.
// It is owned by a single tick loop and is not safe for concurrent mutation.
type World struct {
	ID            string
	Population    *models.Population
	Win           models.WinState
	Field         Field
	CaptureRadius float64

	frame  int64
	events bus.EventBus
	logger log.Log
}

type WorldOptions struct {
	// ID defaults to a random UUID.
	ID            string
	CaptureRadius float64
	Events        bus.EventBus
	Logger        log.Log
}

func NewWorld(pop *models.Population, field Field, opts WorldOptions) (*World, error) {
	if pop == nil {
		return nil, ErrNilPopulation
	}
	if field == nil {
		return nil, ErrNilField
	}
	if opts.CaptureRadius == 0 {
		opts.CaptureRadius = DefaultCaptureRadius
	}
	if opts.CaptureRadius < 0 {
		return nil, fmt.Errorf("%w: %g", ErrBadRadius, opts.CaptureRadius)
	}
	if opts.ID == "" {
		opts.ID = uuid.NewString()
	}
	if opts.Logger == nil {
		opts.Logger = log.NewNop()
	}
	return &World{
		ID:            opts.ID,
		Population:    pop,
		Field:         field,
		CaptureRadius: opts.CaptureRadius,
		events:        opts.Events,
		logger:        opts.Logger.With(log.String("match", opts.ID)),
	}, nil
}

// Frame is the number of ticks that have run.
func (w *World) Frame() int64 { return w.frame }

// Advance bumps the frame counter once a tick has run.
func (w *World) Advance() { w.frame++ }

func (w *World) Logger() log.Log { return w.logger }

// Event builds an event sourced from this match.
func (w *World) Event(eventType string, data any) bus.Event {
	return bus.NewEvent(eventType, w.ID, data)
}

// Publish sends events on the world's bus in order, if it has one.
func (w *World) Publish(events ...bus.Event) error {
	if w.events == nil || len(events) == 0 {
		return nil
	}
	return w.events.PublishBatch(events...)
}

// Bounds returns the rectangle agents are kept inside this tick.
func (w *World) Bounds() (minX, minY, maxX, maxY float64) {
	fw, fh := w.Field.Size()
	r := w.CaptureRadius
	return r, r, fw - r, fh - r
}

// AgentView is a read-only copy of one agent.
type AgentView struct {
	ID   models.EntityID
	Pos  physics.Vec2
	Kind models.Kind
}

// Snapshot is what renderers get: a copy of the world at the end of a tick.
type Snapshot struct {
	MatchID       string
	Frame         int64
	Width, Height float64
	Radius        float64
	Agents        []AgentView
	Counts        [models.NumKinds]int
	Win           models.WinState
	Digest        uint64
}

func (w *World) Snapshot() Snapshot {
	fw, fh := w.Field.Size()
	s := Snapshot{
		MatchID: w.ID,
		Frame:   w.frame,
		Width:   fw,
		Height:  fh,
		Radius:  w.CaptureRadius,
		Agents:  make([]AgentView, 0, w.Population.Len()),
		Counts:  w.Population.Counts(),
		Win:     w.Win,
		Digest:  w.Population.Digest(),
	}
	for _, a := range w.Population.All() {
		s.Agents = append(s.Agents, AgentView{ID: a.ID, Pos: a.Pos, Kind: a.Kind()})
	}
	return s
}
