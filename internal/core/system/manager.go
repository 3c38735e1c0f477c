package system

import (
	"errors"
	"fmt"
	"sort"

	"github.com/zeusync/rpsim/internal/core/observability/log"
)

var (
	ErrDuplicateSystem = errors.New("system already registered")
	ErrNilSystem       = errors.New("system is nil")
)

// Manager runs the registered systems in priority order, once per tick.
type Manager struct {
	systems []System
	logger  log.Log
}

func NewManager(logger log.Log) *Manager {
	if logger == nil {
		logger = log.NewNop()
	}
	return &Manager{logger: logger}
}

func (m *Manager) RegisterSystem(s System) error {
	if s == nil {
		return ErrNilSystem
	}
	if m.HasSystem(s.Name()) {
		return fmt.Errorf("%w: %s", ErrDuplicateSystem, s.Name())
	}
	m.systems = append(m.systems, s)
	sort.SliceStable(m.systems, func(i, j int) bool {
		if m.systems[i].Priority() != m.systems[j].Priority() {
			return m.systems[i].Priority() > m.systems[j].Priority()
		}
		return m.systems[i].Name() < m.systems[j].Name()
	})
	m.logger.Debug("system registered", log.String("system", s.Name()))
	return nil
}

func (m *Manager) HasSystem(name string) bool {
	for _, s := range m.systems {
		if s.Name() == name {
			return true
		}
	}
	return false
}

// GetExecutionOrder lists system names in the order Update runs them.
func (m *Manager) GetExecutionOrder() []string {
	out := make([]string, len(m.systems))
	for i, s := range m.systems {
		out[i] = s.Name()
	}
	return out
}

// Update runs one tick. The first failing system stops the tick.
func (m *Manager) Update(world *World) error {
	for _, s := range m.systems {
		if err := s.Update(world); err != nil {
			return fmt.Errorf("system %s: %w", s.Name(), err)
		}
	}
	return nil
}
