package models

import "github.com/zeusync/rpsim/internal/core/systems/physics"

// EntityID identifies an agent for its whole lifetime, across relabels.
type EntityID uint64

// Agent is a single typed point. Its kind only changes through
// Population.Relabel so the per-kind counts stay correct.
type Agent struct {
	ID   EntityID
	Pos  physics.Vec2
	kind Kind
}

// NewAgent builds a detached agent, ready to be handed to NewPopulation.
func NewAgent(id EntityID, pos physics.Vec2, kind Kind) Agent {
	return Agent{ID: id, Pos: pos, kind: kind}
}

func (a *Agent) Kind() Kind { return a.kind }
