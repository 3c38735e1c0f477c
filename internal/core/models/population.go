package models

import (
	"encoding/binary"
	"fmt"
	"iter"
	"math"

	"github.com/cespare/xxhash/v2"
)

// Neighbor is the result of a nearest-agent query.
type Neighbor struct {
	Index    int
	Distance float64
}

// Population is the fixed-size, ordered set of agents in a match.
// Agents are never added or removed after construction; only their kinds change.
type Population struct {
	agents []Agent
	counts [NumKinds]int
}

// NewPopulation takes ownership of agents.
func NewPopulation(agents []Agent) (*Population, error) {
	p := &Population{agents: agents}
	for i := range agents {
		k := agents[i].kind
		if !k.Valid() {
			return nil, fmt.Errorf("agent %d: %w: %d", agents[i].ID, ErrUnknownKind, uint8(k))
		}
		p.counts[k]++
	}
	return p, nil
}

func (p *Population) Len() int { return len(p.agents) }

// At returns the agent in slot i. The pointer stays valid for the life of the
// population.
func (p *Population) At(i int) *Agent { return &p.agents[i] }

// All yields every agent in population order.
func (p *Population) All() iter.Seq2[int, *Agent] {
	return func(yield func(int, *Agent) bool) {
		for i := range p.agents {
			if !yield(i, &p.agents[i]) {
				return
			}
		}
	}
}

// Count returns the number of agents currently labeled k.
func (p *Population) Count(k Kind) int {
	if !k.Valid() {
		return 0
	}
	return p.counts[k]
}

// Counts returns the live count of every kind, indexed by Kind.
func (p *Population) Counts() [NumKinds]int { return p.counts }

// Survivors returns the kinds that still have at least one agent, in Kind order.
func (p *Population) Survivors() []Kind {
	out := make([]Kind, 0, NumKinds)
	for k, n := range p.counts {
		if n > 0 {
			out = append(out, Kind(k))
		}
	}
	return out
}

// Relabel changes the kind of agent i and keeps the counts in step.
func (p *Population) Relabel(i int, k Kind) error {
	if i < 0 || i >= len(p.agents) {
		return fmt.Errorf("%w: %d", ErrOutOfRange, i)
	}
	if !k.Valid() {
		return fmt.Errorf("%w: %d", ErrUnknownKind, uint8(k))
	}
	a := &p.agents[i]
	p.counts[a.kind]--
	p.counts[k]++
	a.kind = k
	return nil
}

// NearestOfKind finds the agent of kind k closest to agent from. With
// excludeSelf the querying agent is never its own answer. Ties go to the agent
// met first in population order.
func (p *Population) NearestOfKind(from int, k Kind, excludeSelf bool) (Neighbor, bool) {
	origin := p.agents[from].Pos
	best := Neighbor{Index: -1, Distance: math.MaxFloat64}
	for i := range p.agents {
		if p.agents[i].kind != k || (excludeSelf && i == from) {
			continue
		}
		if d := origin.Distance(p.agents[i].Pos); d < best.Distance {
			best = Neighbor{Index: i, Distance: d}
		}
	}
	return best, best.Index >= 0
}

// Digest fingerprints every position and kind. Two populations with equal
// digests are, for practical purposes, in the same state.
func (p *Population) Digest() uint64 {
	h := xxhash.New()
	var buf [17]byte
	for i := range p.agents {
		a := &p.agents[i]
		binary.LittleEndian.PutUint64(buf[0:8], math.Float64bits(a.Pos.X))
		binary.LittleEndian.PutUint64(buf[8:16], math.Float64bits(a.Pos.Y))
		buf[16] = byte(a.kind)
		_, _ = h.Write(buf[:])
	}
	return h.Sum64()
}

// Clone returns a deep copy.
func (p *Population) Clone() *Population {
	agents := make([]Agent, len(p.agents))
	copy(agents, p.agents)
	return &Population{agents: agents, counts: p.counts}
}
