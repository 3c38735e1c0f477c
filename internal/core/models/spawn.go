package models

import (
	"fmt"
	"math/rand/v2"

	"github.com/zeusync/rpsim/internal/core/systems/physics"
)

// SplitCounts divides n agents between the kinds. Every kind gets n/3 and
// the remainder goes to the earliest kinds in Kinds order.
func SplitCounts(n int) [NumKinds]int {
	var out [NumKinds]int
	if n <= 0 {
		return out
	}
	for i, k := range Kinds {
		out[k] = n / NumKinds
		if i < n%NumKinds {
			out[k]++
		}
	}
	return out
}

// Spawn builds the initial population of n agents placed uniformly at random
// in [0,w) x [0,h). Kinds are dealt round-robin in Kinds order until each
// kind's share from SplitCounts is used up.
func Spawn(n int, w, h float64, rng *rand.Rand) (*Population, error) {
	if n < NumKinds {
		return nil, fmt.Errorf("%w: got %d", ErrTooFewAgents, n)
	}
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: %gx%g", ErrEmptyField, w, h)
	}
	remaining := SplitCounts(n)
	agents := make([]Agent, 0, n)
	for len(agents) < n {
		for _, k := range Kinds {
			if remaining[k] == 0 {
				continue
			}
			remaining[k]--
			pos := physics.V(rng.Float64()*w, rng.Float64()*h)
			agents = append(agents, NewAgent(EntityID(len(agents)+1), pos, k))
		}
	}
	return NewPopulation(agents)
}
