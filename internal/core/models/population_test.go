package models

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zeusync/rpsim/internal/core/systems/physics"
)

func population(t *testing.T, agents ...Agent) *Population {
	t.Helper()
	p, err := NewPopulation(agents)
	require.NoError(t, err)
	return p
}

func TestNearestOfKind(t *testing.T) {
	p := population(t,
		NewAgent(1, physics.V(0, 0), Rock),
		NewAgent(2, physics.V(10, 0), Scissors),
		NewAgent(3, physics.V(5, 0), Scissors),
		NewAgent(4, physics.V(0, 3), Rock),
	)

	n, ok := p.NearestOfKind(0, Scissors, false)
	require.True(t, ok)
	assert.Equal(t, 2, n.Index)
	assert.InDelta(t, 5.0, n.Distance, 1e-12)

	_, ok = p.NearestOfKind(0, Paper, false)
	assert.False(t, ok)

	ally, ok := p.NearestOfKind(0, Rock, true)
	require.True(t, ok)
	assert.Equal(t, 3, ally.Index)

	self, ok := p.NearestOfKind(0, Rock, false)
	require.True(t, ok)
	assert.Equal(t, 0, self.Index)
	assert.Zero(t, self.Distance)
}

func TestNearestOfKindTieGoesToFirst(t *testing.T) {
	p := population(t,
		NewAgent(1, physics.V(50, 50), Paper),
		NewAgent(2, physics.V(60, 50), Rock),
		NewAgent(3, physics.V(40, 50), Rock),
	)
	n, ok := p.NearestOfKind(0, Rock, false)
	require.True(t, ok)
	assert.Equal(t, 1, n.Index)
}

func TestNearestOfKindNoOtherAlly(t *testing.T) {
	p := population(t, NewAgent(1, physics.V(1, 1), Paper))
	_, ok := p.NearestOfKind(0, Paper, true)
	assert.False(t, ok)
}

func TestRelabelKeepsCounts(t *testing.T) {
	p := population(t,
		NewAgent(1, physics.V(0, 0), Rock),
		NewAgent(2, physics.V(1, 0), Scissors),
		NewAgent(3, physics.V(2, 0), Scissors),
	)
	assert.Equal(t, [NumKinds]int{Rock: 1, Scissors: 2}, p.Counts())

	require.NoError(t, p.Relabel(1, Rock))
	assert.Equal(t, 2, p.Count(Rock))
	assert.Equal(t, 1, p.Count(Scissors))
	assert.Equal(t, 0, p.Count(Paper))
	assert.Equal(t, []Kind{Rock, Scissors}, p.Survivors())
	assert.Equal(t, EntityID(2), p.At(1).ID)
	assert.Equal(t, 3, p.Len())

	require.ErrorIs(t, p.Relabel(7, Rock), ErrOutOfRange)
	require.ErrorIs(t, p.Relabel(0, Kind(5)), ErrUnknownKind)
}

func TestNewPopulationRejectsUnknownKind(t *testing.T) {
	_, err := NewPopulation([]Agent{NewAgent(1, physics.V(0, 0), Kind(4))})
	require.ErrorIs(t, err, ErrUnknownKind)
}

func TestDigestTracksState(t *testing.T) {
	p := population(t,
		NewAgent(1, physics.V(0, 0), Rock),
		NewAgent(2, physics.V(1, 0), Paper),
	)
	c := p.Clone()
	require.Equal(t, p.Digest(), c.Digest())

	c.At(0).Pos = physics.V(0, 1)
	assert.NotEqual(t, p.Digest(), c.Digest())

	c = p.Clone()
	require.NoError(t, c.Relabel(0, Paper))
	assert.NotEqual(t, p.Digest(), c.Digest())
	assert.Equal(t, Rock, p.At(0).Kind())
}

func TestAllStopsEarly(t *testing.T) {
	p := population(t,
		NewAgent(1, physics.V(0, 0), Rock),
		NewAgent(2, physics.V(1, 0), Paper),
		NewAgent(3, physics.V(2, 0), Scissors),
	)
	var seen []EntityID
	for i, a := range p.All() {
		seen = append(seen, a.ID)
		if i == 1 {
			break
		}
	}
	assert.Equal(t, []EntityID{1, 2}, seen)
}

func TestSplitCounts(t *testing.T) {
	assert.Equal(t, [NumKinds]int{Rock: 8, Paper: 8, Scissors: 8}, SplitCounts(24))
	// remainder goes to paper first, then rock
	assert.Equal(t, [NumKinds]int{Rock: 8, Paper: 9, Scissors: 8}, SplitCounts(25))
	assert.Equal(t, [NumKinds]int{Rock: 9, Paper: 9, Scissors: 8}, SplitCounts(26))
	assert.Equal(t, [NumKinds]int{}, SplitCounts(0))
}

func TestSpawn(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	p, err := Spawn(26, 800, 600, rng)
	require.NoError(t, err)
	require.Equal(t, 26, p.Len())
	assert.Equal(t, SplitCounts(26), p.Counts())

	ids := map[EntityID]bool{}
	for _, a := range p.All() {
		assert.GreaterOrEqual(t, a.Pos.X, 0.0)
		assert.Less(t, a.Pos.X, 800.0)
		assert.GreaterOrEqual(t, a.Pos.Y, 0.0)
		assert.Less(t, a.Pos.Y, 600.0)
		ids[a.ID] = true
	}
	assert.Len(t, ids, 26)
	assert.Equal(t, Paper, p.At(0).Kind())
	assert.Equal(t, Rock, p.At(1).Kind())
	assert.Equal(t, Scissors, p.At(2).Kind())
}

func TestSpawnRejectsBadInput(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	_, err := Spawn(2, 800, 600, rng)
	require.ErrorIs(t, err, ErrTooFewAgents)
	_, err = Spawn(9, 0, 600, rng)
	require.ErrorIs(t, err, ErrEmptyField)
}
