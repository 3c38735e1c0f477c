package physics

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVectorArithmetic(t *testing.T) {
	a := V(3, 4)
	b := V(1, -2)

	assert.Equal(t, V(2, 6), a.Sub(b))
	assert.Equal(t, V(4, 2), a.Add(b))
	assert.Equal(t, V(6, 8), a.Mul(2))
	assert.Equal(t, 5.0, a.Magnitude())
	assert.InDelta(t, math.Sqrt(40), a.Distance(b), 1e-12)
}

func TestNormalizeZeroIsZero(t *testing.T) {
	require.Equal(t, Vec2{}, Vec2{}.Normalize())
	require.True(t, Vec2{}.Normalize().IsZero())
}

func TestNormalizeNonFinite(t *testing.T) {
	cases := []Vec2{
		V(math.NaN(), 1),
		V(math.Inf(1), 0),
		V(math.Inf(-1), math.Inf(1)),
	}
	for _, v := range cases {
		n := v.Normalize()
		assert.False(t, math.IsNaN(n.X) || math.IsNaN(n.Y), "%v -> %v", v, n)
		assert.Equal(t, Vec2{}, n)
	}
}

func TestNormalizeUnitLength(t *testing.T) {
	for _, v := range []Vec2{V(1, 0), V(-3, 4), V(1e-9, 2e-9), V(1e9, -7e8), V(0.1, 0.1)} {
		assert.InDelta(t, 1.0, v.Normalize().Magnitude(), 1e-9, "%v", v)
	}
}

func TestNormalizeDoesNotMutate(t *testing.T) {
	v := V(3, 4)
	n := v.Normalize()
	assert.Equal(t, V(3, 4), v)
	assert.InDelta(t, 0.6, n.X, 1e-12)
	assert.InDelta(t, 0.8, n.Y, 1e-12)
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 25.0, Clamp(3, 25, 975))
	assert.Equal(t, 975.0, Clamp(1000, 25, 975))
	assert.Equal(t, 500.0, Clamp(500, 25, 975))
	// degenerate range: upper bound wins
	assert.Equal(t, 5.0, Clamp(0, 25, 5))
}
