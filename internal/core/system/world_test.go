package system

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zeusync/rpsim/internal/core/events/bus"
	"github.com/zeusync/rpsim/internal/core/models"
	"github.com/zeusync/rpsim/internal/core/systems/physics"
)

func newTestWorld(t *testing.T) *World {
	t.Helper()
	pop, err := models.NewPopulation([]models.Agent{
		models.NewAgent(1, physics.V(100, 100), models.Rock),
		models.NewAgent(2, physics.V(200, 100), models.Paper),
		models.NewAgent(3, physics.V(300, 100), models.Scissors),
	})
	require.NoError(t, err)
	w, err := NewWorld(pop, FixedField{W: 1000, H: 800}, WorldOptions{})
	require.NoError(t, err)
	return w
}

func TestNewWorldDefaults(t *testing.T) {
	w := newTestWorld(t)
	assert.NotEmpty(t, w.ID)
	assert.Equal(t, DefaultCaptureRadius, w.CaptureRadius)
	assert.False(t, w.Win.Done())
	assert.Zero(t, w.Frame())
	require.NoError(t, w.Publish(w.Event("nothing", nil)))

	minX, minY, maxX, maxY := w.Bounds()
	assert.Equal(t, []float64{25, 25, 975, 775}, []float64{minX, minY, maxX, maxY})
}

func TestNewWorldValidates(t *testing.T) {
	pop, err := models.NewPopulation(nil)
	require.NoError(t, err)

	_, err = NewWorld(nil, FixedField{W: 1, H: 1}, WorldOptions{})
	require.ErrorIs(t, err, ErrNilPopulation)
	_, err = NewWorld(pop, nil, WorldOptions{})
	require.ErrorIs(t, err, ErrNilField)
	_, err = NewWorld(pop, FixedField{W: 1, H: 1}, WorldOptions{CaptureRadius: -1})
	require.ErrorIs(t, err, ErrBadRadius)
}

func TestWorldPublishUsesBus(t *testing.T) {
	pop, err := models.NewPopulation(nil)
	require.NoError(t, err)
	b := bus.New()
	w, err := NewWorld(pop, FixedField{W: 10, H: 10}, WorldOptions{ID: "m1", Events: b})
	require.NoError(t, err)

	var got []bus.Event
	record := func(e bus.Event) error { got = append(got, e); return nil }
	_, err = b.Subscribe("ping", record)
	require.NoError(t, err)
	_, err = b.Subscribe("pong", record)
	require.NoError(t, err)

	require.NoError(t, w.Publish(w.Event("ping", 7), w.Event("pong", 8)))
	require.Len(t, got, 2)
	assert.Equal(t, "ping", got[0].Type())
	assert.Equal(t, "m1", got[0].Source())
	assert.Equal(t, 7, got[0].Data())
	assert.Equal(t, 8, got[1].Data())
}

func TestSnapshotIsACopy(t *testing.T) {
	w := newTestWorld(t)
	w.Advance()
	s := w.Snapshot()

	assert.Equal(t, int64(1), s.Frame)
	assert.Equal(t, 1000.0, s.Width)
	assert.Len(t, s.Agents, 3)
	assert.Equal(t, [models.NumKinds]int{1, 1, 1}, s.Counts)
	assert.Equal(t, w.Population.Digest(), s.Digest)

	s.Agents[0].Pos = physics.V(0, 0)
	assert.Equal(t, physics.V(100, 100), w.Population.At(0).Pos)
}

func TestResizableField(t *testing.T) {
	f := NewResizableField(100, 50)
	var wg sync.WaitGroup
	for i := range 4 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			f.Resize(float64(200+i), 100)
			_, _ = f.Size()
		}()
	}
	wg.Wait()
	w, h := f.Size()
	assert.GreaterOrEqual(t, w, 200.0)
	assert.Equal(t, 100.0, h)
}
