package bus

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testObserver struct {
	publishCount   int
	deliveredCount int
	lastErr        error
}

func (o *testObserver) OnPublish(_ string, _ Event) {
	o.publishCount++
}

func (o *testObserver) OnDelivered(_ string, handlers int, err error, _ int64) {
	o.deliveredCount += handlers
	o.lastErr = err
}

func TestBasicPublishSubscribe(t *testing.T) {
	b := New()
	var got Event
	sub, err := b.Subscribe("agent.captured", func(e Event) error {
		got = e
		return nil
	})
	require.NoError(t, err)
	require.NotEmpty(t, sub.ID())
	assert.Equal(t, "agent.captured", sub.EventType())

	require.NoError(t, b.Publish(NewEvent("agent.captured", "tester", 123)))
	require.NotNil(t, got)
	assert.Equal(t, 123, got.Data())
	assert.Equal(t, "tester", got.Source())
	assert.False(t, got.Timestamp().IsZero())
}

func TestDeliveryFollowsSubscriptionOrder(t *testing.T) {
	b := New()
	var order []int
	for i := range 5 {
		_, err := b.Subscribe("e", func(Event) error { order = append(order, i); return nil })
		require.NoError(t, err)
	}
	require.NoError(t, b.Publish(NewEvent("e", "s", nil)))
	assert.Equal(t, []int{0, 1, 2, 3, 4}, order)
}

func TestHandlerErrorsAreJoined(t *testing.T) {
	b := New()
	e1, e2 := errors.New("one"), errors.New("two")
	_, _ = b.Subscribe("x", func(Event) error { return e1 })
	_, _ = b.Subscribe("x", func(Event) error { return e2 })

	err := b.Publish(NewEvent("x", "src", nil))
	require.ErrorIs(t, err, e1)
	require.ErrorIs(t, err, e2)

	err = b.PublishBatch(NewEvent("x", "src", nil), NewEvent("y", "src", nil))
	require.ErrorIs(t, err, e1)
}

func TestCancelStopsDelivery(t *testing.T) {
	b := New()
	count := 0
	sub, err := b.Subscribe("e", func(Event) error { count++; return nil })
	require.NoError(t, err)

	require.NoError(t, b.Publish(NewEvent("e", "s", nil)))
	require.NoError(t, b.Unsubscribe(sub))
	require.NoError(t, sub.Cancel())
	require.NoError(t, b.Unsubscribe(nil))
	require.NoError(t, b.Publish(NewEvent("e", "s", nil)))

	assert.Equal(t, 1, count)
	assert.False(t, sub.IsActive())
}

func TestNilHandlerRejected(t *testing.T) {
	_, err := New().Subscribe("e", nil)
	require.ErrorIs(t, err, ErrNilHandler)
}

func TestObserverMetricsOptional(t *testing.T) {
	b := New()
	_, _ = b.Subscribe("e", func(e Event) error { return nil })
	_ = b.Publish(NewEvent("e", "s", nil))
	m := b.GetMetrics()
	assert.Zero(t, m.Published)
	assert.Zero(t, m.DeliveredHandlers)

	obs := &testObserver{}
	b.AddObserver(obs)
	_ = b.Publish(NewEvent("e", "s", nil))
	m2 := b.GetMetrics()
	assert.Equal(t, uint64(1), m2.Published)
	assert.Equal(t, uint64(1), m2.DeliveredHandlers)
	assert.Equal(t, uint64(1), m2.SubscribersActive)
	assert.Equal(t, 1, obs.publishCount)
	assert.Equal(t, 1, obs.deliveredCount)

	b.RemoveObserver(obs)
	_ = b.Publish(NewEvent("e", "s", nil))
	assert.Equal(t, 1, obs.publishCount)
}
