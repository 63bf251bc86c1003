package hailo

import (
	"testing"

	"github.com/amikos-tech/pure-hailort/hailort"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func newSubscription(id hailort.NotificationID, buffer int) *subscription {
	return &subscription{id: id, ch: make(chan hailort.Notification, buffer)}
}

func TestSubscriptionDropsWhenFull(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	SetLogger(zap.New(core))
	t.Cleanup(func() { SetLogger(nil) })

	sub := newSubscription(hailort.NotificationDebug, 1)
	sub.deliver(hailort.Notification{ID: hailort.NotificationDebug, Sequence: 1})
	sub.deliver(hailort.Notification{ID: hailort.NotificationDebug, Sequence: 2})

	got := <-sub.ch
	assert.Equal(t, uint32(1), got.Sequence)
	assert.Equal(t, uint64(1), sub.dropped.Load())
	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "notification dropped, subscriber is not keeping up", logs.All()[0].Message)
}

func TestSubscriptionCloseIsIdempotent(t *testing.T) {
	sub := newSubscription(hailort.NotificationDebug, 1)
	sub.close()
	sub.close()
	sub.deliver(hailort.Notification{})

	_, open := <-sub.ch
	assert.False(t, open)
	assert.Zero(t, sub.dropped.Load())
}

func TestSubscriptionsReplaceClosesPrevious(t *testing.T) {
	var ss subscriptions
	first := newSubscription(hailort.NotificationDebug, 1)
	second := newSubscription(hailort.NotificationDebug, 1)
	other := newSubscription(hailort.NotificationHealthMonitorClockChanged, 1)

	ss.replace(first)
	ss.replace(other)
	ss.replace(second)

	_, open := <-first.ch
	assert.False(t, open, "replaced subscription left open")
	assert.False(t, ss.remove(first), "stale subscription removed the live one")
	assert.True(t, ss.remove(second))
	assert.False(t, ss.remove(second))

	ss.closeAll()
	_, open = <-other.ch
	assert.False(t, open)
}

func TestSubscribeWithoutLibrary(t *testing.T) {
	d := &Device{res: newOwner(hailort.DeviceHandle(0x20), "hailo_release_device", nil)}
	ch, cancel, err := d.Subscribe(hailort.NotificationDebug, 4)
	assert.ErrorIs(t, err, hailort.StatusUninitialized)
	assert.Nil(t, ch)
	assert.Nil(t, cancel)
	assert.Empty(t, d.subs.byID)
}

func TestSubscribeAfterDestroy(t *testing.T) {
	d := &Device{res: newOwner(hailort.DeviceHandle(0x21), "hailo_release_device", nil)}
	require.NoError(t, d.Destroy())
	_, _, err := d.Subscribe(hailort.NotificationDebug, 4)
	assert.ErrorIs(t, err, ErrDestroyed)
}
