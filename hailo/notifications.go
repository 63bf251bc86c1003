package hailo

import (
	"errors"
	"sync"
	"sync/atomic"

	"github.com/amikos-tech/pure-hailort/hailort"
	"go.uber.org/zap"
)

type subscription struct {
	id      hailort.NotificationID
	mu      sync.Mutex
	ch      chan hailort.Notification
	closed  bool
	dropped atomic.Uint64
}

// deliver runs on a library thread. It never blocks: a notification that
// finds the channel full is counted and dropped.
func (s *subscription) deliver(n hailort.Notification) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	select {
	case s.ch <- n:
	default:
		total := s.dropped.Add(1)
		Logger().Warn("notification dropped, subscriber is not keeping up",
			zap.Stringer("id", s.id), zap.Uint64("dropped", total))
	}
}

func (s *subscription) close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.closed {
		s.closed = true
		close(s.ch)
	}
}

type subscriptions struct {
	mu   sync.Mutex
	byID map[hailort.NotificationID]*subscription
}

func (ss *subscriptions) replace(sub *subscription) {
	ss.mu.Lock()
	if ss.byID == nil {
		ss.byID = make(map[hailort.NotificationID]*subscription)
	}
	old := ss.byID[sub.id]
	ss.byID[sub.id] = sub
	ss.mu.Unlock()
	if old != nil {
		old.close()
	}
}

// remove reports whether sub was still the live subscription for its id.
func (ss *subscriptions) remove(sub *subscription) bool {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	if ss.byID[sub.id] != sub {
		return false
	}
	delete(ss.byID, sub.id)
	return true
}

func (ss *subscriptions) closeAll() {
	ss.mu.Lock()
	subs := ss.byID
	ss.byID = nil
	ss.mu.Unlock()
	for _, sub := range subs {
		sub.close()
	}
}

// Subscribe delivers notifications of id on the returned channel, which
// holds up to buffer undelivered notifications; later ones are dropped
// until the reader catches up. A second Subscribe for the same id closes
// the first channel. cancel unregisters and closes the channel; Destroy
// closes every channel of the device.
func (d *Device) Subscribe(id hailort.NotificationID, buffer int) (<-chan hailort.Notification, func() error, error) {
	sub := &subscription{id: id, ch: make(chan hailort.Notification, max(buffer, 1))}
	err := d.res.exclusive(func(h hailort.DeviceHandle) error {
		if err := hailort.SetNotificationCallback(h, id, sub.deliver).Err("hailo_set_notification_callback"); err != nil {
			return err
		}
		d.subs.replace(sub)
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	cancel := func() error {
		var err error
		if d.subs.remove(sub) {
			err = d.res.exclusive(func(h hailort.DeviceHandle) error {
				return hailort.RemoveNotificationCallback(h, id).Err("hailo_remove_notification_callback")
			})
		}
		sub.close()
		if errors.Is(err, ErrDestroyed) {
			return nil
		}
		return err
	}
	return sub.ch, cancel, nil
}
